package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"datakit/collection"
	"datakit/internal/dataio"
	"datakit/internal/diagnostic"
)

func (a *app) treeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Convert between flat record lists and nested trees",
		Long: `Convert between flat record lists and nested trees.

Field names default to id, parentId and children and can be changed with flags
or the tree section of datakit.yaml.`,
	}

	flags := cmd.PersistentFlags()
	flags.String("id-field", "", "field holding a record's identifier")
	flags.String("parent-id-field", "", "field holding the parent's identifier")
	flags.String("children-field", "", "field receiving the children")
	flags.String("root", "", "parent identifier of top-level records (default null)")

	cmd.AddCommand(a.treeBuildCmd(), a.treeFlattenCmd())

	return cmd
}

// treeOptions merges the tree flags over the configured tree section.
func (a *app) treeOptions(cmd *cobra.Command) *collection.TreeOptions {
	opts := a.cfg.TreeOptions()

	set := func(name string, dst *string) {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}

	set("id-field", &opts.IDField)
	set("parent-id-field", &opts.ParentIDField)
	set("children-field", &opts.ChildrenField)

	if f := cmd.Flags().Lookup("root"); f != nil && f.Changed {
		opts.RootValue = rootValue(f.Value.String())
	}

	return opts
}

// rootValue reads numbers as numbers so that --root 0 matches "parentId": 0.
func rootValue(s string) any {
	if s == "null" {
		return nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}

func (a *app) treeBuildCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Nest a flat list of records into a forest",
		Long: `Nest a flat list of records into a forest.

Records whose parent is not in the list are dropped and reported as warnings.
With --strict any warning fails the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.readDocument(cmd, args, 0)
			if err != nil {
				return err
			}

			items, err := dataio.Records(v)
			if err != nil {
				return err
			}

			opts := a.treeOptions(cmd)
			diags := diagnostic.CheckTree(items, opts)

			log := a.logger(cmd)
			for _, d := range diags.All() {
				entry := log.WithField("code", d.Code)

				switch d.Severity {
				case diagnostic.SeverityError:
					entry.Error(d.String())
				case diagnostic.SeverityWarning:
					entry.Warn(d.String())
				default:
					entry.Info(d.String())
				}
			}

			if strict {
				for _, w := range diags.Warnings {
					diags.AddError(w.Code, w.Message, w.Path)
				}
			}

			if err := diags.Error(); err != nil {
				return err
			}

			return a.writeDocument(collection.ArrayToTree(items, opts))
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on orphaned or duplicate records")

	return cmd
}

func (a *app) treeFlattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten a forest into a list in depth-first order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.readDocument(cmd, args, 0)
			if err != nil {
				return err
			}

			tree, err := dataio.Records(v)
			if err != nil {
				return err
			}

			return a.writeDocument(collection.TreeToArray(tree, a.treeOptions(cmd).ChildrenField))
		},
	}
}

