package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"datakit/object"
)

func (a *app) queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Encode objects as query strings and back",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode [file]",
		Short: "Encode an object as a query string",
		Long: `Encode an object as a query string.

Keys are sorted, null values are skipped and nested objects or lists are
embedded as encoded JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := a.readObject(cmd, args, 0)
			if err != nil {
				return err
			}

			qs, err := object.ToQueryString(obj)
			if err != nil {
				return err
			}

			a.println(qs)

			return nil
		},
	}, &cobra.Command{
		Use:   "decode <query>",
		Short: "Decode a query string into an object of strings",
		Long: `Decode a query string into an object of strings.

A leading "?" is ignored. Values stay strings; embedded JSON is not decoded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.writeDocument(object.ParseQueryString(args[0]))
		},
	})

	return cmd
}

func (a *app) getCmd() *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:   "get <path> [file]",
		Short: "Read a dotted path such as user.roles.0 from a document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd, args, 1)
			if err != nil {
				return err
			}

			v, ok := object.Lookup(doc, args[0])
			if !ok {
				if !cmd.Flags().Changed("default") {
					return fmt.Errorf("path %q not found", args[0])
				}

				v = def
			}

			if s, isString := v.(string); isString {
				a.println(s)

				return nil
			}

			return a.writeDocument(v)
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "value printed when the path is missing")

	return cmd
}

func (a *app) flattenCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten nested objects into dotted keys",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := a.readObject(cmd, args, 0)
			if err != nil {
				return err
			}

			return a.writeDocument(object.Flatten(obj, prefix))
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix for every key")

	return cmd
}

func (a *app) unflattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unflatten [file]",
		Short: "Expand dotted keys into nested objects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := a.readObject(cmd, args, 0)
			if err != nil {
				return err
			}

			return a.writeDocument(object.Unflatten(obj))
		},
	}
}

func (a *app) mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <file> <file...>",
		Short: "Deep-merge objects, later files win",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			objs := make([]map[string]any, 0, len(args))

			for i := range args {
				obj, err := a.readObject(cmd, args, i)
				if err != nil {
					return err
				}

				objs = append(objs, obj)
			}

			return a.writeDocument(object.MergeObjects(objs...))
		},
	}
}

func (a *app) cleanCmd() *cobra.Command {
	var pick, omit []string

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Drop null and empty-string fields from an object",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := a.readObject(cmd, args, 0)
			if err != nil {
				return err
			}

			obj = object.RemoveEmpty(obj)

			if len(pick) > 0 {
				obj = object.Pick(obj, pick...)
			}

			return a.writeDocument(object.Omit(obj, omit...))
		},
	}

	cmd.Flags().StringSliceVar(&pick, "pick", nil, "keep only these top-level keys")
	cmd.Flags().StringSliceVar(&omit, "omit", nil, "remove these top-level keys")

	return cmd
}
