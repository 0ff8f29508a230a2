package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"datakit/collection"
	"datakit/object"
	"datakit/random"
)

func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Operate on JSON or YAML lists",
		Long: `Operate on JSON or YAML lists.

Elements are compared by their JSON encoding, so objects and lists can be
deduplicated and intersected like plain values.`,
	}

	cmd.AddCommand(
		a.listUniqueCmd(),
		a.listSetCmd("union", "Elements of either list, first occurrence wins", collection.Union[string]),
		a.listSetCmd("intersection", "Elements of the first list also in the second", collection.Intersection[string]),
		a.listSetCmd("difference", "Elements of the first list missing from the second", collection.Difference[string]),
		a.listChunkCmd(),
		a.listShuffleCmd(),
		a.listSampleCmd(),
		a.listStatsCmd(),
		a.listSortCmd(),
		a.listGroupCmd(),
	)

	return cmd
}

func (a *app) readList(cmd *cobra.Command, args []string, i int) ([]any, error) {
	v, err := a.readDocument(cmd, args, i)
	if err != nil {
		return nil, err
	}

	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", v)
	}

	return list, nil
}

// keyed is a list whose elements are identified by their JSON encoding.
type keyed struct {
	keys   []string
	values map[string]any
}

func keyList(list []any) (keyed, error) {
	k := keyed{
		keys:   make([]string, len(list)),
		values: make(map[string]any, len(list)),
	}

	for i, v := range list {
		b, err := json.Marshal(v)
		if err != nil {
			return keyed{}, fmt.Errorf("element %d: %w", i, err)
		}

		k.keys[i] = string(b)
		if _, seen := k.values[k.keys[i]]; !seen {
			k.values[k.keys[i]] = v
		}
	}

	return k, nil
}

func (k keyed) resolve(keys []string) []any {
	out := make([]any, len(keys))
	for i, key := range keys {
		out[i] = k.values[key]
	}

	return out
}

func (a *app) listUniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unique [file]",
		Short: "Remove duplicate elements, keeping first occurrences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.readList(cmd, args, 0)
			if err != nil {
				return err
			}

			k, err := keyList(list)
			if err != nil {
				return err
			}

			return a.writeDocument(k.resolve(collection.Unique(k.keys)))
		},
	}
}

func (a *app) listSetCmd(name, short string, op func(a, b []string) []string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file> <file>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var lists [2]keyed

			for i := range lists {
				list, err := a.readList(cmd, args, i)
				if err != nil {
					return err
				}

				if lists[i], err = keyList(list); err != nil {
					return err
				}
			}

			merged := keyed{values: lists[1].values}
			for key, v := range lists[0].values {
				merged.values[key] = v
			}

			return a.writeDocument(merged.resolve(op(lists[0].keys, lists[1].keys)))
		},
	}
}

func (a *app) listChunkCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "chunk [file]",
		Short: "Split a list into chunks of --size elements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.readList(cmd, args, 0)
			if err != nil {
				return err
			}

			chunks, err := collection.Chunk(list, size)
			if err != nil {
				return err
			}

			return a.writeDocument(chunks)
		},
	}

	cmd.Flags().IntVar(&size, "size", 2, "elements per chunk")

	return cmd
}

func (a *app) listShuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle [file]",
		Short: "Shuffle a list, reproducibly with --seed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.readList(cmd, args, 0)
			if err != nil {
				return err
			}

			return a.writeDocument(collection.ShuffleWith(a.generator(), list))
		},
	}
}

func (a *app) listSampleCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "sample [file]",
		Short: "Pick --count distinct elements at random",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.readList(cmd, args, 0)
			if err != nil {
				return err
			}

			return a.writeDocument(random.ItemsWith(a.generator(), list, count))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of elements")

	return cmd
}

type listStats struct {
	Count   int     `json:"count" yaml:"count"`
	Sum     float64 `json:"sum" yaml:"sum"`
	Average float64 `json:"average" yaml:"average"`
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
}

func (a *app) listStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Count, sum, average, min and max of a list of numbers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.readList(cmd, args, 0)
			if err != nil {
				return err
			}

			nums, err := numbers(list)
			if err != nil {
				return err
			}

			stats := listStats{
				Count:   len(nums),
				Sum:     collection.Sum(nums),
				Average: collection.Average(nums),
			}
			stats.Min, _ = collection.Min(nums)
			stats.Max, _ = collection.Max(nums)

			return a.writeDocument(stats)
		},
	}
}

func (a *app) listSortCmd() *cobra.Command {
	var (
		key   string
		order string
	)

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Stable-sort a list, optionally by a dotted --key of each element",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ord, err := collection.ParseOrder(order)
			if err != nil {
				return err
			}

			list, err := a.readList(cmd, args, 0)
			if err != nil {
				return err
			}

			project := func(v any) any {
				if key == "" {
					return v
				}

				got, _ := object.Lookup(v, key)

				return got
			}

			keys := make([]any, len(list))
			for i, v := range list {
				keys[i] = project(v)
			}

			a.logger(cmd).WithField("order", ord).Debug("sorting")

			if _, err := numbers(keys); err == nil {
				return a.writeDocument(collection.SortBy(list, func(v any) float64 {
					f, _ := toFloat(project(v))
					return f
				}, ord))
			}

			return a.writeDocument(collection.SortBy(list, func(v any) string {
				return fmt.Sprint(project(v))
			}, ord))
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "dotted path of the sort key")
	cmd.Flags().StringVar(&order, "order", "asc", "asc or desc")

	return cmd
}

func (a *app) listGroupCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "group --key <path> [file]",
		Short: "Group list elements by the value at a dotted path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.readList(cmd, args, 0)
			if err != nil {
				return err
			}

			groups := collection.GroupBy(list, func(v any) any {
				got, _ := object.Lookup(v, key)
				return got
			})

			return a.writeDocument(groups)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "dotted path of the group key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func numbers(list []any) ([]float64, error) {
	out := make([]float64, len(list))

	for i, v := range list {
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("element %d is %T, not a number", i, v)
		}

		out[i] = f
	}

	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
