package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"datakit/date"
	"datakit/random"
)

type randomFlags struct {
	count    int
	min      float64
	max      float64
	decimals int
	length   int
	chars    string
	prob     float64
	from     string
	to       string
	layout   string
	dates    *date.Formatter
}

type randomKind func(g *random.Generator, f *randomFlags, args []string) (string, error)

var randomKinds = map[string]randomKind{
	"int": func(g *random.Generator, f *randomFlags, _ []string) (string, error) {
		return strconv.Itoa(g.Int(f.min, f.max)), nil
	},
	"float": func(g *random.Generator, f *randomFlags, _ []string) (string, error) {
		return strconv.FormatFloat(g.Float(f.min, f.max, f.decimals), 'f', -1, 64), nil
	},
	"bool": func(g *random.Generator, f *randomFlags, _ []string) (string, error) {
		return strconv.FormatBool(g.Bool(f.prob)), nil
	},
	"string": func(g *random.Generator, f *randomFlags, _ []string) (string, error) {
		return g.StringFrom(f.length, f.chars), nil
	},
	"color": func(g *random.Generator, _ *randomFlags, _ []string) (string, error) {
		return g.Color(), nil
	},
	"uuid": func(g *random.Generator, _ *randomFlags, _ []string) (string, error) {
		return g.UUID(), nil
	},
	"ip": func(g *random.Generator, _ *randomFlags, _ []string) (string, error) {
		return g.IP(), nil
	},
	"phone": func(g *random.Generator, _ *randomFlags, _ []string) (string, error) {
		return g.PhoneNumber(), nil
	},
	"name": func(g *random.Generator, _ *randomFlags, _ []string) (string, error) {
		return g.ChineseName(), nil
	},
	"date": func(g *random.Generator, f *randomFlags, _ []string) (string, error) {
		if f.from == "" && f.to == "" {
			return f.dates.Format(g.AnyDate(), f.layout), nil
		}

		start, err := date.Parse(f.from)
		if err != nil {
			return "", fmt.Errorf("--from: %w", err)
		}

		end, err := date.Parse(f.to)
		if err != nil {
			return "", fmt.Errorf("--to: %w", err)
		}

		return f.dates.Format(g.Date(start, end), f.layout), nil
	},
	"pick": func(g *random.Generator, _ *randomFlags, args []string) (string, error) {
		return random.ItemWith(g, args)
	},
}

func (a *app) randomCmd() *cobra.Command {
	f := &randomFlags{}

	cmd := &cobra.Command{
		Use:   "random <kind> [choices...]",
		Short: "Generate random values",
		Long: `Generate random values, one per line.

Kinds: ` + fmt.Sprint(slices.Sorted(maps.Keys(randomKinds))) + `

"pick" selects among the remaining arguments. Set --seed for reproducible output.`,
		Example: `  datakit random int --min 1 --max 6 -n 10
  datakit random string --length 16
  datakit random date --from 2024-01-01 --to 2024-12-31
  datakit random pick red green blue`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := randomKinds[args[0]]
			if !ok {
				return unknown("random kind", args[0], slices.Sorted(maps.Keys(randomKinds)))
			}

			g := a.generator()
			f.dates = a.formatter()
			if f.layout == "" {
				f.layout = a.cfg.Date.DateTimeLayout
			}

			for range max(f.count, 1) {
				v, err := gen(g, f, args[1:])
				if err != nil {
					return err
				}

				a.println(v)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.count, "count", "n", 1, "number of values")
	flags.Float64Var(&f.min, "min", 0, "lower bound for int and float")
	flags.Float64Var(&f.max, "max", 100, "upper bound for int and float")
	flags.IntVar(&f.decimals, "decimals", 2, "decimal places for float")
	flags.IntVar(&f.length, "length", 8, "length for string")
	flags.StringVar(&f.chars, "chars", random.Alphanumeric, "alphabet for string")
	flags.Float64Var(&f.prob, "prob", 0.5, "probability of true for bool")
	flags.StringVar(&f.from, "from", "", "earliest date")
	flags.StringVar(&f.to, "to", "", "latest date")
	flags.StringVar(&f.layout, "layout", "", "dayjs-style layout for date (default: the configured date-time layout)")

	return cmd
}

// generator honors the configured seed; without one values come from the
// process-wide source.
func (a *app) generator() *random.Generator {
	opts := []random.Option{random.WithClock(a.now)}
	if a.cfg.Seed != 0 {
		opts = append(opts, random.WithSeed(a.cfg.Seed))
	}

	return random.New(opts...)
}

