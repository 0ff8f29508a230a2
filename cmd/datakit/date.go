package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"datakit/date"
)

func (a *app) dateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Format, compare and shift dates",
		Long: `Format, compare and shift dates.

A date argument is "now", Unix milliseconds, RFC 3339 or YYYY-MM-DD[ HH:mm[:ss]].
Layouts use dayjs tokens such as YYYY-MM-DD HH:mm:ss; text in [brackets] is
printed as is. Names and relative phrases follow --locale.`,
	}

	cmd.AddCommand(
		a.dateFormatCmd(),
		a.dateFromNowCmd(),
		a.dateAddCmd(),
		a.dateDiffCmd(),
		a.dateTodayCmd(),
	)

	return cmd
}

func (a *app) formatter() *date.Formatter {
	return a.cfg.Formatter(date.WithClock(a.now))
}

func (a *app) parseDate(s string) (time.Time, error) {
	if s == "now" {
		return a.now(), nil
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return date.Parse(ms)
	}

	return date.Parse(s)
}

func (a *app) dateFormatCmd() *cobra.Command {
	var (
		layout   string
		withTime bool
	)

	cmd := &cobra.Command{
		Use:   "format <date>",
		Short: "Format a date",
		Example: `  datakit date format 2024-03-05
  datakit date format now --time
  datakit date format 1709625600000 --layout "dddd, MMMM D" --locale en`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := a.parseDate(args[0])
			if err != nil {
				return err
			}

			f := a.formatter()

			switch {
			case layout != "":
				a.println(f.Format(t, layout))
			case withTime:
				a.println(f.FormatDateTime(t, a.cfg.Date.DateTimeLayout))
			default:
				a.println(f.FormatDate(t, a.cfg.Date.Layout))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&layout, "layout", "", "dayjs-style layout")
	cmd.Flags().BoolVar(&withTime, "time", false, "use the date-time layout")

	return cmd
}

func (a *app) dateFromNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-now <date>",
		Short: "Describe a date relative to now, e.g. 3 天前",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := a.parseDate(args[0])
			if err != nil {
				return err
			}

			a.println(a.formatter().FromNow(t))

			return nil
		},
	}
}

func (a *app) dateAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <amount> <unit>",
		Short: "Shift a date by an amount of days, months, years, hours, minutes or seconds",
		Example: `  datakit date add 2024-01-31 1 month
  datakit date add now -90 m`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := a.parseDate(args[0])
			if err != nil {
				return err
			}

			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("amount %q: %w", args[1], err)
			}

			unit, err := date.ParseUnit(args[2])
			if err != nil {
				return unknown("unit", args[2], []string{"day", "month", "year", "hour", "minute", "second"})
			}

			res, err := date.AddTime(t, amount, unit)
			if err != nil {
				return err
			}

			a.println(a.formatter().FormatDateTime(res, a.cfg.Date.DateTimeLayout))

			return nil
		},
	}
}

func (a *app) dateDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <date> <date>",
		Short: "Whole days from the second date to the first",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			from, err := a.parseDate(args[0])
			if err != nil {
				return err
			}

			to, err := a.parseDate(args[1])
			if err != nil {
				return err
			}

			a.println(date.DiffDays(from, to))

			return nil
		},
	}
}

func (a *app) dateTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today <date>",
		Short: "Print true when the date falls on the current day",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := a.parseDate(args[0])
			if err != nil {
				return err
			}

			a.println(a.formatter().IsToday(t))

			return nil
		},
	}
}
