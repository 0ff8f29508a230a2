package main

import (
	"strings"

	"github.com/spf13/cobra"

	"datakit/text"
)

func (a *app) caseCmd() *cobra.Command {
	var capitalize bool

	cmd := &cobra.Command{
		Use:   "case <style> <text...>",
		Short: "Convert text to camel, pascal, snake or kebab case",
		Example: `  datakit case snake userAccountID
  datakit case kebab "Hello World"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			style, err := text.ParseStyle(args[0])
			if err != nil {
				return unknown("case style", args[0], text.StyleNames())
			}

			out, err := text.Convert(style, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			if capitalize {
				out = text.Capitalize(out)
			}

			a.println(out)

			return nil
		},
	}

	cmd.Flags().BoolVar(&capitalize, "capitalize", false, "upper-case the first letter of the result")

	return cmd
}

var validators = map[string]func(string) bool{
	"url":   text.IsValidURL,
	"email": text.IsValidEmail,
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <url|email> <value>",
		Short: "Check whether a value is a URL or an email address",
		Long: `Check whether a value is a URL or an email address.

Prints true or false. The command fails only for an unknown kind, so it can be
used in scripts that inspect the output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid, ok := validators[args[0]]
			if !ok {
				return unknown("validator", args[0], []string{"email", "url"})
			}

			res := valid(args[1])
			a.logger(cmd).WithField("value", args[1]).Debugf("valid %s: %t", args[0], res)
			a.println(res)

			return nil
		},
	}
}
