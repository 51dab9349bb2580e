package main

import (
	"fmt"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/kievzenit/ylox/internal/driver"
	"github.com/kievzenit/ylox/internal/lexer"
	"github.com/kievzenit/ylox/internal/printer"
)

// tokensCmd prints one token per line. Lexical errors are reported after
// the tokens that were recognized.
func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			source, err := a.readSource(args[0])
			if err != nil {
				return err
			}

			tokens, errs := lexer.Scan(source)
			for _, token := range tokens {
				fmt.Fprintf(a.stdout, "%d\t%s\n", token.Line, token.String())
			}

			a.report(errs)
			a.exitCode = driver.ExitCodeFor(errs)
			return nil
		},
	}
}

func (a *app) astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the expression tree in prefix form",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			source, err := a.readSource(args[0])
			if err != nil {
				return err
			}

			_, expr, errs := driver.Parse(source, a.driverOptions())
			if expr != nil {
				fmt.Fprintln(a.stdout, printer.Print(expr))
			}

			a.report(errs)
			a.exitCode = driver.ExitCodeFor(errs)
			return nil
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the expression tree with every field",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			source, err := a.readSource(args[0])
			if err != nil {
				return err
			}

			_, expr, errs := driver.Parse(source, a.driverOptions())
			if expr != nil {
				opts := litter.Options{
					Compact:           compact,
					HideZeroValues:    true,
					HidePrivateFields: true,
				}
				fmt.Fprintln(a.stdout, opts.Sdump(expr))
			}

			a.report(errs)
			a.exitCode = driver.ExitCodeFor(errs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "dump on a single line")

	return cmd
}
