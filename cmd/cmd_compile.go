package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kievzenit/ylox/internal/driver"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Type-check a script without running it",
		Long: `
Reports every operand type error in the script. Because expressions have
no variables, these are exactly the runtime errors evaluation would hit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			source, err := a.readSource(args[0])
			if err != nil {
				return err
			}

			program, errs := driver.Check(source, a.driverOptions())
			if program != nil {
				fmt.Fprintln(a.stdout, program.ResultType().Type())
			}

			a.report(errs)
			a.exitCode = driver.ExitCodeFor(errs)
			return nil
		},
	}
}

func (a *app) emitCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "emit <file>",
		Short: "Compile a script to LLVM IR",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			source, err := a.readSource(args[0])
			if err != nil {
				return err
			}

			ir, errs := driver.Compile(source, a.driverOptions())
			a.report(errs)
			a.exitCode = driver.ExitCodeFor(errs)
			if len(errs) > 0 {
				return nil
			}

			if output == "" || output == "-" {
				fmt.Fprint(a.stdout, ir)
				return nil
			}
			if err := os.WriteFile(output, []byte(ir), 0o644); err != nil {
				a.exitCode = exitIOErr
				return errors.Wrapf(err, "writing %s", output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the IR to this file instead of standard output")

	return cmd
}
