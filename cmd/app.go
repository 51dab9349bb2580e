package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/kievzenit/ylox/internal/compiler_errors"
	"github.com/kievzenit/ylox/internal/config"
	"github.com/kievzenit/ylox/internal/driver"
)

// Exit codes besides the ones the driver maps diagnostics to.
const (
	exitUsage   = 64
	exitNoInput = 66
	exitIOErr   = 74
)

// app holds what every command needs. Streams are injected so tests can
// run commands against buffers.
type app struct {
	v   *viper.Viper
	cfg *config.Config

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	exitCode int
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		v: config.New(),

		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// execute runs the command line and returns the process exit code.
func (a *app) execute(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		a.errorf("ylox: %s", err)
		if a.exitCode == driver.ExitOK {
			a.exitCode = exitUsage
		}
	}

	return a.exitCode
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ylox [script]",
		Short: "Scan, parse and evaluate ylox expressions",
		Long: `
Evaluates the expression in script and prints its value. With no script,
reads one expression per line from standard input. A script of "-" reads
the expression from standard input.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runRootCmd,
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	config.AddFlags(root.PersistentFlags())
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		a.tokensCmd(),
		a.astCmd(),
		a.dumpCmd(),
		a.checkCmd(),
		a.emitCmd(),
	)

	return root
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

func (a *app) runRootCmd(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return a.repl()
	}

	source, err := a.readSource(args[0])
	if err != nil {
		return err
	}

	a.exitCode = a.runSource(source)
	return nil
}

// runSource runs one program and prints its value and diagnostics.
func (a *app) runSource(source string) int {
	result := driver.Run(source, a.driverOptions())

	if a.cfg.ShowTokens {
		for _, token := range result.Tokens {
			fmt.Fprintln(a.stdout, token.String())
		}
	}
	if a.cfg.ShowAST && result.Expr != nil {
		fmt.Fprintln(a.stdout, result.Printed)
	}
	if result.HasValue {
		fmt.Fprintln(a.stdout, result.Value)
	}

	a.report(result.Diagnostics)
	return result.ExitCode()
}

func (a *app) driverOptions() driver.Options {
	return driver.Options{
		AllowTrailing: a.cfg.AllowTrailing,
	}
}

// readSource reads a script, or standard input for "-".
func (a *app) readSource(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
		err = errors.Wrap(err, "reading standard input")
	} else {
		data, err = os.ReadFile(path)
		err = errors.Wrapf(err, "reading %s", path)
	}
	if err != nil {
		a.exitCode = exitNoInput
		return "", err
	}

	return string(data), nil
}

func (a *app) report(errs compiler_errors.Errors) {
	errs.Report(a.stderr, a.cfg.Colored(isTerminal(a.stderr)))
}

func (a *app) errorf(format string, args ...any) {
	colored := isTerminal(a.stderr)
	if a.cfg != nil {
		colored = a.cfg.Colored(colored)
	}

	c := color.New(color.FgRed, color.Bold)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintln(a.stderr, strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// isTerminal is false for anything that is not a terminal *os.File.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
