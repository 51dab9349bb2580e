package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// repl evaluates one line at a time until end of input. The prompt is only
// shown when standard input is a terminal.
func (a *app) repl() error {
	interactive := isTerminal(a.stdin)

	prompt := color.New(color.FgCyan)
	if interactive && a.cfg.Colored(isTerminal(a.stdout)) {
		prompt.EnableColor()
	} else {
		prompt.DisableColor()
	}

	// A Reader rather than a Scanner: lines have no length limit.
	reader := bufio.NewReader(a.stdin)
	for {
		if interactive {
			prompt.Fprint(a.stdout, a.cfg.Prompt)
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			a.exitCode = exitIOErr
			return errors.Wrap(err, "reading input")
		}

		if strings.TrimSpace(line) != "" {
			// Diagnostics are reported per line and leave the exit status
			// alone.
			a.runSource(strings.TrimRight(line, "\r\n"))
		}

		if err == io.EOF {
			break
		}
	}
	if interactive {
		fmt.Fprintln(a.stdout)
	}

	return nil
}
