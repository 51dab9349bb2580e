package compiler_errors

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
)

type CompilerError interface {
	error
	GetMessage() string
	GetLine() int
}

type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Errors() Errors
}

type CompilerErrorHandler struct {
	errors Errors
}

func NewErrorHandler() *CompilerErrorHandler {
	return &CompilerErrorHandler{
		errors: make(Errors, 0),
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

// Errors returns a copy of everything reported so far.
func (eh *CompilerErrorHandler) Errors() Errors {
	out := make(Errors, len(eh.errors))
	copy(out, eh.errors)
	return out
}

// Errors is an ordered list of diagnostics from one or more phases.
type Errors []CompilerError

// Err folds the list into a single error, nil when the list is empty.
func (errs Errors) Err() error {
	var merr *multierror.Error
	for _, err := range errs {
		merr = multierror.Append(merr, err)
	}
	if merr == nil {
		return nil
	}
	merr.ErrorFormat = formatErrors
	return merr.ErrorOrNil()
}

func formatErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// Report writes the folded diagnostics, one per line, and nothing when the
// list is empty. Multi-line diagnostics (runtime errors) are written as they
// render.
func (errs Errors) Report(w io.Writer, colored bool) {
	err := errs.Err()
	if err == nil {
		return
	}

	c := color.New(color.FgRed)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	c.Fprintln(w, err.Error())
}
