// Package driver runs source text through the pipeline phases and collects
// what each phase produced.
package driver

import (
	"github.com/golang/glog"

	"github.com/kievzenit/ylox/internal/ast"
	"github.com/kievzenit/ylox/internal/compiler_errors"
	"github.com/kievzenit/ylox/internal/emitter"
	"github.com/kievzenit/ylox/internal/hir"
	"github.com/kievzenit/ylox/internal/interpreter"
	"github.com/kievzenit/ylox/internal/lexer"
	"github.com/kievzenit/ylox/internal/parser"
	"github.com/kievzenit/ylox/internal/printer"
	"github.com/kievzenit/ylox/internal/semantic_analyzer"
)

// Exit codes follow sysexits.h.
const (
	ExitOK       = 0
	ExitDataErr  = 65
	ExitSoftware = 70
)

type Options struct {
	// AllowTrailing ignores tokens after the first complete expression.
	AllowTrailing bool
}

func (o Options) parserOptions() []parser.Option {
	var opts []parser.Option
	if o.AllowTrailing {
		opts = append(opts, parser.WithTrailingTokens())
	}
	return opts
}

type Result struct {
	Tokens  []lexer.Token
	Expr    ast.Expr
	Printed string

	Value    string
	HasValue bool

	Diagnostics compiler_errors.Errors
}

func (r *Result) ExitCode() int {
	return ExitCodeFor(r.Diagnostics)
}

// ExitCodeFor is ExitSoftware for runtime errors, ExitDataErr for any other
// diagnostic and ExitOK otherwise.
func ExitCodeFor(errs compiler_errors.Errors) int {
	if len(errs) == 0 {
		return ExitOK
	}

	for _, err := range errs {
		if _, ok := err.(*interpreter.RuntimeError); ok {
			return ExitSoftware
		}
	}

	return ExitDataErr
}

// Run scans, parses, prints and evaluates source. It stops after the first
// phase that reported anything.
func Run(source string, opts Options) *Result {
	result := &Result{}

	result.Tokens, result.Expr, result.Diagnostics = Parse(source, opts)
	if len(result.Diagnostics) > 0 {
		return result
	}

	result.Printed = printer.Print(result.Expr)
	glog.V(2).Infof("tree: %s", result.Printed)

	eh := compiler_errors.NewErrorHandler()
	result.Value, result.HasValue = interpreter.NewInterpreter(eh).Interpret(result.Expr)
	result.Diagnostics = eh.Errors()
	glog.V(1).Infof("interpret: ok=%t, %d diagnostics", result.HasValue, len(result.Diagnostics))

	return result
}

// Check scans, parses and type-checks source.
func Check(source string, opts Options) (*hir.ProgramHir, compiler_errors.Errors) {
	_, expr, errs := Parse(source, opts)
	if len(errs) > 0 {
		return nil, errs
	}

	eh := compiler_errors.NewErrorHandler()
	program := semantic_analyzer.NewSemanticAnalyzer(eh, expr).Analyze()
	glog.V(1).Infof("analyze: %d diagnostics", len(eh.Errors()))

	return program, eh.Errors()
}

// Compile type-checks source and returns the textual LLVM IR of the
// program.
func Compile(source string, opts Options) (string, compiler_errors.Errors) {
	program, errs := Check(source, opts)
	if len(errs) > 0 {
		return "", errs
	}

	e := emitter.NewEmitter(program)
	defer e.Dispose()

	module, err := e.Emit()
	if err != nil {
		// the analyzer accepted the program, so this is a bug
		panic(err)
	}
	glog.V(1).Infof("emit: %d externs", len(program.Externs))

	return module.String(), nil
}

// Parse scans and parses source. The tree is nil when either phase
// reported anything.
func Parse(source string, opts Options) ([]lexer.Token, ast.Expr, compiler_errors.Errors) {
	tokens, errs := lexer.Scan(source)
	glog.V(1).Infof("scan: %d tokens, %d diagnostics", len(tokens), len(errs))
	if glog.V(2) {
		for _, token := range tokens {
			glog.Infof("token: line %d %s", token.Line, token.String())
		}
	}
	if len(errs) > 0 {
		return tokens, nil, errs
	}

	expr, errs := parser.Parse(tokens, opts.parserOptions()...)
	if expr != nil {
		glog.V(1).Infof("parse: depth %d, %d diagnostics", ast.Depth(expr), len(errs))
	} else {
		glog.V(1).Infof("parse: %d diagnostics", len(errs))
	}

	return tokens, expr, errs
}
