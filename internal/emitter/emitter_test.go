package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kievzenit/ylox/internal/ast"
	"github.com/kievzenit/ylox/internal/hir"
	"github.com/kievzenit/ylox/internal/lexer"
	"github.com/kievzenit/ylox/internal/parser"
	"github.com/kievzenit/ylox/internal/semantic_analyzer"
)

func emit(t *testing.T, source string) string {
	program, errs := semantic_analyzer.Analyze(mustParse(t, source))
	require.Empty(t, errs, source)

	e := NewEmitter(program)
	defer e.Dispose()

	module, err := e.Emit()
	require.NoError(t, err, source)
	return module.String()
}

func TestEmit_ReturnTypes(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"1 + 2", "define double @ylox_main()"},
		{"1 < 2", "define i1 @ylox_main()"},
		{"!nil", "define i1 @ylox_main()"},
		{`"s"`, "@ylox_main()"},
		{"nil", "@ylox_main()"},
	}
	for _, tc := range testCases {
		assert.Contains(t, emit(t, tc.input), tc.want, tc.input)
	}
}

// Every operand is a constant, so the builder folds arithmetic and compares.
func TestEmit_ConstantFolding(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"1 + 2", "ret double 3.000000e+00"},
		{"-123 * 2", "ret double -2.460000e+02"},
		{"1 < 2", "ret i1 true"},
		{"2 <= 1", "ret i1 false"},
		{"!true", "ret i1 false"},
		{"!!false", "ret i1 false"},
		{"!nil", "ret i1 true"},
		{"!0", "ret i1 false"},
		{`!""`, "ret i1 false"},
		{"true == true", "ret i1 true"},
		{"true != false", "ret i1 true"},
		{"nil == nil", "ret i1 true"},
		{"nil != nil", "ret i1 false"},
		{`1 == "1"`, "ret i1 false"},
		{"nil != false", "ret i1 true"},
		{"0 / 0 == 0 / 0", "ret i1 false"},
		{"0 / 0 != 0 / 0", "ret i1 true"},
	}
	for _, tc := range testCases {
		assert.Contains(t, emit(t, tc.input), tc.want, tc.input)
	}
}

func TestEmit_Strings(t *testing.T) {
	ir := emit(t, `"foo" + "bar"`)
	assert.Contains(t, ir, `c"foo\00"`)
	assert.Contains(t, ir, `c"bar\00"`)
	assert.Contains(t, ir, "declare")
	assert.Contains(t, ir, "@ylox_string_concat(")
	assert.Contains(t, ir, "call")
	assert.NotContains(t, ir, "ylox_string_equal")

	ir = emit(t, `"a" != "b"`)
	assert.Contains(t, ir, "@ylox_string_equal(")
	assert.Contains(t, ir, "xor i1")
	assert.NotContains(t, ir, "ylox_string_concat")
}

func TestEmit_OnlyDeclaresUsedExterns(t *testing.T) {
	ir := emit(t, "1 + 2")
	assert.NotContains(t, ir, "declare")
}

func TestEmit_HandBuiltProgram(t *testing.T) {
	program, errs := semantic_analyzer.Analyze(mustParse(t, `("a" + "b") == "ab"`))
	require.Empty(t, errs)
	require.Equal(t, []hir.Extern{hir.StringConcat, hir.StringEqual}, program.Externs)

	e := NewEmitter(program)
	defer e.Dispose()
	module, err := e.Emit()
	require.NoError(t, err)

	assert.False(t, module.NamedFunction(MainFuncName).IsNil())
	assert.False(t, module.NamedFunction("ylox_string_concat").IsNil())
	assert.False(t, module.NamedFunction("ylox_string_equal").IsNil())
}

func mustParse(t *testing.T, source string) ast.Expr {
	tokens, errs := lexer.Scan(source)
	require.Empty(t, errs, source)
	expr, errs := parser.Parse(tokens)
	require.Empty(t, errs, source)
	return expr
}
