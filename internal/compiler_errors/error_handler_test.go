package compiler_errors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeError struct {
	line    int
	message string
}

func (e *fakeError) GetMessage() string { return e.message }
func (e *fakeError) GetLine() int       { return e.line }
func (e *fakeError) Error() string      { return fmt.Sprintf("[line %d] %s", e.line, e.message) }

func TestErrorHandler(t *testing.T) {
	eh := NewErrorHandler()
	assert.False(t, eh.HasErrors())
	assert.Empty(t, eh.Errors())

	eh.AddError(&fakeError{line: 1, message: "first"})
	eh.AddError(&fakeError{line: 3, message: "second"})
	require.True(t, eh.HasErrors())

	errs := eh.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "first", errs[0].GetMessage())
	assert.Equal(t, 3, errs[1].GetLine())

	// The returned slice is a snapshot.
	errs[0] = &fakeError{line: 9, message: "changed"}
	assert.Equal(t, "first", eh.Errors()[0].GetMessage())
}

func TestErrors_Err(t *testing.T) {
	var none Errors
	assert.NoError(t, none.Err())
	assert.NoError(t, Errors{}.Err())

	errs := Errors{
		&fakeError{line: 1, message: "first"},
		&fakeError{line: 2, message: "second"},
	}
	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t, "[line 1] first\n[line 2] second", err.Error())
}

func TestErrors_Report(t *testing.T) {
	errs := Errors{
		&fakeError{line: 1, message: "first"},
		&fakeError{line: 2, message: "second"},
	}

	var plain bytes.Buffer
	errs.Report(&plain, false)
	assert.Equal(t, "[line 1] first\n[line 2] second\n", plain.String())

	var colored bytes.Buffer
	errs.Report(&colored, true)
	assert.Contains(t, colored.String(), "\x1b[31m")
	assert.Contains(t, colored.String(), "[line 2] second")
}

func TestErrors_ReportMatchesErr(t *testing.T) {
	errs := Errors{
		&fakeError{line: 4, message: "runtime\n[line 4]"},
		&fakeError{line: 5, message: "next"},
	}

	var out bytes.Buffer
	errs.Report(&out, false)
	assert.Equal(t, errs.Err().Error()+"\n", out.String())

	out.Reset()
	Errors{}.Report(&out, true)
	assert.Empty(t, out.String())
}
