package combo_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/ava12/combo"
	"github.com/ava12/combo/internal/test"
	"github.com/ava12/combo/source"
)

func TestErrorMessage(t *testing.T) {
	named := source.New("input", "1 +\n  x")
	anonymous := source.New("", "1 +\n  x")

	samples := []struct {
		e        *combo.Error
		expected string
	}{
		{combo.Errorf(combo.EvalErrors, "division by zero"), "division by zero"},
		{combo.Errorf(combo.SyntaxErrors, "unexpected %q", "x"), `unexpected "x"`},
		{combo.ErrorAt(named.Input().Advance(6).SourcePos(), combo.SyntaxErrors, "unexpected %q", "x"), `unexpected "x" in input at line 2 col 3`},
		{combo.ErrorAt(anonymous.Input().Advance(6).SourcePos(), combo.SyntaxErrors, "oops"), "oops at line 2 col 3"},
	}

	for _, s := range samples {
		test.ExpectString(t, s.expected, s.e.Error())
	}
}

func TestErrorFields(t *testing.T) {
	src := source.New("input", "abc")
	e := combo.ErrorAt(src.Input().Advance(2).SourcePos(), combo.SyntaxErrors+1, "bad")
	test.ExpectInt(t, combo.SyntaxErrors+1, e.Code)
	test.ExpectString(t, "bad", e.Message)
	test.ExpectString(t, "input", e.SourceName)
	test.ExpectInt(t, 1, e.Line)
	test.ExpectInt(t, 3, e.Col)

	test.ExpectErrorCode(t, combo.SyntaxErrors+1, errors.Wrap(e, "parsing"))
}
