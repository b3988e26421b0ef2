package ast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlang/fx"
	"github.com/gridlang/fx/ast"
)

func evaluate(t *testing.T, e ast.Expr) fx.Value {
	t.Helper()
	val, err := e.Evaluate(fx.NewContext())
	require.NoError(t, err)
	return val
}

func evaluateFault(t *testing.T, e ast.Expr) *fx.Fault {
	t.Helper()
	_, err := e.Evaluate(fx.NewContext())
	var fault *fx.Fault
	require.True(t, errors.As(err, &fault), "expected a fault, got %v", err)
	return fault
}

func evaluateNotSupported(t *testing.T, e ast.Expr) *fx.NotSupportedError {
	t.Helper()
	_, err := e.Evaluate(fx.NewContext())
	var notImpl *fx.NotSupportedError
	require.True(t, errors.As(err, &notImpl), "expected not-supported, got %v", err)
	return notImpl
}

func TestNewScalarRejectsEmpty(t *testing.T) {
	_, err := ast.NewScalar(fx.Empty)
	assert.ErrorIs(t, err, ast.ErrEmptyScalar)

	s, err := ast.NewScalar(fx.NewNumber(1))
	require.NoError(t, err)
	assert.Equal(t, fx.NewNumber(1), s.Value())
}

func TestScalarEvaluate(t *testing.T) {
	assert.Equal(t, fx.NewNumber(2.5), evaluate(t, ast.NewNumber(2.5)))
	assert.Equal(t, fx.NewText("a"), evaluate(t, ast.NewText("a")))
	assert.Equal(t, fx.NewBool(true), evaluate(t, ast.NewBool(true)))
}

func TestEmptyValueEvaluate(t *testing.T) {
	assert.Equal(t, fx.Empty, evaluate(t, ast.NewEmptyValue()))
}

// An error literal evaluates to its kind in-band; the fault comes later,
// at the point of coercion.
func TestErrorEvaluateInBand(t *testing.T) {
	val := evaluate(t, ast.NewError(fx.NoValueAvailable))
	assert.True(t, val.IsError())
	assert.Equal(t, fx.NoValueAvailable, val.Err())
}

func TestNotSupportedEvaluate(t *testing.T) {
	e := evaluateNotSupported(t, ast.NewNotSupported("array constant"))
	assert.Equal(t, "array constant", e.Feature)
}

type valuedHandle struct{ v fx.Value }

func (h valuedHandle) FormulaValue() fx.Value { return h.v }

func TestXObjectEvaluate(t *testing.T) {
	// A handle with the value capability yields the derived value.
	val := evaluate(t, ast.NewXObject(valuedHandle{fx.NewNumber(9)}))
	assert.Equal(t, fx.NewNumber(9), val)

	// Anything else comes back wrapped, unchanged.
	val = evaluate(t, ast.NewXObject("raw"))
	assert.Equal(t, fx.KindObject, val.Kind())
	assert.Equal(t, "raw", val.Object())
}

func TestXObjectIter(t *testing.T) {
	it := ast.NewXObject([]any{1, 2}).Iter()
	a, ok := it.Next()
	require.True(t, ok)
	b, ok := it.Next()
	require.True(t, ok)
	_, more := it.Next()
	assert.False(t, more)
	assert.Equal(t, []any{1, 2}, []any{a, b})
}

func TestReferenceEvaluateFaults(t *testing.T) {
	refs := []ast.Expr{
		ast.NewReference(nil, ast.Cell, "A1"),
		ast.NewReference(ast.NewSheetPrefix("Sheet2"), ast.NamedRange, "Totals"),
		ast.NewReference(nil, ast.VerticalRange, "B:B"),
		ast.NewReference(nil, ast.HorizontalRange, "3:3"),
		ast.NewStructuredReference(nil),
	}
	for _, r := range refs {
		evaluateNotSupported(t, r)
	}
}

func TestUnboundCallFaults(t *testing.T) {
	call := ast.NewCall(nil, nil, nil)
	f := evaluateFault(t, call)
	assert.Equal(t, fx.NameNotRecognized, f.Kind)
}

type argCounter struct {
	calls int
}

func (a *argCounter) Call(ctx *fx.Context, args []ast.Expr) (fx.Value, error) {
	a.calls++
	return fx.NewNumber(float64(len(args))), nil
}

// The call node hands its argument expressions over unevaluated; the
// binding owns the evaluation strategy.
func TestCallDelegates(t *testing.T) {
	fn := &argCounter{}
	call := ast.NewCall(nil, ast.NewFuncRef("COUNTARGS", fn), []ast.Expr{
		ast.NewNumber(1),
		ast.NewEmptyValue(),
		ast.NewError(fx.CellValue), // must not fault: never evaluated as a scalar
	})
	assert.Equal(t, fx.NewNumber(3), evaluate(t, call))
	assert.Equal(t, 1, fn.calls)
}
