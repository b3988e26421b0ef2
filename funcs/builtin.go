package funcs

import (
	"strings"

	"github.com/gridlang/fx"
	"github.com/gridlang/fx/ast"
	"github.com/gridlang/fx/coerce"
)

// sum adds the numeric coercion of every argument.  Omitted arguments
// coerce to zero.  An in-band error value surfaces as a fault here, at
// the point the error is used as a number.
type sum struct{}

func (s *sum) Call(ctx *fx.Context, args []ast.Expr) (fx.Value, error) {
	var total float64
	for _, arg := range args {
		val, err := arg.Evaluate(ctx)
		if err != nil {
			return fx.Empty, err
		}
		f, err := coerce.ToNumber(ctx, val)
		if err != nil {
			return fx.Empty, err
		}
		total += f
	}
	return fx.NewNumber(total), nil
}

type concatenate struct{}

func (c *concatenate) Call(ctx *fx.Context, args []ast.Expr) (fx.Value, error) {
	var b strings.Builder
	for _, arg := range args {
		val, err := arg.Evaluate(ctx)
		if err != nil {
			return fx.Empty, err
		}
		s, err := coerce.ToText(ctx, val)
		if err != nil {
			return fx.Empty, err
		}
		b.WriteString(s)
	}
	return fx.NewText(b.String()), nil
}

// ifFn is lazy in its branches: only the chosen branch is evaluated, so
// IF can guard an expression that would otherwise fault.
type ifFn struct{}

func (f *ifFn) Call(ctx *fx.Context, args []ast.Expr) (fx.Value, error) {
	val, err := args[0].Evaluate(ctx)
	if err != nil {
		return fx.Empty, err
	}
	cond, err := coerce.ToBool(ctx, val)
	if err != nil {
		return fx.Empty, err
	}
	if cond {
		return args[1].Evaluate(ctx)
	}
	if len(args) < 3 {
		return fx.NewBool(false), nil
	}
	return args[2].Evaluate(ctx)
}

// isError tests the in-band channel without coercing, so an error value
// reaching it reports true instead of faulting.
type isError struct{}

func (i *isError) Call(ctx *fx.Context, args []ast.Expr) (fx.Value, error) {
	val, err := args[0].Evaluate(ctx)
	if err != nil {
		return fx.Empty, err
	}
	return fx.NewBool(val.IsError()), nil
}
