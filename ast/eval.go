package ast

import (
	"go.uber.org/zap"

	"github.com/gridlang/fx"
)

func (s *Scalar) Evaluate(ctx *fx.Context) (fx.Value, error) {
	return s.value, nil
}

func (e *EmptyValue) Evaluate(ctx *fx.Context) (fx.Value, error) {
	return fx.Empty, nil
}

// Evaluate returns the error kind in-band.  An error literal is ordinary
// data until something coerces it; the fault is raised at the point of
// use, not here.
func (e *Error) Evaluate(ctx *fx.Context) (fx.Value, error) {
	return fx.NewError(e.kind), nil
}

func (n *NotSupported) Evaluate(ctx *fx.Context) (fx.Value, error) {
	if ctx.Logger != nil {
		ctx.Logger.Debug("evaluated unsupported construct", zap.String("feature", n.feature))
	}
	return fx.Empty, fx.NotSupported(n.feature)
}

// Evaluate returns the derived value when the handle can produce one and
// otherwise the wrapped handle itself.
func (x *XObject) Evaluate(ctx *fx.Context) (fx.Value, error) {
	switch h := x.handle.(type) {
	case fx.Valuer:
		return h.FormulaValue(), nil
	case fx.Value:
		return h, nil
	default:
		return fx.NewObject(h), nil
	}
}

// Evaluate delegates entirely to the bound implementation, passing the
// unevaluated argument expressions; the implementation decides which
// arguments to evaluate and when.
func (c *Call) Evaluate(ctx *fx.Context) (fx.Value, error) {
	if c.fn == nil || c.fn.fn == nil {
		return fx.Empty, fx.Faultf(fx.NameNotRecognized, "call to unbound function")
	}
	return c.fn.fn.Call(ctx, c.args)
}
