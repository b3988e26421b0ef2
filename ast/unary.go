package ast

import (
	"github.com/gridlang/fx"
	"github.com/gridlang/fx/coerce"
)

func (u *UnaryExpr) Evaluate(ctx *fx.Context) (fx.Value, error) {
	val, err := u.operand.Evaluate(ctx)
	if err != nil {
		return fx.Empty, err
	}
	switch u.op {
	case UnaryAdd:
		// Unary plus passes the operand through untouched, whatever
		// its kind.
		return val, nil
	case UnarySub:
		f, err := coerce.ToNumber(ctx, val)
		if err != nil {
			return fx.Empty, err
		}
		return fx.NewNumber(-f), nil
	case UnaryPercent:
		f, err := coerce.ToNumber(ctx, val)
		if err != nil {
			return fx.Empty, err
		}
		return fx.NewNumber(f / 100), nil
	case UnarySpillRange:
		return fx.Empty, fx.NotSupported("spill range operator")
	case UnaryImplicitIntersection:
		return fx.Empty, fx.NotSupported("implicit intersection operator")
	}
	return fx.Empty, fx.NotSupported("unary operator " + u.op.String())
}
