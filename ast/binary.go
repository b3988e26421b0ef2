package ast

import (
	"math"

	"github.com/gridlang/fx"
	"github.com/gridlang/fx/coerce"
)

// divEpsilon is the magnitude below which a divisor counts as zero.
// Dividing by anything smaller faults with #DIV/0! regardless of the
// numerator.
const divEpsilon = 1e-10

func (b *BinaryExpr) Evaluate(ctx *fx.Context) (fx.Value, error) {
	lhs, err := b.lhs.Evaluate(ctx)
	if err != nil {
		return fx.Empty, err
	}
	rhs, err := b.rhs.Evaluate(ctx)
	if err != nil {
		return fx.Empty, err
	}
	switch b.op {
	case Concat:
		return evalConcat(ctx, lhs, rhs)
	case Add, Sub, Mul, Div, Exp:
		return evalArithmetic(ctx, b.op, lhs, rhs)
	case Lt, Lte, Eq, Neq, Gte, Gt:
		return fx.NewBool(compareResult(b.op, coerce.Compare(ctx, lhs, rhs))), nil
	case Range:
		return fx.Empty, fx.NotSupported("range operator")
	case Union:
		return fx.Empty, fx.NotSupported("range union operator")
	case Intersect:
		return fx.Empty, fx.NotSupported("range intersection operator")
	}
	return fx.Empty, fx.NotSupported("binary operator " + b.op.String())
}

func evalConcat(ctx *fx.Context, lhs, rhs fx.Value) (fx.Value, error) {
	l, err := coerce.ToText(ctx, lhs)
	if err != nil {
		return fx.Empty, err
	}
	r, err := coerce.ToText(ctx, rhs)
	if err != nil {
		return fx.Empty, err
	}
	return fx.NewText(l + r), nil
}

func evalArithmetic(ctx *fx.Context, op BinaryOp, lhs, rhs fx.Value) (fx.Value, error) {
	l, err := coerce.ToNumber(ctx, lhs)
	if err != nil {
		return fx.Empty, err
	}
	r, err := coerce.ToNumber(ctx, rhs)
	if err != nil {
		return fx.Empty, err
	}
	switch op {
	case Add:
		return fx.NewNumber(l + r), nil
	case Sub:
		return fx.NewNumber(l - r), nil
	case Mul:
		return fx.NewNumber(l * r), nil
	case Div:
		if math.Abs(r) < divEpsilon {
			return fx.Empty, fx.Faultf(fx.DivisionByZero, "division by zero")
		}
		return fx.NewNumber(l / r), nil
	case Exp:
		return fx.NewNumber(pow(l, r)), nil
	}
	return fx.Empty, fx.NotSupported("arithmetic operator " + op.String())
}

// pow special-cases the common small integral and half exponents so that
// e.g. 4^0.5 and 3^2 come out exact instead of drifting through the
// general power function.  Exponent 0 yields 1 even for base 0.
func pow(base, exp float64) float64 {
	switch exp {
	case 0:
		return 1
	case 0.5:
		return math.Sqrt(base)
	case 1:
		return base
	case 2:
		return base * base
	case 3:
		return base * base * base
	case 4:
		sq := base * base
		return sq * sq
	}
	return math.Pow(base, exp)
}

// compareResult maps an ordering from coerce.Compare onto the requested
// comparison operator.
func compareResult(op BinaryOp, ord int) bool {
	switch op {
	case Lt:
		return ord < 0
	case Lte:
		return ord <= 0
	case Eq:
		return ord == 0
	case Neq:
		return ord != 0
	case Gte:
		return ord >= 0
	case Gt:
		return ord > 0
	}
	return false
}
