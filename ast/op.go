package ast

import "fmt"

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	UnaryAdd UnaryOp = iota
	UnarySub
	UnaryPercent
	UnarySpillRange
	UnaryImplicitIntersection
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryAdd:
		return "+"
	case UnarySub:
		return "-"
	case UnaryPercent:
		return "%"
	case UnarySpillRange:
		return "#"
	case UnaryImplicitIntersection:
		return "@"
	}
	return fmt.Sprintf("unary-%d", int(op))
}

// BinaryOp enumerates the binary operators.  Range, Union, and Intersect
// are recognized structurally but evaluation of range algebra belongs to
// the workbook layer.
type BinaryOp int

const (
	Concat BinaryOp = iota
	Add
	Sub
	Mul
	Div
	Exp
	Lt
	Lte
	Eq
	Neq
	Gte
	Gt
	Range
	Union
	Intersect
)

func (op BinaryOp) String() string {
	switch op {
	case Concat:
		return "&"
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Exp:
		return "^"
	case Lt:
		return "<"
	case Lte:
		return "<="
	case Eq:
		return "="
	case Neq:
		return "<>"
	case Gte:
		return ">="
	case Gt:
		return ">"
	case Range:
		return ":"
	case Union:
		return ","
	case Intersect:
		return " "
	}
	return fmt.Sprintf("binary-%d", int(op))
}

// IsComparison reports whether op is one of the six comparison operators.
func (op BinaryOp) IsComparison() bool {
	return op >= Lt && op <= Gt
}
