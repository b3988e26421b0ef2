package ast

import "fmt"

// Visitor is the double-dispatch contract for tree walks: exactly one
// operation per node variant, parameterized by a caller-chosen context
// and result type.  Formatting, dependency extraction, and other
// analyses implement Visitor instead of type-switching on nodes
// themselves; adding a node variant adds a method here, which breaks
// every implementation at compile time until it handles the new variant.
type Visitor[C, R any] interface {
	VisitScalar(C, *Scalar) R
	VisitUnaryExpr(C, *UnaryExpr) R
	VisitBinaryExpr(C, *BinaryExpr) R
	VisitCall(C, *Call) R
	VisitXObject(C, *XObject) R
	VisitEmptyValue(C, *EmptyValue) R
	VisitError(C, *Error) R
	VisitNotSupported(C, *NotSupported) R
	VisitReference(C, *Reference) R
	VisitStructuredReference(C, *StructuredReference) R
	VisitPrefix(C, *Prefix) R
	VisitFile(C, *File) R
}

// Accept dispatches n to the visitor operation matching its variant.
// The node set is sealed inside this package, so the switch below is the
// single dispatch point and covers every variant.
func Accept[C, R any](n Node, ctx C, v Visitor[C, R]) R {
	switch n := n.(type) {
	case *Scalar:
		return v.VisitScalar(ctx, n)
	case *UnaryExpr:
		return v.VisitUnaryExpr(ctx, n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(ctx, n)
	case *Call:
		return v.VisitCall(ctx, n)
	case *XObject:
		return v.VisitXObject(ctx, n)
	case *EmptyValue:
		return v.VisitEmptyValue(ctx, n)
	case *Error:
		return v.VisitError(ctx, n)
	case *NotSupported:
		return v.VisitNotSupported(ctx, n)
	case *Reference:
		return v.VisitReference(ctx, n)
	case *StructuredReference:
		return v.VisitStructuredReference(ctx, n)
	case *Prefix:
		return v.VisitPrefix(ctx, n)
	case *File:
		return v.VisitFile(ctx, n)
	}
	panic(fmt.Sprintf("ast: node type %T outside the sealed set", n))
}
