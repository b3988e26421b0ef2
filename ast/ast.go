// Package ast declares the immutable syntax tree for parsed spreadsheet
// formulas and its evaluation semantics.  An external parser builds the
// tree once; every node is fully formed at construction and read-only
// thereafter, so a tree may be shared freely across goroutines.
//
// The design is derived from the GO AST design pattern in
// https://golang.org/pkg/go/ast/
package ast

import (
	"errors"

	"github.com/gridlang/fx"
)

var ErrEmptyScalar = errors.New("scalar node requires a present value")

// Node is the interface implemented by all AST nodes.  The node set is
// closed: external packages traverse it through the Visitor protocol or
// Evaluate, never by adding variants.
type Node interface {
	node()
}

// Expr is the sub-family of Node that can be evaluated.  Evaluation is
// synchronous, eager, and recursive; composite nodes re-evaluate their
// operands on every call because formulas may be volatile.  Evaluate
// never mutates the node.
//
// The returned error is the hard-fault channel and is always a *fx.Fault
// or a *fx.NotSupportedError.  In-band spreadsheet error values travel in
// the fx.Value result instead.
type Expr interface {
	Node
	Evaluate(*fx.Context) (fx.Value, error)
}

// Scalar is a literal number, text, or boolean.
type Scalar struct {
	value fx.Value
}

// NewScalar builds a literal node.  The backing value must be present;
// an omitted argument is represented by EmptyValue, not by a Scalar.
func NewScalar(v fx.Value) (*Scalar, error) {
	if v.IsEmpty() {
		return nil, ErrEmptyScalar
	}
	return &Scalar{value: v}, nil
}

// NewNumber is shorthand for a numeric literal.
func NewNumber(f float64) *Scalar {
	return &Scalar{value: fx.NewNumber(f)}
}

// NewText is shorthand for a text literal.
func NewText(s string) *Scalar {
	return &Scalar{value: fx.NewText(s)}
}

// NewBool is shorthand for a boolean literal.
func NewBool(b bool) *Scalar {
	return &Scalar{value: fx.NewBool(b)}
}

func (s *Scalar) Value() fx.Value { return s.value }

// UnaryExpr applies a unary operator to its operand.
type UnaryExpr struct {
	op      UnaryOp
	operand Expr
}

func NewUnaryExpr(op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{op: op, operand: operand}
}

func (u *UnaryExpr) Op() UnaryOp   { return u.op }
func (u *UnaryExpr) Operand() Expr { return u.operand }

// BinaryExpr is any expression of the form "lhs op rhs".
type BinaryExpr struct {
	op  BinaryOp
	lhs Expr
	rhs Expr
}

func NewBinaryExpr(op BinaryOp, lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{op: op, lhs: lhs, rhs: rhs}
}

func (b *BinaryExpr) Op() BinaryOp { return b.op }
func (b *BinaryExpr) LHS() Expr    { return b.lhs }
func (b *BinaryExpr) RHS() Expr    { return b.rhs }

// Function is the calling contract for a bound function implementation.
// The node passes its argument expressions unevaluated; the
// implementation owns the argument evaluation strategy, so a function may
// be lazy in any of its arguments.
type Function interface {
	Call(ctx *fx.Context, args []Expr) (fx.Value, error)
}

// FuncRef is a function binding resolved by an external registry before
// tree construction: a display name plus its implementation.
type FuncRef struct {
	name string
	fn   Function
}

func NewFuncRef(name string, fn Function) *FuncRef {
	return &FuncRef{name: name, fn: fn}
}

func (f *FuncRef) Name() string { return f.name }

// Call invokes a bound function with an ordered argument list.  Omitted
// arguments appear as EmptyValue nodes.
type Call struct {
	prefix *Prefix
	fn     *FuncRef
	args   []Expr
}

func NewCall(prefix *Prefix, fn *FuncRef, args []Expr) *Call {
	// Copy so a caller-retained slice cannot mutate the node.
	a := make([]Expr, len(args))
	copy(a, args)
	return &Call{prefix: prefix, fn: fn, args: a}
}

func (c *Call) Prefix() *Prefix { return c.prefix }
func (c *Call) Func() *FuncRef  { return c.fn }

// Args returns the argument expressions.  The returned slice must not be
// modified.
func (c *Call) Args() []Expr { return c.args }

// XObject wraps an opaque externally-owned value such as a live cell
// range.  The handle is not owned by this core.
type XObject struct {
	handle any
}

func NewXObject(handle any) *XObject {
	return &XObject{handle: handle}
}

func (x *XObject) Handle() any { return x.handle }

// Iter iterates over the wrapped handle, treating it uniformly as a
// one-or-more-element sequence.
func (x *XObject) Iter() *fx.Iter {
	return fx.NewIter(x.handle)
}

// EmptyValue represents an omitted call argument.
type EmptyValue struct{}

func NewEmptyValue() *EmptyValue {
	return &EmptyValue{}
}

// Error carries one spreadsheet error kind as a literal, e.g. a #REF!
// recorded in the stored formula text.
type Error struct {
	kind fx.ErrorKind
}

func NewError(kind fx.ErrorKind) *Error {
	return &Error{kind: kind}
}

func (e *Error) ErrKind() fx.ErrorKind { return e.kind }

// NotSupported is a placeholder for grammar constructs this core
// recognizes but cannot evaluate yet.
type NotSupported struct {
	feature string
}

func NewNotSupported(feature string) *NotSupported {
	return &NotSupported{feature: feature}
}

func (n *NotSupported) Feature() string { return n.feature }

func (*Scalar) node()       {}
func (*UnaryExpr) node()    {}
func (*BinaryExpr) node()   {}
func (*Call) node()         {}
func (*XObject) node()      {}
func (*EmptyValue) node()   {}
func (*Error) node()        {}
func (*NotSupported) node() {}
