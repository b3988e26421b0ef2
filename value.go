// Package fx implements the expression core of a spreadsheet formula
// engine: the scalar value universe, the immutable syntax tree built by an
// external parser, and the coercion and operator semantics that give the
// tree meaning.  Address resolution, the builtin function library, and
// workbook storage are owned by external collaborators.
package fx

import (
	"fmt"
	"strconv"
	"time"
)

// Kind enumerates the variants of the Value tagged union.  Absence is an
// explicit variant rather than a nil pointer.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindText
	KindBool
	KindDateTime
	KindDuration
	KindError
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	case KindDuration:
		return "duration"
	case KindError:
		return "error"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("kind-%d", int(k))
}

// Value is a scalar formula value.  The zero Value is the empty value.
// Values are immutable; all state is set at construction.
type Value struct {
	kind Kind
	num  float64
	text string
	b    bool
	t    time.Time
	d    time.Duration
	errk ErrorKind
	obj  any
}

// Empty is the explicit absent value.
var Empty = Value{}

func NewNumber(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func NewText(s string) Value {
	return Value{kind: KindText, text: s}
}

func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func NewDateTime(t time.Time) Value {
	return Value{kind: KindDateTime, t: t}
}

func NewDuration(d time.Duration) Value {
	return Value{kind: KindDuration, d: d}
}

// NewError wraps a spreadsheet error kind as an in-band value.  The value
// flows through expressions as ordinary data and only becomes a hard fault
// when coerced to a concrete scalar type.
func NewError(kind ErrorKind) Value {
	return Value{kind: KindError, errk: kind}
}

// NewObject wraps an opaque externally-owned handle, e.g. a live cell
// range produced by the workbook layer.
func NewObject(handle any) Value {
	return Value{kind: KindObject, obj: handle}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsEmpty() bool { return v.kind == KindEmpty }
func (v Value) IsError() bool { return v.kind == KindError }

// Number returns the numeric payload.  It is only meaningful when
// Kind() == KindNumber.
func (v Value) Number() float64 { return v.num }

func (v Value) Text() string            { return v.text }
func (v Value) Bool() bool              { return v.b }
func (v Value) DateTime() time.Time     { return v.t }
func (v Value) Duration() time.Duration { return v.d }
func (v Value) Object() any             { return v.obj }

// Err returns the wrapped error kind.  It is only meaningful when
// Kind() == KindError.
func (v Value) Err() ErrorKind { return v.errk }

// String implements fmt.Stringer.  It should only be used for logs and
// debugging; callers that need the formula-visible rendering should use
// coerce.ToText, which applies the coercion rules (and faults on error
// values).
func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return "<empty>"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.text)
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindDateTime:
		return v.t.Format(time.RFC3339)
	case KindDuration:
		return v.d.String()
	case KindError:
		return v.errk.Label()
	case KindObject:
		return fmt.Sprintf("<object %T>", v.obj)
	}
	return fmt.Sprintf("<invalid kind %d>", int(v.kind))
}
