package fx

import (
	"fmt"
)

// ErrorKind enumerates the spreadsheet-visible error values.  An ErrorKind
// travels in-band as a Value (see NewError) and only turns into a hard
// fault when code forces it into a concrete scalar type.
type ErrorKind int

const (
	// CellReference is #REF!, a reference to a deleted or invalid cell.
	CellReference ErrorKind = iota
	// CellValue is #VALUE!, an operand of the wrong type.
	CellValue
	// DivisionByZero is #DIV/0!.
	DivisionByZero
	// NameNotRecognized is #NAME?, an unknown function or defined name.
	NameNotRecognized
	// NoValueAvailable is #N/A.
	NoValueAvailable
	// NullValue is #NULL!, an empty range intersection.
	NullValue
	// NumberInvalid is #NUM!, a number outside the representable domain.
	NumberInvalid
)

// Label returns the rendering of the error kind as it appears in a cell.
func (k ErrorKind) Label() string {
	switch k {
	case CellReference:
		return "#REF!"
	case CellValue:
		return "#VALUE!"
	case DivisionByZero:
		return "#DIV/0!"
	case NameNotRecognized:
		return "#NAME?"
	case NoValueAvailable:
		return "#N/A"
	case NullValue:
		return "#NULL!"
	case NumberInvalid:
		return "#NUM!"
	}
	return fmt.Sprintf("#ERR%d!", int(k))
}

func (k ErrorKind) String() string { return k.Label() }

// Fault is the hard-fault channel: a spreadsheet error kind that has been
// forced out of band, either by coercing an in-band error value to a
// scalar or by an invalid operation such as division by zero.  Faults
// propagate up to the top-level caller, which decides whether to surface
// the kind as a cell error value or as a process-level failure.
type Fault struct {
	Kind   ErrorKind
	Detail string
}

func (f *Fault) Error() string {
	if f.Detail == "" {
		return f.Kind.Label()
	}
	return fmt.Sprintf("%s: %s", f.Kind.Label(), f.Detail)
}

// Value returns the in-band form of the fault's kind so a caller can
// store the failure back into a cell.
func (f *Fault) Value() Value {
	return NewError(f.Kind)
}

// Faultf builds a Fault with a formatted detail message.
func Faultf(kind ErrorKind, format string, args ...any) *Fault {
	return &Fault{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// NotSupportedError is the second hard-fault flavor: an expression node
// that is recognized structurally but has no evaluation semantics in this
// core (range algebra, spill ranges, implicit intersection, structured and
// 3-D references).  It is distinct from Fault at the type level so callers
// can tell a spreadsheet error from a missing feature with errors.As.
type NotSupportedError struct {
	Feature string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s is not supported", e.Feature)
}

// NotSupported builds a NotSupportedError for the named feature.
func NotSupported(feature string) *NotSupportedError {
	return &NotSupportedError{Feature: feature}
}
