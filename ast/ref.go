package ast

import (
	"github.com/gridlang/fx"
)

// RefKind enumerates the address forms a Reference can carry.
type RefKind int

const (
	Cell RefKind = iota
	NamedRange
	VerticalRange
	HorizontalRange
)

func (k RefKind) String() string {
	switch k {
	case Cell:
		return "cell"
	case NamedRange:
		return "named range"
	case VerticalRange:
		return "vertical range"
	case HorizontalRange:
		return "horizontal range"
	}
	return "reference"
}

// Reference is an unevaluated cell, named-range, or whole-row/column
// address, preserved for the workbook layer and for dependency analyzers
// walking the tree.  Resolution never happens in this core: Evaluate
// always faults.
type Reference struct {
	prefix  *Prefix
	kind    RefKind
	address string
}

func NewReference(prefix *Prefix, kind RefKind, address string) *Reference {
	return &Reference{prefix: prefix, kind: kind, address: address}
}

func (r *Reference) Prefix() *Prefix { return r.prefix }
func (r *Reference) RefKind() RefKind {
	return r.kind
}
func (r *Reference) Address() string { return r.address }

// StructuredReference is a table-column style address, recognized
// syntactically only.
type StructuredReference struct {
	prefix *Prefix
}

func NewStructuredReference(prefix *Prefix) *StructuredReference {
	return &StructuredReference{prefix: prefix}
}

func (s *StructuredReference) Prefix() *Prefix { return s.prefix }

// Prefix scopes a reference to a sheet, a contiguous 3-D sheet range, an
// external file, or a sheet within an external file.  It is structural
// only and is never evaluated directly.
type Prefix struct {
	file       *File
	sheet      string
	firstSheet string
	lastSheet  string
}

// NewSheetPrefix scopes to a single sheet in the current file.
func NewSheetPrefix(sheet string) *Prefix {
	return &Prefix{sheet: sheet}
}

// NewSheetRangePrefix scopes to a contiguous 3-D range of sheets.
func NewSheetRangePrefix(firstSheet, lastSheet string) *Prefix {
	return &Prefix{firstSheet: firstSheet, lastSheet: lastSheet}
}

// NewFilePrefix scopes to an external file with no sheet, as used by
// named ranges defined in another workbook.
func NewFilePrefix(file *File) *Prefix {
	return &Prefix{file: file}
}

// NewFileSheetPrefix scopes to a sheet within an external file.
func NewFileSheetPrefix(file *File, sheet string) *Prefix {
	return &Prefix{file: file, sheet: sheet}
}

func (p *Prefix) File() *File        { return p.file }
func (p *Prefix) Sheet() string      { return p.sheet }
func (p *Prefix) FirstSheet() string { return p.firstSheet }
func (p *Prefix) LastSheet() string  { return p.lastSheet }

// IsThreeD reports whether the prefix spans a range of sheets.
func (p *Prefix) IsThreeD() bool {
	return p.firstSheet != "" || p.lastSheet != ""
}

// File identifies an external workbook by direct path or by an indirect
// numeric identifier assigned by the file format.
type File struct {
	path string
	id   int
	byID bool
}

func NewFile(path string) *File {
	return &File{path: path}
}

func NewFileID(id int) *File {
	return &File{id: id, byID: true}
}

func (f *File) Path() string { return f.path }
func (f *File) ID() int      { return f.id }
func (f *File) ByID() bool   { return f.byID }

// Evaluate on a Reference always faults: address resolution belongs to
// the workbook component.
func (r *Reference) Evaluate(ctx *fx.Context) (fx.Value, error) {
	return fx.Empty, fx.NotSupported(r.kind.String() + " reference resolution")
}

// Evaluate on a StructuredReference always faults.
func (s *StructuredReference) Evaluate(ctx *fx.Context) (fx.Value, error) {
	return fx.Empty, fx.NotSupported("structured reference resolution")
}

func (*Reference) node()           {}
func (*StructuredReference) node() {}
func (*Prefix) node()              {}
func (*File) node()                {}
