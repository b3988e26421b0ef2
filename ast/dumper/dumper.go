// Package dumper renders a formula tree back into display text.  It is
// a pure consumer of the visitor protocol and doubles as the reference
// for writing new tree walks outside the ast package.
package dumper

import (
	"strconv"
	"strings"

	"github.com/gridlang/fx"
	"github.com/gridlang/fx/ast"
)

// Format returns the display rendering of the tree rooted at n.
func Format(n ast.Node) string {
	var b strings.Builder
	ast.Accept[*strings.Builder, struct{}](n, &b, &formatter{})
	return b.String()
}

type formatter struct{}

func (f *formatter) VisitScalar(b *strings.Builder, s *ast.Scalar) struct{} {
	v := s.Value()
	switch v.Kind() {
	case fx.KindNumber:
		b.WriteString(strconv.FormatFloat(v.Number(), 'f', -1, 64))
	case fx.KindText:
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(v.Text(), `"`, `""`))
		b.WriteByte('"')
	case fx.KindBool:
		if v.Bool() {
			b.WriteString("TRUE")
		} else {
			b.WriteString("FALSE")
		}
	default:
		b.WriteString(v.String())
	}
	return struct{}{}
}

func (f *formatter) VisitUnaryExpr(b *strings.Builder, u *ast.UnaryExpr) struct{} {
	switch u.Op() {
	case ast.UnaryPercent, ast.UnarySpillRange:
		f.operand(b, u.Operand())
		b.WriteString(u.Op().String())
	default:
		b.WriteString(u.Op().String())
		f.operand(b, u.Operand())
	}
	return struct{}{}
}

func (f *formatter) VisitBinaryExpr(b *strings.Builder, x *ast.BinaryExpr) struct{} {
	f.operand(b, x.LHS())
	b.WriteString(x.Op().String())
	f.operand(b, x.RHS())
	return struct{}{}
}

// operand parenthesizes composite sub-expressions so the rendering
// reflects the tree rather than operator precedence.
func (f *formatter) operand(b *strings.Builder, e ast.Expr) {
	switch e.(type) {
	case *ast.BinaryExpr, *ast.UnaryExpr:
		b.WriteByte('(')
		ast.Accept[*strings.Builder, struct{}](e, b, f)
		b.WriteByte(')')
	default:
		ast.Accept[*strings.Builder, struct{}](e, b, f)
	}
}

func (f *formatter) VisitCall(b *strings.Builder, c *ast.Call) struct{} {
	if c.Prefix() != nil {
		ast.Accept[*strings.Builder, struct{}](c.Prefix(), b, f)
	}
	b.WriteString(c.Func().Name())
	b.WriteByte('(')
	for i, arg := range c.Args() {
		if i > 0 {
			b.WriteByte(',')
		}
		ast.Accept[*strings.Builder, struct{}](arg, b, f)
	}
	b.WriteByte(')')
	return struct{}{}
}

func (f *formatter) VisitXObject(b *strings.Builder, x *ast.XObject) struct{} {
	b.WriteString("<external>")
	return struct{}{}
}

func (f *formatter) VisitEmptyValue(b *strings.Builder, e *ast.EmptyValue) struct{} {
	return struct{}{}
}

func (f *formatter) VisitError(b *strings.Builder, e *ast.Error) struct{} {
	b.WriteString(e.ErrKind().Label())
	return struct{}{}
}

func (f *formatter) VisitNotSupported(b *strings.Builder, n *ast.NotSupported) struct{} {
	b.WriteString("<unsupported:")
	b.WriteString(n.Feature())
	b.WriteByte('>')
	return struct{}{}
}

func (f *formatter) VisitReference(b *strings.Builder, r *ast.Reference) struct{} {
	if r.Prefix() != nil {
		ast.Accept[*strings.Builder, struct{}](r.Prefix(), b, f)
	}
	b.WriteString(r.Address())
	return struct{}{}
}

func (f *formatter) VisitStructuredReference(b *strings.Builder, s *ast.StructuredReference) struct{} {
	if s.Prefix() != nil {
		ast.Accept[*strings.Builder, struct{}](s.Prefix(), b, f)
	}
	b.WriteString("[...]")
	return struct{}{}
}

func (f *formatter) VisitPrefix(b *strings.Builder, p *ast.Prefix) struct{} {
	if p.File() != nil {
		b.WriteByte('[')
		ast.Accept[*strings.Builder, struct{}](p.File(), b, f)
		b.WriteByte(']')
	}
	switch {
	case p.IsThreeD():
		b.WriteString(p.FirstSheet())
		b.WriteByte(':')
		b.WriteString(p.LastSheet())
	case p.Sheet() != "":
		b.WriteString(p.Sheet())
	}
	b.WriteByte('!')
	return struct{}{}
}

func (f *formatter) VisitFile(b *strings.Builder, file *ast.File) struct{} {
	if file.ByID() {
		b.WriteString(strconv.Itoa(file.ID()))
	} else {
		b.WriteString(file.Path())
	}
	return struct{}{}
}
