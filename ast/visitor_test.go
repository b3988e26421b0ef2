package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridlang/fx"
	"github.com/gridlang/fx/ast"
)

// counter tallies one bucket per node variant; Accept must hit exactly
// the bucket matching the node's runtime variant.
type counter struct {
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) bump(name string) error {
	c.counts[name]++
	return nil
}

func (c *counter) VisitScalar(_ struct{}, _ *ast.Scalar) error         { return c.bump("scalar") }
func (c *counter) VisitUnaryExpr(_ struct{}, _ *ast.UnaryExpr) error   { return c.bump("unary") }
func (c *counter) VisitBinaryExpr(_ struct{}, _ *ast.BinaryExpr) error { return c.bump("binary") }
func (c *counter) VisitCall(_ struct{}, _ *ast.Call) error             { return c.bump("call") }
func (c *counter) VisitXObject(_ struct{}, _ *ast.XObject) error       { return c.bump("xobject") }
func (c *counter) VisitEmptyValue(_ struct{}, _ *ast.EmptyValue) error { return c.bump("empty") }
func (c *counter) VisitError(_ struct{}, _ *ast.Error) error           { return c.bump("error") }
func (c *counter) VisitNotSupported(_ struct{}, _ *ast.NotSupported) error {
	return c.bump("notsupported")
}
func (c *counter) VisitReference(_ struct{}, _ *ast.Reference) error { return c.bump("reference") }
func (c *counter) VisitStructuredReference(_ struct{}, _ *ast.StructuredReference) error {
	return c.bump("structured")
}
func (c *counter) VisitPrefix(_ struct{}, _ *ast.Prefix) error { return c.bump("prefix") }
func (c *counter) VisitFile(_ struct{}, _ *ast.File) error     { return c.bump("file") }

func TestAcceptDispatchesPerVariant(t *testing.T) {
	nodes := map[string]ast.Node{
		"scalar":       ast.NewNumber(1),
		"unary":        ast.NewUnaryExpr(ast.UnarySub, ast.NewNumber(1)),
		"binary":       ast.NewBinaryExpr(ast.Add, ast.NewNumber(1), ast.NewNumber(2)),
		"call":         ast.NewCall(nil, ast.NewFuncRef("F", nil), nil),
		"xobject":      ast.NewXObject("h"),
		"empty":        ast.NewEmptyValue(),
		"error":        ast.NewError(fx.CellValue),
		"notsupported": ast.NewNotSupported("array constant"),
		"reference":    ast.NewReference(nil, ast.Cell, "A1"),
		"structured":   ast.NewStructuredReference(nil),
		"prefix":       ast.NewSheetPrefix("Sheet1"),
		"file":         ast.NewFile("book.xlsx"),
	}
	for want, node := range nodes {
		t.Run(want, func(t *testing.T) {
			c := newCounter()
			assert.NoError(t, ast.Accept[struct{}, error](node, struct{}{}, c))
			assert.Equal(t, map[string]int{want: 1}, c.counts)
		})
	}
}

// A second instantiation of the generic visitor with a different
// context/result pair, collecting reference addresses.
type refCollector struct{}

func (refCollector) VisitScalar(out *[]string, _ *ast.Scalar) bool       { return false }
func (refCollector) VisitUnaryExpr(out *[]string, u *ast.UnaryExpr) bool {
	return ast.Accept[*[]string, bool](u.Operand(), out, refCollector{})
}
func (refCollector) VisitBinaryExpr(out *[]string, b *ast.BinaryExpr) bool {
	l := ast.Accept[*[]string, bool](b.LHS(), out, refCollector{})
	r := ast.Accept[*[]string, bool](b.RHS(), out, refCollector{})
	return l || r
}
func (refCollector) VisitCall(out *[]string, c *ast.Call) bool {
	found := false
	for _, arg := range c.Args() {
		if ast.Accept[*[]string, bool](arg, out, refCollector{}) {
			found = true
		}
	}
	return found
}
func (refCollector) VisitXObject(out *[]string, _ *ast.XObject) bool         { return false }
func (refCollector) VisitEmptyValue(out *[]string, _ *ast.EmptyValue) bool   { return false }
func (refCollector) VisitError(out *[]string, _ *ast.Error) bool             { return false }
func (refCollector) VisitNotSupported(out *[]string, _ *ast.NotSupported) bool {
	return false
}
func (refCollector) VisitReference(out *[]string, r *ast.Reference) bool {
	*out = append(*out, r.Address())
	return true
}
func (refCollector) VisitStructuredReference(out *[]string, _ *ast.StructuredReference) bool {
	return false
}
func (refCollector) VisitPrefix(out *[]string, _ *ast.Prefix) bool { return false }
func (refCollector) VisitFile(out *[]string, _ *ast.File) bool     { return false }

func TestVisitorDependencyExtraction(t *testing.T) {
	tree := ast.NewBinaryExpr(ast.Add,
		ast.NewReference(nil, ast.Cell, "A1"),
		ast.NewCall(nil, ast.NewFuncRef("SUM", nil), []ast.Expr{
			ast.NewReference(nil, ast.VerticalRange, "B:B"),
			ast.NewNumber(2),
		}))
	var refs []string
	found := ast.Accept[*[]string, bool](tree, &refs, refCollector{})
	assert.True(t, found)
	assert.Equal(t, []string{"A1", "B:B"}, refs)
}
