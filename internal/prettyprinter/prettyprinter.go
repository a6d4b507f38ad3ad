// Package prettyprinter renders an ast.Expr back to source text. Unlike
// the teacher's CodePrinter, which tracks operator precedence to omit
// redundant parentheses, this printer always parenthesizes every
// InfixOp/PrefixOp/PostfixOp: the output is a round-trip witness for the
// parser's binding-power table, not a formatter meant for human reading.
package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/mcastorina/flowc/internal/ast"
)

// Print renders expr per spec.md §8 property 1: every InfixOp as
// `(lhs op rhs)`, every PrefixOp as `(op expr)`, every PostfixOp as
// `(expr op)`, every FnCall as `name(a1, …, an)`, string/byte literals
// re-delimited, and Placeholder as `_`.
func Print(expr ast.Expr) string {
	var buf bytes.Buffer
	write(&buf, expr)
	return buf.String()
}

func write(buf *bytes.Buffer, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		writeLiteral(buf, e.Value)
	case *ast.Ident:
		buf.WriteString(e.Name)
	case *ast.Placeholder:
		buf.WriteString("_")
	case *ast.FnCall:
		buf.WriteString(e.FnName)
		buf.WriteString("(")
		for i, arg := range e.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			write(buf, arg)
		}
		buf.WriteString(")")
	case *ast.PrefixOp:
		buf.WriteString("(")
		buf.WriteString(string(e.Op))
		buf.WriteString(" ")
		write(buf, e.Expr)
		buf.WriteString(")")
	case *ast.PostfixOp:
		buf.WriteString("(")
		write(buf, e.Expr)
		buf.WriteString(" ")
		buf.WriteString(string(e.Op))
		buf.WriteString(")")
	case *ast.InfixOp:
		buf.WriteString("(")
		write(buf, e.Lhs)
		buf.WriteString(" ")
		buf.WriteString(string(e.Op))
		buf.WriteString(" ")
		write(buf, e.Rhs)
		buf.WriteString(")")
	case *ast.Tuple:
		buf.WriteString("(")
		for i, elem := range e.Elements {
			if i > 0 {
				buf.WriteString(", ")
			}
			write(buf, elem)
		}
		buf.WriteString(")")
	}
}

func writeLiteral(buf *bytes.Buffer, lit ast.Lit) {
	switch lit.Kind {
	case ast.LitInt:
		buf.WriteString(strconv.FormatUint(lit.Int, 10))
	case ast.LitStr:
		buf.WriteString(`"`)
		buf.WriteString(lit.Text)
		buf.WriteString(`"`)
	case ast.LitByt:
		buf.WriteString("`")
		buf.WriteString(lit.Text)
		buf.WriteString("`")
	}
}
