package ast

import (
	"fmt"
	"strings"

	"github.com/xiam/scheme/lexer"
)

// Encode round-trips a datum tree to its canonical S-expression text: atoms
// print their token value, strings are re-quoted, lists and vectors are
// space-separated, abbreviations print in their long form.
func Encode(d Datum) string {
	switch d := d.(type) {
	case *Terminal:
		if d.Token.Is(lexer.KindString) {
			return `"` + d.Token.Value + `"`
		}
		return d.Token.Value

	case *List:
		return "(" + encodeChildren(d.Children) + ")"

	case *Vector:
		return "#(" + encodeChildren(d.Children) + ")"

	case *Quote:
		return "(quote " + Encode(d.X) + ")"

	case *Quasiquote:
		return "(quasiquote " + Encode(d.X) + ")"

	case *Unquote:
		return "(unquote " + Encode(d.X) + ")"

	case *UnquoteSplicing:
		return "(unquote-splicing " + Encode(d.X) + ")"
	}

	panic("unknown datum type")
}

func encodeChildren(children []Datum) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		parts = append(parts, Encode(c))
	}
	return strings.Join(parts, " ")
}

// EncodeNode renders a program AST node back to canonical source text
func EncodeNode(n Node) string {
	switch n := n.(type) {
	case *Boolean:
		if n.Value {
			return "#t"
		}
		return "#f"

	case *Number:
		return lexer.FormatNumber(n.Value)

	case *String:
		return `"` + n.Value + `"`

	case *Character:
		return n.Value

	case *Variable:
		return n.Name

	case *ProcedureCall:
		parts := []string{EncodeNode(n.Operator)}
		for _, o := range n.Operands {
			parts = append(parts, EncodeNode(o))
		}
		return "(" + strings.Join(parts, " ") + ")"

	case *Lambda:
		return "(lambda " + encodeFormals(n.Formals) + " " + encodeBody(n.Body) + ")"

	case *Conditional:
		if n.Alternate == nil {
			return fmt.Sprintf("(if %s %s)", EncodeNode(n.Test), EncodeNode(n.Consequent))
		}
		return fmt.Sprintf("(if %s %s %s)", EncodeNode(n.Test), EncodeNode(n.Consequent), EncodeNode(n.Alternate))

	case *Assignment:
		return fmt.Sprintf("(set! %s %s)", n.Variable.Name, EncodeNode(n.Value))

	case *Definition:
		return fmt.Sprintf("(define %s %s)", n.Variable.Name, EncodeNode(n.Value))

	case *Cond:
		parts := []string{"cond"}
		for _, c := range n.Clauses {
			parts = append(parts, encodeCondClause(c))
		}
		if n.Else != nil {
			parts = append(parts, "(else "+encodeSequence(n.Else)+")")
		}
		return "(" + strings.Join(parts, " ") + ")"

	case *Case:
		parts := []string{"case", EncodeNode(n.Key)}
		for _, c := range n.Clauses {
			parts = append(parts, "(("+encodeChildren(c.Data)+") "+encodeSequence(c.Sequence)+")")
		}
		if n.Else != nil {
			parts = append(parts, "(else "+encodeSequence(n.Else)+")")
		}
		return "(" + strings.Join(parts, " ") + ")"

	case *And:
		if len(n.Exprs) == 0 {
			return "(and)"
		}
		return "(and " + encodeSequence(n.Exprs) + ")"

	case *Or:
		if len(n.Exprs) == 0 {
			return "(or)"
		}
		return "(or " + encodeSequence(n.Exprs) + ")"

	case *Let:
		parts := []string{n.Kind.String()}
		if n.Name != nil {
			parts = append(parts, n.Name.Name)
		}
		bindings := make([]string, 0, len(n.Bindings))
		for _, b := range n.Bindings {
			bindings = append(bindings, fmt.Sprintf("(%s %s)", b.Variable.Name, EncodeNode(b.Init)))
		}
		parts = append(parts, "("+strings.Join(bindings, " ")+")", encodeBody(n.Body))
		return "(" + strings.Join(parts, " ") + ")"

	case *Begin:
		return "(begin " + encodeSequence(n.Sequence) + ")"

	case *Do:
		specs := make([]string, 0, len(n.Specs))
		for _, s := range n.Specs {
			if s.Step == nil {
				specs = append(specs, fmt.Sprintf("(%s %s)", s.Variable.Name, EncodeNode(s.Init)))
			} else {
				specs = append(specs, fmt.Sprintf("(%s %s %s)", s.Variable.Name, EncodeNode(s.Init), EncodeNode(s.Step)))
			}
		}
		parts := []string{"do", "(" + strings.Join(specs, " ") + ")"}
		result := EncodeNode(n.Test)
		if len(n.Sequence) > 0 {
			result += " " + encodeSequence(n.Sequence)
		}
		parts = append(parts, "("+result+")")
		for _, c := range n.Commands {
			parts = append(parts, EncodeNode(c))
		}
		return "(" + strings.Join(parts, " ") + ")"

	case *Delay:
		return "(delay " + EncodeNode(n.Expression) + ")"

	case *Quotation:
		return "(quote " + Encode(n.X) + ")"

	case *Quasiquotation:
		return "(quasiquote " + Encode(n.Template) + ")"
	}

	panic("unknown node type")
}

func encodeSequence(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, EncodeNode(n))
	}
	return strings.Join(parts, " ")
}

func encodeFormals(f *Formals) string {
	if len(f.Variables) == 0 && f.Rest != nil {
		return f.Rest.Name
	}
	names := make([]string, 0, len(f.Variables))
	for _, v := range f.Variables {
		names = append(names, v.Name)
	}
	if f.Rest != nil {
		return "(" + strings.Join(names, " ") + " . " + f.Rest.Name + ")"
	}
	return "(" + strings.Join(names, " ") + ")"
}

func encodeBody(b *Body) string {
	parts := make([]string, 0, len(b.Definitions)+len(b.Expressions))
	for _, d := range b.Definitions {
		parts = append(parts, EncodeNode(d))
	}
	for _, e := range b.Expressions {
		parts = append(parts, EncodeNode(e))
	}
	return strings.Join(parts, " ")
}

func encodeCondClause(c *CondClause) string {
	switch {
	case c.Recipient != nil:
		return fmt.Sprintf("(%s => %s)", EncodeNode(c.Test), EncodeNode(c.Recipient))
	case len(c.Sequence) > 0:
		return fmt.Sprintf("(%s %s)", EncodeNode(c.Test), encodeSequence(c.Sequence))
	}
	return "(" + EncodeNode(c.Test) + ")"
}
