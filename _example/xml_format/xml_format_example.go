package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/scheme"
	"github.com/xiam/scheme/ast"
)

func printTree(d ast.Datum) {
	printIndentedTree(d, 0)
}

func printIndentedTree(d ast.Datum, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)

	switch d := d.(type) {
	case *ast.Terminal:
		fmt.Printf("%s<%s>%s</%s>\n", indent, d.Token.Kind, d.Token.Value, d.Token.Kind)

	case *ast.List:
		fmt.Printf("%s<list>\n", indent)
		for _, c := range d.Children {
			printIndentedTree(c, indentationLevel+1)
		}
		fmt.Printf("%s</list>\n", indent)

	case *ast.Vector:
		fmt.Printf("%s<vector>\n", indent)
		for _, c := range d.Children {
			printIndentedTree(c, indentationLevel+1)
		}
		fmt.Printf("%s</vector>\n", indent)

	case *ast.Quote:
		fmt.Printf("%s<quote>\n", indent)
		printIndentedTree(d.X, indentationLevel+1)
		fmt.Printf("%s</quote>\n", indent)

	case *ast.Quasiquote:
		fmt.Printf("%s<quasiquote>\n", indent)
		printIndentedTree(d.X, indentationLevel+1)
		fmt.Printf("%s</quasiquote>\n", indent)

	case *ast.Unquote:
		fmt.Printf("%s<unquote>\n", indent)
		printIndentedTree(d.X, indentationLevel+1)
		fmt.Printf("%s</unquote>\n", indent)

	case *ast.UnquoteSplicing:
		fmt.Printf("%s<unquote-splicing>\n", indent)
		printIndentedTree(d.X, indentationLevel+1)
		fmt.Printf("%s</unquote-splicing>\n", indent)
	}
}

func main() {
	input := "(vec #(89 3.27) `(a ,b) \"Hello world!\")"

	data, err := scheme.Read([]byte(input))
	if err != nil {
		log.Fatal("scheme.Read:", err)
	}

	for _, d := range data {
		printTree(d)
	}
}
