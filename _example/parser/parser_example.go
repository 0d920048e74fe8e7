package main

import (
	"fmt"
	"log"

	"github.com/xiam/scheme"
	"github.com/xiam/scheme/ast"
)

func main() {
	input := `(define (fact n) (if (< n 2) 1 (* n (fact (- n 1))))) (fact 10)`

	nodes, err := scheme.Parse([]byte(input))
	if err != nil {
		log.Fatal("scheme.Parse:", err)
	}

	for _, n := range nodes {
		fmt.Printf("%s: %s\n", n.Type(), ast.EncodeNode(n))
	}
}
