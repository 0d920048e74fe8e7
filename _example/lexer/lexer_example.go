package main

import (
	"fmt"
	"log"

	"github.com/xiam/scheme/lexer"
)

func main() {
	input := `
		(define (fact n) ; factorial
			(if (< n 2)
				1
				(* n (fact (- n 1)))))
	`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()

		fmt.Printf("token[%d] (kind: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tok.Kind, line, col, tok.Value)
	}
}
