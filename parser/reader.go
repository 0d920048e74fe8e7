package parser

import (
	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/lexer"
)

// ReadDatum consumes one datum from the token sequence starting at index i
// and returns it together with the new cursor.
func ReadDatum(tokens []lexer.Token, i int) (ast.Datum, int, error) {
	if i >= len(tokens) {
		return nil, i, errUnexpectedEnd(tokens, i)
	}

	tok := tokens[i]
	switch tok.Kind {
	case lexer.KindBoolean, lexer.KindNumber, lexer.KindCharacter, lexer.KindString, lexer.KindIdentifier:
		return &ast.Terminal{Token: tok}, i + 1, nil

	case lexer.KindPunctuator:
		switch tok.Value {
		case "(":
			return readList(tokens, i+1)
		case "#(":
			return readVector(tokens, i+1)
		case "'":
			x, j, err := ReadDatum(tokens, i+1)
			if err != nil {
				return nil, i, err
			}
			return &ast.Quote{X: x}, j, nil
		case "`":
			x, j, err := ReadDatum(tokens, i+1)
			if err != nil {
				return nil, i, err
			}
			return &ast.Quasiquote{X: x}, j, nil
		case ",":
			x, j, err := ReadDatum(tokens, i+1)
			if err != nil {
				return nil, i, err
			}
			return &ast.Unquote{X: x}, j, nil
		case ",@":
			x, j, err := ReadDatum(tokens, i+1)
			if err != nil {
				return nil, i, err
			}
			return &ast.UnquoteSplicing{X: x}, j, nil
		}
	}

	return nil, i, errorAt(tokens, i, "Unexpected token")
}

// readList accumulates datums up to the closing parenthesis. A dot
// punctuator switches to improper-list mode: it must follow at least one
// datum and be followed by exactly one datum and the closing parenthesis.
func readList(tokens []lexer.Token, i int) (ast.Datum, int, error) {
	children := []ast.Datum{}

	for {
		if i >= len(tokens) {
			return nil, i, errUnexpectedEnd(tokens, i)
		}

		tok := tokens[i]
		if tok.IsPunctuator(")") {
			return &ast.List{Children: children}, i + 1, nil
		}

		if tok.IsPunctuator(".") {
			if len(children) == 0 {
				return nil, i, errorAt(tokens, i, "Improper list must start with a datum")
			}
			children = append(children, &ast.Terminal{Token: tok})

			tail, j, err := ReadDatum(tokens, i+1)
			if err != nil {
				return nil, i, err
			}
			children = append(children, tail)

			if j >= len(tokens) {
				return nil, j, errUnexpectedEnd(tokens, j)
			}
			if !tokens[j].IsPunctuator(")") {
				return nil, j, errorAt(tokens, j, "Expected closing parenthesis")
			}
			return &ast.List{Children: children}, j + 1, nil
		}

		d, j, err := ReadDatum(tokens, i)
		if err != nil {
			return nil, i, err
		}
		children = append(children, d)
		i = j
	}
}

func readVector(tokens []lexer.Token, i int) (ast.Datum, int, error) {
	children := []ast.Datum{}

	for {
		if i >= len(tokens) {
			return nil, i, errUnexpectedEnd(tokens, i)
		}
		if tokens[i].IsPunctuator(")") {
			return &ast.Vector{Children: children}, i + 1, nil
		}

		d, j, err := ReadDatum(tokens, i)
		if err != nil {
			return nil, i, err
		}
		children = append(children, d)
		i = j
	}
}

// ReadProgram reads every top-level datum in the token sequence
func ReadProgram(tokens []lexer.Token) ([]ast.Datum, error) {
	data := []ast.Datum{}

	for i := 0; i < len(tokens); {
		d, j, err := ReadDatum(tokens, i)
		if err != nil {
			return nil, err
		}
		data = append(data, d)
		i = j
	}
	return data, nil
}
