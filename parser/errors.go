package parser

import (
	"fmt"

	"github.com/xiam/scheme/lexer"
)

// Error is a structural parse error carrying the position of the offending
// token, or of the previous token when input ended early.
type Error struct {
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Msg, e.Line, e.Col)
}

// errorAt builds an Error positioned at tokens[i]; past the end it falls
// back to the last token.
func errorAt(tokens []lexer.Token, i int, msg string) *Error {
	if i >= len(tokens) {
		i = len(tokens) - 1
	}
	if i < 0 {
		return &Error{Msg: msg}
	}
	return &Error{Msg: msg, Line: tokens[i].Line, Col: tokens[i].Col}
}

func errUnexpectedEnd(tokens []lexer.Token, i int) *Error {
	return errorAt(tokens, i, "Unexpected end of input")
}
