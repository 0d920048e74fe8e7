package lexer

import "fmt"

// Error is a lexical error carrying the source position of the offending
// input. Tokenize returns it in place of the token stream.
type Error struct {
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Msg, e.Line, e.Col)
}
