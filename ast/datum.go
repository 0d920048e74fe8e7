package ast

import (
	"github.com/xiam/scheme/lexer"
)

// Datum is the external representation of a Scheme value: an atom, a list,
// a vector or one of the reader abbreviations. Nothing mutates a datum after
// the reader builds it.
type Datum interface {
	datum()
}

// Terminal is a leaf datum holding a single token
type Terminal struct {
	Token lexer.Token
}

// List is a proper or improper list. An improper list embeds a Terminal for
// the "." punctuator, never first, with exactly one datum after it.
type List struct {
	Children []Datum
}

// Vector is the #( ... ) compound datum
type Vector struct {
	Children []Datum
}

// Quote is the 'x abbreviation
type Quote struct {
	X Datum
}

// Quasiquote is the `x abbreviation
type Quasiquote struct {
	X Datum
}

// Unquote is the ,x abbreviation
type Unquote struct {
	X Datum
}

// UnquoteSplicing is the ,@x abbreviation
type UnquoteSplicing struct {
	X Datum
}

func (*Terminal) datum()        {}
func (*List) datum()            {}
func (*Vector) datum()          {}
func (*Quote) datum()           {}
func (*Quasiquote) datum()      {}
func (*Unquote) datum()         {}
func (*UnquoteSplicing) datum() {}

// IsDot reports whether the datum is the "." punctuator terminal of an
// improper list.
func IsDot(d Datum) bool {
	t, ok := d.(*Terminal)
	return ok && t.Token.IsPunctuator(".")
}
