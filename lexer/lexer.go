package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

type lexState func(*Lexer) lexState

// Lexer walks a source string one token at a time, tracking the zero-based
// line and column of every character it consumes.
type Lexer struct {
	src []rune
	i   int

	line int
	col  int

	startLine int
	startCol  int

	tokens []Token
	err    *Error
}

// Tokenize maps a source string to its ordered token sequence. On the first
// lexical failure it returns a *Error and discards the partial token list.
func Tokenize(source string) ([]Token, error) {
	lx := &Lexer{src: []rune(source)}

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.err != nil {
		return nil, lx.err
	}
	return lx.tokens, nil
}

func (lx *Lexer) eof() bool {
	return lx.i >= len(lx.src)
}

// peek returns the rune k positions ahead of the cursor without consuming it
func (lx *Lexer) peek(k int) (rune, bool) {
	if lx.i+k >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i+k], true
}

// delimiterAt reports whether the rune k positions ahead delimits a token;
// end of input counts as a delimiter.
func (lx *Lexer) delimiterAt(k int) bool {
	r, ok := lx.peek(k)
	return !ok || isDelimiter(r)
}

// next consumes one rune and keeps line and column in step with it
func (lx *Lexer) next() rune {
	r := lx.src[lx.i]
	lx.i++
	if r == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return r
}

func (lx *Lexer) skip(n int) {
	for k := 0; k < n; k++ {
		lx.next()
	}
}

func (lx *Lexer) mark() {
	lx.startLine = lx.line
	lx.startCol = lx.col
}

func (lx *Lexer) emit(tk TokenKind, value string) {
	lx.tokens = append(lx.tokens, Token{
		Kind:  tk,
		Value: value,
		Line:  lx.startLine,
		Col:   lx.startCol,
		End:   lx.i,
	})
}

func (lx *Lexer) emitNumber(v float64) {
	lx.tokens = append(lx.tokens, Token{
		Kind:  KindNumber,
		Value: FormatNumber(v),
		Num:   v,
		Line:  lx.startLine,
		Col:   lx.startCol,
		End:   lx.i,
	})
}

// fail reports an error at the start of the token being scanned
func (lx *Lexer) fail(msg string) lexState {
	return lx.failAt(msg, lx.startLine, lx.startCol)
}

func (lx *Lexer) failAt(msg string, line, col int) lexState {
	lx.err = &Error{Msg: msg, Line: line, Col: col}
	return nil
}

// skipAtmosphere discards whitespace and line comments before a token
func (lx *Lexer) skipAtmosphere() {
	for !lx.eof() {
		r := lx.src[lx.i]
		if isWhitespace(r) {
			lx.next()
			continue
		}
		if r == ';' {
			for !lx.eof() {
				if lx.next() == '\n' {
					break
				}
			}
			continue
		}
		return
	}
}

func lexDefaultState(lx *Lexer) lexState {
	lx.skipAtmosphere()
	if lx.eof() {
		return nil
	}
	lx.mark()

	r := lx.src[lx.i]
	switch {
	case r == '(' || r == ')' || r == '\'' || r == '`':
		lx.next()
		lx.emit(KindPunctuator, string(r))
		return lexDefaultState

	case r == ',':
		lx.next()
		if p, ok := lx.peek(0); ok && p == '@' {
			lx.next()
			lx.emit(KindPunctuator, ",@")
		} else {
			lx.emit(KindPunctuator, ",")
		}
		return lexDefaultState

	case r == '#':
		return lexHash

	case r == '"':
		return lexString

	case r == '+' || r == '-':
		if p, ok := lx.peek(1); ok && (isDigit(p) || p == '.') {
			return lexNumber
		}
		if lx.delimiterAt(1) {
			lx.next()
			lx.emit(KindIdentifier, string(r))
			return lexDefaultState
		}
		return lx.fail("Bad identifier observed")

	case isDigit(r):
		return lexNumber

	case r == '.':
		return lexDot

	case isInitial(r):
		return lexIdentifier
	}

	return lx.fail(fmt.Sprintf("Unexpected character: %c", r))
}

func lexHash(lx *Lexer) lexState {
	p, ok := lx.peek(1)
	if !ok {
		return lx.fail("Unexpected end of input")
	}

	switch p {
	case '(':
		lx.skip(2)
		lx.emit(KindPunctuator, "#(")
		return lexDefaultState
	case 't', 'f':
		lx.skip(2)
		lx.emit(KindBoolean, "#"+string(p))
		return lexDefaultState
	case '\\':
		return lexCharacter
	}

	return lx.fail("Unexpected character: #")
}

// lexCharacter reads a character constant after "#\". The named characters
// space and newline keep their names; a literal newline is normalized to
// #\newline; anything else is a single character.
func lexCharacter(lx *Lexer) lexState {
	if _, ok := lx.peek(2); !ok {
		return lx.fail("Unexpected end of input")
	}

	rest := lx.src[lx.i+2:]
	if hasNamedPrefix(rest, "space") && lx.delimiterAt(2+len("space")) {
		lx.skip(2 + len("space"))
		lx.emit(KindCharacter, `#\space`)
		return lexDefaultState
	}
	if hasNamedPrefix(rest, "newline") && lx.delimiterAt(2+len("newline")) {
		lx.skip(2 + len("newline"))
		lx.emit(KindCharacter, `#\newline`)
		return lexDefaultState
	}

	c := rest[0]
	lx.skip(3)
	if !lx.delimiterAt(0) {
		return lx.fail("Bad character constant")
	}
	if c == '\n' {
		lx.emit(KindCharacter, `#\newline`)
	} else {
		lx.emit(KindCharacter, `#\`+string(c))
	}
	return lexDefaultState
}

func hasNamedPrefix(rest []rune, name string) bool {
	if len(rest) < len(name) {
		return false
	}
	return string(rest[:len(name)]) == name
}

// lexString reads a string literal. Only \" and \\ are legal escapes; every
// embedded literal newline is re-escaped to the two characters \n in the
// token value.
func lexString(lx *Lexer) lexState {
	lx.next() // opening quote

	var b strings.Builder
	for {
		if lx.eof() {
			return lx.fail("Unexpected end of input")
		}
		r := lx.src[lx.i]

		switch r {
		case '"':
			lx.next()
			lx.emit(KindString, b.String())
			return lexDefaultState

		case '\\':
			escLine, escCol := lx.line, lx.col
			lx.next()
			p, ok := lx.peek(0)
			if !ok {
				return lx.fail("Unexpected end of input")
			}
			if p != '"' && p != '\\' {
				return lx.failAt(fmt.Sprintf(`Unexpected escape sequence: \%c`, p), escLine, escCol)
			}
			lx.next()
			b.WriteRune(p)

		case '\n':
			lx.next()
			b.WriteString(`\n`)

		default:
			lx.next()
			b.WriteRune(r)
		}
	}
}

// lexNumber reads sign? (digits ('.' digits?)? | '.' digits) and decodes it
// as an IEEE-754 double.
func lexNumber(lx *Lexer) lexState {
	start := lx.i

	if r, ok := lx.peek(0); ok && (r == '+' || r == '-') {
		lx.next()
	}

	intDigits := 0
	for {
		r, ok := lx.peek(0)
		if !ok || !isDigit(r) {
			break
		}
		lx.next()
		intDigits++
	}

	fracDigits := 0
	if r, ok := lx.peek(0); ok && r == '.' {
		lx.next()
		for {
			r, ok := lx.peek(0)
			if !ok || !isDigit(r) {
				break
			}
			lx.next()
			fracDigits++
		}
		if intDigits == 0 && fracDigits == 0 {
			return lx.fail("Bad number observed")
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return lx.fail("Bad number observed")
	}
	if !lx.delimiterAt(0) {
		return lx.fail("Bad number observed")
	}

	v, err := strconv.ParseFloat(string(lx.src[start:lx.i]), 64)
	if err != nil {
		return lx.fail("Bad number observed")
	}

	lx.emitNumber(v)
	return lexDefaultState
}

// lexDot disambiguates the dot punctuator, a leading-decimal number and the
// "..." peculiar identifier, all of which start with '.'.
func lexDot(lx *Lexer) lexState {
	if lx.delimiterAt(1) {
		lx.next()
		lx.emit(KindPunctuator, ".")
		return lexDefaultState
	}
	if p, ok := lx.peek(1); ok && isDigit(p) {
		return lexNumber
	}
	p1, ok1 := lx.peek(1)
	p2, ok2 := lx.peek(2)
	if ok1 && ok2 && p1 == '.' && p2 == '.' && lx.delimiterAt(3) {
		lx.skip(3)
		lx.emit(KindIdentifier, "...")
		return lexDefaultState
	}
	return lx.fail("Bad identifier observed")
}

func lexIdentifier(lx *Lexer) lexState {
	start := lx.i

	lx.next()
	for {
		r, ok := lx.peek(0)
		if !ok || !isSubsequent(r) {
			break
		}
		lx.next()
	}
	if !lx.delimiterAt(0) {
		return lx.fail("Bad identifier observed")
	}

	lx.emit(KindIdentifier, strings.ToLower(string(lx.src[start:lx.i])))
	return lexDefaultState
}
