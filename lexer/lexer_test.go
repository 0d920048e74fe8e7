package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, 0, len(tokens))
	for i := range tokens {
		kinds = append(kinds, tokens[i].Kind)
	}
	return kinds
}

func valuesOf(tokens []Token) []string {
	values := make([]string, 0, len(tokens))
	for i := range tokens {
		values = append(values, tokens[i].Value)
	}
	return values
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In     string
		Kinds  []TokenKind
		Values []string
	}{
		{
			`hello`,
			[]TokenKind{KindIdentifier},
			[]string{"hello"},
		},
		{
			`FooBar`,
			[]TokenKind{KindIdentifier},
			[]string{"foobar"},
		},
		{
			`(a b c)`,
			[]TokenKind{KindPunctuator, KindIdentifier, KindIdentifier, KindIdentifier, KindPunctuator},
			[]string{"(", "a", "b", "c", ")"},
		},
		{
			`'x`,
			[]TokenKind{KindPunctuator, KindIdentifier},
			[]string{"'", "x"},
		},
		{
			"`(a ,b ,@c)",
			[]TokenKind{KindPunctuator, KindPunctuator, KindIdentifier, KindPunctuator, KindIdentifier, KindPunctuator, KindIdentifier, KindPunctuator},
			[]string{"`", "(", "a", ",", "b", ",@", "c", ")"},
		},
		{
			`#(1 2 3)`,
			[]TokenKind{KindPunctuator, KindNumber, KindNumber, KindNumber, KindPunctuator},
			[]string{"#(", "1", "2", "3", ")"},
		},
		{
			`(a . b)`,
			[]TokenKind{KindPunctuator, KindIdentifier, KindPunctuator, KindIdentifier, KindPunctuator},
			[]string{"(", "a", ".", "b", ")"},
		},
		{
			`#t #f`,
			[]TokenKind{KindBoolean, KindBoolean},
			[]string{"#t", "#f"},
		},
		{
			`+3.14`,
			[]TokenKind{KindNumber},
			[]string{"3.14"},
		},
		{
			`-42`,
			[]TokenKind{KindNumber},
			[]string{"-42"},
		},
		{
			`.5`,
			[]TokenKind{KindNumber},
			[]string{"0.5"},
		},
		{
			`10.`,
			[]TokenKind{KindNumber},
			[]string{"10"},
		},
		{
			`+ - ...`,
			[]TokenKind{KindIdentifier, KindIdentifier, KindIdentifier},
			[]string{"+", "-", "..."},
		},
		{
			`#\a #\space #\newline`,
			[]TokenKind{KindCharacter, KindCharacter, KindCharacter},
			[]string{`#\a`, `#\space`, `#\newline`},
		},
		{
			"#\\\n",
			[]TokenKind{KindCharacter},
			[]string{`#\newline`},
		},
		{
			`"hello world"`,
			[]TokenKind{KindString},
			[]string{"hello world"},
		},
		{
			`"say \"hi\" \\ back"`,
			[]TokenKind{KindString},
			[]string{`say "hi" \ back`},
		},
		{
			"\"two\nlines\nhere\"",
			[]TokenKind{KindString},
			[]string{`two\nlines\nhere`},
		},
		{
			"; a comment\n(a) ; trailing",
			[]TokenKind{KindPunctuator, KindIdentifier, KindPunctuator},
			[]string{"(", "a", ")"},
		},
		{
			`list->vector`,
			[]TokenKind{KindIdentifier},
			[]string{"list->vector"},
		},
		{
			`set! =?`,
			[]TokenKind{KindIdentifier, KindIdentifier},
			[]string{"set!", "=?"},
		},
		{
			``,
			[]TokenKind{},
			[]string{},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		require.NoError(t, err, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Kinds, kindsOf(tokens), "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Values, valuesOf(tokens), "case %d: %q", i, testCases[i].In)
	}
}

func TestTokenizeNumbers(t *testing.T) {
	testCases := []struct {
		In  string
		Out float64
	}{
		{`0`, 0},
		{`7`, 7},
		{`+3.14`, 3.14},
		{`-3.14`, -3.14},
		{`.5`, 0.5},
		{`-.5`, -0.5},
		{`128.`, 128},
		{`0.25`, 0.25},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		require.NoError(t, err, "case %d: %q", i, testCases[i].In)
		require.Len(t, tokens, 1)
		assert.Equal(t, KindNumber, tokens[0].Kind)
		assert.Equal(t, testCases[i].Out, tokens[0].Num, "case %d: %q", i, testCases[i].In)
	}
}

func TestTokenizePositions(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][3]int // line, col, end
	}{
		{
			`(a . b)`,
			[][3]int{
				{0, 0, 1},
				{0, 1, 2},
				{0, 3, 4},
				{0, 5, 6},
				{0, 6, 7},
			},
		},
		{
			"(define x\n  1)",
			[][3]int{
				{0, 0, 1},
				{0, 1, 7},
				{0, 8, 9},
				{1, 2, 13},
				{1, 3, 14},
			},
		},
		{
			"; skip me\n  foo",
			[][3]int{
				{1, 2, 15},
			},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)
		require.NoError(t, err, "case %d: %q", i, testCases[i].In)

		positions := make([][3]int, 0, len(tokens))
		for _, tok := range tokens {
			positions = append(positions, [3]int{tok.Line, tok.Col, tok.End})
		}
		assert.Equal(t, testCases[i].Pos, positions, "case %d: %q", i, testCases[i].In)
	}
}

func TestTokenizeErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Msg  string
		Line int
		Col  int
	}{
		{`#\foo`, "Bad character constant", 0, 0},
		{`"abc\q"`, `Unexpected escape sequence: \q`, 0, 4},
		{`"abc`, "Unexpected end of input", 0, 0},
		{`#\`, "Unexpected end of input", 0, 0},
		{`#z`, "Unexpected character: #", 0, 0},
		{`@foo`, "Unexpected character: @", 0, 0},
		{`1.2.3`, "Bad number observed", 0, 0},
		{`12x`, "Bad number observed", 0, 0},
		{`+x`, "Bad identifier observed", 0, 0},
		{`..`, "Bad identifier observed", 0, 0},
		{`.x`, "Bad identifier observed", 0, 0},
		{`a#b`, "Bad identifier observed", 0, 0},
		{"(a\n #\\yy)", "Bad character constant", 1, 1},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)

		require.Error(t, err, "case %d: %q", i, testCases[i].In)
		assert.Nil(t, tokens, "case %d: %q", i, testCases[i].In)

		lexErr, ok := err.(*Error)
		require.True(t, ok, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Msg, lexErr.Msg, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Line, lexErr.Line, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Col, lexErr.Col, "case %d: %q", i, testCases[i].In)
	}
}

func TestTokenDump(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			`(display "hello")`,
			[]string{
				`(punctuator "(")`,
				`(identifier display)`,
				`(string "hello")`,
				`(punctuator ")")`,
			},
		},
		{
			`#t 3.14 #\a`,
			[]string{
				`(boolean #t)`,
				`(number 3.14)`,
				`(character #\a)`,
			},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)
		require.NoError(t, err)

		dump := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			dump = append(dump, tok.String())
		}
		assert.Equal(t, testCases[i].Out, dump, "case %d: %q", i, testCases[i].In)
	}
}
