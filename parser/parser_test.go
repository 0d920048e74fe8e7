package parser

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/lexer"
)

func parseOne(t *testing.T, source string) ast.Node {
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err, "%q", source)

	nodes, err := Parse(tokens)
	require.NoError(t, err, "%q", source)
	require.Len(t, nodes, 1, "%q", source)
	return nodes[0]
}

func TestParseRoundTrip(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			`x`,
			`x`,
		},
		{
			`#t`,
			`#t`,
		},
		{
			`3.14`,
			`3.14`,
		},
		{
			`"hello"`,
			`"hello"`,
		},
		{
			`#\a`,
			`#\a`,
		},
		{
			`(f x y)`,
			`(f x y)`,
		},
		{
			`((if x car cdr) 1)`,
			`((if x car cdr) 1)`,
		},
		{
			`'x`,
			`(quote x)`,
		},
		{
			`(quote (a b))`,
			`(quote (a b))`,
		},
		{
			"`(a ,b ,@c)",
			`(quasiquote (a (unquote b) (unquote-splicing c)))`,
		},
		{
			`(lambda (x) x)`,
			`(lambda (x) x)`,
		},
		{
			`(lambda x x)`,
			`(lambda x x)`,
		},
		{
			`(lambda (a b . rest) (f a b rest))`,
			`(lambda (a b . rest) (f a b rest))`,
		},
		{
			`(lambda (x) (define y 1) (+ x y))`,
			`(lambda (x) (define y 1) (+ x y))`,
		},
		{
			`(if #t 1 2)`,
			`(if #t 1 2)`,
		},
		{
			`(if x 1)`,
			`(if x 1)`,
		},
		{
			`(set! x 1)`,
			`(set! x 1)`,
		},
		{
			`(define x 1)`,
			`(define x 1)`,
		},
		{
			`(define (add a b) (+ a b))`,
			`(define add (lambda (a b) (+ a b)))`,
		},
		{
			`(define (list . args) args)`,
			`(define list (lambda args args))`,
		},
		{
			`(begin (define x 1) (define y 2))`,
			`(begin (define x 1) (define y 2))`,
		},
		{
			`(begin 1 2 3)`,
			`(begin 1 2 3)`,
		},
		{
			`(cond ((> x 1) a) (else b))`,
			`(cond ((> x 1) a) (else b))`,
		},
		{
			`(cond ((assv x alist) => cdr))`,
			`(cond ((assv x alist) => cdr))`,
		},
		{
			`(cond (x))`,
			`(cond (x))`,
		},
		{
			`(case x ((1 2) a) (else b))`,
			`(case x ((1 2) a) (else b))`,
		},
		{
			`(and)`,
			`(and)`,
		},
		{
			`(and 1 2)`,
			`(and 1 2)`,
		},
		{
			`(or x y z)`,
			`(or x y z)`,
		},
		{
			`(let ((x 1) (y 2)) (+ x y))`,
			`(let ((x 1) (y 2)) (+ x y))`,
		},
		{
			`(let loop ((i 0)) (loop (+ i 1)))`,
			`(let loop ((i 0)) (loop (+ i 1)))`,
		},
		{
			`(let* ((x 1) (y x)) y)`,
			`(let* ((x 1) (y x)) y)`,
		},
		{
			`(letrec ((even? (lambda (n) (odd? n))) (odd? (lambda (n) (even? n)))) (even? 10))`,
			`(letrec ((even? (lambda (n) (odd? n))) (odd? (lambda (n) (even? n)))) (even? 10))`,
		},
		{
			`(do ((i 0 (+ i 1))) ((= i 10) i) (display i))`,
			`(do ((i 0 (+ i 1))) ((= i 10) i) (display i))`,
		},
		{
			`(do ((i 0)) ((= i 10)))`,
			`(do ((i 0)) ((= i 10)))`,
		},
		{
			`(delay (+ 1 2))`,
			`(delay (+ 1 2))`,
		},
	}

	for i := range testCases {
		n := parseOne(t, testCases[i].In)
		assert.Equal(t, testCases[i].Out, ast.EncodeNode(n), "case %d: %q", i, testCases[i].In)
	}
}

func TestParseNodeTypes(t *testing.T) {
	testCases := []struct {
		In  string
		Out ast.NodeType
	}{
		{`x`, ast.NodeTypeVariable},
		{`#f`, ast.NodeTypeBoolean},
		{`42`, ast.NodeTypeNumber},
		{`"s"`, ast.NodeTypeString},
		{`#\b`, ast.NodeTypeCharacter},
		{`(f)`, ast.NodeTypeProcedureCall},
		{`'()`, ast.NodeTypeQuotation},
		{"`()", ast.NodeTypeQuasiquotation},
		{`(lambda (x) x)`, ast.NodeTypeLambda},
		{`(if a b)`, ast.NodeTypeConditional},
		{`(set! a b)`, ast.NodeTypeAssignment},
		{`(define a b)`, ast.NodeTypeDefinition},
		{`(cond (else 1))`, ast.NodeTypeCond},
		{`(case a (else 1))`, ast.NodeTypeCase},
		{`(and)`, ast.NodeTypeAnd},
		{`(or)`, ast.NodeTypeOr},
		{`(let ((a 1)) a)`, ast.NodeTypeLet},
		{`(begin 1)`, ast.NodeTypeBegin},
		{`(do () (#t))`, ast.NodeTypeDo},
		{`(delay 1)`, ast.NodeTypeDelay},
	}

	for i := range testCases {
		n := parseOne(t, testCases[i].In)
		assert.Equal(t, testCases[i].Out, n.Type(), "case %d: %q", i, testCases[i].In)
	}
}

func TestParseDefineSugar(t *testing.T) {
	n := parseOne(t, `(define (max a b) (if (> a b) a b))`)

	def, ok := n.(*ast.Definition)
	require.True(t, ok)
	assert.Equal(t, "max", def.Variable.Name)

	lambda, ok := def.Value.(*ast.Lambda)
	require.True(t, ok)
	require.Len(t, lambda.Formals.Variables, 2)
	assert.Equal(t, "a", lambda.Formals.Variables[0].Name)
	assert.Equal(t, "b", lambda.Formals.Variables[1].Name)
	assert.Nil(t, lambda.Formals.Rest)
	require.Len(t, lambda.Body.Expressions, 1)
}

func TestParseNamedLet(t *testing.T) {
	n := parseOne(t, `(let loop ((i 0) (acc 1)) (loop (- i 1) (* acc i)))`)

	let, ok := n.(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, ast.LetPlain, let.Kind)
	require.NotNil(t, let.Name)
	assert.Equal(t, "loop", let.Name.Name)
	require.Len(t, let.Bindings, 2)
	assert.Equal(t, "i", let.Bindings[0].Variable.Name)
	assert.Equal(t, "acc", let.Bindings[1].Variable.Name)
}

func TestParseProgramSequence(t *testing.T) {
	tokens, err := lexer.Tokenize("(define x 1)\n(define y 2)\n(+ x y)")
	require.NoError(t, err)

	nodes, err := Parse(tokens)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, ast.NodeTypeDefinition, nodes[0].Type())
	assert.Equal(t, ast.NodeTypeDefinition, nodes[1].Type())
	assert.Equal(t, ast.NodeTypeProcedureCall, nodes[2].Type())
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Msg  string
		Line int
		Col  int
	}{
		{`(if)`, "Expecting expression", 0, 3},
		{`(set! else 1)`, "Expecting variable", 0, 6},
		{`(set! x)`, "Expecting expression", 0, 7},
		{`(define x)`, "Expecting expression", 0, 9},
		{`(lambda (x 1) x)`, "Expecting variable", 0, 11},
		{`(lambda (x))`, "Expecting expression", 0, 11},
		{`(lambda (. rest) rest)`, "Expecting variable", 0, 9},
		{`(cond)`, "No cond clause and not else specified", 0, 0},
		{`(let ((x)) x)`, "Expecting expression", 0, 8},
		{`(let x)`, "Expecting (", 0, 6},
		{`(quote)`, "Unexpected token", 0, 6},
		{`(else 1)`, "Unexpected token", 0, 0},
		{`else`, "Unexpected token", 0, 0},
		{`(if a b`, "Unexpected end of input", 0, 6},
		{`(delay)`, "Expecting expression", 0, 6},
	}

	for i := range testCases {
		tokens, err := lexer.Tokenize(testCases[i].In)
		require.NoError(t, err, "case %d: %q", i, testCases[i].In)

		nodes, err := Parse(tokens)
		require.Error(t, err, "case %d: %q", i, testCases[i].In)
		assert.Nil(t, nodes, "case %d: %q", i, testCases[i].In)

		parseErr, ok := err.(*Error)
		require.True(t, ok, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Msg, parseErr.Msg, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Line, parseErr.Line, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Col, parseErr.Col, "case %d: %q", i, testCases[i].In)
	}
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("define"))
	assert.True(t, IsKeyword("unquote-splicing"))
	assert.True(t, IsKeyword("=>"))
	assert.False(t, IsKeyword("display"))
	assert.False(t, IsKeyword("x"))
}

func TestKeywords(t *testing.T) {
	names := Keywords()

	assert.Len(t, names, len(keywords))
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "lambda")
	assert.Contains(t, names, "letrec")
}
