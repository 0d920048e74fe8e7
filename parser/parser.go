package parser

import (
	"sort"

	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/lexer"
)

// Reserved keywords. These identifiers never parse as variables, so a form
// whose head is a keyword is always the syntactic form, never a call.
var keywords = map[string]bool{
	"else":             true,
	"=>":               true,
	"define":           true,
	"unquote":          true,
	"unquote-splicing": true,
	"quote":            true,
	"lambda":           true,
	"if":               true,
	"set!":             true,
	"begin":            true,
	"cond":             true,
	"and":              true,
	"or":               true,
	"case":             true,
	"let":              true,
	"let*":             true,
	"letrec":           true,
	"do":               true,
	"delay":            true,
	"quasiquote":       true,
}

// IsKeyword reports whether name is reserved
func IsKeyword(name string) bool {
	return keywords[name]
}

// Keywords returns the reserved keywords in sorted order
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isKeywordToken(tok lexer.Token) bool {
	return tok.Kind == lexer.KindIdentifier && keywords[tok.Value]
}

// Parse classifies the token sequence as a list of top-level programs, each
// an expression or a definition. It stops at the first structural error.
func Parse(tokens []lexer.Token) ([]ast.Node, error) {
	nodes := []ast.Node{}

	for i := 0; i < len(tokens); {
		n, j, err := parseProgram(tokens, i)
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, errorAt(tokens, i, "Unexpected token")
		}
		nodes = append(nodes, n)
		i = j
	}
	return nodes, nil
}

// Every parse alternative below shares one contract: (nil, i, nil) means
// "not my form" with the cursor untouched, a non-nil error means the form
// matched its guard but is malformed, and a node means a full match.

func parseProgram(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if n, j, err := parseDefinition(tokens, i); n != nil || err != nil {
		return n, j, err
	}
	return parseExpression(tokens, i)
}

func parseExpression(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if i >= len(tokens) {
		return nil, i, nil
	}

	alternatives := []func([]lexer.Token, int) (ast.Node, int, error){
		parseVariable,
		parseLiteral,
		parseQuotation,
		parseQuasiquotation,
		parseLambda,
		parseConditional,
		parseAssignment,
		parseCond,
		parseCase,
		parseAnd,
		parseOr,
		parseLet,
		parseBegin,
		parseDo,
		parseDelay,
		parseProcedureCall,
	}

	for _, alt := range alternatives {
		n, j, err := alt(tokens, i)
		if n != nil || err != nil {
			return n, j, err
		}
	}
	return nil, i, nil
}

// guard reports whether tokens[i] opens a form with the given keyword at
// tokens[i+1].
func guard(tokens []lexer.Token, i int, kw string) bool {
	return i+1 < len(tokens) &&
		tokens[i].IsPunctuator("(") &&
		tokens[i+1].IsIdentifier(kw)
}

func expectPunctuator(tokens []lexer.Token, i int, s string) (int, error) {
	if i >= len(tokens) {
		return i, errUnexpectedEnd(tokens, i)
	}
	if !tokens[i].IsPunctuator(s) {
		return i, errorAt(tokens, i, "Expecting "+s)
	}
	return i + 1, nil
}

// mustExpression is for slots where an expression is mandatory; a non-match
// there is a hard error.
func mustExpression(tokens []lexer.Token, i int) (ast.Node, int, error) {
	n, j, err := parseExpression(tokens, i)
	if err != nil {
		return nil, i, err
	}
	if n == nil {
		if i >= len(tokens) {
			return nil, i, errUnexpectedEnd(tokens, i)
		}
		return nil, i, errorAt(tokens, i, "Expecting expression")
	}
	return n, j, nil
}

func parseVariable(tokens []lexer.Token, i int) (ast.Node, int, error) {
	tok := tokens[i]
	if tok.Kind != lexer.KindIdentifier || keywords[tok.Value] {
		return nil, i, nil
	}
	return &ast.Variable{Name: tok.Value}, i + 1, nil
}

// mustVariable is for slots where a variable is mandatory
func mustVariable(tokens []lexer.Token, i int) (*ast.Variable, int, error) {
	if i >= len(tokens) {
		return nil, i, errUnexpectedEnd(tokens, i)
	}
	tok := tokens[i]
	if tok.Kind != lexer.KindIdentifier || keywords[tok.Value] {
		return nil, i, errorAt(tokens, i, "Expecting variable")
	}
	return &ast.Variable{Name: tok.Value}, i + 1, nil
}

func parseLiteral(tokens []lexer.Token, i int) (ast.Node, int, error) {
	tok := tokens[i]
	switch tok.Kind {
	case lexer.KindBoolean:
		return &ast.Boolean{Value: tok.Value == "#t"}, i + 1, nil
	case lexer.KindNumber:
		return &ast.Number{Value: tok.Num}, i + 1, nil
	case lexer.KindString:
		return &ast.String{Value: tok.Value}, i + 1, nil
	case lexer.KindCharacter:
		return &ast.Character{Value: tok.Value}, i + 1, nil
	}
	return nil, i, nil
}

func parseQuotation(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if tokens[i].IsPunctuator("'") {
		x, j, err := ReadDatum(tokens, i+1)
		if err != nil {
			return nil, i, err
		}
		return &ast.Quotation{X: x}, j, nil
	}
	if !guard(tokens, i, "quote") {
		return nil, i, nil
	}
	x, j, err := ReadDatum(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return &ast.Quotation{X: x}, j, nil
}

func parseQuasiquotation(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if tokens[i].IsPunctuator("`") {
		x, j, err := ReadDatum(tokens, i+1)
		if err != nil {
			return nil, i, err
		}
		return &ast.Quasiquotation{Template: x}, j, nil
	}
	if !guard(tokens, i, "quasiquote") {
		return nil, i, nil
	}
	x, j, err := ReadDatum(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return &ast.Quasiquotation{Template: x}, j, nil
}

func parseLambda(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "lambda") {
		return nil, i, nil
	}

	formals, j, err := parseFormals(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	body, j, err := parseBody(tokens, j)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return &ast.Lambda{Formals: formals, Body: body}, j, nil
}

// parseFormals accepts (v ...), (v ... . rest) and a bare rest variable
func parseFormals(tokens []lexer.Token, i int) (*ast.Formals, int, error) {
	if i >= len(tokens) {
		return nil, i, errUnexpectedEnd(tokens, i)
	}

	if tokens[i].Kind == lexer.KindIdentifier {
		rest, j, err := mustVariable(tokens, i)
		if err != nil {
			return nil, i, err
		}
		return &ast.Formals{Rest: rest}, j, nil
	}

	j, err := expectPunctuator(tokens, i, "(")
	if err != nil {
		return nil, i, err
	}

	formals := &ast.Formals{Variables: []*ast.Variable{}}
	for {
		if j >= len(tokens) {
			return nil, j, errUnexpectedEnd(tokens, j)
		}
		tok := tokens[j]

		if tok.IsPunctuator(")") {
			return formals, j + 1, nil
		}

		if tok.IsPunctuator(".") {
			if len(formals.Variables) == 0 {
				return nil, j, errorAt(tokens, j, "Expecting variable")
			}
			rest, k, err := mustVariable(tokens, j+1)
			if err != nil {
				return nil, j, err
			}
			formals.Rest = rest
			k, err = expectPunctuator(tokens, k, ")")
			if err != nil {
				return nil, j, err
			}
			return formals, k, nil
		}

		v, k, err := mustVariable(tokens, j)
		if err != nil {
			return nil, j, err
		}
		formals.Variables = append(formals.Variables, v)
		j = k
	}
}

// parseBody consumes the internal-definition prefix and then at least one
// expression; the caller consumes the closing parenthesis.
func parseBody(tokens []lexer.Token, i int) (*ast.Body, int, error) {
	body := &ast.Body{}

	for {
		d, j, err := parseDefinition(tokens, i)
		if err != nil {
			return nil, i, err
		}
		if d == nil {
			break
		}
		body.Definitions = append(body.Definitions, d)
		i = j
	}

	for {
		if i >= len(tokens) {
			return nil, i, errUnexpectedEnd(tokens, i)
		}
		if tokens[i].IsPunctuator(")") {
			break
		}
		e, j, err := mustExpression(tokens, i)
		if err != nil {
			return nil, i, err
		}
		body.Expressions = append(body.Expressions, e)
		i = j
	}

	if len(body.Expressions) == 0 {
		return nil, i, errorAt(tokens, i, "Expecting expression")
	}
	return body, i, nil
}

func parseConditional(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "if") {
		return nil, i, nil
	}

	test, j, err := mustExpression(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	consequent, j, err := mustExpression(tokens, j)
	if err != nil {
		return nil, i, err
	}

	cond := &ast.Conditional{Test: test, Consequent: consequent}

	if j < len(tokens) && !tokens[j].IsPunctuator(")") {
		cond.Alternate, j, err = mustExpression(tokens, j)
		if err != nil {
			return nil, i, err
		}
	}

	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return cond, j, nil
}

func parseAssignment(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "set!") {
		return nil, i, nil
	}

	v, j, err := mustVariable(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	value, j, err := mustExpression(tokens, j)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return &ast.Assignment{Variable: v, Value: value}, j, nil
}

// parseDefinition handles (define v e), the (define (name . formals) body)
// sugar and a (begin definition*) sequence.
func parseDefinition(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if n, j, err := parseBeginDefinitions(tokens, i); n != nil || err != nil {
		return n, j, err
	}
	if !guard(tokens, i, "define") {
		return nil, i, nil
	}

	j := i + 2
	if j >= len(tokens) {
		return nil, i, errUnexpectedEnd(tokens, j)
	}

	if tokens[j].IsPunctuator("(") {
		name, k, err := mustVariable(tokens, j+1)
		if err != nil {
			return nil, i, err
		}
		formals, k, err := parseDefFormals(tokens, k)
		if err != nil {
			return nil, i, err
		}
		body, k, err := parseBody(tokens, k)
		if err != nil {
			return nil, i, err
		}
		k, err = expectPunctuator(tokens, k, ")")
		if err != nil {
			return nil, i, err
		}
		lambda := &ast.Lambda{Formals: formals, Body: body}
		return &ast.Definition{Variable: name, Value: lambda}, k, nil
	}

	v, j, err := mustVariable(tokens, j)
	if err != nil {
		return nil, i, err
	}
	value, j, err := mustExpression(tokens, j)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return &ast.Definition{Variable: v, Value: value}, j, nil
}

// parseDefFormals reads def-formals up to the closing parenthesis of the
// (define (name ...) ...) header: variables, optionally a dotted rest.
func parseDefFormals(tokens []lexer.Token, i int) (*ast.Formals, int, error) {
	formals := &ast.Formals{Variables: []*ast.Variable{}}

	for {
		if i >= len(tokens) {
			return nil, i, errUnexpectedEnd(tokens, i)
		}
		tok := tokens[i]

		if tok.IsPunctuator(")") {
			return formals, i + 1, nil
		}

		if tok.IsPunctuator(".") {
			rest, j, err := mustVariable(tokens, i+1)
			if err != nil {
				return nil, i, err
			}
			formals.Rest = rest
			j, err = expectPunctuator(tokens, j, ")")
			if err != nil {
				return nil, i, err
			}
			return formals, j, nil
		}

		v, j, err := mustVariable(tokens, i)
		if err != nil {
			return nil, i, err
		}
		formals.Variables = append(formals.Variables, v)
		i = j
	}
}

// parseBeginDefinitions matches (begin definition*) only when every inner
// form is a definition; otherwise it backs off so the expression parser can
// try (begin sequence).
func parseBeginDefinitions(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "begin") {
		return nil, i, nil
	}

	defs := []ast.Node{}
	j := i + 2
	for {
		if j >= len(tokens) {
			return nil, i, nil
		}
		if tokens[j].IsPunctuator(")") {
			return &ast.Begin{Sequence: defs}, j + 1, nil
		}

		d, k, err := parseDefinition(tokens, j)
		if err != nil || d == nil {
			return nil, i, nil
		}
		defs = append(defs, d)
		j = k
	}
}

func parseCond(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "cond") {
		return nil, i, nil
	}

	cond := &ast.Cond{}
	j := i + 2
	for {
		if j >= len(tokens) {
			return nil, i, errUnexpectedEnd(tokens, j)
		}
		if tokens[j].IsPunctuator(")") {
			break
		}

		if guard(tokens, j, "else") {
			seq, k, err := parseSequence(tokens, j+2)
			if err != nil {
				return nil, i, err
			}
			k, err = expectPunctuator(tokens, k, ")")
			if err != nil {
				return nil, i, err
			}
			cond.Else = seq
			j = k
			break
		}

		clause, k, err := parseCondClause(tokens, j)
		if err != nil {
			return nil, i, err
		}
		cond.Clauses = append(cond.Clauses, clause)
		j = k
	}

	if len(cond.Clauses) == 0 && cond.Else == nil {
		return nil, i, errorAt(tokens, i, "No cond clause and not else specified")
	}

	j, err := expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return cond, j, nil
}

func parseCondClause(tokens []lexer.Token, i int) (*ast.CondClause, int, error) {
	j, err := expectPunctuator(tokens, i, "(")
	if err != nil {
		return nil, i, err
	}

	test, j, err := mustExpression(tokens, j)
	if err != nil {
		return nil, i, err
	}
	clause := &ast.CondClause{Test: test}

	if j < len(tokens) && tokens[j].IsPunctuator(")") {
		return clause, j + 1, nil
	}

	if j < len(tokens) && tokens[j].IsIdentifier("=>") {
		clause.Recipient, j, err = mustExpression(tokens, j+1)
		if err != nil {
			return nil, i, err
		}
		j, err = expectPunctuator(tokens, j, ")")
		if err != nil {
			return nil, i, err
		}
		return clause, j, nil
	}

	clause.Sequence, j, err = parseSequence(tokens, j)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return clause, j, nil
}

func parseCase(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "case") {
		return nil, i, nil
	}

	key, j, err := mustExpression(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	c := &ast.Case{Key: key}

	for {
		if j >= len(tokens) {
			return nil, i, errUnexpectedEnd(tokens, j)
		}
		if tokens[j].IsPunctuator(")") {
			break
		}

		if guard(tokens, j, "else") {
			seq, k, err := parseSequence(tokens, j+2)
			if err != nil {
				return nil, i, err
			}
			k, err = expectPunctuator(tokens, k, ")")
			if err != nil {
				return nil, i, err
			}
			c.Else = seq
			j = k
			break
		}

		clause, k, err := parseCaseClause(tokens, j)
		if err != nil {
			return nil, i, err
		}
		c.Clauses = append(c.Clauses, clause)
		j = k
	}

	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return c, j, nil
}

func parseCaseClause(tokens []lexer.Token, i int) (*ast.CaseClause, int, error) {
	j, err := expectPunctuator(tokens, i, "(")
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, "(")
	if err != nil {
		return nil, i, err
	}

	clause := &ast.CaseClause{}
	for {
		if j >= len(tokens) {
			return nil, j, errUnexpectedEnd(tokens, j)
		}
		if tokens[j].IsPunctuator(")") {
			j++
			break
		}
		d, k, err := ReadDatum(tokens, j)
		if err != nil {
			return nil, j, err
		}
		clause.Data = append(clause.Data, d)
		j = k
	}

	clause.Sequence, j, err = parseSequence(tokens, j)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return clause, j, nil
}

// parseSequence reads one or more expressions up to a closing parenthesis,
// which is left for the caller.
func parseSequence(tokens []lexer.Token, i int) ([]ast.Node, int, error) {
	seq := []ast.Node{}

	for {
		if i >= len(tokens) {
			return nil, i, errUnexpectedEnd(tokens, i)
		}
		if tokens[i].IsPunctuator(")") {
			break
		}
		e, j, err := mustExpression(tokens, i)
		if err != nil {
			return nil, i, err
		}
		seq = append(seq, e)
		i = j
	}

	if len(seq) == 0 {
		return nil, i, errorAt(tokens, i, "Expecting expression")
	}
	return seq, i, nil
}

// parseExpressions reads zero or more expressions up to a closing
// parenthesis, which is left for the caller.
func parseExpressions(tokens []lexer.Token, i int) ([]ast.Node, int, error) {
	exprs := []ast.Node{}

	for {
		if i >= len(tokens) {
			return nil, i, errUnexpectedEnd(tokens, i)
		}
		if tokens[i].IsPunctuator(")") {
			return exprs, i, nil
		}
		e, j, err := mustExpression(tokens, i)
		if err != nil {
			return nil, i, err
		}
		exprs = append(exprs, e)
		i = j
	}
}

func parseAnd(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "and") {
		return nil, i, nil
	}
	exprs, j, err := parseExpressions(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return &ast.And{Exprs: exprs}, j, nil
}

func parseOr(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "or") {
		return nil, i, nil
	}
	exprs, j, err := parseExpressions(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return &ast.Or{Exprs: exprs}, j, nil
}

func parseLet(tokens []lexer.Token, i int) (ast.Node, int, error) {
	var kind ast.LetKind
	switch {
	case guard(tokens, i, "let"):
		kind = ast.LetPlain
	case guard(tokens, i, "let*"):
		kind = ast.LetStar
	case guard(tokens, i, "letrec"):
		kind = ast.LetRec
	default:
		return nil, i, nil
	}

	let := &ast.Let{Kind: kind}
	j := i + 2

	// named let
	if kind == ast.LetPlain && j < len(tokens) && tokens[j].Kind == lexer.KindIdentifier {
		name, k, err := mustVariable(tokens, j)
		if err != nil {
			return nil, i, err
		}
		let.Name = name
		j = k
	}

	bindings, j, err := parseBindings(tokens, j)
	if err != nil {
		return nil, i, err
	}
	let.Bindings = bindings

	let.Body, j, err = parseBody(tokens, j)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return let, j, nil
}

func parseBindings(tokens []lexer.Token, i int) ([]*ast.Binding, int, error) {
	j, err := expectPunctuator(tokens, i, "(")
	if err != nil {
		return nil, i, err
	}

	bindings := []*ast.Binding{}
	for {
		if j >= len(tokens) {
			return nil, j, errUnexpectedEnd(tokens, j)
		}
		if tokens[j].IsPunctuator(")") {
			return bindings, j + 1, nil
		}

		k, err := expectPunctuator(tokens, j, "(")
		if err != nil {
			return nil, j, err
		}
		v, k, err := mustVariable(tokens, k)
		if err != nil {
			return nil, j, err
		}
		init, k, err := mustExpression(tokens, k)
		if err != nil {
			return nil, j, err
		}
		k, err = expectPunctuator(tokens, k, ")")
		if err != nil {
			return nil, j, err
		}
		bindings = append(bindings, &ast.Binding{Variable: v, Init: init})
		j = k
	}
}

func parseBegin(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "begin") {
		return nil, i, nil
	}
	seq, j, err := parseSequence(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return &ast.Begin{Sequence: seq}, j, nil
}

func parseDo(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "do") {
		return nil, i, nil
	}

	specs, j, err := parseIterationSpecs(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	d := &ast.Do{Specs: specs}

	// (test sequence)
	j, err = expectPunctuator(tokens, j, "(")
	if err != nil {
		return nil, i, err
	}
	d.Test, j, err = mustExpression(tokens, j)
	if err != nil {
		return nil, i, err
	}
	for j < len(tokens) && !tokens[j].IsPunctuator(")") {
		var e ast.Node
		e, j, err = mustExpression(tokens, j)
		if err != nil {
			return nil, i, err
		}
		d.Sequence = append(d.Sequence, e)
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}

	d.Commands, j, err = parseExpressions(tokens, j)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return d, j, nil
}

func parseIterationSpecs(tokens []lexer.Token, i int) ([]*ast.IterationSpec, int, error) {
	j, err := expectPunctuator(tokens, i, "(")
	if err != nil {
		return nil, i, err
	}

	specs := []*ast.IterationSpec{}
	for {
		if j >= len(tokens) {
			return nil, j, errUnexpectedEnd(tokens, j)
		}
		if tokens[j].IsPunctuator(")") {
			return specs, j + 1, nil
		}

		k, err := expectPunctuator(tokens, j, "(")
		if err != nil {
			return nil, j, err
		}
		v, k, err := mustVariable(tokens, k)
		if err != nil {
			return nil, j, err
		}
		spec := &ast.IterationSpec{Variable: v}
		spec.Init, k, err = mustExpression(tokens, k)
		if err != nil {
			return nil, j, err
		}
		if k < len(tokens) && !tokens[k].IsPunctuator(")") {
			spec.Step, k, err = mustExpression(tokens, k)
			if err != nil {
				return nil, j, err
			}
		}
		k, err = expectPunctuator(tokens, k, ")")
		if err != nil {
			return nil, j, err
		}
		specs = append(specs, spec)
		j = k
	}
}

func parseDelay(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !guard(tokens, i, "delay") {
		return nil, i, nil
	}
	e, j, err := mustExpression(tokens, i+2)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return &ast.Delay{Expression: e}, j, nil
}

// parseProcedureCall is the fallback for parenthesized forms whose head is
// not a reserved keyword.
func parseProcedureCall(tokens []lexer.Token, i int) (ast.Node, int, error) {
	if !tokens[i].IsPunctuator("(") {
		return nil, i, nil
	}
	if i+1 < len(tokens) && isKeywordToken(tokens[i+1]) {
		return nil, i, nil
	}

	operator, j, err := mustExpression(tokens, i+1)
	if err != nil {
		return nil, i, err
	}

	call := &ast.ProcedureCall{Operator: operator}
	call.Operands, j, err = parseExpressions(tokens, j)
	if err != nil {
		return nil, i, err
	}
	j, err = expectPunctuator(tokens, j, ")")
	if err != nil {
		return nil, i, err
	}
	return call, j, nil
}
