package scheme

import (
	"io"
	"io/ioutil"

	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/lexer"
	"github.com/xiam/scheme/parser"
)

// Read tokenizes in and returns every top-level datum.
func Read(in []byte) ([]ast.Datum, error) {
	tokens, err := lexer.Tokenize(string(in))
	if err != nil {
		return nil, err
	}
	return parser.ReadProgram(tokens)
}

// Parse tokenizes in and returns the program AST.
func Parse(in []byte) ([]ast.Node, error) {
	tokens, err := lexer.Tokenize(string(in))
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Reader consumes Scheme source from an io.Reader
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) Read() ([]ast.Datum, error) {
	in, err := ioutil.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return Read(in)
}

func (r *Reader) Parse() ([]ast.Node, error) {
	in, err := ioutil.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return Parse(in)
}
