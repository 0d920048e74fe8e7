package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiam/scheme"
	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/lexer"
	"github.com/xiam/scheme/parser"
)

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	nodes, err := scheme.NewReader(os.Stdin).Parse()
	if err != nil {
		fatalPositioned(err)
	}

	log.Debug().Int("nodes", len(nodes)).Msg("parsed")

	for _, n := range nodes {
		fmt.Printf("(%s %s)\n", n.Type(), ast.EncodeNode(n))
	}
}

func fatalPositioned(err error) {
	switch e := err.(type) {
	case *lexer.Error:
		log.Fatal().Int("line", e.Line).Int("col", e.Col).Msg(e.Msg)
	case *parser.Error:
		log.Fatal().Int("line", e.Line).Int("col", e.Col).Msg(e.Msg)
	}
	log.Fatal().Err(err).Send()
}
