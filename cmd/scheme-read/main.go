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

	data, err := scheme.NewReader(os.Stdin).Read()
	if err != nil {
		fatalPositioned(err)
	}

	log.Debug().Int("datums", len(data)).Msg("read")

	for _, d := range data {
		fmt.Println(ast.Encode(d))
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
