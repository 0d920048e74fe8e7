package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiam/scheme/lexer"
)

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	source, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("reading stdin")
	}

	tokens, err := lexer.Tokenize(string(source))
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			log.Fatal().
				Int("line", lexErr.Line).
				Int("col", lexErr.Col).
				Msg(lexErr.Msg)
		}
		log.Fatal().Err(err).Msg("tokenize")
	}

	log.Debug().Int("tokens", len(tokens)).Msg("tokenized")

	for _, tok := range tokens {
		fmt.Println(tok.String())
	}
}
