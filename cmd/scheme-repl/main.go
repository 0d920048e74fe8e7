package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/lexer"
	"github.com/xiam/scheme/parser"
)

const historyFile = ".scheme_repl_history"

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func completer(input string) []string {
	i := strings.LastIndexAny(input, " ()'`,")
	prefix, word := input[:i+1], input[i+1:]
	if word == "" {
		return nil
	}

	completions := []string{}
	for _, kw := range parser.Keywords() {
		if strings.HasPrefix(kw, word) {
			completions = append(completions, prefix+kw)
		}
	}
	return completions
}

func report(err error) {
	switch e := err.(type) {
	case *lexer.Error:
		log.Error().Int("line", e.Line).Int("col", e.Col).Msg(e.Msg)
	case *parser.Error:
		log.Error().Int("line", e.Line).Int("col", e.Col).Msg(e.Msg)
	default:
		log.Error().Err(err).Send()
	}
}

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completer)

	if f, err := os.Open(historyPath()); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		f, err := os.Create(historyPath())
		if err != nil {
			log.Error().Err(err).Msg("saving history")
			return
		}
		line.WriteHistory(f)
		f.Close()
	}()

	dumpTokens := false

	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			log.Error().Err(err).Send()
			return
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.TrimSpace(input) == ":tokens" {
			dumpTokens = !dumpTokens
			log.Info().Bool("tokens", dumpTokens).Msg("token dump mode")
			continue
		}

		tokens, err := lexer.Tokenize(input)
		if err != nil {
			report(err)
			continue
		}

		if dumpTokens {
			for _, tok := range tokens {
				fmt.Println(tok.String())
			}
			continue
		}

		data, err := parser.ReadProgram(tokens)
		if err != nil {
			report(err)
			continue
		}
		for _, d := range data {
			fmt.Println(ast.Encode(d))
		}
	}
}
