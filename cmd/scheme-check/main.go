package main

import (
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/lexer"
	"github.com/xiam/scheme/parser"
)

const (
	prefixResult = "Correct result: "
	prefixError  = "Error: "
)

// runCase evaluates one fixture case in the selected mode and returns its
// printable result, or the error the case produced.
func runCase(mode, source string) (string, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return "", err
	}

	switch mode {
	case "tokens":
		parts := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			parts = append(parts, tok.String())
		}
		return strings.Join(parts, " "), nil

	case "read":
		data, err := parser.ReadProgram(tokens)
		if err != nil {
			return "", err
		}
		parts := make([]string, 0, len(data))
		for _, d := range data {
			parts = append(parts, ast.Encode(d))
		}
		return strings.Join(parts, " "), nil

	case "parse":
		nodes, err := parser.Parse(tokens)
		if err != nil {
			return "", err
		}
		parts := make([]string, 0, len(nodes))
		for _, n := range nodes {
			parts = append(parts, ast.EncodeNode(n))
		}
		return strings.Join(parts, " "), nil
	}

	log.Fatal().Str("mode", mode).Msg("unknown mode")
	return "", nil
}

// checkCase compares a case outcome against its expectation line
func checkCase(mode, source, expect string) bool {
	result, err := runCase(mode, source)

	switch {
	case strings.HasPrefix(expect, prefixResult):
		want := strings.TrimPrefix(expect, prefixResult)
		if err != nil {
			log.Error().Str("case", source).Err(err).Msg("unexpected error")
			return false
		}
		if result != want {
			log.Error().Str("case", source).Str("want", want).Str("got", result).Msg("result mismatch")
			return false
		}

	case strings.HasPrefix(expect, prefixError):
		want := strings.TrimPrefix(expect, prefixError)
		if err == nil {
			log.Error().Str("case", source).Str("want", want).Str("got", result).Msg("expected an error")
			return false
		}
		if !strings.HasPrefix(err.Error(), want) {
			log.Error().Str("case", source).Str("want", want).Str("got", err.Error()).Msg("error mismatch")
			return false
		}

	default:
		log.Error().Str("expect", expect).Msg("malformed expectation line")
		return false
	}

	log.Debug().Str("case", source).Msg("ok")
	return true
}

func checkFixture(mode, path string) (failures int) {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("fixture", path).Msg("reading fixture")
		return 1
	}
	expects, err := ioutil.ReadFile(path + ".expect")
	if err != nil {
		log.Error().Err(err).Str("fixture", path).Msg("reading expectations")
		return 1
	}

	cases := strings.Split(string(source), "|")
	lines := strings.Split(strings.TrimRight(string(expects), "\n"), "\n")
	if len(cases) != len(lines) {
		log.Error().
			Str("fixture", path).
			Int("cases", len(cases)).
			Int("expectations", len(lines)).
			Msg("fixture and expectations disagree")
		return 1
	}

	for i := range cases {
		if !checkCase(mode, strings.TrimSpace(cases[i]), lines[i]) {
			failures++
		}
	}

	log.Info().Str("fixture", path).Int("cases", len(cases)).Int("failures", failures).Send()
	return failures
}

func main() {
	mode := flag.String("mode", "read", "tokens, read or parse")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if flag.NArg() != 1 {
		log.Fatal().Msg("usage: scheme-check [-mode tokens|read|parse] listfile")
	}

	listPath := flag.Arg(0)
	list, err := ioutil.ReadFile(listPath)
	if err != nil {
		log.Fatal().Err(err).Msg("reading list file")
	}

	failures := 0
	for _, line := range strings.Split(string(list), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		path := line
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(listPath), path)
		}
		failures += checkFixture(*mode, path)
	}

	os.Exit(failures)
}
