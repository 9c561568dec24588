package ingest

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// Args parses dataset samples passed directly on the command line.
func Args(args []string) ([]float64, error) {
	return parseTokens(args)
}

// File reads a dataset from a text file.
func File(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("Read dataset file")
	return Text(string(data))
}

// Reader consumes a dataset from a stream, typically stdin.
func Reader(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset stream: %w", err)
	}
	return Text(string(data))
}

// Text splits a dataset on whitespace and commas and parses each token
// as a float. An empty string yields an empty dataset, not an error.
func Text(s string) ([]float64, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return parseTokens(tokens)
}

func parseTokens(tokens []string) ([]float64, error) {
	values := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q: %w", tok, err)
		}
		values = append(values, v)
	}
	log.Debug().Int("samples", len(values)).Msg("Dataset ingested")
	return values, nil
}
