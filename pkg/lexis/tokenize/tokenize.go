// Package tokenize provides the word tokenizers and sentence splitters the
// analyses run on.
package tokenize

import (
	"fmt"
	"strings"

	"github.com/cognicore/lexis/pkg/lexis/internalerr"
)

// Tokenizer splits raw text into sentences and sentences into word tokens.
// Implementations must be deterministic, keep input order and may emit
// punctuation as separate tokens.
type Tokenizer interface {
	Tokenize(text string) []string
	SplitSentences(text string) []string
}

// Tokenizer kinds accepted by New.
const (
	KindSimple = "simple"
	KindProse  = "prose"
)

// New returns the tokenizer registered under kind. An empty kind selects
// the simple tokenizer.
func New(kind string) (Tokenizer, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindSimple:
		return NewSimple(), nil
	case KindProse:
		return NewProse(), nil
	default:
		return nil, fmt.Errorf("tokenizer %q: %w", kind, internalerr.ErrInvalidConfig)
	}
}
