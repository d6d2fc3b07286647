// Package filter removes punctuation and, optionally, stopwords from token
// sequences before windowing.
package filter

import (
	"unicode"

	"github.com/cognicore/lexis/pkg/lexis/stoplist"
)

// Token is a word together with its position in the sequence that holds it.
type Token struct {
	Text  string
	Index int
}

// FromStrings wraps raw tokenizer output, numbering tokens from zero.
func FromStrings(words []string) []Token {
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Text: w, Index: i}
	}
	return tokens
}

// Texts returns the token texts in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

// Filter drops non-alphanumeric tokens and, on request, stopwords.
type Filter struct {
	stops *stoplist.Manager
}

// New creates a filter over the given stoplist. A nil stoplist removes no
// stopwords.
func New(stops *stoplist.Manager) *Filter {
	return &Filter{stops: stops}
}

// Apply keeps the tokens that are entirely letters and digits; with
// removeStopwords it also drops stopwords. Order is preserved and Index is
// renumbered to the position in the filtered sequence, which is the
// position windows are computed on.
func (f *Filter) Apply(tokens []Token, removeStopwords bool) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if !IsAlnum(t.Text) {
			continue
		}
		if removeStopwords && f.stops.IsStop(t.Text) {
			continue
		}
		out = append(out, Token{Text: t.Text, Index: len(out)})
	}
	return out
}

// IsAlnum reports whether s is non-empty and made only of letters and digits.
func IsAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
