package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Simple is a rule-based tokenizer for English and similar languages.
//
// Letters and digits form words. An apostrophe or hyphen with word runes
// on both sides stays inside the word ("don't", "well-known"). Every other
// non-space rune becomes a token of its own, so punctuation survives
// tokenization and is left for the caller to filter.
type Simple struct{}

// NewSimple creates the rule-based tokenizer.
func NewSimple() *Simple {
	return &Simple{}
}

// Tokenize splits text into word and punctuation tokens.
func (s *Simple) Tokenize(text string) []string {
	runes := []rune(norm.NFC.String(text))

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			current.WriteRune(r)
		case isJoiner(r) && current.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			current.WriteRune(r)
		default:
			flush()
			if !unicode.IsSpace(r) {
				tokens = append(tokens, string(r))
			}
		}
	}
	flush()

	return tokens
}

// SplitSentences splits text after runs of '.', '!' or '?' (and any closing
// quotes or brackets) that are followed by whitespace or the end of text.
// Sentences are trimmed; the text inside them is left untouched.
func (s *Simple) SplitSentences(text string) []string {
	runes := []rune(text)

	var sentences []string
	start := 0
	emit := func(end int) {
		if sent := strings.TrimSpace(string(runes[start:end])); sent != "" {
			sentences = append(sentences, sent)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && (isTerminal(runes[j]) || isCloser(runes[j])) {
			j++
		}
		if j == len(runes) || unicode.IsSpace(runes[j]) {
			emit(j)
		}
		i = j - 1
	}
	emit(len(runes))

	return sentences
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Mn, r)
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', '’', '”', ')', ']', '}':
		return true
	}
	return false
}
