// Package concordance finds pattern matches in a text and returns each one
// with the words around it.
package concordance

import (
	"strings"

	"github.com/cognicore/lexis/pkg/lexis/filter"
	"github.com/cognicore/lexis/pkg/lexis/pattern"
	"github.com/cognicore/lexis/pkg/lexis/tokenize"
)

// Match is one occurrence of the pattern and its window.
type Match struct {
	Index  int      `json:"index"`  // position in the filtered token sequence
	Word   string   `json:"word"`   // the matching token
	Tokens []string `json:"tokens"` // window tokens, match included
	Window string   `json:"window"` // window tokens, each followed by a space
}

// Windows returns one window string per token matching expr, in document
// order. See Matches.
func Windows(tok tokenize.Tokenizer, text, expr string, width int) ([]string, error) {
	matches, err := Matches(tok, text, expr, width)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Window
	}
	return out, nil
}

// Matches tokenizes text as a single sequence, ignoring sentence boundaries,
// drops punctuation and looks for tokens matching expr case-insensitively.
// Each match yields the tokens from i-width/2 to i+width/2 inclusive,
// clamped to the sequence. Overlapping windows are all reported.
func Matches(tok tokenize.Tokenizer, text, expr string, width int) ([]Match, error) {
	radius, err := pattern.Radius(width)
	if err != nil {
		return nil, err
	}
	re, err := pattern.Compile(expr)
	if err != nil {
		return nil, err
	}

	text = pattern.Normalize(text)
	words := filter.New(nil).Apply(filter.FromStrings(tok.Tokenize(text)), false)

	var matches []Match
	for i, w := range words {
		if !re.MatchString(w.Text) {
			continue
		}
		lo := max(i-radius, 0)
		hi := min(i+radius, len(words)-1)

		window := filter.Texts(words[lo : hi+1])
		var b strings.Builder
		for _, t := range window {
			b.WriteString(t)
			b.WriteByte(' ')
		}
		matches = append(matches, Match{
			Index:  i,
			Word:   w.Text,
			Tokens: window,
			Window: b.String(),
		})
	}
	return matches, nil
}
