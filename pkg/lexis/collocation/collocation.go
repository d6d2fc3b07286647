// Package collocation counts the words that appear near a pattern, sentence
// by sentence, over a whole document.
package collocation

import (
	"strings"

	"github.com/cognicore/lexis/pkg/lexis/filter"
	"github.com/cognicore/lexis/pkg/lexis/freq"
	"github.com/cognicore/lexis/pkg/lexis/pattern"
	"github.com/cognicore/lexis/pkg/lexis/stoplist"
	"github.com/cognicore/lexis/pkg/lexis/tokenize"
)

// Count returns how often each word appears near a token matching expr.
//
// Each sentence is tokenized on its own and stripped of punctuation and
// stopwords. Every matching token at filtered position i opens a window
// over positions [i-width/2, i+width/2). The upper bound is exclusive, so
// the window reaches one word further to the left than to the right. A
// neighbour is counted under its lowercase form unless it equals the
// matching token ignoring case. Windows never cross sentence boundaries;
// counts add up over all matches and all sentences.
func Count(tok tokenize.Tokenizer, stops *stoplist.Manager, text, expr string, width int) (*freq.Map, error) {
	radius, err := pattern.Radius(width)
	if err != nil {
		return nil, err
	}
	re, err := pattern.Compile(expr)
	if err != nil {
		return nil, err
	}

	text = pattern.Normalize(text)
	f := filter.New(stops)
	counts := freq.NewMap()

	for _, sentence := range tok.SplitSentences(text) {
		words := f.Apply(filter.FromStrings(tok.Tokenize(sentence)), true)

		for i, w := range words {
			if !re.MatchString(w.Text) {
				continue
			}
			ref := strings.ToLower(w.Text)
			for x := i - radius; x < i+radius; x++ {
				if x < 0 || x >= len(words) {
					continue
				}
				if neighbour := strings.ToLower(words[x].Text); neighbour != ref {
					counts.Inc(neighbour)
				}
			}
		}
	}

	return counts, nil
}
