// Package cooccurrence finds sentences in which two words appear within a
// bounded token distance of each other.
package cooccurrence

import (
	"fmt"
	"regexp"

	"github.com/cognicore/lexis/pkg/lexis/internalerr"
	"github.com/cognicore/lexis/pkg/lexis/pattern"
	"github.com/cognicore/lexis/pkg/lexis/tokenize"
)

var whitespace = regexp.MustCompile(`[\s\p{Z}]+`)

// EmptyMatchError reports a sentence in which Word matched as a whole word
// but no single token matched it, typically because the match spans a token
// boundary or sits inside a larger token.
type EmptyMatchError struct {
	Sentence string
	Word     string
}

func (e *EmptyMatchError) Error() string {
	return fmt.Sprintf("word %q matches sentence %q but no token in it", e.Word, e.Sentence)
}

func (e *EmptyMatchError) Unwrap() error {
	return internalerr.ErrEmptyMatch
}

// Find returns the sentences of text in which word1 and word2 both occur
// and their first token positions are at most maxDistance apart. Sentences
// are returned verbatim after NFC normalization and after whitespace runs
// are collapsed to one space.
//
// word1 and word2 are regular expressions matched as whole words,
// ignoring case. Word boundaries are Unicode-aware. A sentence that matches both at sentence level but not
// at token level yields an *EmptyMatchError and no results.
func Find(tok tokenize.Tokenizer, text, word1, word2 string, maxDistance int) ([]string, error) {
	if maxDistance < 0 {
		return nil, fmt.Errorf("max distance %d: %w", maxDistance, internalerr.ErrInvalidWidth)
	}
	re1, err := pattern.WholeWord(word1)
	if err != nil {
		return nil, err
	}
	re2, err := pattern.WholeWord(word2)
	if err != nil {
		return nil, err
	}

	text = whitespace.ReplaceAllString(pattern.Normalize(text), " ")

	var relevant []string
	for _, sentence := range tok.SplitSentences(text) {
		if !re1.MatchString(sentence) || !re2.MatchString(sentence) {
			continue
		}

		idx1, idx2 := classify(tok.Tokenize(sentence), re1, re2)
		if len(idx1) == 0 {
			return nil, &EmptyMatchError{Sentence: sentence, Word: word1}
		}
		if len(idx2) == 0 {
			return nil, &EmptyMatchError{Sentence: sentence, Word: word2}
		}

		distance := idx1[0] - idx2[0]
		if distance < 0 {
			distance = -distance
		}
		if distance <= maxDistance {
			relevant = append(relevant, sentence)
		}
	}
	return relevant, nil
}

// classify collects the token positions matching re1 and re2. A token is
// tested against re1 first and only tested against re2 when re1 fails, so
// no position lands in both lists. This precedence decides which first
// positions the distance is measured between.
func classify(words []string, re1, re2 *regexp.Regexp) (idx1, idx2 []int) {
	for i, w := range words {
		if re1.MatchString(w) {
			idx1 = append(idx1, i)
		} else if re2.MatchString(w) {
			idx2 = append(idx2, i)
		}
	}
	return idx1, idx2
}
