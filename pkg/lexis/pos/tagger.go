package pos

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// TaggedToken is a word with its PTB tag and coarse class.
type TaggedToken struct {
	Text     string   `json:"text"`
	Tag      string   `json:"tag"`
	Category Category `json:"category"`
}

// Tagger assigns part-of-speech tags to text.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
}

// ProseTagger tags text with the prose averaged-perceptron model.
type ProseTagger struct{}

// NewProseTagger creates a tagger backed by prose.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tag tokenizes and tags text.
func (p *ProseTagger) Tag(text string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("tag text: %w", err)
	}

	toks := doc.Tokens()
	out := make([]TaggedToken, 0, len(toks))
	for _, tok := range toks {
		out = append(out, TaggedToken{
			Text:     tok.Text,
			Tag:      tok.Tag,
			Category: CoarseCategory(tok.Tag),
		})
	}
	return out, nil
}
