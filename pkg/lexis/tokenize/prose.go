package tokenize

import (
	"github.com/jdkato/prose/v2"
)

// Prose tokenizes and segments text with the prose NLP library. Its word
// tokenizer follows Penn Treebank conventions (contractions are split,
// punctuation is separated) and its sentence segmenter is a trained
// Punkt model.
type Prose struct {
	fallback *Simple
}

// NewProse creates a prose-backed tokenizer.
func NewProse() *Prose {
	return &Prose{fallback: NewSimple()}
}

// Tokenize returns the prose word tokens of text. If prose cannot build a
// document the simple tokenizer is used instead.
func (p *Prose) Tokenize(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return p.fallback.Tokenize(text)
	}

	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Text)
	}
	return out
}

// SplitSentences returns the prose sentence segmentation of text.
func (p *Prose) SplitSentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return p.fallback.SplitSentences(text)
	}

	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		out = append(out, s.Text)
	}
	return out
}
