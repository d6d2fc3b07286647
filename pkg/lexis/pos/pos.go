// Package pos maps Penn Treebank part-of-speech tags onto coarse word
// classes and tags free text.
package pos

import (
	"sort"
	"strings"
)

// Category is a coarse grammatical class.
type Category string

const (
	Adjective Category = "adjective"
	Verb      Category = "verb"
	Noun      Category = "noun"
	Adverb    Category = "adverb"
	Unknown   Category = "unknown"
)

// CoarseCategory classifies a PTB tag by its first letter.
func CoarseCategory(tag string) Category {
	switch {
	case strings.HasPrefix(tag, "J"):
		return Adjective
	case strings.HasPrefix(tag, "V"):
		return Verb
	case strings.HasPrefix(tag, "N"):
		return Noun
	case strings.HasPrefix(tag, "R"):
		return Adverb
	default:
		return Unknown
	}
}

// WordNetCode returns the one-letter WordNet part of speech for tag
// ("a", "v", "n", "r"), or "" when WordNet has none.
func WordNetCode(tag string) string {
	switch CoarseCategory(tag) {
	case Adjective:
		return "a"
	case Verb:
		return "v"
	case Noun:
		return "n"
	case Adverb:
		return "r"
	default:
		return ""
	}
}

var descriptions = map[string]string{
	"CC":   "conjunction, coordinating",
	"CD":   "numeral, cardinal",
	"DT":   "determiner",
	"EX":   "existential there",
	"FW":   "foreign word",
	"IN":   "preposition or conjunction, subordinating",
	"JJ":   "adjective or numeral, ordinal",
	"JJR":  "adjective, comparative",
	"JJS":  "adjective, superlative",
	"LS":   "list item marker",
	"MD":   "modal auxiliary",
	"NN":   "noun, common, singular or mass",
	"NNP":  "noun, proper, singular",
	"NNPS": "noun, proper, plural",
	"NNS":  "noun, common, plural",
	"PDT":  "pre-determiner",
	"POS":  "genitive marker",
	"PRP":  "pronoun, personal",
	"PRP$": "pronoun, possessive",
	"RB":   "adverb",
	"RBR":  "adverb, comparative",
	"RBS":  "adverb, superlative",
	"RP":   "particle",
	"SYM":  "symbol",
	"TO":   "to as preposition or infinitive marker",
	"UH":   "interjection",
	"VB":   "verb, base form",
	"VBD":  "verb, past tense",
	"VBG":  "verb, present participle or gerund",
	"VBN":  "verb, past participle",
	"VBP":  "verb, present tense, not 3rd person singular",
	"VBZ":  "verb, present tense, 3rd person singular",
	"WDT":  "WH-determiner",
	"WP":   "WH-pronoun",
	"WP$":  "WH-pronoun, possessive",
	"WRB":  "Wh-adverb",
}

// Describe returns the human-readable description of a PTB tag.
func Describe(tag string) (string, bool) {
	d, ok := descriptions[tag]
	return d, ok
}

// Tags returns every described PTB tag in lexical order.
func Tags() []string {
	tags := make([]string, 0, len(descriptions))
	for t := range descriptions {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
