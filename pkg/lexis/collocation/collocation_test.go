package collocation

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/lexis/pkg/lexis/filter"
	"github.com/cognicore/lexis/pkg/lexis/internalerr"
	"github.com/cognicore/lexis/pkg/lexis/stoplist"
	"github.com/cognicore/lexis/pkg/lexis/tokenize"
)

func TestCountAsymmetricWindow(t *testing.T) {
	// Filtered: quick brown fox jumps lazy dog, fox at 2, radius 1.
	// Window [1, 3) covers brown and fox only.
	counts, err := Count(tokenize.NewSimple(), stoplist.English(),
		"The quick brown fox jumps over the lazy dog.", "fox", 2)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	want := map[string]int{"brown": 1}
	if !reflect.DeepEqual(counts.ToMap(), want) {
		t.Errorf("Count() = %v, want %v", counts.ToMap(), want)
	}
}

func TestCountWiderWindow(t *testing.T) {
	// radius 2, window [0, 4): quick brown (fox) jumps
	counts, err := Count(tokenize.NewSimple(), stoplist.English(),
		"The quick brown fox jumps over the lazy dog.", "fox", 4)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	want := map[string]int{"quick": 1, "brown": 1, "jumps": 1}
	if !reflect.DeepEqual(counts.ToMap(), want) {
		t.Errorf("Count() = %v, want %v", counts.ToMap(), want)
	}
}

func TestCountAccumulatesAcrossSentences(t *testing.T) {
	text := "Red fox hunts. Quiet red fox sleeps. Nothing here."
	counts, err := Count(tokenize.NewSimple(), stoplist.English(), text, "fox", 4)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	// Sentence 1: red fox hunts, fox at 1, window [-1,3) -> red, hunts.
	// Sentence 2: quiet red fox sleeps, fox at 2, window [0,4) -> quiet, red, sleeps.
	want := map[string]int{"red": 2, "hunts": 1, "quiet": 1, "sleeps": 1}
	if !reflect.DeepEqual(counts.ToMap(), want) {
		t.Errorf("Count() = %v, want %v", counts.ToMap(), want)
	}
}

func TestCountSkipsSelfMatches(t *testing.T) {
	counts, err := Count(tokenize.NewSimple(), stoplist.English(), "Fox fox FOX den.", "fox", 6)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	// Each fox sees den (if in window) but never another fox.
	if counts.Get("fox") != 0 {
		t.Errorf("fox should not count itself, got %d", counts.Get("fox"))
	}
	// Windows: i=0 [-3,3) -> den? index 3 excluded. i=1 [-2,4) -> den. i=2 [-1,5) -> den.
	if counts.Get("den") != 2 {
		t.Errorf("den = %d, want 2", counts.Get("den"))
	}
}

func TestCountMatchingNeighbourWithDifferentText(t *testing.T) {
	// "foxes" matches the pattern but differs from "fox", so each counts the other.
	counts, err := Count(tokenize.NewSimple(), stoplist.English(), "fox foxes", "fox", 4)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	want := map[string]int{"foxes": 1, "fox": 1}
	if !reflect.DeepEqual(counts.ToMap(), want) {
		t.Errorf("Count() = %v, want %v", counts.ToMap(), want)
	}
}

func TestCountStopwordsRemovedBeforeWindowing(t *testing.T) {
	counts, err := Count(tokenize.NewSimple(), stoplist.English(), "the fox and the hound", "fox", 2)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	// Filtered: fox hound, fox at 0, window [-1, 1) -> nothing but fox.
	if counts.Len() != 0 {
		t.Errorf("Expected no collocates, got %v", counts.ToMap())
	}

	counts, err = Count(tokenize.NewSimple(), stoplist.English(), "hound and the fox", "fox", 2)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if counts.Get("hound") != 1 {
		t.Errorf("hound = %d, want 1 after stopword removal", counts.Get("hound"))
	}
}

func TestCountNoMatches(t *testing.T) {
	counts, err := Count(tokenize.NewSimple(), stoplist.English(), "Nothing matches here.", "zebra", 10)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if counts.Len() != 0 {
		t.Errorf("Expected empty map, got %v", counts.ToMap())
	}
}

func TestCountErrors(t *testing.T) {
	if _, err := Count(tokenize.NewSimple(), nil, "x", "[", 2); !errors.Is(err, internalerr.ErrInvalidPattern) {
		t.Errorf("error = %v, want ErrInvalidPattern", err)
	}
	if _, err := Count(tokenize.NewSimple(), nil, "x", "x", -1); !errors.Is(err, internalerr.ErrInvalidWidth) {
		t.Errorf("error = %v, want ErrInvalidWidth", err)
	}
}

// bruteForce recounts neighbour pairs with an independent scan.
func bruteForce(tok tokenize.Tokenizer, stops *stoplist.Manager, text, word string, width int) int {
	f := filter.New(stops)
	radius := width / 2
	pairs := 0
	for _, sentence := range tok.SplitSentences(text) {
		words := filter.Texts(f.Apply(filter.FromStrings(tok.Tokenize(sentence)), true))
		for i, w := range words {
			if !strings.Contains(strings.ToLower(w), word) {
				continue
			}
			for j := range words {
				if j >= i-radius && j < i+radius && !strings.EqualFold(words[j], w) {
					pairs++
				}
			}
		}
	}
	return pairs
}

func TestCountTotalMatchesBruteForce(t *testing.T) {
	corpus := "The river fox crossed the river at dawn. A fox, another fox and a wolf met by the river. " +
		"Wolves avoid the river. Foxes love river banks and river fish!"

	tok := tokenize.NewSimple()
	stops := stoplist.English()
	for _, width := range []int{0, 1, 2, 3, 5, 8} {
		for _, word := range []string{"fox", "river"} {
			counts, err := Count(tok, stops, corpus, word, width)
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			for _, k := range counts.Keys() {
				if counts.Get(k) < 0 {
					t.Errorf("negative count for %q", k)
				}
			}
			if got, want := counts.Total(), bruteForce(tok, stops, corpus, word, width); got != want {
				t.Errorf("word %q width %d: total %d, brute force %d", word, width, got, want)
			}
		}
	}
}
