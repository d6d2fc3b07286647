package pos

import (
	"testing"
)

func TestCoarseCategory(t *testing.T) {
	tests := []struct {
		tag  string
		want Category
	}{
		{"VBZ", Verb},
		{"VB", Verb},
		{"JJ", Adjective},
		{"JJS", Adjective},
		{"NN", Noun},
		{"NNPS", Noun},
		{"RB", Adverb},
		{"RBR", Adverb},
		{"XYZ", Unknown},
		{"DT", Unknown},
		{"", Unknown},
		{"vbz", Unknown},
	}
	for _, tt := range tests {
		if got := CoarseCategory(tt.tag); got != tt.want {
			t.Errorf("CoarseCategory(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestWordNetCode(t *testing.T) {
	tests := map[string]string{
		"JJR": "a",
		"VBD": "v",
		"NNS": "n",
		"RBS": "r",
		"CC":  "",
	}
	for tag, want := range tests {
		if got := WordNetCode(tag); got != want {
			t.Errorf("WordNetCode(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestDescribe(t *testing.T) {
	d, ok := Describe("VBZ")
	if !ok || d != "verb, present tense, 3rd person singular" {
		t.Errorf("Describe(VBZ) = %q, %v", d, ok)
	}
	if _, ok := Describe("XYZ"); ok {
		t.Error("XYZ should not be described")
	}
}

func TestTags(t *testing.T) {
	tags := Tags()
	if len(tags) != 36 {
		t.Errorf("Expected 36 tags, got %d", len(tags))
	}
	for i := 1; i < len(tags); i++ {
		if tags[i-1] >= tags[i] {
			t.Errorf("tags not sorted at %d: %q >= %q", i, tags[i-1], tags[i])
		}
	}
}

func TestProseTagger(t *testing.T) {
	tagged, err := NewProseTagger().Tag("The quick brown fox jumps over the lazy dog.")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(tagged) == 0 {
		t.Fatal("Expected tagged tokens")
	}
	for _, tok := range tagged {
		if tok.Tag == "" {
			t.Errorf("token %q has no tag", tok.Text)
		}
		if tok.Category != CoarseCategory(tok.Tag) {
			t.Errorf("token %q: category %q does not match tag %q", tok.Text, tok.Category, tok.Tag)
		}
	}
}
