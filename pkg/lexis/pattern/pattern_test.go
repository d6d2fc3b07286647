package pattern

import (
	"errors"
	"testing"

	"github.com/cognicore/lexis/pkg/lexis/internalerr"
)

func TestCompileCaseInsensitive(t *testing.T) {
	re, err := Compile("fox")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, s := range []string{"fox", "FOX", "Foxes"} {
		if !re.MatchString(s) {
			t.Errorf("%q should match", s)
		}
	}
}

func TestCompileInvalid(t *testing.T) {
	_, err := Compile("fo(x")
	if !errors.Is(err, internalerr.ErrInvalidPattern) {
		t.Errorf("error = %v, want ErrInvalidPattern", err)
	}
}

func TestWholeWord(t *testing.T) {
	re, err := WholeWord("cat")
	if err != nil {
		t.Fatalf("WholeWord: %v", err)
	}
	if !re.MatchString("The Cat sat") {
		t.Error("should match whole word")
	}
	if re.MatchString("concatenate") {
		t.Error("should not match inside a word")
	}
}

func TestWholeWordAlternation(t *testing.T) {
	re, err := WholeWord("cat|dog")
	if err != nil {
		t.Fatalf("WholeWord: %v", err)
	}
	if re.MatchString("dogma") {
		t.Error("boundaries should apply to every alternative")
	}
}

func TestWholeWordUnicode(t *testing.T) {
	tests := []struct {
		word, text string
		want       bool
	}{
		{"café", "Le café est près du thé.", true},
		{"thé", "Le café est près du thé.", true},
		{"über", "Über cat and dog.", true},
		{"na", "The naïve cat.", false},
		{"caf", "Le café est chaud.", false},
		{"fox", "fox_den", false},
		{"fox", "a fox.", true},
	}
	for _, tt := range tests {
		re, err := WholeWord(tt.word)
		if err != nil {
			t.Fatalf("WholeWord(%q): %v", tt.word, err)
		}
		if got := re.MatchString(tt.text); got != tt.want {
			t.Errorf("WholeWord(%q).MatchString(%q) = %v, want %v", tt.word, tt.text, got, tt.want)
		}
	}
}

func TestCompileNormalizes(t *testing.T) {
	// Decomposed e + combining acute compiles to the composed form.
	re, err := Compile("ce\u0301l")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !re.MatchString("c\u00e9l") {
		t.Error("decomposed pattern should match composed text")
	}
	if got := Normalize("ce\u0301l"); got != "c\u00e9l" {
		t.Errorf("Normalize() = %q, want %q", got, "c\u00e9l")
	}
}

func TestRadius(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {10, 5},
	}
	for _, tt := range tests {
		got, err := Radius(tt.width)
		if err != nil {
			t.Errorf("Radius(%d) unexpected error: %v", tt.width, err)
		}
		if got != tt.want {
			t.Errorf("Radius(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}

	if _, err := Radius(-1); !errors.Is(err, internalerr.ErrInvalidWidth) {
		t.Errorf("Radius(-1) error = %v, want ErrInvalidWidth", err)
	}
}
