// Package pattern compiles the user-supplied expressions the analyses match
// tokens and sentences against.
package pattern

import (
	"fmt"
	"regexp"

	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/lexis/pkg/lexis/internalerr"
)

// wordChar is the class of runes that make up a word. RE2's \b only knows
// ASCII, so whole-word matching is built from this class instead.
const wordChar = `\p{L}\p{N}\p{M}_`

// Normalize returns s in NFC, the form the tokenizers emit.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Compile compiles expr as a case-insensitive search pattern. expr is
// normalized to NFC first.
// Errors wrap internalerr.ErrInvalidPattern.
func Compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + Normalize(expr))
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w: %v", expr, internalerr.ErrInvalidPattern, err)
	}
	return re, nil
}

// WholeWord compiles word so that it only matches where it is not preceded
// or followed by a letter, digit, mark or underscore, case-insensitively.
// word is used as an expression, not quoted.
func WholeWord(word string) (*regexp.Regexp, error) {
	return Compile(`(?:^|[^` + wordChar + `])(?:` + word + `)(?:$|[^` + wordChar + `])`)
}

// Radius returns the half-width of a window of the given width.
// Negative widths wrap internalerr.ErrInvalidWidth.
func Radius(width int) (int, error) {
	if width < 0 {
		return 0, fmt.Errorf("width %d: %w", width, internalerr.ErrInvalidWidth)
	}
	return width / 2, nil
}
