// Package sanitize normalizes raw user input before it reaches the
// classifier or the model. The same function runs on the client for
// immediate feedback and again on the server; the server never trusts
// client-side sanitization.
package sanitize

import (
	"errors"
	"regexp"
	"strings"
)

// MaxLength is the hard cap on sanitized message length, in runes.
const MaxLength = 1000

var (
	// ErrEmpty means the raw input was empty or whitespace only.
	ErrEmpty = errors.New("message cannot be empty")

	// ErrNoValidChars means the input was pure markup or otherwise
	// reduced to nothing by sanitization.
	ErrNoValidChars = errors.New("message contains no valid characters")
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)

	// Allow-list: word characters, extended Latin accented letters,
	// whitespace and a small punctuation set.
	disallowedRe = regexp.MustCompile(`[^\w\sÀ-ÿ.,;:¿?¡!()@+\-]`)
)

// Clean sanitizes raw user text. The pipeline order matters: script
// blocks go first (with their content), then remaining tag-like
// substrings, then the character allow-list, then trim and truncate.
// Clean is idempotent: Clean(Clean(x)) == Clean(x).
func Clean(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmpty
	}

	s := scriptBlockRe.ReplaceAllString(raw, "")
	s = tagRe.ReplaceAllString(s, "")
	s = disallowedRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if r := []rune(s); len(r) > MaxLength {
		// Re-trim after the cut so truncation cannot leave trailing
		// whitespace, which would break idempotence.
		s = strings.TrimSpace(string(r[:MaxLength]))
	}

	if s == "" {
		return "", ErrNoValidChars
	}
	return s, nil
}
