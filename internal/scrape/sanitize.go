package scrape

import (
	"regexp"
	"strings"

	"github.com/go-faster/errors"
)

// DefaultSellerPattern matches the storefront's own name ("France and
// Son" / "France & Son") so sentences promoting the original seller are
// dropped from descriptions.
const DefaultSellerPattern = `\bfrance\s*(?:&|and)\s*son\b`

var whitespaceRE = regexp.MustCompile(`\s+`)

// DescriptionFilter removes whole sentences that mention the original
// seller, leaving the rest of the description intact.
type DescriptionFilter struct {
	seller *regexp.Regexp
}

// NewDescriptionFilter compiles a case-insensitive filter for the given
// pattern. An empty pattern uses DefaultSellerPattern.
func NewDescriptionFilter(pattern string) (*DescriptionFilter, error) {
	if pattern == "" {
		pattern = DefaultSellerPattern
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, errors.Wrap(err, "compile seller pattern")
	}
	return &DescriptionFilter{seller: re}, nil
}

// Clean normalizes whitespace, splits the text into sentences, and
// drops every sentence matching the seller pattern.
func (f *DescriptionFilter) Clean(text string) string {
	if text == "" {
		return ""
	}
	normalized := strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))

	kept := make([]string, 0, 8)
	for _, sentence := range splitSentences(normalized) {
		if f.seller.MatchString(sentence) {
			continue
		}
		kept = append(kept, sentence)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}

// splitSentences breaks text at sentence-ending punctuation followed by
// a space, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var (
		out   []string
		start int
	)
	for i := 0; i < len(text)-1; i++ {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && text[i+1] == ' ' {
			out = append(out, text[start:i+1])
			start = i + 2
			i++
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
