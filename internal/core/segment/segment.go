package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMinLength is the rune count a trimmed sentence must exceed to be kept.
const DefaultMinLength = 5

// Segmenter splits text into sentences at terminal punctuation that is followed,
// after optional whitespace, by an uppercase ASCII letter. It is a heuristic:
// abbreviations and initials ("U.S. Army") split, and short clauses ("No.") are dropped.
type Segmenter struct {
	MinLength int
}

func NewSegmenter(minLength int) *Segmenter {
	return &Segmenter{MinLength: minLength}
}

// Split returns the trimmed sentences of text in order.
func (s *Segmenter) Split(text string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(text); i++ {
		if !isTerminal(text[i]) {
			continue
		}

		// Skip whitespace after the punctuation mark
		j := i + 1
		for j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += size
		}

		if j < len(text) && isUpperASCII(text[j]) {
			sentences = s.appendCandidate(sentences, text[start:i+1])
			start = j
			i = j - 1
		}
	}

	return s.appendCandidate(sentences, text[start:])
}

func (s *Segmenter) appendCandidate(sentences []string, candidate string) []string {
	candidate = strings.TrimSpace(candidate)
	if utf8.RuneCountInString(candidate) <= s.MinLength {
		return sentences
	}
	return append(sentences, candidate)
}

var defaultSegmenter = NewSegmenter(DefaultMinLength)

// Split segments text with DefaultMinLength.
func Split(text string) []string {
	return defaultSegmenter.Split(text)
}

func isTerminal(c byte) bool {
	return c == '.' || c == '?' || c == '!'
}

func isUpperASCII(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
