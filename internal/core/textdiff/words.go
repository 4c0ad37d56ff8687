package textdiff

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/agenthands/concord/internal/core/model"
)

// Words computes a word-level diff that turns a into b. Tokens are runs of letters and
// digits, runs of whitespace, and single punctuation characters. For a replaced span
// the removed part precedes the added part.
func Words(a, b string) []model.Change {
	table := newTokenTable()
	runesA := table.encode(tokenize(a))
	runesB := table.encode(tokenize(b))

	dmp := diffmatchpatch.New()
	// No deadline: identical inputs must always produce identical diffs
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(runesA, runesB, false)

	changes := make([]model.Change, 0, len(diffs))
	for _, d := range diffs {
		value := table.decode(d.Text)
		if value == "" {
			continue
		}
		changes = append(changes, model.Change{
			Value:   value,
			Added:   d.Type == diffmatchpatch.DiffInsert,
			Removed: d.Type == diffmatchpatch.DiffDelete,
		})
	}
	return changes
}

type tokenKind int

const (
	kindWord tokenKind = iota
	kindSpace
	kindPunct
)

func classify(r rune) tokenKind {
	switch {
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return kindWord
	case unicode.IsSpace(r):
		return kindSpace
	default:
		return kindPunct
	}
}

func tokenize(s string) []string {
	var tokens []string
	start := -1
	var current tokenKind

	for i, r := range s {
		k := classify(r)
		if start >= 0 && k == current && k != kindPunct {
			continue
		}
		if start >= 0 {
			tokens = append(tokens, s[start:i])
		}
		start = i
		current = k
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// tokenTable maps each distinct token to a single rune so diffmatchpatch can diff
// token sequences the same way DiffLinesToRunes diffs lines.
type tokenTable struct {
	index  map[string]rune
	tokens []string
}

func newTokenTable() *tokenTable {
	return &tokenTable{index: make(map[string]rune)}
}

// Surrogate code points do not survive a []rune -> string conversion, so the
// encoding skips over them.
const (
	surrogateMin = 0xD800
	surrogateLen = 0x800
)

func toRune(i int) rune {
	r := rune(i)
	if r >= surrogateMin {
		r += surrogateLen
	}
	return r
}

func fromRune(r rune) int {
	if r >= surrogateMin+surrogateLen {
		r -= surrogateLen
	}
	return int(r)
}

func (t *tokenTable) encode(tokens []string) []rune {
	out := make([]rune, len(tokens))
	for i, tok := range tokens {
		r, ok := t.index[tok]
		if !ok {
			r = toRune(len(t.tokens))
			t.index[tok] = r
			t.tokens = append(t.tokens, tok)
		}
		out[i] = r
	}
	return out
}

func (t *tokenTable) decode(text string) string {
	var b strings.Builder
	for _, r := range text {
		b.WriteString(t.tokens[fromRune(r)])
	}
	return b.String()
}
