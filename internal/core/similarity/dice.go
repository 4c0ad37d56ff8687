package similarity

import "strings"

// Normalize lowercases s and drops every character outside [a-z0-9].
func Normalize(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Bigrams returns every overlapping two-character substring of the normalized s, in order.
func Bigrams(s string) []string {
	n := Normalize(s)
	if len(n) < 2 {
		return nil
	}
	out := make([]string, 0, len(n)-1)
	for i := 0; i < len(n)-1; i++ {
		out = append(out, n[i:i+2])
	}
	return out
}

// Profile is the bigram multiset of one string. Normalized text is ASCII, so a bigram
// packs into a uint16.
type Profile struct {
	counts map[uint16]int
	total  int
}

func NewProfile(s string) Profile {
	n := Normalize(s)
	p := Profile{counts: make(map[uint16]int)}
	for i := 0; i < len(n)-1; i++ {
		p.counts[uint16(n[i])<<8|uint16(n[i+1])]++
		p.total++
	}
	return p
}

// Len is the number of bigrams, counting repeats.
func (p Profile) Len() int {
	return p.total
}

// Dice returns the Sørensen-Dice coefficient of the two bigram multisets. A bigram that
// occurs m times in one side and n times in the other contributes min(m, n) to the
// intersection.
func (p Profile) Dice(other Profile) float64 {
	total := p.total + other.total
	if total == 0 {
		return 0
	}

	small, large := p.counts, other.counts
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for bigram, n := range small {
		intersection += min(n, large[bigram])
	}

	return float64(2*intersection) / float64(total)
}

// Dice scores a and b in [0, 1]. Strings with no bigrams after normalization score 0.
func Dice(a, b string) float64 {
	return NewProfile(a).Dice(NewProfile(b))
}
