package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single sentence",
			text: "The meeting is at 3pm on Monday.",
			want: []string{"The meeting is at 3pm on Monday."},
		},
		{
			name: "mixed terminators",
			text: "Is it Monday? Yes it is! The office opens at nine.",
			want: []string{"Is it Monday?", "Yes it is!", "The office opens at nine."},
		},
		{
			name: "no whitespace after punctuation",
			text: "First sentence.Second sentence.",
			want: []string{"First sentence.", "Second sentence."},
		},
		{
			name: "lowercase continuation does not split",
			text: "Pay is 3.5 percent. rates may vary by region.",
			want: []string{"Pay is 3.5 percent. rates may vary by region."},
		},
		{
			name: "newlines count as whitespace",
			text: "Line one ends here.\n\n  Line two ends here.",
			want: []string{"Line one ends here.", "Line two ends here."},
		},
		{
			name: "short fragments dropped",
			text: "No. OK. This one is long enough.",
			want: []string{"This one is long enough."},
		},
		{
			name: "exactly five runes dropped",
			text: "Hello",
			want: nil,
		},
		{
			name: "six runes kept",
			text: "Hello!",
			want: []string{"Hello!"},
		},
		{
			name: "no boundary markers",
			text: "  a clause without any terminal punctuation  ",
			want: []string{"a clause without any terminal punctuation"},
		},
		{
			name: "repeated punctuation splits after the last mark",
			text: "Wait... What happened here?",
			want: []string{"Wait...", "What happened here?"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: " \n\t ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_InitialsBelowMinLengthAreDropped(t *testing.T) {
	// "The U." is six runes and survives, "S." does not.
	got := Split("The U.S. Army base operates daily.")
	assert.Equal(t, []string{"The U.", "Army base operates daily."}, got)
}

func TestSplit_CustomMinLength(t *testing.T) {
	s := NewSegmenter(0)
	assert.Equal(t, []string{"No.", "OK.", "Fine."}, s.Split("No. OK. Fine."))

	s = NewSegmenter(20)
	assert.Equal(t, []string{"This sentence is long enough."}, s.Split("Too short. This sentence is long enough."))
}

func TestSplit_RoundTripKeepsSentenceCount(t *testing.T) {
	texts := []string{
		"Employees get 20 vacation days per year. The cafeteria is open until 9pm. Parking is free!",
		"Is remote work allowed? Only on Fridays. Managers approve requests weekly.",
	}

	for _, text := range texts {
		first := Split(text)
		second := Split(strings.Join(first, " "))
		assert.Equal(t, first, second)
	}
}

func TestSplit_NonASCIIText(t *testing.T) {
	got := Split("Le café ouvre à midi. Über alles gilt dies nicht.")
	assert.Equal(t, []string{"Le café ouvre à midi. Über alles gilt dies nicht."}, got)

	got = Split("Le café ouvre à midi. Alles gut hier.")
	assert.Equal(t, []string{"Le café ouvre à midi.", "Alles gut hier."}, got)
}
