package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionFilterClean(t *testing.T) {
	f, err := NewDescriptionFilter("")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "no seller mention passes through",
			in:   "A sturdy oak chair. Seats one adult comfortably.",
			want: "A sturdy oak chair. Seats one adult comfortably.",
		},
		{
			name: "seller sentence dropped",
			in:   "A sturdy oak chair. Buy it now at France and Son! Seats one adult.",
			want: "A sturdy oak chair. Seats one adult.",
		},
		{
			name: "ampersand spelling dropped",
			in:   "Exclusive to France & Son. Solid walnut frame.",
			want: "Solid walnut frame.",
		},
		{
			name: "case insensitive",
			in:   "Great piece. FRANCE AND SON ships worldwide.",
			want: "Great piece.",
		},
		{
			name: "whitespace normalized",
			in:   "Lovely   lamp.\n\nWarm  glow.",
			want: "Lovely lamp. Warm glow.",
		},
		{
			name: "all sentences dropped",
			in:   "France and Son exclusive. Only at France & Son.",
			want: "",
		},
		{
			name: "question and exclamation boundaries",
			in:   "Need a statement piece? France and Son has it! This one delivers.",
			want: "Need a statement piece? This one delivers.",
		},
		{
			name: "name inside word not matched",
			in:   "Lafrance and sonata themed decor.",
			want: "Lafrance and sonata themed decor.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Clean(tt.in))
		})
	}
}

func TestNewDescriptionFilterBadPattern(t *testing.T) {
	_, err := NewDescriptionFilter("([")
	assert.Error(t, err)
}

func TestSplitSentences(t *testing.T) {
	assert.Equal(t,
		[]string{"One.", "Two!", "Three?", "Four"},
		splitSentences("One. Two! Three? Four"))
	assert.Equal(t, []string{"No terminator"}, splitSentences("No terminator"))
	assert.Nil(t, splitSentences(""))
}
