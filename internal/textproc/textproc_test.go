package textproc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topiclens/backend/internal/textproc"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "punctuation", input: "Markets rally!!!   again", want: "Markets rally again"},
		{name: "collapse whitespace", input: "foo\n\nbar\t baz", want: "foo bar baz"},
		{name: "remove urls", input: "Read https://example.com/story for details", want: "Read for details"},
		{name: "html entities", input: "Profits &amp; losses", want: "Profits losses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, textproc.CleanText(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "basic", input: "Central Bank Raises Rates", want: []string{"central", "bank", "raises", "rates"}},
		{name: "punctuation stripped", input: "deal: signed, finally!", want: []string{"deal", "signed", "finally"}},
		{name: "single chars dropped", input: "a b oil up", want: []string{"oil", "up"}},
		{name: "numbers kept", input: "GDP grew 3 percent in q2", want: []string{"gdp", "grew", "percent", "in", "q2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, textproc.Tokenize(tt.input))
		})
	}
}

func TestIsStopWord(t *testing.T) {
	require.True(t, textproc.IsStopWord("the"))
	require.True(t, textproc.IsStopWord("with"))
	require.False(t, textproc.IsStopWord("market"))
}
