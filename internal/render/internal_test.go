package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisible(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		n, limit int
		want     []int
	}{
		"unbounded":   {n: 3, limit: 0, want: []int{0, 1, 2}},
		"fits":        {n: 3, limit: 3, want: []int{0, 1, 2}},
		"odd limit":   {n: 10, limit: 3, want: []int{0, 1, -1, 9}},
		"even limit":  {n: 10, limit: 4, want: []int{0, 1, -1, 8, 9}},
		"limit one":   {n: 10, limit: 1, want: []int{0, -1}},
		"empty":       {n: 0, limit: 2, want: []int{}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, visible(tt.n, tt.limit))
		})
	}
}

func TestPick(t *testing.T) {
	t.Parallel()
	got := pick([]string{"a", "b"}, []int{0, -1, 1, 5}, "…")
	assert.Equal(t, []string{"a", "…", "b", ""}, got)
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4, AlignLeft))
	assert.Equal(t, "  ab", alignCell("ab", 4, AlignRight))
	assert.Equal(t, " ab  ", alignCell("ab", 5, AlignCenter))
	assert.Equal(t, "abc", alignCell("abc", 2, AlignRight))
}

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "plain", escapeMarkdown("plain"))
	assert.Equal(t, `a\|b`, escapeMarkdown("a|b"))
	assert.Equal(t, "a<br>b<br>c", escapeMarkdown("a\r\nb\nc"))
}
