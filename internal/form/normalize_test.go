package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple title", input: "Hello World", expected: "hello-world"},
		{name: "punctuation stripped", input: "Hello World!", expected: "hello-world"},
		{name: "mixed case", input: "Kitchen Renovation 2024", expected: "kitchen-renovation-2024"},
		{name: "multiple spaces collapse", input: "Modern   Office  Build", expected: "modern-office-build"},
		{name: "leading and trailing spaces", input: "  Roofing  ", expected: "roofing"},
		{name: "accents transliterated", input: "Café Résumé", expected: "cafe-resume"},
		{name: "hyphens kept as separators", input: "Design-Build Projects", expected: "design-build-projects"},
		{name: "symbols removed", input: "Q&A: What's New?", expected: "qa-whats-new"},
		{name: "empty input", input: "", expected: ""},
		{name: "only symbols", input: "!!!", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World!",
		"Café Résumé",
		"a - b -- c",
		"already-a-slug",
		"",
	}

	for _, input := range inputs {
		once := Slugify(input)
		assert.Equal(t, once, Slugify(once), "input %q", input)
	}
}

func TestSlugifyOutputAlphabet(t *testing.T) {
	for _, input := range []string{"Hello,   World", " - x - ", "日本語 title"} {
		slug := Slugify(input)
		for _, r := range slug {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			require.True(t, ok, "unexpected rune %q in slug %q", r, slug)
		}
		assert.False(t, len(slug) > 0 && (slug[0] == '-' || slug[len(slug)-1] == '-'),
			"slug %q has leading or trailing hyphen", slug)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{"a", "b", "c"}, SplitList(" a, b ,c"))
	assert.Equal(t, []string{"a"}, SplitList("a"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,,b"))
	assert.Equal(t, []string{}, SplitList(" , "))
}

func TestJoinListRoundTrip(t *testing.T) {
	items := []string{"concrete", "steel", "glass"}
	assert.Equal(t, items, SplitList(JoinList(items)))
}

func TestCheckbox(t *testing.T) {
	assert.True(t, Checkbox("on"))
	assert.False(t, Checkbox(""))
	assert.False(t, Checkbox("true"))
}

func TestPublishedAt(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	stamp := PublishedAt(true, now)
	require.NotNil(t, stamp)
	assert.Equal(t, now, *stamp)

	assert.Nil(t, PublishedAt(false, now))
}
