package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_TitleOnly(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "plain title",
			raw:      "feat: add user login",
			expected: "feat: add user login",
		},
		{
			name:     "strips surrounding whitespace and blank lines",
			raw:      "\n\n   fix: handle nil pointer   \n\nextra line",
			expected: "fix: handle nil pointer",
		},
		{
			name:     "strips wrapping double quotes",
			raw:      `"feat: add user login"`,
			expected: "feat: add user login",
		},
		{
			name:     "strips wrapping CJK quotes",
			raw:      "「feat: 新增登录功能」",
			expected: "feat: 新增登录功能",
		},
		{
			name:     "strips title label",
			raw:      "Title: feat: add user login",
			expected: "feat: add user login",
		},
		{
			name:     "strips chinese title label",
			raw:      "title：feat: add user login",
			expected: "feat: add user login",
		},
		{
			name:     "removes trailing full stop",
			raw:      "fix: handle nil pointer.",
			expected: "fix: handle nil pointer",
		},
		{
			name:     "keeps fenced content only",
			raw:      "Here is the message:\n```\nfeat: add user login\n```\nHope it helps!",
			expected: "feat: add user login",
		},
		{
			name:     "strips stray backticks without fences",
			raw:      "feat: add `login` handler",
			expected: "feat: add login handler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion, ok := Sanitize(tt.raw, false, "")

			require.True(t, ok)
			assert.Equal(t, tt.expected, suggestion.Title)
			assert.Empty(t, suggestion.Body)
			assert.NotContains(t, suggestion.Title, "\n")
		})
	}
}

func TestSanitize_Unusable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty input", raw: ""},
		{name: "only whitespace", raw: "   \n\t\n  "},
		{name: "empty after unwrapping quotes", raw: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Sanitize(tt.raw, false, "")
			assert.False(t, ok)
		})
	}
}

func TestSanitize_BodyList(t *testing.T) {
	t.Run("normalizes bullet markers", func(t *testing.T) {
		raw := "feat: add login\n\n* first change\n• second change\n1. third change\n2) fourth change"

		suggestion, ok := Sanitize(raw, true, "list")

		require.True(t, ok)
		assert.Equal(t, "feat: add login", suggestion.Title)
		assert.Equal(t, "- first change\n- second change\n- third change\n- fourth change", suggestion.Body)
	})

	t.Run("caps at six items", func(t *testing.T) {
		lines := []string{"feat: add login", ""}
		for i := 0; i < 9; i++ {
			lines = append(lines, "- item number "+strings.Repeat("x", i+1))
		}

		suggestion, ok := Sanitize(strings.Join(lines, "\n"), true, "list")

		require.True(t, ok)
		assert.Len(t, strings.Split(suggestion.Body, "\n"), 6)
	})

	t.Run("strips nested markers and body labels", func(t *testing.T) {
		raw := "fix: resolve race\n\nBody:\n- - doubled marker\n- ...\n- 描述: chinese label stripped"

		suggestion, ok := Sanitize(raw, true, "list")

		require.True(t, ok)
		assert.Equal(t, "- doubled marker\n- chinese label stripped", suggestion.Body)
	})

	t.Run("empty body stays empty", func(t *testing.T) {
		suggestion, ok := Sanitize("feat: add login\n\n\n", true, "list")

		require.True(t, ok)
		assert.Empty(t, suggestion.Body)
	})
}

func TestSanitize_BodyParagraph(t *testing.T) {
	t.Run("joins lines into one paragraph", func(t *testing.T) {
		raw := "refactor: simplify parser\n\nDescription: moved tokenizer into its own file\nand   removed the   old state machine."

		suggestion, ok := Sanitize(raw, true, "paragraph")

		require.True(t, ok)
		assert.Equal(t, "moved tokenizer into its own file and removed the old state machine.", suggestion.Body)
		assert.NotContains(t, suggestion.Body, "  ")
	})

	t.Run("bullets collapse into prose", func(t *testing.T) {
		raw := "feat: add cache\n\n- added LRU cache\n- wired eviction timer"

		suggestion, ok := Sanitize(raw, true, "paragraph")

		require.True(t, ok)
		assert.Equal(t, "added LRU cache wired eviction timer", suggestion.Body)
	})
}

func TestSuggestionMessage(t *testing.T) {
	suggestion, ok := Sanitize("feat: add login\n\n- first\n- second", true, "list")
	require.True(t, ok)

	assert.Equal(t, "feat: add login\n\n- first\n- second", suggestion.Message())

	titleOnly, ok := Sanitize("feat: add login", false, "")
	require.True(t, ok)
	assert.Equal(t, "feat: add login", titleOnly.Message())
}
