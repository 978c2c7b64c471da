package handler

import (
	"testing"

	"wordlearner/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "confirmdel_apple",
			expected: "confirmdel_apple",
		},
		{
			name:     "string with whitespace",
			input:    "  page_2  ",
			expected: "page_2",
		},
		{
			name:     "telebot unique prefix",
			input:    "\fexplain_apple",
			expected: "explain_apple",
		},
		{
			name:     "string with newline",
			input:    "test\ndata",
			expected: "testdata",
		},
		{
			name:     "string with tab",
			input:    "test\tdata",
			expected: "testdata",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "test\x00data\x01",
			expected: "testdata",
		},
		{
			name:     "spaces inside word keys survive",
			input:    "\fconfirmdel_give up",
			expected: "confirmdel_give up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatWord(t *testing.T) {
	tests := []struct {
		name            string
		word            domain.Word
		showTranslation bool
		expected        string
	}{
		{
			name:            "full card",
			word:            domain.Word{Word: "apple", Translation: "苹果", PartOfSpeech: "noun"},
			showTranslation: true,
			expected:        "📝 apple (noun)\n🔄 苹果",
		},
		{
			name:            "no part of speech",
			word:            domain.Word{Word: "apple", Translation: "苹果"},
			showTranslation: true,
			expected:        "📝 apple\n🔄 苹果",
		},
		{
			name:            "translation hidden",
			word:            domain.Word{Word: "apple", Translation: "苹果", PartOfSpeech: "noun"},
			showTranslation: false,
			expected:        "📝 apple (noun)",
		},
		{
			name:            "no translation stored",
			word:            domain.Word{Word: "apple"},
			showTranslation: true,
			expected:        "📝 apple",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatWord(tt.word, tt.showTranslation))
		})
	}
}

func TestFormatWordLine(t *testing.T) {
	withPos := domain.Word{Word: "run", Translation: "跑", PartOfSpeech: "verb"}
	assert.Equal(t, "run — 跑 (verb)", formatWordLine(withPos))

	withoutPos := domain.Word{Word: "run", Translation: "跑"}
	assert.Equal(t, "run — 跑", formatWordLine(withoutPos))
}

func TestSettingsText(t *testing.T) {
	random := domain.Settings{DisplayInterval: 3, DisplayMode: domain.ModeRandom, ShowTranslation: true}
	text := settingsText(random)
	assert.Contains(t, text, "3s")
	assert.Contains(t, text, "random")
	assert.Contains(t, text, "shown")

	sequential := domain.Settings{DisplayInterval: 10, DisplayMode: domain.ModeSequential, ShowTranslation: false}
	text = settingsText(sequential)
	assert.Contains(t, text, "10s")
	assert.Contains(t, text, "sequential")
	assert.Contains(t, text, "hidden")
}
