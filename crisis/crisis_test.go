package crisis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Level
	}{
		{"crisis phrase", "I want to kill myself", LevelCrisis},
		{"crisis is case-insensitive", "Thinking about SUICIDE lately", LevelCrisis},
		{"crisis with apostrophe", "I just can't go on anymore", LevelCrisis},
		{"typographic apostrophe", "I can\u2019t cope with this", LevelSerious},
		{"hyphenated self-harm", "history of self-harm", LevelCrisis},
		{"serious keyword", "I've been so depressed", LevelSerious},
		{"serious multiword", "I had a panic attack at work", LevelSerious},
		{"serious substring", "feeling Hopeless", LevelSerious},
		{"crisis outranks serious", "I'm depressed and want to die", LevelCrisis},
		{"crisis outranks happy words", "I'm so happy, I could kill myself laughing", LevelCrisis},
		{"nothing", "I am so happy today!", LevelNone},
		{"empty", "", LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.text))
		})
	}
}

func TestMatchReturnsKeyword(t *testing.T) {
	level, keyword := DefaultDetector().Match("Everything feels WORTHLESS")
	assert.Equal(t, LevelSerious, level)
	assert.Equal(t, "worthless", keyword)

	level, keyword = DefaultDetector().Match("hello")
	assert.Equal(t, LevelNone, level)
	assert.Empty(t, keyword)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "none", LevelNone.String())
	assert.Equal(t, "serious", LevelSerious.String())
	assert.Equal(t, "crisis", LevelCrisis.String())

	assert.False(t, LevelNone.RequiresResources())
	assert.True(t, LevelSerious.RequiresResources())
	assert.True(t, LevelCrisis.RequiresResources())

	assert.Greater(t, LevelCrisis, LevelSerious)
	assert.Greater(t, LevelSerious, LevelNone)
}

func TestNewDetector(t *testing.T) {
	d := NewDetector([]string{"Emergency"}, []string{"sad", ""})

	assert.Equal(t, LevelCrisis, d.Detect("this is an emergency"))
	assert.Equal(t, LevelSerious, d.Detect("a bit SAD today"))
	assert.Equal(t, LevelNone, d.Detect("I want to kill myself"), "custom lists replace the defaults")
	assert.Equal(t, LevelNone, d.Detect("fine"), "empty keywords never match")
}
