package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoodFromComparative(t *testing.T) {
	t.Run("Zero Maps To Midpoint", func(t *testing.T) {
		assert.Equal(t, 5, MoodFromComparative(0))
	})

	t.Run("Positive Extreme Maps To Ten", func(t *testing.T) {
		assert.Equal(t, 10, MoodFromComparative(1))
	})

	t.Run("Negative Extreme Maps To Zero", func(t *testing.T) {
		assert.Equal(t, 0, MoodFromComparative(-1))
	})

	t.Run("Out Of Range Scores Are Clamped", func(t *testing.T) {
		assert.Equal(t, 10, MoodFromComparative(3.7))
		assert.Equal(t, 0, MoodFromComparative(-2.5))
	})
}

func TestBandsEmotion(t *testing.T) {
	bands := DefaultBands()

	assert.Equal(t, "Happy", bands.Emotion(10))
	assert.Equal(t, "Happy", bands.Emotion(8))
	assert.Equal(t, "Neutral", bands.Emotion(7))
	assert.Equal(t, "Neutral", bands.Emotion(5))
	assert.Equal(t, "Sad", bands.Emotion(4))
	assert.Equal(t, "Sad", bands.Emotion(3))
	assert.Equal(t, "Anxious", bands.Emotion(2))
	assert.Equal(t, "Anxious", bands.Emotion(0))
}

func TestBandsAreConfigurable(t *testing.T) {
	bands := Bands{Happy: 9, Neutral: 6, Sad: 2}

	assert.Equal(t, "Neutral", bands.Emotion(8))
	assert.Equal(t, "Sad", bands.Emotion(5))
	assert.Equal(t, "Anxious", bands.Emotion(1))
}

func TestComparative(t *testing.T) {
	analyzer := NewAnalyzer()

	t.Run("Empty Text Is Neutral", func(t *testing.T) {
		assert.Equal(t, 0.0, analyzer.Comparative(""))
		assert.Equal(t, 0.0, analyzer.Comparative("   \t\n"))
	})

	t.Run("Unknown Words Are Neutral", func(t *testing.T) {
		assert.Equal(t, 0.0, analyzer.Comparative("the weather is cloudy"))
	})

	t.Run("Positive Check In Lands In The Happy Band", func(t *testing.T) {
		mood := MoodFromComparative(analyzer.Comparative("I feel great today"))
		assert.GreaterOrEqual(t, mood, 8)
		assert.Equal(t, "Happy", DefaultBands().Emotion(mood))
	})

	t.Run("Distressed Check In Lands Below Neutral", func(t *testing.T) {
		mood := MoodFromComparative(analyzer.Comparative("hopeless and worthless"))
		assert.Less(t, mood, 3)
	})

	t.Run("Punctuation And Case Are Ignored", func(t *testing.T) {
		assert.Equal(t,
			analyzer.Comparative("I feel GREAT today!!!"),
			analyzer.Comparative("i feel great today"),
		)
	})
}

func TestCustomLexicon(t *testing.T) {
	analyzer := NewAnalyzerWithLexicon(map[string]int{"meh": -1})
	assert.Equal(t, -1.0, analyzer.Comparative("meh"))
}
