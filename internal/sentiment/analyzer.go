package sentiment

import (
	"math"
	"strings"
	"unicode"
)

// Analyzer scores free text against a word valence lexicon. The comparative
// score is the summed valence divided by the token count, so long rambling
// messages are not rewarded over short intense ones.
type Analyzer struct {
	lexicon map[string]int
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: defaultLexicon}
}

// NewAnalyzerWithLexicon allows a custom valence table.
func NewAnalyzerWithLexicon(lexicon map[string]int) *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

// Comparative returns the per-token valence of text. Empty or unscorable
// input yields 0 (neutral).
func (a *Analyzer) Comparative(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	total := 0
	for _, tok := range tokens {
		total += a.lexicon[tok]
	}
	return float64(total) / float64(len(tokens))
}

// MoodFromComparative maps a comparative sentiment score onto the 0..10 mood
// scale used everywhere else: round(clamp(score,-1,1)*5 + 5).
func MoodFromComparative(score float64) int {
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return int(math.Round(score*5 + 5))
}

// Bands holds the emotion thresholds over the 0..10 mood scale. The cutoffs
// are a product decision, not a derived constant, so they stay injectable.
type Bands struct {
	Happy   int
	Neutral int
	Sad     int
}

// DefaultBands matches the server-side banding the mood log endpoint applies.
func DefaultBands() Bands {
	return Bands{Happy: 8, Neutral: 5, Sad: 3}
}

// Emotion buckets a mood score into its band label.
func (b Bands) Emotion(mood int) string {
	switch {
	case mood >= b.Happy:
		return "Happy"
	case mood >= b.Neutral:
		return "Neutral"
	case mood >= b.Sad:
		return "Sad"
	default:
		return "Anxious"
	}
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '\'' {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Fields(cleaned)
}
