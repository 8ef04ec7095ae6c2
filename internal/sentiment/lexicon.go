package sentiment

// defaultLexicon is a compact AFINN-style valence table biased toward the
// vocabulary that shows up in wellness check-ins.
var defaultLexicon = map[string]int{
	// positive
	"amazing":   4,
	"awesome":   4,
	"fantastic": 4,
	"wonderful": 4,
	"great":     3,
	"happy":     3,
	"joy":       3,
	"joyful":    3,
	"love":      3,
	"loved":     3,
	"excited":   3,
	"grateful":  3,
	"thankful":  3,
	"better":    2,
	"calm":      2,
	"calmer":    2,
	"fine":      2,
	"good":      2,
	"hopeful":   2,
	"peaceful":  2,
	"proud":     2,
	"relaxed":   2,
	"rested":    2,
	"safe":      2,
	"strong":    2,
	"okay":      1,
	"ok":        1,

	// negative
	"bad":         -3,
	"awful":       -3,
	"terrible":    -3,
	"horrible":    -3,
	"depressed":   -3,
	"anxious":     -3,
	"worried":     -3,
	"angry":       -3,
	"hate":        -3,
	"hated":       -3,
	"miserable":   -3,
	"panic":       -3,
	"worse":       -3,
	"worthless":   -4,
	"hopeless":    -4,
	"suicidal":    -5,
	"sad":         -2,
	"unhappy":     -2,
	"stressed":    -2,
	"tired":       -2,
	"exhausted":   -2,
	"lonely":      -2,
	"alone":       -2,
	"scared":      -2,
	"afraid":      -2,
	"overwhelmed": -2,
	"hurt":        -2,
	"upset":       -2,
	"cry":         -1,
	"crying":      -1,
	"down":        -1,
	"low":         -1,
}
