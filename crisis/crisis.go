// Package crisis detects mental-health crisis language with static keyword lists.
//
// Detection is a pure function of the input text: no model is consulted, so
// the safety override cannot be bypassed by a misbehaving classifier.
package crisis

import "strings"

// Level is the severity of crisis language found in a message.
// Levels are ordered: LevelCrisis > LevelSerious > LevelNone.
type Level int

const (
	LevelNone Level = iota
	LevelSerious
	LevelCrisis
)

// String returns "none", "serious", or "crisis".
func (l Level) String() string {
	switch l {
	case LevelSerious:
		return "serious"
	case LevelCrisis:
		return "crisis"
	default:
		return "none"
	}
}

// RequiresResources reports whether the level calls for the fixed
// mental-health resource response instead of a model reply.
func (l Level) RequiresResources() bool {
	return l >= LevelSerious
}

// CrisisKeywords indicate acute self-harm risk.
var CrisisKeywords = []string{
	"suicide", "suicidal", "kill myself", "end my life", "want to die",
	"self harm", "self-harm", "cut myself", "hurt myself",
	"no reason to live", "better off dead", "can't go on",
}

// SeriousKeywords indicate significant emotional distress.
var SeriousKeywords = []string{
	"depressed", "depression", "anxious", "anxiety", "panic attack",
	"can't cope", "overwhelmed", "hopeless", "worthless",
	"hate myself", "severe anxiety", "mental breakdown",
}

// Detector matches text against crisis and serious keyword lists.
type Detector struct {
	crisis  []string
	serious []string
}

// NewDetector returns a detector with custom keyword lists.
// Keywords are matched case-insensitively as substrings.
func NewDetector(crisis, serious []string) *Detector {
	return &Detector{
		crisis:  lowerAll(crisis),
		serious: lowerAll(serious),
	}
}

var defaultDetector = NewDetector(CrisisKeywords, SeriousKeywords)

// DefaultDetector returns the detector built from CrisisKeywords and SeriousKeywords.
func DefaultDetector() *Detector { return defaultDetector }

// Detect returns the crisis level of text using the default keyword lists.
func Detect(text string) Level {
	return defaultDetector.Detect(text)
}

// Detect returns LevelCrisis if any crisis keyword appears in text, else
// LevelSerious if any serious keyword appears, else LevelNone.
func (d *Detector) Detect(text string) Level {
	level, _ := d.Match(text)
	return level
}

// Match is like Detect but also returns the keyword that decided the level.
// The keyword is empty for LevelNone.
func (d *Detector) Match(text string) (Level, string) {
	lower := apostrophes.Replace(strings.ToLower(text))
	if k, ok := firstMatch(lower, d.crisis); ok {
		return LevelCrisis, k
	}
	if k, ok := firstMatch(lower, d.serious); ok {
		return LevelSerious, k
	}
	return LevelNone, ""
}

// apostrophes folds typographic apostrophes so "can’t" matches "can't".
var apostrophes = strings.NewReplacer("\u2019", "'", "\u2018", "'")

func firstMatch(text string, keywords []string) (string, bool) {
	for _, k := range keywords {
		if k != "" && strings.Contains(text, k) {
			return k, true
		}
	}
	return "", false
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
