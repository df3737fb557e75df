package screen

import (
	"strings"
	"unicode/utf8"
)

// Strength labels.
const (
	StrengthWeak      = "Weak"
	StrengthGood      = "Good"
	StrengthExcellent = "Excellent"
)

// Score rates how complete a profile is, from 0 to 100. Lengths are counted
// in runes after trimming.
func Score(name, bio string) int {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	b := utf8.RuneCountInString(strings.TrimSpace(bio))

	score := 0
	if n > 0 {
		score += 25
	}
	if n >= 3 {
		score += 10
	}
	if b > 0 {
		score += 25
	}
	if b >= 30 {
		score += 20
	}
	if b >= 80 {
		score += 20
	}

	return min(score, 100)
}

// StrengthLabel names a score.
func StrengthLabel(score int) string {
	switch {
	case score < 40:
		return StrengthWeak
	case score < 75:
		return StrengthGood
	default:
		return StrengthExcellent
	}
}
