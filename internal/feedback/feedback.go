// Package feedback produces the one-line quip shown right after an expense
// is logged. The sharpness depends on the user's saved feedback tone.
package feedback

import (
	"math/rand"

	"spendcheck/internal/models"
)

var niceLines = []string{
	"Good choice. Future you approves.",
	"Awareness is a win. Keep going.",
	"Nice. Staying intentional.",
}

var balancedLines = []string{
	"Alright... we're watching it.",
	"Not bad, but don't get cute with it.",
	"The budget sees all.",
}

var savageLines = []string{
	"You didn't need that. You wanted chaos.",
	"Your budget just flinched.",
	"Congratulations, you funded someone else's dreams.",
}

// Quip picks a line matching the tone. Unknown tones fall back to balanced.
func Quip(tone models.FeedbackTone) string {
	lines := linesFor(tone)
	return lines[rand.Intn(len(lines))]
}

func linesFor(tone models.FeedbackTone) []string {
	switch tone {
	case models.ToneNice:
		return niceLines
	case models.ToneSavage:
		return savageLines
	default:
		return balancedLines
	}
}

// ValidTone reports whether s names a supported feedback tone.
func ValidTone(s string) bool {
	switch models.FeedbackTone(s) {
	case models.ToneNice, models.ToneBalanced, models.ToneSavage:
		return true
	}
	return false
}
