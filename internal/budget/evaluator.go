// Package budget derives a month's spending status from its total and its
// limit: usage ratio, remaining or overage, and a tiered feedback message.
package budget

import (
	"fmt"
	"math"

	"spendcheck/internal/money"
)

// Tier names a feedback bracket of the usage ratio.
type Tier string

const (
	TierVerySafe     Tier = "very-safe"
	TierSafe         Tier = "safe"
	TierCaution      Tier = "caution"
	TierElevated     Tier = "elevated"
	TierWarning      Tier = "warning"
	TierNearLimit    Tier = "near-limit"
	TierCritical     Tier = "critical"
	TierOverMild     Tier = "over-mild"
	TierOverModerate Tier = "over-moderate"
	TierOverSevere   Tier = "over-severe"
)

// UnsetMessage is the fixed prompt shown when no limit exists for the month.
const UnsetMessage = "No budget set for this month. Set one and the app will start keeping score."

// maxPercentLabel caps the textual percentage; the bar percent is clamped
// to [0,100] separately.
const maxPercentLabel = 999

// Status is the evaluator's view model for one month.
type Status struct {
	Set            bool    `json:"set"`
	LimitCents     int64   `json:"limit_cents"`
	SpentCents     int64   `json:"spent_cents"`
	RemainingCents int64   `json:"remaining_cents"`
	OverByCents    int64   `json:"over_by_cents"`
	Ratio          float64 `json:"ratio"`
	BarPercent     int     `json:"bar_percent"`
	PercentLabel   string  `json:"percent_label"`
	Tier           Tier    `json:"tier,omitempty"`
	Message        string  `json:"message"`
}

// tierBound is one row of the tier table: ratios strictly below Upper fall
// into Tier, evaluated least-to-greatest, first match wins. The final tier
// is open-ended.
type tierBound struct {
	Upper float64
	Tier  Tier
}

var tierBounds = []tierBound{
	{0.35, TierVerySafe},
	{0.50, TierSafe},
	{0.65, TierCaution},
	{0.80, TierElevated},
	{0.90, TierWarning},
	{0.95, TierNearLimit},
	{1.00, TierCritical},
	{1.10, TierOverMild},
	{1.25, TierOverModerate},
}

// TierFor selects the feedback tier for a raw usage ratio. The ratio is
// compared as-is; rounding happens only for display labels.
func TierFor(ratio float64) Tier {
	for _, b := range tierBounds {
		if ratio < b.Upper {
			return b.Tier
		}
	}
	return TierOverSevere
}

// Evaluate derives the month's status from its total spend and its limit,
// both in cents. A limit <= 0 means no budget is set: percentage and
// remaining are sentinels and the message is the fixed set-a-budget prompt.
func Evaluate(spentCents, limitCents int64) Status {
	if limitCents <= 0 {
		return Status{
			SpentCents:   spentCents,
			PercentLabel: "—",
			Message:      UnsetMessage,
		}
	}

	ratio := float64(spentCents) / float64(limitCents)
	remaining := limitCents - spentCents
	if remaining < 0 {
		remaining = 0
	}
	overBy := spentCents - limitCents
	if overBy < 0 {
		overBy = 0
	}

	percent := int(math.Round(ratio * 100))
	label := percent
	if label > maxPercentLabel {
		label = maxPercentLabel
	}
	bar := percent
	if bar > 100 {
		bar = 100
	}
	if bar < 0 {
		bar = 0
	}

	tier := TierFor(ratio)
	return Status{
		Set:            true,
		LimitCents:     limitCents,
		SpentCents:     spentCents,
		RemainingCents: remaining,
		OverByCents:    overBy,
		Ratio:          ratio,
		BarPercent:     bar,
		PercentLabel:   fmt.Sprintf("%d%%", label),
		Tier:           tier,
		Message:        message(tier, label, remaining, overBy),
	}
}

// message renders the tier's templated one-liner. Wording is cosmetic; the
// tier boundaries are the contract.
func message(tier Tier, percent int, remainingCents, overByCents int64) string {
	switch tier {
	case TierVerySafe:
		return fmt.Sprintf("Barely a dent: %d%% used, %s still in play.", percent, money.FormatUSD(remainingCents))
	case TierSafe:
		return fmt.Sprintf("Comfortably on track at %d%%. %s remaining.", percent, money.FormatUSD(remainingCents))
	case TierCaution:
		return fmt.Sprintf("Halfway territory: %d%% used. The budget sees all.", percent)
	case TierElevated:
		return fmt.Sprintf("%d%% used with %s left. Start choosing.", percent, money.FormatUSD(remainingCents))
	case TierWarning:
		return fmt.Sprintf("Warning: %d%% of the budget is gone. %s remains.", percent, money.FormatUSD(remainingCents))
	case TierNearLimit:
		return fmt.Sprintf("Down to the wire: %d%% used, only %s left.", percent, money.FormatUSD(remainingCents))
	case TierCritical:
		return fmt.Sprintf("Critical: %s left of the entire month. Every purchase counts.", money.FormatUSD(remainingCents))
	case TierOverMild:
		return fmt.Sprintf("Over budget by %s. Your budget just flinched.", money.FormatUSD(overByCents))
	case TierOverModerate:
		return fmt.Sprintf("Well over: %s past the limit at %d%%.", money.FormatUSD(overByCents), percent)
	default:
		return fmt.Sprintf("Blown through it: %s over the limit. Time for a hard look.", money.FormatUSD(overByCents))
	}
}
