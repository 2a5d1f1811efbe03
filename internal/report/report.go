// Package report aggregates expense records: range filtering, totals, and
// per-category rollups. Everything here is pure and operates on slices the
// stores return.
package report

import (
	"sort"

	"spendcheck/internal/models"
)

// OtherCategory is the bucket that uncategorized expenses fold into.
const OtherCategory = "Other"

// CategoryTotal is one row of a category rollup.
type CategoryTotal struct {
	Category   string `json:"category"`
	TotalCents int64  `json:"total_cents"`
}

// Sum returns the arithmetic total of the expenses' amounts.
func Sum(expenses []models.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.AmountCents
	}
	return total
}

// InRange filters to expenses with startKey <= date <= endKey and sorts the
// result descending by date. Bounds are inclusive. String comparison on the
// date field is correct only because date keys are fixed-width and
// zero-padded; that representation is a contract, not a detail.
func InRange(expenses []models.Expense, startKey, endKey string) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Date >= startKey && e.Date <= endKey {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// CategoryTotals rolls expenses up into per-category totals, ordered by
// descending total. Empty categories fold into OtherCategory. Ties keep
// first-appearance order, so the result is deterministic for a given input
// order.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	totals := make(map[string]int64)
	var order []string

	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = OtherCategory
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] += e.AmountCents
	}

	rows := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		rows = append(rows, CategoryTotal{Category: category, TotalCents: totals[category]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCents > rows[j].TotalCents
	})
	return rows
}
