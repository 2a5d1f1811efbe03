// Package export renders category rollups as CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"spendcheck/internal/money"
	"spendcheck/internal/report"
)

// CategoryCSV writes a two-column (category, total) table with a trailing
// grand-total row. Amounts are formatted to two decimal places.
func CategoryCSV(w io.Writer, rows []report.CategoryTotal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	records := make([][]string, 0, len(rows)+2)
	records = append(records, []string{"Category", "Total"})

	var grandTotal int64
	for _, row := range rows {
		records = append(records, []string{row.Category, money.Format(row.TotalCents)})
		grandTotal += row.TotalCents
	}
	records = append(records, []string{"Total", money.Format(grandTotal)})

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}
	return nil
}
