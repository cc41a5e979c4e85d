// Package report renders validation findings and traceability matrices
// for the CLI: CSV for version-controlled reports, colored text for
// terminals. Rendering places no requirements on the core shapes; it only
// consumes them.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lintel-tools/lintel/pkg/matrix"
	"github.com/lintel-tools/lintel/pkg/types"
)

// matrixHeader matches the columns of the generated traceability.csv.
var matrixHeader = []string{"use_case", "requirement", "test", "results"}

// WriteMatrixCSV writes rows as CSV in their given order, one line per
// row. Empty chain levels render as empty cells; the results cell is the
// space-joined "status count" pairs from the row's status tally.
func WriteMatrixCSV(w io.Writer, rows []matrix.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(matrixHeader); err != nil {
		return fmt.Errorf("writing matrix header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			cellID(row.UseCase),
			cellID(row.Requirement),
			cellID(row.Test),
			resultsCell(row),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing matrix row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFindingsCSV writes findings as CSV in their given order.
func WriteFindingsCSV(w io.Writer, findings []types.Finding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "item", "target", "detail"}); err != nil {
		return fmt.Errorf("writing findings header: %w", err)
	}
	for _, f := range findings {
		if err := cw.Write([]string{f.Kind, f.ItemID, f.TargetID, f.Detail}); err != nil {
			return fmt.Errorf("writing finding: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func cellID(item *types.Item) string {
	if item == nil {
		return ""
	}
	return item.ID
}

func resultsCell(row matrix.Row) string {
	out := ""
	for _, sc := range row.StatusCounts() {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s %d", sc.Status, sc.Count)
	}
	return out
}
