// Matrix command: derive the use-case to requirement to test traceability
// matrix, optionally merged with external test results.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintel-tools/lintel/internal/report"
	"github.com/lintel-tools/lintel/internal/results"
	"github.com/lintel-tools/lintel/pkg/matrix"
	"github.com/lintel-tools/lintel/pkg/types"
)

var (
	flagResults string
	flagCSV     string
	flagOrphans bool
)

// matrixRowJSON is the JSON shape of one matrix row for --json output.
type matrixRowJSON struct {
	UseCase     string             `json:"use_case,omitempty"`
	Requirement string             `json:"requirement,omitempty"`
	Test        string             `json:"test,omitempty"`
	Results     []types.TestResult `json:"results,omitempty"`
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Generate the traceability matrix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, root, err := loadTree()
		if err != nil {
			return err
		}
		defer t.Discard()

		// Structural breakage must surface before any matrix is derived;
		// advisory findings do not block the report.
		if _, err := t.Validate(); err != nil {
			return err
		}

		resultSet := types.ResultSet{}
		path, err := resultsPath(root, flagResults)
		if err != nil {
			return err
		}
		if path != "" {
			resultSet, err = results.Load(path)
			if err != nil {
				return err
			}
		}

		b := &matrix.Builder{Tree: t, Results: resultSet, IncludeOrphans: flagOrphans}
		rows, err := b.Rows()
		if err != nil {
			return err
		}

		if flagCSV != "" {
			f, err := os.Create(flagCSV)
			if err != nil {
				return fmt.Errorf("creating %s: %w", flagCSV, err)
			}
			defer f.Close()
			return report.WriteMatrixCSV(f, rows)
		}

		if flagJSON {
			out := make([]matrixRowJSON, len(rows))
			for n, row := range rows {
				out[n] = matrixRowJSON{
					UseCase:     cellJSON(row.UseCase),
					Requirement: cellJSON(row.Requirement),
					Test:        cellJSON(row.Test),
					Results:     row.Results,
				}
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		report.PrintMatrix(os.Stdout, rows)
		return nil
	},
}

func cellJSON(item *types.Item) string {
	if item == nil {
		return ""
	}
	return item.ID
}

func init() {
	matrixCmd.Flags().StringVar(&flagResults, "results", "", "test-result mapping file (YAML)")
	matrixCmd.Flags().StringVar(&flagCSV, "csv", "", "write the matrix as CSV to this file")
	matrixCmd.Flags().BoolVar(&flagOrphans, "orphans", false, "append rows for unclaimed requirements and unlinked tests")
}
