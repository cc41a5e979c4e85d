// Export command: snapshot the tree, findings, and matrix into SQLite.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lintel-tools/lintel/internal/results"
	"github.com/lintel-tools/lintel/internal/sqlite"
	"github.com/lintel-tools/lintel/pkg/matrix"
	"github.com/lintel-tools/lintel/pkg/types"
)

var (
	flagExportDB      string
	flagExportResults string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the tree, findings, and matrix to a SQLite database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, root, err := loadTree()
		if err != nil {
			return err
		}
		defer t.Discard()

		findings, err := t.Validate()
		if err != nil {
			return err
		}

		resultSet := types.ResultSet{}
		path, err := resultsPath(root, flagExportResults)
		if err != nil {
			return err
		}
		if path != "" {
			resultSet, err = results.Load(path)
			if err != nil {
				return err
			}
		}

		b := &matrix.Builder{Tree: t, Results: resultSet, IncludeOrphans: true}
		rows, err := b.Rows()
		if err != nil {
			return err
		}

		snapshotID, err := sqlite.Export(flagExportDB, t, findings, rows)
		if err != nil {
			return err
		}
		fmt.Printf("exported snapshot %s to %s\n", snapshotID, flagExportDB)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDB, "db", "lintel.db", "export database path")
	exportCmd.Flags().StringVar(&flagExportResults, "results", "", "test-result mapping file (YAML)")
}
