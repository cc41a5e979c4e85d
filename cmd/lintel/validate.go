// Validate command: full-tree validation with advisory findings.
package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintel-tools/lintel/internal/report"
)

var (
	flagStrict      bool
	flagFindingsCSV string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the tree and report findings",
	Long: `Validate loads the record store, checks the document hierarchy, and
reports unresolved links, suspect links, and bad stakeholder references.
Findings are advisory; with --strict they fail the command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := loadTree()
		if err != nil {
			return err
		}
		defer t.Discard()

		findings, err := t.Validate()
		if err != nil {
			return err
		}

		if flagFindingsCSV != "" {
			f, err := os.Create(flagFindingsCSV)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := report.WriteFindingsCSV(f, findings); err != nil {
				return err
			}
		} else if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(findings); err != nil {
				return err
			}
		} else {
			report.PrintFindings(os.Stdout, findings)
		}

		if flagStrict && len(findings) > 0 {
			return errStrictFindings
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&flagStrict, "strict", false, "treat findings as failure")
	validateCmd.Flags().StringVar(&flagFindingsCSV, "csv", "", "write findings as CSV to this file")
}
