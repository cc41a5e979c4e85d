// Package main provides the lintel CLI: load the record store into a tree,
// validate it, and derive traceability reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes. Structural breakage (cyclic hierarchy, orphaned parent,
// malformed ids) exits with exitSysError; findings under --strict exit
// with exitUserError.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagRoot string
	flagJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "lintel",
	Short: "Lintel is a plain-text requirements traceability tool",
	Long: `Lintel manages a hierarchy of versioned, linkable records organized
into documents, and maintains traceability between use cases, requirements,
and tests across document boundaries.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "tree root directory (default: nearest ancestor with .lintel)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
