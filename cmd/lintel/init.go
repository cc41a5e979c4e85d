// Init command: mark the current directory as a tree root and optionally
// scaffold a first document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintel-tools/lintel/internal/yamlstore"
	"github.com/lintel-tools/lintel/pkg/types"
)

var (
	flagInitPrefix string
	flagInitParent string
	flagInitName   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a tree root in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := flagRoot
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			root = cwd
		}

		if err := writeDefaultConfig(root); err != nil {
			return err
		}
		fmt.Printf("initialized tree root at %s\n", root)

		if flagInitPrefix == "" {
			return nil
		}
		doc, err := types.NewDocument(flagInitPrefix, flagInitParent, flagInitName, "")
		if err != nil {
			return err
		}
		dir, err := yamlstore.Scaffold(root, doc)
		if err != nil {
			return err
		}
		fmt.Printf("created document %s at %s\n", doc.Prefix, dir)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&flagInitPrefix, "prefix", "", "scaffold a document with this prefix")
	initCmd.Flags().StringVar(&flagInitParent, "parent", "", "parent prefix for the scaffolded document")
	initCmd.Flags().StringVar(&flagInitName, "name", "", "display name for the scaffolded document")
}
