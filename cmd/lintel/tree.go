// Tree command: draw the document hierarchy.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Draw the document hierarchy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := loadTree()
		if err != nil {
			return err
		}
		defer t.Discard()
		fmt.Print(t.Draw())
		return nil
	},
}
