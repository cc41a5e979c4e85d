// Version command for the lintel CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lintel-tools/lintel/pkg/lintel"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lintel version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lintel", lintel.Version)
	},
}
