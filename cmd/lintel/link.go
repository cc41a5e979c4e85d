// Link commands: declare or remove a trace between two items and persist
// the change. Linking stamps the parent's current fingerprint, which is
// also how a reviewed suspect link is cleared.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lintel-tools/lintel/internal/yamlstore"
	"github.com/lintel-tools/lintel/pkg/types"
)

var linkCmd = &cobra.Command{
	Use:   "link CHILD PARENT",
	Short: "Declare a trace from CHILD to PARENT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return relink(args[0], args[1], true)
	},
}

var unlinkCmd = &cobra.Command{
	Use:   "unlink CHILD PARENT",
	Short: "Remove the trace from CHILD to PARENT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return relink(args[0], args[1], false)
	},
}

func relink(childID, parentID string, add bool) error {
	t, root, err := loadTree()
	if err != nil {
		return err
	}
	defer t.Discard()

	if add {
		err = t.LinkItems(childID, parentID)
	} else {
		err = t.UnlinkItems(childID, parentID)
	}
	if err != nil {
		return err
	}

	prefix, _, err := types.ParseID(childID)
	if err != nil {
		return err
	}
	doc, err := t.FindDocument(prefix)
	if err != nil {
		return err
	}
	if err := yamlstore.SaveDocument(root, doc); err != nil {
		return err
	}

	verb := "linked"
	if !add {
		verb = "unlinked"
	}
	fmt.Printf("%s %s -> %s\n", verb, childID, parentID)
	return nil
}
