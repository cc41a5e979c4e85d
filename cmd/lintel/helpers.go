// Shared helpers for lintel subcommands: root resolution, tree loading,
// and error-to-exit-code mapping.
package main

import (
	"errors"
	"fmt"

	"github.com/lintel-tools/lintel/internal/paths"
	"github.com/lintel-tools/lintel/internal/yamlstore"
	"github.com/lintel-tools/lintel/pkg/tree"
	"github.com/lintel-tools/lintel/pkg/types"
)

// errStrictFindings signals that --strict turned advisory findings into a
// failure; it maps to exitUserError.
var errStrictFindings = errors.New("validation findings present")

// loadTree resolves the tree root, loads its record store, and builds the
// tree under the configured prefix classification.
func loadTree() (*tree.Tree, string, error) {
	root, err := paths.ResolveRoot(flagRoot)
	if err != nil {
		return nil, "", err
	}

	kinds, err := configKinds(root)
	if err != nil {
		return nil, "", err
	}

	docs, err := yamlstore.Load(root)
	if err != nil {
		return nil, "", fmt.Errorf("loading record store: %w", err)
	}

	t := tree.New(kinds)
	if err := t.Load(docs); err != nil {
		return nil, "", fmt.Errorf("building tree: %w", err)
	}
	return t, root, nil
}

// resultsPath returns the result mapping path: the flag when set,
// otherwise the results_file config value (may be empty).
func resultsPath(root, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return "", err
	}
	return cfg.GetString(cfgKeyResultsFile), nil
}

// exitCode maps an error to the CLI exit code scheme: structural tree
// breakage is a system error, everything else a user error.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if tree.IsFatal(err) || errors.Is(err, types.ErrTreeDiscarded) {
		return exitSysError
	}
	return exitUserError
}
