// Package results ingests external test-result files: a YAML mapping from
// test item id to the recorded outcomes of its runs. Statuses are carried
// through opaquely; this package never validates them against the known
// status set.
package results

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lintel-tools/lintel/pkg/types"
)

// Load reads a result mapping file. A missing file is not an error; it
// yields an empty set so the matrix renders without outcome columns.
func Load(path string) (types.ResultSet, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return types.ResultSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading result file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a result mapping document. Run order within each test id
// is preserved; the matrix shows history, not just the latest outcome.
func Parse(raw []byte) (types.ResultSet, error) {
	set := types.ResultSet{}
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("parsing result mapping: %w", err)
	}
	return set, nil
}
