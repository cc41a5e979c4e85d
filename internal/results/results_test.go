package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintel-tools/lintel/pkg/types"
)

const sampleResults = `TEST003:
  - function: test_ticket_sale
    result_file: run1.xml
    status: failure
  - function: test_ticket_sale
    result_file: run2.xml
    status: passed
TEST004:
  - function: test_refund
    result_file: run1.xml
    status: quarantined
`

func TestParse(t *testing.T) {
	set, err := Parse([]byte(sampleResults))
	require.NoError(t, err)

	require.Len(t, set["TEST003"], 2, "run history preserved in order")
	assert.Equal(t, types.StatusFailure, set["TEST003"][0].Status)
	assert.Equal(t, "run1.xml", set["TEST003"][0].ResultFile)
	assert.Equal(t, types.StatusPassed, set["TEST003"][1].Status)

	require.Len(t, set["TEST004"], 1)
	assert.Equal(t, "quarantined", set["TEST004"][0].Status, "unknown statuses pass through opaquely")
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("not: [valid, mapping"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleResults), 0o644))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, set, 2)
}
