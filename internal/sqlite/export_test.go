package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintel-tools/lintel/pkg/matrix"
	"github.com/lintel-tools/lintel/pkg/tree"
	"github.com/lintel-tools/lintel/pkg/types"
)

// exportFixture builds a small tree with one suspect link and one finding.
func exportFixture(t *testing.T) (*tree.Tree, []types.Finding, []matrix.Row) {
	t.Helper()
	ucDoc, err := types.NewDocument("USECASE", "", "Use Cases", "")
	require.NoError(t, err)
	srdDoc, err := types.NewDocument("SRD", "USECASE", "Requirements", "")
	require.NoError(t, err)

	uc, err := types.NewItem("USECASE001", "uc")
	require.NoError(t, err)
	req, err := types.NewItem("SRD001", "req")
	require.NoError(t, err)
	require.NoError(t, ucDoc.AddItem(uc))
	require.NoError(t, srdDoc.AddItem(req))
	require.NoError(t, req.AddLink("USECASE001", uc))
	uc.Text = "uc changed"

	tr := tree.New(nil)
	require.NoError(t, tr.Load([]*types.Document{ucDoc, srdDoc}))

	findings, err := tr.Validate()
	require.NoError(t, err)
	rows, err := (&matrix.Builder{Tree: tr}).Rows()
	require.NoError(t, err)
	return tr, findings, rows
}

func TestExport(t *testing.T) {
	tr, findings, rows := exportFixture(t)
	path := filepath.Join(t.TempDir(), "lintel.db")

	snapshotID, err := Export(path, tr, findings, rows)
	require.NoError(t, err)
	require.NotEmpty(t, snapshotID)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&count))
	assert.Equal(t, 2, count)

	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
	assert.Equal(t, 2, count)

	var suspect int
	require.NoError(t, db.QueryRow(
		"SELECT suspect FROM links WHERE from_id = 'SRD001' AND to_id = 'USECASE001'").Scan(&suspect))
	assert.Equal(t, 1, suspect, "drifted link exported as suspect")

	var kind string
	require.NoError(t, db.QueryRow("SELECT kind FROM findings WHERE item_id = 'SRD001'").Scan(&kind))
	assert.Equal(t, types.FindingSuspectLink, kind)

	var gotID string
	require.NoError(t, db.QueryRow("SELECT snapshot_id FROM snapshots").Scan(&gotID))
	assert.Equal(t, snapshotID, gotID)

	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM matrix").Scan(&count))
	assert.Equal(t, len(rows), count)
}

func TestExportOverwritesPrevious(t *testing.T) {
	tr, findings, rows := exportFixture(t)
	path := filepath.Join(t.TempDir(), "lintel.db")

	first, err := Export(path, tr, findings, rows)
	require.NoError(t, err)
	second, err := Export(path, tr, findings, rows)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "each export is a fresh snapshot")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count))
	assert.Equal(t, 1, count)
}
