package yamlstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintel-tools/lintel/pkg/types"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDocument(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "SRD")
	writeFile(t, filepath.Join(dir, DocumentFile), "prefix: SRD\nparent: USECASE\nname: System Requirements\nlevel: \"1.1\"\n")
	writeFile(t, filepath.Join(dir, "SRD001.yml"), `text: the system shall sell tickets
links:
  - USECASE001: 9f8a
  - SRD002
stakeholder: ROLE001
prio: 2
implemented: true
jira:
  - PROJ-17
  - PROJ-30
`)

	doc, err := LoadDocument(dir)
	require.NoError(t, err)

	assert.Equal(t, "SRD", doc.Prefix)
	assert.Equal(t, "USECASE", doc.Parent)
	assert.Equal(t, "System Requirements", doc.Name)
	assert.Equal(t, "1.1", doc.Level)

	item, err := doc.FindItem("SRD001")
	require.NoError(t, err)
	assert.Equal(t, "the system shall sell tickets", item.Text)
	assert.Equal(t, []types.Link{
		{Target: "USECASE001", Fingerprint: "9f8a"},
		{Target: "SRD002"},
	}, item.Links)
	assert.Equal(t, "ROLE001", item.Stakeholder)
	assert.Equal(t, 2, item.Prio)
	assert.True(t, item.Implemented)
	assert.Equal(t, []string{"PROJ-17", "PROJ-30"}, item.Jira)
}

func TestLoadDocumentItemOrder(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "SRD")
	writeFile(t, filepath.Join(dir, DocumentFile), "prefix: SRD\n")
	// Written out of order; numeric id part decides.
	writeFile(t, filepath.Join(dir, "SRD010.yml"), "text: ten\n")
	writeFile(t, filepath.Join(dir, "SRD002.yml"), "text: two\n")
	writeFile(t, filepath.Join(dir, "SRD001.yml"), "text: one\n")

	doc, err := LoadDocument(dir)
	require.NoError(t, err)

	var ids []string
	for _, item := range doc.Items() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"SRD001", "SRD002", "SRD010"}, ids)
}

func TestLoadDocumentUnknownFieldsIgnored(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "SRD")
	writeFile(t, filepath.Join(dir, DocumentFile), "prefix: SRD\nfuture_field: whatever\n")
	writeFile(t, filepath.Join(dir, "SRD001.yml"), "text: one\nanother_future_field: 7\n")

	doc, err := LoadDocument(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())
}

func TestLoadSkipsNonDocumentDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "SRD", DocumentFile), "prefix: SRD\n")
	writeFile(t, filepath.Join(root, ".lintel", "config.yaml"), "kinds: {}\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))

	docs, err := Load(root)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "SRD", docs[0].Prefix)
}

func TestLoadBadItemFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "SRD")
	writeFile(t, filepath.Join(dir, DocumentFile), "prefix: SRD\n")
	writeFile(t, filepath.Join(dir, "bogus.yml"), "text: wrong id\n")

	_, err := LoadDocument(dir)
	assert.ErrorIs(t, err, types.ErrMalformedID)
}

func TestSaveItemRoundTrip(t *testing.T) {
	root := t.TempDir()
	doc, err := types.NewDocument("SRD", "", "Reqs", "")
	require.NoError(t, err)
	dir, err := Scaffold(root, doc)
	require.NoError(t, err)

	parent, err := types.NewItem("USECASE001", "uc")
	require.NoError(t, err)
	item, err := types.NewItem("SRD001", "the text")
	require.NoError(t, err)
	require.NoError(t, item.AddLink("USECASE001", parent))
	require.NoError(t, item.AddLink("SRD002", nil))
	item.Jira = []string{"PROJ-1"}
	require.NoError(t, SaveItem(dir, item))

	loaded, err := LoadDocument(dir)
	require.NoError(t, err)
	got, err := loaded.FindItem("SRD001")
	require.NoError(t, err)

	assert.Equal(t, item.Text, got.Text)
	assert.Equal(t, item.Links, got.Links, "fingerprints survive the round trip")
	assert.Equal(t, item.Jira, got.Jira)
}

func TestSaveDocument(t *testing.T) {
	root := t.TempDir()
	doc, err := types.NewDocument("SRD", "", "", "")
	require.NoError(t, err)
	_, err = Scaffold(root, doc)
	require.NoError(t, err)

	for _, id := range []string{"SRD001", "SRD002"} {
		item, err := types.NewItem(id, "text for "+id)
		require.NoError(t, err)
		require.NoError(t, doc.AddItem(item))
	}
	require.NoError(t, SaveDocument(root, doc))

	loaded, err := LoadDocument(filepath.Join(root, "SRD"))
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
}

func TestScaffoldRefusesExisting(t *testing.T) {
	root := t.TempDir()
	doc, err := types.NewDocument("SRD", "", "", "")
	require.NoError(t, err)

	_, err = Scaffold(root, doc)
	require.NoError(t, err)
	_, err = Scaffold(root, doc)
	assert.Error(t, err)
}
