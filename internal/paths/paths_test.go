package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ConfigDirName), 0o755))
	nested := filepath.Join(root, "SRD", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = FindRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRootMissing(t *testing.T) {
	_, err := FindRoot(t.TempDir())
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestResolveRootPrecedence(t *testing.T) {
	flagged := t.TempDir()
	envRoot := t.TempDir()
	t.Setenv(EnvRoot, envRoot)

	got, err := ResolveRoot(flagged)
	require.NoError(t, err)
	assert.Equal(t, flagged, got, "flag wins over env")

	got, err = ResolveRoot("")
	require.NoError(t, err)
	assert.Equal(t, envRoot, got, "env wins over discovery")
}

func TestConfigDir(t *testing.T) {
	assert.Equal(t, filepath.Join("root", ConfigDirName), ConfigDir("root"))
}
