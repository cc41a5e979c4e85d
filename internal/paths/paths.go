// Package paths resolves the tree root directory. A tree root is any
// directory containing a .lintel configuration directory; resolution
// follows the precedence chain flag > LINTEL_ROOT env > upward walk from
// the working directory.
package paths

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigDirName is the directory marking a tree root and holding
// config.yaml.
const ConfigDirName = ".lintel"

// EnvRoot overrides root discovery when set.
const EnvRoot = "LINTEL_ROOT"

// ErrNoRoot is returned when no ancestor of the working directory is a
// tree root.
var ErrNoRoot = errors.New("no tree root found (missing .lintel directory)")

// ResolveRoot returns the tree root: the flag value when non-empty, else
// the LINTEL_ROOT environment variable, else the nearest ancestor of the
// working directory containing a .lintel directory.
func ResolveRoot(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if v := os.Getenv(EnvRoot); v != "" {
		return v, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRoot(cwd)
}

// FindRoot walks upward from start looking for a directory containing
// .lintel. Returns ErrNoRoot when the filesystem root is reached without a
// match.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		info, err := os.Stat(filepath.Join(dir, ConfigDirName))
		if err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoRoot
		}
		dir = parent
	}
}

// ConfigDir returns the configuration directory under a tree root.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}
