package yamlstore

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lintel-tools/lintel/pkg/types"
)

// Scaffold creates a document directory named after the prefix with its
// .document.yml descriptor. The directory must not already hold a
// descriptor.
func Scaffold(root string, doc *types.Document) (string, error) {
	dir := filepath.Join(root, doc.Prefix)
	if _, err := os.Stat(filepath.Join(dir, DocumentFile)); err == nil {
		return "", fmt.Errorf("document directory %s already exists: %w", dir, os.ErrExist)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating document directory: %w", err)
	}
	df := documentFile{
		Prefix: doc.Prefix,
		Parent: doc.Parent,
		Name:   doc.Name,
		Level:  doc.Level,
	}
	if err := writeYAML(filepath.Join(dir, DocumentFile), df); err != nil {
		return "", err
	}
	return dir, nil
}

// SaveItem writes an item file into the document directory, round-tripping
// link fingerprints in the compact form.
func SaveItem(dir string, item *types.Item) error {
	f := itemFile{
		Text:        item.Text,
		Links:       linkList(item.Links),
		Stakeholder: item.Stakeholder,
		Prio:        item.Prio,
		Implemented: item.Implemented,
		Jira:        item.Jira,
	}
	return writeYAML(filepath.Join(dir, item.ID+".yml"), f)
}

// SaveDocument writes every item of a document back to its directory.
func SaveDocument(root string, doc *types.Document) error {
	dir := filepath.Join(root, doc.Prefix)
	for _, item := range doc.Items() {
		if err := SaveItem(dir, item); err != nil {
			return err
		}
	}
	return nil
}

// writeYAML writes v via a temp file and rename, so a crash never leaves a
// half-written record behind.
func writeYAML(path string, v any) error {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".yml-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
