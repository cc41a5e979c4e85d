// Package yamlstore loads and saves the on-disk record store: one
// directory per document holding a .document.yml descriptor and one YAML
// file per item. It produces the plain document and item values the tree
// core consumes; nothing in here knows about validation or matrices.
package yamlstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lintel-tools/lintel/pkg/types"
)

// DocumentFile is the per-directory document descriptor filename.
const DocumentFile = ".document.yml"

// documentFile mirrors .document.yml. Unknown fields are ignored so newer
// generations of the format keep loading.
type documentFile struct {
	Prefix string `yaml:"prefix"`
	Parent string `yaml:"parent,omitempty"`
	Name   string `yaml:"name,omitempty"`
	Level  string `yaml:"level,omitempty"`
}

// itemFile mirrors an item YAML file. Links accept both the bare-id form
// and the id-to-fingerprint map form (see linkList).
type itemFile struct {
	Text        string   `yaml:"text"`
	Links       linkList `yaml:"links,omitempty"`
	Stakeholder string   `yaml:"stakeholder,omitempty"`
	Prio        int      `yaml:"prio,omitempty"`
	Implemented bool     `yaml:"implemented,omitempty"`
	Jira        []string `yaml:"jira,omitempty"`
}

// linkList decodes a YAML link sequence. Each entry is either a bare id
// string or a single-entry map from id to the stored fingerprint:
//
//	links:
//	  - SRD001
//	  - SRD002: 9f8a...
type linkList []types.Link

func (l *linkList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("links: expected a sequence, got %s", node.Tag)
	}
	var out []types.Link
	for _, entry := range node.Content {
		switch entry.Kind {
		case yaml.ScalarNode:
			out = append(out, types.Link{Target: entry.Value})
		case yaml.MappingNode:
			if len(entry.Content) != 2 {
				return fmt.Errorf("links: expected a single id-to-fingerprint entry at line %d", entry.Line)
			}
			out = append(out, types.Link{
				Target:      entry.Content[0].Value,
				Fingerprint: entry.Content[1].Value,
			})
		default:
			return fmt.Errorf("links: unexpected node at line %d", entry.Line)
		}
	}
	*l = out
	return nil
}

// MarshalYAML emits the compact form: a bare id when no
// fingerprint is stored, an id-to-fingerprint map otherwise.
func (l linkList) MarshalYAML() (any, error) {
	out := make([]any, 0, len(l))
	for _, link := range l {
		if link.Fingerprint == "" {
			out = append(out, link.Target)
			continue
		}
		out = append(out, map[string]string{link.Target: link.Fingerprint})
	}
	return out, nil
}

// Load reads every document directory under root and returns the documents
// in directory-name order, each with its items ordered by numeric id part.
// A directory without a .document.yml descriptor is skipped; it is not a
// document.
func Load(root string) ([]*types.Document, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading store root %s: %w", root, err)
	}

	var docs []*types.Document
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, DocumentFile)); err != nil {
			continue
		}
		doc, err := LoadDocument(dir)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// LoadDocument reads one document directory: its descriptor plus every
// *.yml item file, items ordered by numeric id part then id.
func LoadDocument(dir string) (*types.Document, error) {
	raw, err := os.ReadFile(filepath.Join(dir, DocumentFile))
	if err != nil {
		return nil, fmt.Errorf("reading document descriptor in %s: %w", dir, err)
	}
	var df documentFile
	if err := yaml.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("parsing %s in %s: %w", DocumentFile, dir, err)
	}

	doc, err := types.NewDocument(df.Prefix, df.Parent, df.Name, df.Level)
	if err != nil {
		return nil, fmt.Errorf("document in %s: %w", dir, err)
	}

	ids, err := itemIDs(dir)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		item, err := loadItem(dir, id)
		if err != nil {
			return nil, err
		}
		if err := doc.AddItem(item); err != nil {
			return nil, fmt.Errorf("loading %s: %w", dir, err)
		}
	}
	return doc, nil
}

// itemIDs lists the item ids present in a document directory, sorted by
// numeric part (then id for ties) so load order is stable across
// filesystems.
func itemIDs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading document directory %s: %w", dir, err)
	}
	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".yml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yml"))
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, nj := idNumber(ids[i]), idNumber(ids[j])
		if ni != nj {
			return ni < nj
		}
		return ids[i] < ids[j]
	})
	return ids, nil
}

// idNumber extracts the numeric part of an id for ordering; malformed
// names sort first and fail properly during loadItem.
func idNumber(id string) int {
	_, number, err := types.ParseID(id)
	if err != nil {
		return -1
	}
	n, _ := strconv.Atoi(number)
	return n
}

// loadItem reads one item file. The filename (minus extension) is the item
// id; the file body never repeats it.
func loadItem(dir, id string) (*types.Item, error) {
	path := filepath.Join(dir, id+".yml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading item %s: %w", path, err)
	}
	var f itemFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing item %s: %w", path, err)
	}

	item, err := types.NewItem(id, f.Text)
	if err != nil {
		return nil, fmt.Errorf("item file %s: %w", path, err)
	}
	item.Links = f.Links
	item.Stakeholder = f.Stakeholder
	item.Prio = f.Prio
	item.Implemented = f.Implemented
	item.Jira = f.Jira
	return item, nil
}
