package types

import "fmt"

// Document is an ordered collection of items sharing an identifier prefix.
// Insertion order is preserved for stable display and matrix ordering; an
// internal index gives O(1) lookup by id. Parent names another document's
// prefix; an empty Parent marks a root document.
type Document struct {
	Prefix string
	Parent string
	Name   string
	Level  string

	items []*Item
	index map[string]*Item
}

// NewDocument creates an empty document after validating its prefix.
func NewDocument(prefix, parent, name, level string) (*Document, error) {
	if err := CheckPrefix(prefix); err != nil {
		return nil, err
	}
	return &Document{
		Prefix: prefix,
		Parent: parent,
		Name:   name,
		Level:  level,
		index:  make(map[string]*Item),
	}, nil
}

// AddItem appends an item to the document. The item's parsed prefix must
// equal the document prefix (ErrPrefixMismatch) and its id must be new to
// the document (ErrDuplicateItem).
func (d *Document) AddItem(item *Item) error {
	prefix, _, err := ParseID(item.ID)
	if err != nil {
		return err
	}
	if prefix != d.Prefix {
		return fmt.Errorf("%s in document %s: %w", item.ID, d.Prefix, ErrPrefixMismatch)
	}
	if d.index == nil {
		d.index = make(map[string]*Item)
	}
	if _, ok := d.index[item.ID]; ok {
		return fmt.Errorf("%s: %w", item.ID, ErrDuplicateItem)
	}
	d.items = append(d.items, item)
	d.index[item.ID] = item
	return nil
}

// RemoveItem deletes the item with the given id. Dangling links left behind
// by the removal are deliberately not cleaned up here; they surface as
// unresolved-link findings during tree validation.
func (d *Document) RemoveItem(id string) error {
	if _, ok := d.index[id]; !ok {
		return fmt.Errorf("%s: %w", id, ErrItemNotFound)
	}
	delete(d.index, id)
	for n, item := range d.items {
		if item.ID == id {
			d.items = append(d.items[:n], d.items[n+1:]...)
			break
		}
	}
	return nil
}

// FindItem returns the item with the given id, or ErrItemNotFound.
func (d *Document) FindItem(id string) (*Item, error) {
	item, ok := d.index[id]
	if !ok {
		return nil, fmt.Errorf("%s in document %s: %w", id, d.Prefix, ErrItemNotFound)
	}
	return item, nil
}

// Items returns the document's items in insertion order. The returned slice
// is a copy; the items themselves are shared.
func (d *Document) Items() []*Item {
	out := make([]*Item, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of items in the document.
func (d *Document) Len() int { return len(d.items) }

// Classify returns the document's kind under the given prefix
// classification. A nil map uses DefaultPrefixKinds.
func (d *Document) Classify(kinds PrefixKinds) string {
	return ClassifyPrefix(d.Prefix, kinds)
}

// IsRoot reports whether the document declares no parent.
func (d *Document) IsRoot() bool { return d.Parent == "" }

func (d *Document) String() string { return d.Prefix }
