// Package tree builds the authoritative document hierarchy and item link
// graph. A Tree owns its documents exclusively, resolves cross-document
// links by prefix extraction, and maintains the derived child index that
// makes declared links traversable in both directions.
package tree

import (
	"fmt"

	"github.com/lintel-tools/lintel/pkg/types"
)

// Tree lifecycle states. A tree is loaded once, validated any number of
// times, and discarded; validation never mutates the graph.
const (
	StateEmpty      = "empty"
	StateLoaded     = "loaded"
	StateValidating = "validating"
	StateErrored    = "errored"
	StateDiscarded  = "discarded"
)

// Tree aggregates documents into a hierarchy and owns the resolved
// cross-document link graph over their items. Single-threaded by design:
// callers needing concurrent batch processing use one Tree per unit of
// work.
type Tree struct {
	state    string
	kinds    types.PrefixKinds
	docs     []*types.Document
	byPrefix map[string]*types.Document

	// children is the derived reverse link index: target item id to the
	// ids of items declaring a link to it, in document-then-item insertion
	// order. Rebuilt wholesale on every load, never patched.
	children map[string][]string
}

// New creates an empty tree using the given prefix classification. A nil
// map uses types.DefaultPrefixKinds.
func New(kinds types.PrefixKinds) *Tree {
	return &Tree{state: StateEmpty, kinds: kinds}
}

// Load indexes the given documents and builds the link index. It fails with
// ErrDuplicatePrefix when two documents share a prefix and with
// ErrCyclicHierarchy when any document's parent chain revisits a document
// already on the ancestor path (a self-parent is the one-step case). On any
// failure the tree stays empty; no documents are left partially indexed.
// Load accepts documents only once per tree (ErrTreeLoaded).
func (t *Tree) Load(docs []*types.Document) error {
	switch t.state {
	case StateDiscarded:
		return types.ErrTreeDiscarded
	case StateEmpty:
	default:
		return types.ErrTreeLoaded
	}

	byPrefix := make(map[string]*types.Document, len(docs))
	for _, d := range docs {
		if _, ok := byPrefix[d.Prefix]; ok {
			return fmt.Errorf("%s: %w", d.Prefix, types.ErrDuplicatePrefix)
		}
		byPrefix[d.Prefix] = d
	}

	// Path-marking walk over the parent chains. The hierarchy is expected
	// to be shallow, so no topological sort is needed.
	for _, d := range docs {
		onPath := map[string]bool{}
		for cur := d; cur != nil && cur.Parent != ""; cur = byPrefix[cur.Parent] {
			if onPath[cur.Prefix] {
				return fmt.Errorf("at document %s: %w", cur.Prefix, types.ErrCyclicHierarchy)
			}
			onPath[cur.Prefix] = true
			if cur.Parent == cur.Prefix {
				return fmt.Errorf("document %s is its own parent: %w", cur.Prefix, types.ErrCyclicHierarchy)
			}
		}
	}

	t.docs = make([]*types.Document, len(docs))
	copy(t.docs, docs)
	t.byPrefix = byPrefix
	t.rebuildIndex()
	t.state = StateLoaded
	return nil
}

// rebuildIndex recomputes the reverse link index from scratch. Wholesale
// rebuilds trade O(items) work per load for the absence of index drift.
func (t *Tree) rebuildIndex() {
	t.children = make(map[string][]string)
	for _, d := range t.docs {
		for _, item := range d.Items() {
			for _, l := range item.Links {
				t.children[l.Target] = append(t.children[l.Target], item.ID)
			}
		}
	}
}

// Discard releases the tree. Idempotent; all later operations return
// ErrTreeDiscarded.
func (t *Tree) Discard() {
	t.state = StateDiscarded
	t.docs = nil
	t.byPrefix = nil
	t.children = nil
}

// State returns the current lifecycle state.
func (t *Tree) State() string { return t.state }

// Documents returns the loaded documents in load order.
func (t *Tree) Documents() []*types.Document {
	out := make([]*types.Document, len(t.docs))
	copy(out, t.docs)
	return out
}

// FindDocument returns the document owning the given prefix, or
// ErrUnknownPrefix.
func (t *Tree) FindDocument(prefix string) (*types.Document, error) {
	d, ok := t.byPrefix[prefix]
	if !ok {
		return nil, fmt.Errorf("%s: %w", prefix, types.ErrUnknownPrefix)
	}
	return d, nil
}

// ResolveLink resolves a target item id to its item: the id's embedded
// prefix selects the owning document, then the document index selects the
// item. Returns ErrMalformedID, ErrUnknownPrefix, or ErrItemNotFound.
func (t *Tree) ResolveLink(targetID string) (*types.Item, error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	prefix, _, err := types.ParseID(targetID)
	if err != nil {
		return nil, err
	}
	d, err := t.FindDocument(prefix)
	if err != nil {
		return nil, err
	}
	return d.FindItem(targetID)
}

// Parents returns the items the given item declares links to, resolved, in
// declaration order. Targets that do not resolve are skipped here; they are
// reported by Validate instead.
func (t *Tree) Parents(item *types.Item) []*types.Item {
	var out []*types.Item
	for _, l := range item.Links {
		if target, err := t.ResolveLink(l.Target); err == nil {
			out = append(out, target)
		}
	}
	return out
}

// Children returns the items declaring a link to the given item, via the
// reverse link index, in document-then-item insertion order. Links are
// declared in one direction only; this is the derived other direction.
func (t *Tree) Children(item *types.Item) []*types.Item {
	var out []*types.Item
	for _, id := range t.children[item.ID] {
		if child, err := t.ResolveLink(id); err == nil {
			out = append(out, child)
		}
	}
	return out
}

// LinkItems declares a link from the child item to the parent item,
// resolving both ids and stamping the parent's current fingerprint. The
// parent id is still stamped empty-handed when it does not resolve; the
// dangling link surfaces later as an unresolved-link finding. The index is
// updated for the new edge.
func (t *Tree) LinkItems(childID, parentID string) error {
	if err := t.usable(); err != nil {
		return err
	}
	child, err := t.ResolveLink(childID)
	if err != nil {
		return err
	}
	parent, _ := t.ResolveLink(parentID)
	if err := child.AddLink(parentID, parent); err != nil {
		return err
	}
	t.rebuildIndex()
	return nil
}

// UnlinkItems removes the child item's link to parentID. Idempotent on the
// link itself; the child id must resolve.
func (t *Tree) UnlinkItems(childID, parentID string) error {
	if err := t.usable(); err != nil {
		return err
	}
	child, err := t.ResolveLink(childID)
	if err != nil {
		return err
	}
	child.RemoveLink(parentID)
	t.rebuildIndex()
	return nil
}

// KindOf returns the kind of the document owning the given item, or
// requirement when the item's document cannot be determined.
func (t *Tree) KindOf(item *types.Item) string {
	prefix, _, err := types.ParseID(item.ID)
	if err != nil {
		return types.KindRequirement
	}
	return types.ClassifyPrefix(prefix, t.kinds)
}

// Kinds returns the tree's prefix classification map.
func (t *Tree) Kinds() types.PrefixKinds { return t.kinds }

// usable returns the lifecycle error barring graph operations, if any. An
// errored tree is terminal: a structural validation failure means no
// consistent graph can be offered.
func (t *Tree) usable() error {
	switch t.state {
	case StateDiscarded:
		return types.ErrTreeDiscarded
	case StateEmpty:
		return types.ErrTreeNotLoaded
	case StateErrored:
		return types.ErrInvalidTree
	}
	return nil
}
