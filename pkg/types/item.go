package types

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Link is a declared outgoing trace from one item to another, together with
// the fingerprint of the target's reviewable content captured when the link
// was made. An empty fingerprint means the target was unknown at link time.
type Link struct {
	Target      string `json:"target" yaml:"target"`
	Fingerprint string `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
}

// Item is a single linkable record. Items declare links toward the items
// they trace from; the reverse direction is derived by the owning tree.
// Identity is by ID alone.
type Item struct {
	ID          string   `json:"id" yaml:"id"`
	Text        string   `json:"text" yaml:"text"`
	Links       []Link   `json:"links,omitempty" yaml:"links,omitempty"`
	Stakeholder string   `json:"stakeholder,omitempty" yaml:"stakeholder,omitempty"`
	Prio        int      `json:"prio,omitempty" yaml:"prio,omitempty"`
	Implemented bool     `json:"implemented,omitempty" yaml:"implemented,omitempty"`
	Jira        []string `json:"jira,omitempty" yaml:"jira,omitempty"`
}

// NewItem creates an item after validating its identifier.
func NewItem(id, text string) (*Item, error) {
	if _, _, err := ParseID(id); err != nil {
		return nil, err
	}
	return &Item{ID: id, Text: text}, nil
}

// Fingerprint returns the blake3 digest of the item's reviewable content:
// its identifier plus normalized text. Display-only attributes (prio,
// implemented, jira) are excluded so metadata churn never marks dependent
// links suspect.
func (i *Item) Fingerprint() string {
	h := blake3.New()
	h.Write([]byte(i.ID))
	h.Write([]byte{0})
	h.Write([]byte(NormalizeText(i.Text)))
	return hex.EncodeToString(h.Sum(nil))
}

// AddLink declares a link from this item to targetID, capturing the
// target's current fingerprint. The target may be nil when it cannot be
// resolved yet; existence is the tree's validation concern, so the link is
// recorded with an empty fingerprint. Re-adding an existing link refreshes
// its stored fingerprint. Returns ErrSelfLink for targetID == i.ID and
// ErrMalformedID for a syntactically invalid target.
func (i *Item) AddLink(targetID string, target *Item) error {
	if _, _, err := ParseID(targetID); err != nil {
		return err
	}
	if targetID == i.ID {
		return fmt.Errorf("%s: %w", i.ID, ErrSelfLink)
	}
	fp := ""
	if target != nil {
		fp = target.Fingerprint()
	}
	for n, l := range i.Links {
		if l.Target == targetID {
			i.Links[n].Fingerprint = fp
			return nil
		}
	}
	i.Links = append(i.Links, Link{Target: targetID, Fingerprint: fp})
	return nil
}

// RemoveLink deletes the link to targetID. Idempotent: removing an absent
// link is not an error.
func (i *Item) RemoveLink(targetID string) {
	for n, l := range i.Links {
		if l.Target == targetID {
			i.Links = append(i.Links[:n], i.Links[n+1:]...)
			return
		}
	}
}

// LinkTo returns the stored link to targetID, if any.
func (i *Item) LinkTo(targetID string) (Link, bool) {
	for _, l := range i.Links {
		if l.Target == targetID {
			return l, true
		}
	}
	return Link{}, false
}

// IsLinkSuspect reports whether the target's content has drifted since the
// link to it was stamped: the target's current fingerprint no longer
// matches the one stored on the link. An item with no link to the target
// is never suspect of it.
func (i *Item) IsLinkSuspect(target *Item) bool {
	l, ok := i.LinkTo(target.ID)
	if !ok {
		return false
	}
	return l.Fingerprint != target.Fingerprint()
}

// RefreshLink re-stamps the link to target with its current fingerprint,
// clearing a suspect mark after the drift has been reviewed. No-op when no
// link to the target exists.
func (i *Item) RefreshLink(target *Item) {
	for n, l := range i.Links {
		if l.Target == target.ID {
			i.Links[n].Fingerprint = target.Fingerprint()
			return
		}
	}
}

// LinkTargets returns the target identifiers of all outgoing links in
// declaration order.
func (i *Item) LinkTargets() []string {
	out := make([]string, len(i.Links))
	for n, l := range i.Links {
		out[n] = l.Target
	}
	return out
}

func (i *Item) String() string { return i.ID }
