package tree

import (
	"errors"
	"fmt"

	"github.com/lintel-tools/lintel/pkg/types"
)

// Validate checks the whole tree and returns advisory findings in
// document-then-item order: unresolved links, suspect links, self-links,
// and stakeholder references that do not resolve to a role-kind item. A
// non-root document whose parent prefix is not loaded breaks the hierarchy
// itself and is fatal (ErrInvalidTree); findings never are. Validate does
// not mutate the graph.
func (t *Tree) Validate() ([]types.Finding, error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	t.state = StateValidating
	defer func() {
		if t.state == StateValidating {
			t.state = StateLoaded
		}
	}()

	for _, d := range t.docs {
		if d.IsRoot() {
			continue
		}
		if _, ok := t.byPrefix[d.Parent]; !ok {
			// Structural breakage is terminal; the tree never returns to
			// loaded.
			t.state = StateErrored
			return nil, fmt.Errorf("document %s names missing parent %s: %w",
				d.Prefix, d.Parent, types.ErrInvalidTree)
		}
	}

	var findings []types.Finding
	for _, d := range t.docs {
		for _, item := range d.Items() {
			findings = append(findings, t.checkItem(item)...)
		}
	}
	return findings, nil
}

// checkItem collects the advisory findings for a single item.
func (t *Tree) checkItem(item *types.Item) []types.Finding {
	var findings []types.Finding
	for _, l := range item.Links {
		// AddLink refuses self-links, but the record store assigns links
		// verbatim, so a stored self-link reaches the graph.
		if l.Target == item.ID {
			findings = append(findings, types.Finding{
				Kind:     types.FindingSelfLink,
				ItemID:   item.ID,
				TargetID: l.Target,
				Detail:   "item links to itself",
			})
			continue
		}
		target, err := t.resolveQuiet(l.Target)
		if err != nil {
			findings = append(findings, types.Finding{
				Kind:     types.FindingUnresolvedLink,
				ItemID:   item.ID,
				TargetID: l.Target,
				Detail:   fmt.Sprintf("linked item does not exist: %v", err),
			})
			continue
		}
		if item.IsLinkSuspect(target) {
			findings = append(findings, types.Finding{
				Kind:     types.FindingSuspectLink,
				ItemID:   item.ID,
				TargetID: l.Target,
				Detail:   "linked item content changed since the link was stamped",
			})
		}
	}
	if item.Stakeholder != "" {
		findings = append(findings, t.checkStakeholder(item)...)
	}
	return findings
}

// checkStakeholder verifies that the item's stakeholder reference resolves
// to an item in a role-kind document. Stakeholder resolution is kept apart
// from the generic link traversal; the two serve different report sections.
func (t *Tree) checkStakeholder(item *types.Item) []types.Finding {
	target, err := t.resolveQuiet(item.Stakeholder)
	if err != nil {
		return []types.Finding{{
			Kind:     types.FindingBadStakeholder,
			ItemID:   item.ID,
			TargetID: item.Stakeholder,
			Detail:   fmt.Sprintf("stakeholder does not exist: %v", err),
		}}
	}
	if t.KindOf(target) != types.KindRole {
		return []types.Finding{{
			Kind:     types.FindingBadStakeholder,
			ItemID:   item.ID,
			TargetID: item.Stakeholder,
			Detail:   fmt.Sprintf("stakeholder is not in a role document (kind %s)", t.KindOf(target)),
		}}
	}
	return nil
}

// Stakeholder returns the resolved stakeholder item, or nil when the item
// declares none. An unresolvable or non-role reference is an error; it is
// the same condition Validate reports as a bad-stakeholder finding.
func (t *Tree) Stakeholder(item *types.Item) (*types.Item, error) {
	if item.Stakeholder == "" {
		return nil, nil
	}
	target, err := t.resolveQuiet(item.Stakeholder)
	if err != nil {
		return nil, err
	}
	if t.KindOf(target) != types.KindRole {
		return nil, fmt.Errorf("%s is not a role item: %w", target.ID, types.ErrUnknownPrefix)
	}
	return target, nil
}

// resolveQuiet resolves an id without the lifecycle gate; Validate already
// holds the tree in the validating state.
func (t *Tree) resolveQuiet(id string) (*types.Item, error) {
	prefix, _, err := types.ParseID(id)
	if err != nil {
		return nil, err
	}
	d, ok := t.byPrefix[prefix]
	if !ok {
		return nil, fmt.Errorf("%s: %w", prefix, types.ErrUnknownPrefix)
	}
	return d.FindItem(id)
}

// IsFatal reports whether an error from Load or Validate is structural, as
// opposed to a lifecycle misuse.
func IsFatal(err error) bool {
	return errors.Is(err, types.ErrCyclicHierarchy) ||
		errors.Is(err, types.ErrDuplicatePrefix) ||
		errors.Is(err, types.ErrInvalidTree) ||
		errors.Is(err, types.ErrMalformedID)
}
