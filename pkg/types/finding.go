package types

import "fmt"

// Finding kinds. All findings are advisory: a tree with findings is still
// usable, and tooling decides whether to treat them as warnings or as a
// hard failure.
const (
	FindingUnresolvedLink = "unresolved-link"
	FindingSuspectLink    = "suspect-link"
	FindingSelfLink       = "self-link"
	FindingBadStakeholder = "bad-stakeholder"
)

// Finding is one advisory validation result. ItemID names the item the
// finding is about, TargetID the reference that triggered it.
type Finding struct {
	Kind     string `json:"kind"`
	ItemID   string `json:"item_id"`
	TargetID string `json:"target_id"`
	Detail   string `json:"detail"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s -> %s: %s", f.Kind, f.ItemID, f.TargetID, f.Detail)
}
