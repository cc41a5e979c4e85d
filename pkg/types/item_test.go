package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id, text string) *Item {
	t.Helper()
	item, err := NewItem(id, text)
	require.NoError(t, err)
	return item
}

func TestNewItemRejectsMalformedID(t *testing.T) {
	_, err := NewItem("nonsense", "text")
	assert.ErrorIs(t, err, ErrMalformedID)
}

func TestAddLinkSelfLink(t *testing.T) {
	item := mustItem(t, "SRD001", "the requirement")

	err := item.AddLink("SRD001", item)

	assert.ErrorIs(t, err, ErrSelfLink)
	assert.Empty(t, item.Links, "no mutation on self-link error")
}

func TestAddLinkMalformedTarget(t *testing.T) {
	item := mustItem(t, "SRD001", "the requirement")

	err := item.AddLink("???", nil)

	assert.ErrorIs(t, err, ErrMalformedID)
	assert.Empty(t, item.Links)
}

func TestAddLinkStampsTargetFingerprint(t *testing.T) {
	parent := mustItem(t, "USECASE001", "book a ticket")
	child := mustItem(t, "SRD001", "the system shall sell tickets")

	require.NoError(t, child.AddLink("USECASE001", parent))

	l, ok := child.LinkTo("USECASE001")
	require.True(t, ok)
	assert.Equal(t, parent.Fingerprint(), l.Fingerprint)
}

func TestAddLinkUnresolvedTargetStampsEmpty(t *testing.T) {
	child := mustItem(t, "SRD001", "text")

	require.NoError(t, child.AddLink("SRD999", nil))

	l, ok := child.LinkTo("SRD999")
	require.True(t, ok)
	assert.Empty(t, l.Fingerprint, "existence validation is deferred to the tree")
}

func TestAddLinkRefreshesExisting(t *testing.T) {
	parent := mustItem(t, "USECASE001", "v1")
	child := mustItem(t, "SRD001", "text")
	require.NoError(t, child.AddLink("USECASE001", parent))

	parent.Text = "v2"
	require.NoError(t, child.AddLink("USECASE001", parent))

	require.Len(t, child.Links, 1)
	assert.False(t, child.IsLinkSuspect(parent))
}

func TestRemoveLinkIdempotent(t *testing.T) {
	child := mustItem(t, "SRD001", "text")
	require.NoError(t, child.AddLink("USECASE001", nil))

	child.RemoveLink("USECASE001")
	child.RemoveLink("USECASE001")

	assert.Empty(t, child.Links)
}

func TestIsLinkSuspect(t *testing.T) {
	parent := mustItem(t, "USECASE001", "original content")
	child := mustItem(t, "SRD001", "text")
	require.NoError(t, child.AddLink("USECASE001", parent))

	assert.False(t, child.IsLinkSuspect(parent), "unchanged content is never suspect")

	parent.Text = "changed content"
	assert.True(t, child.IsLinkSuspect(parent), "any content change makes the link suspect")

	parent.Text = "original content"
	assert.False(t, child.IsLinkSuspect(parent), "restoring content clears the suspicion")
}

func TestIsLinkSuspectIgnoresDisplayAttributes(t *testing.T) {
	parent := mustItem(t, "USECASE001", "content")
	child := mustItem(t, "SRD001", "text")
	require.NoError(t, child.AddLink("USECASE001", parent))

	parent.Prio = 3
	parent.Implemented = true
	parent.Jira = []string{"PROJ-17"}

	assert.False(t, child.IsLinkSuspect(parent), "display-only attributes are outside the fingerprint")
}

func TestIsLinkSuspectWithoutLink(t *testing.T) {
	a := mustItem(t, "SRD001", "a")
	b := mustItem(t, "SRD002", "b")
	assert.False(t, a.IsLinkSuspect(b))
}

func TestRefreshLinkClearsSuspect(t *testing.T) {
	parent := mustItem(t, "USECASE001", "v1")
	child := mustItem(t, "SRD001", "text")
	require.NoError(t, child.AddLink("USECASE001", parent))

	parent.Text = "v2"
	require.True(t, child.IsLinkSuspect(parent))

	child.RefreshLink(parent)
	assert.False(t, child.IsLinkSuspect(parent))
}

func TestFingerprintStability(t *testing.T) {
	a := mustItem(t, "SRD001", "  the text\r\n")
	b := mustItem(t, "SRD001", "the text")

	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "whitespace and line endings are incidentals")

	c := mustItem(t, "SRD002", "the text")
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "identity is part of the digest")
}

func TestLinkTargets(t *testing.T) {
	child := mustItem(t, "SRD001", "text")
	require.NoError(t, child.AddLink("USECASE002", nil))
	require.NoError(t, child.AddLink("USECASE001", nil))

	assert.Equal(t, []string{"USECASE002", "USECASE001"}, child.LinkTargets(), "declaration order preserved")
}
