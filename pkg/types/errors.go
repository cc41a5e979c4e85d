package types

import "errors"

// Structural errors. These abort tree construction or validation outright;
// no partial tree is exposed after one of them is returned.
var (
	ErrMalformedID     = errors.New("malformed item identifier")
	ErrDuplicatePrefix = errors.New("duplicate document prefix")
	ErrCyclicHierarchy = errors.New("cyclic document hierarchy")
	ErrInvalidTree     = errors.New("invalid document hierarchy")
)

// Item and link errors.
var (
	ErrSelfLink       = errors.New("item cannot link to itself")
	ErrDuplicateItem  = errors.New("item already exists in document")
	ErrItemNotFound   = errors.New("item not found")
	ErrPrefixMismatch = errors.New("item prefix does not match document prefix")
	ErrUnknownPrefix  = errors.New("no document claims this prefix")
)

// Tree lifecycle errors.
var (
	ErrTreeNotLoaded = errors.New("tree is not loaded")
	ErrTreeLoaded    = errors.New("tree is already loaded")
	ErrTreeDiscarded = errors.New("tree is discarded")
)
