// Package matrix derives the traceability matrix from a loaded tree: one
// row per use-case, requirement, test triple, optionally annotated with
// externally supplied test outcomes. Only the two-hop use-case to
// requirement to test chain is walked; other link shapes do not appear in
// the matrix.
package matrix

import (
	"sort"

	"github.com/lintel-tools/lintel/pkg/tree"
	"github.com/lintel-tools/lintel/pkg/types"
)

// Row is one traceability matrix row. Requirement and Test are nil when the
// chain ends early; absence is meaningful, not an error. UseCase is nil
// only for orphan rows (see Builder.IncludeOrphans). Results carries the
// full outcome history for the row's test item in run order.
type Row struct {
	UseCase     *types.Item
	Requirement *types.Item
	Test        *types.Item
	Results     []types.TestResult
}

// StatusCount is an aggregated outcome tally for one status value.
type StatusCount struct {
	Status string
	Count  int
}

// StatusCounts tallies the row's results by status, sorted by status name.
// Renderers use this for per-row badges while Results keeps the history.
func (r Row) StatusCounts() []StatusCount {
	if len(r.Results) == 0 {
		return nil
	}
	tally := map[string]int{}
	for _, res := range r.Results {
		tally[res.Status]++
	}
	out := make([]StatusCount, 0, len(tally))
	for status, count := range tally {
		out = append(out, StatusCount{Status: status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out
}

// Builder produces matrix rows from a loaded tree. Results may be nil for a
// matrix without outcome columns. IncludeOrphans appends, after all rooted
// rows, rows for requirements no use-case claims and for tests no
// requirement links, so nothing silently drops out of the report.
type Builder struct {
	Tree           *tree.Tree
	Results        types.ResultSet
	IncludeOrphans bool
}

// Rows walks every use-case item in document-then-item insertion order,
// its requirement-kind children, and their test-kind children, emitting one
// row per triple. A use-case or requirement with no onward links still
// emits a row with the downstream fields nil. Output order is deterministic
// for identical input.
func (b *Builder) Rows() ([]Row, error) {
	if b.Tree == nil || b.Tree.State() == tree.StateEmpty {
		return nil, types.ErrTreeNotLoaded
	}
	if b.Tree.State() == tree.StateDiscarded {
		return nil, types.ErrTreeDiscarded
	}
	if b.Tree.State() == tree.StateErrored {
		return nil, types.ErrInvalidTree
	}

	var rows []Row
	claimedReqs := map[string]bool{}
	linkedTests := map[string]bool{}

	for _, useCase := range b.itemsOfKind(types.KindUseCase) {
		reqs := b.childrenOfKind(useCase, types.KindRequirement)
		if len(reqs) == 0 {
			rows = append(rows, Row{UseCase: useCase})
			continue
		}
		for _, req := range reqs {
			claimedReqs[req.ID] = true
			rows = append(rows, b.requirementRows(useCase, req, linkedTests)...)
		}
	}

	if b.IncludeOrphans {
		for _, req := range b.itemsOfKind(types.KindRequirement) {
			if claimedReqs[req.ID] {
				continue
			}
			rows = append(rows, b.requirementRows(nil, req, linkedTests)...)
		}
		for _, test := range b.itemsOfKind(types.KindTest) {
			if linkedTests[test.ID] {
				continue
			}
			rows = append(rows, Row{Test: test, Results: b.Results[test.ID]})
		}
	}
	return rows, nil
}

// requirementRows emits the rows for one requirement under one use-case
// (nil for orphan requirements): one row per linked test, or a single
// test-less row.
func (b *Builder) requirementRows(useCase, req *types.Item, linkedTests map[string]bool) []Row {
	tests := b.childrenOfKind(req, types.KindTest)
	if len(tests) == 0 {
		return []Row{{UseCase: useCase, Requirement: req}}
	}
	rows := make([]Row, 0, len(tests))
	for _, test := range tests {
		linkedTests[test.ID] = true
		rows = append(rows, Row{
			UseCase:     useCase,
			Requirement: req,
			Test:        test,
			Results:     b.Results[test.ID],
		})
	}
	return rows
}

// itemsOfKind returns every item whose document classifies as the given
// kind, in document-then-item insertion order.
func (b *Builder) itemsOfKind(kind string) []*types.Item {
	var out []*types.Item
	for _, d := range b.Tree.Documents() {
		if d.Classify(b.Tree.Kinds()) != kind {
			continue
		}
		out = append(out, d.Items()...)
	}
	return out
}

// childrenOfKind filters an item's children down to the given kind,
// preserving index order.
func (b *Builder) childrenOfKind(item *types.Item, kind string) []*types.Item {
	var out []*types.Item
	for _, child := range b.Tree.Children(item) {
		if b.Tree.KindOf(child) == kind {
			out = append(out, child)
		}
	}
	return out
}
