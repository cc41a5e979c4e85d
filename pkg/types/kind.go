package types

// Document kinds. Classification is driven by the document prefix and
// decides the role a document's items play in the traceability matrix.
const (
	KindRequirement = "requirement"
	KindTest        = "test"
	KindUseCase     = "usecase"
	KindRole        = "role"
)

// validKinds is the set of recognized kind values.
var validKinds = map[string]bool{
	KindRequirement: true,
	KindTest:        true,
	KindUseCase:     true,
	KindRole:        true,
}

// PrefixKinds maps a document prefix to its kind. Prefixes absent from the
// map classify as requirement.
type PrefixKinds map[string]string

// DefaultPrefixKinds returns the conventional prefix classification: TEST
// documents hold test cases, USECASE and RISK documents both root the
// traceability matrix, ROLE documents hold stakeholders.
func DefaultPrefixKinds() PrefixKinds {
	return PrefixKinds{
		"TEST":    KindTest,
		"USECASE": KindUseCase,
		"RISK":    KindUseCase,
		"ROLE":    KindRole,
	}
}

// ValidKind reports whether s is a recognized kind value.
func ValidKind(s string) bool { return validKinds[s] }

// ClassifyPrefix returns the kind for a document prefix. A nil map falls
// back to DefaultPrefixKinds; unrecognized prefixes default to requirement.
func ClassifyPrefix(prefix string, kinds PrefixKinds) string {
	if kinds == nil {
		kinds = DefaultPrefixKinds()
	}
	if k, ok := kinds[prefix]; ok && validKinds[k] {
		return k
	}
	return KindRequirement
}
