// Package types defines the Item and Document entity types, item identifier
// parsing, document kind classification, validation findings, test result
// records, and the standard error values shared across the lintel packages.
package types
