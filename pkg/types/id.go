package types

import (
	"fmt"
	"strings"
)

// ParseID splits an item identifier into its document prefix and numeric
// part. An identifier is a prefix (letters and digits, starting with a
// letter) followed by a non-empty trailing run of decimal digits, e.g.
// SRD003 or HLTC12. Returns ErrMalformedID for anything else.
func ParseID(id string) (prefix string, number string, err error) {
	if id == "" {
		return "", "", fmt.Errorf("empty identifier: %w", ErrMalformedID)
	}
	cut := len(id)
	for cut > 0 && isDigit(id[cut-1]) {
		cut--
	}
	prefix, number = id[:cut], id[cut:]
	if number == "" {
		return "", "", fmt.Errorf("%q has no numeric part: %w", id, ErrMalformedID)
	}
	if err := CheckPrefix(prefix); err != nil {
		return "", "", fmt.Errorf("%q: %w", id, err)
	}
	return prefix, number, nil
}

// PrefixOf returns the document prefix embedded in an item identifier.
func PrefixOf(id string) (string, error) {
	prefix, _, err := ParseID(id)
	return prefix, err
}

// CheckPrefix reports whether s is usable as a document prefix: non-empty,
// starting with a letter, containing only letters and digits, and not
// ending with a digit. A trailing digit would fold into the numeric part
// of every identifier, so no item could ever match the prefix. Returns
// ErrMalformedID otherwise.
func CheckPrefix(s string) error {
	if s == "" || isDigit(s[0]) || isDigit(s[len(s)-1]) {
		return fmt.Errorf("prefix %q: %w", s, ErrMalformedID)
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && !isDigit(s[i]) {
			return fmt.Errorf("prefix %q: %w", s, ErrMalformedID)
		}
	}
	return nil
}

// NormalizeText canonicalizes reviewable text for fingerprinting: line
// endings collapsed to \n and surrounding whitespace stripped, so that
// storage-format incidentals never change an item's digest.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
