package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for comparison: separators are
// dropped and letters lower-cased, so "OrderItem", "order_item" and
// "order-item" compare equal.
func NormalizeIdent(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
