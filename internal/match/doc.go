// Package match ranks identifiers by fuzzy similarity. It backs the
// "did you mean" hints attached to unresolved type names.
package match
