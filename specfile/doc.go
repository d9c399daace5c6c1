// Package specfile persists a mapping.Specification as a YAML, TOML or
// JSON document.
//
// A Document names types instead of holding handles. Loading a document
// replays it through the builder, so a file goes through exactly the same
// checks as a specification declared in code, and type names are resolved
// by the builder's type loader.
package specfile
