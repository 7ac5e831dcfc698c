// Package manifest reads the docs manifest (docs.yaml), the structured
// source of truth for the guide index. The manifest lists every guide per
// category with a title and summary; the human-readable index tables in the
// README and the root guide are regenerated from it, replacing two manual
// table edits with one mechanical command. Parsing validates against an
// embedded JSON Schema before unmarshaling.
package manifest
