// Package parse converts serialized TORI documents into catalogs.
//
// The loading pipeline is: raw text → format deserializer (YAML or TOML) →
// untyped mapping → LoadDict, which performs structural checks and resolves
// every cross-reference (tag → group, reference → tags) before constructing
// the catalog. Loader errors always fail the load; only the catalog's own
// semantic validation is collectible.
//
// Multiple source files merge by shallow top-level-key overwrite, last file
// wins per key. The write side (Marshal/Write) emits the same wire shape the
// loader accepts.
package parse
