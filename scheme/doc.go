// Package scheme defines the TORI scheme element types: tag groups, tags,
// and references.
//
// Elements are plain value objects with full-attribute value equality,
// expressed through Fingerprint. Multi-valued attributes are ordered slices
// so fingerprints stay stable. Tags hold a shared reference to their group
// and references hold shared references to their tags; the owning catalog is
// the long-lived owner of all three collections.
package scheme
