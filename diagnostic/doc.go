// Package diagnostic provides structured validation results for TORI
// catalogs.
//
// Validation always runs to completion and reports every problem as a typed
// record; callers decide whether a non-empty result is fatal, either by
// inspecting HasErrors or by treating Error() as a failure.
package diagnostic
