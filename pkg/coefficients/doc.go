// Package coefficients defines the data model shared by the regtab
// extractor and reconciler: per-model coefficient records, the model
// family taxonomy with its capability methods, user-supplied label
// overrides and term filters, and the unified table model handed to
// external renderers.
package coefficients
