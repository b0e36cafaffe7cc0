// Package voter defines voter identity and the pre-matrix-construction
// reconciliation step described in spec.md §4.1/§9: a session voter that
// has since been claimed by a registered user must resolve to a single
// identity before any vote matrix is built, or the same person splits
// their own votes across two rows.
package voter
