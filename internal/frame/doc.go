// Package frame implements the in-memory column table the converter coerces and serializes.
//
// A [Frame] is loaded once from CSV ([ReadCSV]) and holds an ordered set of
// named [Column] values. Every column starts as text; the Coerce methods
// retype columns in place:
//
//   - [Frame.CoerceTime] : text → timestamps under a fixed layout
//   - [Frame.CoerceFloat] : text → float64
//   - [Frame.CoerceBool] : text → bool through a fixed mapping
//
// Coercion is best-effort and never fails: cells that do not parse flip the
// column's validity mask to missing instead of raising. Empty cells load as
// missing. Row count and column set are fixed at load time; no operation
// changes them.
package frame
