// Package matrix provides the small dense-matrix surface shared by the
// folding packages.
//
// The matrix package provides:
//
//   - Matrix, a minimal read-only interface (Rows, Cols, At).
//     Score providers hand one of these to the folding engine.
//   - Dense, a row-major implementation backed by a flat slice, with Set,
//     SetSymmetric and Fill for the providers that build it.
//   - Validators for nil and shape checks, returning sentinel
//     errors from errors.go.
//
// Public indexers never panic: out-of-range access returns ErrOutOfRange
// wrapped with the method name and coordinates.
package matrix
