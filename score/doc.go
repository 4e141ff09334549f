// Package score supplies pairwise score matrices for the folding engine.
//
// The engine is agnostic to where scores come from: a thermodynamic model,
// a network prediction, or a toy indicator. This package provides the
// providers used by the command-line tool and the tests:
//
//   - Uniform: every cell set to one value.
//   - Indicator: a chosen value on reference pairs, another elsewhere. This
//     is the construction used to check that folding recovers a known
//     structure.
//   - FromPartnerTable: Indicator driven by a partner table.
//   - Load / LoadFile: a YAML (or JSON) document carrying a sequence and
//     either an explicit N×N matrix or a dot-bracket reference.
//
// Only cells (i, j) with i < j are read by the engine; providers here fill
// both triangles so the matrices are symmetric.
package score
