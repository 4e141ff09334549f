// Package structure represents RNA secondary structures as base-pair lists
// and converts them to and from the usual exchange formats.
//
// ✨ Key features:
//   - Pair / Pairs: (i, j) index pairs with i < j, kept sorted by i.
//   - Validate: non-crossing, non-overlapping and in-range checks.
//   - ValidateCanonical: every pair is a canonical pair with a minimum span.
//   - DotBracket / ParseDotBracket: "((...))" notation.
//   - PartnerTable / FromPartnerTable: one partner index per position.
//   - ContactMatrix: symmetric N×N 0/1 matrix (the pairing "image").
//   - Compare: precision, recall and F1 between predicted and reference pairs.
//
// The folding engine produces valid structures by construction; the
// validators here exist for inputs from outside (files, other tools) and
// for tests.
package structure
