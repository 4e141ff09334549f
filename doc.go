// Package rnafold predicts RNA secondary structure by minimising the total
// score of a nested set of base pairs, given a caller-supplied pair score
// matrix.
//
// 🚀 What is rnafold?
//
//	A small, deterministic folding engine in the Zuker/Mfold tradition:
//		• Sequences & alphabet: rna (A, C, G, U; canonical pairs AU, CG, GU)
//		• Structures: structure (pairs, dot-bracket, partner tables, F1)
//		• Score matrices: matrix (dense N×N) and score (uniform, indicator, YAML)
//		• Folding: fold (V/W dynamic programming, tagged traceback, batches)
//
// ✨ Why rnafold?
//
//   - Pluggable scoring – any N×N matrix, e.g. the output of a learned model
//   - Deterministic – fixed tie-breaking, identical results serial or parallel
//   - Cancellable – context-aware fills with logr progress logging
//
// Under the hood:
//
//	rna/        — validated sequences, pairing rules, seeded random sequences
//	structure/  — Pair/Pairs, validation, notations, prediction metrics
//	matrix/     — Matrix interface, Dense storage, shape validators
//	score/      — score providers and score documents
//	fold/       — the engine: Fold, FoldContext, FoldTables, FoldAll
//	cmd/rnafold — CLI: fold, bench, version
//
// Quick start:
//
//	scores, _ := score.Uniform(len(seq), -1)
//	res, err := fold.Fold(seq, scores, nil)
//	fmt.Println(res.DotBracket(), res.Score)
package rnafold
