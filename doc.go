// Package clusfind is a randomized cluster finder for labelled datasets.
//
// 🔍 What is clusfind?
//
//	A small, deterministic-by-seed library that searches a dataset for a
//	subset of rows jointly satisfying a caller-supplied predicate, by
//	recursively partitioning the rows along randomly chosen axes of a
//	dimensional feature matrix:
//
//	  • cluster/ — the finder: dimension selectors, bitmap stack, and the
//	    iterative depth-first partition search
//	  • matrix/  — dense row-major float64 containers for the dimensional
//	    and payload matrices
//
// ✨ Why choose clusfind?
//
//   - Deterministic          — a seed fully fixes the search trajectory
//   - Rock-solid             — strict sentinel errors, no panics on input
//   - Extensible             — plug in your own predicate and dimension
//     selector; attach an OnStep hook for tracing
//   - Pure Go                — no cgo, no hidden dependencies
//
// Quick ASCII sketch of one search step:
//
//	         active rows at level L−1
//	        ┌───────────┬───────────┐
//	        │ ≥ split   │ < split   │   random axis, random split point
//	        └───────────┴───────────┘
//	          left child  right child
//
//	each child in turn is checked, pruned, or split again, depth first.
//
// See cluster's package documentation for the full contract.
//
//	go get github.com/katalvlaran/clusfind
package clusfind
