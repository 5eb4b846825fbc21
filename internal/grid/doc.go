// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package grid provides the two-dimensional character grid that the word
// search puzzles operate on.
//
// # Core Concepts
//
//   - Grid: rows of runes, materialized once from a sequence of text lines and
//     read-only afterwards. Rows keep their own width, so ragged input is
//     accepted as-is and every bounds check is made against the row it lands on.
//
//   - Point and Direction: a cell address and a unit step. Compass holds the
//     eight directions a word may be read in.
//
//   - Scan: the single row-major traversal that drives a per-cell detector and
//     accumulates its results.
package grid
