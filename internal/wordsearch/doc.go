// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package wordsearch finds words in a grid.Grid. It counts straight-line
// occurrences of a word read in any of the eight compass directions, and
// detects "X" crosses formed by two diagonal three-letter words that share
// their middle cell.
//
// Every probe is a pure function of the grid and its arguments. Running off
// the edge of the grid is an ordinary miss, never an error.
package wordsearch
