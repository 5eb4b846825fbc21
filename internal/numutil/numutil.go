// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package numutil holds the small numeric helpers shared by the list puzzles.
package numutil

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Ints parses the whitespace-separated integers on line.
func Ints(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// AbsDiff returns |a - b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
