// Package registry provides the central "glue" for the puzzle module system.
//
// The Registry maps a (day, part) pair to the compiled Go function that solves
// it. Puzzle modules register themselves at start-up, the registry is
// validated once, and the app looks solvers up by key when it plans a run.
package registry
