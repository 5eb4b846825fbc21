// Package config defines the format-agnostic run manifest model for the
// application, along with the Loader interface for reading it from a concrete
// source.
//
// A manifest is a list of jobs, each naming a puzzle, the input file to feed
// it and optionally the answer it is expected to produce. Concrete loaders,
// such as the HCL one, are provided in separate packages.
package config
