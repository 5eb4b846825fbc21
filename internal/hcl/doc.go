// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, expression
// evaluation and translation of manifest blocks into the config model.
package hcl
