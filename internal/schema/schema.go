// Package schema holds the HCL decoding structures for run manifests. They
// mirror the file syntax one-to-one and are translated into the
// format-agnostic config model by the hcl package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Puzzle represents a `puzzle` block from a user's manifest file.
type Puzzle struct {
	Name  string `hcl:"name,label"`
	Day   int    `hcl:"day"`
	Part  int    `hcl:"part,optional"`
	Input string `hcl:"input"`
	// Expect stays an expression so an absent attribute can be told apart
	// from an explicit zero.
	Expect hcl.Expression `hcl:"expect,optional"`

	DefRange hcl.Range `hcl:",def_range"`
}

// ManifestFile represents the top-level structure of a manifest file.
type ManifestFile struct {
	Puzzles []*Puzzle `hcl:"puzzle,block"`
}
