package app

import (
	"github.com/vk/gridsolve/internal/registry"
	"github.com/vk/gridsolve/modules/day01"
	"github.com/vk/gridsolve/modules/day02"
	"github.com/vk/gridsolve/modules/day03"
	"github.com/vk/gridsolve/modules/day04"
)

// coreModules is the definitive list of all puzzle modules that are compiled
// into the gridsolve binary.
var coreModules = []registry.Module{
	&day01.Module{},
	&day02.Module{},
	&day03.Module{},
	&day04.Module{},
}
