package app

import (
	copyblock "github.com/specialistvlad/flowgridgo/blocks/copy"
	"github.com/specialistvlad/flowgridgo/blocks/head"
	"github.com/specialistvlad/flowgridgo/blocks/nullsink"
	"github.com/specialistvlad/flowgridgo/blocks/socketio"
	"github.com/specialistvlad/flowgridgo/blocks/throttle"
	"github.com/specialistvlad/flowgridgo/blocks/vectorsink"
	"github.com/specialistvlad/flowgridgo/blocks/vectorsource"
	"github.com/specialistvlad/flowgridgo/internal/registry"
)

// coreModules is the definitive list of all block modules that are compiled
// into the flowgridgo binary.
var coreModules = []registry.Module{
	&vectorsource.Module{},
	&copyblock.Module{},
	&vectorsink.Module{},
	&nullsink.Module{},
	&head.Module{},
	&throttle.Module{},
	&socketio.Module{},
}
