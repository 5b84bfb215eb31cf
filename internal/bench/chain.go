package bench

import (
	"fmt"

	copyblock "github.com/specialistvlad/flowgridgo/blocks/copy"
	"github.com/specialistvlad/flowgridgo/blocks/vectorsink"
	"github.com/specialistvlad/flowgridgo/blocks/vectorsource"
	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/flow"
)

// Chain builds the straight-line benchmark graph
// src -> copy_0 -> ... -> copy_{nCopy-1} -> sink and returns it
// together with the sink for post-run inspection. The sink reserves
// room for the full vector up front so collection never reallocates
// during the measured run.
func Chain(items []float32, nCopy int) (*flow.Graph, *vectorsink.Block, error) {
	if nCopy < 1 {
		return nil, nil, fmt.Errorf("at least one copy stage is required, got %d", nCopy)
	}

	g := flow.New()

	src, err := vectorsource.New(vectorsource.Config{Items: items})
	if err != nil {
		return nil, nil, err
	}
	if err := g.AddBlock("src", src); err != nil {
		return nil, nil, err
	}

	// The first copy stage is wired straight to the source; the loop
	// below only appends the remaining stages, starting at 1.
	first, err := copyblock.New(copyblock.Config{})
	if err != nil {
		return nil, nil, err
	}
	if err := g.AddBlock(stageName(0), first); err != nil {
		return nil, nil, err
	}
	if err := connect(g, "src", stageName(0)); err != nil {
		return nil, nil, err
	}

	prev := stageName(0)
	for stage := 1; stage < nCopy; stage++ {
		blk, err := copyblock.New(copyblock.Config{})
		if err != nil {
			return nil, nil, err
		}
		name := stageName(stage)
		if err := g.AddBlock(name, blk); err != nil {
			return nil, nil, err
		}
		if err := connect(g, prev, name); err != nil {
			return nil, nil, err
		}
		prev = name
	}

	sink, err := vectorsink.New(vectorsink.Config{Reserve: int64(len(items))})
	if err != nil {
		return nil, nil, err
	}
	if err := g.AddBlock("sink", sink); err != nil {
		return nil, nil, err
	}
	if err := connect(g, prev, "sink"); err != nil {
		return nil, nil, err
	}

	return g, sink, nil
}

func stageName(stage int) string {
	return fmt.Sprintf("copy_%d", stage)
}

func connect(g *flow.Graph, from, to string) error {
	return g.Connect(
		endpoint.New(from, endpoint.DefaultOutput),
		endpoint.New(to, endpoint.DefaultInput),
	)
}
