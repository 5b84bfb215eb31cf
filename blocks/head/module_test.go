package head

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/flowgridgo/blocks/vectorsink"
	"github.com/specialistvlad/flowgridgo/blocks/vectorsource"
	"github.com/specialistvlad/flowgridgo/internal/endpoint"
	"github.com/specialistvlad/flowgridgo/internal/flow"
)

func TestNew(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorContains(t, err, "count must be positive")

	_, err = New(Config{Count: -3})
	assert.ErrorContains(t, err, "count must be positive")
}

func TestHeadLimitsAnUnboundedStream(t *testing.T) {
	src, err := vectorsource.New(vectorsource.Config{Items: []float32{1, 2, 3, 4}, Repeat: true})
	require.NoError(t, err)
	h, err := New(Config{Count: 10})
	require.NoError(t, err)
	sink, err := vectorsink.New(vectorsink.Config{Reserve: 10})
	require.NoError(t, err)

	g := flow.New()
	require.NoError(t, g.AddBlock("src", src))
	require.NoError(t, g.AddBlock("head", h))
	require.NoError(t, g.AddBlock("sink", sink))
	require.NoError(t, g.Connect(endpoint.New("src", "out"), endpoint.New("head", "in")))
	require.NoError(t, g.Connect(endpoint.New("head", "out"), endpoint.New("sink", "in")))

	require.NoError(t, g.Run(context.Background(), flow.RunOptions{}))
	assert.Equal(t, []float32{1, 2, 3, 4, 1, 2, 3, 4, 1, 2}, sink.Data())
}
