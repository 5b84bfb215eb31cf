package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/flowgridgo/internal/flow"
	"github.com/specialistvlad/flowgridgo/internal/ring"
)

type nopBlock struct{}

func (nopBlock) Describe() flow.Signature { return flow.Signature{} }

func (nopBlock) Work(context.Context, []*ring.Reader[float32], []*ring.Writer[float32]) error {
	return nil
}

func newNopHandler() *RegisteredBlock {
	return &RegisteredBlock{
		NewParams: func() any { return &struct{}{} },
		New:       func(any) (flow.Block, error) { return nopBlock{}, nil },
	}
}

func TestRegisterBlock(t *testing.T) {
	r := New()
	r.RegisterBlock("copy", newNopHandler())

	handler, ok := r.Lookup("copy")
	require.True(t, ok)
	assert.NotNil(t, handler.NewParams)
	assert.NotNil(t, handler.New)

	_, ok = r.Lookup("unknown")
	assert.False(t, ok)
}

func TestRegisterBlock_DuplicatePanics(t *testing.T) {
	r := New()
	r.RegisterBlock("copy", newNopHandler())
	assert.Panics(t, func() {
		r.RegisterBlock("copy", newNopHandler())
	})
}

type testModule struct{ name string }

func (m *testModule) Register(r *Registry) {
	r.RegisterBlock(m.name, newNopHandler())
}

func TestInstallAndTypes(t *testing.T) {
	r := New()
	r.Install(&testModule{name: "vector_source"}, &testModule{name: "copy"})

	assert.Equal(t, []string{"copy", "vector_source"}, r.Types())
}
