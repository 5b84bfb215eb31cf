package registry

// Module is the interface that all block modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered block types for a single
// application instance.
type Registry struct {
	BlockRegistry map[string]*RegisteredBlock
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		BlockRegistry: make(map[string]*RegisteredBlock),
	}
}

// Install registers every given module into the registry.
func (r *Registry) Install(modules ...Module) {
	for _, m := range modules {
		m.Register(r)
	}
}
