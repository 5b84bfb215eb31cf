package flow

import (
	"fmt"
	"sort"
	"sync"

	"github.com/specialistvlad/flowgridgo/internal/endpoint"
)

// Graph is a collection of named blocks and the connections between
// their ports. All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the blocks map during concurrent access.
	mutex sync.RWMutex
	// blocks stores all blocks in the graph, keyed by their unique name.
	blocks map[string]*node
}

// node represents a single block in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using
// endpoints), not by direct struct manipulation.
type node struct {
	name  string
	block Block
	sig   Signature
	// inputs maps each input port to its single upstream endpoint.
	inputs map[string]endpoint.Endpoint
	// outputs maps each output port to its downstream endpoints.
	// One output may fan out to any number of inputs.
	outputs map[string][]endpoint.Endpoint
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		blocks: make(map[string]*node),
	}
}

// AddBlock adds a block to the graph under the given name. An error is
// returned if the name is already taken or the block's signature
// declares duplicate or empty port names.
func (g *Graph) AddBlock(name string, b Block) error {
	if name == "" {
		return fmt.Errorf("block name cannot be empty")
	}

	sig := b.Describe()
	if err := checkPorts("input", sig.Inputs); err != nil {
		return fmt.Errorf("block %q: %w", name, err)
	}
	if err := checkPorts("output", sig.Outputs); err != nil {
		return fmt.Errorf("block %q: %w", name, err)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.blocks[name]; ok {
		return fmt.Errorf("block already defined: %s", name)
	}

	g.blocks[name] = &node{
		name:    name,
		block:   b,
		sig:     sig,
		inputs:  make(map[string]endpoint.Endpoint),
		outputs: make(map[string][]endpoint.Endpoint),
	}
	return nil
}

func checkPorts(direction string, ports []string) error {
	seen := make(map[string]bool, len(ports))
	for _, p := range ports {
		if p == "" {
			return fmt.Errorf("%s port name cannot be empty", direction)
		}
		if seen[p] {
			return fmt.Errorf("duplicate %s port: %s", direction, p)
		}
		seen[p] = true
	}
	return nil
}

// Connect wires one output port to one input port. An error is
// returned if either endpoint does not resolve to a declared port, if
// the input is already fed by another connection, or if the connection
// would loop a block back onto itself. Outputs may be connected any
// number of times; each connected reader observes the full stream.
func (g *Graph) Connect(from, to endpoint.Endpoint) error {
	if from.Block == to.Block {
		return fmt.Errorf("self-referential connection not allowed: %s -> %s", from, to)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.blocks[from.Block]
	if !ok {
		return fmt.Errorf("source block not found: %s", from.Block)
	}
	toNode, ok := g.blocks[to.Block]
	if !ok {
		return fmt.Errorf("destination block not found: %s", to.Block)
	}

	if !hasPort(fromNode.sig.Outputs, from.Port) {
		return fmt.Errorf("block %q has no output port %q", from.Block, from.Port)
	}
	if !hasPort(toNode.sig.Inputs, to.Port) {
		return fmt.Errorf("block %q has no input port %q", to.Block, to.Port)
	}

	if prev, taken := toNode.inputs[to.Port]; taken {
		return fmt.Errorf("input %s is already connected to %s", to, prev)
	}

	toNode.inputs[to.Port] = from
	fromNode.outputs[from.Port] = append(fromNode.outputs[from.Port], to)

	return nil
}

func hasPort(ports []string, name string) bool {
	for _, p := range ports {
		if p == name {
			return true
		}
	}
	return false
}

// Blocks returns the names of all blocks in the graph, sorted.
func (g *Graph) Blocks() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	names := make([]string, 0, len(g.blocks))
	for name := range g.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that the graph is runnable: every declared port of
// every block is connected, and the connections form no cycle.
func (g *Graph) Validate() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.validateLocked()
}

func (g *Graph) validateLocked() error {
	for name, n := range g.blocks {
		for _, p := range n.sig.Inputs {
			if _, ok := n.inputs[p]; !ok {
				return fmt.Errorf("input %s is not connected", endpoint.New(name, p))
			}
		}
		for _, p := range n.sig.Outputs {
			if len(n.outputs[p]) == 0 {
				return fmt.Errorf("output %s is not connected", endpoint.New(name, p))
			}
		}
	}
	return g.detectCyclesLocked()
}

// DetectCycles checks the graph for any cycles. It returns a non-nil
// error if a cycle is found, indicating the first block involved in
// the detected cycle.
func (g *Graph) DetectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.detectCyclesLocked()
}

func (g *Graph) detectCyclesLocked() error {
	// Classic depth-first search with three sets of blocks:
	// permanent: blocks fully visited and known not to be on a cycle.
	// temporary: blocks on the recursion stack of the current traversal.
	// unvisited: all other blocks.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.name] {
			return nil
		}
		if temporary[n.name] {
			// A block already on the recursion stack means a cycle.
			return fmt.Errorf("cycle detected involving block '%s'", n.name)
		}

		temporary[n.name] = true

		for _, targets := range n.outputs {
			for _, ep := range targets {
				if err := visit(g.blocks[ep.Block]); err != nil {
					return err
				}
			}
		}

		delete(temporary, n.name)
		permanent[n.name] = true

		return nil
	}

	for _, n := range g.blocks {
		if !permanent[n.name] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}

	return nil
}
