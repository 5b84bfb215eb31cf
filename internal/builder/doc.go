/*
Package builder is responsible for the construction of runnable
flowgraphs. It acts as the bridge between the static configuration
model (defined in the 'config' package) and the streaming engine (the
'flow' package).

The primary artifact produced by this package is a validated,
ready-to-run *flow.Graph.

The graph construction is a multi-phase process:

 1. Block Creation: the builder resolves every block definition
    against the registry, decodes its arguments into the block type's
    parameter struct, and constructs the block instance.

 2. Connection Wiring: endpoint strings from `connect` blocks are
    parsed, role defaults are applied to omitted ports, and the
    connections are established in the graph.

 3. Validation: the finished graph is checked for unconnected ports
    and cycles, so configuration mistakes surface before anything
    runs.
*/
package builder
