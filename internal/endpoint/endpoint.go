package endpoint

// Default port names applied when an endpoint omits its port. Blocks
// with a single input or output conventionally name it this way, so
// most connections never need to spell the port out.
const (
	DefaultOutput = "out"
	DefaultInput  = "in"
)

// Endpoint is the structured representation of one port on one block.
type Endpoint struct {
	Block string
	Port  string // Empty when the port was omitted.
}

// New creates an endpoint with an explicit port.
func New(block, port string) Endpoint {
	return Endpoint{Block: block, Port: port}
}

// HasPort returns true if the endpoint names its port explicitly.
func (e Endpoint) HasPort() bool {
	return e.Port != ""
}

// WithDefaultPort returns the endpoint unchanged when it already names
// a port, or a copy bound to the given default otherwise.
func (e Endpoint) WithDefaultPort(port string) Endpoint {
	if e.Port == "" {
		e.Port = port
	}
	return e
}

// String serializes the endpoint into its canonical `block:port`
// representation. An endpoint without a port renders as the bare block
// name.
func (e Endpoint) String() string {
	if e.Port == "" {
		return e.Block
	}
	return e.Block + ":" + e.Port
}
