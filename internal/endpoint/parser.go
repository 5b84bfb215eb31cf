package endpoint

import (
	"fmt"
	"regexp"
	"strings"
)

// nameRegex validates block and port names, e.g. `src` or `copy_7`.
var nameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// Parse creates an Endpoint by parsing its canonical string
// representation. The port part is optional; see WithDefaultPort.
func Parse(raw string) (Endpoint, error) {
	if raw == "" {
		return Endpoint{}, fmt.Errorf("endpoint cannot be empty")
	}

	block, port, explicit := strings.Cut(raw, ":")
	if !nameRegex.MatchString(block) {
		return Endpoint{}, fmt.Errorf("invalid block name in endpoint %q: %q", raw, block)
	}
	if explicit && !nameRegex.MatchString(port) {
		return Endpoint{}, fmt.Errorf("invalid port name in endpoint %q: %q", raw, port)
	}

	return Endpoint{Block: block, Port: port}, nil
}
