package proc

import "procsnap/kern"

// Inspector performs process-introspection queries against a kernel
// boundary. It holds no mutable state, so a single Inspector is safe for
// concurrent use; every call owns its own buffers.
type Inspector struct {
	kern kern.Interface
}

// New returns an Inspector backed by the live kernel.
func New() *Inspector {
	return &Inspector{kern: kern.System{}}
}

// NewWithInterface returns an Inspector backed by k. Tests use it to
// substitute stub kernels.
func NewWithInterface(k kern.Interface) *Inspector {
	return &Inspector{kern: k}
}
