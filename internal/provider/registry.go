package provider

import "fmt"

// Registry is an explicit, ordered mapping from service name to a
// constructed signing capability. It is built by an external loader
// (the app layer) and handed to the batch orchestrator; the benchmark
// core performs no provider discovery of its own.
type Registry struct {
	names   []string
	signers map[string]Signer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		signers: make(map[string]Signer),
	}
}

// Register adds a signer under its name, preserving registration order.
func (r *Registry) Register(s Signer) error {
	name := s.Name()
	if name == "" {
		return fmt.Errorf("signer name cannot be empty")
	}

	_, exists := r.signers[name]
	if exists {
		return fmt.Errorf("signer %q already registered", name)
	}

	r.names = append(r.names, name)
	r.signers[name] = s

	return nil
}

// Get returns the signer registered under name.
func (r *Registry) Get(name string) (Signer, bool) {
	s, ok := r.signers[name]
	return s, ok
}

// Names returns service names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Signers returns the registered signers in registration order.
func (r *Registry) Signers() []Signer {
	signers := make([]Signer, 0, len(r.names))
	for _, name := range r.names {
		signers = append(signers, r.signers[name])
	}
	return signers
}

// Len returns the number of registered signers.
func (r *Registry) Len() int {
	return len(r.names)
}
