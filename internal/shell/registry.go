package shell

import (
	"context"
	"sort"
)

// Handler runs one command. line is the full input line, command name included.
type Handler func(ctx context.Context, s *Session, line string) error

// Registry maps command names to handlers
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register stores the handler under name, replacing any previous one
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Resolve returns the handler registered under name
func (r *Registry) Resolve(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered command names in lexicographic order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
