package index

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Registry is a read-only table of overnight indices keyed by unique name.
// It is populated once by NewRegistry and safe for concurrent lookups.
type Registry struct {
	byName map[string]*OvernightIndex
	logger *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger logs lookups at debug level.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewRegistry builds a registry from indices. Names must be unique.
func NewRegistry(indices []*OvernightIndex, opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]*OvernightIndex, len(indices)),
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, idx := range indices {
		if idx == nil {
			return nil, fmt.Errorf("%w: nil index", ErrInvalidArgument)
		}
		if _, dup := r.byName[idx.Name()]; dup {
			return nil, fmt.Errorf("duplicate index name %q", idx.Name())
		}
		r.byName[idx.Name()] = idx
	}
	return r, nil
}

// Lookup returns the index registered under name, or a *LookupError.
func (r *Registry) Lookup(name string) (*OvernightIndex, error) {
	idx, ok := r.byName[name]
	if !ok {
		r.logger.Debug("index lookup failed", "name", name)
		return nil, &LookupError{Name: name}
	}
	r.logger.Debug("index lookup", "name", name)
	return idx, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered indices.
func (r *Registry) Len() int {
	return len(r.byName)
}

// Of obtains an OvernightIndex from its unique name, such as "GBP-SONIA".
// An empty name is rejected before the registry is consulted.
func Of(r *Registry, uniqueName string) (*OvernightIndex, error) {
	if strings.TrimSpace(uniqueName) == "" {
		return nil, missingArgument("uniqueName")
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrInvalidArgument)
	}
	return r.Lookup(uniqueName)
}
