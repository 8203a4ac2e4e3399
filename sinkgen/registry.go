package sinkgen

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrEmptyRegistry is returned when a registry would contain no kinds.
	ErrEmptyRegistry = errors.New("registry has no sink kinds")
	// ErrInvalidKindName is returned for a name that is not a valid identifier fragment.
	ErrInvalidKindName = errors.New("invalid sink kind name")
	// ErrDuplicateKind is returned when the same name is registered twice.
	ErrDuplicateKind = errors.New("duplicate sink kind")
)

// identifierPattern matches names that can be spliced into C++ identifiers.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// defaultKindNames is the production sink list. Order matters: a kind's
// position is its SinkID enumerator value in Sink.h.
var defaultKindNames = []string{
	"ArrayBufferSink",
	"FileSink",
	"HTTPResponseSink",
	"HTTPSResponseSink",
	"NetworkSink",
}

// SinkID is the position of a kind in its registry.
type SinkID int

// Kind is one named stream-output flavor.
type Kind struct {
	Name string
	ID   SinkID
}

// Registry is an ordered, immutable list of sink kinds.
type Registry struct {
	kinds []Kind
}

// NewRegistry validates names and returns a registry preserving their order.
func NewRegistry(names ...string) (*Registry, error) {
	if len(names) == 0 {
		return nil, ErrEmptyRegistry
	}
	seen := make(map[string]bool, len(names))
	kinds := make([]Kind, 0, len(names))
	for i, name := range names {
		if !identifierPattern.MatchString(name) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidKindName, name, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKind, name)
		}
		seen[name] = true
		kinds = append(kinds, Kind{Name: name, ID: SinkID(i)})
	}
	return &Registry{kinds: kinds}, nil
}

// DefaultRegistry returns the registry compiled into the generator.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultKindNames...)
	if err != nil {
		panic(fmt.Sprintf("built-in sink registry is malformed: %v", err))
	}
	return r
}

// Kinds returns a copy of the registered kinds in registry order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int { return len(r.kinds) }

// Names returns the kind names in registry order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.kinds))
	for i, k := range r.kinds {
		out[i] = k.Name
	}
	return out
}

// Lookup finds a kind by name.
func (r *Registry) Lookup(name string) (Kind, bool) {
	for _, k := range r.kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}
