// Package status collects counters about field of view requests for the
// demo status line and the batch CLI
package status

import (
	"fmt"
	"slices"
	"sync"
)

// Registry is a flat namespace of metrics. A name belongs to the kind that
// registered it first; asking for it as another kind panics.
// Callers keep the returned pointers and update them without the lock
type Registry struct {
	mu      sync.RWMutex
	entries map[string]fmt.Stringer
	names   []string // sorted
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]fmt.Stringer)}
}

// Counter returns the counter called name, registering it on first use
func (r *Registry) Counter(name string) *Counter {
	return register[Counter](r, name)
}

// Gauge returns the gauge called name, registering it on first use
func (r *Registry) Gauge(name string) *Gauge {
	return register[Gauge](r, name)
}

// Text returns the text metric called name, registering it on first use
func (r *Registry) Text(name string) *Text {
	return register[Text](r, name)
}

func register[T any, PT interface {
	*T
	fmt.Stringer
}](r *Registry, name string) PT {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		r.mu.Lock()
		if e, ok = r.entries[name]; !ok {
			e = PT(new(T))
			r.entries[name] = e
			i, _ := slices.BinarySearch(r.names, name)
			r.names = slices.Insert(r.names, i, name)
		}
		r.mu.Unlock()
	}

	m, ok := e.(PT)
	if !ok {
		panic(fmt.Sprintf("status: metric %q is a %T", name, e))
	}
	return m
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// Lines formats every metric as "name=value", sorted by name
func (r *Registry) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := make([]string, len(r.names))
	for i, name := range r.names {
		lines[i] = name + "=" + r.entries[name].String()
	}
	return lines
}
