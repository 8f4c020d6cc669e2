package convert

import (
	"slices"
	"sync"
	"time"

	"github.com/ekisa-team/convdict/dict"
)

// Registry manages converters by name.
type Registry struct {
	converters map[string]dict.Converter[any]
	mu         sync.RWMutex
}

// NewRegistry creates a registry holding the stock converters:
// int, int64, uint, float, bool, string, duration and time (RFC 3339).
func NewRegistry() *Registry {
	r := &Registry{
		converters: make(map[string]dict.Converter[any]),
	}

	r.Register("int", Any[int](Int))
	r.Register("int64", Any[int64](Int64))
	r.Register("uint", Any[uint](Uint))
	r.Register("float", Any[float64](Float64))
	r.Register("bool", Any[bool](Bool))
	r.Register("string", Any[string](String))
	r.Register("duration", Any[time.Duration](Duration))
	r.Register("time", Any(Time(time.RFC3339)))

	return r
}

// Register adds a converter, replacing any previous one with the same name.
func (r *Registry) Register(name string, c dict.Converter[any]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.converters[name] = c
}

// Get retrieves a converter by name.
func (r *Registry) Get(name string) (dict.Converter[any], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.converters[name]
	return c, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.converters))
	for name := range r.converters {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
