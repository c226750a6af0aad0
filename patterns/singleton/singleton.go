/*
Package singleton demonstrates the Singleton pattern: a process-wide
settings registry with exactly one instance per process lifetime.

Creation is guarded by sync.Once so that concurrent first access still
performs a single initialization. Ownership of the instance is explicit:
only Instance hands it out, and nothing can replace it.
*/
package singleton

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Registry Process-wide settings store
type Registry struct {
	id     string
	mu     sync.RWMutex
	values map[string]string
}

var (
	instance *Registry
	once     sync.Once
)

// Instance returns the single process-wide registry, creating it lazily
// on first access. Every call returns the same reference.
func Instance() *Registry {
	once.Do(func() {
		instance = &Registry{
			id:     uuid.NewString(),
			values: make(map[string]string),
		}
	})
	return instance
}

// ID Identity of this instance, fixed at creation
func (r *Registry) ID() string {
	return r.id
}

// Set stores a setting
func (r *Registry) Set(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// Get reads a setting
func (r *Registry) Get(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// Demo Singleton demonstration
type Demo struct{}

func (Demo) Name() string { return "singleton" }

func (Demo) Describe() string {
	return "one process-wide instance, lazily created on first access"
}

func (Demo) Run(_ context.Context, out io.Writer) error {
	first := Instance()
	first.Set("theme", "dark")

	second := Instance()
	theme, _ := second.Get("theme")

	fmt.Fprintf(out, "first instance:  %s\n", first.ID())
	fmt.Fprintf(out, "second instance: %s\n", second.ID())
	fmt.Fprintf(out, "same instance: %t, theme: %s\n", first == second, theme)
	return nil
}
