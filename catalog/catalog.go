/*
Package catalog holds the ordered registry of pattern demonstrations and
runs them. It owns its state and exposes read/write operations the way a
repository would; demonstrations themselves stay independent of each
other and of the catalog.
*/
package catalog

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "patterns-example/pkg/errors"
	"patterns-example/pkg/logger"
)

// Demo One self-contained pattern demonstration
type Demo interface {
	// Name is the stable registry key (e.g. "singleton").
	Name() string
	// Describe is a one-line summary for catalog listings.
	Describe() string
	// Run executes the demonstration, writing its observable output to out.
	Run(ctx context.Context, out io.Writer) error
}

// Result Outcome of one demonstration run
type Result struct {
	Pattern  string        `json:"pattern"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`

	err error
}

// Err Underlying error of a failed run, nil on success
func (r Result) Err() error { return r.err }

// Catalog Ordered registry of demonstrations
type Catalog struct {
	mu    sync.RWMutex
	order []string
	demos map[string]Demo
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		demos: make(map[string]Demo),
	}
}

// Register adds a demonstration. Registration order is the catalog's run
// order; duplicate names are rejected.
func (c *Catalog) Register(d Demo) error {
	if d == nil {
		return fmt.Errorf("demo cannot be nil")
	}
	if d.Name() == "" {
		return fmt.Errorf("demo name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.demos[d.Name()]; exists {
		return fmt.Errorf("demo already registered: %s", d.Name())
	}
	c.demos[d.Name()] = d
	c.order = append(c.order, d.Name())
	return nil
}

// Names returns the registered names in registration order
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Get retrieves a demonstration by name
func (c *Catalog) Get(name string) (Demo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.demos[name]
	if !ok {
		return nil, apperrors.UnknownPattern(name)
	}
	return d, nil
}

// Run executes one demonstration by name and reports its outcome
func (c *Catalog) Run(ctx context.Context, name string, out io.Writer) (*Result, error) {
	d, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	r := c.run(ctx, d, out)
	return &r, nil
}

// RunAll executes every registered demonstration in registration order.
// A failed demonstration is recorded in its Result and does not stop the
// ones after it.
func (c *Catalog) RunAll(ctx context.Context, out io.Writer) []Result {
	names := c.Names()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		d, err := c.Get(name)
		if err != nil {
			// Unreachable while the registry is append-only, but a Result
			// beats a silent skip.
			results = append(results, Result{Pattern: name, Error: err.Error(), err: err})
			continue
		}
		results = append(results, c.run(ctx, d, out))
	}
	return results
}

func (c *Catalog) run(ctx context.Context, d Demo, out io.Writer) Result {
	log := logger.WithRunID(uuid.NewString())
	log.Info("running demonstration", zap.String("pattern", d.Name()))

	fmt.Fprintf(out, "--- %s: %s ---\n", d.Name(), d.Describe())

	start := time.Now()
	err := d.Run(ctx, out)
	elapsed := time.Since(start)

	r := Result{
		Pattern:  d.Name(),
		Duration: elapsed,
		err:      err,
	}
	if err != nil {
		r.Error = err.Error()
		log.Error("demonstration failed",
			zap.String("pattern", d.Name()),
			zap.Duration("duration", elapsed),
			zap.Error(err))
		fmt.Fprintf(out, "error: %v\n", err)
	} else {
		log.Info("demonstration finished",
			zap.String("pattern", d.Name()),
			zap.Duration("duration", elapsed))
	}
	fmt.Fprintln(out)
	return r
}
