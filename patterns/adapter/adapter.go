/*
Package adapter demonstrates the Adapter pattern: a wrapper that exposes
the method signature a legacy consumer expects while delegating to a
component with a differently-named operation. No data transformation
happens; the adaptee's result is returned verbatim.
*/
package adapter

import (
	"context"
	"fmt"
	"io"
)

// DataFetcher Legacy interface contract expected by existing consumers
type DataFetcher interface {
	FetchData() string
}

// NewSystem Adaptee with the new, differently-named operation
type NewSystem struct{}

func (NewSystem) GetData() string {
	return "New System Data"
}

// SystemAdapter adapts NewSystem to the DataFetcher contract
type SystemAdapter struct {
	system NewSystem
}

// NewSystemAdapter wraps the given adaptee
func NewSystemAdapter(system NewSystem) *SystemAdapter {
	return &SystemAdapter{system: system}
}

// FetchData delegates to the adaptee's GetData
func (a *SystemAdapter) FetchData() string {
	return a.system.GetData()
}

// Demo Adapter demonstration
type Demo struct{}

func (Demo) Name() string { return "adapter" }

func (Demo) Describe() string {
	return "interface translation between a legacy contract and a new component"
}

func (Demo) Run(_ context.Context, out io.Writer) error {
	var fetcher DataFetcher = NewSystemAdapter(NewSystem{})
	fmt.Fprintf(out, "legacy consumer received: %s\n", fetcher.FetchData())
	return nil
}
