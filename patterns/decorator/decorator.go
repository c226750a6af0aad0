/*
Package decorator demonstrates the Decorator pattern: layers that share
the component's contract and compose by nesting, each adding its own
contribution to the wrapped component's result.

Each layer exclusively owns the component it wraps, so the chain is a
plain composition with no cycles.
*/
package decorator

import (
	"context"
	"fmt"
	"io"
)

// Beverage Component contract shared by base drinks and decorators
type Beverage interface {
	Cost() int
}

// Coffee Base component
type Coffee struct{}

func (Coffee) Cost() int { return 5 }

// Milk decorator, adds its increment to the wrapped beverage's cost
type Milk struct {
	wrapped Beverage
}

// WithMilk wraps a beverage in a milk layer
func WithMilk(b Beverage) Milk {
	return Milk{wrapped: b}
}

func (m Milk) Cost() int {
	return m.wrapped.Cost() + 2
}

// Demo Decorator demonstration
type Demo struct{}

func (Demo) Name() string { return "decorator" }

func (Demo) Describe() string {
	return "behavior composition through nested wrapping"
}

func (Demo) Run(_ context.Context, out io.Writer) error {
	plain := Coffee{}
	withMilk := WithMilk(plain)
	doubleMilk := WithMilk(withMilk)

	fmt.Fprintf(out, "coffee: %d\n", plain.Cost())
	fmt.Fprintf(out, "coffee + milk: %d\n", withMilk.Cost())
	fmt.Fprintf(out, "coffee + milk + milk: %d\n", doubleMilk.Cost())
	return nil
}
