/*
Package builder demonstrates the Builder pattern: staged, fluent
construction of a product, finished by an explicit Build step.

The same fluent shape is used for application assembly in cmd; here it is
shown in its textbook form.
*/
package builder

import (
	"context"
	"fmt"
	"io"
)

// Computer Finished product
type Computer struct {
	RAM     string
	Storage string
}

// ComputerBuilder accumulates fields for a computer under construction.
// Fields may be set in any order; omitted fields keep their zero value.
type ComputerBuilder struct {
	computer Computer
}

// NewComputerBuilder creates an empty builder
func NewComputerBuilder() *ComputerBuilder {
	return &ComputerBuilder{}
}

// RAM sets the memory size
func (b *ComputerBuilder) RAM(ram string) *ComputerBuilder {
	b.computer.RAM = ram
	return b
}

// Storage sets the storage size
func (b *ComputerBuilder) Storage(storage string) *ComputerBuilder {
	b.computer.Storage = storage
	return b
}

// Build returns the product exactly as accumulated
func (b *ComputerBuilder) Build() Computer {
	return b.computer
}

// Demo Builder demonstration
type Demo struct{}

func (Demo) Name() string { return "builder" }

func (Demo) Describe() string {
	return "fluent staged construction with a terminal build step"
}

func (Demo) Run(_ context.Context, out io.Writer) error {
	pc := NewComputerBuilder().
		RAM("16GB").
		Storage("1TB").
		Build()

	fmt.Fprintf(out, "built computer: RAM=%s Storage=%s\n", pc.RAM, pc.Storage)
	return nil
}
