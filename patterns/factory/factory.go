/*
Package factory demonstrates the Factory pattern: construction goes
through a single creation operation instead of callers assembling the
product themselves.
*/
package factory

import (
	"context"
	"fmt"
	"io"
)

// Car Product built by the factory
type Car struct {
	brand string
}

// New creates a car configured with the given brand. The discriminator is
// accepted as given; there is no validation.
func New(brand string) *Car {
	return &Car{brand: brand}
}

// Brand Brand this car was created with
func (c *Car) Brand() string {
	return c.brand
}

// Drive returns a human-readable driving report
func (c *Car) Drive() string {
	return fmt.Sprintf("Driving a %s", c.brand)
}

// Demo Factory demonstration
type Demo struct{}

func (Demo) Name() string { return "factory" }

func (Demo) Describe() string {
	return "construction indirection through a single create operation"
}

func (Demo) Run(_ context.Context, out io.Writer) error {
	for _, brand := range []string{"Tesla", "BMW"} {
		car := New(brand)
		fmt.Fprintln(out, car.Drive())
	}
	return nil
}
