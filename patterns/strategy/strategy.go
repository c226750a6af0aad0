/*
Package strategy demonstrates the Strategy pattern: interchangeable
payment algorithms behind one interface, selected at runtime by a
processor that delegates entirely to the active strategy.

The capability is an interface with no default body, so a concrete
strategy is a compile-time requirement. The one runtime error left is a
processor with no strategy assigned at all.
*/
package strategy

import (
	"context"
	"fmt"
	"io"

	apperrors "patterns-example/pkg/errors"
)

// PaymentStrategy Payment algorithm contract
type PaymentStrategy interface {
	Pay(amount int) (string, error)
}

// CreditCardPayment pays by credit card
type CreditCardPayment struct{}

func (CreditCardPayment) Pay(amount int) (string, error) {
	return fmt.Sprintf("Paid %d using Credit Card", amount), nil
}

// PayPalPayment pays via PayPal
type PayPalPayment struct{}

func (PayPalPayment) Pay(amount int) (string, error) {
	return fmt.Sprintf("Paid %d using PayPal", amount), nil
}

// Processor holds the currently selected strategy and delegates to it
type Processor struct {
	strategy PaymentStrategy
}

// NewProcessor creates a processor with the given strategy. A nil
// strategy is allowed; ProcessPayment then fails until Use is called.
func NewProcessor(s PaymentStrategy) *Processor {
	return &Processor{strategy: s}
}

// Use swaps the active strategy
func (p *Processor) Use(s PaymentStrategy) {
	p.strategy = s
}

// ProcessPayment delegates entirely to the active strategy
func (p *Processor) ProcessPayment(amount int) (string, error) {
	if p.strategy == nil {
		return "", apperrors.Unimplemented("payment")
	}
	return p.strategy.Pay(amount)
}

// Demo Strategy demonstration
type Demo struct{}

func (Demo) Name() string { return "strategy" }

func (Demo) Describe() string {
	return "interchangeable algorithm selection behind one interface"
}

func (Demo) Run(_ context.Context, out io.Writer) error {
	processor := NewProcessor(CreditCardPayment{})

	receipt, err := processor.ProcessPayment(100)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, receipt)

	processor.Use(PayPalPayment{})
	receipt, err = processor.ProcessPayment(100)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, receipt)

	// A processor with nothing assigned refuses to pay.
	if _, err := NewProcessor(nil).ProcessPayment(100); err != nil {
		fmt.Fprintf(out, "unbound processor: %v\n", err)
	}
	return nil
}
