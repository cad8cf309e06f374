package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpUpdate Op = "update"
	OpClear  Op = "clear"
)

var ErrUnknownOp = errors.New("unknown script op")

// Step is one cart operation. For OpClear, Product holds the cart label.
type Step struct {
	Op       Op     `yaml:"op"`
	Product  string `yaml:"product"`
	Quantity int    `yaml:"quantity"`
}

func (s Step) String() string {
	return fmt.Sprintf("%s %s %d", s.Op, s.Product, s.Quantity)
}

// Target is what a script runs against.
type Target interface {
	AddProduct(product string, quantity int) error
	RemoveProduct(product string, quantity int) error
	UpdateQuantity(product string, quantity int) error
	ClearCart(label string, quantity int) error
}

// DefaultScript returns the demonstration sequence.
func DefaultScript() []Step {
	return []Step{
		{Op: OpAdd, Product: "Apple", Quantity: 5},
		{Op: OpAdd, Product: "Orange", Quantity: 9},
		{Op: OpUpdate, Product: "Apple", Quantity: 10},
		{Op: OpRemove, Product: "Apple", Quantity: 2},
		{Op: OpRemove, Product: "Orange", Quantity: 5},
		{Op: OpClear, Product: "Cart empty", Quantity: 0},
	}
}

// Execute runs steps against target in order.
// It stops when ctx is done and returns ctx.Err(). Failures of individual
// steps are logged and returned together after the remaining steps have run.
func Execute(ctx context.Context, target Target, steps []Step) error {
	var errs error
	for i, step := range steps {
		select {
		case <-ctx.Done():
			return multierr.Append(errs, ctx.Err())
		default:
		}

		log.Debug().Int("step", i).Stringer("op", step).Msg("executing step")

		if err := apply(target, step); err != nil {
			log.Error().Err(err).Int("step", i).Stringer("op", step).Msg("step failed")
			errs = multierr.Append(errs, fmt.Errorf("step %d (%s): %w", i, step, err))
		}
	}
	return errs
}

func apply(target Target, step Step) error {
	switch step.Op {
	case OpAdd:
		return target.AddProduct(step.Product, step.Quantity)
	case OpRemove:
		return target.RemoveProduct(step.Product, step.Quantity)
	case OpUpdate:
		return target.UpdateQuantity(step.Product, step.Quantity)
	case OpClear:
		return target.ClearCart(step.Product, step.Quantity)
	}
	return fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
}
