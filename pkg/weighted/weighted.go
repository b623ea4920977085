// Package weighted implements the prize draw shared by the wheel and
// ladder event mechanics: one option is selected from a list with
// probability proportional to its weight.
package weighted

import (
	"errors"
	"math/rand"
)

// ErrNoOptions is returned when a draw is requested over an empty list.
var ErrNoOptions = errors.New("weighted: no options to pick from")

// Option is a single weighted candidate. Weight does not need to sum to
// any fixed total across a list; the draw normalizes implicitly.
type Option struct {
	ID     int64   `json:"id" bson:"id"`
	Label  string  `json:"label" bson:"label"`
	Weight float64 `json:"weight" bson:"weight"`
	Color  string  `json:"color,omitempty" bson:"color,omitempty"`
}

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Pick draws one option using the shared math/rand source.
func Pick(opts []Option) (Option, error) {
	return PickWith(rand.New(rand.NewSource(rand.Int63())), opts)
}

// PickWith draws one option using the given random source. Option i is
// selected with probability weight_i / sum(weights). Negative weights
// are treated as zero.
func PickWith(src Source, opts []Option) (Option, error) {
	if len(opts) == 0 {
		return Option{}, ErrNoOptions
	}

	total := 0.0
	for _, o := range opts {
		if o.Weight > 0 {
			total += o.Weight
		}
	}

	return pickAt(opts, src.Float64()*total), nil
}

// pickAt locates the option whose interval contains roll, walking the
// list in caller order with a running subtraction. A roll at or past
// the total (all-zero weights, or float drift at the upper boundary)
// resolves deterministically: the first option when total is zero, the
// last option otherwise.
func pickAt(opts []Option, roll float64) Option {
	for _, o := range opts {
		if o.Weight > 0 {
			roll -= o.Weight
		}
		if roll <= 0 {
			return o
		}
	}
	return opts[len(opts)-1]
}
