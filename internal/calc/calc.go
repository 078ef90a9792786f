// Package calc evaluates decimal text the way an editor field does: every
// input is parsed with one configured scale and interned in one cache.
package calc

import (
	"context"
	"fmt"

	"github.com/inventar/decimal"
	"github.com/inventar/decimal/internal/logger"
	"go.uber.org/zap"
)

// Calculator parses and combines decimal inputs.
type Calculator struct {
	cache *decimal.Cache
	scale int
}

// Result is the outcome of validating one input.
type Result struct {
	Input string
	Valid bool
}

// New returns a calculator that parses inputs with scale and interns them in cache.
func New(cache *decimal.Cache, scale int) (*Calculator, error) {
	if cache == nil {
		return nil, fmt.Errorf("cache is nil: %w", decimal.ErrInvalidArgument)
	}
	if scale < 0 {
		return nil, fmt.Errorf("scale %v is negative: %w", scale, decimal.ErrInvalidArgument)
	}

	return &Calculator{cache: cache, scale: scale}, nil
}

// Scale returns the scale inputs are parsed with.
func (c *Calculator) Scale() int {
	return c.scale
}

// Validate checks every input and keeps their order.
func (c *Calculator) Validate(ctx context.Context, inputs ...string) []Result {
	results := make([]Result, len(inputs))
	for i, s := range inputs {
		results[i] = Result{Input: s, Valid: decimal.IsValidInput(s, c.scale)}
		if !results[i].Valid {
			logger.Debug(ctx, "input rejected", zap.String("input", s), zap.Int("scale", c.scale))
		}
	}

	return results
}

// Parse converts input to its canonical decimal.
func (c *Calculator) Parse(ctx context.Context, input string) (*decimal.Decimal, error) {
	d, err := c.cache.Parse(input, c.scale)
	if err != nil {
		logger.Debug(ctx, "could not parse input", zap.String("input", input), zap.Error(err))
		return nil, err
	}

	return d, nil
}

// Sum parses all inputs and adds them left to right.
// Each addition is checked with CanAdd first, so an overflow reports the
// running total and the summand that did not fit.
func (c *Calculator) Sum(ctx context.Context, inputs ...string) (*decimal.Decimal, error) {
	total, err := c.cache.New(0, c.scale)
	if err != nil {
		return nil, err
	}

	for i, s := range inputs {
		d, err := c.Parse(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("summand %v: %w", i, err)
		}

		if !total.CanAdd(d) {
			logger.Warn(ctx, "sum overflows",
				zap.Stringer("total", total),
				zap.Stringer("summand", d),
				zap.Int("index", i),
			)
			return nil, fmt.Errorf("summand %v: %v + %v exceeds %v: %w", i, total, d, decimal.MaxCoef, decimal.ErrOverflow)
		}

		if total, err = total.Add(d); err != nil {
			return nil, fmt.Errorf("summand %v: %w", i, err)
		}
	}

	logger.Debug(ctx, "sum computed", zap.Stringer("total", total), zap.Int("summands", len(inputs)))

	return total, nil
}

// Compare parses a and b and returns a.Cmp(b).
func (c *Calculator) Compare(ctx context.Context, a, b string) (int, error) {
	x, err := c.Parse(ctx, a)
	if err != nil {
		return 0, err
	}
	y, err := c.Parse(ctx, b)
	if err != nil {
		return 0, err
	}

	return x.Cmp(y), nil
}
