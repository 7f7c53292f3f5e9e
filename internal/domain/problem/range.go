package problem

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is matched by every *InvalidRangeError.
var ErrInvalidRange = errors.New("invalid range")

// InvalidRangeError reports a range with an empty draw interval.
type InvalidRangeError struct {
	Range Range
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %s: upper bound is exclusive and must exceed lower bound", e.Range)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// Range is the half-open interval [Lower, Upper) operands are drawn from.
type Range struct {
	Lower int `validate:"gte=0"`
	Upper int `validate:"gte=0,gtefield=Lower"`
}

// Empty reports whether no value can be drawn from the range.
func (r Range) Empty() bool {
	return r.Lower >= r.Upper
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lower, r.Upper)
}

// Source is the subset of *rand.Rand the selector needs.
type Source interface {
	Intn(n int) int
}

// Operands is a drawn operand pair before any operation is applied.
type Operands struct {
	X, Y int
}

// SelectOperands draws two operands from r. When allowNegatives is set each
// operand independently has an even chance of being replaced by a value
// drawn from [-Upper, -Lower).
func SelectOperands(rng Source, r Range, allowNegatives bool) (Operands, error) {
	if r.Empty() {
		return Operands{}, &InvalidRangeError{Range: r}
	}

	o := Operands{
		X: draw(rng, r.Lower, r.Upper),
		Y: draw(rng, r.Lower, r.Upper),
	}
	if !allowNegatives {
		return o, nil
	}

	negX := draw(rng, -r.Upper, -r.Lower)
	negY := draw(rng, -r.Upper, -r.Lower)
	if rng.Intn(2) == 1 {
		o.X = negX
	}
	if rng.Intn(2) == 1 {
		o.Y = negY
	}
	return o, nil
}

// draw returns a uniform value in [lo, hi). Callers guarantee lo < hi.
func draw(rng Source, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}
