package practicesession

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/climmt/mathdrill/internal/domain/problem"
)

// SessionConfig holds the drill settings chosen on the command line.
// Modes is a multiset: a letter given twice is drawn twice as often.
type SessionConfig struct {
	Modes          []problem.Operation `validate:"min=1,max=4"`
	ProblemCount   int                 `validate:"gt=0,lt=100"`
	Timed          bool
	AllowNegatives bool
	AddSubRange    problem.Range
	MultDivRange   problem.Range
}

// Largest upper bounds whose sums (add/sub) or products (mult/div) of two
// operands, of either sign, still fit in an int.
var (
	MaxAddSubUpper  = math.MaxInt / 2
	MaxMultDivUpper = isqrt(math.MaxInt)
)

func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(usedRangesDrawable, SessionConfig{})
	return v
}

// usedRangesDrawable checks only the ranges some mode draws from: they must
// not be empty and must be small enough that generated problems cannot
// overflow.
func usedRangesDrawable(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(SessionConfig)
	if cfg.uses(problem.FamilyAddSub) {
		checkRange(sl, cfg.AddSubRange, "AddSubRange", MaxAddSubUpper)
	}
	if cfg.uses(problem.FamilyMultDiv) {
		checkRange(sl, cfg.MultDivRange, "MultDivRange", MaxMultDivUpper)
	}
}

func checkRange(sl validator.StructLevel, r problem.Range, field string, maxUpper int) {
	if r.Empty() {
		sl.ReportError(r, field, field, "nonempty", "")
	}
	if r.Upper > maxUpper {
		sl.ReportError(r, field, field, "maxupper", strconv.Itoa(maxUpper))
	}
}

// Validate checks every constraint on the config.
func (c SessionConfig) Validate() error {
	return validate.Struct(c)
}

// InvalidFields lists the top-level SessionConfig fields named by a
// validation error, in the order the validator reported them.
func InvalidFields(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	seen := make(map[string]bool)
	var fields []string
	for _, fe := range ve {
		parts := strings.Split(fe.StructNamespace(), ".")
		if len(parts) < 2 {
			continue
		}
		if name := parts[1]; !seen[name] {
			seen[name] = true
			fields = append(fields, name)
		}
	}
	return fields
}

// RangeFor returns the configured range op draws its operands from.
func (c SessionConfig) RangeFor(op problem.Operation) problem.Range {
	if op.Family() == problem.FamilyMultDiv {
		return c.MultDivRange
	}
	return c.AddSubRange
}

// Operations returns the distinct configured operations in a, s, m, d order.
func (c SessionConfig) Operations() []problem.Operation {
	var ops []problem.Operation
	for _, op := range problem.Operations {
		for _, m := range c.Modes {
			if m == op {
				ops = append(ops, op)
				break
			}
		}
	}
	return ops
}

func (c SessionConfig) uses(f problem.Family) bool {
	for _, m := range c.Modes {
		if m.Family() == f {
			return true
		}
	}
	return false
}
