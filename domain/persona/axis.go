package persona

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"dialogen/domain/core"
)

// Kind discriminates the closed set of axis variants.
type Kind string

const (
	KindDiscrete    Kind = "discrete"
	KindRange       Kind = "range"
	KindRealistic   Kind = "realistic"
	KindConditional Kind = "conditional"
)

// Context is an immutable snapshot of already-resolved axis values for one
// profile, passed explicitly into conditional resolution. Axes never read
// another axis's state directly.
type Context map[string]string

// Case routes one controlling-value pattern to a sub-axis. A pattern matches
// when it equals the controlling value or is a substring of it.
type Case struct {
	Pattern string
	Axis    *Axis
}

// Condition names a controlling axis and its ordered pattern cases.
// Slice order is match order.
type Condition struct {
	On    string
	Cases []Case
}

// Axis is a single trait dimension of a persona. It is a tagged variant:
// exactly one of the per-kind field groups is populated, and resolution
// switches on Kind. Resolution never fails for a constructed axis; all
// configuration problems surface at construction time.
type Axis struct {
	Name string
	Kind Kind

	// discrete
	Options []string
	Weights []float64

	// range
	Min     float64
	Max     float64
	IsFloat bool

	// realistic
	Method string
	Locale string
	Format func(string) string
	gen    generatorFunc

	// conditional
	Conditions []Condition
	Default    *Axis
}

// NewDiscrete creates a uniform discrete-choice axis.
func NewDiscrete(name string, options ...string) *Axis {
	return &Axis{Name: name, Kind: KindDiscrete, Options: options}
}

// NewWeightedDiscrete creates a discrete-choice axis with sampling weights.
// Weights must parallel the option list and be strictly positive.
func NewWeightedDiscrete(name string, options []string, weights []float64) (*Axis, error) {
	if len(weights) != len(options) {
		return nil, core.ErrInvalidWeights
	}
	for _, w := range weights {
		if w <= 0 {
			return nil, core.ErrInvalidWeights
		}
	}
	return &Axis{Name: name, Kind: KindDiscrete, Options: options, Weights: weights}, nil
}

// NewRange creates an integer numeric-range axis over [min, max].
func NewRange(name string, min, max int) (*Axis, error) {
	if max < min {
		return nil, fmt.Errorf("%w: [%d, %d]", core.ErrInvalidRange, min, max)
	}
	return &Axis{Name: name, Kind: KindRange, Min: float64(min), Max: float64(max)}, nil
}

// NewFloatRange creates a float numeric-range axis over [min, max] whose
// values are formatted with exactly one decimal.
func NewFloatRange(name string, min, max float64) (*Axis, error) {
	if max < min {
		return nil, fmt.Errorf("%w: [%g, %g]", core.ErrInvalidRange, min, max)
	}
	return &Axis{Name: name, Kind: KindRange, Min: min, Max: max, IsFloat: true}, nil
}

// NewConditional creates an axis whose value is routed by other axes' resolved
// values. Conditions are scanned in order; the first one whose controlling
// axis is present in the context is consulted, and only that one. A miss falls
// back to defaultAxis.
func NewConditional(name string, conditions []Condition, defaultAxis *Axis) *Axis {
	return &Axis{Name: name, Kind: KindConditional, Conditions: conditions, Default: defaultAxis}
}

// Resolve produces the axis value. Deterministic for a fixed rng stream and,
// for conditional axes, a fully-populated context.
func (a *Axis) Resolve(rng *rand.Rand, ctx Context) string {
	switch a.Kind {
	case KindDiscrete:
		return a.resolveDiscrete(rng)
	case KindRange:
		return a.resolveRange(rng)
	case KindRealistic:
		return a.resolveRealistic(rng)
	case KindConditional:
		return a.resolveConditional(rng, ctx)
	}
	return ""
}

// ResolveWeighted is the opt-in biased entry point. A weight above 1.0 pulls
// discrete picks toward the extremes of the option list and range picks toward
// min/max; below 1.0 pulls toward the midpoint. Realistic and conditional axes
// ignore the weight. Profile generation never calls this; callers opt in.
func (a *Axis) ResolveWeighted(rng *rand.Rand, ctx Context, weight float64) string {
	switch a.Kind {
	case KindDiscrete:
		return a.resolveDiscreteWeighted(rng, weight)
	case KindRange:
		return a.resolveRangeWeighted(rng, weight)
	default:
		return a.Resolve(rng, ctx)
	}
}

func (a *Axis) resolveDiscrete(rng *rand.Rand) string {
	if len(a.Options) == 0 {
		return ""
	}
	if len(a.Weights) > 0 {
		return a.Options[weightedIndex(rng, a.Weights)]
	}
	return a.Options[rng.Intn(len(a.Options))]
}

func (a *Axis) resolveDiscreteWeighted(rng *rand.Rand, weight float64) string {
	if len(a.Options) == 0 {
		return ""
	}
	if weight > 1.0 {
		if len(a.Options) > 2 {
			extremes := [2]string{a.Options[0], a.Options[len(a.Options)-1]}
			return extremes[rng.Intn(2)]
		}
	} else if weight < 1.0 {
		return a.Options[len(a.Options)/2]
	}
	return a.resolveDiscrete(rng)
}

func (a *Axis) resolveRange(rng *rand.Rand) string {
	if a.IsFloat {
		return formatFloat(a.Min + rng.Float64()*(a.Max-a.Min))
	}
	lo, hi := int(a.Min), int(a.Max)
	return strconv.Itoa(lo + rng.Intn(hi-lo+1))
}

func (a *Axis) resolveRangeWeighted(rng *rand.Rand, weight float64) string {
	var target float64
	if weight > 1.0 {
		if rng.Float64() < 0.5 {
			target = a.Min
		} else {
			target = a.Max
		}
	} else {
		target = (a.Min + a.Max) / 2
	}

	// Random jitter of up to ±10% of the range, clamped back in bounds.
	jitter := (a.Max - a.Min) * 0.1 * (rng.Float64()*2 - 1)
	if a.IsFloat {
		return formatFloat(clamp(target+jitter, a.Min, a.Max))
	}
	v := int(target) + int(jitter)
	lo, hi := int(a.Min), int(a.Max)
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return strconv.Itoa(v)
}

func (a *Axis) resolveRealistic(rng *rand.Rand) string {
	v := a.gen(rng)
	if a.Format != nil {
		v = a.Format(v)
	}
	return v
}

func (a *Axis) resolveConditional(rng *rand.Rand, ctx Context) string {
	for _, cond := range a.Conditions {
		value, ok := ctx[cond.On]
		if !ok {
			continue
		}
		for _, c := range cond.Cases {
			if c.Pattern == value || strings.Contains(value, c.Pattern) {
				return c.Axis.Resolve(rng, ctx)
			}
		}
		// one controlling axis lookup per conditional
		break
	}
	return a.Default.Resolve(rng, ctx)
}

func weightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	x := rng.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
