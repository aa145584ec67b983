package multistep

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ReduceMode names the aggregation applied to inner-step rewards.
type ReduceMode string

const (
	ReduceMax  ReduceMode = "max"
	ReduceMin  ReduceMode = "min"
	ReduceMean ReduceMode = "mean"
	ReduceSum  ReduceMode = "sum"
)

// Valid reports whether the mode names a known reduction.
func (m ReduceMode) Valid() bool {
	switch m {
	case ReduceMax, ReduceMin, ReduceMean, ReduceSum:
		return true
	}
	return false
}

// Reduce collapses the recorded rewards into one scalar and the done
// flags into their logical OR.
func Reduce(rewards []float64, dones []bool, mode ReduceMode) (float64, bool, error) {
	if len(rewards) == 0 {
		return 0, false, ErrEmptyReduction
	}
	var reward float64
	switch mode {
	case ReduceMax:
		reward = floats.Max(rewards)
	case ReduceMin:
		reward = floats.Min(rewards)
	case ReduceMean:
		reward = stat.Mean(rewards, nil)
	case ReduceSum:
		reward = floats.Sum(rewards)
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrUnsupportedReduction, mode)
	}
	done := false
	for _, d := range dones {
		if d {
			done = true
			break
		}
	}
	return reward, done, nil
}
