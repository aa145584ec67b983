package multistep

import (
	"fmt"

	"github.com/zeu5/multistep-env/types"
	"gonum.org/v1/gonum/mat"
)

// StackLast stacks the n most recent vectors of a chronological history
// into one matrix with one row per frame, oldest first. When the
// history is shorter than n the missing leading rows repeat the oldest
// available frame, so the result always has exactly n rows.
func StackLast(history []*mat.VecDense, n int) (*mat.Dense, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}
	core := history
	if len(core) > n {
		core = core[len(core)-n:]
	}
	pad := n - len(core)

	cols := core[0].Len()
	out := mat.NewDense(n, cols, nil)
	for i := 0; i < pad; i++ {
		out.SetRow(i, core[0].RawVector().Data)
	}
	for i, frame := range core {
		if frame.Len() != cols {
			return nil, fmt.Errorf("frame %d has length %d, want %d", i, frame.Len(), cols)
		}
		out.SetRow(pad+i, frame.RawVector().Data)
	}
	return out, nil
}

// StackFrames applies StackLast to a history of frames. Box frames
// produce one matrix, Dict frames produce one matrix per key.
func StackFrames(history []types.Frame, n int) (types.Stacked, error) {
	if len(history) == 0 {
		return types.Stacked{}, ErrEmptyHistory
	}
	if history[0].Vec != nil {
		vecs := make([]*mat.VecDense, len(history))
		for i, f := range history {
			vecs[i] = f.Vec
		}
		m, err := StackLast(vecs, n)
		if err != nil {
			return types.Stacked{}, err
		}
		return types.Stacked{Mat: m}, nil
	}

	record := make(map[string]*mat.Dense, len(history[0].Record))
	for key := range history[0].Record {
		vecs := make([]*mat.VecDense, len(history))
		for i, f := range history {
			v, ok := f.Record[key]
			if !ok {
				return types.Stacked{}, fmt.Errorf("frame %d is missing key %q", i, key)
			}
			vecs[i] = v
		}
		m, err := StackLast(vecs, n)
		if err != nil {
			return types.Stacked{}, fmt.Errorf("key %q: %w", key, err)
		}
		record[key] = m
	}
	return types.Stacked{Record: record}, nil
}
