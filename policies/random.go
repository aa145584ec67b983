package policies

import (
	"time"

	"github.com/zeu5/multistep-env/types"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// RandomPolicy samples actions uniformly within the bounds of the base
// action space.
type RandomPolicy struct {
	space types.Space
	rand  *rand.Rand
}

var _ types.Policy = &RandomPolicy{}

func NewRandomPolicy(space types.Space) *RandomPolicy {
	return &RandomPolicy{
		space: space,
		rand:  rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func NewRandomPolicyWithSeed(space types.Space, seed uint64) *RandomPolicy {
	return &RandomPolicy{
		space: space,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomPolicy) Reset() {}

func (r *RandomPolicy) NextAction(step int, obs types.Stacked) (types.Action, bool) {
	return sampleSpace(r.space, r.rand)
}

func (r *RandomPolicy) Update(step int, obs types.Stacked, actions []types.Action, next types.Stacked, reward float64) {
}

func (r *RandomPolicy) UpdateIteration(episode int, trace *types.Trace) {}

func sampleSpace(space types.Space, rng *rand.Rand) (types.Action, bool) {
	switch s := space.(type) {
	case *types.Box:
		return types.Frame{Vec: sampleBox(s, rng)}, true
	case *types.Dict:
		record := make(map[string]*mat.VecDense, len(s.Keys))
		for _, k := range s.Keys {
			box, ok := s.Spaces[k].(*types.Box)
			if !ok {
				return types.Frame{}, false
			}
			record[k] = sampleBox(box, rng)
		}
		return types.Frame{Record: record}, true
	}
	return types.Frame{}, false
}

func sampleBox(box *types.Box, rng *rand.Rand) *mat.VecDense {
	l := box.FlatLen()
	values := make([]float64, l)
	for i := 0; i < l; i++ {
		low := box.Low.AtVec(i)
		high := box.High.AtVec(i)
		if box.Dtype != types.Float32 && box.Dtype != types.Float64 {
			// integer boxes sample both bounds inclusively
			values[i] = low + float64(rng.Intn(int(high-low)+1))
		} else {
			values[i] = low + rng.Float64()*(high-low)
		}
	}
	return mat.NewVecDense(l, values)
}
