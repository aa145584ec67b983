package multistep

import (
	"github.com/zeu5/multistep-env/types"
	"github.com/zeu5/multistep-env/util"
	"gonum.org/v1/gonum/mat"
)

// StepBuffers accumulates the inner-step results of one episode.
// Observations and info fields live in bounded windows of capacity
// nObs+1, rewards and done flags grow for the life of the episode. A
// fresh StepBuffers replaces the old one on every reset, nothing is
// shared across episodes.
type StepBuffers struct {
	nObs    int
	obs     *util.Window[types.Frame]
	rewards []float64
	dones   []bool
	infos   map[string]*util.Window[*mat.VecDense]
}

func NewStepBuffers(nObs int) *StepBuffers {
	return &StepBuffers{
		nObs:    nObs,
		obs:     util.NewWindow[types.Frame](nObs + 1),
		rewards: make([]float64, 0),
		dones:   make([]bool, 0),
		infos:   make(map[string]*util.Window[*mat.VecDense]),
	}
}

// AddObs appends a single observation frame.
func (b *StepBuffers) AddObs(f types.Frame) {
	b.obs.Append(f)
}

// AddReward appends a scalar reward.
func (b *StepBuffers) AddReward(r float64) {
	b.rewards = append(b.rewards, r)
}

// AddDone appends a done flag.
func (b *StepBuffers) AddDone(d bool) {
	b.dones = append(b.dones, d)
}

// AddInfo appends each field of an info record to its window, creating
// windows for fields not seen before. A field that first appears mid
// episode starts its history at that point.
func (b *StepBuffers) AddInfo(info map[string]*mat.VecDense) {
	for k, v := range info {
		w, ok := b.infos[k]
		if !ok {
			w = util.NewWindow[*mat.VecDense](b.nObs + 1)
			b.infos[k] = w
		}
		w.Append(v)
	}
}

// LastDone reports the most recent done flag, false when no inner step
// was taken yet.
func (b *StepBuffers) LastDone() bool {
	if len(b.dones) == 0 {
		return false
	}
	return b.dones[len(b.dones)-1]
}

// Steps is the number of inner steps recorded since the reset.
func (b *StepBuffers) Steps() int {
	return len(b.rewards)
}

// StackObs stacks the most recent n observation frames.
func (b *StepBuffers) StackObs(n int) (types.Stacked, error) {
	return StackFrames(b.obs.Tail(n), n)
}

// StackInfos stacks every info field over its own window.
func (b *StepBuffers) StackInfos(n int) (map[string]*mat.Dense, error) {
	out := make(map[string]*mat.Dense, len(b.infos))
	for k, w := range b.infos {
		m, err := StackLast(w.Tail(n), n)
		if err != nil {
			return nil, err
		}
		out[k] = m
	}
	return out, nil
}
