package policies

import (
	"math"
	"time"

	"github.com/zeu5/multistep-env/types"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftMaxPolicy keeps a Q table indexed by the hash of the stacked
// observation and samples actions from a softmax over the candidate
// values. Candidates are drawn uniformly from the base action space, so
// the policy works for any Box or Dict space.
type SoftMaxPolicy struct {
	QTable     map[string]map[string]float64
	space      types.Space
	candidates int
	alpha      float64
	gamma      float64
	rand       *rand.Rand
}

var _ types.Policy = &SoftMaxPolicy{}

func NewSoftMaxPolicy(space types.Space, candidates int, alpha, gamma float64) *SoftMaxPolicy {
	return &SoftMaxPolicy{
		QTable:     make(map[string]map[string]float64),
		space:      space,
		candidates: candidates,
		alpha:      alpha,
		gamma:      gamma,
		rand:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (s *SoftMaxPolicy) Reset() {
	s.QTable = make(map[string]map[string]float64)
}

func (s *SoftMaxPolicy) NextAction(step int, obs types.Stacked) (types.Action, bool) {
	obsHash := obs.Hash()
	if _, ok := s.QTable[obsHash]; !ok {
		s.QTable[obsHash] = make(map[string]float64)
	}

	actions := make([]types.Action, s.candidates)
	for i := range actions {
		action, ok := sampleSpace(s.space, s.rand)
		if !ok {
			return types.Frame{}, false
		}
		actions[i] = action
		if _, ok := s.QTable[obsHash][action.Hash()]; !ok {
			s.QTable[obsHash][action.Hash()] = 0
		}
	}

	sum := float64(0)
	vals := make([]float64, len(actions))
	for i, action := range actions {
		exp := math.Exp(s.QTable[obsHash][action.Hash()])
		vals[i] = exp
		sum += exp
	}
	weights := make([]float64, len(actions))
	for i, v := range vals {
		weights[i] = v / sum
	}
	i, ok := sampleuv.NewWeighted(weights, nil).Take()
	if !ok {
		return types.Frame{}, false
	}
	return actions[i], true
}

func (s *SoftMaxPolicy) Update(step int, obs types.Stacked, actions []types.Action, next types.Stacked, reward float64) {
	obsHash := obs.Hash()
	if _, ok := s.QTable[obsHash]; !ok {
		return
	}
	nextMax := float64(0)
	if vals, ok := s.QTable[next.Hash()]; ok {
		for _, v := range vals {
			if v > nextMax {
				nextMax = v
			}
		}
	}
	for _, action := range actions {
		key := action.Hash()
		if _, ok := s.QTable[obsHash][key]; !ok {
			continue
		}
		cur := s.QTable[obsHash][key]
		s.QTable[obsHash][key] = (1-s.alpha)*cur + s.alpha*(reward+s.gamma*nextMax)
	}
}

func (s *SoftMaxPolicy) UpdateIteration(episode int, trace *types.Trace) {}
