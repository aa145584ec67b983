package types

// Trace of an episode as macro-step tuples
// (observation, actions, reward, done, nextObservation)
type Trace struct {
	observations []Stacked
	actions      [][]Action
	rewards      []float64
	dones        []bool
	nextObs      []Stacked
}

func NewTrace() *Trace {
	return &Trace{
		observations: make([]Stacked, 0),
		actions:      make([][]Action, 0),
		rewards:      make([]float64, 0),
		dones:        make([]bool, 0),
		nextObs:      make([]Stacked, 0),
	}
}

func (t *Trace) Append(obs Stacked, actions []Action, reward float64, done bool, next Stacked) {
	t.observations = append(t.observations, obs)
	t.actions = append(t.actions, actions)
	t.rewards = append(t.rewards, reward)
	t.dones = append(t.dones, done)
	t.nextObs = append(t.nextObs, next)
}

func (t *Trace) Len() int {
	return len(t.observations)
}

func (t *Trace) Get(i int) (Stacked, []Action, float64, bool, Stacked, bool) {
	if i >= len(t.observations) {
		return Stacked{}, nil, 0, false, Stacked{}, false
	}
	return t.observations[i], t.actions[i], t.rewards[i], t.dones[i], t.nextObs[i], true
}

func (t *Trace) Last() (Stacked, []Action, float64, bool, Stacked, bool) {
	if len(t.observations) == 0 {
		return Stacked{}, nil, 0, false, Stacked{}, false
	}
	return t.Get(len(t.observations) - 1)
}

// Rewards returns the aggregated reward of each macro step in order.
func (t *Trace) Rewards() []float64 {
	out := make([]float64, len(t.rewards))
	copy(out, t.rewards)
	return out
}

// Terminated reports whether the episode ended with a done flag.
func (t *Trace) Terminated() bool {
	if len(t.dones) == 0 {
		return false
	}
	return t.dones[len(t.dones)-1]
}
