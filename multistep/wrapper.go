package multistep

import (
	"fmt"

	"github.com/zeu5/multistep-env/types"
	"gonum.org/v1/gonum/mat"
)

// Config parameterizes a MultiStep wrapper. The zero value of
// MaxEpisodeSteps disables the episode ceiling.
type Config struct {
	// NObs is the size of the observation and info stacking window
	NObs int
	// NAction is the number of inner steps per macro step
	NAction int
	// RewardReduce is the reward aggregation mode, ReduceMax when empty
	RewardReduce ReduceMode
	// MaxEpisodeSteps forces done once this many inner steps have
	// accumulated since the reset
	MaxEpisodeSteps int
}

// MultiStep drives a wrapped environment through NAction atomic steps
// per call and reports a stacked window of the NObs most recent
// observations. The wrapped environment is held by composition and is
// only ever called from here.
//
// Rewards and done flags accumulate for the whole episode: the
// reduction runs over everything recorded since the last reset, the
// done flag latches once any inner step terminates, and a Step call
// after termination executes zero inner steps and reduces over the
// leftover entries.
type MultiStep struct {
	env      types.Environment
	nObs     int
	nAction  int
	reduce   ReduceMode
	maxSteps int

	obsSpace types.Space
	actSpace types.Space
	buf      *StepBuffers
}

var _ types.StackedEnvironment = &MultiStep{}

// NewMultiStep validates the configuration and transforms both spaces
// once. Space transformation failures surface here.
func NewMultiStep(env types.Environment, config Config) (*MultiStep, error) {
	if config.NObs < 1 {
		return nil, fmt.Errorf("n_obs must be positive, got %d", config.NObs)
	}
	if config.NAction < 1 {
		return nil, fmt.Errorf("n_action must be positive, got %d", config.NAction)
	}
	if config.RewardReduce == "" {
		config.RewardReduce = ReduceMax
	}
	if !config.RewardReduce.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedReduction, config.RewardReduce)
	}
	if config.MaxEpisodeSteps < 0 {
		return nil, fmt.Errorf("max_episode_steps must not be negative, got %d", config.MaxEpisodeSteps)
	}

	obsSpace, err := RepeatedSpace(env.ObservationSpace(), config.NObs)
	if err != nil {
		return nil, fmt.Errorf("observation space: %w", err)
	}
	actSpace, err := RepeatedSpace(env.ActionSpace(), config.NAction)
	if err != nil {
		return nil, fmt.Errorf("action space: %w", err)
	}

	return &MultiStep{
		env:      env,
		nObs:     config.NObs,
		nAction:  config.NAction,
		reduce:   config.RewardReduce,
		maxSteps: config.MaxEpisodeSteps,
		obsSpace: obsSpace,
		actSpace: actSpace,
		buf:      NewStepBuffers(config.NObs),
	}, nil
}

// ObservationSpace is the NObs-stacked transform of the wrapped space.
func (m *MultiStep) ObservationSpace() types.Space {
	return m.obsSpace
}

// ActionSpace is the NAction-stacked transform of the wrapped space.
func (m *MultiStep) ActionSpace() types.Space {
	return m.actSpace
}

func (m *MultiStep) ActionsPerStep() int {
	return m.nAction
}

// Reset resets the wrapped environment, replaces the buffers and
// returns the initial observation repeated over the whole window.
func (m *MultiStep) Reset() (types.Stacked, error) {
	obs, err := m.env.Reset()
	if err != nil {
		return types.Stacked{}, err
	}
	m.buf = NewStepBuffers(m.nObs)
	m.buf.AddObs(obs)
	return m.buf.StackObs(m.nObs)
}

// Step executes up to NAction inner steps, stopping early once an inner
// step terminates, and returns the stacked observation window, the
// reduced reward, the collapsed done flag and the stacked info fields.
func (m *MultiStep) Step(actions []types.Action) (types.Stacked, float64, bool, map[string]*mat.Dense, error) {
	if len(actions) != m.nAction {
		return types.Stacked{}, 0, false, nil,
			fmt.Errorf("%w: got %d actions, want %d", ErrActionCountMismatch, len(actions), m.nAction)
	}

	for _, action := range actions {
		if m.buf.LastDone() {
			break
		}
		res, err := m.env.Step(action)
		if err != nil {
			return types.Stacked{}, 0, false, nil, err
		}
		m.buf.AddObs(res.Observation)
		m.buf.AddReward(res.Reward)
		m.buf.AddDone(res.Terminated || res.Truncated)
		m.buf.AddInfo(res.Info)
	}

	reward, done, err := Reduce(m.buf.rewards, m.buf.dones, m.reduce)
	if err != nil {
		return types.Stacked{}, 0, false, nil, err
	}
	if m.maxSteps > 0 && m.buf.Steps() >= m.maxSteps {
		done = true
	}

	obs, err := m.buf.StackObs(m.nObs)
	if err != nil {
		return types.Stacked{}, 0, false, nil, err
	}
	infos, err := m.buf.StackInfos(m.nObs)
	if err != nil {
		return types.Stacked{}, 0, false, nil, err
	}
	return obs, reward, done, infos, nil
}
