package types

import "gonum.org/v1/gonum/mat"

// StepResult is the outcome of one atomic step of an environment.
type StepResult struct {
	Observation Frame
	Reward      float64
	Terminated  bool
	Truncated   bool
	Info        map[string]*mat.VecDense
}

// Environment is the single-step contract consumed by the multistep
// wrapper. Failures of the environment propagate unchanged.
type Environment interface {
	// Reset starts a new episode and returns the initial observation
	Reset() (Frame, error)
	// Step executes one action
	Step(Action) (*StepResult, error)
	// Spaces describing observations and actions, Box or Dict
	ObservationSpace() Space
	ActionSpace() Space
}

// StackedEnvironment is the macro-step contract exposed by the wrapper:
// one call consumes a fixed number of actions and reports a stacked
// window of observations, an aggregated reward and a collapsed done
// flag.
type StackedEnvironment interface {
	Reset() (Stacked, error)
	Step(actions []Action) (Stacked, float64, bool, map[string]*mat.Dense, error)
	ObservationSpace() Space
	ActionSpace() Space
	// ActionsPerStep is the number of actions one Step call consumes
	ActionsPerStep() int
}

// Policy picks actions for a stacked environment
type Policy interface {
	// NextAction returns one action for the current inner step
	NextAction(step int, obs Stacked) (Action, bool)
	// Update is called once per macro step with the observed transition
	Update(step int, obs Stacked, actions []Action, next Stacked, reward float64)
	// UpdateIteration is called at the end of each episode
	UpdateIteration(episode int, trace *Trace)
	Reset()
}
