package types_test

import (
	"testing"

	"github.com/zeu5/multistep-env/types"
	"gonum.org/v1/gonum/mat"
)

// fakeStacked ends the episode after doneAfter macro steps.
type fakeStacked struct {
	steps     int
	doneAfter int
}

var _ types.StackedEnvironment = &fakeStacked{}

func (f *fakeStacked) Reset() (types.Stacked, error) {
	f.steps = 0
	return f.observation(), nil
}

func (f *fakeStacked) observation() types.Stacked {
	return types.Stacked{Mat: mat.NewDense(2, 1, []float64{0, float64(f.steps)})}
}

func (f *fakeStacked) Step(actions []types.Action) (types.Stacked, float64, bool, map[string]*mat.Dense, error) {
	f.steps++
	return f.observation(), 1.0, f.steps >= f.doneAfter, nil, nil
}

func (f *fakeStacked) ObservationSpace() types.Space {
	return types.NewBox(0, 100, types.Float64, 1)
}

func (f *fakeStacked) ActionSpace() types.Space {
	return types.NewBox(-1, 1, types.Float64, 1)
}

func (f *fakeStacked) ActionsPerStep() int { return 2 }

type constantPolicy struct {
	episodesSeen int
}

var _ types.Policy = &constantPolicy{}

func (c *constantPolicy) NextAction(step int, obs types.Stacked) (types.Action, bool) {
	return types.VecFrame(0), true
}

func (c *constantPolicy) Update(step int, obs types.Stacked, actions []types.Action, next types.Stacked, reward float64) {
}

func (c *constantPolicy) UpdateIteration(episode int, trace *types.Trace) {
	c.episodesSeen++
}

func (c *constantPolicy) Reset() {}

func TestAgentRunsEpisodes(t *testing.T) {
	policy := &constantPolicy{}
	agent := types.NewAgent(&types.AgentConfig{
		Episodes:    3,
		Horizon:     10,
		Policy:      policy,
		Environment: &fakeStacked{doneAfter: 4},
	})
	if err := agent.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if policy.episodesSeen != 3 {
		t.Errorf("expected 3 episodes, got %d", policy.episodesSeen)
	}
}

func TestAgentStopsAtHorizon(t *testing.T) {
	env := &fakeStacked{doneAfter: 100}
	agent := types.NewAgent(&types.AgentConfig{
		Episodes:    1,
		Horizon:     5,
		Policy:      &constantPolicy{},
		Environment: env,
	})
	if err := agent.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if env.steps != 5 {
		t.Errorf("expected 5 macro steps, got %d", env.steps)
	}
}

func TestTraceTerminated(t *testing.T) {
	trace := types.NewTrace()
	obs := types.Stacked{}
	trace.Append(obs, nil, 1.0, false, obs)
	trace.Append(obs, nil, 1.0, true, obs)
	if !trace.Terminated() {
		t.Errorf("expected trace to report termination")
	}
	rewards := trace.Rewards()
	if len(rewards) != 2 || rewards[1] != 1.0 {
		t.Errorf("unexpected rewards %v", rewards)
	}
}
