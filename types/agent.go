package types

import "fmt"

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment StackedEnvironment
}

// RL Agent configured with the corresponding
// policy and stacked environment
type Agent struct {
	config *AgentConfig
	// collects the traces of the run
	// Only populated if the Run function is invoked
	traces      []*Trace
	policy      Policy
	environment StackedEnvironment
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		traces:      make([]*Trace, config.Episodes),
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Run the agent for the specified number of episodes and horizon
func (a *Agent) Run() error {
	for i := 0; i < a.config.Episodes; i++ {
		trace, err := a.runEpisode(i)
		if err != nil {
			return fmt.Errorf("episode %d: %w", i, err)
		}
		a.traces[i] = trace
	}
	return nil
}

// run a single episode and return the resulting trace
func (a *Agent) runEpisode(episode int) (*Trace, error) {
	obs, err := a.environment.Reset()
	if err != nil {
		return nil, err
	}
	trace := NewTrace()
	nActions := a.environment.ActionsPerStep()

	for i := 0; i < a.config.Horizon; i++ {
		actions := make([]Action, 0, nActions)
		for j := 0; j < nActions; j++ {
			action, ok := a.policy.NextAction(i, obs)
			if !ok {
				break
			}
			actions = append(actions, action)
		}
		if len(actions) != nActions {
			break
		}
		next, reward, done, _, err := a.environment.Step(actions)
		if err != nil {
			return nil, err
		}
		a.policy.Update(i, obs, actions, next, reward)
		trace.Append(obs, actions, reward, done, next)
		obs = next
		if done {
			break
		}
	}
	a.policy.UpdateIteration(episode, trace)

	return trace, nil
}
