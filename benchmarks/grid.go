package benchmarks

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/multistep-env/grid"
	"github.com/zeu5/multistep-env/multistep"
	"github.com/zeu5/multistep-env/policies"
	"github.com/zeu5/multistep-env/types"
)

// Grid compares a random policy against the softmax policy on the
// multi-room grid world.
func Grid(height, width, rooms int) error {
	doors := []grid.Door{
		{From: grid.Position{I: height - 1, J: width - 1, K: 0}, To: grid.Position{I: 0, J: 0, K: 1}},
		{From: grid.Position{I: height - 1, J: width - 1, K: 1}, To: grid.Position{I: 0, J: 0, K: 2}},
	}
	goal := grid.Position{I: height - 1, J: width - 1, K: rooms - 1}

	newStacked := func() (types.StackedEnvironment, types.Space, error) {
		env := grid.NewEnvironment(height, width, rooms, goal, doors...)
		ms, err := multistep.NewMultiStep(env, multistep.Config{
			NObs:            nObs,
			NAction:         nAction,
			RewardReduce:    multistep.ReduceMode(rewardReduce),
			MaxEpisodeSteps: maxEpSteps,
		})
		if err != nil {
			return nil, nil, err
		}
		return ms, env.ActionSpace(), nil
	}

	c := types.NewComparison(ReturnsAnalyzer, ReturnsComparator(saveFile))

	ms, actSpace, err := newStacked()
	if err != nil {
		return err
	}
	c.AddExperiment(types.NewExperiment("Grid-Random", &types.AgentConfig{
		Episodes:    episodes,
		Horizon:     horizon,
		Policy:      policies.NewRandomPolicy(actSpace),
		Environment: ms,
	}))

	ms, actSpace, err = newStacked()
	if err != nil {
		return err
	}
	c.AddExperiment(types.NewExperiment("Grid-SoftMax", &types.AgentConfig{
		Episodes:    episodes,
		Horizon:     horizon,
		Policy:      policies.NewSoftMaxPolicy(actSpace, 6, 0.3, 0.7),
		Environment: ms,
	}))

	return c.Run()
}

func GridCommand() *cobra.Command {
	var height int
	var width int
	var rooms int

	cmd := &cobra.Command{
		Use: "grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Grid(height, width, rooms)
		},
	}
	cmd.PersistentFlags().IntVar(&height, "height", 10, "Height of each room")
	cmd.PersistentFlags().IntVar(&width, "width", 10, "Width of each room")
	cmd.PersistentFlags().IntVar(&rooms, "rooms", 3, "Number of rooms")
	return cmd
}
