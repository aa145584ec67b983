package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeu5/multistep-env/cartpole"
	"github.com/zeu5/multistep-env/multistep"
	"github.com/zeu5/multistep-env/policies"
	"github.com/zeu5/multistep-env/remote"
	"github.com/zeu5/multistep-env/types"
)

// Cartpole compares reward reduction modes on the cartpole environment
// with a random policy.
func Cartpole(remoteAddr string, seed uint64) error {
	newEnv := func() (types.Environment, error) {
		if remoteAddr != "" {
			return remote.Connect("http://"+remoteAddr, nil)
		}
		env := cartpole.NewEnvironment(seed)
		return env, nil
	}

	c := types.NewComparison(ReturnsAnalyzer, ReturnsComparator(saveFile))
	for i, mode := range []multistep.ReduceMode{
		multistep.ReduceMax,
		multistep.ReduceMean,
		multistep.ReduceSum,
	} {
		env, err := newEnv()
		if err != nil {
			return err
		}
		ms, err := multistep.NewMultiStep(env, multistep.Config{
			NObs:            nObs,
			NAction:         nAction,
			RewardReduce:    mode,
			MaxEpisodeSteps: maxEpSteps,
		})
		if err != nil {
			return err
		}
		c.AddExperiment(types.NewExperiment(
			fmt.Sprintf("Cartpole-Random-%s", mode),
			&types.AgentConfig{
				Episodes:    episodes,
				Horizon:     horizon,
				Policy:      policies.NewRandomPolicyWithSeed(env.ActionSpace(), seed+uint64(i)),
				Environment: ms,
			},
		))
	}
	return c.Run()
}

func CartpoleCommand() *cobra.Command {
	var remoteAddr string
	var seed uint64

	cmd := &cobra.Command{
		Use: "cartpole",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Cartpole(remoteAddr, seed)
		},
	}
	cmd.PersistentFlags().StringVar(&remoteAddr, "remote", "", "Address of a served environment instead of a local one")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "Seed for the environment")
	return cmd
}
