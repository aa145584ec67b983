package benchmarks

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	saveFile string

	nObs         int
	nAction      int
	rewardReduce string
	maxEpSteps   int
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "multistep-env",
		Short: "Macro-step environment rollouts and comparisons",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 100, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 200, "Horizon of each episode in macro steps")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&nObs, "n-obs", 4, "Observation stacking window")
	rootCommand.PersistentFlags().IntVar(&nAction, "n-action", 2, "Inner steps per macro step")
	rootCommand.PersistentFlags().StringVar(&rewardReduce, "reduce", "max", "Reward reduction mode (max, min, mean, sum)")
	rootCommand.PersistentFlags().IntVar(&maxEpSteps, "max-episode-steps", 0, "Force done after this many inner steps (0 disables)")
	// adding the subcommands here
	rootCommand.AddCommand(CartpoleCommand())
	rootCommand.AddCommand(GridCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}
