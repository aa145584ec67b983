package benchmarks

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zeu5/multistep-env/cartpole"
	"github.com/zeu5/multistep-env/grid"
	"github.com/zeu5/multistep-env/remote"
	"github.com/zeu5/multistep-env/types"
)

// Serve hosts one environment over HTTP until interrupted.
func Serve(addr, envName string, seed uint64) error {
	var env types.Environment
	switch envName {
	case "cartpole":
		env = cartpole.NewEnvironment(seed)
	case "grid":
		env = grid.NewEnvironment(10, 10, 3, grid.Position{I: 9, J: 9, K: 2},
			grid.Door{From: grid.Position{I: 9, J: 9, K: 0}, To: grid.Position{I: 0, J: 0, K: 1}},
			grid.Door{From: grid.Position{I: 9, J: 9, K: 1}, To: grid.Position{I: 0, J: 0, K: 2}})
	default:
		return fmt.Errorf("unknown environment %q", envName)
	}

	server := remote.NewEnvServer(addr, env)
	server.Start()
	fmt.Printf("Serving %s on %s\n", envName, addr)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return server.Stop()
}

func ServeCommand() *cobra.Command {
	var addr string
	var envName string
	var seed uint64

	cmd := &cobra.Command{
		Use: "serve",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Serve(addr, envName, seed)
		},
	}
	cmd.PersistentFlags().StringVar(&addr, "addr", "127.0.0.1:7007", "Address to listen on")
	cmd.PersistentFlags().StringVar(&envName, "env", "cartpole", "Environment to serve (cartpole, grid)")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "Seed for the environment")
	return cmd
}
