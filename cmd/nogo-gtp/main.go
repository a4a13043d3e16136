// Command nogo-gtp speaks GTP over stdin/stdout so any Go Text Protocol
// client (gogui, a tournament manager, a human typing commands by hand)
// can play NoGo against the engine.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/guagua-go/nogo"
)

func main() {
	var (
		minPlayouts int
		timeBudget  time.Duration
		heuristic   bool
		seed        int64
	)

	root := &cobra.Command{
		Use:   "nogo-gtp",
		Short: "GTP-speaking NoGo engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := nogo.NewRand(uint64(seed))
			cfg := nogo.Config{
				MinPlayouts: minPlayouts,
				TimeBudget:  timeBudget,
				Heuristic:   heuristic,
			}
			agent := nogo.MCTSAgent{Config: cfg, Rand: rng}
			session := nogo.NewSession(agent, rng)
			logger := log.New(os.Stderr, "[nogo] ", log.Ltime)
			engine := nogo.NewEngine(session, logger)
			engine.Run(os.Stdin, os.Stdout)
			return nil
		},
	}

	root.Flags().IntVar(&minPlayouts, "min-playouts", 10000, "minimum playouts per genmove")
	root.Flags().DurationVar(&timeBudget, "time-budget", time.Second, "minimum search time per genmove")
	root.Flags().BoolVar(&heuristic, "two-go-heuristic", true, "prefer two-go points during rollout")
	root.Flags().Int64Var(&seed, "seed", 0, "PRNG seed; 0 picks one from the clock")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
