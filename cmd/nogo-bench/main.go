// Command nogo-bench plays a batch of self-play games and reports
// throughput. Each individual game's search is single-threaded, matching
// the engine's cooperative scheduling model; the games themselves are fanned
// out across one worker per CPU purely to make benchmarking faster, the way
// the old multi-robot harness split samples across slave robots.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/guagua-go/nogo"
)

type gameResult struct {
	moves   int
	winner  nogo.Color
	elapsed time.Duration
}

func playGame(cfg nogo.Config, seed uint64) gameResult {
	rng := nogo.NewRand(seed)
	agent := nogo.MCTSAgent{Config: cfg, Rand: rng}
	session := nogo.NewSession(agent, rng)
	start := time.Now()
	moves := 0
	side := nogo.Black
	for {
		p := session.GenMove(side)
		if p == nogo.Resign {
			return gameResult{moves: moves, winner: side.Opponent(), elapsed: time.Since(start)}
		}
		moves++
		side = side.Opponent()
	}
}

func main() {
	var (
		gameCount   int
		minPlayouts int
		timeBudget  time.Duration
		heuristic   bool
	)

	root := &cobra.Command{
		Use:   "nogo-bench",
		Short: "self-play throughput benchmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stderr, "[nogo-bench] ", log.Ltime)
			cfg := nogo.Config{MinPlayouts: minPlayouts, TimeBudget: timeBudget, Heuristic: heuristic}

			workers := runtime.GOMAXPROCS(runtime.NumCPU())
			if workers > gameCount {
				workers = gameCount
			}
			jobs := make(chan uint64, gameCount)
			for i := 0; i < gameCount; i++ {
				jobs <- uint64(i + 1)
			}
			close(jobs)

			done := make(chan gameResult, gameCount)
			for w := 0; w < workers; w++ {
				go func() {
					for seed := range jobs {
						done <- playGame(cfg, seed)
					}
				}()
			}

			var totalMoves int
			var totalElapsed time.Duration
			for i := 0; i < gameCount; i++ {
				r := <-done
				totalMoves += r.moves
				totalElapsed += r.elapsed
				logger.Printf("game %d: %d moves, winner %s, %s", i+1, r.moves, r.winner, r.elapsed)
			}
			fmt.Printf("games=%d avg_moves=%.1f avg_time=%s\n",
				gameCount, float64(totalMoves)/float64(gameCount), totalElapsed/time.Duration(gameCount))
			return nil
		},
	}

	root.Flags().IntVar(&gameCount, "games", 10, "number of self-play games")
	root.Flags().IntVar(&minPlayouts, "min-playouts", 500, "minimum playouts per genmove")
	root.Flags().DurationVar(&timeBudget, "time-budget", 200*time.Millisecond, "minimum search time per genmove")
	root.Flags().BoolVar(&heuristic, "two-go-heuristic", true, "prefer two-go points during rollout")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
