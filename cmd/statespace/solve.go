// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/must"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/search"
)

var solveCmd = &cobra.Command{
	Use:   "solve PROBLEM ALGORITHM",
	Short: "Build a problem instance and solve it with the chosen algorithm",
	Long: `Build an instance of PROBLEM and solve it with ALGORITHM.

PROBLEM is a registered problem name (see 'statespace list problems').
ALGORITHM is one of: ` + strings.Join(search.Algorithms(), ", ") + `.

A search that exhausts the state space is a normal failure outcome, not an error;
the command exits 0 either way.`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		p := must.Must1(newRegistry().Get(args[0]))
		space := must.Must1(p.Space(parseParams(*params)))

		var opts []search.Option
		if *revisits {
			opts = append(opts, search.Revisits())
		}
		if *increment > 0 {
			opts = append(opts, search.Increment(*increment))
		}
		if *maxDepth > 0 {
			opts = append(opts, search.MaxDepth(*maxDepth))
		}
		if *maxSteps > 0 {
			opts = append(opts, search.MaxSteps(*maxSteps))
		}
		if *seed != 0 {
			opts = append(opts, search.Seed(*seed))
		}
		solver := must.Must1(search.New(args[1], space, opts...))

		log.V(1).Info("solving", "problem", args[0], "algorithm", solver.Name())
		start := time.Now()
		outcome := must.Must1(solver.Solve())
		elapsed := time.Since(start)

		printOutcome(p, space.Initial().State(), space.Goal().State(), outcome, elapsed)
	},
}

var (
	params    *[]string
	increment *int
	maxDepth  *int
	maxSteps  *int
	seed      *int64
	revisits  *bool
)

func init() {
	params = solveCmd.Flags().StringArrayP("param", "p", nil, "Problem parameter as name=value, repeatable (e.g. -p shuffle=10)")
	increment = solveCmd.Flags().Int("increment", 0, "Depth increment for iddfs")
	maxDepth = solveCmd.Flags().Int("max-depth", 0, "Depth bound for iddfs, 0 for unbounded")
	maxSteps = solveCmd.Flags().Int("max-steps", 0, "Step bound for random, 0 for unbounded")
	seed = solveCmd.Flags().Int64("seed", 0, "Seed for the random strategy")
	revisits = solveCmd.Flags().Bool("revisits", false, "Disable duplicate suppression")
	rootCmd.AddCommand(solveCmd)
}

func parseParams(pairs []string) problem.Config {
	cfg := problem.Config{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			panic(fmt.Errorf("invalid parameter %q, expected name=value", pair))
		}
		cfg[name] = value
	}
	return cfg
}

func printOutcome(p problem.Problem, initial, goal any, outcome search.Outcome, elapsed time.Duration) {
	var names []string
	for _, op := range outcome.Operators() {
		names = append(names, op.Name())
	}
	switch *output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		must.Must(enc.Encode(map[string]any{
			"algorithm": outcome.Algorithm,
			"success":   outcome.Success(),
			"reason":    outcome.Reason,
			"operators": names,
			"expanded":  outcome.Expanded,
			"elapsed":   elapsed.String(),
		}))
	default:
		fmt.Println("Initial state:")
		fmt.Println(p.Render(initial))
		fmt.Println("Goal state:")
		fmt.Println(p.Render(goal))
		if outcome.Success() {
			fmt.Printf("%v: solution with %v operators, %v states expanded in %v\n",
				outcome.Algorithm, len(names), outcome.Expanded, elapsed)
			fmt.Println(strings.Join(names, ", "))
		} else {
			fmt.Printf("%v: no solution: %v (%v states expanded in %v)\n",
				outcome.Algorithm, outcome.Reason, outcome.Expanded, elapsed)
		}
	}
}
