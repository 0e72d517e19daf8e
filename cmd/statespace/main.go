// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/build"
	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/logging"
	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/must"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/domains/eightpuzzle"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/domains/hanoi"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/problem"
)

var (
	rootCmd = &cobra.Command{
		Use:     "statespace",
		Short:   "Command line state-space problem solver",
		Version: build.Version,
	}
	log = logging.Log()

	// Global flags
	output     *string
	verbose    *int
	panicOnErr *bool
)

func init() {
	panicOnErr = rootCmd.PersistentFlags().Bool("panic", false, "panic on error instead of exit code 1")
	output = rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text or json")
	verbose = rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity for logging")

	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
}

// newRegistry lists every problem domain the binary can solve.
func newRegistry() *problem.Registry {
	return problem.NewRegistry(eightpuzzle.Problem{}, hanoi.Problem{})
}

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, r)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
