// Copyright: This file is part of StateSpaceFW, released under https://github.com/vojtechpavlu/StateSpaceFW/blob/main/LICENSE

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vojtechpavlu/StateSpaceFW/internal/pkg/must"
	"github.com/vojtechpavlu/StateSpaceFW/pkg/search"
)

var listCmd = &cobra.Command{
	Use:       "list [problems|algorithms]",
	Short:     "List the available problems or algorithms",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"problems", "algorithms"},
	Run: func(_ *cobra.Command, args []string) {
		switch args[0] {
		case "problems":
			switch *output {
			case "json":
				type info struct {
					Name        string `json:"name"`
					Description string `json:"description"`
				}
				var infos []info
				for _, p := range newRegistry().All() {
					infos = append(infos, info{Name: p.Name(), Description: p.Description()})
				}
				printJSON(infos)
			default:
				for _, p := range newRegistry().All() {
					fmt.Printf("%v: %v\n", p.Name(), p.Description())
				}
			}
		case "algorithms":
			switch *output {
			case "json":
				printJSON(search.Algorithms())
			default:
				for _, name := range search.Algorithms() {
					fmt.Println(name)
				}
			}
		}
	},
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	must.Must(enc.Encode(v))
}

func init() {
	rootCmd.AddCommand(listCmd)
}
