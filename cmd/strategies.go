package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yschiang/sampling-wizard/sampling"
	_ "github.com/yschiang/sampling-wizard/sampling/strategy"
)

// strategiesCmd lists the registered selection strategies
var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the registered selection strategies",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range sampling.StrategyIDs() {
			engine, ok := sampling.Lookup(id)
			if !ok {
				continue
			}
			fmt.Printf("%s (version %s)\n", id, engine.Version())
		}
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
