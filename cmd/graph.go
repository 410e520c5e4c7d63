package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Args:  cobra.NoArgs,
	Short: "Prints the build-step dependency graph in DOT format",
	Long:  `Prints the build-step dependency graph in DOT format.`,
	Run:   runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) {
	registry := loadRegistry(pipelineParams())

	fmt.Println("digraph steps {")
	for _, step := range registry.Steps() {
		if len(step.Deps) == 0 {
			fmt.Printf("  %q;\n", step.Name)
			continue
		}
		for _, dep := range step.Deps {
			fmt.Printf("  %q -> %q;\n", dep, step.Name)
		}
	}
	fmt.Println("}")
}
