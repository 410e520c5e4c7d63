package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "Lists all declared build steps",
	Long:  `Lists all declared build steps with their prerequisites and artifacts.`,
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	registry := loadRegistry(pipelineParams())

	for _, step := range registry.Steps() {
		fmt.Printf("  %s  (%s)\n", step.Name, step.Action.Describe())
		if len(step.Deps) > 0 {
			fmt.Printf("      depends on: %s\n", strings.Join(step.Deps, ", "))
		}
		if step.Artifact != "" {
			fmt.Printf("      artifact:   %s\n", step.Artifact)
		}
	}
}
