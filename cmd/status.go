package cmd

import (
	"os"

	"github.com/cartolab/mapstrap/graph"
	"github.com/cartolab/mapstrap/log"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Args:  cobra.NoArgs,
	Short: "Prints a status report of all build steps and their artifacts",
	Long:  `Prints a status report of all build steps and their artifacts.`,
	Run:   runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	params := pipelineParams()
	log.Log("Target environment: '%s'.\n", params.EnvRoot)
	log.Log("Release: %s.\n", params.Version)

	registry := loadRegistry(params)
	runner := graph.NewRunner(registry)

	for _, step := range registry.Steps() {
		log.IndentationLevel = 0
		log.Log("\nChecking step '%s':\n", step.Name)
		log.IndentationLevel = 1

		if step.Artifact == "" {
			log.Log("Step declares no artifact and always runs.\n")
			continue
		}
		if runner.Satisfied(step.Name) {
			log.Success("Artifact '%s' exists.\n", step.Artifact)
		} else {
			log.Warning("Artifact '%s' is missing.\n", step.Artifact)
		}
	}

	log.IndentationLevel = 0
	log.Log("\n")
	if log.ErrorOccured() {
		log.Error("Errors found while checking the step status.\n")
		os.Exit(1)
	}
	log.Success("Done.\n")
}
