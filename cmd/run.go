package cmd

import (
	"errors"
	"os"

	"github.com/cartolab/mapstrap/env"
	"github.com/cartolab/mapstrap/graph"
	"github.com/cartolab/mapstrap/log"
	"github.com/cartolab/mapstrap/recipe"

	"github.com/spf13/cobra"
)

// exitEnvMismatch is the exit code of the environment-root precondition, kept
// distinct from exit codes propagated from failed external commands.
const exitEnvMismatch = 3

var runCmd = &cobra.Command{
	Use:   "run [step]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Runs a build step and all of its prerequisites",
	Long: `Runs a build step and all of its prerequisites, in dependency order.
Steps whose output artifact already exists are skipped. Without an argument
the '` + recipe.DefaultTarget + `' step is run, which covers the whole install chain.`,
	Run: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) {
	target := recipe.DefaultTarget
	if len(args) == 1 {
		target = args[0]
	}

	params := pipelineParams()
	registry := loadRegistry(params)
	runner := graph.NewRunner(registry)

	err := runner.Run(target)
	log.IndentationLevel = 0
	if err == nil {
		log.Log("\n")
		log.Success("Done.\n")
		return
	}

	var mismatchErr *env.MismatchError
	if errors.As(err, &mismatchErr) {
		log.Error("%s.\n", mismatchErr)
		os.Exit(exitEnvMismatch)
	}

	var stepErr *graph.StepExecutionError
	if errors.As(err, &stepErr) {
		log.Error("%s.\n", stepErr)
		os.Exit(stepErr.ExitCode())
	}

	log.Fatal("%s.\n", err)
}
