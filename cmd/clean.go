package cmd

import (
	"github.com/cartolab/mapstrap/graph"
	"github.com/cartolab/mapstrap/log"
	"github.com/cartolab/mapstrap/util"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [steps]",
	Short: "Removes step artifacts so the steps run again",
	Long: `Removes the output artifacts of the given steps (all steps when none are
given). A failed step can leave a partial artifact behind that would be
treated as satisfied on the next run; cleaning the step forces it to run
again.`,
	Run: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) {
	registry := loadRegistry(pipelineParams())

	steps := []*graph.Step{}
	if len(args) == 0 {
		steps = registry.Steps()
	} else {
		for _, name := range args {
			step, ok := registry.Lookup(name)
			if !ok {
				log.Fatal("Unknown step '%s'.\n", name)
			}
			steps = append(steps, step)
		}
	}

	for _, step := range steps {
		if step.Artifact == "" || !util.PathExists(step.Artifact) {
			continue
		}
		log.Log("Removing artifact '%s' of step '%s'.\n", step.Artifact, step.Name)
		util.RemoveDir(step.Artifact)
	}
	log.Success("Done.\n")
}
