package recipe

import (
	"fmt"

	"github.com/cartolab/mapstrap/action"
	"github.com/cartolab/mapstrap/graph"
	"github.com/cartolab/mapstrap/util"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// UserFileName is the recipe file looked up in the working directory for
// additional user-declared steps.
const UserFileName = "mapstrap.hcl"

// userStep is a single 'step' block of a user recipe file.
type userStep struct {
	Name     string            `hcl:"name,label"`
	Deps     []string          `hcl:"deps,optional"`
	Artifact string            `hcl:"artifact,optional"`
	Commands [][]string        `hcl:"commands"`
	Dir      string            `hcl:"dir,optional"`
	Env      map[string]string `hcl:"env,optional"`
}

type userFile struct {
	Steps []*userStep `hcl:"step,block"`
}

// evalContext exposes the pipeline parameters to expressions in the user
// recipe file.
func evalContext(p Params) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env_root":   cty.StringVal(p.EnvRoot),
			"version":    cty.StringVal(p.Version),
			"cache_dir":  cty.StringVal(p.CacheDir),
			"source_dir": cty.StringVal(p.SourceDir()),
		},
	}
}

// LoadUserSteps parses the user recipe file at `filePath` and declares its
// steps in `registry`. User steps extend the built-in pipeline; redeclaring a
// built-in step name aborts.
func LoadUserSteps(filePath string, p Params, registry *graph.Registry) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse recipe file '%s': %s", filePath, diags)
	}

	var parsed userFile
	diags = gohcl.DecodeBody(file.Body, evalContext(p), &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode recipe file '%s': %s", filePath, diags)
	}

	for _, step := range parsed.Steps {
		if len(step.Commands) == 0 {
			return fmt.Errorf("step '%s' in recipe file '%s' declares no commands", step.Name, filePath)
		}
		for _, argv := range step.Commands {
			if len(argv) == 0 {
				return fmt.Errorf("step '%s' in recipe file '%s' declares an empty command", step.Name, filePath)
			}
		}

		extraEnv := []string{}
		for _, key := range util.OrderedSlice(mapKeys(step.Env)) {
			extraEnv = append(extraEnv, key+"="+step.Env[key])
		}

		registry.Declare(&graph.Step{
			Name:     step.Name,
			Deps:     step.Deps,
			Artifact: step.Artifact,
			Action: &action.Commands{
				Desc: fmt.Sprintf("run user step '%s'", step.Name),
				Dir:  step.Dir,
				Env:  extraEnv,
				Sequence: util.MappedSlice(step.Commands, func(argv []string) action.Command {
					return action.Command{Name: argv[0], Args: argv[1:]}
				}),
			},
		})
	}
	return nil
}

func mapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
