package graph

import (
	"github.com/cartolab/mapstrap/log"
	"github.com/cartolab/mapstrap/util"
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Runner resolves and executes steps so that every prerequisite is satisfied
// strictly before its dependents run.
type Runner struct {
	registry  *Registry
	satisfied map[string]bool
}

// NewRunner probes the declared artifacts once and records which steps are
// already satisfied. The probe is the only incremental-build check: artifact
// presence, not content.
func NewRunner(registry *Registry) *Runner {
	satisfied := map[string]bool{}
	for _, step := range registry.Steps() {
		if step.Artifact != "" && util.PathExists(step.Artifact) {
			log.Debug("Artifact '%s' of step '%s' already exists.\n", step.Artifact, step.Name)
			satisfied[step.Name] = true
		}
	}
	return &Runner{registry: registry, satisfied: satisfied}
}

// Satisfied reports whether the step's artifact already exists.
func (r *Runner) Satisfied(name string) bool {
	return r.satisfied[name]
}

// Run ensures the target step and all its prerequisites are satisfied, in
// dependency order. It halts at the first failing step without cleaning up
// partial artifacts.
func (r *Runner) Run(target string) error {
	if _, ok := r.registry.Lookup(target); !ok {
		return &UnknownStepError{Step: target}
	}
	return r.run(target, map[string]visitState{}, nil)
}

func (r *Runner) run(name string, state map[string]visitState, stack []string) error {
	step, ok := r.registry.Lookup(name)
	if !ok {
		return &UnknownStepError{Step: name}
	}

	if r.satisfied[name] {
		log.Debug("Step '%s' is already satisfied. Skipping.\n", name)
		return nil
	}

	switch state[name] {
	case visited:
		return nil
	case visiting:
		return &CycleError{Steps: append(cyclePrefix(stack, name), name)}
	}
	state[name] = visiting
	stack = append(stack, name)

	for _, dep := range step.Deps {
		if err := r.run(dep, state, stack); err != nil {
			return err
		}
	}
	state[name] = visited

	if step.Pre != nil {
		if err := step.Pre(); err != nil {
			return err
		}
	}

	log.IndentationLevel = 0
	log.Log("\nStep '%s': %s.\n", name, step.Action.Describe())
	log.IndentationLevel = 1

	if err := step.Action.Run(); err != nil {
		return &StepExecutionError{Step: name, Err: err}
	}

	if step.Artifact != "" && !util.PathExists(step.Artifact) {
		log.Warning("Step '%s' completed but did not produce its artifact '%s'.\n", name, step.Artifact)
	} else {
		r.satisfied[name] = step.Artifact != ""
	}
	log.Success("Step '%s' done.\n", name)
	return nil
}

// cyclePrefix trims the stack down to the part belonging to the cycle.
func cyclePrefix(stack []string, name string) []string {
	for i, s := range stack {
		if s == name {
			return append([]string{}, stack[i:]...)
		}
	}
	return append([]string{}, stack...)
}
