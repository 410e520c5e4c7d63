// Package graph executes a directed acyclic graph of named build steps in
// dependency order. Each step declares the artifact it produces; a step whose
// artifact already exists on disk is considered satisfied and is skipped.
package graph

import (
	"github.com/cartolab/mapstrap/action"
	"github.com/cartolab/mapstrap/util"
)

// Step is a named, idempotent unit of build work.
type Step struct {
	Name string

	// Deps are the names of steps that must be satisfied before this one runs.
	Deps []string

	// Artifact is the filesystem path (file or directory) whose existence
	// marks the step as satisfied. A step with no artifact always runs.
	Artifact string

	// Pre is an optional precondition checked right before the action runs.
	// Its error aborts the run unchanged.
	Pre func() error

	Action action.Action
}

// Registry holds the declared step set. Steps are declared statically before
// any execution; declaring the same name twice aborts.
type Registry struct {
	steps util.OrderedMap[string, *Step]
}

// NewRegistry returns an empty step registry.
func NewRegistry() *Registry {
	return &Registry{steps: util.NewOrderedMap[string, *Step]()}
}

// Declare adds a step to the registry.
func (r *Registry) Declare(step *Step) {
	r.steps.Insert(step.Name, step)
}

// Lookup returns the step with the given name.
func (r *Registry) Lookup(name string) (*Step, bool) {
	return r.steps.Lookup(name)
}

// Steps returns all declared steps ordered by name.
func (r *Registry) Steps() []*Step {
	return r.steps.Values()
}

// Names returns the ordered names of all declared steps.
func (r *Registry) Names() []string {
	return r.steps.Keys()
}
