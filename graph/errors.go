package graph

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// UnknownStepError reports a requested step name that is not declared.
type UnknownStepError struct {
	Step string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown step '%s'", e.Step)
}

// StepExecutionError reports that a step's action failed. The underlying
// error of a failed external command is preserved so its exit status can be
// propagated.
type StepExecutionError struct {
	Step string
	Err  error
}

func (e *StepExecutionError) Error() string {
	return fmt.Sprintf("step '%s' failed: %s", e.Step, e.Err)
}

func (e *StepExecutionError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status of the failed external command, or 1 if
// the failure did not come from an external command.
func (e *StepExecutionError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

// CycleError reports a dependency cycle in the declared step set.
type CycleError struct {
	Steps []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Steps, " -> "))
}
