package action

import (
	"fmt"
	"os"
	"os/exec"
)

// Query runs a single command, captures its output and prints it as a
// report. Unlike other actions it has no artifact and performs no writes.
type Query struct {
	Desc    string
	Command Command
}

// Describe returns a short human-readable summary of the action.
func (a *Query) Describe() string {
	return a.Desc
}

// Run executes the query and prints the captured output to os.Stdout.
func (a *Query) Run() error {
	cmd := exec.Command(a.Command.Name, a.Command.Args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("command '%s' failed: %w", a.Command, err)
	}
	os.Stdout.Write(out)
	return nil
}
