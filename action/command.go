package action

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/cartolab/mapstrap/log"
)

// Command is a single external command invocation.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Commands runs a sequence of external commands in order, stopping at the
// first failure. All commands share the working directory and the extra
// environment.
type Commands struct {
	Desc     string
	Dir      string
	Env      []string
	Sequence []Command
}

// Describe returns a short human-readable summary of the action.
func (a *Commands) Describe() string {
	return a.Desc
}

// Run executes the command sequence. The commands inherit the current
// environment with `Env` entries appended, and write directly to the
// standard streams.
func (a *Commands) Run() error {
	for _, c := range a.Sequence {
		log.Log("Running '%s'.\n", c)
		cmd := exec.Command(c.Name, c.Args...)
		cmd.Dir = a.Dir
		if len(a.Env) > 0 {
			cmd.Env = append(os.Environ(), a.Env...)
		}
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("command '%s' failed: %w", c, err)
		}
	}
	return nil
}
