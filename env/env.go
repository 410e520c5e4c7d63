// Package env inspects the target Python environment that basemap and its
// native GEOS dependency are installed into.
package env

import (
	"fmt"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/cartolab/mapstrap/log"
)

// MismatchError reports that the active Python interpreter does not live
// inside the target environment root. Installing would write into the wrong
// environment, so install-phase steps must not run.
type MismatchError struct {
	EnvRoot     string
	Interpreter string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("active interpreter '%s' is not inside the environment root '%s'", e.Interpreter, e.EnvRoot)
}

// Interpreter returns the path of the Python interpreter that is currently
// active on PATH.
func Interpreter() (string, error) {
	for _, name := range []string{"python", "python3"} {
		interpreter, err := exec.LookPath(name)
		if err == nil {
			return filepath.Abs(interpreter)
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH")
}

// Validate checks that the active interpreter resolves to a binary inside
// `envRoot`. This must pass before anything is installed into the environment.
func Validate(envRoot string) error {
	interpreter, err := Interpreter()
	if err != nil {
		return err
	}
	log.Debug("Active interpreter is '%s'.\n", interpreter)
	return checkInterpreter(envRoot, interpreter)
}

func checkInterpreter(envRoot, interpreter string) error {
	root := filepath.Clean(envRoot)
	if root == "" || root == "." {
		return fmt.Errorf("no environment root configured")
	}
	if !strings.HasPrefix(filepath.Clean(interpreter), root+string(filepath.Separator)) {
		return &MismatchError{EnvRoot: root, Interpreter: interpreter}
	}
	return nil
}

// PythonTag returns the 'X.Y' version tag of the active interpreter,
// e.g. "2.7" or "3.8". The tag determines the site-packages directory.
func PythonTag() (string, error) {
	out, err := exec.Command("python", "-c", `import sys; print("%d.%d" % sys.version_info[:2])`).Output()
	if err != nil {
		out, err = exec.Command("python3", "-c", `import sys; print("%d.%d" % sys.version_info[:2])`).Output()
	}
	if err != nil {
		return "", fmt.Errorf("failed to query python version: %s", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// SitePackages returns the site-packages directory of the environment for
// the given interpreter tag.
func SitePackages(envRoot, pythonTag string) string {
	return path.Join(envRoot, "lib", "python"+pythonTag, "site-packages")
}
