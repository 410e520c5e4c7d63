package action

import (
	"errors"
	"os"
	"os/exec"
	"path"
	"testing"
)

func TestCommandsRunInOrder(t *testing.T) {
	dir := t.TempDir()
	commands := Commands{
		Desc: "touch files",
		Dir:  dir,
		Sequence: []Command{
			{Name: "touch", Args: []string{"first"}},
			{Name: "touch", Args: []string{"second"}},
		},
	}
	if err := commands.Run(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, name := range []string{"first", "second"} {
		if _, err := os.Stat(path.Join(dir, name)); err != nil {
			t.Fatalf("file '%s' missing: %s", name, err)
		}
	}
}

func TestCommandsStopAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	commands := Commands{
		Desc: "fail in the middle",
		Dir:  dir,
		Sequence: []Command{
			{Name: "false"},
			{Name: "touch", Args: []string{"after"}},
		},
	}
	if err := commands.Run(); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := os.Stat(path.Join(dir, "after")); err == nil {
		t.Fatal("commands after a failure must not run")
	}
}

func TestCommandsExtraEnvironment(t *testing.T) {
	dir := t.TempDir()
	commands := Commands{
		Desc: "write env var",
		Dir:  dir,
		Env:  []string{"GEOS_DIR=/opt/envs/maps"},
		Sequence: []Command{
			{Name: "sh", Args: []string{"-c", "echo $GEOS_DIR > geos_dir"}},
		},
	}
	if err := commands.Run(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	content, err := os.ReadFile(path.Join(dir, "geos_dir"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "/opt/envs/maps\n" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestCommandsExitStatusIsPreserved(t *testing.T) {
	commands := Commands{
		Desc:     "exit 3",
		Sequence: []Command{{Name: "sh", Args: []string{"-c", "exit 3"}}},
	}
	err := commands.Run()
	if err == nil {
		t.Fatal("expected an error")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected a wrapped ExitError, got %T", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Fatalf("unexpected exit code: %d", exitErr.ExitCode())
	}
}

func TestQueryPrintsOutput(t *testing.T) {
	query := Query{
		Desc:    "echo report",
		Command: Command{Name: "echo", Args: []string{"Name: basemap"}},
	}
	if err := query.Run(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestQueryFails(t *testing.T) {
	query := Query{
		Desc:    "failing query",
		Command: Command{Name: "false"},
	}
	if err := query.Run(); err == nil {
		t.Fatal("expected an error")
	}
}
