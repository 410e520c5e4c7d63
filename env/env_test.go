package env

import (
	"errors"
	"testing"
)

func TestCheckInterpreterInsideRoot(t *testing.T) {
	if err := checkInterpreter("/opt/envs/maps", "/opt/envs/maps/bin/python"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestCheckInterpreterOutsideRoot(t *testing.T) {
	err := checkInterpreter("/opt/envs/maps", "/usr/bin/python")
	if err == nil {
		t.Fatal("expected a mismatch error")
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected MismatchError, got %T", err)
	}
	if mismatch.EnvRoot != "/opt/envs/maps" || mismatch.Interpreter != "/usr/bin/python" {
		t.Fatalf("unexpected error fields: %+v", mismatch)
	}
}

func TestCheckInterpreterPrefixIsPathAware(t *testing.T) {
	// '/opt/envs/maps-old' shares a string prefix with '/opt/envs/maps' but
	// is a different environment.
	err := checkInterpreter("/opt/envs/maps", "/opt/envs/maps-old/bin/python")
	if err == nil {
		t.Fatal("expected a mismatch error")
	}
}

func TestCheckInterpreterEmptyRoot(t *testing.T) {
	err := checkInterpreter("", "/usr/bin/python")
	if err == nil {
		t.Fatal("expected an error for an unset environment root")
	}
	var mismatch *MismatchError
	if errors.As(err, &mismatch) {
		t.Fatal("an unset root is a configuration error, not a mismatch")
	}
}

func TestSitePackages(t *testing.T) {
	got := SitePackages("/opt/envs/maps", "2.7")
	want := "/opt/envs/maps/lib/python2.7/site-packages"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}
