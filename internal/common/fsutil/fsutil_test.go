package fsutil

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}

	// paths without ~ pass through untouched
	if got, err := ExpandHome("/etc/wsld/definitions.yaml"); err != nil || got != "/etc/wsld/definitions.yaml" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}

	// bare ~
	p, err := ExpandHome("~")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if p != home {
		t.Fatalf("expected %q, got %q", home, p)
	}

	// ~/subdir
	exp, err := ExpandHome("~/definitions.yaml")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if exp != filepath.Join(home, "definitions.yaml") {
		t.Fatalf("unexpected expanded path: %q", exp)
	}
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	if !PathExists(dir) {
		t.Fatalf("existing dir reported missing")
	}
	if PathExists(filepath.Join(dir, "nope")) {
		t.Fatalf("missing path reported present")
	}
}
