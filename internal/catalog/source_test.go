package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestFileSourceYAML(t *testing.T) {
	d := t.TempDir()
	writeTempFile(t, d, "tux.svg", "<svg/>")
	p := writeTempFile(t, d, "defs.yaml",
		"definitions:\n  - name: Ubuntu\n    friendly_name: Ubuntu\n    logo: tux.svg\n  - name: Debian\n")
	defs, err := FileSource{Path: p}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if string(defs["Ubuntu"].Logo) != "<svg/>" {
		t.Fatalf("logo not resolved relative to the file: %q", defs["Ubuntu"].Logo)
	}
	if len(defs["Debian"].Logo) != 0 {
		t.Fatal("definition without logo field must have empty payload")
	}
}

func TestFileSourceJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "defs.json",
		`{"definitions":[{"name":"kali-linux","friendly_name":"Kali Linux Rolling"}]}`)
	defs, err := FileSource{Path: p}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if defs["kali-linux"].FriendlyName != "Kali Linux Rolling" {
		t.Fatalf("unexpected defs: %+v", defs)
	}
}

func TestFileSourceTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "defs.toml",
		"[[definitions]]\nname = \"Debian\"\nfriendly_name = \"Debian GNU/Linux\"\n")
	defs, err := FileSource{Path: p}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if defs["Debian"].FriendlyName != "Debian GNU/Linux" {
		t.Fatalf("unexpected defs: %+v", defs)
	}
}

func TestFileSourceErrors(t *testing.T) {
	d := t.TempDir()

	if _, err := (FileSource{Path: filepath.Join(d, "missing.yaml")}).Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}

	p := writeTempFile(t, d, "defs.txt", "whatever")
	if _, err := (FileSource{Path: p}).Load(context.Background()); err == nil ||
		!strings.Contains(err.Error(), "unsupported definitions extension") {
		t.Fatal("expected unsupported extension error")
	}

	p = writeTempFile(t, d, "dup.yaml", "definitions:\n  - name: A\n  - name: A\n")
	if _, err := (FileSource{Path: p}).Load(context.Background()); err == nil ||
		!strings.Contains(err.Error(), "duplicate definition name") {
		t.Fatal("expected duplicate name error")
	}

	p = writeTempFile(t, d, "empty.yaml", "definitions:\n  - friendly_name: NoName\n")
	if _, err := (FileSource{Path: p}).Load(context.Background()); err == nil ||
		!strings.Contains(err.Error(), "empty name") {
		t.Fatal("expected empty name error")
	}

	p = writeTempFile(t, d, "badlogo.yaml", "definitions:\n  - name: A\n    logo: nope.svg\n")
	if _, err := (FileSource{Path: p}).Load(context.Background()); err == nil {
		t.Fatal("expected missing logo error")
	}
}
