package e2e

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wsld/internal/catalog"
	"wsld/internal/host"
	"wsld/internal/httpapi"
	"wsld/internal/lifecycle"
)

// writeDefinitions writes a temporary yaml definitions file with one entry and
// one SVG logo per name, returning the file path.
func writeDefinitions(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "logos"), 0o755); err != nil {
		t.Fatalf("mkdir logos: %v", err)
	}
	var b strings.Builder
	b.WriteString("definitions:\n")
	for _, n := range names {
		fmt.Fprintf(&b, "  - name: %s\n", n)
		fmt.Fprintf(&b, "    friendly_name: %s Linux\n", n)
		fmt.Fprintf(&b, "    publisher: e2e\n")
		fmt.Fprintf(&b, "    logo: logos/%s.svg\n", strings.ToLower(n))
		logo := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg"><title>%s</title></svg>`, n)
		p := filepath.Join(dir, "logos", strings.ToLower(n)+".svg")
		if err := os.WriteFile(p, []byte(logo), 0o644); err != nil {
			t.Fatalf("write logo %s: %v", p, err)
		}
	}
	path := filepath.Join(dir, "definitions.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write definitions: %v", err)
	}
	return path
}

// newServer boots the whole daemon stack over an in-memory host and a
// file-sourced catalog, returning the test server and the manager.
func newServer(t *testing.T, mem *host.Memory, pollInterval time.Duration, defsPath string) (*httptest.Server, *lifecycle.Manager) {
	t.Helper()
	if pollInterval <= 0 {
		pollInterval = time.Hour
	}
	cat := catalog.New(catalog.FileSource{Path: defsPath})
	mgr := lifecycle.NewWithConfig(lifecycle.Config{
		Host:         mem,
		Catalog:      cat,
		PollInterval: pollInterval,
	})
	t.Cleanup(mgr.Close)
	srv := httptest.NewServer(httpapi.NewMux(mgr))
	t.Cleanup(srv.Close)
	return srv, mgr
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPost(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
