package wslctl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wsld/pkg/types"
)

// apiStub serves canned daemon responses and records the last request.
type apiStub struct {
	lastMethod string
	lastPath   string
}

func (s *apiStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lastMethod = r.Method
		s.lastPath = r.URL.Path
		switch {
		case r.URL.Path == "/v1/distributions" && r.Method == http.MethodGet:
			fmt.Fprint(w, `{"distributions":[`+
				`{"name":"Ubuntu-24.04","running":true,"friendly_name":"Ubuntu 24.04 LTS","has_definition":true},`+
				`{"name":"Custom","running":false,"has_definition":false}]}`)
		case r.URL.Path == "/v1/distributions/available":
			fmt.Fprint(w, `{"definitions":[{"name":"Debian","friendly_name":"Debian GNU/Linux","publisher":"Debian Project"}]}`)
		case r.URL.Path == "/v1/distributions/running":
			fmt.Fprint(w, `{"running":["Ubuntu-24.04"]}`)
		case r.URL.Path == "/v1/distributions/watch":
			w.Header().Set("Content-Type", "application/x-ndjson")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, `{"running":["Ubuntu-24.04"],"at":"2025-01-02T03:04:05Z"}`)
			fmt.Fprintln(w, `{"running":[],"at":"2025-01-02T03:05:05Z"}`)
		case r.URL.Path == "/v1/distributions/Ubuntu-24.04":
			fmt.Fprint(w, `{"name":"Ubuntu-24.04","running":true,"friendly_name":"Ubuntu 24.04 LTS","has_definition":true}`)
		case r.URL.Path == "/v1/status":
			fmt.Fprint(w, `{"ready":true,"registered":2,"running":1,"catalog_size":11,"poll_interval_seconds":60}`)
		case strings.HasSuffix(r.URL.Path, "/launch") && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusAccepted)
			fmt.Fprint(w, `{"status":"dispatched","op":"launch","distribution":"Ubuntu-24.04"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":"distribution not found: `+strings.TrimPrefix(r.URL.Path, "/v1/distributions/")+`","code":404}`)
		}
	}
}

func newStub(t *testing.T) (*Client, *apiStub) {
	t.Helper()
	stub := &apiStub{}
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	// trailing slash exercises base normalization
	return NewClient(srv.URL + "/"), stub
}

func TestClientDistributions(t *testing.T) {
	c, _ := newStub(t)
	dists, err := c.Distributions(context.Background())
	if err != nil {
		t.Fatalf("distributions: %v", err)
	}
	if len(dists) != 2 {
		t.Fatalf("got %d distributions, want 2", len(dists))
	}
	if dists[0].Name != "Ubuntu-24.04" || !dists[0].Running || !dists[0].HasDefinition {
		t.Fatalf("unexpected first distribution: %+v", dists[0])
	}
	if dists[1].Name != "Custom" || dists[1].HasDefinition {
		t.Fatalf("unexpected second distribution: %+v", dists[1])
	}
}

func TestClientAvailable(t *testing.T) {
	c, _ := newStub(t)
	defs, err := c.Available(context.Background())
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(defs) != 1 || defs[0].Name != "Debian" {
		t.Fatalf("unexpected definitions: %+v", defs)
	}
}

func TestClientRunning(t *testing.T) {
	c, _ := newStub(t)
	names, err := c.Running(context.Background())
	if err != nil {
		t.Fatalf("running: %v", err)
	}
	if len(names) != 1 || names[0] != "Ubuntu-24.04" {
		t.Fatalf("unexpected running set: %v", names)
	}
}

func TestClientShowNotFound(t *testing.T) {
	c, _ := newStub(t)
	if _, err := c.Show(context.Background(), "Ubuntu-24.04"); err != nil {
		t.Fatalf("show known: %v", err)
	}
	_, err := c.Show(context.Background(), "Ghost")
	if err == nil {
		t.Fatalf("expected error for unknown name")
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound = false for %v", err)
	}
	if !strings.Contains(err.Error(), "distribution not found: Ghost") {
		t.Fatalf("error lost server message: %v", err)
	}
}

func TestClientCommand(t *testing.T) {
	c, stub := newStub(t)
	r, err := c.Command(context.Background(), "launch", "Ubuntu-24.04")
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	if stub.lastMethod != http.MethodPost {
		t.Fatalf("method = %s, want POST", stub.lastMethod)
	}
	if stub.lastPath != "/v1/distributions/Ubuntu-24.04/launch" {
		t.Fatalf("path = %s", stub.lastPath)
	}
	if r.Status != "dispatched" || r.Op != "launch" {
		t.Fatalf("unexpected ack: %+v", r)
	}
}

func TestClientStatus(t *testing.T) {
	c, _ := newStub(t)
	s, err := c.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !s.Ready || s.Registered != 2 || s.CatalogSize != 11 {
		t.Fatalf("unexpected status: %+v", s)
	}
}

func TestClientWatch(t *testing.T) {
	c, _ := newStub(t)
	var events []types.RunningEvent
	err := c.Watch(context.Background(), func(ev types.RunningEvent) error {
		events = append(events, ev)
		return nil
	})
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if len(events[0].Running) != 1 || events[0].Running[0] != "Ubuntu-24.04" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[0].At.IsZero() {
		t.Fatalf("event timestamp not decoded")
	}
	if len(events[1].Running) != 0 {
		t.Fatalf("second event should be empty, got %+v", events[1])
	}
}

func TestClientWatchCallbackError(t *testing.T) {
	c, _ := newStub(t)
	wantErr := fmt.Errorf("stop here")
	err := c.Watch(context.Background(), func(ev types.RunningEvent) error { return wantErr })
	if err != wantErr {
		t.Fatalf("watch err = %v, want callback error", err)
	}
}

func TestClientErrorFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream fell over")
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL).Status(context.Background())
	if err == nil {
		t.Fatalf("expected error from 502")
	}
	if !strings.Contains(err.Error(), "upstream fell over") || !strings.Contains(err.Error(), "502") {
		t.Fatalf("plain-text body not surfaced: %v", err)
	}
	if IsNotFound(err) {
		t.Fatalf("502 misclassified as not found")
	}
}

func TestClientContextCancelStopsWatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewClient(srv.URL).Watch(ctx, func(types.RunningEvent) error { return nil })
	}()
	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("canceled watch returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watch did not return after cancel")
	}
}
