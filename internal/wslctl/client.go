package wslctl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"wsld/pkg/types"
)

// Client talks to a wsld daemon over its HTTP API.
type Client struct {
	base  string
	httpc *http.Client
}

// NewClient builds a client for the daemon at base, e.g. "http://127.0.0.1:8080".
// The underlying http.Client carries no global timeout so the watch stream can
// stay open; callers bound individual requests through their context.
func NewClient(base string) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		httpc: &http.Client{},
	}
}

// apiError carries a decoded error response from the daemon.
type apiError struct {
	code int
	msg  string
}

func (e *apiError) Error() string { return fmt.Sprintf("%s (http %d)", e.msg, e.code) }

// IsNotFound reports whether err is a 404 response from the daemon.
func IsNotFound(err error) bool {
	ae, ok := err.(*apiError)
	return ok && ae.code == http.StatusNotFound
}

// Distributions fetches the registered list, refreshing it on the daemon.
func (c *Client) Distributions(ctx context.Context) ([]types.Distribution, error) {
	var r types.DistributionsResponse
	if err := c.getJSON(ctx, "/v1/distributions", &r); err != nil {
		return nil, err
	}
	return r.Distributions, nil
}

// Available fetches the catalog definitions with no matching registration.
func (c *Client) Available(ctx context.Context) ([]types.Definition, error) {
	var r types.AvailableResponse
	if err := c.getJSON(ctx, "/v1/distributions/available", &r); err != nil {
		return nil, err
	}
	return r.Definitions, nil
}

// Running fetches the names of currently running distributions.
func (c *Client) Running(ctx context.Context) ([]string, error) {
	var r types.RunningResponse
	if err := c.getJSON(ctx, "/v1/distributions/running", &r); err != nil {
		return nil, err
	}
	return r.Running, nil
}

// Show fetches one registered distribution by exact name.
func (c *Client) Show(ctx context.Context, name string) (types.Distribution, error) {
	var d types.Distribution
	err := c.getJSON(ctx, "/v1/distributions/"+url.PathEscape(name), &d)
	return d, err
}

// Status fetches the daemon status snapshot.
func (c *Client) Status(ctx context.Context) (types.StatusResponse, error) {
	var s types.StatusResponse
	err := c.getJSON(ctx, "/v1/status", &s)
	return s, err
}

// Command dispatches a lifecycle command (install, launch, terminate or
// unregister) for the named distribution.
func (c *Client) Command(ctx context.Context, op, name string) (types.CommandResponse, error) {
	var r types.CommandResponse
	err := c.postJSON(ctx, "/v1/distributions/"+url.PathEscape(name)+"/"+op, &r)
	return r, err
}

// Watch consumes the NDJSON running-state stream, invoking fn for every
// published set. It returns nil when the stream ends or ctx is canceled, and
// fn's error if fn rejects an event.
func (c *Client) Watch(ctx context.Context, fn func(types.RunningEvent) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/distributions/watch", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/x-ndjson")
	debug("[wslctl] GET %s", req.URL)
	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.readError(resp)
	}
	dec := json.NewDecoder(resp.Body)
	for {
		var ev types.RunningEvent
		if err := dec.Decode(&ev); err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("decode watch event: %w", err)
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	debug("[wslctl] GET %s", req.URL)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.readError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *Client) postJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	debug("[wslctl] POST %s", req.URL)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return c.readError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *Client) readError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var er types.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &apiError{code: resp.StatusCode, msg: er.Error}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &apiError{code: resp.StatusCode, msg: msg}
}
