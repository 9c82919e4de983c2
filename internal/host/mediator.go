// Package host is the boundary to the platform virtualization service. It
// defines the Mediator contract the rest of the daemon consumes, plus the two
// shipped implementations: CLI, a shim over a wsl-compatible binary, and
// Memory, an in-process simulator used by tests and the development backend.
package host

import (
	"context"
	"sort"
)

// Registration is one raw registry entry as reported by the host: the
// distribution name and whether it is currently running. Catalog metadata is
// merged in by the lifecycle manager, not here.
type Registration struct {
	Name    string
	Running bool
}

// RunningSet is the set of running distribution names observed by one query.
type RunningSet map[string]struct{}

// NewRunningSet builds a set from the given names.
func NewRunningSet(names ...string) RunningSet {
	s := make(RunningSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set. Membership is exact; names are
// compared byte for byte.
func (s RunningSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the set as a new slice, sorted ascending.
func (s RunningSet) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Mediator is the sole gateway to the virtualization host. Query methods
// report live registry state. Command methods dispatch and return: there is
// no completion confirmation and no retry, and callers observe the effect
// only through a later query. Calls carry no internal timeout; the caller's
// context is the only bound.
type Mediator interface {
	// IsRunning reports whether the named distribution is currently running.
	IsRunning(ctx context.Context, name string) (bool, error)
	// AllRegistered returns every registration the host knows about,
	// running or not.
	AllRegistered(ctx context.Context) ([]Registration, error)
	// AllRunningNames returns the names of all currently running
	// distributions.
	AllRunningNames(ctx context.Context) (RunningSet, error)
	// Install registers the named distribution on the host.
	Install(ctx context.Context, name string) error
	// Launch boots the named distribution.
	Launch(ctx context.Context, name string) error
	// Terminate stops the named distribution.
	Terminate(ctx context.Context, name string) error
	// Unregister removes the named distribution's registration.
	Unregister(ctx context.Context, name string) error
}

// Error wraps a failed mediator call with the operation and target it
// belonged to.
type Error struct {
	Op   string // "install", "terminate", "list", ...
	Name string // target distribution; empty for list queries
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return "host: " + e.Op + ": " + e.Err.Error()
	}
	return "host: " + e.Op + " " + e.Name + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
