// Package catalog holds the static set of distribution definitions the
// daemon knows about, independent of what is registered on the host. The
// definition source is pluggable; the compiled-in default can be replaced by
// a yaml/json/toml file on disk. Definitions load lazily on first access and
// are cached for the life of the process.
package catalog

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/rs/zerolog"

	"wsld/pkg/types"
)

// Catalog caches the definition mapping produced by its Source. The first
// access triggers the load; a failed load is not cached and is retried on
// the next access.
type Catalog struct {
	mu   sync.Mutex
	src  Source
	log  zerolog.Logger
	defs map[string]types.Definition // nil until the first successful load
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the catalog logger. Default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Catalog) { c.log = l }
}

// New constructs a catalog over the given source.
func New(src Source, opts ...Option) *Catalog {
	c := &Catalog{src: src, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Definitions returns the full definition mapping keyed by name, loading it
// from the source on first call. The returned map is a shallow clone; the
// entries themselves are shared and must not be mutated.
func (c *Catalog) Definitions(ctx context.Context) (map[string]types.Definition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.defs == nil {
		defs, err := c.src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog: load definitions: %w", err)
		}
		if defs == nil {
			defs = map[string]types.Definition{}
		}
		c.defs = defs
		c.log.Info().Int("definitions", len(defs)).Msg("catalog loaded")
	}
	return maps.Clone(c.defs), nil
}

// Definition returns the named definition. The name must match exactly.
func (c *Catalog) Definition(ctx context.Context, name string) (types.Definition, error) {
	defs, err := c.Definitions(ctx)
	if err != nil {
		return types.Definition{}, err
	}
	d, ok := defs[name]
	if !ok {
		return types.Definition{}, ErrDefinitionNotFound(name)
	}
	return d, nil
}

// Size reports the number of loaded definitions without triggering a load;
// it is 0 before the first successful load.
func (c *Catalog) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.defs)
}

type definitionNotFoundError struct{ name string }

func (e definitionNotFoundError) Error() string { return "definition not found: " + e.name }

// ErrDefinitionNotFound constructs a not-found error for the given name.
func ErrDefinitionNotFound(name string) error { return definitionNotFoundError{name: name} }

// IsDefinitionNotFound reports whether err is a definition not-found error.
func IsDefinitionNotFound(err error) bool {
	_, ok := err.(definitionNotFoundError)
	return ok
}
