package catalog

import (
	"context"
	"errors"
	"testing"

	"wsld/pkg/types"
)

type countingSource struct {
	loads int
	defs  map[string]types.Definition
	err   error
}

func (s *countingSource) Load(ctx context.Context) (map[string]types.Definition, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.defs, nil
}

func TestDefinitionsLoadsOnceAndClones(t *testing.T) {
	src := &countingSource{defs: map[string]types.Definition{
		"Ubuntu": {Name: "Ubuntu", FriendlyName: "Ubuntu"},
	}}
	c := New(src)

	defs, err := c.Definitions(context.Background())
	if err != nil {
		t.Fatalf("Definitions: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	// callers get a clone; mutating it must not touch the cache
	delete(defs, "Ubuntu")

	defs, err = c.Definitions(context.Background())
	if err != nil {
		t.Fatalf("Definitions again: %v", err)
	}
	if _, ok := defs["Ubuntu"]; !ok {
		t.Fatal("cache was mutated through the returned map")
	}
	if src.loads != 1 {
		t.Fatalf("expected a single source load, got %d", src.loads)
	}
	if c.Size() != 1 {
		t.Fatalf("Size = %d, want 1", c.Size())
	}
}

func TestDefinitionsFailureIsRetried(t *testing.T) {
	boom := errors.New("source offline")
	src := &countingSource{err: boom, defs: map[string]types.Definition{
		"Debian": {Name: "Debian"},
	}}
	c := New(src)

	if _, err := c.Definitions(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected load failure, got %v", err)
	}
	if c.Size() != 0 {
		t.Fatal("failed load must not populate the cache")
	}

	src.err = nil
	if _, err := c.Definitions(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if _, err := c.Definitions(context.Background()); err != nil {
		t.Fatalf("cached read: %v", err)
	}
	if src.loads != 2 {
		t.Fatalf("expected 2 source loads (fail, then success), got %d", src.loads)
	}
}

func TestDefinitionLookup(t *testing.T) {
	src := &countingSource{defs: map[string]types.Definition{
		"Ubuntu": {Name: "Ubuntu", FriendlyName: "Ubuntu"},
	}}
	c := New(src)

	d, err := c.Definition(context.Background(), "Ubuntu")
	if err != nil || d.FriendlyName != "Ubuntu" {
		t.Fatalf("Definition(Ubuntu) = %+v, %v", d, err)
	}
	// lookups are exact
	_, err = c.Definition(context.Background(), "ubuntu")
	if !IsDefinitionNotFound(err) {
		t.Fatalf("expected not-found for lowercase name, got %v", err)
	}
	if IsDefinitionNotFound(errors.New("other")) {
		t.Fatal("IsDefinitionNotFound matched an unrelated error")
	}
}

func TestEmbeddedCatalog(t *testing.T) {
	c := New(Embedded())
	defs, err := c.Definitions(context.Background())
	if err != nil {
		t.Fatalf("embedded load: %v", err)
	}
	if len(defs) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	u, ok := defs["Ubuntu-24.04"]
	if !ok {
		t.Fatal("embedded catalog missing Ubuntu-24.04")
	}
	if u.FriendlyName == "" || u.TerminalProfile == "" {
		t.Fatalf("incomplete embedded definition: %+v", u)
	}
	for name, d := range defs {
		if len(d.Logo) == 0 {
			t.Fatalf("embedded definition %s has no logo payload", name)
		}
	}
}
