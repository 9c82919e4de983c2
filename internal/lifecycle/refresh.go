package lifecycle

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"wsld/internal/host"
	"wsld/pkg/types"
)

// RefreshRegistered rebuilds the handle list from a fresh host query merged
// with the catalog. Existing handles are closed up front; the published list
// is swapped wholesale only after the new one is fully built, so a failed
// refresh leaves the previous list in place.
func (m *Manager) RefreshRegistered(ctx context.Context) ([]*Handle, error) {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	old := m.Registered()
	for _, h := range old {
		h.Close()
	}

	regs, err := m.host.AllRegistered(ctx)
	if err != nil {
		refreshesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("lifecycle: refresh registered: %w", err)
	}
	m.hostSeen.Store(true)

	defs, err := m.catalog.Definitions(ctx)
	if err != nil {
		refreshesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	handles := make([]*Handle, 0, len(regs))
	seen := make(map[string]struct{}, len(regs))
	for _, reg := range regs {
		if _, dup := seen[reg.Name]; dup {
			m.log.Warn().Str("name", reg.Name).Msg("duplicate registration from host, skipping")
			continue
		}
		seen[reg.Name] = struct{}{}

		h, err := m.newHandle(ctx, merge(reg, defs))
		if err != nil {
			m.log.Warn().Err(err).Str("name", reg.Name).Msg("skipping registration, wrap failed")
			m.publisher.Publish(Event{Name: "wrap_skip", Distribution: reg.Name})
			continue
		}
		handles = append(handles, h)
	}

	m.mu.Lock()
	m.handles = handles
	m.mu.Unlock()

	refreshesTotal.WithLabelValues("ok").Inc()
	m.log.Info().Int("registered", len(handles)).Msg("registry refreshed")
	m.publisher.Publish(Event{Name: "refresh", Fields: map[string]any{"registered": len(handles)}})

	out := make([]*Handle, len(handles))
	copy(out, handles)
	return out, nil
}

// merge joins one host registration with its catalog definition by exact
// name. A registration with no definition keeps only its name.
func merge(reg host.Registration, defs map[string]types.Definition) types.Distribution {
	d := types.Distribution{Name: reg.Name}
	def, ok := defs[reg.Name]
	if !ok {
		return d
	}
	d.FriendlyName = def.FriendlyName
	d.Publisher = def.Publisher
	d.Homepage = def.Homepage
	d.TerminalProfile = def.TerminalProfile
	d.HasDefinition = true
	return d
}

// GetAvailableToInstall returns the catalog definitions whose names are not
// registered on the host, compared case-insensitively and sorted the same
// way. The registration set is queried fresh rather than read from handles.
func (m *Manager) GetAvailableToInstall(ctx context.Context) ([]types.Definition, error) {
	regs, err := m.host.AllRegistered(ctx)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: query registered: %w", err)
	}
	m.hostSeen.Store(true)

	defs, err := m.catalog.Definitions(ctx)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(regs))
	for _, reg := range regs {
		taken[strings.ToLower(reg.Name)] = struct{}{}
	}

	avail := make([]types.Definition, 0, len(defs))
	for name, def := range defs {
		if _, ok := taken[strings.ToLower(name)]; ok {
			continue
		}
		avail = append(avail, def)
	}
	sort.Slice(avail, func(i, j int) bool {
		a, b := strings.ToLower(avail[i].Name), strings.ToLower(avail[j].Name)
		if a != b {
			return a < b
		}
		return avail[i].Name < avail[j].Name
	})
	return avail, nil
}
