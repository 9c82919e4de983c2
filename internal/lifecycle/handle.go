package lifecycle

import (
	"context"
	"sync"

	"wsld/internal/host"
	"wsld/pkg/types"
)

// Handle is a live view of one registered distribution. Its running flag is
// kept current by a poller subscription until Close.
type Handle struct {
	mu   sync.RWMutex
	info types.Distribution
	sub  *Subscription
	once sync.Once
}

// newHandle wraps a merged distribution record in a Handle. The initial
// running state comes from a direct host query; the handle then tracks
// subsequent state through the poller.
func (m *Manager) newHandle(ctx context.Context, info types.Distribution) (*Handle, error) {
	running, err := m.host.IsRunning(ctx, info.Name)
	if err != nil {
		return nil, err
	}
	info.Running = running

	h := &Handle{info: info}
	h.sub = m.poller.Subscribe(h.update)
	return h, nil
}

func (h *Handle) update(set host.RunningSet) {
	h.mu.Lock()
	h.info.Running = set.Has(h.info.Name)
	h.mu.Unlock()
}

// Name returns the distribution name, the host's unique identifier.
func (h *Handle) Name() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.info.Name
}

// Running reports the last observed running state.
func (h *Handle) Running() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.info.Running
}

// Info returns a snapshot of the distribution record.
func (h *Handle) Info() types.Distribution {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.info
}

// Close cancels the handle's poller subscription. Idempotent.
func (h *Handle) Close() {
	h.once.Do(func() {
		if h.sub != nil {
			h.sub.Cancel()
		}
	})
}

// Closed reports whether the handle's subscription has been cancelled.
func (h *Handle) Closed() bool {
	if h.sub == nil {
		return true
	}
	return !h.sub.Active()
}
