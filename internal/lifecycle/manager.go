package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"wsld/internal/catalog"
	"wsld/internal/host"
	"wsld/pkg/types"
)

// Manager owns the live list of distribution handles and is the single entry
// point consumers use to query registry state and command the host.
type Manager struct {
	mu      sync.RWMutex // guards handles
	handles []*Handle

	refreshMu sync.Mutex // serializes RefreshRegistered

	host      host.Mediator
	catalog   *catalog.Catalog
	poller    *Poller
	log       zerolog.Logger
	publisher EventPublisher

	hostSeen  atomic.Bool // true once any host query has succeeded
	startTime time.Time
	closeOnce sync.Once
}

// Registered returns a copy of the current handle list without refreshing.
func (m *Manager) Registered() []*Handle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Handle, len(m.handles))
	copy(out, m.handles)
	return out
}

// GetRegistered returns the handle whose name matches exactly, byte for
// byte. It never triggers a refresh; a miss yields a not-found error.
func (m *Manager) GetRegistered(name string) (*Handle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, h := range m.handles {
		if h.Name() == name {
			return h, nil
		}
	}
	return nil, ErrDistributionNotFound(name)
}

// Definition returns the catalog definition with the exact name.
func (m *Manager) Definition(ctx context.Context, name string) (types.Definition, error) {
	return m.catalog.Definition(ctx, name)
}

// Subscribe attaches fn to the poller; every successful tick delivers the
// entire current running-name set.
func (m *Manager) Subscribe(fn func(host.RunningSet)) *Subscription {
	return m.poller.Subscribe(fn)
}

// Ready reports whether any host query has succeeded yet.
func (m *Manager) Ready() bool { return m.hostSeen.Load() }

// SubscriberCount reports the number of active poller subscriptions.
func (m *Manager) SubscriberCount() int { return m.poller.SubscriberCount() }

// Status returns an operational snapshot.
func (m *Manager) Status() types.StatusResponse {
	m.mu.RLock()
	registered := len(m.handles)
	running := 0
	for _, h := range m.handles {
		if h.Running() {
			running++
		}
	}
	m.mu.RUnlock()

	ticks, failures, lastPoll := m.poller.stats()
	now := time.Now()
	return types.StatusResponse{
		Ready:               m.Ready(),
		Registered:          registered,
		Running:             running,
		CatalogSize:         m.catalog.Size(),
		PollIntervalSeconds: int64(m.poller.interval / time.Second),
		PollTicks:           ticks,
		PollFailures:        failures,
		LastPollUnix:        lastPoll,
		UptimeSeconds:       int64(now.Sub(m.startTime) / time.Second),
		ServerTimeUnix:      now.Unix(),
	}
}

// Close stops the poller and closes every current handle. Safe to call more
// than once.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.poller.Stop()
		m.mu.Lock()
		handles := m.handles
		m.handles = nil
		m.mu.Unlock()
		for _, h := range handles {
			h.Close()
		}
	})
}
