package lifecycle

import (
	"time"

	"github.com/rs/zerolog"

	"wsld/internal/catalog"
	"wsld/internal/host"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultPollInterval = time.Minute
)

// Config encapsulates all tunables for Manager construction.
type Config struct {
	// Host is the mediator to the virtualization service. Required.
	Host host.Mediator
	// Catalog supplies the distribution definitions. Required.
	Catalog *catalog.Catalog
	// PollInterval is the running-state poll period. Default one minute.
	PollInterval time.Duration
	// Logger receives structured manager and poller logs. The zero logger
	// is silent.
	Logger zerolog.Logger
	// Publisher receives lifecycle events. Default drops them.
	Publisher EventPublisher
}

// New constructs a Manager with default tunables and starts its poller.
func New(h host.Mediator, c *catalog.Catalog) *Manager {
	return NewWithConfig(Config{Host: h, Catalog: c})
}

// NewWithConfig constructs a Manager from Config and starts its poller. The
// poller runs until Close.
func NewWithConfig(cfg Config) *Manager {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.Publisher == nil {
		cfg.Publisher = noopPublisher{}
	}
	m := &Manager{
		host:      cfg.Host,
		catalog:   cfg.Catalog,
		log:       cfg.Logger,
		publisher: cfg.Publisher,
		startTime: time.Now(),
	}
	m.poller = newPoller(pollerConfig{
		host:      cfg.Host,
		interval:  cfg.PollInterval,
		log:       cfg.Logger,
		publisher: cfg.Publisher,
		observed:  func() { m.hostSeen.Store(true) },
	})
	m.poller.start()
	return m
}
