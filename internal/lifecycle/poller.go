package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wsld/internal/host"
)

// Poller queries the host's running-name set on a fixed interval and fans
// the whole set out to every subscriber. It runs with zero subscribers too;
// a failed tick is logged and skipped, never fatal.
type Poller struct {
	host      host.Mediator
	interval  time.Duration
	log       zerolog.Logger
	publisher EventPublisher
	observed  func()

	mu   sync.Mutex // guards subs
	subs map[string]*Subscription

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	ticks    atomic.Uint64
	failures atomic.Uint64
	lastPoll atomic.Int64 // unix seconds of last successful tick
}

type pollerConfig struct {
	host      host.Mediator
	interval  time.Duration
	log       zerolog.Logger
	publisher EventPublisher
	observed  func() // called after each successful host query
}

func newPoller(cfg pollerConfig) *Poller {
	return &Poller{
		host:      cfg.host,
		interval:  cfg.interval,
		log:       cfg.log,
		publisher: cfg.publisher,
		observed:  cfg.observed,
		subs:      make(map[string]*Subscription),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

func (p *Poller) start() { go p.run() }

func (p *Poller) run() {
	defer close(p.done)
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-p.stop:
			return
		case <-t.C:
			p.tick()
		}
	}
}

// tick performs one poll. Ticks are not bounded by a deadline of their own;
// a hung host stalls the loop rather than producing a synthetic result.
func (p *Poller) tick() {
	p.ticks.Add(1)
	set, err := p.host.AllRunningNames(context.Background())
	if err != nil {
		p.failures.Add(1)
		pollTicksTotal.WithLabelValues("error").Inc()
		p.log.Warn().Err(err).Msg("poll failed, skipping tick")
		p.publisher.Publish(Event{Name: "poll_error", Fields: map[string]any{"error": err.Error()}})
		return
	}
	if p.observed != nil {
		p.observed()
	}
	pollTicksTotal.WithLabelValues("ok").Inc()
	runningDistributions.Set(float64(len(set)))
	p.lastPoll.Store(time.Now().Unix())
	p.publish(set)
}

func (p *Poller) publish(set host.RunningSet) {
	p.mu.Lock()
	subs := make([]*Subscription, 0, len(p.subs))
	for _, s := range p.subs {
		subs = append(subs, s)
	}
	p.mu.Unlock()
	for _, s := range subs {
		s.offer(set)
	}
}

// Subscribe registers fn to receive the running-name set after every
// successful tick. Delivery is decoupled from the tick: each subscriber
// holds at most the latest set, and a slow fn only loses older sets.
func (p *Poller) Subscribe(fn func(host.RunningSet)) *Subscription {
	s := &Subscription{
		id:   uuid.New().String(),
		ch:   make(chan host.RunningSet, 1),
		quit: make(chan struct{}),
		p:    p,
	}
	go s.pump(fn)
	p.mu.Lock()
	p.subs[s.id] = s
	p.mu.Unlock()
	p.log.Debug().Str("subscription", s.id).Msg("poller subscription added")
	return s
}

// Stop halts the poll loop and waits for it to exit. Subscriptions are left
// to their owners to cancel.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}

func (p *Poller) stats() (ticks, failures uint64, lastPoll int64) {
	return p.ticks.Load(), p.failures.Load(), p.lastPoll.Load()
}

// SubscriberCount returns the number of active subscriptions.
func (p *Poller) SubscriberCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}

// Subscription is one registered observer of the poller's running-name sets.
type Subscription struct {
	id   string
	ch   chan host.RunningSet
	quit chan struct{}
	p    *Poller
	once sync.Once
}

// offer hands the set to the subscription without blocking the tick. If the
// subscriber has not drained the previous set yet, the stale one is dropped.
func (s *Subscription) offer(set host.RunningSet) {
	select {
	case <-s.quit:
		return
	default:
	}
	for {
		select {
		case s.ch <- set:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

func (s *Subscription) pump(fn func(host.RunningSet)) {
	for {
		select {
		case <-s.quit:
			return
		default:
		}
		select {
		case <-s.quit:
			return
		case set := <-s.ch:
			fn(set)
		}
	}
}

// Cancel detaches the subscription from the poller and stops its delivery
// goroutine. Idempotent.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		close(s.quit)
		s.p.mu.Lock()
		delete(s.p.subs, s.id)
		s.p.mu.Unlock()
	})
}

// Active reports whether the subscription is still attached.
func (s *Subscription) Active() bool {
	select {
	case <-s.quit:
		return false
	default:
		return true
	}
}
