package host

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Mediator that simulates a small host registry. It
// backs the daemon's development mode and the test suites. Install registers
// the distribution stopped, Launch marks it running, Terminate stops it,
// Unregister removes it.
type Memory struct {
	mu      sync.Mutex
	running map[string]bool
	order   []string // registration order, keeps listings stable
	errs    map[string]error
	calls   map[string]int
}

// NewMemory constructs a simulator pre-seeded with the given registrations.
func NewMemory(regs ...Registration) *Memory {
	m := &Memory{
		running: make(map[string]bool, len(regs)),
		errs:    make(map[string]error),
		calls:   make(map[string]int),
	}
	for _, r := range regs {
		m.add(r.Name, r.Running)
	}
	return m
}

// Fail injects an error returned by every subsequent call to op (a Mediator
// method name). A nil err clears the injection.
func (m *Memory) Fail(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.errs, op)
		return
	}
	m.errs[op] = err
}

// Calls reports how many times op has been invoked.
func (m *Memory) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

// SetRunning flips the running flag of an existing registration.
func (m *Memory) SetRunning(name string, running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.running[name]; ok {
		m.running[name] = running
	}
}

// Add registers a distribution directly, bypassing Install.
func (m *Memory) Add(name string, running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.add(name, running)
}

func (m *Memory) add(name string, running bool) {
	if _, ok := m.running[name]; !ok {
		m.order = append(m.order, name)
	}
	m.running[name] = running
}

func (m *Memory) begin(op string) error {
	m.calls[op]++
	return m.errs[op]
}

func (m *Memory) IsRunning(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin("IsRunning"); err != nil {
		return false, err
	}
	return m.running[name], nil
}

func (m *Memory) AllRegistered(ctx context.Context) ([]Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin("AllRegistered"); err != nil {
		return nil, err
	}
	regs := make([]Registration, 0, len(m.order))
	for _, name := range m.order {
		regs = append(regs, Registration{Name: name, Running: m.running[name]})
	}
	return regs, nil
}

func (m *Memory) AllRunningNames(ctx context.Context) (RunningSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin("AllRunningNames"); err != nil {
		return nil, err
	}
	set := make(RunningSet)
	for name, running := range m.running {
		if running {
			set[name] = struct{}{}
		}
	}
	return set, nil
}

func (m *Memory) Install(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin("Install"); err != nil {
		return &Error{Op: "install", Name: name, Err: err}
	}
	m.add(name, false)
	return nil
}

func (m *Memory) Launch(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin("Launch"); err != nil {
		return &Error{Op: "launch", Name: name, Err: err}
	}
	if _, ok := m.running[name]; !ok {
		return &Error{Op: "launch", Name: name, Err: fmt.Errorf("not registered")}
	}
	m.running[name] = true
	return nil
}

func (m *Memory) Terminate(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin("Terminate"); err != nil {
		return &Error{Op: "terminate", Name: name, Err: err}
	}
	if _, ok := m.running[name]; !ok {
		return &Error{Op: "terminate", Name: name, Err: fmt.Errorf("not registered")}
	}
	m.running[name] = false
	return nil
}

func (m *Memory) Unregister(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin("Unregister"); err != nil {
		return &Error{Op: "unregister", Name: name, Err: err}
	}
	if _, ok := m.running[name]; !ok {
		return &Error{Op: "unregister", Name: name, Err: fmt.Errorf("not registered")}
	}
	delete(m.running, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
