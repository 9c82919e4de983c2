package lifecycle

import "context"

// IsRunning asks the host directly whether the named distribution is
// running right now.
func (m *Manager) IsRunning(ctx context.Context, name string) (bool, error) {
	running, err := m.host.IsRunning(ctx, name)
	if err != nil {
		return false, err
	}
	m.hostSeen.Store(true)
	return running, nil
}

// RunningNames queries the host for the names of all currently running
// distributions, sorted ascending.
func (m *Manager) RunningNames(ctx context.Context) ([]string, error) {
	set, err := m.host.AllRunningNames(ctx)
	if err != nil {
		return nil, err
	}
	m.hostSeen.Store(true)
	return set.Names(), nil
}

// Install asks the host to begin installing the named distribution.
func (m *Manager) Install(ctx context.Context, name string) error {
	return m.command(ctx, "install", name, m.host.Install)
}

// Launch asks the host to start the named distribution.
func (m *Manager) Launch(ctx context.Context, name string) error {
	return m.command(ctx, "launch", name, m.host.Launch)
}

// Terminate asks the host to stop the named distribution.
func (m *Manager) Terminate(ctx context.Context, name string) error {
	return m.command(ctx, "terminate", name, m.host.Terminate)
}

// Unregister asks the host to remove the named distribution's registration.
func (m *Manager) Unregister(ctx context.Context, name string) error {
	return m.command(ctx, "unregister", name, m.host.Unregister)
}

func (m *Manager) command(ctx context.Context, op, name string, fn func(context.Context, string) error) error {
	if err := fn(ctx, name); err != nil {
		commandsTotal.WithLabelValues(op, "error").Inc()
		m.log.Error().Err(err).Str("op", op).Str("name", name).Msg("host command failed")
		return err
	}
	commandsTotal.WithLabelValues(op, "ok").Inc()
	m.log.Info().Str("op", op).Str("name", name).Msg("host command dispatched")
	m.publisher.Publish(Event{Name: op, Distribution: name})
	return nil
}
