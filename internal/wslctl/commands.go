package wslctl

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"wsld/pkg/types"
)

const (
	// queryTimeout bounds read-only requests.
	queryTimeout = 30 * time.Second
	// commandTimeout bounds lifecycle commands; install can download an image.
	commandTimeout = 10 * time.Minute
)

func list(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	dists, err := NewClient(cfg.Server).Distributions(ctx)
	if err != nil {
		return err
	}
	if len(dists) == 0 {
		info("[wslctl] no registered distributions")
		return nil
	}
	fmt.Printf("%-28s %-10s %s\n", "NAME", "STATE", "FRIENDLY NAME")
	for _, d := range dists {
		fmt.Printf("%-28s %-10s %s\n", d.Name, stateStr(d.Running), d.FriendlyName)
	}
	return nil
}

func available(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	defs, err := NewClient(cfg.Server).Available(ctx)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		info("[wslctl] every catalog definition is already registered")
		return nil
	}
	fmt.Printf("%-28s %-28s %s\n", "NAME", "FRIENDLY NAME", "PUBLISHER")
	for _, d := range defs {
		fmt.Printf("%-28s %-28s %s\n", d.Name, d.FriendlyName, d.Publisher)
	}
	return nil
}

func running(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	names, err := NewClient(cfg.Server).Running(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		info("[wslctl] nothing is running")
		return nil
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func show(cfg *Config, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	d, err := NewClient(cfg.Server).Show(ctx, name)
	if err != nil {
		return err
	}
	fmt.Printf("Name:             %s\n", d.Name)
	fmt.Printf("State:            %s\n", stateStr(d.Running))
	if d.HasDefinition {
		fmt.Printf("Friendly name:    %s\n", d.FriendlyName)
		if d.Publisher != "" {
			fmt.Printf("Publisher:        %s\n", d.Publisher)
		}
		if d.Homepage != "" {
			fmt.Printf("Homepage:         %s\n", d.Homepage)
		}
		if d.TerminalProfile != "" {
			fmt.Printf("Terminal profile: %s\n", d.TerminalProfile)
		}
	} else {
		fmt.Println("Catalog:          no matching definition")
	}
	return nil
}

func status(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	s, err := NewClient(cfg.Server).Status(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Ready:         %v\n", s.Ready)
	fmt.Printf("Registered:    %d\n", s.Registered)
	fmt.Printf("Running:       %d\n", s.Running)
	fmt.Printf("Catalog size:  %d\n", s.CatalogSize)
	fmt.Printf("Poll interval: %ds\n", s.PollIntervalSeconds)
	fmt.Printf("Poll ticks:    %d (%d failed)\n", s.PollTicks, s.PollFailures)
	fmt.Printf("Uptime:        %s\n", (time.Duration(s.UptimeSeconds) * time.Second).String())
	return nil
}

func command(cfg *Config, op, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	r, err := NewClient(cfg.Server).Command(ctx, op, name)
	if err != nil {
		return err
	}
	if r.Status != "dispatched" {
		warn("[wslctl] unexpected ack status: %s", r.Status)
	}
	info("[wslctl] %s dispatched for %s", op, name)
	return nil
}

func watch(cfg *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	info("[wslctl] watching running state on %s, Ctrl-C to stop", cfg.Server)
	return NewClient(cfg.Server).Watch(ctx, func(ev types.RunningEvent) error {
		set := strings.Join(ev.Running, ", ")
		if set == "" {
			set = "(none)"
		}
		fmt.Printf("%s  running: %s\n", ev.At.Format(time.RFC3339), set)
		return nil
	})
}

func stateStr(running bool) string {
	if running {
		return "running"
	}
	return "stopped"
}
