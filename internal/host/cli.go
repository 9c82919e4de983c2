package host

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"unicode/utf16"

	"github.com/rs/zerolog"
)

// CLI talks to the host through a wsl-compatible command-line binary. Query
// methods run the binary to completion and parse its output. Install and
// Launch are long-running host-side and are dispatched without waiting;
// Terminate and Unregister are fast host-side calls whose exit status is
// surfaced to the caller.
type CLI struct {
	bin string
	log zerolog.Logger
}

// CLIConfig configures the command-line mediator.
type CLIConfig struct {
	// Binary is the executable to invoke. Empty means DefaultBinary().
	Binary string
	// Logger receives one line per dispatched command. Defaults to a no-op.
	Logger zerolog.Logger
}

// DefaultBinary returns the conventional wsl binary name for this platform.
func DefaultBinary() string {
	if runtime.GOOS == "windows" {
		return "wsl.exe"
	}
	return "wsl"
}

// NewCLI constructs a command-line mediator.
func NewCLI(cfg CLIConfig) *CLI {
	bin := strings.TrimSpace(cfg.Binary)
	if bin == "" {
		bin = DefaultBinary()
	}
	return &CLI{bin: bin, log: cfg.Logger}
}

// IsRunning reports membership of name in the current running-name set.
func (c *CLI) IsRunning(ctx context.Context, name string) (bool, error) {
	set, err := c.AllRunningNames(ctx)
	if err != nil {
		return false, err
	}
	return set.Has(name), nil
}

// AllRegistered lists every registration via `--list --all --verbose`.
func (c *CLI) AllRegistered(ctx context.Context) ([]Registration, error) {
	out, err := c.run(ctx, "--list", "--all", "--verbose")
	if err != nil {
		// The binary exits nonzero when nothing is installed at all.
		if hasNoDistributions(out) {
			return nil, nil
		}
		return nil, &Error{Op: "list", Err: err}
	}
	return parseVerboseList(out), nil
}

// AllRunningNames lists running names via `--list --running --quiet`.
func (c *CLI) AllRunningNames(ctx context.Context) (RunningSet, error) {
	out, err := c.run(ctx, "--list", "--running", "--quiet")
	if err != nil {
		// The binary exits nonzero when no distribution is running.
		if hasNoDistributions(out) {
			return RunningSet{}, nil
		}
		return nil, &Error{Op: "list-running", Err: err}
	}
	return NewRunningSet(parseQuietList(out)...), nil
}

// Install dispatches `--install --distribution <name> --no-launch`. The
// download and registration continue host-side after this returns.
func (c *CLI) Install(ctx context.Context, name string) error {
	return c.dispatch("install", name, "--install", "--distribution", name, "--no-launch")
}

// Launch boots the distribution by dispatching `--distribution <name>`. The
// spawned session keeps the instance alive; stdio is detached.
func (c *CLI) Launch(ctx context.Context, name string) error {
	return c.dispatch("launch", name, "--distribution", name)
}

// Terminate stops the distribution and surfaces a nonzero exit status.
func (c *CLI) Terminate(ctx context.Context, name string) error {
	if _, err := c.run(ctx, "--terminate", name); err != nil {
		return &Error{Op: "terminate", Name: name, Err: err}
	}
	return nil
}

// Unregister removes the registration and surfaces a nonzero exit status.
func (c *CLI) Unregister(ctx context.Context, name string) error {
	if _, err := c.run(ctx, "--unregister", name); err != nil {
		return &Error{Op: "unregister", Name: name, Err: err}
	}
	return nil
}

// run executes the binary to completion and returns decoded stdout. On a
// nonzero exit the error carries a stderr (or stdout) tail; decoded stdout is
// still returned so callers can recognize benign failure messages.
func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	out := decodeOutput(stdout.Bytes())
	if err != nil {
		tail := strings.TrimSpace(decodeOutput(stderr.Bytes()))
		if tail == "" {
			tail = strings.TrimSpace(out)
		}
		if tail != "" {
			return out, fmt.Errorf("%w: %s", err, tail)
		}
		return out, err
	}
	return out, nil
}

// dispatch starts the binary without waiting for completion. Only a start
// failure is reported; the child is reaped in the background.
func (c *CLI) dispatch(op, name string, args ...string) error {
	cmd := exec.Command(c.bin, args...)
	if err := cmd.Start(); err != nil {
		return &Error{Op: op, Name: name, Err: err}
	}
	c.log.Info().Str("op", op).Str("distribution", name).Int("pid", cmd.Process.Pid).Msg("host command dispatched")
	go func() { _ = cmd.Wait() }()
	return nil
}

// decodeOutput converts raw process output to a string. wsl.exe writes
// UTF-16LE when redirected, usually without a BOM, so sniff a BOM first and
// fall back to a NUL-byte heuristic before assuming UTF-8.
func decodeOutput(b []byte) string {
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE {
		return decodeUTF16(b[2:], binary.LittleEndian)
	}
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		return decodeUTF16(b[2:], binary.BigEndian)
	}
	if bytes.IndexByte(b, 0x00) >= 0 {
		return decodeUTF16(b, binary.LittleEndian)
	}
	return string(b)
}

func decodeUTF16(b []byte, ord binary.ByteOrder) string {
	u := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		u = append(u, ord.Uint16(b[i:]))
	}
	return string(utf16.Decode(u))
}

// hasNoDistributions recognizes the messages the binary prints when the
// registry (or the running set) is empty, which it reports as a failure.
func hasNoDistributions(out string) bool {
	l := strings.ToLower(out)
	return strings.Contains(l, "no installed distributions") ||
		strings.Contains(l, "no running distributions")
}

// parseVerboseList parses `--list --all --verbose` output: a header row, then
// one row per distribution with an optional default marker, the name, the
// state and the version. The header is skipped by position since its text is
// localized.
func parseVerboseList(out string) []Registration {
	var rows []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) <= 1 {
		return nil
	}
	regs := make([]Registration, 0, len(rows)-1)
	for _, row := range rows[1:] {
		row = strings.TrimSpace(strings.TrimPrefix(row, "*"))
		fields := strings.Fields(row)
		if len(fields) < 2 {
			continue
		}
		regs = append(regs, Registration{
			Name:    fields[0],
			Running: strings.EqualFold(fields[1], "Running"),
		})
	}
	return regs
}

// parseQuietList parses `--quiet` output: one name per line.
func parseQuietList(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if n := strings.TrimSpace(line); n != "" {
			names = append(names, n)
		}
	}
	return names
}
