package wslctl

import (
	"fmt"
	"os"
)

const defaultServer = "http://127.0.0.1:8080"

// Config carries the settings shared by every wslctl command.
type Config struct {
	Server string
	LogLvl string
}

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string) int {
	cfg := &Config{Server: envStr("WSLD_SERVER", defaultServer), LogLvl: envStr("WSLCTL_LOG_LEVEL", "info")}
	root := buildRootCmdWith(cfg)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code (0 for success, non-zero on error) for use by cmd/wslctl.
func Main() int { return MainWithArgs(os.Args[1:]) }
