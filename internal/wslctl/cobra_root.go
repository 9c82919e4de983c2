package wslctl

import (
	"os"

	"github.com/spf13/cobra"
)

// buildRootCmd is a convenience for help-only fallbacks.
func buildRootCmd() *cobra.Command {
	return buildRootCmdWith(&Config{Server: envStr("WSLD_SERVER", defaultServer), LogLvl: envStr("WSLCTL_LOG_LEVEL", "info")})
}

// buildRootCmdWith constructs a Cobra command tree wired to the fn* actions.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "wslctl",
		Short:         "Control a running wsld daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().String("server", cfg.Server, "Base URL of the wsld daemon (defaults WSLD_SERVER or "+defaultServer+")")
	root.PersistentFlags().String("log-level", cfg.LogLvl, "Log level: debug|info|warn (defaults WSLCTL_LOG_LEVEL or info)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := cmd.InheritedFlags().Lookup("server"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.Server = v
			}
		}
		if f := cmd.InheritedFlags().Lookup("log-level"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.LogLvl = v
			}
		}
		SetLogLevel(cfg.LogLvl)
	}

	listCmd := &cobra.Command{Use: "list", Aliases: []string{"ls"}, Short: "List registered distributions", Example: "  wslctl list", RunE: func(cmd *cobra.Command, args []string) error { return fnList(cfg) }}
	availableCmd := &cobra.Command{Use: "available", Short: "List catalog definitions not yet registered", Example: "  wslctl available", RunE: func(cmd *cobra.Command, args []string) error { return fnAvailable(cfg) }}
	runningCmd := &cobra.Command{Use: "running", Short: "List currently running distributions", RunE: func(cmd *cobra.Command, args []string) error { return fnRunning(cfg) }}
	showCmd := &cobra.Command{Use: "show <name>", Short: "Show one registered distribution as of the last refresh", Args: cobra.ExactArgs(1), RunE: func(cmd *cobra.Command, args []string) error { return fnShow(cfg, args[0]) }}
	statusCmd := &cobra.Command{Use: "status", Short: "Show daemon status", RunE: func(cmd *cobra.Command, args []string) error { return fnStatus(cfg) }}
	watchCmd := &cobra.Command{Use: "watch", Short: "Stream the running set as the daemon polls the host", Example: "  wslctl watch", RunE: func(cmd *cobra.Command, args []string) error { return fnWatch(cfg) }}
	root.AddCommand(listCmd, availableCmd, runningCmd, showCmd, statusCmd, watchCmd)

	// lifecycle commands
	for _, op := range []string{"install", "launch", "terminate", "unregister"} {
		op := op
		root.AddCommand(&cobra.Command{
			Use:     op + " <name>",
			Short:   commandShort(op),
			Example: "  wslctl " + op + " Ubuntu-24.04",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return fnCommand(cfg, op, args[0])
			},
		})
	}

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) }})
	root.AddCommand(completionCmd)

	return root
}

func commandShort(op string) string {
	switch op {
	case "install":
		return "Install a distribution from the catalog"
	case "launch":
		return "Launch a registered distribution"
	case "terminate":
		return "Terminate a running distribution"
	case "unregister":
		return "Unregister a distribution from the host"
	}
	return ""
}
