package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

type rootOptions struct {
	dir        string
	all        bool
	configPath string
	logLevel   string
	noColor    bool
	queueLimit int
}

// NewRootCommand creates and returns the root cobra command for accio
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "accio [flags] <name>",
		Short: "Find files and directories by exact name, breadth-first",
		Long: `Accio searches a directory tree level by level for entries whose name
is exactly <name> and prints the path of the first one found, or of every
one with --all.

Unreadable directories are skipped. Symbolic links are never followed.

Exit code: 0 if found, 1 if not found, 2 on errors`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args[0])
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.dir, "dir", "d", "", "base directory to search (default: working directory)")
	flags.BoolVarP(&opts.all, "all", "a", false, "report every occurrence instead of the first")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/accio/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored log output")
	flags.IntVar(&opts.queueLimit, "queue-limit", 0, "abort when more directories than this are pending (0 = unlimited)")

	return cmd
}
