package cmd

import (
	"fmt"
	"io"

	"github.com/boostgo/accio"
	"github.com/boostgo/accio/internal/config"
	"github.com/boostgo/accio/internal/logger"
	"github.com/spf13/cobra"
)

func runSearch(cmd *cobra.Command, opts *rootOptions, target string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	switch cfg.Color {
	case config.ColorAlways:
		log.SetColor(true)
	case config.ColorNever:
		log.SetColor(false)
	}

	root, err := accio.ResolveRoot(opts.dir)
	if err != nil {
		log.LogError(describeFailure(err))
		return reported(err)
	}
	log.LogDebug(fmt.Sprintf("searching %s for %q", root, target))

	searchOpts := []accio.SearchOption{
		accio.WithQueueLimit(cfg.QueueLimit),
		accio.WithSkipHandler(func(path string, err error) {
			log.LogDebug(fmt.Sprintf("skipped %s: %v", path, err))
		}),
	}

	found, err := search(cmd.OutOrStdout(), root, target, cfg.All, searchOpts)
	if err != nil {
		log.LogError(describeFailure(err))
		return reported(err)
	}

	if found == 0 {
		log.LogError("File not found")
		return reported(ErrNotFound)
	}

	log.LogDebug(fmt.Sprintf("%d match(es)", found))
	return nil
}

// search prints matches to out and returns how many were found
func search(out io.Writer, root, target string, all bool, opts []accio.SearchOption) (int, error) {
	if all {
		return accio.FindAll(root, target, func(path string) {
			fmt.Fprintln(out, path)
		}, opts...)
	}

	path, ok, err := accio.FindFirst(root, target, opts...)
	if err != nil || !ok {
		return 0, err
	}

	fmt.Fprintln(out, path)
	return 1, nil
}

func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	var (
		logLevel   *string
		all        *bool
		noColor    *bool
		queueLimit *int
	)

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		logLevel = &opts.logLevel
	}
	if flags.Changed("all") {
		all = &opts.all
	}
	if flags.Changed("no-color") {
		noColor = &opts.noColor
	}
	if flags.Changed("queue-limit") {
		queueLimit = &opts.queueLimit
	}
	cfg.MergeWithFlags(logLevel, all, noColor, queueLimit)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// describeFailure renders a fatal search error for the operator
func describeFailure(err error) string {
	path, ok := accio.FailedPath(err)
	if !ok {
		return err.Error()
	}

	return fmt.Sprintf("cannot search %s (%s): %v", path, accio.FailureOf(err), err)
}
