// Package cli implements the fluentcat command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"fluentcat/internal/config"
	"fluentcat/internal/logger"
)

var (
	configPath string

	cfg *config.Config
	log *slog.Logger
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "fluentcat",
		Short:        "Toolkit for Fluent localization resources",
		Long:         `fluentcat lints, inspects and renders Fluent (.ftl) localization resources: syntax checks, cross-locale key parity, placeholder parity, and ad-hoc message rendering with plural selection.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			log = logger.Init(cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./fluentcat.toml)")

	root.AddCommand(
		newLintCommand(),
		newKeysCommand(),
		newRenderCommand(),
		newWatchCommand(),
	)

	return root
}

// localesDir resolves the resource directory: positional argument first,
// then the configured default.
func localesDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.LocalesDir
}
