// Package cli implements the spintax command line tool.
package cli

import (
	"fmt"

	"github.com/aescanero/dago-node-spintax/internal/config"
	"github.com/aescanero/dago-node-spintax/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

type rootOptions struct {
	logLevel string
}

// RootCmd creates and returns the root command with all subcommands
func RootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "spintax",
		Short: "Render spintax templates deterministically",
		Long: `spintax expands templates made of {option|option} groups and
{{name}} placeholders. The choice made for every group depends only on the
seed, so the same seed always renders the same text.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !config.IsValidLogLevel(opts.logLevel) {
				return fmt.Errorf("--log-level must be one of: debug, info, warn, error")
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr (debug, info, warn, error)")

	cmd.AddCommand(renderCmd(opts))
	cmd.AddCommand(pageCmd(opts))
	cmd.AddCommand(hashCmd())

	return cmd
}

// logger builds a console logger on stderr so stdout only carries output
func (o *rootOptions) logger() (*zap.Logger, error) {
	cfg := logging.Config(o.logLevel, "console")
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
