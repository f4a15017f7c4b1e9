// the serve command is used to start the status server
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/ops-status-dashboard/internal/cli/handler"
	"github.com/bnema/ops-status-dashboard/internal/common"
	"github.com/bnema/ops-status-dashboard/internal/server"
	"github.com/bnema/ops-status-dashboard/pkg/logger"
)

// ServeOptions holds the flags shared by the root and serve commands.
type ServeOptions struct {
	ConfigPath string
	Port       string
}

// AddServeFlags registers the serve flags on c.
func AddServeFlags(c *cobra.Command, opts *ServeOptions) {
	c.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to the config file (default: config.yml, or $OPS_CONFIG)")
	c.Flags().StringVarP(&opts.Port, "port", "p", "", "port to listen on (overrides config and $OPS_HTTP_PORT)")
}

func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the status server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunServe(opts)
		},
	}
	AddServeFlags(c, opts)
	return c
}

// RunServe loads the configuration and runs the server until it is stopped.
func RunServe(opts *ServeOptions) error {
	a, err := NewServerFromOptions(opts)
	if err != nil {
		logger.Error("Failed to start server", "error", err)
		return err
	}
	return handler.StartServer(a)
}

// NewServerFromOptions builds the server app the serve command would run.
func NewServerFromOptions(opts *ServeOptions) (*server.App, error) {
	config, err := common.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.Port != "" {
		config.Http.Port = opts.Port
		if err := config.Validate(); err != nil {
			return nil, err
		}
	}

	l := logger.GetLogger()
	l.SetLogLevel(config.General.LogLevel)
	if config.IsDev() {
		l.ConfigureFromEnv()
	}

	return server.NewServerApp(config)
}
