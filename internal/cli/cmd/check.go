package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/ops-status-dashboard/internal/cli"
	"github.com/bnema/ops-status-dashboard/internal/cli/handler"
	"github.com/bnema/ops-status-dashboard/internal/common"
	"github.com/bnema/ops-status-dashboard/pkg/version"
)

// ErrUnhealthy is returned by the check command when /health is not ok.
var ErrUnhealthy = errors.New("server is not healthy")

func NewCheckCommand() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)
	c := &cobra.Command{
		Use:   "check",
		Short: "Query a running status server and print its status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = defaultCheckURL()
			}
			a := cli.NewClientApp(baseURL, timeout)

			report, err := handler.CheckServer(cmd.Context(), a)
			handler.RenderReport(cmd.OutOrStdout(), report, version.Version())
			if err != nil {
				return err
			}
			if !report.Healthy {
				return ErrUnhealthy
			}
			return nil
		},
	}
	c.Flags().StringVarP(&baseURL, "url", "u", "", "base URL of the server (default: from config)")
	c.Flags().DurationVarP(&timeout, "timeout", "t", cli.DefaultTimeout, "timeout for each request")
	return c
}

func defaultCheckURL() string {
	config, err := common.LoadConfig("")
	if err != nil {
		config = common.DefaultConfig()
	}
	return cli.DefaultBaseURL(config)
}
