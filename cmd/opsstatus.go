package cmd

import (
	"github.com/spf13/cobra"

	_ "github.com/joho/godotenv/autoload"

	"github.com/bnema/ops-status-dashboard/internal/cli/cmd"
	"github.com/bnema/ops-status-dashboard/pkg/version"
)

// NewRootCommand builds the ops-status command tree. Without a subcommand
// the server is started.
func NewRootCommand() *cobra.Command {
	opts := &cmd.ServeOptions{}
	rootCmd := &cobra.Command{
		Use:           "ops-status",
		Short:         "Read-only operations status dashboard",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		Version:       version.Version(),
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.RunServe(opts)
		},
	}
	cmd.AddServeFlags(rootCmd, opts)

	rootCmd.AddCommand(cmd.NewServeCommand())
	rootCmd.AddCommand(cmd.NewVersionCommand())
	rootCmd.AddCommand(cmd.NewCheckCommand())

	return rootCmd
}

func ExecuteCLI(build, commit, date string) {
	version.Set(build, commit, date)
	cobra.CheckErr(NewRootCommand().Execute())
}
