package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bnema/ops-status-dashboard/internal/domain"
	"github.com/bnema/ops-status-dashboard/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	var short bool
	c := &cobra.Command{
		Use:   "version",
		Short: "Display the version of the status server",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()

			if short {
				fmt.Fprintln(out, info.Version)
				return
			}

			color.New(color.FgGreen).Fprintf(out, "%s %s\n", domain.AppName, info.Version)
			fmt.Fprintf(out, "Commit:     %s\n", info.Commit)
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
		},
	}
	c.Flags().BoolVarP(&short, "short", "s", false, "print the version number only")
	return c
}
