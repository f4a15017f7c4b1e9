package handler

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/bnema/ops-status-dashboard/internal/common"
)

var sectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("69")).
	PaddingRight(1)

// RenderReport prints each section as a header followed by its JSON body,
// then the health verdict and any version difference with the CLI.
func RenderReport(w io.Writer, report *Report, cliVersion string) {
	for _, s := range report.Sections {
		fmt.Fprintln(w, sectionStyle.Render(s.Path))
		if s.Err != nil {
			color.New(color.FgRed).Fprintf(w, "Error: %s\n", s.Err)
		}
		if s.Body != "" {
			fmt.Fprintln(w, s.Body)
		}
		fmt.Fprintln(w)
	}

	if report.Healthy {
		color.New(color.FgGreen).Fprintln(w, "Server is healthy")
	} else {
		color.New(color.FgRed).Fprintln(w, "Server is not healthy")
	}

	if report.ServerVersion == "" {
		return
	}
	if msg := common.CheckForNewVersion(cliVersion, report.ServerVersion); msg != "" {
		color.New(color.FgYellow).Fprintln(w, msg)
	}
}
