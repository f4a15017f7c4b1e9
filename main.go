package main

import (
	"github.com/bnema/ops-status-dashboard/cmd"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	cmd.ExecuteCLI(version, commit, date)
}
