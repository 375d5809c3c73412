package main

import (
	"github.com/bornholm/procuradoria/internal/command"
	"github.com/bornholm/procuradoria/internal/command/dashboard"
	"github.com/bornholm/procuradoria/internal/command/distribution"
	"github.com/bornholm/procuradoria/internal/command/move"
	"github.com/bornholm/procuradoria/internal/command/report"
	"github.com/bornholm/procuradoria/internal/command/tasks"
)

func main() {
	command.Main(
		"procuradoria-cli", "a procuradoria task desk client",
		tasks.Command(),
		distribution.Command(),
		dashboard.Command(),
		report.Command(),
		move.Command(),
	)
}
