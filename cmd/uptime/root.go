package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rugwirobaker/uptime/internal/command"
	"github.com/rugwirobaker/uptime/internal/config"
	"github.com/rugwirobaker/uptime/internal/flag"
	"github.com/rugwirobaker/uptime/internal/iostreams"
	"github.com/rugwirobaker/uptime/internal/uptime"
	"github.com/rugwirobaker/uptime/internal/utmp"
	"github.com/spf13/cobra"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func NewRootCmd() *cobra.Command {
	const (
		long = "Prints the current time, how long the system has been running, " +
			"how many users are logged in and the 1, 5 and 15 minute load averages."
		short = "Tell how long the system has been running"
	)

	cmd := command.New("uptime", short, long, runUptime)
	cmd.Version = version

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
	}

	flag.Add(cmd,
		flag.Config(),
		flag.Debug(),
		flag.String{
			Name:        "log-format",
			Description: `Log format, "text" or "json"`,
		},
		flag.String{
			Name:        "log-path",
			Description: "Write logs to this file instead of stderr",
		},
	)
	return cmd
}

func runUptime(ctx context.Context) error {
	io := iostreams.FromContext(ctx)

	cfg, err := config.Load(flag.GetString(ctx, "config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override configuration with command-line flags
	cfg.OverrideWithFlags(ctx)

	if err := cfg.Validate(); err != nil {
		return err
	}

	closeLog, err := configureLogger(cfg, io.ErrOut)
	if err != nil {
		return err
	}
	defer closeLog()

	sessions, err := utmp.New(cfg.Sessions.Source, cfg.Sessions.File)
	if err != nil {
		return err
	}

	report, err := uptime.NewReporter(sessions).Collect(ctx)
	if err != nil {
		return err
	}
	slog.Debug("collected report",
		"uptime_seconds", report.Uptime.Seconds,
		"users", report.Users,
		"fscale", report.Load.Fscale,
	)

	return uptime.Write(io.Out, report)
}
