package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/harbor-admin/internal/client"
	"github.com/MKhiriev/harbor-admin/internal/config"
	"github.com/MKhiriev/harbor-admin/internal/logger"
	"github.com/MKhiriev/harbor-admin/models"
	"github.com/spf13/cobra"
)

const appName = "harbor-admin"

// NewRootCmd builds the command tree. buildInfo is reported by the version
// subcommand and the about window.
func NewRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Administer user accounts of the backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, buildInfo)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newTUICmd(buildInfo),
		newListCmd(buildInfo),
		newCreateCmd(buildInfo),
		newPasswdCmd(buildInfo),
		newDeleteCmd(buildInfo),
		newVersionCmd(buildInfo),
	)

	return root
}

// Execute runs the command tree and prints a failure to stderr.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo) error {
	cmd := NewRootCmd(buildInfo)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", describeError(err))
		return err
	}
	return nil
}

// loadApp reads the configuration of cmd and wires the application.
// The caller closes the returned App.
func loadApp(cmd *cobra.Command, buildInfo models.AppBuildInfo) (*client.App, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	log := logger.NewClientLogger(appName, cfg.Log.File, level)

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("cannot start")
		_ = log.Close()
		return nil, err
	}

	log.Debug().Str("command", cmd.Name()).Msg("command started")
	return app, nil
}

func newTUICmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive user administration panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, buildInfo)
		},
	}
}

func runTUI(cmd *cobra.Command, buildInfo models.AppBuildInfo) error {
	app, err := loadApp(cmd, buildInfo)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(cmd.Context())
}

func newVersionCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", buildInfo.Version())
			fmt.Fprintf(out, "Build date: %s\n", buildInfo.Date())
			fmt.Fprintf(out, "Build commit: %s\n", buildInfo.Commit())
		},
	}
}
