// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/coffee-notes/internal/adapter"
	"github.com/MKhiriev/coffee-notes/internal/client"
	"github.com/MKhiriev/coffee-notes/internal/config"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/MKhiriev/coffee-notes/internal/store"
	"github.com/MKhiriev/coffee-notes/internal/tui"
	"github.com/MKhiriev/coffee-notes/models"
)

// clientEnv is the wired client shared by all commands.
type clientEnv struct {
	info models.AppBuildInfo

	log      *logger.Logger
	storages *store.ClientStorages
	services *service.ClientServices
	app      *client.App
}

func (e *clientEnv) init(ctx context.Context, overrides config.ClientOverrides) error {
	if e.app != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log := logger.NewClientLogger("coffee-notes-client", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)

	noteStore, err := adapter.NewHTTPNoteStore(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating note store adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating local storage: %w", err)
	}

	services := service.NewClientServices(noteStore, storages.Sessions(), log)

	board, err := tui.New(services, e.info, log)
	if err != nil {
		_ = storages.Close()
		return fmt.Errorf("error creating board: %w", err)
	}

	app, err := client.NewApp(services, board, log)
	if err != nil {
		_ = storages.Close()
		return fmt.Errorf("error creating client app: %w", err)
	}

	e.log, e.storages, e.services, e.app = log, storages, services, app
	return nil
}

func (e *clientEnv) close() error {
	if e.storages == nil {
		return nil
	}
	return e.storages.Close()
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	return newRootCmdWithEnv(&clientEnv{info: info})
}

func newRootCmdWithEnv(env *clientEnv) *cobra.Command {
	var overrides config.ClientOverrides

	cmd := &cobra.Command{
		Use:   "coffee-notes",
		Short: "A shared board of sticky notes for coffee-break thoughts",
		Long: `Coffee Notes is a shared board of sticky notes: reflections, good and
bad advice and resource lists. Without a subcommand the interactive board
is started.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.init(cmd.Context(), overrides)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return env.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.app.Run(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&overrides.ServerAddress, "server", "a", "", "note store address, e.g. http://localhost:8080")
	flags.DurationVar(&overrides.RequestTimeout, "timeout", 0, "timeout of a single note store request")
	flags.StringVar(&overrides.LocalPath, "local", "", "SQLite file holding the session identifier")
	flags.StringVarP(&overrides.ConfigPath, "config", "c", "", "JSON configuration file")
	flags.StringVar(&overrides.LogFile, "log-file", "", "client log file")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "minimum log level (debug, info, warn, error)")

	cmd.AddCommand(
		newListCmd(env),
		newAddCmd(env),
		newEditCmd(env),
		newMoveCmd(env),
		newLikeCmd(env),
		newDeleteCmd(env),
		newSessionCmd(env),
		newVersionCmd(env),
	)

	return cmd
}
