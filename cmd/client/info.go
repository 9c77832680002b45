package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoSession = errors.New("no session: set a local storage path")

func newSessionCmd(env *clientEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Print the session identifier of this client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, sessionID := env.app.WithSession(cmd.Context())
			if sessionID == "" {
				return errNoSession
			}
			fmt.Fprintln(cmd.OutOrStdout(), sessionID)
			return nil
		},
	}
}

func newVersionCmd(env *clientEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build information and the note store version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", env.info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", env.info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", env.info.BuildCommit())

			server, err := env.services.NoteService.ServerVersion(cmd.Context())
			if err != nil {
				server = "unavailable"
			}
			fmt.Fprintf(out, "Server version: %s\n", server)
			return nil
		},
	}
}
