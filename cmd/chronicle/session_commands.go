package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chronicle/internal/sessions"
)

func newSessionCommand(ctx *commandContext) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect recorded triage runs",
	}

	sessionCmd.AddCommand(newSessionListCommand(ctx))
	sessionCmd.AddCommand(newSessionShowCommand(ctx))
	sessionCmd.AddCommand(newSessionClearCommand(ctx))

	return sessionCmd
}

func newSessionListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *sessions.Store) error {
				listed, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}

				if jsonOutput {
					return printJSON(cmd.OutOrStdout(), listed)
				}

				out := cmd.OutOrStdout()
				if len(listed) == 0 {
					fmt.Fprintln(out, "No sessions recorded")
					return nil
				}

				rows := make([][]string, 0, len(listed))
				for _, session := range listed {
					rows = append(rows, []string{
						session.ID,
						session.CreatedAt.Local().Format(time.RFC3339),
						truncate(session.InputPath, 40),
						fmt.Sprintf("%d/%d", session.Kept, session.TotalProcessed),
						fmt.Sprintf("%d", session.GroupCount),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Created", "Input", "Kept", "Groups"},
					rows,
					3, 4,
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum sessions to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit sessions as JSON")
	return cmd
}

func newSessionShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show one recorded session in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *sessions.Store) error {
				session, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if session == nil {
					return fmt.Errorf("session %s not found", args[0])
				}

				if jsonOutput {
					return printJSON(cmd.OutOrStdout(), session)
				}

				pairs := [][2]string{
					{"Session", session.ID},
					{"Created", session.CreatedAt.Local().Format(time.RFC3339)},
					{"Input", session.InputPath},
					{"Reports", session.ReportPath},
					{"Processed", fmt.Sprintf("%d", session.TotalProcessed)},
					{"Kept", fmt.Sprintf("%d", session.Kept)},
					{"Duplicates flagged", fmt.Sprintf("%d", session.DuplicatesFlagged)},
					{"Categories", fmt.Sprintf("%d", session.CategoryCount)},
					{"Groups", fmt.Sprintf("%d", session.GroupCount)},
				}
				fmt.Fprint(cmd.OutOrStdout(), renderKeyValues(pairs))
				if session.StatsJSON != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "\nFilter stats: %s\n", session.StatsJSON)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the session as JSON")
	return cmd
}

func newSessionClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *sessions.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d sessions\n", removed)
				return nil
			})
		},
	}
}
