// File: cmd/session.go
package cmd

import (
	"fmt"

	"github.com/basedbeardjones-alt/SwagFliperino/internal/observability"
	"github.com/basedbeardjones-alt/SwagFliperino/internal/session"
	"github.com/spf13/cobra"
)

// newSessionCmd creates the `session` command group for inspecting and
// clearing the persisted copilot login cache.
func newSessionCmd() *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or reset the persisted copilot login session",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a usable login session is cached",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := session.NewManager(cfg.SessionCfg, observability.GetLogger())
			if err != nil {
				return err
			}
			defer mgr.Close()

			if !mgr.LoggedIn() {
				fmt.Fprintln(cmd.OutOrStdout(), "not logged in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as copilot user %d\n", mgr.CopilotUserID())
			for _, id := range mgr.AccountIDs() {
				fmt.Fprintf(cmd.OutOrStdout(), "  account %d: %s\n", id, mgr.DisplayName(id))
			}
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the cached login session and delete its file",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := session.NewManager(cfg.SessionCfg, observability.GetLogger())
			if err != nil {
				return err
			}
			defer mgr.Close()

			mgr.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "session cleared")
			return nil
		},
	}

	sessionCmd.AddCommand(statusCmd, resetCmd)
	return sessionCmd
}
