package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
)

func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the whole court",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.State
			if err := client.Get("/api/v1/state", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.AddCommand(newStateImportCmd())

	return cmd
}

func newStateImportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the court with a snapshot from a JSON file",
		Long: `Replace the court with a snapshot read from a JSON file of the form:

  {"players": [{"id": "...", "name": "..."}],
   "teams": [{"id": "...", "name": "...", "player_ids": ["..."]}],
   "current_game": {"team_a": "...", "team_b": "..."}}

The snapshot is normalized on import.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			var snapshot request.ReplaceStateRequest
			if err := json.Unmarshal(data, &snapshot); err != nil {
				return fmt.Errorf("invalid snapshot %s: %w", file, err)
			}

			var result response.State
			if err := client.Put("/api/v1/state", snapshot, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Snapshot file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newResetCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe every player, team and game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.State
			if err := client.Post("/api/v1/reset", request.ResetRequest{Password: password}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
