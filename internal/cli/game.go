package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Current game commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Put the first eligible teams on court",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post("/api/v1/game/start", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "winner <team-id>",
		Short: "Finish the game; the loser goes to the back of the queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post("/api/v1/game/winner", request.WinnerRequest{TeamID: args[0]}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
