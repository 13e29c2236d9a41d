package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newPlayerSwapCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PlayerList
			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Sign a player in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Player
			if err := client.Post("/api/v1/players", request.AddPlayerRequest{Name: args[0]}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the court",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + pathID(args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Player removed")
			return nil
		},
	}
}

func newPlayerSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <player-id> <player-id>",
		Short: "Swap two players between teams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SwapPlayersRequest{First: args[0], Second: args[1]}
			var result response.State
			if err := client.Post("/api/v1/players/swap", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
