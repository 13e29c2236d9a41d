package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team management commands",
	}

	cmd.AddCommand(newTeamListCmd())
	cmd.AddCommand(newTeamCreateCmd())
	cmd.AddCommand(newTeamRandomCmd())
	cmd.AddCommand(newTeamEditCmd())
	cmd.AddCommand(newTeamRemoveCmd())
	cmd.AddCommand(newTeamMoveCmd())

	return cmd
}

func newTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.TeamList
			if err := client.Get("/api/v1/teams", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newTeamCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create <player-id>...",
		Short: "Form a team from up to three players",
		Long:  "Form a team from up to three unassigned players. Without --name a name is generated from the players' initials.",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Team
			if err := client.Post("/api/v1/teams", request.TeamRequest{Name: name, PlayerIDs: args}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Team name")

	return cmd
}

func newTeamRandomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Form a team from randomly chosen unassigned players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Team
			if err := client.Post("/api/v1/teams/random", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newTeamEditCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "edit <team-id> [player-id]...",
		Short: "Replace a team's roster",
		Long:  "Replace a team's roster. Without --name the current name is kept.",
		Args:  cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.TeamRequest{Name: name, PlayerIDs: args[1:]}
			var result response.Team
			if err := client.Put("/api/v1/teams/"+pathID(args[0]), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New team name")

	return cmd
}

func newTeamRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <team-id>",
		Short: "Disband a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/teams/" + pathID(args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage("Team removed")
			return nil
		},
	}
}

func newTeamMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "move <team-id> <up|down>",
		Short:     "Move a waiting team one place in the queue",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := args[1]
			if direction != "up" && direction != "down" {
				return fmt.Errorf("direction must be up or down, got %q", direction)
			}

			var result response.Queue
			path := fmt.Sprintf("/api/v1/teams/%s/move", pathID(args[0]))
			if err := client.Post(path, request.MoveTeamRequest{Direction: direction}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
