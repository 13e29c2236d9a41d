package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
)

func newQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Show the waiting teams in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showQueue(cmd, "")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "search <text>",
		Short: "Find waiting teams by team or player name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showQueue(cmd, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reorder <team-id>...",
		Short: "Set the order of the waiting teams",
		Long:  "Set the order of the waiting teams. Every waiting team must be listed exactly once.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Queue
			if err := client.Put("/api/v1/queue", request.ReorderRequest{TeamIDs: args}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	return cmd
}

func showQueue(cmd *cobra.Command, query string) error {
	path := "/api/v1/queue"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var result response.Queue
	if err := client.Get(path, &result); err != nil {
		return err
	}

	output(cmd).Print(result)
	return nil
}
