package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
)

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as court admin",
		Long:  "Log in with the admin password and save the session token to the token file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.AuthResponse
			if err := client.Post("/api/v1/auth/login", request.LoginRequest{Password: password}, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.SessionToken); err != nil {
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

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/auth/logout", nil, nil); err != nil {
				return err
			}
			if err := cfg.ClearToken(); err != nil {
				return err
			}

			output(cmd).PrintMessage("Logged out")
			return nil
		},
	}
}
