package main

import (
	"errors"
	"fmt"

	"github.com/piresc/tiffinhub/internal/pkg/logger"
	"github.com/piresc/tiffinhub/internal/pkg/session"
	"github.com/spf13/cobra"
)

func newLoginCmd(c *cli) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a bearer token issued by the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return errors.New("--token is required")
			}
			a, err := c.getApp(cmd)
			if err != nil {
				return err
			}

			user, err := session.SetSessionFromToken(a.store, token)
			if err != nil {
				return fmt.Errorf("invalid token: %w", err)
			}
			if !a.persistent() {
				logger.Warn("Session store is in memory, the session ends with this command")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.ID, serviceTypeLabel(string(user.ServiceType)))
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "bearer token")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.getApp(cmd)
			if err != nil {
				return err
			}
			a.store.ClearSession()
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func serviceTypeLabel(st string) string {
	if st == "" {
		return "unknown service"
	}
	return st
}
