package main

import (
	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/spf13/cobra"
)

// cli builds the app lazily so purely local commands never touch the network
type cli struct {
	loadConfig func() *models.Config
	app        *app
}

func (c *cli) getApp(cmd *cobra.Command) (*app, error) {
	if c.app != nil {
		return c.app, nil
	}
	a, err := newApp(cmd.Context(), c.loadConfig())
	if err != nil {
		return nil, err
	}
	c.app = a
	return a, nil
}

func (c *cli) close() {
	if c.app != nil {
		c.app.close()
		c.app = nil
	}
}

// newRootCmd returns the command tree and a cleanup func to run after Execute
func newRootCmd(loadConfig func() *models.Config) (*cobra.Command, func()) {
	c := &cli{loadConfig: loadConfig}

	root := &cobra.Command{
		Use:          "tiffin",
		Short:        "TiffinHub provider client",
		SilenceUsage: true,
	}

	root.AddCommand(
		newLoginCmd(c),
		newLogoutCmd(c),
		newChatCmd(c),
		newCardCmd(),
		newOTPCmd(c),
	)
	return root, c.close
}
