package main

import (
	"fmt"

	"github.com/piresc/tiffinhub/internal/pkg/card"
	"github.com/spf13/cobra"
)

func newCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Card input helpers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "number <raw>",
			Short: "Format a card number as typed",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), card.FormatCardNumber(args[0]))
			},
		},
		&cobra.Command{
			Use:   "expiry <raw>",
			Short: "Format an expiry date as typed",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), card.FormatExpiry(args[0]))
			},
		},
		newCardValidateCmd(),
	)
	return cmd
}

func newCardValidateCmd() *cobra.Command {
	var form card.Form

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a card form may be submitted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := card.ValidateForm(form); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Number, "number", "", "card number")
	cmd.Flags().StringVar(&form.Expiry, "expiry", "", "expiry as MM/YY")
	cmd.Flags().StringVar(&form.CVV, "cvv", "", "security code")
	cmd.Flags().StringVar(&form.Name, "name", "", "name on card")
	return cmd
}
