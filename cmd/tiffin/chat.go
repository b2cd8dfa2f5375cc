package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/piresc/tiffinhub/internal/pkg/models"
	"github.com/piresc/tiffinhub/services/chat/screen"
	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04"

func newChatCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the admin",
	}
	cmd.AddCommand(newChatHistoryCmd(c), newChatSendCmd(c))
	return cmd
}

func newChatHistoryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the conversation with the admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.getApp(cmd)
			if err != nil {
				return err
			}
			ctx, end := a.trace(cmd.Context(), "cli/chat history")
			defer end()

			conv := screen.NewConversation(a.chatUC(), a.store)
			defer conv.Close()

			history := conv.Open(ctx)
			if !history.Success {
				return errors.New(history.Error)
			}

			printConversation(cmd.OutOrStdout(), conv.Handle())
			return nil
		},
	}
}

func newChatSendCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "send <message>",
		Short: "Send a message to the admin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.getApp(cmd)
			if err != nil {
				return err
			}
			ctx, end := a.trace(cmd.Context(), "cli/chat send")
			defer end()

			conv := screen.NewConversation(a.chatUC(), a.store)
			defer conv.Close()

			conv.SetDraft(strings.Join(args, " "))
			if err := conv.Send(ctx); err != nil {
				return err
			}

			handle := conv.Handle()
			if n := len(handle.Messages); n > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Sent %s\n", handle.Messages[n-1].ID)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sent")
			return nil
		},
	}
}

func printConversation(w io.Writer, handle models.ConversationHandle) {
	if !handle.HasConversation || len(handle.Messages) == 0 {
		fmt.Fprintln(w, "No conversation yet")
		return
	}

	for _, msg := range handle.Messages {
		sender := msg.SenderID
		if sender == models.AdminReceiverID {
			sender = "Admin"
		}
		if msg.CreatedAt.IsZero() {
			fmt.Fprintf(w, "%s: %s\n", sender, msg.Body)
			continue
		}
		fmt.Fprintf(w, "[%s] %s: %s\n", msg.CreatedAt.Local().Format(timeLayout), sender, msg.Body)
	}
}
