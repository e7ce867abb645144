package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the assistant a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 90*time.Second)
		defer cancel()

		reply := svc.assistant.Reply(ctx, strings.Join(args, " "))
		if reply == "" {
			return fmt.Errorf("message is blank")
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	},
}
