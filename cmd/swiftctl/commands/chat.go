package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swiftstream/site/pkg/chat"
)

// chat: read lines from stdin, print SwiftBot replies. Blank lines are skipped.
func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to SwiftBot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := cfg.ChatHistoryLimit
			assistant := chat.NewAssistant(chat.NewModelStarter(llmClient, chat.NewMemoryHistory(limit), limit))

			w := cmd.OutOrStdout()
			sc := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(w, "> ")
			for sc.Scan() {
				text := strings.TrimSpace(sc.Text())
				if text == "" {
					fmt.Fprint(w, "> ")
					continue
				}
				if text == "/quit" {
					return nil
				}
				reply, err := assistant.SendMessage(cmd.Context(), text)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "SwiftBot: %s\n> ", reply.Text)
			}
			return sc.Err()
		},
	}
}
