package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/swiftstream/site/pkg/config"
	"github.com/swiftstream/site/pkg/llm/openrouter"
)

var (
	cfg       config.Config
	llmClient *openrouter.Client

	modelFlag string
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "swiftctl",
		Short:         "SwiftStream Logistics demo console",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			if modelFlag != "" {
				cfg.LLMModel = modelFlag
			}
			llmClient = openrouter.New(
				cfg.LLMAPIKey,
				cfg.LLMBaseURL,
				cfg.LLMModel,
				cfg.LLMAppTitle,
				cfg.LLMReferer,
			).WithTimeout(time.Duration(cfg.LLMTimeoutSeconds) * time.Second)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&modelFlag, "model", "", "model identifier (default from LLM_MODEL)")

	root.AddCommand(quoteCmd(), trackCmd(), chatCmd(), migrateCmd())
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
