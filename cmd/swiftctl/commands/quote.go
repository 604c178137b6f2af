package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swiftstream/site/pkg/quote"
)

// quote --origin A --destination B [--weight 10] [--type air]: print a quote as JSON.
func quoteCmd() *cobra.Command {
	req := quote.DefaultRequest()
	var transport string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Generate a freight quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Type = quote.TransportType(transport)
			svc := quote.NewService(llmClient, cfg.LLMModel)

			res, err := svc.Generate(cmd.Context(), req)
			if err != nil {
				var verr quote.ErrValidation
				if errors.As(err, &verr) {
					return verr
				}
				return fmt.Errorf("failed to generate quote: %w", err)
			}
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Origin, "origin", "", "origin city, country")
	cmd.Flags().StringVar(&req.Destination, "destination", "", "destination city, country")
	cmd.Flags().Float64Var(&req.Weight, "weight", req.Weight, "weight in kg")
	cmd.Flags().StringVar(&req.Dimensions, "dimensions", "", "dimensions, e.g. 120x80x100 cm")
	cmd.Flags().StringVar(&transport, "type", string(req.Type), "transport type: air, ocean, road or rail")
	return cmd
}
