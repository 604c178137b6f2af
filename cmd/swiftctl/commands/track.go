package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	pgrepo "github.com/swiftstream/site/pkg/repository/postgres"
	"github.com/swiftstream/site/pkg/storage/postgres"
	"github.com/swiftstream/site/pkg/tracking"
)

// track <id>: print the shipment timeline, newest first.
func trackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track <tracking-id>",
		Short: "Look a shipment up by tracking id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			finder, closeFn, err := openFinder(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			sh, err := tracking.NewService(finder).Lookup(cmd.Context(), args[0])
			if errors.Is(err, tracking.ErrNotFound) {
				if cfg.DatabaseURL == "" {
					return fmt.Errorf("tracking id not found, try %s for a demo", tracking.DemoTrackingID)
				}
				return fmt.Errorf("tracking id not found")
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s  %s -> %s\n", sh.TrackingID, sh.Origin, sh.Destination)
			fmt.Fprintf(w, "status: %s  eta: %s\n", sh.CurrentStatus, sh.EstimatedDelivery)
			for _, u := range sh.Updates {
				fmt.Fprintf(w, "  %-18s %-20s %-18s %s\n", u.Timestamp, u.Location, u.Status, u.Description)
			}
			return nil
		},
	}
}

func openFinder(ctx context.Context) (tracking.Finder, func(), error) {
	if cfg.DatabaseURL == "" {
		return tracking.NewDemoFinder(), func() {}, nil
	}
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return pgrepo.NewShipmentRepository(pool), pool.Close, nil
}
