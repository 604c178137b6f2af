package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftstream/site/pkg/tracking"
)

// ShipmentRepository implements tracking.Store backed by PostgreSQL (pgx).
// The schema is owned by storage/postgres migrations.
type ShipmentRepository struct {
	pool *pgxpool.Pool
}

var _ tracking.Store = (*ShipmentRepository)(nil)

func NewShipmentRepository(pool *pgxpool.Pool) *ShipmentRepository {
	return &ShipmentRepository{pool: pool}
}

// Find reads the shipment and its updates from one snapshot, so a concurrent
// Save is seen either entirely or not at all.
func (r *ShipmentRepository) Find(ctx context.Context, trackingID string) (tracking.Shipment, bool, error) {
	id := strings.ToUpper(strings.TrimSpace(trackingID))
	var (
		s     tracking.Shipment
		found bool
	)
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := pgx.BeginTxFunc(ctx, r.pool, opts, func(tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx, `
SELECT tracking_id, origin, destination, estimated_delivery, current_status
FROM shipments WHERE tracking_id = $1
`, id).Scan(&s.TrackingID, &s.Origin, &s.Destination, &s.EstimatedDelivery, &status)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.CurrentStatus, err = tracking.ParseStatus(status); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
SELECT occurred_at, location, status, description
FROM shipment_updates WHERE tracking_id = $1 ORDER BY position ASC
`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		s.Updates = []tracking.Update{}
		for rows.Next() {
			var u tracking.Update
			var us string
			if err := rows.Scan(&u.Timestamp, &u.Location, &us, &u.Description); err != nil {
				return err
			}
			if u.Status, err = tracking.ParseStatus(us); err != nil {
				return err
			}
			s.Updates = append(s.Updates, u)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return tracking.Shipment{}, false, fmt.Errorf("find shipment: %w", err)
	}
	if !found {
		return tracking.Shipment{}, false, nil
	}
	return s, true, nil
}

// Save replaces the record and its whole update history in one transaction.
func (r *ShipmentRepository) Save(ctx context.Context, s tracking.Shipment) error {
	id := strings.ToUpper(strings.TrimSpace(s.TrackingID))
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO shipments (tracking_id, origin, destination, estimated_delivery, current_status, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (tracking_id) DO UPDATE SET
	origin = EXCLUDED.origin,
	destination = EXCLUDED.destination,
	estimated_delivery = EXCLUDED.estimated_delivery,
	current_status = EXCLUDED.current_status,
	updated_at = EXCLUDED.updated_at
`, id, s.Origin, s.Destination, s.EstimatedDelivery, s.CurrentStatus.String())
	if err != nil {
		return fmt.Errorf("upsert shipment: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM shipment_updates WHERE tracking_id = $1`, id); err != nil {
		return err
	}
	for i, u := range s.Updates {
		_, err = tx.Exec(ctx, `
INSERT INTO shipment_updates (tracking_id, position, occurred_at, location, status, description)
VALUES ($1, $2, $3, $4, $5, $6)
`, id, i, u.Timestamp, u.Location, u.Status.String(), u.Description)
		if err != nil {
			return fmt.Errorf("insert shipment update: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (r *ShipmentRepository) Delete(ctx context.Context, trackingID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shipments WHERE tracking_id = $1`,
		strings.ToUpper(strings.TrimSpace(trackingID)))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return tracking.ErrNotFound
	}
	return nil
}
