package postgres

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgstore "github.com/swiftstream/site/pkg/storage/postgres"
	"github.com/swiftstream/site/pkg/tracking"
)

// newTestRepo needs a disposable database in TEST_DATABASE_URL.
func newTestRepo(t *testing.T) *ShipmentRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgstore.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	_, err = pgstore.Migrate(ctx, pool)
	require.NoError(t, err)
	return NewShipmentRepository(pool)
}

func shipment(id, origin string, updates int) tracking.Shipment {
	s := tracking.Shipment{
		TrackingID:        id,
		Origin:            origin,
		Destination:       "Hamburg, DE",
		EstimatedDelivery: "Nov 05, 2023",
		CurrentStatus:     tracking.StatusInTransit,
		Updates:           []tracking.Update{},
	}
	for i := 0; i < updates; i++ {
		s.Updates = append(s.Updates, tracking.Update{
			Timestamp: "Nov 02, 09:00 AM",
			Location:  origin,
			Status:    tracking.StatusInTransit,
		})
	}
	return s
}

func TestShipmentRepositorySeedMatchesDemo(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want, _, err := tracking.NewDemoFinder().Find(ctx, tracking.DemoTrackingID)
	require.NoError(t, err)
	got, ok, err := repo.Find(ctx, "sw-12345")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestShipmentRepositoryReplaceAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = repo.Delete(ctx, "SW-T1") })

	require.NoError(t, repo.Save(ctx, shipment("sw-t1", "Rotterdam, NL", 3)))
	require.NoError(t, repo.Save(ctx, shipment("SW-T1", "Antwerp, BE", 1)))

	got, ok, err := repo.Find(ctx, "sw-t1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Antwerp, BE", got.Origin)
	assert.Len(t, got.Updates, 1)

	require.NoError(t, repo.Delete(ctx, "sw-t1"))
	_, ok, err = repo.Find(ctx, "SW-T1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, repo.Delete(ctx, "SW-T1"), tracking.ErrNotFound)
}

func TestShipmentRepositoryFindSeesWholeRecords(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = repo.Delete(ctx, "SW-T2") })

	// The number of updates is encoded in the origin so a torn read is detectable.
	versions := []tracking.Shipment{shipment("SW-T2", "u1", 1), shipment("SW-T2", "u4", 4)}
	require.NoError(t, repo.Save(ctx, versions[0]))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			assert.NoError(t, repo.Save(ctx, versions[i%2]))
		}
	}()
	for i := 0; i < 50; i++ {
		got, ok, err := repo.Find(ctx, "SW-T2")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, strings.TrimPrefix(got.Origin, "u"), string(rune('0'+len(got.Updates))))
	}
	wg.Wait()
}
