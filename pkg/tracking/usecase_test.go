package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDemoIDAnyCase(t *testing.T) {
	svc := NewService(NewDemoFinder())
	for _, id := range []string{"SW-12345", "sw-12345", "Sw-12345", "  sW-12345 "} {
		got, err := svc.Lookup(context.Background(), id)
		require.NoError(t, err, id)
		assert.Equal(t, DemoTrackingID, got.TrackingID)
		assert.Equal(t, StatusInTransit, got.CurrentStatus)
		require.Len(t, got.Updates, 3)
		assert.Equal(t, []Status{StatusInTransit, StatusPickedUp, StatusOrderPlaced},
			[]Status{got.Updates[0].Status, got.Updates[1].Status, got.Updates[2].Status})
		assert.Equal(t, "Oct 20, 08:30 AM", got.Updates[0].Timestamp)
	}
}

func TestLookupMisses(t *testing.T) {
	svc := NewService(NewDemoFinder())
	for _, id := range []string{"SW-1234", "SW-123456", "XX-12345", "SW12345"} {
		_, err := svc.Lookup(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound, id)
	}

	_, err := svc.Lookup(context.Background(), "   ")
	var verr ErrValidation
	assert.ErrorAs(t, err, &verr)
}

func TestLookupReturnsIndependentRecords(t *testing.T) {
	svc := NewService(NewDemoFinder())
	a, err := svc.Lookup(context.Background(), DemoTrackingID)
	require.NoError(t, err)
	a.Updates[0].Location = "Changed"

	b, err := svc.Lookup(context.Background(), DemoTrackingID)
	require.NoError(t, err)
	assert.Equal(t, "Pacific Ocean", b.Updates[0].Location)
}

type failingFinder struct{}

func (failingFinder) Find(context.Context, string) (Shipment, bool, error) {
	return Shipment{}, false, errors.New("connection reset")
}

func TestLookupPropagatesFinderErrors(t *testing.T) {
	_, err := NewService(failingFinder{}).Lookup(context.Background(), "SW-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

type memoryStore struct {
	records map[string]Shipment
}

func (m *memoryStore) Find(_ context.Context, id string) (Shipment, bool, error) {
	s, ok := m.records[id]
	return s, ok, nil
}

func (m *memoryStore) Save(_ context.Context, s Shipment) error {
	m.records[s.TrackingID] = s
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func TestReplaceAndRemove(t *testing.T) {
	store := &memoryStore{records: map[string]Shipment{}}
	svc := NewService(store)
	require.True(t, svc.Writable())

	saved, err := svc.Replace(context.Background(), Shipment{
		TrackingID:    " sw-777 ",
		Origin:        "Rotterdam, NL",
		Destination:   "Hamburg, DE",
		CurrentStatus: StatusPickedUp,
		Updates: []Update{
			{Timestamp: "Nov 02, 09:00 AM", Location: "Rotterdam", Status: StatusPickedUp},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "SW-777", saved.TrackingID)

	got, err := svc.Lookup(context.Background(), "SW-777")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, svc.Remove(context.Background(), "SW-777"))
	_, err = svc.Lookup(context.Background(), "SW-777")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceValidates(t *testing.T) {
	svc := NewService(&memoryStore{records: map[string]Shipment{}})
	_, err := svc.Replace(context.Background(), Shipment{TrackingID: "SW-1", Origin: "A"})
	var verr ErrValidation
	assert.ErrorAs(t, err, &verr)
}

func TestDemoFinderIsReadOnly(t *testing.T) {
	svc := NewService(NewDemoFinder())
	assert.False(t, svc.Writable())
	_, err := svc.Replace(context.Background(), Shipment{TrackingID: "SW-1"})
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, svc.Remove(context.Background(), "SW-1"), ErrReadOnly)
}

func TestStatusJSONUsesDisplayNames(t *testing.T) {
	b, err := json.Marshal(Update{Timestamp: "t", Location: "l", Status: StatusCustomsClearance})
	require.NoError(t, err)
	assert.JSONEq(t, `{"timestamp":"t","location":"l","status":"Customs Clearance","description":""}`, string(b))

	var u Update
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Out for Delivery"}`), &u))
	assert.Equal(t, StatusOutForDelivery, u.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"Lost"}`), &u))
	_, err = json.Marshal(Update{})
	assert.Error(t, err)
}
