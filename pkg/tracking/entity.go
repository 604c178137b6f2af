package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Status is a shipment stage. The zero value is invalid.
type Status int

const (
	StatusOrderPlaced Status = iota + 1
	StatusPickedUp
	StatusInTransit
	StatusCustomsClearance
	StatusOutForDelivery
	StatusDelivered
	StatusException
)

var statusNames = map[Status]string{
	StatusOrderPlaced:      "Order Placed",
	StatusPickedUp:         "Picked Up",
	StatusInTransit:        "In Transit",
	StatusCustomsClearance: "Customs Clearance",
	StatusOutForDelivery:   "Out for Delivery",
	StatusDelivered:        "Delivered",
	StatusException:        "Exception",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseStatus accepts the display name of a stage.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shipment status %q", name)
}

func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid shipment status %d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Update is one entry of a shipment history.
type Update struct {
	Timestamp   string `json:"timestamp" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Status      Status `json:"status" validate:"required"`
	Description string `json:"description"`
}

// Shipment is a tracked freight movement; Updates are ordered newest first.
type Shipment struct {
	TrackingID        string   `json:"trackingId" validate:"required"`
	Origin            string   `json:"origin" validate:"required"`
	Destination       string   `json:"destination" validate:"required"`
	EstimatedDelivery string   `json:"estimatedDelivery"`
	CurrentStatus     Status   `json:"currentStatus" validate:"required"`
	Updates           []Update `json:"updates" validate:"dive"`
}

// Finder looks a shipment up by tracking id. ok is false on a miss.
type Finder interface {
	Find(ctx context.Context, trackingID string) (Shipment, bool, error)
}

// Writer replaces or removes whole shipment records.
type Writer interface {
	Save(ctx context.Context, s Shipment) error
	Delete(ctx context.Context, trackingID string) error
}

// Store is a Finder that can also be written to.
type Store interface {
	Finder
	Writer
}

var ErrNotFound = errors.New("tracking id not found")

// ErrValidation reports unusable input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// ErrReadOnly is returned for edits when the configured store cannot be written.
var ErrReadOnly = errors.New("shipment store is read-only")
