package tracking

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// UseCase covers public lookups and console edits of shipment records.
type UseCase interface {
	Lookup(ctx context.Context, trackingID string) (Shipment, error)
	Replace(ctx context.Context, s Shipment) (Shipment, error)
	Remove(ctx context.Context, trackingID string) error
	// Writable reports whether Replace and Remove are backed by a store.
	Writable() bool
}

type service struct {
	finder   Finder
	writer   Writer
	validate *validator.Validate
}

// NewService wraps finder. If finder also implements Writer, edits are enabled.
func NewService(finder Finder) UseCase {
	s := &service{finder: finder, validate: validator.New(validator.WithRequiredStructEnabled())}
	if w, ok := finder.(Writer); ok {
		s.writer = w
	}
	return s
}

func (s *service) Writable() bool { return s.writer != nil }

func (s *service) Lookup(ctx context.Context, trackingID string) (Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return Shipment{}, ErrValidation("tracking id is required")
	}
	sh, ok, err := s.finder.Find(ctx, trackingID)
	if err != nil {
		return Shipment{}, fmt.Errorf("find shipment %s: %w", trackingID, err)
	}
	if !ok {
		return Shipment{}, ErrNotFound
	}
	return sh, nil
}

func (s *service) Replace(ctx context.Context, sh Shipment) (Shipment, error) {
	if s.writer == nil {
		return Shipment{}, ErrReadOnly
	}
	sh.TrackingID = strings.ToUpper(strings.TrimSpace(sh.TrackingID))
	if err := s.validate.Struct(sh); err != nil {
		return Shipment{}, ErrValidation(fmt.Sprintf("invalid shipment: %v", err))
	}
	if sh.Updates == nil {
		sh.Updates = []Update{}
	}
	if err := s.writer.Save(ctx, sh); err != nil {
		return Shipment{}, err
	}
	return sh, nil
}

func (s *service) Remove(ctx context.Context, trackingID string) error {
	if s.writer == nil {
		return ErrReadOnly
	}
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return ErrValidation("tracking id is required")
	}
	return s.writer.Delete(ctx, trackingID)
}
