package quote

import (
	"context"
	"errors"
)

// TransportType is the freight mode requested by the customer.
type TransportType string

const (
	TransportAir   TransportType = "air"
	TransportOcean TransportType = "ocean"
	TransportRoad  TransportType = "road"
	TransportRail  TransportType = "rail"
)

// TransportTypes lists every accepted mode in display order.
var TransportTypes = []TransportType{TransportAir, TransportOcean, TransportRoad, TransportRail}

// Request is a freight quote request as submitted from the quote form.
type Request struct {
	Origin      string        `json:"origin" validate:"required"`
	Destination string        `json:"destination" validate:"required"`
	Weight      float64       `json:"weight" validate:"gt=0"` // kilograms
	Dimensions  string        `json:"dimensions,omitempty"`
	Type        TransportType `json:"type" validate:"oneof=air ocean road rail"`
}

// DefaultRequest mirrors the initial state of the quote form.
func DefaultRequest() Request {
	return Request{Weight: 10, Type: TransportAir}
}

// Response is the model-produced estimate. Values are passed through as received.
type Response struct {
	EstimatedCost   float64 `json:"estimatedCost"`
	Currency        string  `json:"currency"`
	TransitTimeDays string  `json:"transitTimeDays"`
	RouteSummary    string  `json:"routeSummary"`
	Recommendation  string  `json:"recommendation"`
}

// UseCase produces quotes through an external completion service.
type UseCase interface {
	Generate(ctx context.Context, req Request) (Response, error)
	// Model names the fixed model identifier used for every call.
	Model() string
}

var (
	ErrServiceUnavailable = errors.New("quote service unavailable")
	ErrEmptyResponse      = errors.New("quote service returned no data")
	ErrMalformedResponse  = errors.New("quote service returned a malformed document")
)

// ErrValidation is returned before any external call when the request is incomplete.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// IsUpstream reports whether err came from the completion service rather than the caller.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrEmptyResponse) ||
		errors.Is(err, ErrMalformedResponse)
}
