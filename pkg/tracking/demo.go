package tracking

import (
	"context"
	"strings"
)

// DemoTrackingID is the only id known to DemoFinder.
const DemoTrackingID = "SW-12345"

// DemoHint points visitors at the demo record after a miss.
const DemoHint = `Try "` + DemoTrackingID + `" for a demo.`

// DemoFinder serves the single pre-authored demo shipment.
type DemoFinder struct{}

func NewDemoFinder() DemoFinder { return DemoFinder{} }

func (DemoFinder) Find(_ context.Context, trackingID string) (Shipment, bool, error) {
	if !strings.EqualFold(trackingID, DemoTrackingID) {
		return Shipment{}, false, nil
	}
	return demoShipment(), true, nil
}

// demoShipment builds a fresh value on each call so callers never share the slice.
func demoShipment() Shipment {
	return Shipment{
		TrackingID:        DemoTrackingID,
		Origin:            "Shanghai, CN",
		Destination:       "Los Angeles, USA",
		EstimatedDelivery: "Oct 24, 2023",
		CurrentStatus:     StatusInTransit,
		Updates: []Update{
			{Timestamp: "Oct 20, 08:30 AM", Location: "Pacific Ocean", Status: StatusInTransit, Description: "Vessel en route to destination port."},
			{Timestamp: "Oct 18, 04:15 PM", Location: "Shanghai Port", Status: StatusPickedUp, Description: "Cargo loaded onto vessel."},
			{Timestamp: "Oct 17, 10:00 AM", Location: "Shanghai Warehouse", Status: StatusOrderPlaced, Description: "Shipment received at origin facility."},
		},
	}
}
