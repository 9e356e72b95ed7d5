package ports

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/order"
)

// Well known order event types.
const (
	EventOrderCreated     = "order.created"
	EventOrderAssigned    = "order.assigned"
	EventOrderOutForDeliv = "order.out_for_delivery"
	EventOrderLocation    = "order.location"
	EventOrderDelivered   = "order.delivered"
)

// OrderSnapshot is the wire representation of an order carried by realtime
// events. Location fields are nil until the first sample arrives.
type OrderSnapshot struct {
	OrderID   string    `json:"order_id"`
	VendorID  string    `json:"vendor_id"`
	PartnerID *string   `json:"partner_id,omitempty"`
	Status    string    `json:"status"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderEvent pairs an event type with the order snapshot taken after the
// change was committed.
type OrderEvent struct {
	Type      string        `json:"type"`
	Order     OrderSnapshot `json:"order"`
	EmittedAt time.Time     `json:"emitted_at"`
}

// NewOrderSnapshot builds a snapshot from an order aggregate.
func NewOrderSnapshot(aggregate *order.Order) OrderSnapshot {
	snapshot := OrderSnapshot{
		OrderID:   aggregate.ID().String(),
		VendorID:  aggregate.VendorID().String(),
		Status:    aggregate.Status().String(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
	if partnerID := aggregate.Partner(); partnerID != nil {
		s := partnerID.String()
		snapshot.PartnerID = &s
	}
	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lng := location.Longitude()
		snapshot.Latitude = &lat
		snapshot.Longitude = &lng
	}
	return snapshot
}

// OrderPublisher pushes order events to the realtime channel.
// Publish failures must not fail the business operation that produced the
// event; callers publish after commit on a best effort basis.
type OrderPublisher interface {
	Publish(ctx context.Context, eventType string, aggregate *order.Order) error
}

// Subscription is a live stream of events for one order.
type Subscription interface {
	// Events returns the channel events are delivered on.
	// The channel is closed when the subscription is closed.
	Events() <-chan OrderEvent

	// Close cancels the subscription and releases its resources.
	Close() error
}

// OrderSubscriber opens per-order event subscriptions.
type OrderSubscriber interface {
	Subscribe(ctx context.Context, orderID string) (Subscription, error)
}
