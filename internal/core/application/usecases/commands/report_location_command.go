package commands

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrReportLocationCommandIsNotConstructed = errors.New(
	"ReportLocationCommand must be created via NewReportLocationCommand constructor",
)

// ReportLocationCommand represents a single location sample reported by the
// delivery partner of an order in flight.
type ReportLocationCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	partnerID kernel.UUID
	point     kernel.GeoPoint
	sampledAt time.Time

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a command carrying one location sample.
// Coordinates are range checked through the GeoPoint constructor before the
// command is built; sampledAt must be non-zero.
func NewReportLocationCommand(
	orderID kernel.UUID,
	partnerID kernel.UUID,
	latitude float64,
	longitude float64,
	sampledAt time.Time,
) (ReportLocationCommand, error) {
	command := ReportLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPartnerID(partnerID),
		command.setPoint(latitude, longitude),
		command.setSampledAt(sampledAt),
	); err != nil {
		return ReportLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (c ReportLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the identifier of the reporting partner.
func (c ReportLocationCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Point returns the reported coordinates.
func (c ReportLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// SampledAt returns the moment the sample was taken.
func (c ReportLocationCommand) SampledAt() time.Time {
	return c.sampledAt
}

func (c *ReportLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReportLocationCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *ReportLocationCommand) setPoint(latitude float64, longitude float64) error {
	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *ReportLocationCommand) setSampledAt(sampledAt time.Time) error {
	if sampledAt.IsZero() {
		return errs.NewValueIsRequiredError("sampledAt")
	}

	c.sampledAt = sampledAt
	return nil
}
