// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are managed by the domain, not by GORM hooks, so UpdatedAt
// reflects the sample/transition time rather than the row write time.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VendorID        uuid.UUID  `gorm:"type:uuid;index"`
	PartnerID       *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	CustomerEmail   string
	DeliveryAddress string
	Status          int `gorm:"index"`
	LocationLat     *float64
	LocationLng     *float64
	CreatedAt       time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Item rows live in their own table
// and are written separately from the order row, so an order can exist
// without its items after a partial failure.
type OrderItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	Name     string
	Quantity int
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	var lat, lng *float64
	if location := aggregate.Location(); location != nil {
		latitude := location.Latitude()
		longitude := location.Longitude()
		lat = &latitude
		lng = &longitude
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		VendorID:        aggregate.VendorID().Bytes(),
		PartnerID:       partnerID,
		CustomerName:    aggregate.CustomerName(),
		CustomerEmail:   aggregate.CustomerEmail(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Status:          int(aggregate.Status()),
		LocationLat:     lat,
		LocationLng:     lng,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// itemsFromDomain converts order items to their row representation,
// preserving insertion order via the position column.
func itemsFromDomain(orderID kernel.UUID, items []order.Item) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, OrderItemDTO{
			OrderID:  orderID.Bytes(),
			Position: i,
			Name:     item.Name(),
			Quantity: item.Quantity(),
		})
	}
	return dtos
}

// toDomain converts database rows to an order domain aggregate using
// RestoreOrder. Item rows may be empty for items-incomplete orders.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	var location *kernel.GeoPoint
	if dto.LocationLat != nil && dto.LocationLng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.LocationLat, *dto.LocationLng)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		vendorID,
		partnerID,
		dto.CustomerName,
		dto.CustomerEmail,
		dto.DeliveryAddress,
		items,
		order.Status(dto.Status),
		location,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
