// Package queries contains read-only operations that bypass the domain
// aggregates and read projection data straight from the database.
// Implements the query side of the CQRS architecture.
package queries

import (
	"context"
	"database/sql"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemView is one order line as returned to read models.
type OrderItemView struct {
	Name     string
	Quantity int
}

// OrderView is the read model shared by the order queries. Location fields
// are nil until the first sample arrives; PartnerID is nil while Pending.
type OrderView struct {
	ID              kernel.UUID
	VendorID        kernel.UUID
	PartnerID       *kernel.UUID
	CustomerName    string
	CustomerEmail   string
	DeliveryAddress string
	Status          order.Status
	Latitude        *float64
	Longitude       *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItemView
}

// scanOrderViews reads the order rows produced by selectOrderColumns.
func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)

	for rows.Next() {
		var (
			view      OrderView
			id        uuid.UUID
			vendorID  uuid.UUID
			partnerID *uuid.UUID
			status    int
		)

		err := rows.Scan(
			&id,
			&vendorID,
			&partnerID,
			&view.CustomerName,
			&view.CustomerEmail,
			&view.DeliveryAddress,
			&status,
			&view.Latitude,
			&view.Longitude,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		view.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		view.VendorID, err = kernel.UUIDFromBytes(vendorID[:])
		if err != nil {
			return nil, err
		}
		if partnerID != nil {
			pid, pidErr := kernel.UUIDFromBytes(partnerID[:])
			if pidErr != nil {
				return nil, pidErr
			}
			view.PartnerID = &pid
		}
		view.Status = order.Status(status)

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

const selectOrderColumns = `
	SELECT
		id,
		vendor_id,
		partner_id,
		customer_name,
		customer_email,
		delivery_address,
		status,
		location_lat,
		location_lng,
		created_at,
		updated_at
	FROM orders
`

// attachItems loads the item rows for every view in place, preserving the
// items' insertion order.
func attachItems(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	index := make(map[uuid.UUID]int, len(views))
	for i, view := range views {
		ids = append(ids, view.ID.Bytes())
		index[view.ID.Bytes()] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID uuid.UUID
			item    OrderItemView
		)
		if err = rows.Scan(&orderID, &item.Name, &item.Quantity); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			views[i].Items = append(views[i].Items, item)
		}
	}

	return rows.Err()
}
