package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler lists a vendor's orders from the database.
//
// Example:
//
//	handler := NewGetVendorOrdersQueryHandler(db)
//	query, _ := NewGetVendorOrdersQuery(vendorID)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list vendor orders: %w", err)
//	}
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order listings.
// Requires a GORM database connection for query execution.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first with their
// items embedded; items-incomplete orders come back with an empty item list.
func (h GetVendorOrdersQueryHandler) Handle(ctx context.Context, query GetVendorOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		selectOrderColumns+`
		WHERE vendor_id = ?
		ORDER BY created_at DESC
	`, query.VendorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, views); err != nil {
		return nil, err
	}

	return views, nil
}
