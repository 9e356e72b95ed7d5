package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPartnerOrdersQueryHandler lists the orders assigned to a delivery
// partner. Delivered orders stay in the list so partners keep a history.
type GetPartnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerOrdersQueryHandler creates a handler for partner order listings.
// Requires a GORM database connection for query execution.
func NewGetPartnerOrdersQueryHandler(db *gorm.DB) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest first with their
// items embedded.
func (h GetPartnerOrdersQueryHandler) Handle(ctx context.Context, query GetPartnerOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		selectOrderColumns+`
		WHERE partner_id = ?
		ORDER BY created_at DESC
	`, query.PartnerID().Bytes()).Rows()
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
