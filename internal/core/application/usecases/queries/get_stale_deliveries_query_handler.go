package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleDeliveriesQueryHandler finds out-for-delivery orders whose last
// update is older than the cutoff.
type GetStaleDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleDeliveriesQueryHandler creates a handler for stale delivery scans.
// Requires a GORM database connection for query execution.
func NewGetStaleDeliveriesQueryHandler(db *gorm.DB) GetStaleDeliveriesQueryHandler {
	return GetStaleDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest update first so the
// longest-stalled deliveries surface at the top.
func (h GetStaleDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetStaleDeliveriesQuery,
) ([]GetStaleDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetStaleDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			partner_id,
			updated_at
		FROM orders
		WHERE status = ?
		  AND updated_at < ?
		ORDER BY updated_at
	`, int(order.OutForDelivery), query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp      GetStaleDeliveriesQueryResponse
			id        uuid.UUID
			partnerID uuid.UUID
		)

		if err = rows.Scan(&id, &partnerID, &resp.UpdatedAt); err != nil {
			return nil, err
		}

		resp.OrderID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.PartnerID, err = kernel.UUIDFromBytes(partnerID[:])
		if err != nil {
			return nil, err
		}

		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
