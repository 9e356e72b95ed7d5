package orderrepo

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order row to the database. Item rows are written
// separately via AddItems.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddItems saves the item rows for an already stored order.
func (r *GormOrderRepository) AddItems(ctx context.Context, orderID kernel.UUID, items []order.Item) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	dtos := itemsFromDomain(orderID, items)
	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return errs.NewStorageError("add order items", err)
	}

	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStorageError("get order", err)
	}

	items, err := r.loadItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// GetAllForVendor retrieves every order created by the vendor, newest first.
func (r *GormOrderRepository) GetAllForVendor(ctx context.Context, vendorID kernel.UUID) ([]*order.Order, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "vendor_id = ?", vendorID.Bytes()).Error
	if err != nil {
		return nil, errs.NewStorageError("list vendor orders", err)
	}

	return r.toAggregates(ctx, dtos)
}

// GetAllForPartner retrieves every order assigned to the partner, newest first.
func (r *GormOrderRepository) GetAllForPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "partner_id = ?", partnerID.Bytes()).Error
	if err != nil {
		return nil, errs.NewStorageError("list partner orders", err)
	}

	return r.toAggregates(ctx, dtos)
}

func (r *GormOrderRepository) toAggregates(ctx context.Context, dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		items, err := r.loadItems(ctx, dto.ID)
		if err != nil {
			return nil, err
		}

		o, err := toDomain(dto, items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemDTO, error) {
	var items []OrderItemDTO
	err := r.db.WithContext(ctx).
		Order("position").
		Find(&items, "order_id = ?", orderID).Error
	if err != nil {
		return nil, errs.NewStorageError("load order items", err)
	}
	return items, nil
}
