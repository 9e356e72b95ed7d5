package accountrepo

import (
	"context"
	"errors"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormVendorRepository implements VendorRepository using GORM.
type GormVendorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormVendorRepository creates a new GORM vendor repository.
func NewGormVendorRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRepository {
	return &GormVendorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor to the database.
func (r *GormVendorRepository) Add(ctx context.Context, vendor *account.Vendor) error {
	if err := vendor.Validate(); err != nil {
		return err
	}

	dto := vendorFromDomain(vendor)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("add vendor", err)
	}

	r.tracker.TrackAggregate(vendor.ID(), vendor)
	return nil
}

// Get retrieves a vendor by ID.
func (r *GormVendorRepository) Get(ctx context.Context, id kernel.UUID) (*account.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", id.String())
		}
		return nil, errs.NewStorageError("get vendor", err)
	}

	return vendorToDomain(dto)
}

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPartnerRepository creates a new GORM delivery partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery partner to the database.
func (r *GormPartnerRepository) Add(ctx context.Context, partner *account.DeliveryPartner) error {
	if err := partner.Validate(); err != nil {
		return err
	}

	dto := partnerFromDomain(partner)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("add partner", err)
	}

	r.tracker.TrackAggregate(partner.ID(), partner)
	return nil
}

// Get retrieves a delivery partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*account.DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, errs.NewStorageError("get partner", err)
	}

	return partnerToDomain(dto)
}
