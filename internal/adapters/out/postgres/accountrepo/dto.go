// Package accountrepo persists vendor and delivery partner profiles.
package accountrepo

import (
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for vendor profiles.
type VendorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
}

// TableName specifies the database table name for vendors.
func (VendorDTO) TableName() string {
	return "vendors"
}

// PartnerDTO represents the database structure for delivery partner profiles.
type PartnerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
}

// TableName specifies the database table name for delivery partners.
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

func vendorFromDomain(vendor *account.Vendor) VendorDTO {
	return VendorDTO{
		ID:        vendor.ID().Bytes(),
		AccountID: vendor.AccountID().Bytes(),
		Name:      vendor.Name(),
	}
}

func vendorToDomain(dto VendorDTO) (*account.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return account.NewVendor(id, accountID, dto.Name)
}

func partnerFromDomain(partner *account.DeliveryPartner) PartnerDTO {
	return PartnerDTO{
		ID:        partner.ID().Bytes(),
		AccountID: partner.AccountID().Bytes(),
		Name:      partner.Name(),
	}
}

func partnerToDomain(dto PartnerDTO) (*account.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return account.NewDeliveryPartner(id, accountID, dto.Name)
}
