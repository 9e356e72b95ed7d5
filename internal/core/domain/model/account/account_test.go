package account_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		cases := map[string]account.Role{
			"vendor":           account.RoleVendor,
			"delivery_partner": account.RoleDeliveryPartner,
			"customer":         account.RoleCustomer,
		}

		for s, expected := range cases {
			role, err := account.RoleFromString(s)
			require.NoError(t, err)
			assert.Equal(t, expected, role)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "admin", "unknown", "Vendor"} {
			_, err := account.RoleFromString(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", s)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	for _, r := range []account.Role{account.RoleVendor, account.RoleDeliveryPartner, account.RoleCustomer} {
		require.NoError(t, r.Validate())
	}
	require.Error(t, account.RoleUnknown.Validate())
	require.Error(t, account.Role(42).Validate())
}

func TestNewVendor(t *testing.T) {
	t.Run("creates valid vendor", func(t *testing.T) {
		id := kernel.NewUUID()
		accountID := kernel.NewUUID()

		vendor, err := account.NewVendor(id, accountID, "Pizza Palace")

		require.NoError(t, err)
		require.NoError(t, vendor.Validate())
		assert.True(t, vendor.ID().IsEqual(id))
		assert.True(t, vendor.AccountID().IsEqual(accountID))
		assert.Equal(t, "Pizza Palace", vendor.Name())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := account.NewVendor(kernel.NewUUID(), kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid ids are rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := account.NewVendor(zero, kernel.NewUUID(), "Pizza Palace")
		require.Error(t, err)

		_, err = account.NewVendor(kernel.NewUUID(), zero, "Pizza Palace")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var vendor account.Vendor
		require.ErrorIs(t, vendor.Validate(), account.ErrVendorIsNotConstructed)
	})
}

func TestNewDeliveryPartner(t *testing.T) {
	t.Run("creates valid partner", func(t *testing.T) {
		id := kernel.NewUUID()
		accountID := kernel.NewUUID()

		partner, err := account.NewDeliveryPartner(id, accountID, "Bob")

		require.NoError(t, err)
		require.NoError(t, partner.Validate())
		assert.True(t, partner.ID().IsEqual(id))
		assert.True(t, partner.AccountID().IsEqual(accountID))
		assert.Equal(t, "Bob", partner.Name())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := account.NewDeliveryPartner(kernel.NewUUID(), kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var partner account.DeliveryPartner
		require.ErrorIs(t, partner.Validate(), account.ErrPartnerIsNotConstructed)
	})
}
