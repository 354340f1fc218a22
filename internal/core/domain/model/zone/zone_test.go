package zone_test

import (
	"testing"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/zone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCountries(t *testing.T, codes ...string) kernel.CountrySet {
	t.Helper()
	set, err := kernel.NewCountrySet(codes)
	require.NoError(t, err)
	return set
}

func mustCountry(t *testing.T, code string) kernel.CountryCode {
	t.Helper()
	c, err := kernel.NewCountryCode(code)
	require.NoError(t, err)
	return c
}

func TestNewZone(t *testing.T) {
	t.Run("should create active zone", func(t *testing.T) {
		id, fwID := kernel.NewUUID(), kernel.NewUUID()

		z, err := zone.NewZone(id, fwID, " Asia ", mustCountries(t, "sg", "MY"))

		require.NoError(t, err)
		require.NoError(t, z.Validate())
		assert.True(t, z.ID().IsEqual(id))
		assert.True(t, z.IsOwnedBy(fwID))
		assert.Equal(t, "Asia", z.Name())
		assert.Equal(t, []string{"MY", "SG"}, z.Countries().Strings())
		assert.True(t, z.IsActive())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		z, err := zone.NewZone(kernel.UUID{}, kernel.NewUUID(), "", kernel.CountrySet{})

		require.Error(t, err)
		assert.Nil(t, z)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, zone.ErrNameIsRequired)
		require.ErrorIs(t, err, kernel.ErrCountrySetIsEmpty)
	})
}

func TestRestoreZone(t *testing.T) {
	z, err := zone.RestoreZone(kernel.NewUUID(), kernel.NewUUID(), "Europe", mustCountries(t, "DE"), false)

	require.NoError(t, err)
	assert.False(t, z.IsActive())
}

func TestZone_Covers(t *testing.T) {
	z, err := zone.NewZone(kernel.NewUUID(), kernel.NewUUID(), "Asia", mustCountries(t, "SG", "MY"))
	require.NoError(t, err)

	assert.True(t, z.Covers(mustCountry(t, "SG")))
	assert.False(t, z.Covers(mustCountry(t, "TH")))

	z.Deactivate()

	assert.False(t, z.Covers(mustCountry(t, "SG")))
}

func TestZone_ReplaceCountries(t *testing.T) {
	z, err := zone.NewZone(kernel.NewUUID(), kernel.NewUUID(), "Asia", mustCountries(t, "SG"))
	require.NoError(t, err)

	require.NoError(t, z.ReplaceCountries(mustCountries(t, "TH", "VN")))
	assert.Equal(t, []string{"TH", "VN"}, z.Countries().Strings())

	err = z.ReplaceCountries(kernel.CountrySet{})
	require.ErrorIs(t, err, kernel.ErrCountrySetIsEmpty)
	assert.Equal(t, []string{"TH", "VN"}, z.Countries().Strings())
}

func TestZone_Validate(t *testing.T) {
	var z *zone.Zone

	assert.Equal(t, zone.ErrZoneIsNotConstructed, z.Validate())
	assert.Equal(t, zone.ErrZoneIsNotConstructed, (&zone.Zone{}).Validate())
}
