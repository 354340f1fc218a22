package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
)

func TestNewCountryCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "upper case", raw: "SG", want: "SG"},
		{name: "lower case is normalized", raw: "my", want: "MY"},
		{name: "surrounding spaces are trimmed", raw: "  de ", want: "DE"},
		{name: "empty", raw: "", wantErr: errs.ErrValueIsRequired},
		{name: "three letters", raw: "SGP", wantErr: errs.ErrValueIsInvalid},
		{name: "digits", raw: "S1", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := kernel.NewCountryCode(tt.raw)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, code.Validate())
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestCountryCode_Validate(t *testing.T) {
	var code kernel.CountryCode

	assert.Equal(t, kernel.ErrCountryCodeIsNotConstructed, code.Validate())
}

func TestNewCountrySet(t *testing.T) {
	t.Run("should sort and deduplicate", func(t *testing.T) {
		set, err := kernel.NewCountrySet([]string{"my", "SG", "MY"})

		require.NoError(t, err)
		assert.Equal(t, []string{"MY", "SG"}, set.Strings())
		assert.Equal(t, 2, set.Len())
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := kernel.NewCountrySet(nil)

		assert.Equal(t, kernel.ErrCountrySetIsEmpty, err)
	})

	t.Run("should report every invalid code", func(t *testing.T) {
		_, err := kernel.NewCountrySet([]string{"SG", "XXX", "1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"XXX"`)
		assert.Contains(t, err.Error(), `"1"`)
	})
}

func TestCountrySet_ContainsAndIntersect(t *testing.T) {
	asia, err := kernel.NewCountrySet([]string{"SG", "MY", "TH"})
	require.NoError(t, err)
	other, err := kernel.NewCountrySet([]string{"TH", "SG", "DE"})
	require.NoError(t, err)
	sg, err := kernel.NewCountryCode("SG")
	require.NoError(t, err)
	us, err := kernel.NewCountryCode("US")
	require.NoError(t, err)

	assert.True(t, asia.Contains(sg))
	assert.False(t, asia.Contains(us))

	shared := asia.Intersect(other)
	require.Len(t, shared, 2)
	assert.Equal(t, "SG", shared[0].String())
	assert.Equal(t, "TH", shared[1].String())
}
