package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/marquee/internal/catalog"
)

func TestNormalizeProviders(t *testing.T) {
	t.Run("accepts all historical field variants", func(t *testing.T) {
		badges := normalizeProviders([]catalog.Provider{
			{ProviderName: "Netflix", LogoPath: "/netflix.jpg"},
			{Name: "wavve", Logo: "/wavve.jpg"},
			{DisplayName: "TVING", LogoURL: "/tving.jpg"},
		})

		require.Len(t, badges, 3)
		assert.Equal(t, ProviderBadge{Name: "Netflix", LogoPath: "/netflix.jpg"}, badges[0])
		assert.Equal(t, ProviderBadge{Name: "wavve", LogoPath: "/wavve.jpg"}, badges[1])
		assert.Equal(t, ProviderBadge{Name: "TVING", LogoPath: "/tving.jpg"}, badges[2])
	})

	t.Run("oldest populated name field wins", func(t *testing.T) {
		badges := normalizeProviders([]catalog.Provider{
			{ProviderName: "Netflix", Name: "netflix-old", DisplayName: "NETFLIX"},
		})

		require.Len(t, badges, 1)
		assert.Equal(t, "Netflix", badges[0].Name)
	})

	t.Run("nameless entries dropped", func(t *testing.T) {
		badges := normalizeProviders([]catalog.Provider{
			{LogoPath: "/orphan.jpg"},
			{ProviderName: "wavve"},
		})

		require.Len(t, badges, 1)
		assert.Equal(t, "wavve", badges[0].Name)
	})

	t.Run("exact duplicates collapse", func(t *testing.T) {
		badges := normalizeProviders([]catalog.Provider{
			{ProviderName: "Netflix", LogoPath: "/a.jpg"},
			{Name: "NETFLIX ", Logo: "/b.jpg"},
		})

		require.Len(t, badges, 1)
		assert.Equal(t, "/a.jpg", badges[0].LogoPath, "first occurrence wins")
	})

	t.Run("near-identical names collapse", func(t *testing.T) {
		// Old records carry misspelled duplicates of the same service.
		badges := normalizeProviders([]catalog.Provider{
			{ProviderName: "Netflix"},
			{Name: "Netfliix"},
		})

		assert.Len(t, badges, 1)
	})

	t.Run("accented variants collapse", func(t *testing.T) {
		badges := normalizeProviders([]catalog.Provider{
			{ProviderName: "Canal Plus"},
			{Name: "Canál Plus"},
		})

		assert.Len(t, badges, 1)
	})
}

func TestNormalizeAgeRating(t *testing.T) {
	tests := []struct {
		cert string
		want string
	}{
		{"", AgeRatingUnknown},
		{"  ", AgeRatingUnknown},
		{"ALL", AgeRatingAll},
		{"G", AgeRatingAll},
		{"0", AgeRatingAll},
		{"7", AgeRating12},
		{"12", AgeRating12},
		{"PG-13", AgeRating15},
		{"15세 이상 관람가", AgeRating15},
		{"18", AgeRating18},
		{"19+", AgeRating18},
		{"청소년 관람불가 (19)", AgeRating18},
	}
	for _, tt := range tests {
		t.Run(tt.cert, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeAgeRating(tt.cert))
		})
	}
}

func TestProviderKey(t *testing.T) {
	assert.Equal(t, "disney plus", providerKey("  Disney+ Plus")) // punctuation stripped, spacing collapsed
	assert.Equal(t, providerKey("Canal Plus"), providerKey("Canál Plus"))
}
