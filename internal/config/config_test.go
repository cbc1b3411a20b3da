package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdoardoGruppi/Watch-Movies/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "US", cfg.Catalog.Country)
	assert.Equal(t, "en", cfg.Catalog.Language)
	assert.Equal(t, 20, cfg.Catalog.ResultCount)
	assert.False(t, cfg.Catalog.BestOnly)
	require.NoError(t, cfg.Validate())
}

func TestValidate_NormalizesCodes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.Country = " us "
	cfg.Catalog.Language = " EN "
	cfg.Catalog.Countries = []string{"de", "fr "}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "US", cfg.Catalog.Country)
	assert.Equal(t, "en", cfg.Catalog.Language)
	assert.Equal(t, []string{"DE", "FR"}, cfg.Catalog.Countries)
}

func TestValidate_RejectsBadCountry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.Country = "usa"
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidCountryCode)

	cfg = DefaultConfig()
	cfg.Catalog.Countries = []string{"US", "X"}
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidCountryCode)
}

func TestValidate_ResultCountFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.ResultCount = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Catalog.ResultCount)
}
