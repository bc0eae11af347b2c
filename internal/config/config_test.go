package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, 10, cfg.Dashboard.DefaultPageSize)
	assert.Equal(t, 100, cfg.Dashboard.MaxPageSize)
	assert.Equal(t, 5000, cfg.Dashboard.MaxImportRecords)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.ManagerResetTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.IsTesting())
	require.NotNil(t, cfg.JWT.PrivateKey)
	require.NotNil(t, cfg.JWT.PublicKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DASHBOARD_PAGE_SIZE", "20")
	t.Setenv("DASHBOARD_MAX_PAGE_SIZE", "5")
	t.Setenv("DASHBOARD_CACHE_TTL", "2m")
	t.Setenv("DASHBOARD_SEED_MOCK_DATA", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://admin.tradebot365.com, http://localhost:5173")

	cfg := Load()

	assert.Equal(t, 20, cfg.Dashboard.DefaultPageSize)
	assert.Equal(t, 20, cfg.Dashboard.MaxPageSize, "max page size never drops below the default")
	assert.Equal(t, 2*time.Minute, cfg.Dashboard.CacheTTL)
	assert.True(t, cfg.Dashboard.SeedMockData)
	assert.Equal(t, []string{"https://admin.tradebot365.com", "http://localhost:5173"}, cfg.Server.CORSAllowOrigins)
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("TB_INT", "ten")
	t.Setenv("TB_BOOL", "maybe")
	t.Setenv("TB_DURATION", "soon")

	assert.Equal(t, 7, getIntEnv("TB_INT", 7))
	assert.False(t, getBoolEnv("TB_BOOL", false))
	assert.Equal(t, time.Second, getDurationEnv("TB_DURATION", time.Second))
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", db.DSN())
}
