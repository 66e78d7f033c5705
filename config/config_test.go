package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turno/shift-engine/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "shifts.db", cfg.Database.Path)
	assert.Equal(t, "1423500", cfg.Payroll.MonthlyMinimumWage)
	assert.Empty(t, cfg.Payroll.RulesFile)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_PATH", ":memory:")
	t.Setenv("PAYROLL_MONTHLY_MINIMUM_WAGE", "1500000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "1500000", cfg.Payroll.MonthlyMinimumWage)
}
