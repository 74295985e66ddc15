package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.EqualValues(t, 12345, cfg.Seed)
	require.Equal(t, 1000, cfg.Patients)
	require.Equal(t, 50, cfg.Providers)
	require.Equal(t, 200, cfg.Medications)
	require.Greater(t, cfg.Workers, 0)
	require.Equal(t, "data/raw", cfg.OutDir)
	require.Equal(t, "localhost", cfg.DBHost)
	require.Equal(t, 5432, cfg.DBPort)
	require.Equal(t, "healthcare_clinical", cfg.DBName)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GEN_SEED", "99")
	t.Setenv("GEN_PATIENTS", "25")
	t.Setenv("GEN_OUT_DIR", "/tmp/out")
	t.Setenv("PGDATABASE", "other_db")

	cfg := Load()
	require.EqualValues(t, 99, cfg.Seed)
	require.Equal(t, 25, cfg.Patients)
	require.Equal(t, "/tmp/out", cfg.OutDir)
	require.Equal(t, "other_db", cfg.DBName)
}
