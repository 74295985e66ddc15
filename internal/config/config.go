// Package config loads generation and database settings from the
// environment with sensible defaults. Command-line flags override whatever
// is loaded here.
package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// Config is the resolved settings for one invocation.
type Config struct {
	Seed        int64
	Patients    int
	Providers   int
	Medications int
	Workers     int
	OutDir      string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
}

// Load reads GEN_* and PG* environment variables over the defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("GEN_SEED", 12345)
	v.SetDefault("GEN_PATIENTS", 1000)
	v.SetDefault("GEN_PROVIDERS", 50)
	v.SetDefault("GEN_MEDICATIONS", 200)
	v.SetDefault("GEN_WORKERS", runtime.NumCPU())
	v.SetDefault("GEN_OUT_DIR", "data/raw")

	v.SetDefault("PGHOST", "localhost")
	v.SetDefault("PGPORT", 5432)
	v.SetDefault("PGUSER", "postgres")
	v.SetDefault("PGPASSWORD", "")
	v.SetDefault("PGDATABASE", "healthcare_clinical")

	return Config{
		Seed:        v.GetInt64("GEN_SEED"),
		Patients:    v.GetInt("GEN_PATIENTS"),
		Providers:   v.GetInt("GEN_PROVIDERS"),
		Medications: v.GetInt("GEN_MEDICATIONS"),
		Workers:     v.GetInt("GEN_WORKERS"),
		OutDir:      v.GetString("GEN_OUT_DIR"),

		DBHost:     v.GetString("PGHOST"),
		DBPort:     v.GetInt("PGPORT"),
		DBUser:     v.GetString("PGUSER"),
		DBPassword: v.GetString("PGPASSWORD"),
		DBName:     v.GetString("PGDATABASE"),
	}
}
