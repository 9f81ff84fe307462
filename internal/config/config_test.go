package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mshafiee/lunisolar"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"ZoneOffsetHours", cfg.ZoneOffsetHours, 8.0},
		{"RatHour", cfg.RatHour, "unified"},
		{"Format", cfg.Format, "text"},
		{"Verbose", cfg.Verbose, false},
		{"SolarTerms", cfg.Corrections.SolarTerms, ""},
		{"NewMoons", cfg.Corrections.NewMoons, ""},
		{"Latitude", cfg.Location.Latitude, 39.9042},
		{"Longitude", cfg.Location.Longitude, 116.4074},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LUNISOLAR_ZONE_OFFSET_HOURS", "9")
	t.Setenv("LUNISOLAR_RAT_HOUR", "split")
	t.Setenv("LUNISOLAR_FORMAT", "json")

	v := viper.New()
	v.SetEnvPrefix("LUNISOLAR")
	v.AutomaticEnv()

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 9.0, cfg.ZoneOffsetHours)
	assert.Equal(t, "split", cfg.RatHour)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".lunisolar.yaml")
	content := []byte("format: yaml\nlocation:\n  latitude: 31.23\n  longitude: 121.47\ncorrections:\n  solar_terms: qb.txt\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.InDelta(t, 31.23, cfg.Location.Latitude, 1e-9)
	assert.InDelta(t, 121.47, cfg.Location.Longitude, 1e-9)
	assert.Equal(t, "qb.txt", cfg.Corrections.SolarTerms)
}

func TestValidate(t *testing.T) {
	base := Config{ZoneOffsetHours: 8, RatHour: "unified", Format: "text"}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zone too far east", func(c *Config) { c.ZoneOffsetHours = 15 }},
		{"unknown rat hour", func(c *Config) { c.RatHour = "noon" }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
		{"latitude", func(c *Config) { c.Location.Latitude = 91 }},
		{"longitude", func(c *Config) { c.Location.Longitude = -181 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestEngineOptions(t *testing.T) {
	dir := t.TempDir()
	terms := filepath.Join(dir, "terms.txt")
	require.NoError(t, os.WriteFile(terms, []byte("AAA\nAk\n"), 0o644))

	cfg := Config{ZoneOffsetHours: 8, RatHour: "split", Format: "text"}
	cfg.Corrections.SolarTerms = terms

	opts, closeFiles, err := cfg.EngineOptions()
	require.NoError(t, err)
	defer closeFiles()

	eng, err := lunisolar.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, 242, eng.SolarTermCorrections().Len())
	assert.Equal(t, 1, eng.SolarTermCorrections().Offset(241))
	assert.Equal(t, "split", eng.RatHour().Name())
}

func TestEngineOptions_MissingFile(t *testing.T) {
	cfg := Config{ZoneOffsetHours: 8, RatHour: "unified", Format: "text"}
	cfg.Corrections.NewMoons = filepath.Join(t.TempDir(), "missing.txt")
	_, _, err := cfg.EngineOptions()
	assert.Error(t, err)
}
