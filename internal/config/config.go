package config

import (
	"fmt"
	"io"
	"os"

	"github.com/mshafiee/lunisolar"
	"github.com/spf13/viper"
)

// CorrectionsConfig names optional correction table files. Empty paths keep
// the built-in tables.
type CorrectionsConfig struct {
	SolarTerms string `mapstructure:"solar_terms"`
	NewMoons   string `mapstructure:"new_moons"`
}

// LocationConfig is the observer used for sunrise and sunset.
type LocationConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// Config holds all runtime configuration for the lunisolar binaries.
// Values are populated from .lunisolar.yaml, LUNISOLAR_* env vars, and CLI flags.
type Config struct {
	ZoneOffsetHours float64           `mapstructure:"zone_offset_hours"`
	RatHour         string            `mapstructure:"rat_hour"`
	Format          string            `mapstructure:"format"`
	Verbose         bool              `mapstructure:"verbose"`
	Corrections     CorrectionsConfig `mapstructure:"corrections"`
	Location        LocationConfig    `mapstructure:"location"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("zone_offset_hours", 8.0)
	v.SetDefault("rat_hour", "unified")
	v.SetDefault("format", "text")
	v.SetDefault("verbose", false)
	v.SetDefault("corrections.solar_terms", "")
	v.SetDefault("corrections.new_moons", "")
	v.SetDefault("location.latitude", 39.9042)
	v.SetDefault("location.longitude", 116.4074)
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if c.ZoneOffsetHours < -14 || c.ZoneOffsetHours > 14 {
		return fmt.Errorf("zone_offset_hours %g outside [-14, 14]", c.ZoneOffsetHours)
	}
	if _, err := lunisolar.RatHourConventionByName(c.RatHour); err != nil {
		return fmt.Errorf("rat_hour: %w", err)
	}
	switch c.Format {
	case "text", "json", "yaml", "toml":
	default:
		return fmt.Errorf("format %q: want text, json, yaml or toml", c.Format)
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("location.latitude %g outside [-90, 90]", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("location.longitude %g outside [-180, 180]", c.Location.Longitude)
	}
	return nil
}

// EngineOptions translates the configuration into engine options, opening
// any correction files. The returned closer releases the files once the
// engine has been built.
func (c Config) EngineOptions() ([]lunisolar.Option, func(), error) {
	conv, err := lunisolar.RatHourConventionByName(c.RatHour)
	if err != nil {
		return nil, nil, err
	}
	opts := []lunisolar.Option{
		lunisolar.WithZoneOffset(c.ZoneOffsetHours),
		lunisolar.WithRatHourConvention(conv),
	}

	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	open := func(path string) (*os.File, error) {
		if path == "" {
			return nil, nil
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open corrections: %w", err)
		}
		files = append(files, f)
		return f, nil
	}

	terms, err := open(c.Corrections.SolarTerms)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	moons, err := open(c.Corrections.NewMoons)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	if terms != nil || moons != nil {
		// A nil *os.File would be a non-nil io.Reader.
		var tr, mr io.Reader
		if terms != nil {
			tr = terms
		}
		if moons != nil {
			mr = moons
		}
		opts = append(opts, lunisolar.WithCorrectionFiles(tr, mr))
	}
	return opts, closeAll, nil
}
