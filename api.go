// ./api.go

/*
Package lunisolar reconstructs the traditional Chinese calendar from first
principles.

Given a civil instant it computes solar-term boundaries, new-moon instants,
the lunar months of a year with leap-month placement, and the sixty-cycle
stem/branch pillars for year, month, day and hour. The astronomy is a
truncated VSOP87 solar series and an ELP-2000/82 lunar series, a ΔT model
spanning the supported years 1 through 9999, and an iterative event solver
whose day-level results inside the historical era are nudged by decoded
correction tables.

Key Features:
  - Julian Day conversion on the hybrid Julian/Gregorian calendar.
  - Exact solar-term and new-moon instants in a configurable civil zone.
  - Lunar years, months and days with leap months.
  - Year, month, day and hour pillars, with a pluggable rat-hour convention.
  - Tibetan Rab-Byung year attributes.

Usage:

 1. Construct an engine. Engines are safe for concurrent use and memoize
    derived months internally:
    ```go
    eng, err := lunisolar.New()
    if err != nil {
        log.Fatal(err)
    }
    ```

 2. Look up solar terms and lunar months:
    ```go
    term, err := eng.SolarTerm(2024, lunisolar.LiChun)
    if err != nil {
        log.Fatal(err)
    }
    fmt.Println(term.Name(), term.Day, term.JulianDay.SolarTime())

    year, err := eng.LunarYear(2023)
    if err != nil {
        log.Fatal(err)
    }
    fmt.Println("leap month:", year.LeapMonth())
    ```

 3. Derive the pillars of an instant:
    ```go
    st, err := lunisolar.NewSolarTime(2024, 2, 10, 8, 30, 0)
    if err != nil {
        log.Fatal(err)
    }
    p, err := eng.Pillars(st)
    if err != nil {
        log.Fatal(err)
    }
    fmt.Println(p) // 甲辰 丙寅 甲辰 戊辰
    ```

License:
This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.
*/

// Package lunisolar reconstructs the traditional Chinese calendar from first principles.
package lunisolar

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidDate is returned when a civil or lunar date does not exist.
var ErrInvalidDate = errors.New("invalid date")

// ErrOutOfRange is returned when a year lies outside the range a subsystem supports.
var ErrOutOfRange = errors.New("year outside supported range")

// ErrInvalidIndex is returned for a solar term, stem, branch or month index that does not exist.
var ErrInvalidIndex = errors.New("invalid index")

// ErrCorrupt is returned when a correction table cannot be decoded.
var ErrCorrupt = errors.New("corrupt correction table")

// ErrInitialization is returned when an Engine cannot be constructed. It wraps the specific cause.
var ErrInitialization = errors.New("engine initialization error")

// Engine computes calendar facts. It owns the decoded correction tables and
// the month cache; nothing is shared between engines. An Engine is safe for
// concurrent use.
type Engine struct {
	zone            float64 // civil zone offset in days
	fitted          bool    // zone is the UTC+8 zone the correction tables assume
	ratHour         RatHourConvention
	termCorrections *CorrectionTable
	moonCorrections *CorrectionTable
	cache           monthCache
}

// engineConfig collects options before the tables are decoded.
type engineConfig struct {
	zoneHours float64
	ratHour   RatHourConvention
	terms     string
	moons     string
	termTable *CorrectionTable
	moonTable *CorrectionTable
	err       error
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithZoneOffset sets the civil zone, in hours east of UTC, in which days
// begin and end. The default is 8 (China Standard Time). The correction
// tables are fitted to UTC+8; in any other zone the high tier decides every
// day.
func WithZoneOffset(hours float64) Option {
	return func(c *engineConfig) {
		if hours < -14 || hours > 14 {
			c.err = fmt.Errorf("zone offset %g hours: %w", hours, ErrOutOfRange)
			return
		}
		c.zoneHours = hours
	}
}

// WithRatHourConvention selects how 23:00-24:00 is assigned a day pillar.
// The default is UnifiedRatHour.
func WithRatHourConvention(conv RatHourConvention) Option {
	return func(c *engineConfig) {
		if conv != nil {
			c.ratHour = conv
		}
	}
}

// WithSolarTermCorrections replaces the encoded solar-term correction table.
func WithSolarTermCorrections(encoded string) Option {
	return func(c *engineConfig) { c.terms = encoded }
}

// WithNewMoonCorrections replaces the encoded new-moon correction table.
func WithNewMoonCorrections(encoded string) Option {
	return func(c *engineConfig) { c.moons = encoded }
}

// WithCorrectionTables installs already decoded tables. A nil table keeps
// the encoded default.
func WithCorrectionTables(terms, moons *CorrectionTable) Option {
	return func(c *engineConfig) {
		c.termTable = terms
		c.moonTable = moons
	}
}

// WithCorrectionFiles reads both tables from readers in any form accepted by
// ReadCorrections. A nil reader keeps the default.
func WithCorrectionFiles(terms, moons io.Reader) Option {
	return func(c *engineConfig) {
		if terms != nil {
			t, err := ReadCorrections(terms)
			if err != nil {
				c.err = fmt.Errorf("solar term corrections: %w", err)
				return
			}
			c.termTable = t
		}
		if moons != nil {
			t, err := ReadCorrections(moons)
			if err != nil {
				c.err = fmt.Errorf("new moon corrections: %w", err)
				return
			}
			c.moonTable = t
		}
	}
}

// New returns an Engine. Correction tables are decoded here, once.
//
// Parameters:
//   - opts: Options applied in order.
//
// Returns:
//   - *Engine: The engine on success, nil on failure.
//   - error: ErrInitialization wrapping the cause, such as ErrCorrupt.
func New(opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		zoneHours: defaultZoneHours,
		ratHour:   UnifiedRatHour{},
		terms:     defaultSolarTermCorrections,
		moons:     defaultNewMoonCorrections,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, cfg.err)
	}

	e := &Engine{
		zone:            cfg.zoneHours / 24,
		fitted:          cfg.zoneHours == defaultZoneHours,
		ratHour:         cfg.ratHour,
		termCorrections: cfg.termTable,
		moonCorrections: cfg.moonTable,
	}
	var err error
	if e.termCorrections == nil {
		if e.termCorrections, err = DecodeCorrections(cfg.terms); err != nil {
			return nil, fmt.Errorf("%w: solar term table: %w", ErrInitialization, err)
		}
	}
	if e.moonCorrections == nil {
		if e.moonCorrections, err = DecodeCorrections(cfg.moons); err != nil {
			return nil, fmt.Errorf("%w: new moon table: %w", ErrInitialization, err)
		}
	}
	return e, nil
}

// ZoneOffset returns the engine's civil zone in hours east of UTC.
func (e *Engine) ZoneOffset() float64 {
	return e.zone * 24
}

// RatHour returns the engine's rat-hour convention.
func (e *Engine) RatHour() RatHourConvention {
	return e.ratHour
}

// SolarTermCorrections returns the decoded solar-term table.
func (e *Engine) SolarTermCorrections() *CorrectionTable {
	return e.termCorrections
}

// NewMoonCorrections returns the decoded new-moon table.
func (e *Engine) NewMoonCorrections() *CorrectionTable {
	return e.moonCorrections
}

// checkYear rejects years outside the civil range.
func checkYear(year int) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("year %d: %w [%d, %d]", year, ErrOutOfRange, minYear, maxYear)
	}
	return nil
}
