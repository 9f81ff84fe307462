package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mshafiee/lunisolar"
)

// parseDate parses YYYY-MM-DD into a validated civil day.
func parseDate(s string) (lunisolar.SolarDay, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return lunisolar.SolarDay{}, fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	n, err := atois(parts)
	if err != nil {
		return lunisolar.SolarDay{}, fmt.Errorf("date %q: %w", s, err)
	}
	return lunisolar.NewSolarDay(n[0], n[1], n[2])
}

// parseClock parses HH:MM or HH:MM:SS.
func parseClock(s string) (hour, minute, second int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("time %q: want HH:MM[:SS]", s)
	}
	n, err := atois(parts)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("time %q: %w", s, err)
	}
	if len(n) == 3 {
		second = n[2]
	}
	return n[0], n[1], second, nil
}

// parseTime combines a date argument with an optional clock argument.
func parseTime(args []string) (lunisolar.SolarTime, error) {
	d, err := parseDate(args[0])
	if err != nil {
		return lunisolar.SolarTime{}, err
	}
	var h, m, s int
	if len(args) > 1 {
		if h, m, s, err = parseClock(args[1]); err != nil {
			return lunisolar.SolarTime{}, err
		}
	}
	return lunisolar.NewSolarTime(d.Year, d.Month, d.Day, h, m, s)
}

// parseYear parses an optional year argument, defaulting to def.
func parseYear(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	y, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("year %q: %w", args[0], err)
	}
	return y, nil
}

func atois(parts []string) ([]int, error) {
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
