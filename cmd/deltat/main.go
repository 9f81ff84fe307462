// ./cmd/deltat/main.go
package main

/*
Command deltat prints ΔT and nutation for a range of years.

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

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mshafiee/lunisolar"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Fprintf(os.Stderr, "'deltat' takes a first and last year and an optional step.\n")
		fmt.Fprintf(os.Stderr, "It prints ΔT (TT-UT, seconds) and the nutation in longitude and\n")
		fmt.Fprintf(os.Stderr, "obliquity (arc seconds) at the start of each year.\n")
		os.Exit(2)
	}

	from, err1 := strconv.Atoi(os.Args[1])
	to, err2 := strconv.Atoi(os.Args[2])
	step := 1
	var err3 error
	if len(os.Args) == 4 {
		step, err3 = strconv.Atoi(os.Args[3])
	}
	if err1 != nil || err2 != nil || err3 != nil || step <= 0 || to < from {
		logger.Fatal("invalid arguments", zap.Strings("args", os.Args[1:]))
	}

	fmt.Printf("%6s %14s %12s %12s\n", "Year", "ΔT (s)", "Δψ (\")", "Δε (\")")
	for y := from; y <= to; y += step {
		sd, err := lunisolar.NewSolarDay(y, 1, 1)
		if err != nil {
			logger.Fatal("year", zap.Int("year", y), zap.Error(err))
		}
		t := (float64(sd.JulianDay()) - lunisolar.J2000) / lunisolar.DaysPerCentury
		fmt.Printf("%6d %14.3f %12.4f %12.4f\n",
			y,
			lunisolar.DeltaT(float64(y)),
			lunisolar.NutationLongitude(t)*lunisolar.SecondPerRad,
			lunisolar.NutationObliquity(t)*lunisolar.SecondPerRad,
		)
	}
}

