package lunisolar

/*
Package lunisolar provides the sixty-cycle of stems and branches.

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

import "fmt"

// HeavenStem is one of the ten heavenly stems, 0 (甲) through 9 (癸).
type HeavenStem int

// Name returns the Chinese name of the stem.
func (s HeavenStem) Name() string {
	return heavenStemNames[floorMod(int(s), 10)]
}

// String returns the name.
func (s HeavenStem) String() string {
	return s.Name()
}

// Element returns the five-phase index of the stem: 0 wood, 1 fire,
// 2 earth, 3 metal, 4 water.
func (s HeavenStem) Element() int {
	return floorMod(int(s), 10) / 2
}

// IsYang reports whether the stem is yang (even index).
func (s HeavenStem) IsYang() bool {
	return floorMod(int(s), 2) == 0
}

// EarthBranch is one of the twelve earthly branches, 0 (子) through 11 (亥).
type EarthBranch int

// Name returns the Chinese name of the branch.
func (b EarthBranch) Name() string {
	return earthBranchNames[floorMod(int(b), 12)]
}

// String returns the name.
func (b EarthBranch) String() string {
	return b.Name()
}

// SixtyCycle is a stem-branch pair, 0 (甲子) through 59 (癸亥).
type SixtyCycle int

// NewSixtyCycle reduces any integer into the cycle.
func NewSixtyCycle(index int) SixtyCycle {
	return SixtyCycle(floorMod(index, 60))
}

// FromStemBranch returns the cycle element pairing stem with branch.
//
// Returns:
//   - SixtyCycle: The pair.
//   - error: ErrInvalidIndex when the indices are out of range or of
//     different parity; such pairs never occur in the cycle.
func FromStemBranch(stem HeavenStem, branch EarthBranch) (SixtyCycle, error) {
	if stem < 0 || stem > 9 || branch < 0 || branch > 11 {
		return 0, fmt.Errorf("stem %d branch %d: %w", stem, branch, ErrInvalidIndex)
	}
	if int(stem)%2 != int(branch)%2 {
		return 0, fmt.Errorf("%s%s is not in the cycle: %w", stem, branch, ErrInvalidIndex)
	}
	return NewSixtyCycle(6*int(stem) - 5*int(branch)), nil
}

// ParseSixtyCycle returns the element with the given two-character name.
func ParseSixtyCycle(name string) (SixtyCycle, error) {
	for i := 0; i < 60; i++ {
		if c := SixtyCycle(i); c.Name() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("sixty cycle %q: %w", name, ErrInvalidIndex)
}

// Index returns the position in the cycle.
func (c SixtyCycle) Index() int {
	return int(c)
}

// Stem returns the heavenly stem, index mod 10.
func (c SixtyCycle) Stem() HeavenStem {
	return HeavenStem(int(c) % 10)
}

// Branch returns the earthly branch, index mod 12.
func (c SixtyCycle) Branch() EarthBranch {
	return EarthBranch(int(c) % 12)
}

// Next returns the element n steps later (earlier for negative n).
func (c SixtyCycle) Next(n int) SixtyCycle {
	return NewSixtyCycle(int(c) + n)
}

// Name returns the two-character name, stem then branch.
func (c SixtyCycle) Name() string {
	return c.Stem().Name() + c.Branch().Name()
}

// String returns the name.
func (c SixtyCycle) String() string {
	return c.Name()
}

// daySixtyCycle returns the day pillar of a civil day: the noon Julian Day
// number less the epoch, mod 60.
func daySixtyCycle(d SolarDay) SixtyCycle {
	return NewSixtyCycle(d.dayNumber() + J2000 - epochSixtyDay)
}

// DaySixtyCycle returns the day pillar of a civil day.
func DaySixtyCycle(d SolarDay) SixtyCycle {
	return daySixtyCycle(d)
}
