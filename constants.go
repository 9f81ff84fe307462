// ./constants.go
package lunisolar

/*
Package lunisolar provides constants for the calendar engine.

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

import "math"

// Time axis constants.
const (
	J2000          = 2451545.0 // Julian Day of 2000-01-01 12:00 (J2000.0 epoch)
	UnixEpochJD    = 2440587.5 // Julian Day of 1970-01-01 00:00 UTC
	SecondsPerDay  = 86400     // Seconds in a civil day, leap seconds ignored
	DaysPerCentury = 36525.0   // Julian century in days

	gregorianStartJD = 2299161   // First day number (noon based) of the Gregorian calendar, 1582-10-15
	gregorianStartYM = 588829    // year*372 + month*31 + day for 1582-10-15
	epochSixtyDay    = 11        // Day number whose sixty-cycle index is 0 (甲子)
	epochSixtyYear   = 4         // Civil year whose sixty-cycle index is 0 (甲子), any year = 4 mod 60
	epochRabByung    = 1027      // First year of the first Rab-Byung cycle
	minYear          = 1         // Smallest supported civil year
	maxYear          = 9999      // Largest supported civil year
	defaultZoneHours = 8         // Civil zone of the fitted tables (UTC+8)
	lunationDays     = 29.5306   // Mean synodic month used for bucket stepping
	termDays         = 15.2184   // Mean spacing of successive solar terms
	tropicalYearDays = 365.2422  // Mean tropical year used for bucket stepping
)

// Angle constants.
const (
	TwoPi        = 2 * math.Pi
	SecondPerRad = 180 * 3600 / math.Pi // Arc seconds per radian
	degree       = math.Pi / 180
)

// Era boundaries (absolute Julian Days) selecting the solver tier.
const (
	highPrecisionFromJD   = 2436935     // 1960-01-01, high tier from here on
	solarTermTableStartJD = 2322147.76  // First solar term bucket covered by the correction table
	newMoonTableStartJD   = 1947168.00  // First lunation bucket covered by the correction table
	solarTermBucketShift  = 7           // Day shift applied before bucketing solar terms
	newMoonBucketShift    = 14          // Day shift applied before bucketing new moons
	springEquinox1999JD   = 2451259     // Reference equinox for solar term buckets
	newMoon2000JD         = 2451551     // Reference new moon for lunation buckets
	termBoundarySeconds   = 1200        // Re-solve window around midnight for solar terms
	moonBoundarySeconds   = 1800        // Re-solve window around midnight for new moons
)

// Solar term indices. Index 0 is the winter solstice that opens the year's
// cycle (December of the previous civil year); even indices are zhongqi.
const (
	DongZhi     = 0  // 冬至 winter solstice
	XiaoHan     = 1  // 小寒
	DaHan       = 2  // 大寒
	LiChun      = 3  // 立春 start of spring
	YuShui      = 4  // 雨水
	JingZhe     = 5  // 惊蛰
	ChunFen     = 6  // 春分 spring equinox
	QingMing    = 7  // 清明
	GuYu        = 8  // 谷雨
	LiXia       = 9  // 立夏
	XiaoMan     = 10 // 小满
	MangZhong   = 11 // 芒种
	XiaZhi      = 12 // 夏至 summer solstice
	XiaoShu     = 13 // 小暑
	DaShu       = 14 // 大暑
	LiQiu       = 15 // 立秋
	ChuShu      = 16 // 处暑
	BaiLu       = 17 // 白露
	QiuFen      = 18 // 秋分 autumn equinox
	HanLu       = 19 // 寒露
	ShuangJiang = 20 // 霜降
	LiDong      = 21 // 立冬
	XiaoXue     = 22 // 小雪
	DaXue       = 23 // 大雪
)

var solarTermNames = [24]string{
	"冬至", "小寒", "大寒", "立春", "雨水", "惊蛰", "春分", "清明", "谷雨", "立夏", "小满", "芒种",
	"夏至", "小暑", "大暑", "立秋", "处暑", "白露", "秋分", "寒露", "霜降", "立冬", "小雪", "大雪",
}

var heavenStemNames = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var earthBranchNames = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
