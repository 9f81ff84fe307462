package lunisolar

/*
Package lunisolar provides the periodic series used by the longitude evaluator.

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

// vsopScale is the divisor applied to every amplitude in earthL.
const vsopScale = 1e8

// earthL holds the VSOP87D heliocentric longitude series of the Earth,
// truncated to the terms published in Meeus, "Astronomical Algorithms",
// Appendix III. Group i is multiplied by T^i, T in Julian millennia from J2000.
// Amplitudes are in units of 1e-8 radian; phases in radians; rates in radians
// per millennium. Each group is sorted by decreasing amplitude so that a term
// budget keeps the dominant terms.
var earthL = [6][]term{
	{ // L0
		{175347046, 0, 0},
		{3341656, 4.6692568, 6283.0758500},
		{34894, 4.62610, 12566.15170},
		{3497, 2.7441, 5753.3849},
		{3418, 2.8289, 3.5231},
		{3136, 3.6277, 77713.7715},
		{2676, 4.4181, 7860.4194},
		{2343, 6.1352, 3930.2097},
		{1324, 0.7425, 11506.7698},
		{1273, 2.0371, 529.6910},
		{1199, 1.1096, 1577.3435},
		{990, 5.233, 5884.927},
		{902, 2.045, 26.298},
		{857, 3.508, 398.149},
		{780, 1.179, 5223.694},
		{753, 2.533, 5507.553},
		{505, 4.583, 18849.228},
		{492, 4.205, 775.523},
		{357, 2.920, 0.067},
		{317, 5.849, 11790.629},
		{284, 1.899, 796.298},
		{271, 0.315, 10977.079},
		{243, 0.345, 5486.778},
		{206, 4.806, 2544.314},
		{205, 1.869, 5573.143},
		{202, 2.458, 6069.777},
		{156, 0.833, 213.299},
		{132, 3.411, 2942.463},
		{126, 1.083, 20.775},
		{115, 0.645, 0.980},
		{103, 0.636, 4694.003},
		{102, 0.976, 15720.839},
		{102, 4.267, 7.114},
		{99, 6.21, 2146.17},
		{98, 0.68, 155.42},
		{86, 5.98, 161000.69},
		{85, 1.30, 6275.96},
		{85, 3.67, 71430.70},
		{80, 1.81, 17260.15},
		{79, 3.04, 12036.46},
		{75, 1.76, 5088.63},
		{74, 3.50, 3154.69},
		{74, 4.68, 801.82},
		{70, 0.83, 9437.76},
		{62, 3.98, 8827.39},
		{61, 1.82, 7084.90},
		{57, 2.78, 6286.60},
		{56, 4.39, 14143.50},
		{56, 3.47, 6279.55},
		{52, 0.19, 12139.55},
		{52, 1.33, 1748.02},
		{51, 0.28, 5856.48},
		{49, 0.49, 1194.45},
		{41, 5.37, 8429.24},
		{41, 2.40, 19651.05},
		{39, 6.17, 10447.39},
		{37, 6.04, 10213.29},
		{37, 2.57, 1059.38},
		{36, 1.71, 2352.87},
		{36, 1.78, 6812.77},
		{33, 0.59, 17789.85},
		{30, 0.44, 83996.85},
		{30, 2.74, 1349.87},
		{25, 3.16, 4690.48},
	},
	{ // L1
		{628331966747, 0, 0},
		{206059, 2.678235, 6283.075850},
		{4303, 2.6351, 12566.1517},
		{425, 1.590, 3.523},
		{119, 5.796, 26.298},
		{109, 2.966, 1577.344},
		{93, 2.59, 18849.23},
		{72, 1.14, 529.69},
		{68, 1.87, 398.15},
		{67, 4.41, 5507.55},
		{59, 2.89, 5223.69},
		{56, 2.17, 155.42},
		{45, 0.40, 796.30},
		{36, 0.47, 775.52},
		{29, 2.65, 7.11},
		{21, 5.34, 0.98},
		{19, 1.85, 5486.78},
		{19, 4.97, 213.30},
		{17, 2.99, 6275.96},
		{16, 0.03, 2544.31},
		{16, 1.43, 2146.17},
		{15, 1.21, 10977.08},
		{12, 2.83, 1748.02},
		{12, 3.26, 5088.63},
		{12, 5.27, 1194.45},
		{12, 2.08, 4694.00},
		{11, 0.77, 553.57},
		{10, 1.30, 6286.60},
		{10, 4.24, 1349.87},
		{9, 2.70, 242.73},
		{9, 5.64, 951.72},
		{8, 5.30, 2352.87},
		{6, 2.65, 9437.76},
		{6, 4.67, 4690.48},
	},
	{ // L2
		{52919, 0, 0},
		{8720, 1.0721, 6283.0758},
		{309, 0.867, 12566.152},
		{27, 0.05, 3.52},
		{16, 5.19, 26.30},
		{16, 3.68, 155.42},
		{10, 0.76, 18849.23},
		{9, 2.06, 77713.77},
		{7, 0.83, 775.52},
		{5, 4.66, 1577.34},
		{4, 1.03, 7.11},
		{4, 3.44, 5573.14},
		{3, 5.14, 796.30},
		{3, 6.05, 5507.55},
		{3, 1.19, 242.73},
		{3, 6.12, 529.69},
		{3, 0.31, 398.15},
		{3, 2.28, 553.57},
		{2, 4.38, 5223.69},
		{2, 3.75, 0.98},
	},
	{ // L3
		{289, 5.844, 6283.076},
		{35, 0, 0},
		{17, 5.49, 12566.15},
		{3, 5.20, 155.42},
		{1, 4.72, 3.52},
		{1, 5.30, 18849.23},
		{1, 5.97, 242.73},
	},
	{ // L4
		{114, 3.142, 0},
		{8, 4.13, 6283.08},
		{1, 3.84, 12566.15},
	},
	{ // L5
		{1, 3.14, 0},
	},
}

// moonArgument enumerates the fundamental arguments the lunar series is built
// from. Each is a polynomial in T (Julian centuries from J2000), in degrees.
type moonArgument int

const (
	argD      moonArgument = iota // Mean elongation of the Moon
	argM                          // Mean anomaly of the Sun
	argMPrime                     // Mean anomaly of the Moon
	argF                          // Argument of latitude of the Moon
	argA1                         // Venus perturbation
	argA2                         // Jupiter perturbation
	argLPrime                     // Mean longitude of the Moon
	numMoonArguments
)

// moonArgumentPoly holds the polynomial coefficients (constant, T, T², T³, T⁴)
// of every fundamental argument, in degrees.
var moonArgumentPoly = [numMoonArguments][5]float64{
	argD:      {297.8501921, 445267.1114034, -0.0018819, 1.0 / 545868, -1.0 / 113065000},
	argM:      {357.5291092, 35999.0502909, -0.0001536, 1.0 / 24490000, 0},
	argMPrime: {134.9633964, 477198.8675055, 0.0087414, 1.0 / 69699, -1.0 / 14712000},
	argF:      {93.2720950, 483202.0175233, -0.0036539, -1.0 / 3526000, 1.0 / 863310000},
	argA1:     {119.75, 131.849, 0, 0, 0},
	argA2:     {53.09, 479264.290, 0, 0, 0},
	argLPrime: {218.3164477, 481267.88123421, -0.0015786, 1.0 / 538841, -1.0 / 65194000},
}

// eccentricityPoly is E = 1 - 0.002516 T - 0.0000074 T², applied once per unit
// of the Sun's mean anomaly multiplier.
var eccentricityPoly = [3]float64{1, -0.002516, -0.0000074}

// moonPeriodic is one published term of the lunar longitude series:
// coef * sin(Σ mult[k] * argument[k]), coef in 1e-6 degree.
type moonPeriodic struct {
	mult [numMoonArguments]int8
	coef float64
}

// mp is shorthand for the D, M, M', F terms of ELP-2000/82.
func mp(d, m, mPrime, f int8, coef float64) moonPeriodic {
	return moonPeriodic{mult: [numMoonArguments]int8{argD: d, argM: m, argMPrime: mPrime, argF: f}, coef: coef}
}

// moonPeriodicTerms is the ELP-2000/82 longitude series as truncated in
// Meeus, "Astronomical Algorithms", table 47.A, followed by the three
// additive planetary and flattening terms.
var moonPeriodicTerms = []moonPeriodic{
	mp(0, 0, 1, 0, 6288774),
	mp(2, 0, -1, 0, 1274027),
	mp(2, 0, 0, 0, 658314),
	mp(0, 0, 2, 0, 213618),
	mp(0, 1, 0, 0, -185116),
	mp(0, 0, 0, 2, -114332),
	mp(2, 0, -2, 0, 58793),
	mp(2, -1, -1, 0, 57066),
	mp(2, 0, 1, 0, 53322),
	mp(2, -1, 0, 0, 45758),
	mp(0, 1, -1, 0, -40923),
	mp(1, 0, 0, 0, -34720),
	mp(0, 1, 1, 0, -30383),
	mp(2, 0, 0, -2, 15327),
	mp(0, 0, 1, 2, -12528),
	mp(0, 0, 1, -2, 10980),
	mp(4, 0, -1, 0, 10675),
	mp(0, 0, 3, 0, 10034),
	mp(4, 0, -2, 0, 8548),
	mp(2, 1, -1, 0, -7888),
	mp(2, 1, 0, 0, -6766),
	mp(1, 0, -1, 0, -5163),
	mp(1, 1, 0, 0, 4987),
	mp(2, -1, 1, 0, 4036),
	mp(2, 0, 2, 0, 3994),
	mp(4, 0, 0, 0, 3861),
	mp(2, 0, -3, 0, 3665),
	mp(0, 1, -2, 0, -2689),
	mp(2, 0, -1, 2, -2602),
	mp(2, -1, -2, 0, 2390),
	mp(1, 0, 1, 0, -2348),
	mp(2, -2, 0, 0, 2236),
	mp(0, 1, 2, 0, -2120),
	mp(0, 2, 0, 0, -2069),
	mp(2, -2, -1, 0, 2048),
	mp(2, 0, 1, -2, -1773),
	mp(2, 0, 0, 2, -1595),
	mp(4, -1, -1, 0, 1215),
	mp(0, 0, 2, 2, -1110),
	mp(3, 0, -1, 0, -892),
	mp(2, 1, 1, 0, -810),
	mp(4, -1, -2, 0, 759),
	mp(0, 2, -1, 0, -713),
	mp(2, 2, -1, 0, -700),
	mp(2, 1, -2, 0, 691),
	mp(2, -1, 0, -2, 596),
	mp(4, 0, 1, 0, 549),
	mp(0, 0, 4, 0, 537),
	mp(4, -1, 0, 0, 520),
	mp(1, 0, -2, 0, -487),
	mp(2, 1, 0, -2, -399),
	mp(0, 0, 2, -2, -381),
	mp(1, 1, 1, 0, 351),
	mp(3, 0, -2, 0, -340),
	mp(4, 0, -3, 0, 330),
	mp(2, -1, 2, 0, 327),
	mp(0, 2, 1, 0, -323),
	mp(1, 1, -1, 0, 299),
	mp(2, 0, 3, 0, 294),
	{mult: [numMoonArguments]int8{argA1: 1}, coef: 3958},
	{mult: [numMoonArguments]int8{argLPrime: 1, argF: -1}, coef: 1962},
	{mult: [numMoonArguments]int8{argA2: 1}, coef: 318},
}

// nutationTerms is the medium precision series for nutation in longitude.
// Each row is phase, rate, rate², the longitude coefficient and the obliquity
// coefficient; coefficients are in units of 0.01 arc second.
var nutationTerms = [10][5]float64{
	{2.1824, -33.75705, 36e-6, -1720, 920},
	{3.5069, 1256.66393, 11e-6, -132, 57},
	{1.3375, 16799.4182, -51e-6, -23, 10},
	{4.3649, -67.5141, 72e-6, 21, -9},
	{0.04, -628.302, 0, -14, 0},
	{2.36, 8328.691, 0, 7, 0},
	{3.46, 1884.966, 0, -5, 2},
	{5.44, 16833.175, 0, -4, 2},
	{3.69, 25128.110, 0, -3, 0},
	{3.55, 628.362, 0, 2, 0},
}

// deltaTTable holds the ΔT (TT - UT) fit: each row is the anchor year and four
// cubic coefficients in the locally normalised parameter (y - y0)/(y1 - y0)*10.
// The final row carries only the last anchor year and its ΔT value.
var deltaTTable = [][]float64{
	{-4000, 108371.7, -13036.80, 392.000, 0.0000},
	{-500, 17201.0, -627.82, 16.170, -0.3413},
	{-150, 12200.6, -346.41, 5.403, -0.1593},
	{150, 9113.8, -328.13, -1.647, 0.0377},
	{500, 5707.5, -391.41, 0.915, 0.3145},
	{900, 2203.4, -283.45, 13.034, -0.1778},
	{1300, 490.1, -57.35, 2.085, -0.0072},
	{1600, 120.0, -9.81, -1.532, 0.1403},
	{1700, 10.2, -0.91, 0.510, -0.0370},
	{1800, 13.4, -0.72, 0.202, -0.0193},
	{1830, 7.8, -1.81, 0.416, -0.0247},
	{1860, 8.3, -0.13, -0.406, 0.0292},
	{1880, -5.4, 0.32, -0.183, 0.0173},
	{1900, -2.3, 2.06, 0.169, -0.0135},
	{1920, 21.2, 1.69, -0.304, 0.0167},
	{1940, 24.2, 1.22, -0.064, 0.0031},
	{1960, 33.2, 0.51, 0.231, -0.0109},
	{1980, 51.0, 1.29, -0.026, 0.0032},
	{2000, 63.87, 0.1, 0, 0},
	{2005, 64.7, 0.21, 0, 0},
	{2012, 66.8, 0.22, 0, 0},
	{2018, 69.0, 0.36, 0, 0},
	{2028, 72.6},
}
