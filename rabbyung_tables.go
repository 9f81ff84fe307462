package lunisolar

/*
Package lunisolar provides the Rab-Byung month table.

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

// rabByungYears holds one row per year from RabByungMinYear, computed with
// the Phugpa rules of the Kalachakra calendar.
//
// first is the day number (days from 2000-01-01) of Losar and leap the
// repeated month, or 0. days holds one token per month in calendar order, the
// leap month before the month it repeats: "-d" marks a lunar day that owns no
// civil day, "+d" one that spans two civil days and "." a month with neither.
var rabByungYears = [...]rabByungYearRow{
	{-18215, 0, "+6-21 +9-14 -19 +3-12 -15+29 -8 -10+26 -3 -7+21-30 . -4+14-29 +17-22"},                       // 1950
	{-17860, 4, "-28 +9-22 -26 +2-19 +8-11-23+28 -15 -18+25 -10 -14+20 -7+25 -1 -5+17-30 +21-23"},             // 1951
	{-17476, 0, "-29 +12-22 -26 +6-19 -22 +3-15 -18+29 -11 -14+24 -8+29-30 -14+16 -7+20"},                     // 1952
	{-17121, 0, "-1 -6+12-29 +16-23 -26 +11-19 -22 +8-14 -18 +4-11 -15+27 -9 -14+19"},                         // 1953
	{-16767, 1, "-8+22 -2 -6+15-30 . -4+10-26 -29 +7-22 -25 +3-18 -23+27 -16 +1-10 -15+22"},                   // 1954
	{-16383, 0, "-9+26 -3 -7+19-30 . -4+15-26 -29 +12-22 -25 +7-19 -23+30 -17 +3-11"},                         // 1955
	{-16029, 9, "-16+25 -10+29 -3-15+17 -7+23-30 . -4+20-26 -8+9-29 +16-21 -26 +11-19 -24 +3-18 +6-12"},       // 1956
	{-15645, 0, "-17+28 -11 -15+23 -8 -11+19 -3 -6+15-29 . -3+10-26 +14-20 -25 +6-19"},                        // 1957
	{-15291, 0, "+10-12-25+27 -18 +2-11 -15+27 -8 -11+24 -3 -6+20-30 . -3+14-27 . -3+5-26"},                   // 1958
	{-14937, 6, "+9-20 -25 +2-18 +6-11 -15 +2-7-19+22 -11+29 -2-14+19 -7+24-30 . -4+17-28 . -3+9-27"},         // 1959
	{-14553, 0, "+12-21 -25 +5-19 -22 +1-15 -18+27 -11 -14+23 -7 -12+17 -5+20-29 ."},                          // 1960
	{-14198, 0, "-4+12-28 +15-22 -26 +9-19 -22 +5-15 -18 +2-11 -14+27 -8 -12+20 -6+23-30"},                    // 1961
	{-13844, 2, ". -5+15-29 . -4+8-26 +14-19-30 +4-22 +11-14-25 +1-18 +7-10-22+26 -15 +1-8 -13+23 -7+26"},     // 1962
	{-13459, 0, "-1 -6+18-30 . -3+13-27 -29 +9-22 -25 +6-18 -22+30 -15 +4-9 -14+26"},                          // 1963
	{-13105, 11, "-9 -14+17 -7+22-30 . -4+17-27 -29 +14-22 -25 +10-18 -22 +3-16 -23+24 -15+28"},               // 1964
	{-12721, 0, "-10 -14+21 -7+27-30 -11+16 -4+24-25 -7+13-29 . -2+9-26 +14-18 -23 +7-18 -23+28"},             // 1965
	{-12367, 0, "-17 +2-11 -14+25 -8 -11+21 -4 -6+18-29 . -3+13-26 . -1+6-24 +9-19"},                          // 1966
	{-12013, 7, "-24 +1-18 +5-11 -15+30 -8 -11+26 -3 -6+22-29 . -3+17-27 . -1+9-26 +12-20"},                   // 1967
	{-11629, 0, "-24 +5-18 -22+29 -15 -18+25 -11 -14+21 -7 -11+16 -4+20-28 . -2+12-27"},                       // 1968
	{-11275, 0, "+15-21 -25 +8-19 -22 +3-15 -18+30 -11 -14+26 -7 -11+20 -5+23-28 ."},                          // 1969
	{-10920, 4, "-4+15-28 . -3+7-26 +12-19 -22 +8-15 -18 +5-10-22+24 -14+30 -7 -12+23 -6 -12+14"},             // 1970
	{-10536, 0, "-5+18-29 . -3+11-26 -30 +7-22 -25 +4-18 -21+29 -15 +4-7-20+22 -13+26 -7"},                    // 1971
	{-10182, 12, "-12+18 -6+21-30 . -3+15-27 -29 +12-22 -25 +8-18 -21 +3-15 -20+26 -14+29 -8"},                // 1972
	{-9798, 0, "-13+21 -7+25-30 -12+14 -4+20-26 -29 +17-21 -3+7-25 +13-18 -22 +7-16 -21+29 -15"},              // 1973
	{-9444, 0, "+2-9 -14+24 -7 -11+19 -4 -7+16-29 . -2+12-25 -29 +6-23 +10-17 -22"},                           // 1974
	{-9090, 9, "+2-16 +5-10 -14+28 -8 -11+24 -4 -6+21-29 . -2+16-26 -30 +9-24 +13-18 -23"},                    // 1975
	{-8706, 0, "+4-17 -22+27 -15 +2-7-19+22 -11+29 -3-14+19 -6+26-28 -10+15 -3+20-26 . -1+13-25 ."},           // 1976
	{-8351, 0, "-2+3-24 +8-18 -22 +2-15 -18+27 -11 -14+24 -7 -10+19 -4+25-26 -9+12 -2+15-26"},                 // 1977
	{-7997, 5, ". -2+7-25 +11-19 -22 +6-15 -18 +2-11 -14+29 -7 -11+23 -4 -9+15 -3+18-28"},                     // 1978
	{-7613, 0, ". -2+11-26 +16-18-30 +5-22 +11-14-26 +1-18 -21+28 -14 +4-6-19+22 -11+26 -5 -10+18"},           // 1979
	{-7258, 0, "-4+21-28 . -3+14-26 -30 +10-23 -25 +6-18 -21 +2-14 -18+26 -12+29 -6"},                         // 1980
	{-6904, 2, "-11+21 -6+25-29 . -3+18-27 -30 +14-22 -25 +11-18 -21 +6-15 -19+29 -13 +2-7"},                  // 1981
	{-6520, 0, "-12+24 -7 -11+18 -4 -7+13-30 . -2+10-25 -29 +5-22 +10-15 -20 +2-15"},                          // 1982
	{-6166, 10, "-21+23 -13+27 -7 -11+22 -4 -7+18-30 . -2+15-25 -29 +9-23 -28 +1-21 +5-16"},                   // 1983
	{-5782, 0, "-21+27 -14 +1-7 -11+26 -4 -7+23-29 -11+12 -2+19-26 -30 +13-24 -29 +5-23"},                     // 1984
	{-5428, 0, "+8-17 -21 +1-15 -18+25 -11 -14+22 -7 -10+18 -3 -7+12 -1+16-25 -30"},                           // 1985
	{-5074, 7, "+7-24 +11-18 -22 +4-15 -18+30 -11 -14+27 -7 -10+22 -3 -8+16 -2+19-26 ."},                      // 1986
	{-4689, 0, "-1+10-25 +15-17-30 +3-22 +9-15 -18 +5-10-22+25 -14 +2-6-18+21 -10+26 -4 -8+19 -3+22-27"},      // 1987
	{-4335, 0, ". -2+14-26 -29 +8-23 -26 +4-18 -21 +1-14 -18+25 -11+30 -4 -10+21"},                            // 1988
	{-3980, 3, "-4 -10+13 -3+17-26 -30 +12-23 -25 +9-18 -21 +5-14 -18+29 -12 -18+21 -11+24"},                  // 1989
	{-3596, 0, "-5 -10+17 -3+21-26 -8+10-30 +17-22 -3+7-25 +15-17-29 +4-21 +9-14 -19 +2-13 -18+24"},           // 1990
	{-3242, 12, "-12+27 -6 -10+21 -4 -7+16-30 . -2+13-25 -28 +8-22 -26 +2-20 +5-14 -19+27"},                   // 1991
	{-2858, 0, "-13+30 -7 -11+25 -4 -7+21-30 . -2+17-25 -29 +12-22 -27 +5-21 +8-15"},                          // 1992
	{-2504, 0, "-20+30 -14 -18+24 -11+29 -3-15+19 -7 -10+16 -3 -7+11-29 +16-23 -28 +8-22"},                    // 1993
	{-2150, 8, "+11-16 -21 +4-15 -18+28 -11 -14+25 -7 -10+21 -3 -7+15-30 +19-24 -29 +11-23"},                  // 1994
	{-1766, 0, "-29 +3-22 +7-15 -18 +3-11 -14+30 -6 -10+25 -3 -7+19 -1 -7+10-30"},                             // 1995
	{-1412, 0, "+14-24 -29 +7-22 +13-14-26 +2-18 -21+28 -14 -17+24 -10+29 -3-16+17 -8+22 -2"},                 // 1996
	{-1057, 5, "-8+13 -1+17-25 -29 +11-23 -26 +6-18 -21 +3-14 -17+28 -11 -15+21 -9+25 -4"},                    // 1997
	{-673, 0, "-8+16 -2+20-25 -30 +15-23 -26 +11-18 -21 +8-14 -18 +2-12 -16+24 -10+27"},                       // 1998
	{-318, 0, "-5 -9+20 -3 -7+14-30 . -3+10-25 -28 +7-21 -25 +1-19 +5-12 -17+27"},                             // 1999
	{36, 1, "-12 +1-5 -10+23 -4 -7+19-30 . -3+15-25 -28 +11-22 -26 +5-19 +9-13 -18+30"},                       // 2000
	{420, 0, "-13 -18+23 -11+27 -4 -7+23-29 -11+13 -3+20-25 -6+10-29 +15-22 -26 +8-21 -27+29"},                // 2001
	{774, 10, "-20 +3-14 -18+27 -11 -14+22 -7 -10+19 -3 -6+14-29 +20-21 -4+7-27 +11-22 -27"},                  // 2002
	{1157, 0, "+3-21 +7-14 -18 +1-11 -14+27 -7 -10+24 -3 -6+18-30 . -5+11-29 +14-23"},                         // 2003
	{1512, 0, "-28 +6-21 +11-14-26+29 -18 +5-11-23+25 -14 +3-6-17+23 -10+28 -2-15+17 -7+22 -1 -6+14-30"},      // 2004
	{1866, 6, "+17-24 -28 +10-22 -26 +4-19 -21 +1-14 -17+27 -10 -14+21 -8+25 -2 -7+17"},                       // 2005
	{2251, 0, "-1+20-24 -29 +13-23 -26 +9-19 -21 +6-14 -17 +1-11 -15+25 -9+28 -2"},                            // 2006
	{2605, 0, "-8+20 -2 -6+13-30 +18-22 -4+8-26 +15-17-29 +5-21 -25+30 -18 +5-11 -16+28 -10"},                 // 2007
	{2959, 3, "-16+19 -9+23 -3 -7+17-30 . -3+13-26 -28 +10-21 -25 +4-18 -24+27 -17 +1-11"},                    // 2008
	{3343, 0, "-16+22 -10+26 -3 -7+21-30 . -3+18-25 -28 +14-21 -25 +8-19 -24+30 -18"},                         // 2009
	{3697, 11, "+3-12 -17+26 -11 -15+20 -7+27-28 -10+17 -3 -6+13-29 . -3+7-26 +11-20 -25 +3-19"},              // 2010
	{4081, 0, "+6-13 -18+30 -11 -14+25 -7 -10+22 -3 -6+17-29 . -3+11-27 +14-21 -26"},                          // 2011
	{4435, 0, "+6-20 +10-13-26+28 -18 +4-11 -14+30 -7 -10+26 -2 -6+21-30 . -4+14-28 +18-22"},                  // 2012
	{4790, 8, "-27 +9-21 -25 +3-19 -22+29 -14 -17+25 -10 -13+21 -7+25-30 . -5+17-29 ."},                       // 2013
	{5174, 0, "-5+8-28 +13-22 -26 +7-19 -21 +4-14 -17+30 -10 -14+24 -7 -13+17 -6+20"},                         // 2014
	{5529, 0, "-1 -5+12-29 +16-22 -26 +12-18 -21 +9-13-25+28 -17 +4-10 -14+28 -8 -13+20"},                     // 2015
	{5883, 4, "-7+23 -2 -6+16-30 . -3+11-26 -29 +7-21 -24 +3-18 -22+27 -15 +1-9 -14+23"},                      // 2016
	{6267, 0, "-9+26 -2 -7+20-30 . -3+15-26 -28 +12-21 -25 +7-18 -22 +1-16 +4-10"},                            // 2017
	{6621, 0, "-16+26 -10 -14+19 -7+24-30 . -3+21-25 -6+11-29 +17-20 -3+6-25 +11-19 -23 +4-18"},               // 2018
	{6975, 1, "+7-11 -17+29 -10 -14+23 -7 -10+19 -3 -6+16-29 . -2+11-26 +15-19 -24 +6-19"},                    // 2019
	{7359, 0, "-24+28 -17 +3-11 -14+28 -7 -10+24 -3 -6+20-29 . -3+14-27 . -2+6-26"},                           // 2020
	{7713, 9, "+9-20 -24 +2-18 +7-10-22+26 -15 +3-6-18+23 -10 -13+19 -6+25-29 . -4+17-28 . -3+9-27"},          // 2021
	{8097, 0, "+12-21 -25 +6-18 -22 +1-15 -17+28 -10 -13+24 -7 -11+17 -5+20-29 ."},                            // 2022
	{8452, 0, "-4+12-28 +16-21 -25 +10-19 -22 +6-14 -17 +3-10 -14+27 -7 -12+20 -6+23-30"},                     // 2023
	{8806, 6, ". -5+15-29 . -3+9-26 +15-18-29 +5-22 -24 +2-17 -21+27 -14 +1-8 -13+23 -7+26"},                  // 2024
	{9191, 0, "-1 -6+19-29 . -3+13-26 -29 +10-22 -24 +6-18 -21+30 -15 +5-8 -14+26"},                           // 2025
	{9545, 0, "-8 -13+18 -6+23-30 . -3+18-26 -29 +15-21 -25 +10-18 -22 +4-16 -22+25"},                         // 2026
	{9899, 2, "-15+29 -9 -13+22 -7 -11+17 -3 -6+14-29 . -2+10-25 +15-17-30 +3-23 +7-17 -22+29"},               // 2027
	{10283, 0, "-16 +2-10 -14+26 -7 -10+22 -3 -6+19-29 . -2+14-26 -30 +7-24 +10-18"},                          // 2028
	{10637, 11, "-23 +2-17 +6-10-23+24 -14+30 -7 -10+27 -3-14+17 -6+23-28 . -3+17-26 . -1+10-25 +13-19"},      // 2029
	{11021, 0, "-24 +5-18 -22+29 -15 -18+26 -10 -13+22 -6 -10+17 -3+21-27 . -2+12-26"},                        // 2030
	{11375, 0, "+16-20 -25 +9-18 -22 +4-15 -17 +1-10 -13+26 -6 -10+20 -4+24-28 ."},                            // 2031
	{11730, 7, "-3+15-28 . -2+8-25 +13-18 -22 +9-14-26+29 -17 +6-9-21+25 -14+30 -7 -11+23 -5 -11+15"},         // 2032
	{12114, 0, "-4+18-29 . -2+12-26 -29 +7-22 -24 +4-17 -21+30 -14 -19+23 -12+26 -7"},                         // 2033
	{12468, 0, "-12+18 -5+22-29 . -3+16-26 -29 +12-22 -24 +9-17 -21 +3-15 -19+26 -13+29"},                     // 2034
	{12823, 4, "-8 -12+21 -6+26-28 -11+15 -3+21-25 -7+11-29 +19-20 -2+8-25 +14-17-29 +2-22 +7-16 -20+29 -15"}, // 2035
	{13206, 0, "+2-9 -13+25 -7 -10+20 -3 -6+16-29 . -2+12-25 -29 +7-23 +10-16 -22"},                           // 2036
	{13560, 12, "+2-16 +6-9-22+23 -14+29 -7 -10+24 -3 -6+21-29 . -2+16-25 -29 +10-24 +14-17 -23"},             // 2037
	{13944, 0, "+5-17 -21+28 -14 +4-6-18+23 -10 -13+20 -6 -9+16 -2+20-26 -30 +13-25 ."},                       // 2038
	{14299, 0, "-1+4-24 +8-18 -21 +2-15 -18+28 -10 -13+25 -6 -9+20 -3 -8+12 -2+16-26"},                        // 2039
	{14653, 9, ". -1+8-25 +12-18 -22 +7-15 -18 +3-10 -13+29 -6 -10+23 -4 -9+16 -3+18-27"},                     // 2040
	{15037, 0, ". -2+11-25 -29 +6-22 -25 +2-17 -20+28 -13 -18+23 -11+27 -5 -10+18"},                           // 2041
	{15392, 0, "-4+22-28 . -2+15-26 -29 +10-22 -25 +7-17 -20 +3-14 -18+26 -12+30 -6"},                         // 2042
	{15746, 5, "-11+21 -5+26-28 -10+14 -3+19-26 -29 +15-22 -25 +12-17-29 +1-21 +6-14 -19+29 -13 +3-6"},        // 2043
	{16130, 0, "-12+24 -6 -10+18 -3 -6+14-29 . -2+11-25 -28 +6-22 +11-14 -20 +2-14"},                          // 2044
	{16484, 0, "-20+24 -13+28 -7 -10+22 -3 -6+19-29 . -2+15-25 -28 +10-22 -27 +2-21"},                         // 2045
	{16838, 2, "+5-15 -20+27 -14 +2-7-19+20 -11+27 -3-15+16 -6+24-28 -10+14 -2+19-25 -29 +13-23 -28 +5-22"},   // 2046
	{17222, 0, "+8-16 -21 +1-14 -18+26 -11 -13+23 -6 -9+19 -2 -7+13-30 +16-24 -29"},                           // 2047
	{17576, 10, "+8-23 +11-17 -21 +5-15 -18 +1-11 -13+28 -6 -9+23 -3 -7+16 -1+19-25 -30"},                     // 2048
	{17960, 0, "+11-24 -29 +4-22 +9-14-26+29 -18 +6-9-21+26 -13 +3-5-17+22 -10+26 -3 -8+19 -2+22-26"},         // 2049
	{18315, 0, ". -1+14-25 -29 +8-22 -25 +5-18 -20 +1-13 -17+26 -11+30 -4 -9+22"},                             // 2050
}
