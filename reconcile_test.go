package lunisolar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCorrections_Reconciled(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    []int
	}{
		{"solar terms", defaultSolarTermCorrections, ReconcileSolarTerms()},
		{"new moons", defaultNewMoonCorrections, ReconcileNewMoons()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := DecodeCorrections(tt.literal)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, table.Dense()); diff != "" {
				t.Errorf("shipped table is stale, run go generate (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalcQi_CorrectionEra(t *testing.T) {
	eng := newTestEngine(t)
	g := solarTermGrid
	n := 0
	for k := g.cell(g.start + 30); ; k++ {
		want := math.Floor(qiAccurate(k*g.angle, eng.zone) + 0.5)
		if want+J2000 >= highPrecisionFromJD {
			break
		}
		require.Equal(t, want, eng.calcQi(want), "term cell %.0f", k)
		n++
	}
	assert.Greater(t, n, 7500)
}

func TestCalcShuo_CorrectionEra(t *testing.T) {
	eng := newTestEngine(t)
	g := newMoonGrid
	n := 0
	for k := g.cell(g.start + 30); ; k++ {
		want := math.Floor(shuoAccurate(k*g.angle, eng.zone) + 0.5)
		if want+J2000 >= highPrecisionFromJD {
			break
		}
		require.Equal(t, want, eng.calcShuo(want), "lunation cell %.0f", k)
		n++
	}
	assert.Greater(t, n, 16500)
}

func TestCalcShuo_NudgedNewMoon(t *testing.T) {
	// The 1954-02-03 new moon is at 23:55 UTC+8; the closed-form tier puts
	// it just after midnight.
	d := float64(SolarDay{1954, 2, 3}.dayNumber())
	k := newMoonGrid.cell(d + J2000)
	require.Equal(t, d+1, math.Floor(shuoLow(k*TwoPi, 8.0/24)+0.5))

	eng := newTestEngine(t)
	assert.Equal(t, -1, eng.NewMoonCorrections().Offset(newMoonGrid.bucket(k)))
	assert.Equal(t, d, eng.calcShuo(d))

	// Outside UTC+8 the tables do not apply: at UTC the conjunction is at
	// 15:55 on the same civil day.
	utc := newTestEngine(t, WithZoneOffset(0))
	assert.Equal(t, d, utc.calcShuo(d))
}
