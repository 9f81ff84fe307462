package lunisolar

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCorrections_Defaults(t *testing.T) {
	terms, err := DecodeCorrections(defaultSolarTermCorrections)
	require.NoError(t, err)
	assert.Equal(t, 7544, terms.Len())
	assert.Len(t, terms.Entries(), 19)

	moons, err := DecodeCorrections(defaultNewMoonCorrections)
	require.NoError(t, err)
	assert.Equal(t, 16586, moons.Len())
	assert.Len(t, moons.Entries(), 292)
}

func TestDecodeCorrections_AllZero(t *testing.T) {
	table, err := DecodeCorrections(strings.Repeat("A", 125) + "CH")
	require.NoError(t, err)
	assert.Equal(t, 7544, table.Len())
	assert.Empty(t, table.Entries())
}

func TestDecodeCorrections_Symbols(t *testing.T) {
	table, err := DecodeCorrections("k2l")
	require.NoError(t, err)
	assert.Equal(t, 13, table.Len())

	want := []CorrectionEntry{{1, 1}, {2, -1}, {12, -1}}
	if diff := cmp.Diff(want, table.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, table.Offset(0))
	assert.Equal(t, 1, table.Offset(1))
	assert.Equal(t, 0, table.Offset(-1))
	assert.Equal(t, 0, table.Offset(13))
}

func TestDecodeCorrections_Idempotent(t *testing.T) {
	encoded := strings.Repeat("A", 3) + "k0lEj1h"
	a, err := DecodeCorrections(encoded)
	require.NoError(t, err)
	b, err := DecodeCorrections(encoded)
	require.NoError(t, err)
	if diff := cmp.Diff(a.Dense(), b.Dense()); diff != "" {
		t.Errorf("decoding is not deterministic:\n%s", diff)
	}
}

func TestDecodeCorrections_Corrupt(t *testing.T) {
	_, err := DecodeCorrections("AAZ")
	assert.True(t, errors.Is(err, ErrCorrupt))
	assert.Contains(t, err.Error(), "at 2")
}

func TestNilCorrectionTable(t *testing.T) {
	var table *CorrectionTable
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 0, table.Offset(5))
	assert.Nil(t, table.Entries())
	assert.Empty(t, table.Dense())
}

func TestEncodeCorrections_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	offsets := make([]int, 5000)
	for i := range offsets {
		// Mostly zeros, like the real tables.
		switch r := rng.Intn(40); {
		case r == 0:
			offsets[i] = 1
		case r == 1:
			offsets[i] = -1
		}
	}

	encoded, err := EncodeCorrections(offsets)
	require.NoError(t, err)
	assert.Less(t, len(encoded), len(offsets)/2)

	table, err := DecodeCorrections(encoded)
	require.NoError(t, err)
	if diff := cmp.Diff(offsets, table.Dense()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeCorrections_Defaults(t *testing.T) {
	for _, literal := range []string{defaultSolarTermCorrections, defaultNewMoonCorrections} {
		table, err := DecodeCorrections(literal)
		require.NoError(t, err)
		encoded, err := EncodeCorrections(table.Dense())
		require.NoError(t, err)

		again, err := DecodeCorrections(encoded)
		require.NoError(t, err)
		if diff := cmp.Diff(table.Dense(), again.Dense()); diff != "" {
			t.Errorf("re-encoded table differs (-want +got):\n%s", diff)
		}
		// The shipped literals are the encoder's own output.
		assert.Equal(t, literal, encoded)
	}
}

func TestEncodeCorrections_BadOffset(t *testing.T) {
	_, err := EncodeCorrections([]int{0, 2})
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestCorrections_BinaryRoundTrip(t *testing.T) {
	table, err := DecodeCorrections("AAk2lEj")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCorrections(&buf, table))
	assert.Equal(t, []byte("LSCT"), buf.Bytes()[:4])
	assert.Equal(t, 12+5*len(table.Entries()), buf.Len())

	got, err := ReadCorrections(&buf)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), got.Len())
	if diff := cmp.Diff(table.Dense(), got.Dense()); diff != "" {
		t.Errorf("binary round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCorrections_Text(t *testing.T) {
	got, err := ReadCorrections(strings.NewReader("AAA\n  Ak\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 242, got.Len())
	assert.Equal(t, []CorrectionEntry{{241, 1}}, got.Entries())

	empty, err := ReadCorrections(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestReadCorrections_CorruptBinary(t *testing.T) {
	header := func(size, count uint32) []byte {
		var b bytes.Buffer
		b.WriteString("LSCT")
		b.Write([]byte{byte(size), byte(size >> 8), byte(size >> 16), byte(size >> 24)})
		b.Write([]byte{byte(count), byte(count >> 8), byte(count >> 16), byte(count >> 24)})
		return b.Bytes()
	}
	tests := []struct {
		name    string
		data    []byte
		corrupt bool
	}{
		{"truncated header", []byte("LSCT\x01\x00"), false},
		{"count exceeds size", header(2, 3), true},
		{"oversized", header(1<<25, 0), true},
		{"bucket out of range", append(header(4, 1), 4, 0, 0, 0, 1), true},
		{"bad offset", append(header(4, 1), 1, 0, 0, 0, 3), true},
		{"missing entry", header(4, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCorrections(bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.corrupt, errors.Is(err, ErrCorrupt), "got %v", err)
		})
	}
}

func TestNew_CorrectionOptions(t *testing.T) {
	custom, err := DecodeCorrections("Ak")
	require.NoError(t, err)

	eng, err := New(WithCorrectionTables(custom, nil))
	require.NoError(t, err)
	assert.Same(t, custom, eng.SolarTermCorrections())
	assert.Equal(t, 16586, eng.NewMoonCorrections().Len())

	eng, err = New(WithNewMoonCorrections("k"))
	require.NoError(t, err)
	assert.Equal(t, 2, eng.NewMoonCorrections().Len())

	_, err = New(WithSolarTermCorrections("!"))
	assert.ErrorIs(t, err, ErrInitialization)
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = New(WithCorrectionFiles(strings.NewReader("?"), nil))
	assert.ErrorIs(t, err, ErrInitialization)
}
