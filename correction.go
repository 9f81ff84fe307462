package lunisolar

/*
Package lunisolar provides the compressed correction-table codec.

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
	"sort"
	"strings"
)

//go:generate go run ./cmd/gencorrections correction_tables.go

// correctionAlphabet maps each symbol of the encoding to the digit run it
// stands for. Digits 0, 1 and 2 stand for themselves.
var correctionAlphabet = map[byte]string{
	'J': "00",
	'I': "000",
	'H': "0000",
	'G': "00000",
	'F': strings.Repeat("0", 10),
	'E': strings.Repeat("0", 20),
	'D': strings.Repeat("0", 30),
	'C': strings.Repeat("0", 40),
	'B': strings.Repeat("0", 50),
	'A': strings.Repeat("0", 60),

	't': "02",
	's': "002",
	'r': "0002",
	'q': "00002",
	'p': "000002",
	'o': "0000002",
	'n': "00000002",
	'm': "000000002",
	'l': "0000000002",

	'k': "01",
	'j': "0101",
	'i': "001",
	'h': "001001",
	'g': "0001",
	'f': "00001",
	'e': "000001",
	'd': "0000001",
	'c': "00000001",
	'b': "000000001",
	'a': "0000000001",

	'0': "0",
	'1': "1",
	'2': "2",
}

// encoderTokens lists the alphabet longest expansion first, for greedy encoding.
var encoderTokens = func() []byte {
	out := make([]byte, 0, len(correctionAlphabet))
	for sym := range correctionAlphabet {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := correctionAlphabet[out[i]], correctionAlphabet[out[j]]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return out[i] < out[j]
	})
	return out
}()

// CorrectionTable is a decoded table of per-bucket day offsets. It is sparse:
// only nonzero buckets are stored. A CorrectionTable is immutable once built
// and safe for concurrent use. The zero value and nil are empty tables.
type CorrectionTable struct {
	size    int
	offsets map[int]int8
}

// CorrectionEntry is one nonzero bucket of a CorrectionTable.
type CorrectionEntry struct {
	Bucket int
	Offset int
}

// DecodeCorrections decodes a correction string in a single pass.
//
// Each symbol expands to a run of digits; digit i of the expansion is the
// entry for bucket i, where 0 means no change, 1 means one day later and
// 2 means one day earlier.
//
// Parameters:
//   - encoded: The encoded table.
//
// Returns:
//   - *CorrectionTable: The decoded table.
//   - error: ErrCorrupt wrapped with the offending symbol and position.
func DecodeCorrections(encoded string) (*CorrectionTable, error) {
	t := &CorrectionTable{offsets: make(map[int]int8)}
	for i := 0; i < len(encoded); i++ {
		run, ok := correctionAlphabet[encoded[i]]
		if !ok {
			return nil, fmt.Errorf("decode corrections: %w: symbol %q at %d", ErrCorrupt, encoded[i], i)
		}
		for j := 0; j < len(run); j++ {
			switch run[j] {
			case '1':
				t.offsets[t.size] = 1
			case '2':
				t.offsets[t.size] = -1
			}
			t.size++
		}
	}
	return t, nil
}

// EncodeCorrections encodes per-bucket offsets (0, 1 or -1) into the compact
// alphabet. Decoding the result gives back the same table.
//
// Returns:
//   - string: The encoded table.
//   - error: ErrCorrupt when an offset is outside {-1, 0, 1}.
func EncodeCorrections(offsets []int) (string, error) {
	digits := make([]byte, len(offsets))
	for i, off := range offsets {
		switch off {
		case 0:
			digits[i] = '0'
		case 1:
			digits[i] = '1'
		case -1:
			digits[i] = '2'
		default:
			return "", fmt.Errorf("encode corrections: %w: offset %d at bucket %d", ErrCorrupt, off, i)
		}
	}

	var sb strings.Builder
	rest := string(digits)
	for len(rest) > 0 {
		for _, sym := range encoderTokens {
			run := correctionAlphabet[sym]
			if strings.HasPrefix(rest, run) {
				sb.WriteByte(sym)
				rest = rest[len(run):]
				break
			}
		}
	}
	return sb.String(), nil
}

// Len returns the number of buckets the table covers.
func (t *CorrectionTable) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Offset returns the day offset for a bucket: 0, +1 or -1. Buckets outside
// the table have no offset.
func (t *CorrectionTable) Offset(bucket int) int {
	if t == nil || bucket < 0 || bucket >= t.size {
		return 0
	}
	return int(t.offsets[bucket])
}

// Entries returns the nonzero buckets in ascending order.
func (t *CorrectionTable) Entries() []CorrectionEntry {
	if t == nil {
		return nil
	}
	out := make([]CorrectionEntry, 0, len(t.offsets))
	for b, off := range t.offsets {
		out = append(out, CorrectionEntry{Bucket: b, Offset: int(off)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bucket < out[j].Bucket })
	return out
}

// Dense returns the table as one offset per bucket.
func (t *CorrectionTable) Dense() []int {
	out := make([]int, t.Len())
	for _, e := range t.Entries() {
		out[e.Bucket] = e.Offset
	}
	return out
}
