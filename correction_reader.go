// ./correction_reader.go
package lunisolar

/*
Package lunisolar provides readers and writers for correction table files.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.
*/

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Correction tables are stored either as the encoded text (whitespace is
// ignored so long literals may be wrapped) or in a sparse binary form:
//
//	magic   [4]byte "LSCT"
//	size    uint32  number of buckets
//	count   uint32  number of nonzero entries
//	entries count × (bucket uint32, offset int8)
//
// All integers are little-endian.
var correctionMagic = [4]byte{'L', 'S', 'C', 'T'}

// byteOrder is the byte order of the binary table form.
var byteOrder binary.ByteOrder = binary.LittleEndian

// maxBinaryBuckets bounds the size field so a corrupt header cannot make the
// reader allocate without limit.
const maxBinaryBuckets = 1 << 24

// getNumber reads a fixed-size value from the io.Reader in the table byte order.
func getNumber(r io.Reader, data any) error {
	return binary.Read(r, byteOrder, data)
}

// getUint32 reads a uint32 value in the table byte order.
func getUint32(r io.Reader) (uint32, error) {
	var val uint32
	err := getNumber(r, &val)
	return val, err
}

// getInt8 reads an int8 value.
func getInt8(r io.Reader) (int8, error) {
	var val int8
	err := getNumber(r, &val)
	return val, err
}

// ReadCorrections loads a correction table from r. The binary form is
// recognised by its magic number; anything else is decoded as text.
//
// Parameters:
//   - r: Source of the table.
//
// Returns:
//   - *CorrectionTable: The decoded table.
//   - error: ErrCorrupt for malformed content, or the underlying read error.
func ReadCorrections(r io.Reader) (*CorrectionTable, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(correctionMagic))
	if err == nil && bytes.Equal(head, correctionMagic[:]) {
		return readBinaryCorrections(br)
	}
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("read corrections: %w", err)
	}

	raw, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("read corrections: %w", err)
	}
	encoded := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(raw))
	return DecodeCorrections(encoded)
}

// readBinaryCorrections parses the sparse binary form.
func readBinaryCorrections(r io.Reader) (*CorrectionTable, error) {
	var magic [4]byte
	if err := getNumber(r, &magic); err != nil {
		return nil, fmt.Errorf("read corrections header: %w", err)
	}
	size, err := getUint32(r)
	if err != nil {
		return nil, fmt.Errorf("read corrections size: %w", err)
	}
	count, err := getUint32(r)
	if err != nil {
		return nil, fmt.Errorf("read corrections count: %w", err)
	}
	if size > maxBinaryBuckets || count > size {
		return nil, fmt.Errorf("read corrections: %w: size %d count %d", ErrCorrupt, size, count)
	}

	t := &CorrectionTable{size: int(size), offsets: make(map[int]int8, count)}
	for i := uint32(0); i < count; i++ {
		bucket, err := getUint32(r)
		if err != nil {
			return nil, fmt.Errorf("read corrections entry %d: %w", i, err)
		}
		off, err := getInt8(r)
		if err != nil {
			return nil, fmt.Errorf("read corrections entry %d: %w", i, err)
		}
		if bucket >= size || (off != 1 && off != -1) {
			return nil, fmt.Errorf("read corrections: %w: entry %d bucket %d offset %d", ErrCorrupt, i, bucket, off)
		}
		t.offsets[int(bucket)] = off
	}
	return t, nil
}

// WriteCorrections writes t to w in the sparse binary form.
func WriteCorrections(w io.Writer, t *CorrectionTable) error {
	entries := t.Entries()
	header := struct {
		Magic [4]byte
		Size  uint32
		Count uint32
	}{correctionMagic, uint32(t.Len()), uint32(len(entries))}
	if err := binary.Write(w, byteOrder, header); err != nil {
		return fmt.Errorf("write corrections header: %w", err)
	}
	for _, e := range entries {
		rec := struct {
			Bucket uint32
			Offset int8
		}{uint32(e.Bucket), int8(e.Offset)}
		if err := binary.Write(w, byteOrder, rec); err != nil {
			return fmt.Errorf("write corrections entry %d: %w", e.Bucket, err)
		}
	}
	return nil
}
