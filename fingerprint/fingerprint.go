// Package fingerprint encodes a digest and the grid it was read from as a
// deterministic CBOR record, so a fingerprint can be stored and re-rendered
// without the original input.
package fingerprint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/forestrie/go-frash/frash"
)

const VersionV1 uint8 = 1

var (
	ErrBadVersion  = errors.New("fingerprint: record version unsupported")
	ErrBadLength   = errors.New("fingerprint: record length invalid")
	ErrBadDigest   = errors.New("fingerprint: digest does not match record length")
	ErrBadRowCount = errors.New("fingerprint: record must hold 16 rows")
	ErrBadRow      = errors.New("fingerprint: packed row has the wrong size")
	ErrBadShift    = errors.New("fingerprint: shift does not match the seed row")
)

const hexDigits = "0123456789abcdef"

// Record is the serialized form of a frash.Result.
//
// Rows holds every grid row packed MSB0 (see frash.PackRow). Each row is
// frash.WidthBits(Length) bits, which is exactly Length bytes.
type Record struct {
	Version uint8    `cbor:"1,keyasint"`
	Length  int      `cbor:"2,keyasint"`
	Shift   int      `cbor:"3,keyasint"`
	Digest  string   `cbor:"4,keyasint"`
	Rows    [][]byte `cbor:"5,keyasint"`
}

// FromResult builds a V1 record from res.
func FromResult(res frash.Result) Record {
	rows := make([][]byte, frash.Rows)
	for i, row := range res.Grid {
		rows[i] = frash.PackRow(row)
	}
	return Record{
		Version: VersionV1,
		Length:  res.Length,
		Shift:   res.Shift,
		Digest:  res.Digest,
		Rows:    rows,
	}
}

// Check validates the structural invariants of r.
func (r Record) Check() error {
	if r.Version != VersionV1 {
		return ErrBadVersion
	}
	if r.Length <= 0 || r.Length > frash.MaxWidthLength {
		return ErrBadLength
	}
	if len(r.Digest) != r.Length {
		return ErrBadDigest
	}
	if strings.Trim(r.Digest, hexDigits) != "" {
		return fmt.Errorf("%w: %q is not lowercase hex", ErrBadDigest, r.Digest)
	}
	if len(r.Rows) != frash.Rows {
		return ErrBadRowCount
	}
	want := frash.PackedRowBytes(frash.WidthBits(r.Length))
	for i, row := range r.Rows {
		if len(row) != want {
			return fmt.Errorf("%w: row %d has %d bytes, want %d", ErrBadRow, i, len(row), want)
		}
	}
	seed, err := frash.UnpackRow(r.Rows[0], frash.WidthBits(r.Length))
	if err != nil {
		return err
	}
	if shift := frash.Shift(seed); shift != r.Shift {
		return fmt.Errorf("%w: record has %d, seed has %d ones", ErrBadShift, r.Shift, shift)
	}
	return nil
}

// Grid unpacks the automaton held by r.
func (r Record) Grid() (frash.Grid, error) {
	var g frash.Grid
	if err := r.Check(); err != nil {
		return g, err
	}
	width := frash.WidthBits(r.Length)
	for i, packed := range r.Rows {
		row, err := frash.UnpackRow(packed, width)
		if err != nil {
			return frash.Grid{}, err
		}
		g[i] = row
	}
	return g, nil
}

// Codec encodes records with core deterministic CBOR, so equal records always
// produce identical bytes.
type Codec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCodec() (Codec, error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	decMode, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{encMode: encMode, decMode: decMode}, nil
}

func (c Codec) Encode(r Record) ([]byte, error) {
	if err := r.Check(); err != nil {
		return nil, err
	}
	return c.encMode.Marshal(r)
}

// Decode decodes and validates a record.
func (c Codec) Decode(data []byte) (Record, error) {
	var r Record
	if err := c.decMode.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	if err := r.Check(); err != nil {
		return Record{}, err
	}
	return r, nil
}
