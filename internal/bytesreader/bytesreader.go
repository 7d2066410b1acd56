// Package bytesreader provides endian-aware primitive reads over a byte
// slice plus the rational decode helpers every container and IFD parser in
// this module is built on. It holds no seek position of its own — callers
// thread the offset themselves so the same Reader can be shared by
// reentrant, possibly-recursive parsers (sub-IFDs, MakerNote bodies).
package bytesreader

import (
	"encoding/binary"
	"math"

	"github.com/mmoretti/exifcore/internal/xerrors"
)

// Reader wraps a byte slice and an endianness. It never mutates Data and
// never advances a cursor; every method takes an explicit offset.
type Reader struct {
	Data   []byte
	Endian binary.ByteOrder
}

func New(data []byte, endian binary.ByteOrder) *Reader {
	return &Reader{Data: data, Endian: endian}
}

func (r *Reader) bounds(off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= len(r.Data)
}

func (r *Reader) ReadU8(off int) (uint8, error) {
	if !r.bounds(off, 1) {
		return 0, xerrors.ErrShortRead
	}
	return r.Data[off], nil
}

func (r *Reader) ReadI16(off int) (int16, error) {
	v, err := r.ReadU16(off)
	return int16(v), err
}

func (r *Reader) ReadU16(off int) (uint16, error) {
	if !r.bounds(off, 2) {
		return 0, xerrors.ErrShortRead
	}
	return r.Endian.Uint16(r.Data[off : off+2]), nil
}

func (r *Reader) ReadI32(off int) (int32, error) {
	v, err := r.ReadU32(off)
	return int32(v), err
}

func (r *Reader) ReadU32(off int) (uint32, error) {
	if !r.bounds(off, 4) {
		return 0, xerrors.ErrShortRead
	}
	return r.Endian.Uint32(r.Data[off : off+4]), nil
}

func (r *Reader) ReadU64(off int) (uint64, error) {
	if !r.bounds(off, 8) {
		return 0, xerrors.ErrShortRead
	}
	return r.Endian.Uint64(r.Data[off : off+8]), nil
}

func (r *Reader) ReadF32(off int) (float32, error) {
	u, err := r.ReadU32(off)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

func (r *Reader) ReadF64(off int) (float64, error) {
	u, err := r.ReadU64(off)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// RationalU is an unsigned rational: both components preserved verbatim.
type RationalU struct {
	Num, Den uint32
}

// RationalS is a signed rational.
type RationalS struct {
	Num, Den int32
}

func (r *Reader) ReadRationalU(off int) (RationalU, error) {
	num, err := r.ReadU32(off)
	if err != nil {
		return RationalU{}, err
	}
	den, err := r.ReadU32(off + 4)
	if err != nil {
		return RationalU{}, err
	}
	return RationalU{Num: num, Den: den}, nil
}

func (r *Reader) ReadRationalS(off int) (RationalS, error) {
	num, err := r.ReadI32(off)
	if err != nil {
		return RationalS{}, err
	}
	den, err := r.ReadI32(off + 4)
	if err != nil {
		return RationalS{}, err
	}
	return RationalS{Num: num, Den: den}, nil
}

// Float divides the rational, matching the legacy "0 denominator -> 0"
// convenience behavior used by coordinate math (GPS); callers that need the
// reference tool's "inf"/"undef" serialization use value.Rational instead.
func (r RationalU) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

func (r RationalS) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// Bytes returns a bounds-checked slice; callers must not retain it past the
// lifetime of Data mutation (there is none in this module).
func (r *Reader) Bytes(off, n int) ([]byte, error) {
	if !r.bounds(off, n) {
		return nil, xerrors.ErrShortRead
	}
	return r.Data[off : off+n], nil
}
