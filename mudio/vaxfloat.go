package mudio

import (
	"io"
	"math"
)

// VAX F/D floating point conversion, ported from mud_encode.c's
// bencode_float/bdecode_float/bencode_double/bdecode_double. The C source
// expresses this with host-endianness-dependent overlaid bitfield structs
// (struct ieee_single / struct vax_single); that representation is not
// portable to Go (or, really, to any compiler whose bitfield layout isn't
// assumed), so this reimplements the same sign/exponent/mantissa algebra
// with explicit shifts and masks on plain uint32/uint64 values.
//
// VAX F-float and IEEE single both use an 8-bit exponent and 23-bit
// mantissa, so only the exponent bias and a pair of sentinel values (zero,
// infinity) need translating. VAX D-float has a 55-bit mantissa against
// IEEE double's 52 bits, which is where the 3-bit shift-and-carry in the
// double path comes from: D-float simply carries 3 more bits of precision
// at the cost of a narrower (8-bit, vs. 11-bit) exponent.

const (
	vaxSngBias  = 0x81
	ieeeSngBias = 0x7f
	vaxDblBias  = 0x81
	ieeeDblBias = 0x3ff
)

// sglLimit pairs a VAX single bit pattern with its IEEE single counterpart
// for the two special cases the reference encoder short-circuits instead of
// doing the biased-exponent math: sgl_limits in mud_encode.c.
type sglLimit struct {
	vaxExp, vaxMantissa   uint32
	ieeeExp, ieeeMantissa uint32
}

var sglLimits = [2]sglLimit{
	{vaxExp: 0xff, vaxMantissa: 0x7fffff, ieeeExp: 0xff, ieeeMantissa: 0}, // Max Vax <-> +Inf
	{vaxExp: 0, vaxMantissa: 0, ieeeExp: 0, ieeeMantissa: 0},              // Min Vax <-> zero
}

type dblLimit struct {
	vaxExp, vaxMantissa   uint64
	ieeeExp, ieeeMantissa uint64
}

var dblLimits = [2]dblLimit{
	{vaxExp: 0xff, vaxMantissa: (1 << 55) - 1, ieeeExp: 0x7ff, ieeeMantissa: 0}, // Max Vax <-> +Inf
	{vaxExp: 0, vaxMantissa: 0, ieeeExp: 0, ieeeMantissa: 0},                    // Min Vax <-> zero
}

// EncodeFloat converts an IEEE-754 float32 into its VAX F-float bit pattern.
func EncodeFloat(f float32) uint32 {
	bits := math.Float32bits(f)
	sign := bits >> 31
	exp := (bits >> 23) & 0xff
	mantissa := bits & 0x7fffff

	vaxExp, vaxMantissa := exp-ieeeSngBias+vaxSngBias, mantissa
	for _, lim := range sglLimits {
		if mantissa == lim.ieeeMantissa && exp == lim.ieeeExp {
			vaxExp, vaxMantissa = lim.vaxExp, lim.vaxMantissa
			break
		}
	}
	vaxExp &= 0xff
	return sign<<31 | vaxExp<<23 | vaxMantissa
}

// DecodeFloat converts a VAX F-float bit pattern into an IEEE-754 float32.
func DecodeFloat(vax uint32) float32 {
	sign := vax >> 31
	exp := (vax >> 23) & 0xff
	mantissa := vax & 0x7fffff

	ieeeExp, ieeeMantissa := exp-vaxSngBias+ieeeSngBias, mantissa
	for _, lim := range sglLimits {
		if mantissa == lim.vaxMantissa && exp == lim.vaxExp {
			ieeeExp, ieeeMantissa = lim.ieeeExp, lim.ieeeMantissa
			break
		}
	}
	ieeeExp &= 0xff
	return math.Float32frombits(sign<<31 | ieeeExp<<23 | ieeeMantissa)
}

// EncodeDouble converts an IEEE-754 float64 into its VAX D-float bit pattern.
func EncodeDouble(d float64) uint64 {
	bits := math.Float64bits(d)
	sign := bits >> 63
	exp := (bits >> 52) & 0x7ff
	mantissa := bits & ((1 << 52) - 1)

	vaxExp, vaxMantissa := exp-ieeeDblBias+vaxDblBias, mantissa<<3
	for _, lim := range dblLimits {
		if mantissa == lim.ieeeMantissa && exp == lim.ieeeExp {
			vaxExp, vaxMantissa = lim.vaxExp, lim.vaxMantissa
			break
		}
	}
	vaxExp &= 0xff
	return sign<<63 | vaxExp<<55 | vaxMantissa&((1<<55)-1)
}

// DecodeDouble converts a VAX D-float bit pattern into an IEEE-754 float64.
func DecodeDouble(vax uint64) float64 {
	sign := vax >> 63
	exp := (vax >> 55) & 0xff
	mantissa := vax & ((1 << 55) - 1)

	ieeeExp, ieeeMantissa := exp-vaxDblBias+ieeeDblBias, mantissa>>3
	for _, lim := range dblLimits {
		if mantissa == lim.vaxMantissa && exp == lim.vaxExp {
			ieeeExp, ieeeMantissa = lim.ieeeExp, lim.ieeeMantissa
			break
		}
	}
	ieeeExp &= 0x7ff
	return math.Float64frombits(sign<<63 | ieeeExp<<52 | ieeeMantissa&((1<<52)-1))
}

// ReadFloat decodes a 4-byte VAX F-float.
func ReadFloat(r io.Reader) (float32, error) {
	bits, err := ReadU32(r)
	if err != nil {
		return 0, err
	}
	return DecodeFloat(bits), nil
}

// WriteFloat encodes f as a 4-byte VAX F-float.
func WriteFloat(w io.Writer, f float32) error {
	return WriteU32(w, EncodeFloat(f))
}

// ReadDouble decodes an 8-byte VAX D-float.
func ReadDouble(r io.Reader) (float64, error) {
	bits, err := ReadU64(r)
	if err != nil {
		return 0, err
	}
	return DecodeDouble(bits), nil
}

// WriteDouble encodes d as an 8-byte VAX D-float.
func WriteDouble(w io.Writer, d float64) error {
	return WriteU64(w, EncodeDouble(d))
}
