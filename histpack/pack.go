// Package histpack packs and unpacks histogram bin counts for
// GenHistDat, matching the binary format mud_gen.c's
// MUD_SEC_GEN_HIST_dopack/pack/unpack produce and consume. Two wire
// shapes are supported: fixed-width (every bin stored in the same 1, 2,
// or 4 byte field) and variable-width (a sequence of runs, each run a
// {uint16 length, uint8 width} header followed by length bins of that
// width, width 0 meaning "length zero bins").
package histpack

import (
	"bytes"
	"io"

	"github.com/dfujim/gomud/mudio"
	"golang.org/x/xerrors"
)

// maxRunLen is the largest run length a uint16 run header can hold.
const maxRunLen = 0xFFFF

// runHeaderSize is the on-wire size of one variable-width run header:
// a uint16 length plus a uint8 width.
const runHeaderSize = 3

// nBytesNeeded returns the narrowest fixed width (0, 1, 2, or 4 bytes)
// that can hold val, matching mud_gen.c's n_bytes_needed.
func nBytesNeeded(val uint32) int {
	switch {
	case val&0xFFFF0000 != 0:
		return 4
	case val&0xFF00 != 0:
		return 2
	case val&0xFF != 0:
		return 1
	default:
		return 0
	}
}

// DecodeFixed reads n bins, each binSize bytes wide (1, 2, or 4), from
// data. Grounded on mud_gen.c's MUD_SEC_GEN_HIST_unpack fixed-width
// path.
func DecodeFixed(data []byte, binSize, n int) ([]uint32, error) {
	if binSize != 1 && binSize != 2 && binSize != 4 {
		return nil, xerrors.Errorf("histpack: unsupported fixed bin size %d", binSize)
	}
	if len(data) < n*binSize {
		return nil, xerrors.Errorf("histpack: %w: need %d bytes, have %d", mudio.ErrTruncated, n*binSize, len(data))
	}
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = readFixed(data[i*binSize:], binSize)
	}
	return out, nil
}

// ErrPackOverflow is returned when a value doesn't fit the fixed bin
// width requested for it. mud_gen.c's C encoder instead narrows the
// value with a bcopy of its low bytes, silently discarding the rest;
// a bin count silently losing precision is a worse failure mode than a
// returned error, so this is a deliberate deviation rather than a port
// of that truncation.
var ErrPackOverflow = xerrors.New("histpack: value overflows requested bin width")

// EncodeFixed writes values, each as a binSize-byte (1, 2, or 4) field.
// Grounded on mud_gen.c's MUD_SEC_GEN_HIST_pack fixed-width path.
func EncodeFixed(values []uint32, binSize int) ([]byte, error) {
	if binSize != 1 && binSize != 2 && binSize != 4 {
		return nil, xerrors.Errorf("histpack: unsupported fixed bin size %d", binSize)
	}
	out := make([]byte, len(values)*binSize)
	for i, v := range values {
		if nBytesNeeded(v) > binSize {
			return nil, xerrors.Errorf("histpack: bin %d value %d: %w", i, v, ErrPackOverflow)
		}
		writeFixed(out[i*binSize:], v, binSize)
	}
	return out, nil
}

func readFixed(b []byte, binSize int) uint32 {
	switch binSize {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(b[0])<<8 | uint32(b[1])
	default:
		return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	}
}

func writeFixed(b []byte, v uint32, binSize int) {
	switch binSize {
	case 1:
		b[0] = byte(v)
	case 2:
		b[0] = byte(v >> 8)
		b[1] = byte(v)
	default:
		b[0] = byte(v >> 24)
		b[1] = byte(v >> 16)
		b[2] = byte(v >> 8)
		b[3] = byte(v)
	}
}

// DecodeVariable reads n bins packed as a sequence of runs, each a
// {length uint16, width uint8} header followed by length bins of width
// bytes (width 0 meaning the run's bins are all zero and contribute no
// payload bytes). Grounded on mud_gen.c's MUD_SEC_GEN_HIST_unpack
// variable-width path.
func DecodeVariable(data []byte, n int) ([]uint32, error) {
	out := make([]uint32, 0, n)
	r := bytes.NewReader(data)
	for len(out) < n {
		length, err := mudio.ReadU16(r)
		if err != nil {
			return out, xerrors.Errorf("histpack: reading run header: %w", err)
		}
		widthByte := make([]byte, 1)
		if _, err := io.ReadFull(r, widthByte); err != nil {
			return out, xerrors.Errorf("histpack: reading run width: %w", err)
		}
		width := int(widthByte[0])
		for i := 0; i < int(length); i++ {
			if width == 0 {
				out = append(out, 0)
				continue
			}
			buf := make([]byte, width)
			if _, err := io.ReadFull(r, buf); err != nil {
				return out, xerrors.Errorf("histpack: reading run payload: %w", err)
			}
			out = append(out, readFixed(buf, width))
		}
	}
	return out, nil
}

// EncodeVariable packs values into the fewest run-header bytes it can,
// switching bin width only when the savings from a narrower width
// outweigh a new run header's 3-byte cost. Grounded on mud_gen.c's
// MUD_SEC_GEN_HIST_pack variable-width path and its next_few_bins
// run-boundary heuristic.
func EncodeVariable(values []uint32) ([]byte, error) {
	var buf bytes.Buffer
	if len(values) == 0 {
		return buf.Bytes(), nil
	}
	i := 0
	width := nBytesNeeded(values[0])
	for i < len(values) {
		length, next := nextRun(values[i:], width)
		if err := writeRun(&buf, values[i:i+length], width); err != nil {
			return nil, err
		}
		i += length
		width = next
	}
	return buf.Bytes(), nil
}

func writeRun(buf *bytes.Buffer, values []uint32, width int) error {
	if err := mudio.WriteU16(buf, uint16(len(values))); err != nil {
		return err
	}
	buf.WriteByte(byte(width))
	if width == 0 {
		return nil
	}
	field := make([]byte, width)
	for _, v := range values {
		writeFixed(field, v, width)
		buf.Write(field)
	}
	return nil
}

// Pack encodes values as a GenHistDat payload. outBinSize selects the
// wire shape: 1, 2, or 4 for a fixed-width encoding, or 0 for the
// variable-width run encoding. Grounded on mud_gen.c's
// MUD_SEC_GEN_HIST_dopack.
func Pack(values []uint32, outBinSize int) ([]byte, error) {
	if outBinSize == 0 {
		return EncodeVariable(values)
	}
	return EncodeFixed(values, outBinSize)
}

// Unpack decodes a GenHistDat payload into n bin counts. inBinSize
// selects the wire shape the same way Pack's outBinSize does: 1, 2, or
// 4 for fixed-width, 0 for variable-width runs. Grounded on
// mud_gen.c's MUD_SEC_GEN_HIST_dopack.
func Unpack(data []byte, inBinSize, n int) ([]uint32, error) {
	if inBinSize == 0 {
		return DecodeVariable(data, n)
	}
	return DecodeFixed(data, inBinSize, n)
}

// nextRun decides how many of values (a slice already positioned at the
// run's first bin) belong to a run of width widthNow, and the width the
// following run should start at. It extends the run for as long as
// every bin still fits widthNow, but once a bin needs less, it tracks
// the cost of two alternatives in parallel: bytesNow, continuing the
// wide run across the narrower bins, versus bytesLower, cutting back to
// a fresh run (or runs — the required width can itself change more than
// once within that narrower tail, each change paying its own 3-byte
// header) starting from the first narrower bin. The run is cut back to
// that point as soon as bytesLower pulls ahead. A bin that needs *more*
// than widthNow always ends the run outright, since a run's width is
// fixed for its whole length. Exact port of mud_gen.c's next_few_bins,
// including its header-per-width-change accounting for the tail (a
// naive single-header amortization over the whole tail diverges from
// the reference encoder's byte output on inputs where the needed width
// changes more than once before a cut pays off).
func nextRun(values []uint32, widthNow int) (length, widthNext int) {
	widthNextLowerFirst := widthNow
	widthNextLower := widthNow
	widthNext = widthNow
	bytesNextLower := 0
	bytesNextLowerDoNow := 0
	numNext := 0
	numNextLower := 0

	for numNext < len(values) {
		// A 16-bit run-length field cannot grow past maxRunLen.
		if numNext == maxRunLen {
			break
		}

		need := nBytesNeeded(values[numNext])

		switch {
		case need == widthNow:
			widthNext = need
			numNext++
			if numNextLower != 0 {
				numNextLower = 0
				widthNextLowerFirst = widthNow
				widthNextLower = widthNow
				bytesNextLower = 0
				bytesNextLowerDoNow = 0
			}

		case need < widthNow:
			widthNext = need
			if widthNextLowerFirst == widthNow {
				widthNextLowerFirst = need
			}
			if widthNextLower != need {
				bytesNextLower += runHeaderSize + need
				widthNextLower = need
			} else {
				bytesNextLower += need
			}
			bytesNextLowerDoNow += widthNow

			if bytesNextLowerDoNow < bytesNextLower+runHeaderSize {
				numNext++
				numNextLower++
			} else {
				return numNext - numNextLower, widthNextLowerFirst
			}

		default: // need > widthNow: the run ends before this bin.
			widthNext = need
			return numNext, widthNext
		}
	}
	return numNext, widthNext
}
