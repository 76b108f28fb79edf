package mudio

import (
	"encoding/binary"
	"io"
)

// MUD's integers are always big-endian on the wire, the way bencode_2/4/8 in
// mud_encode.c conditionally byte-swap on a big-endian host: the wire format
// is fixed regardless of the host's native order (§9, host endianness is a
// declared Non-goal — this package is the only place that matters).

// ReadU16 decodes a big-endian uint16, advancing the stream by 2 bytes.
func ReadU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, WrapTruncated(err)
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// WriteU16 encodes v as a big-endian uint16.
func WriteU16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadU32 decodes a big-endian uint32, advancing the stream by 4 bytes.
func ReadU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, WrapTruncated(err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// WriteU32 encodes v as a big-endian uint32.
func WriteU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadU64 decodes a big-endian uint64, advancing the stream by 8 bytes.
func ReadU64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, WrapTruncated(err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// WriteU64 encodes v as a big-endian uint64.
func WriteU64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadStr decodes a MUD string: a u16 byte count followed by that many raw
// bytes (never null-terminated on the wire), grounded on mud_encode.c's
// decode_str.
func ReadStr(r io.Reader) (string, error) {
	n, err := ReadU16(r)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", WrapTruncated(err)
	}
	return string(buf), nil
}

// WriteStr encodes s as a u16 length prefix followed by its raw bytes,
// grounded on mud_encode.c's encode_str.
func WriteStr(w io.Writer, s string) error {
	if len(s) > 0xFFFF {
		s = s[:0xFFFF]
	}
	if err := WriteU16(w, uint16(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

// SizeStr returns the on-wire size of s's encoding, used by every variant's
// GetSize to mirror mud_all.c/mud_gen.c's `sizeof(MUD_STR_LEN_TYPE) + strlen`.
func SizeStr(s string) uint32 {
	n := len(s)
	if n > 0xFFFF {
		n = 0xFFFF
	}
	return 2 + uint32(n)
}
