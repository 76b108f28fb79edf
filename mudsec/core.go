package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// CoreHeaderSize is the on-wire size of a CoreHeader: three big-endian
// uint32 fields, matching MUD_CORE_proc's MUD_GET_SIZE case in mud.c.
const CoreHeaderSize = 12

// CoreHeader precedes every section on the wire: its total size (core
// header + body), its secID, and its instanceID. Grounded on mud.h's
// MUD_CORE struct, minus the pNext/sizeOf/proc fields that exist in C only
// to thread a manual linked list and a function-pointer vtable — Go's
// slices and interfaces make both unnecessary.
type CoreHeader struct {
	Size       uint32
	SecID      uint32
	InstanceID uint32
}

// Decode reads a 12-byte core header, matching MUD_CORE_proc(MUD_DECODE,...).
func (c *CoreHeader) Decode(r io.Reader) error {
	var err error
	if c.Size, err = mudio.ReadU32(r); err != nil {
		return err
	}
	if c.SecID, err = mudio.ReadU32(r); err != nil {
		return err
	}
	if c.InstanceID, err = mudio.ReadU32(r); err != nil {
		return err
	}
	return nil
}

// Encode writes the 12-byte core header, matching
// MUD_CORE_proc(MUD_ENCODE,...).
func (c *CoreHeader) Encode(w io.Writer) error {
	if err := mudio.WriteU32(w, c.Size); err != nil {
		return err
	}
	if err := mudio.WriteU32(w, c.SecID); err != nil {
		return err
	}
	return mudio.WriteU32(w, c.InstanceID)
}

// Section is the closed tagged union of MUD section variants. Every
// concrete type in this package (Fixed, Group, EOF, Comment, GenRunDesc,
// TriTiRunDesc, GenHistHdr, GenHistDat, GenScaler, GenIndVar, GenArray,
// Unknown) implements it. This replaces mud.h's MUD_CORE.proc function
// pointer (set per-instance by MUD_new) with ordinary Go method dispatch —
// per spec §9's redesign note, a closed switch/interface rather than a
// C-style vtable-per-instance.
type Section interface {
	// Core returns the section's header fields. Size is only meaningful
	// after a call to Core().Size has been refreshed by BodySize()+12.
	Core() *CoreHeader

	// BodySize returns the on-wire size of the section body, excluding the
	// 12-byte core header — MUD_xxx_proc(MUD_GET_SIZE,...).
	BodySize() uint32

	// EncodeBody writes the section body (not the core header) —
	// MUD_xxx_proc(MUD_ENCODE,...).
	EncodeBody(w io.Writer) error

	// DecodeBody reads the section body (not the core header) —
	// MUD_xxx_proc(MUD_DECODE,...).
	DecodeBody(r io.Reader) error
}

// Size returns the total on-wire size of sec: its 12-byte core header plus
// its body, matching MUD_getSize in mud.c.
func Size(sec Section) uint32 {
	return CoreHeaderSize + sec.BodySize()
}
