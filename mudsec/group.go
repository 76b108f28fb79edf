package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// IndexEntry is one entry in a Group's member index: the byte offset of a
// member (relative to the end of the group's own header+index) plus its
// identity, letting a reader locate a specific member without decoding every
// sibling first. Grounded on mud.h's MUD_INDEX.
type IndexEntry struct {
	Offset     uint32
	SecID      uint32
	InstanceID uint32
}

const indexEntrySize = 12

func decodeIndexEntry(r io.Reader) (IndexEntry, error) {
	var e IndexEntry
	var err error
	if e.Offset, err = mudio.ReadU32(r); err != nil {
		return e, err
	}
	if e.SecID, err = mudio.ReadU32(r); err != nil {
		return e, err
	}
	e.InstanceID, err = mudio.ReadU32(r)
	return e, err
}

func (e IndexEntry) encode(w io.Writer) error {
	if err := mudio.WriteU32(w, e.Offset); err != nil {
		return err
	}
	if err := mudio.WriteU32(w, e.SecID); err != nil {
		return err
	}
	return mudio.WriteU32(w, e.InstanceID)
}

// Group is a container section whose body is a count plus a member index;
// the actual member sections are stored out-of-band (appended to the file
// after the group header, and held here as Members in memory), exactly as
// MUD_SEC_GRP_proc's DECODE/ENCODE only ever touch the index, never the
// member sections themselves — tree/mudfile handle the recursive member
// walk. Grounded on mud.h's MUD_SEC_GRP and mud_all.c's MUD_SEC_GRP_proc.
type Group struct {
	CoreHeader
	Num     uint32
	MemSize uint32
	Index   []IndexEntry

	// Members holds the decoded/attached child sections in memory. Not
	// touched by EncodeBody/DecodeBody.
	Members []Section

	// Parent points at the enclosing group, or nil at the root. Go's
	// garbage collector handles the resulting reference cycle natively,
	// so this is a plain pointer (as in distr1-distri's
	// squashfs.Directory.parent) rather than an arena-plus-index scheme.
	Parent *Group
}

func (g *Group) Core() *CoreHeader { return &g.CoreHeader }

func (g *Group) BodySize() uint32 {
	return 8 + g.Num*indexEntrySize
}

func (g *Group) EncodeBody(w io.Writer) error {
	if err := mudio.WriteU32(w, g.Num); err != nil {
		return err
	}
	if err := mudio.WriteU32(w, g.MemSize); err != nil {
		return err
	}
	for _, e := range g.Index {
		if err := e.encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (g *Group) DecodeBody(r io.Reader) error {
	var err error
	if g.Num, err = mudio.ReadU32(r); err != nil {
		return err
	}
	if g.MemSize, err = mudio.ReadU32(r); err != nil {
		return err
	}
	g.Index = make([]IndexEntry, 0, g.Num)
	for i := uint32(0); i < g.Num; i++ {
		e, err := decodeIndexEntry(r)
		if err != nil {
			return err
		}
		g.Index = append(g.Index, e)
	}
	return nil
}

// TotalSize returns the size this group (or any section) occupies
// including, for groups, the accumulated size of its members — mud.c's
// MUD_totSize.
func (g *Group) TotalSize() uint32 {
	return Size(g) + g.MemSize
}
