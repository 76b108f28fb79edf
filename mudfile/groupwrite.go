package mudfile

import (
	"golang.org/x/xerrors"

	"github.com/dfujim/gomud/mudsec"
	"github.com/dfujim/gomud/tree"
)

// groupWriteState is the state machine a GroupWriter moves through:
// construction reserves nothing on the real stream yet (members are
// staged in memory, since a group's header needs each member's final
// encoded size before it can be written), WriteMember appends staged
// members and their index entries, and End recomputes sizes and hands
// the assembled group back; nothing is written to a stream until the
// caller encodes it (e.g. through Write).
type groupWriteState int

const (
	stateIdle groupWriteState = iota
	stateStreaming
	stateFinalised
)

// ErrStateViolation is returned when a GroupWriter method is called out
// of sequence (e.g. WriteMember after End).
var ErrStateViolation = xerrors.New("mudfile: group writer used out of sequence")

// GroupWriter streams members into a Group section without requiring
// the caller to know the member count or total size up front, mirroring
// mud.c's MUD_writeGrpStart/MUD_writeGrpMem/MUD_writeGrpEnd sequence of
// calls. Because a group's Num/MemSize/Index precede its members on the
// wire, members are staged in g.Members here; End computes the full
// header and returns the group, which is encoded later with the rest of
// the tree. This replaces
// mud.c's reserve-then-seek-back patching (appropriate for C's direct
// fwrite/fseek API) with buffering, which works for any mudio.Stream
// including ones backed only by io.Writer semantics upstream.
type GroupWriter struct {
	group *mudsec.Group
	state groupWriteState
}

// StartGroup begins streaming members into a new group with the given
// secID/instanceID. Grounded on mud.c's MUD_writeGrpStart.
func StartGroup(secID, instanceID uint32) *GroupWriter {
	return &GroupWriter{
		group: &mudsec.Group{
			CoreHeader: mudsec.CoreHeader{SecID: secID, InstanceID: instanceID},
		},
		state: stateStreaming,
	}
}

// WriteMember appends sec as the group's next member. Grounded on
// mud.c's MUD_writeGrpMem / addIndex.
func (gw *GroupWriter) WriteMember(sec mudsec.Section) error {
	if gw.state != stateStreaming {
		return xerrors.Errorf("mudfile: WriteMember: %w", ErrStateViolation)
	}
	tree.AddToGroup(gw.group, sec)
	return nil
}

// End finalises the group: sizes and index entries are recomputed
// across the full member list, and the completed *mudsec.Group is
// returned for the caller to attach to its own parent (or to a File's
// top-level Sections) and eventually encode. Grounded on mud.c's
// MUD_writeGrpEnd.
func (gw *GroupWriter) End() (*mudsec.Group, error) {
	if gw.state != stateStreaming {
		return nil, xerrors.Errorf("mudfile: End: %w", ErrStateViolation)
	}
	tree.SetSizes(gw.group)
	gw.state = stateFinalised
	return gw.group, nil
}
