package mudfile

import (
	"io"

	"golang.org/x/xerrors"

	"github.com/dfujim/gomud/mudio"
	"github.com/dfujim/gomud/mudsec"
	"github.com/dfujim/gomud/tree"
)

// PeekCore reads the 12-byte core header at s's current position and
// seeks back, leaving the stream exactly where it found it. mud.c's
// MUD_peekCore achieved this with a single static scratch struct shared
// across calls, which made it unsafe to call from more than one
// goroutine, or even twice concurrently from the same one; this instead
// returns a fresh value per call.
func PeekCore(s mudio.Stream) (mudsec.CoreHeader, error) {
	pos, err := mudio.Tell(s)
	if err != nil {
		return mudsec.CoreHeader{}, err
	}
	var core mudsec.CoreHeader
	if err := core.Decode(s); err != nil {
		return mudsec.CoreHeader{}, err
	}
	if _, err := s.Seek(pos, io.SeekStart); err != nil {
		return mudsec.CoreHeader{}, err
	}
	return core, nil
}

// FseekFirst seeks s to the start of the top-level sibling chain,
// skipping over the Fixed section that always opens a MUD file.
// Grounded on mud.c's MUD_openRead positioning past the fixed header.
func FseekFirst(s mudio.Stream) error {
	if err := mudio.Rewind(s); err != nil {
		return err
	}
	_, err := s.Seek(int64(mudsec.CoreHeaderSize)+8, io.SeekStart)
	return err
}

// FseekNext advances s from the section at its current position to the
// next sibling at the same level, returning that sibling's core header.
// Grounded on mud.c's forward-scan fseek-by-size idiom.
func FseekNext(s mudio.Stream) (mudsec.CoreHeader, error) {
	core, err := PeekCore(s)
	if err != nil {
		return mudsec.CoreHeader{}, err
	}
	pos, err := mudio.Tell(s)
	if err != nil {
		return mudsec.CoreHeader{}, err
	}
	skip := int64(core.Size)
	if mudsec.IsGroup(core.SecID) {
		// A group's Size covers only its header and index; its members
		// (MemSize bytes, stored after Num) follow before the next sibling.
		if _, err := s.Seek(pos+mudsec.CoreHeaderSize+4, io.SeekStart); err != nil {
			return mudsec.CoreHeader{}, err
		}
		memSize, err := mudio.ReadU32(s)
		if err != nil {
			return mudsec.CoreHeader{}, err
		}
		skip += int64(memSize)
	}
	if _, err := s.Seek(pos+skip, io.SeekStart); err != nil {
		return mudsec.CoreHeader{}, err
	}
	return PeekCore(s)
}

// Fseek locates the section named by path, starting from s's current
// position, and leaves s positioned at the start of that section. It
// returns that section's core header. path's first key names the
// section already at (or to be scanned forward from) s's current
// position; each subsequent key descends one level into the Group
// found by the previous step, entering its member area by reading its
// index rather than decoding every member in between. Where mud.c's
// MUD_fseek took a varargs (secID, instanceID) pair list, Fseek takes
// an explicit slice, the same redesign tree.Search applies to
// in-memory trees. Grounded on mud.c's MUD_fseek.
func Fseek(s mudio.Stream, path []tree.IndexKey) (mudsec.CoreHeader, error) {
	if len(path) == 0 {
		return PeekCore(s)
	}

	// The top level is a flat sibling chain with no index to jump
	// through, so the first key is located by scanning forward.
	core, err := scanForward(s, path[0])
	if err != nil {
		return mudsec.CoreHeader{}, err
	}
	path = path[1:]

	for _, key := range path {
		if core.SecID != mudsec.SecGrp {
			return mudsec.CoreHeader{}, xerrors.Errorf("mudfile: %w: secID %#x is not a group", tree.ErrNotFound, core.SecID)
		}
		var grp mudsec.Group
		if err := grp.CoreHeader.Decode(s); err != nil {
			return mudsec.CoreHeader{}, err
		}
		if err := grp.DecodeBody(s); err != nil {
			return mudsec.CoreHeader{}, err
		}
		base, err := mudio.Tell(s)
		if err != nil {
			return mudsec.CoreHeader{}, err
		}
		entry, ok := findIndexEntry(grp.Index, key)
		if !ok {
			return mudsec.CoreHeader{}, xerrors.Errorf("mudfile: %w: secID %#x instance %d", tree.ErrNotFound, key.SecID, key.InstanceID)
		}
		if _, err := s.Seek(base+int64(entry.Offset), io.SeekStart); err != nil {
			return mudsec.CoreHeader{}, err
		}
		core, err = PeekCore(s)
		if err != nil {
			return mudsec.CoreHeader{}, err
		}
	}
	return core, nil
}

// scanForward walks the flat sibling chain starting at s's current
// position, advancing section by section via FseekNext, until one
// matches key or the chain's EOF sentinel is reached. The top level of
// a MUD file has no member index to jump through the way a Group does,
// so locating a section there means a forward scan. Grounded on
// spec's top-level "no parent is cached" fallback for MUD_fseek.
func scanForward(s mudio.Stream, key tree.IndexKey) (mudsec.CoreHeader, error) {
	core, err := PeekCore(s)
	if err != nil {
		return mudsec.CoreHeader{}, err
	}
	for !matchesKey(core, key) {
		if core.SecID == mudsec.SecEOF {
			return mudsec.CoreHeader{}, xerrors.Errorf("mudfile: %w: secID %#x instance %d", tree.ErrNotFound, key.SecID, key.InstanceID)
		}
		core, err = FseekNext(s)
		if err != nil {
			return mudsec.CoreHeader{}, err
		}
	}
	return core, nil
}

func matchesKey(core mudsec.CoreHeader, key tree.IndexKey) bool {
	return core.SecID == key.SecID && (key.InstanceID == 0 || core.InstanceID == key.InstanceID)
}

func findIndexEntry(index []mudsec.IndexEntry, key tree.IndexKey) (mudsec.IndexEntry, bool) {
	for _, e := range index {
		if e.SecID != key.SecID {
			continue
		}
		if key.InstanceID == 0 || e.InstanceID == key.InstanceID {
			return e, true
		}
	}
	return mudsec.IndexEntry{}, false
}
