// Package tree builds and walks in-memory MUD section trees: ordinary
// sections form a flat list, and Group sections additionally own an
// ordered list of Members plus an Index locating each member's offset
// within the group. Grounded on mud.c's MUD_addToGroup/MUD_setSizes/
// MUD_totSize/MUD_search.
package tree

import (
	"github.com/dfujim/gomud/mudsec"
	"golang.org/x/xerrors"
)

// AddToGroup appends child to parent's member list, recording its offset
// (relative to the end of parent's own header+index) in parent's Index
// and growing parent.MemSize by child's total on-wire size. If child is
// itself a Group, its Parent is set to parent. Grounded on mud.c's
// MUD_addToGroup.
func AddToGroup(parent *mudsec.Group, child mudsec.Section) {
	size := totalSize(child)

	parent.Index = append(parent.Index, mudsec.IndexEntry{
		Offset:     parent.MemSize,
		SecID:      child.Core().SecID,
		InstanceID: child.Core().InstanceID,
	})
	parent.Members = append(parent.Members, child)
	parent.Num++
	parent.MemSize += size

	if grp, ok := child.(*mudsec.Group); ok {
		grp.Parent = parent
	}
}

// totalSize returns a section's full on-wire footprint: its own
// core+body, plus, for a group, the accumulated size of its members.
func totalSize(sec mudsec.Section) uint32 {
	if grp, ok := sec.(*mudsec.Group); ok {
		return grp.TotalSize()
	}
	return mudsec.Size(sec)
}

// SetSizes recomputes root's own Size, and for a Group recursively fixes
// up MemSize, every member's Size, and the Index's Offset/SecID/
// InstanceID entries so they agree with the current member list. Call
// this before encoding a tree that was assembled or mutated in memory.
// Grounded on mud.c's MUD_setSizes.
func SetSizes(root mudsec.Section) {
	if grp, ok := root.(*mudsec.Group); ok {
		grp.Index = grp.Index[:0]
		grp.MemSize = 0
		for _, m := range grp.Members {
			SetSizes(m)
			grp.Index = append(grp.Index, mudsec.IndexEntry{
				Offset:     grp.MemSize,
				SecID:      m.Core().SecID,
				InstanceID: m.Core().InstanceID,
			})
			grp.MemSize += totalSize(m)
		}
		grp.Num = uint32(len(grp.Members))
	}
	root.Core().Size = mudsec.Size(root)
}

// TotalSize returns the on-wire footprint of root, including, for a
// group, every member transitively. Grounded on mud.c's MUD_totSize.
func TotalSize(root mudsec.Section) uint32 {
	return totalSize(root)
}

// IndexKey identifies one step of a Search path: a secID and the
// instanceID distinguishing same-secID siblings (0 selects the first
// match).
type IndexKey struct {
	SecID      uint32
	InstanceID uint32
}

// ErrNotFound is returned by Search when no member matches the
// requested path.
var ErrNotFound = xerrors.New("tree: section not found")

// Search walks path from root, descending into Group members at each
// step, and returns the section found at the end of the path. Where
// mud.c's MUD_search took a varargs (secID, instanceID) pair list
// terminated by a sentinel, Search takes an explicit slice — the
// idiomatic Go replacement for a C varargs path per spec's redesign
// note. Grounded on mud.c's MUD_search.
func Search(root mudsec.Section, path []IndexKey) (mudsec.Section, error) {
	cur := root
	for _, key := range path {
		grp, ok := cur.(*mudsec.Group)
		if !ok {
			return nil, xerrors.Errorf("tree: %w: %v is not a group", ErrNotFound, cur.Core().SecID)
		}
		next, err := findMember(grp, key)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func findMember(grp *mudsec.Group, key IndexKey) (mudsec.Section, error) {
	for _, m := range grp.Members {
		if m.Core().SecID != key.SecID {
			continue
		}
		if key.InstanceID == 0 || m.Core().InstanceID == key.InstanceID {
			return m, nil
		}
	}
	return nil, xerrors.Errorf("tree: %w: secID %#x instance %d", ErrNotFound, key.SecID, key.InstanceID)
}

// Walk calls visit for root and, recursively, for every member of every
// Group reachable from it, depth-first and in member order. Walk has no
// C analogue: mud.c's traversal was always bespoke per operation
// (MUD_free, MUD_setSizes, MUD_getSize); this is the one generic
// traversal the rest of the package builds on.
func Walk(root mudsec.Section, visit func(mudsec.Section) error) error {
	if err := visit(root); err != nil {
		return err
	}
	if grp, ok := root.(*mudsec.Group); ok {
		for _, m := range grp.Members {
			if err := Walk(m, visit); err != nil {
				return err
			}
		}
	}
	return nil
}
