// Package mudfile drives whole-file reads and writes: the Fixed header,
// the top-level sibling chain terminated by an EOF section, and, for
// Group sections, the recursive decode/encode of their members.
// Grounded on mud.c's MUD_read/MUD_readFile/MUD_write/MUD_writeFile/
// MUD_writeEnd/MUD_encode/MUD_decode/MUD_getSize.
package mudfile

import (
	"io"
	"os"

	"github.com/dfujim/gomud/mudio"
	"github.com/dfujim/gomud/mudsec"
	"github.com/dfujim/gomud/tree"
	"golang.org/x/xerrors"
)

// File is a decoded MUD file: its Fixed header plus the top-level
// sibling chain (excluding the trailing EOF sentinel, which Write
// appends automatically).
type File struct {
	Fixed    mudsec.Fixed
	Sections []mudsec.Section
}

// Read decodes a File from s, rewinding s to its start first. If the
// stream ends before a complete section is read, Read returns whatever
// sections were fully decoded along with an error wrapping
// mudio.ErrTruncated — callers that only need a best-effort partial
// tree can ignore an ErrTruncated error and use the returned File
// as-is. If the Fixed header itself cannot be read, the returned File
// is nil.
func Read(s mudio.Stream) (*File, error) {
	if err := mudio.Rewind(s); err != nil {
		return nil, err
	}

	f := &File{}
	if err := f.Fixed.CoreHeader.Decode(s); err != nil {
		return nil, xerrors.Errorf("mudfile: reading fixed core: %w", err)
	}
	if err := f.Fixed.DecodeBody(s); err != nil {
		return nil, xerrors.Errorf("mudfile: reading fixed body: %w", err)
	}

	for {
		sec, err := decodeSection(s)
		if err != nil {
			// The stream ran out before an EOF sentinel was seen: return
			// what was fully decoded so far alongside the wrapped error.
			return f, err
		}
		if sec.Core().SecID == mudsec.SecEOF {
			return f, nil
		}
		f.Sections = append(f.Sections, sec)
	}
}

// decodeSection reads one section's core header and body, recursively
// decoding a Group's members immediately afterward (they are laid out
// depth-first, directly following their parent's index).
func decodeSection(r io.Reader) (mudsec.Section, error) {
	var core mudsec.CoreHeader
	if err := core.Decode(r); err != nil {
		return nil, err
	}
	sec := mudsec.New(core.SecID)
	*sec.Core() = core
	if err := sec.DecodeBody(r); err != nil {
		return nil, xerrors.Errorf("mudfile: decoding body of secID %#x: %w", core.SecID, err)
	}
	if grp, ok := sec.(*mudsec.Group); ok {
		for i := uint32(0); i < grp.Num; i++ {
			member, err := decodeSection(r)
			if err != nil {
				return sec, err
			}
			grp.Members = append(grp.Members, member)
			if child, ok := member.(*mudsec.Group); ok {
				child.Parent = grp
			}
		}
	}
	return sec, nil
}

// Write recomputes sizes across f.Sections via tree.SetSizes, then
// encodes the Fixed header, the sibling chain, and a trailing EOF
// sentinel to s. f.Fixed.FileSize is overwritten with the true encoded
// size before the Fixed header is written. Grounded on mud.c's
// MUD_writeFile/MUD_writeEnd.
func Write(s mudio.Stream, f *File) error {
	for _, sec := range f.Sections {
		tree.SetSizes(sec)
	}

	total := mudsec.CoreHeaderSize + f.Fixed.BodySize()
	for _, sec := range f.Sections {
		total += tree.TotalSize(sec)
	}
	total += mudsec.CoreHeaderSize // trailing EOF
	f.Fixed.FileSize = total
	f.Fixed.CoreHeader.Size = mudsec.Size(&f.Fixed)

	if err := f.Fixed.CoreHeader.Encode(s); err != nil {
		return err
	}
	if err := f.Fixed.EncodeBody(s); err != nil {
		return err
	}
	for _, sec := range f.Sections {
		if err := encodeSection(s, sec); err != nil {
			return err
		}
	}
	eof := mudsec.EOF{CoreHeader: mudsec.CoreHeader{SecID: mudsec.SecEOF, Size: mudsec.CoreHeaderSize}}
	return eof.CoreHeader.Encode(s)
}

func encodeSection(w io.Writer, sec mudsec.Section) error {
	sec.Core().Size = mudsec.Size(sec)
	if err := sec.Core().Encode(w); err != nil {
		return err
	}
	if err := sec.EncodeBody(w); err != nil {
		return err
	}
	if grp, ok := sec.(*mudsec.Group); ok {
		for _, member := range grp.Members {
			if err := encodeSection(w, member); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadFile opens path and decodes a File from it, the same partial-tree
// semantics as Read apply on truncation.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Read(fh)
}

// WriteFile creates (or truncates) path and writes f to it.
func WriteFile(path string, f *File) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return Write(fh, f)
}
