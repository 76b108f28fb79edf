package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// Fixed is the first section of every MUD file, grounded on mud.h's
// MUD_SEC_FIXED and mud_all.c's MUD_SEC_FIXED_proc.
type Fixed struct {
	CoreHeader
	FileSize uint32
	FormatID uint32
}

func (f *Fixed) Core() *CoreHeader { return &f.CoreHeader }

func (f *Fixed) BodySize() uint32 { return 8 }

func (f *Fixed) EncodeBody(w io.Writer) error {
	if err := mudio.WriteU32(w, f.FileSize); err != nil {
		return err
	}
	return mudio.WriteU32(w, f.FormatID)
}

func (f *Fixed) DecodeBody(r io.Reader) error {
	var err error
	if f.FileSize, err = mudio.ReadU32(r); err != nil {
		return err
	}
	f.FormatID, err = mudio.ReadU32(r)
	return err
}
