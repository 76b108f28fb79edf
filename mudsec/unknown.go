package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// Unknown represents a section whose secID isn't recognized by this
// package's registry: only the core header survives, matching
// mud_new.c's default case (MUD_SEC_UNKNOWN_proc) which reports a
// zero-size body. A round trip through Unknown therefore does not
// preserve the original body bytes.
type Unknown struct {
	CoreHeader
}

func (u *Unknown) Core() *CoreHeader          { return &u.CoreHeader }
func (u *Unknown) BodySize() uint32           { return 0 }
func (u *Unknown) EncodeBody(io.Writer) error { return nil }

// DecodeBody discards the section's on-wire body without retaining it.
// The core header (already populated by the time this is called) still
// carries the body's true on-wire size, so this skips exactly that many
// bytes to keep the stream positioned at the next sibling; BodySize
// reporting 0 only affects re-encoding, not how many bytes a decode
// consumes.
func (u *Unknown) DecodeBody(r io.Reader) error {
	n := int64(0)
	if u.CoreHeader.Size > CoreHeaderSize {
		n = int64(u.CoreHeader.Size - CoreHeaderSize)
	}
	_, err := io.CopyN(io.Discard, r, n)
	return mudio.WrapTruncated(err)
}
