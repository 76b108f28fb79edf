package mudsec

import "io"

// EOF is a zero-body sentinel section marking the end of a sibling chain,
// grounded on mud.h's MUD_SEC_EOF / mud_all.c's MUD_SEC_EOF_proc.
type EOF struct {
	CoreHeader
}

func (e *EOF) Core() *CoreHeader          { return &e.CoreHeader }
func (e *EOF) BodySize() uint32           { return 0 }
func (e *EOF) EncodeBody(io.Writer) error { return nil }
func (e *EOF) DecodeBody(io.Reader) error { return nil }
