package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// Comment is a threaded annotation section: ID identifies the comment
// itself, prevReplyID/nextReplyID chain it to siblings in the same thread.
// Grounded on mud.h's MUD_SEC_CMT and mud_all.c's MUD_SEC_CMT_proc.
type Comment struct {
	CoreHeader
	ID          uint32
	PrevReplyID uint32
	NextReplyID uint32
	Time        uint32
	Author      string
	Title       string
	Text        string
}

func (c *Comment) Core() *CoreHeader { return &c.CoreHeader }

func (c *Comment) BodySize() uint32 {
	return 3*4 + 4 +
		mudio.SizeStr(c.Author) + mudio.SizeStr(c.Title) + mudio.SizeStr(c.Text)
}

func (c *Comment) EncodeBody(w io.Writer) error {
	if err := mudio.WriteU32(w, c.ID); err != nil {
		return err
	}
	if err := mudio.WriteU32(w, c.PrevReplyID); err != nil {
		return err
	}
	if err := mudio.WriteU32(w, c.NextReplyID); err != nil {
		return err
	}
	if err := mudio.WriteU32(w, c.Time); err != nil {
		return err
	}
	if err := mudio.WriteStr(w, c.Author); err != nil {
		return err
	}
	if err := mudio.WriteStr(w, c.Title); err != nil {
		return err
	}
	return mudio.WriteStr(w, c.Text)
}

func (c *Comment) DecodeBody(r io.Reader) error {
	var err error
	if c.ID, err = mudio.ReadU32(r); err != nil {
		return err
	}
	if c.PrevReplyID, err = mudio.ReadU32(r); err != nil {
		return err
	}
	if c.NextReplyID, err = mudio.ReadU32(r); err != nil {
		return err
	}
	if c.Time, err = mudio.ReadU32(r); err != nil {
		return err
	}
	if c.Author, err = mudio.ReadStr(r); err != nil {
		return err
	}
	if c.Title, err = mudio.ReadStr(r); err != nil {
		return err
	}
	c.Text, err = mudio.ReadStr(r)
	return err
}
