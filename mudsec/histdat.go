package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// GenHistDat carries a histogram's packed counts, as produced by
// histpack.Pack; NBytes is the packed payload length, not the bin count
// (that lives on the paired GenHistHdr). Grounded on mud.h's
// MUD_SEC_GEN_HIST_DAT and mud_gen.c's MUD_SEC_GEN_HIST_DAT_proc.
type GenHistDat struct {
	CoreHeader
	NBytes uint32
	Data   []byte
}

func (h *GenHistDat) Core() *CoreHeader { return &h.CoreHeader }

func (h *GenHistDat) BodySize() uint32 { return 4 + h.NBytes }

func (h *GenHistDat) EncodeBody(w io.Writer) error {
	if err := mudio.WriteU32(w, h.NBytes); err != nil {
		return err
	}
	_, err := w.Write(h.Data)
	return err
}

func (h *GenHistDat) DecodeBody(r io.Reader) error {
	var err error
	if h.NBytes, err = mudio.ReadU32(r); err != nil {
		return err
	}
	h.Data = make([]byte, h.NBytes)
	_, err = io.ReadFull(r, h.Data)
	return mudio.WrapTruncated(err)
}
