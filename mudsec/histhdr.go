package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// GenHistHdr describes the layout of one histogram: its binning, packing
// and significant-bin range, with the companion counts carried separately
// in a GenHistDat section. Grounded on mud.h's MUD_SEC_GEN_HIST_HDR and
// mud_gen.c's MUD_SEC_GEN_HIST_HDR_proc.
type GenHistHdr struct {
	CoreHeader
	HistType    uint32
	NBytes      uint32
	NBins       uint32
	BytesPerBin uint32
	FsPerBin    uint32
	T0Ps        uint32
	T0Bin       uint32
	GoodBin1    uint32
	GoodBin2    uint32
	Bkgd1       uint32
	Bkgd2       uint32
	NEvents     uint32
	Title       string
}

func (h *GenHistHdr) Core() *CoreHeader { return &h.CoreHeader }

func (h *GenHistHdr) fields() []*uint32 {
	return []*uint32{
		&h.HistType, &h.NBytes, &h.NBins, &h.BytesPerBin, &h.FsPerBin,
		&h.T0Ps, &h.T0Bin, &h.GoodBin1, &h.GoodBin2, &h.Bkgd1, &h.Bkgd2, &h.NEvents,
	}
}

func (h *GenHistHdr) BodySize() uint32 {
	return 12*4 + mudio.SizeStr(h.Title)
}

func (h *GenHistHdr) EncodeBody(w io.Writer) error {
	for _, f := range h.fields() {
		if err := mudio.WriteU32(w, *f); err != nil {
			return err
		}
	}
	return mudio.WriteStr(w, h.Title)
}

func (h *GenHistHdr) DecodeBody(r io.Reader) error {
	for _, f := range h.fields() {
		v, err := mudio.ReadU32(r)
		if err != nil {
			return err
		}
		*f = v
	}
	var err error
	h.Title, err = mudio.ReadStr(r)
	return err
}
