package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// GenScaler is a named pair of scaler counts (e.g. a beam monitor and a
// gate count). Grounded on mud.h's MUD_SEC_GEN_SCALER and mud_gen.c's
// MUD_SEC_GEN_SCALER_proc.
type GenScaler struct {
	CoreHeader
	Counts [2]uint32
	Label  string
}

func (s *GenScaler) Core() *CoreHeader { return &s.CoreHeader }

func (s *GenScaler) BodySize() uint32 {
	return 2*4 + mudio.SizeStr(s.Label)
}

func (s *GenScaler) EncodeBody(w io.Writer) error {
	if err := mudio.WriteU32(w, s.Counts[0]); err != nil {
		return err
	}
	if err := mudio.WriteU32(w, s.Counts[1]); err != nil {
		return err
	}
	return mudio.WriteStr(w, s.Label)
}

func (s *GenScaler) DecodeBody(r io.Reader) error {
	var err error
	if s.Counts[0], err = mudio.ReadU32(r); err != nil {
		return err
	}
	if s.Counts[1], err = mudio.ReadU32(r); err != nil {
		return err
	}
	s.Label, err = mudio.ReadStr(r)
	return err
}
