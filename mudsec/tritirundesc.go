package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// TriTiRunDesc is TRIUMF TI format's run description: the same run
// metadata as GenRunDesc but trading Temperature/Field for a subtitle and
// three free-form comment strings. Grounded on mud.h's
// MUD_SEC_TRI_TI_RUN_DESC and mud_tri_ti.c's
// MUD_SEC_TRI_TI_RUN_DESC_proc.
type TriTiRunDesc struct {
	CoreHeader
	ExptNumber   uint32
	RunNumber    uint32
	TimeBegin    uint32
	TimeEnd      uint32
	ElapsedSec   uint32
	Title        string
	Lab          string
	Area         string
	Method       string
	Apparatus    string
	Insert       string
	Sample       string
	Orient       string
	Das          string
	Experimenter string
	Subtitle     string
	Comment1     string
	Comment2     string
	Comment3     string
}

func (t *TriTiRunDesc) Core() *CoreHeader { return &t.CoreHeader }

func (t *TriTiRunDesc) strings() []string {
	return []string{
		t.Title, t.Lab, t.Area, t.Method, t.Apparatus, t.Insert,
		t.Sample, t.Orient, t.Das, t.Experimenter,
		t.Subtitle, t.Comment1, t.Comment2, t.Comment3,
	}
}

func (t *TriTiRunDesc) BodySize() uint32 {
	size := uint32(5 * 4)
	for _, s := range t.strings() {
		size += mudio.SizeStr(s)
	}
	return size
}

func (t *TriTiRunDesc) EncodeBody(w io.Writer) error {
	for _, v := range []uint32{t.ExptNumber, t.RunNumber, t.TimeBegin, t.TimeEnd, t.ElapsedSec} {
		if err := mudio.WriteU32(w, v); err != nil {
			return err
		}
	}
	for _, s := range t.strings() {
		if err := mudio.WriteStr(w, s); err != nil {
			return err
		}
	}
	return nil
}

func (t *TriTiRunDesc) DecodeBody(r io.Reader) error {
	fields := []*uint32{&t.ExptNumber, &t.RunNumber, &t.TimeBegin, &t.TimeEnd, &t.ElapsedSec}
	for _, f := range fields {
		v, err := mudio.ReadU32(r)
		if err != nil {
			return err
		}
		*f = v
	}
	strs := []*string{
		&t.Title, &t.Lab, &t.Area, &t.Method, &t.Apparatus, &t.Insert,
		&t.Sample, &t.Orient, &t.Das, &t.Experimenter,
		&t.Subtitle, &t.Comment1, &t.Comment2, &t.Comment3,
	}
	for _, s := range strs {
		v, err := mudio.ReadStr(r)
		if err != nil {
			return err
		}
		*s = v
	}
	return nil
}
