package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// GenRunDesc describes a single experimental run in GEN format. Grounded on
// mud.h's MUD_SEC_GEN_RUN_DESC and mud_gen.c's MUD_SEC_GEN_RUN_DESC_proc.
type GenRunDesc struct {
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
	Temperature  string
	Field        string
}

func (g *GenRunDesc) Core() *CoreHeader { return &g.CoreHeader }

func (g *GenRunDesc) BodySize() uint32 {
	return 3*4 + 2*4 +
		mudio.SizeStr(g.Title) + mudio.SizeStr(g.Lab) + mudio.SizeStr(g.Area) +
		mudio.SizeStr(g.Method) + mudio.SizeStr(g.Apparatus) + mudio.SizeStr(g.Insert) +
		mudio.SizeStr(g.Sample) + mudio.SizeStr(g.Orient) + mudio.SizeStr(g.Das) +
		mudio.SizeStr(g.Experimenter) + mudio.SizeStr(g.Temperature) + mudio.SizeStr(g.Field)
}

func (g *GenRunDesc) EncodeBody(w io.Writer) error {
	for _, v := range []uint32{g.ExptNumber, g.RunNumber, g.TimeBegin, g.TimeEnd, g.ElapsedSec} {
		if err := mudio.WriteU32(w, v); err != nil {
			return err
		}
	}
	for _, s := range []string{
		g.Title, g.Lab, g.Area, g.Method, g.Apparatus, g.Insert,
		g.Sample, g.Orient, g.Das, g.Experimenter, g.Temperature, g.Field,
	} {
		if err := mudio.WriteStr(w, s); err != nil {
			return err
		}
	}
	return nil
}

func (g *GenRunDesc) DecodeBody(r io.Reader) error {
	fields := []*uint32{&g.ExptNumber, &g.RunNumber, &g.TimeBegin, &g.TimeEnd, &g.ElapsedSec}
	for _, f := range fields {
		v, err := mudio.ReadU32(r)
		if err != nil {
			return err
		}
		*f = v
	}
	strs := []*string{
		&g.Title, &g.Lab, &g.Area, &g.Method, &g.Apparatus, &g.Insert,
		&g.Sample, &g.Orient, &g.Das, &g.Experimenter, &g.Temperature, &g.Field,
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
