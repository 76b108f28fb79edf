package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
)

// GenIndVar is an independent variable sampled over the course of a run
// (e.g. temperature, field), summarized by its extrema, mean, standard
// deviation and skewness; indvar.Summarize computes these from a raw
// sample array. Grounded
// on mud.h's MUD_SEC_GEN_IND_VAR and mud_gen.c's
// MUD_SEC_GEN_IND_VAR_proc.
type GenIndVar struct {
	CoreHeader
	Low         float64
	High        float64
	Mean        float64
	StdDev      float64
	Skewness    float64
	Name        string
	Description string
	Units       string
}

func (v *GenIndVar) Core() *CoreHeader { return &v.CoreHeader }

func (v *GenIndVar) BodySize() uint32 {
	return 5*8 + mudio.SizeStr(v.Name) + mudio.SizeStr(v.Description) + mudio.SizeStr(v.Units)
}

func (v *GenIndVar) EncodeBody(w io.Writer) error {
	for _, f := range []float64{v.Low, v.High, v.Mean, v.StdDev, v.Skewness} {
		if err := mudio.WriteDouble(w, f); err != nil {
			return err
		}
	}
	if err := mudio.WriteStr(w, v.Name); err != nil {
		return err
	}
	if err := mudio.WriteStr(w, v.Description); err != nil {
		return err
	}
	return mudio.WriteStr(w, v.Units)
}

func (v *GenIndVar) DecodeBody(r io.Reader) error {
	fields := []*float64{&v.Low, &v.High, &v.Mean, &v.StdDev, &v.Skewness}
	for _, f := range fields {
		d, err := mudio.ReadDouble(r)
		if err != nil {
			return err
		}
		*f = d
	}
	var err error
	if v.Name, err = mudio.ReadStr(r); err != nil {
		return err
	}
	if v.Description, err = mudio.ReadStr(r); err != nil {
		return err
	}
	v.Units, err = mudio.ReadStr(r)
	return err
}
