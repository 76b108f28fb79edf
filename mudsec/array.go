package mudsec

import (
	"io"

	"github.com/dfujim/gomud/mudio"
	"golang.org/x/xerrors"
)

// Array element kinds, grounded on mud_gen.c's MUD_SEC_GEN_ARRAY_proc
// switch on the "type" field.
const (
	ArrayInteger = 1
	ArrayReal    = 2
	ArrayString  = 3
)

// GenArray is a generic homogeneous array, optionally timestamped per
// element. Real-typed elements are stored on the wire as VAX floats or
// doubles depending on ElemSize (4 or 8) and decoded into float64 here.
// Grounded on mud.h's MUD_SEC_GEN_ARRAY and mud_gen.c's
// MUD_SEC_GEN_ARRAY_proc.
type GenArray struct {
	CoreHeader
	Num      uint32
	ElemSize uint32
	Type     uint32
	HasTime  bool
	NBytes   uint32

	// Raw holds the element payload verbatim for ArrayInteger and
	// ArrayString (NBytes long).
	Raw []byte

	// Real holds the decoded element values for ArrayReal (Num long);
	// populated instead of Raw.
	Real []float64

	// Times holds one timestamp per element, present only if HasTime.
	Times []uint32
}

func (a *GenArray) Core() *CoreHeader { return &a.CoreHeader }

func boolU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// payloadSize returns the on-wire size of the element payload itself:
// a.NBytes for the raw-byte variants, or Num*ElemSize for ArrayReal,
// whose elements are never stored as a flat byte blob (they're encoded
// one at a time as VAX floats/doubles), so a.NBytes can't be trusted to
// describe them.
func (a *GenArray) payloadSize() uint32 {
	if a.Type == ArrayReal {
		return a.Num * a.ElemSize
	}
	return a.NBytes
}

func (a *GenArray) BodySize() uint32 {
	size := uint32(4*4) + 4 + a.payloadSize()
	if a.HasTime {
		size += a.Num * 4
	}
	return size
}

func (a *GenArray) EncodeBody(w io.Writer) error {
	for _, v := range []uint32{a.Num, a.ElemSize, a.Type} {
		if err := mudio.WriteU32(w, v); err != nil {
			return err
		}
	}
	if err := mudio.WriteU32(w, boolU32(a.HasTime)); err != nil {
		return err
	}
	if err := mudio.WriteU32(w, a.NBytes); err != nil {
		return err
	}
	switch a.Type {
	case ArrayInteger, ArrayString:
		if _, err := w.Write(a.Raw); err != nil {
			return err
		}
	case ArrayReal:
		for _, f := range a.Real {
			if a.ElemSize == 8 {
				if err := mudio.WriteDouble(w, f); err != nil {
					return err
				}
			} else {
				if err := mudio.WriteFloat(w, float32(f)); err != nil {
					return err
				}
			}
		}
	default:
		return xerrors.Errorf("mudsec: GenArray has unknown element type %d", a.Type)
	}
	if a.HasTime {
		for _, t := range a.Times {
			if err := mudio.WriteU32(w, t); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *GenArray) DecodeBody(r io.Reader) error {
	var err error
	if a.Num, err = mudio.ReadU32(r); err != nil {
		return err
	}
	if a.ElemSize, err = mudio.ReadU32(r); err != nil {
		return err
	}
	if a.Type, err = mudio.ReadU32(r); err != nil {
		return err
	}
	hasTime, err := mudio.ReadU32(r)
	if err != nil {
		return err
	}
	a.HasTime = hasTime != 0
	if a.NBytes, err = mudio.ReadU32(r); err != nil {
		return err
	}
	switch a.Type {
	case ArrayInteger, ArrayString:
		a.Raw = make([]byte, a.NBytes)
		if _, err := io.ReadFull(r, a.Raw); err != nil {
			return mudio.WrapTruncated(err)
		}
	case ArrayReal:
		a.Real = make([]float64, a.Num)
		for i := range a.Real {
			if a.ElemSize == 8 {
				d, err := mudio.ReadDouble(r)
				if err != nil {
					return err
				}
				a.Real[i] = d
			} else {
				f, err := mudio.ReadFloat(r)
				if err != nil {
					return err
				}
				a.Real[i] = float64(f)
			}
		}
	default:
		return xerrors.Errorf("mudsec: GenArray has unknown element type %d", a.Type)
	}
	if a.HasTime {
		a.Times = make([]uint32, a.Num)
		for i := range a.Times {
			t, err := mudio.ReadU32(r)
			if err != nil {
				return err
			}
			a.Times[i] = t
		}
	}
	return nil
}
