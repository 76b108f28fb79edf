package mudio

import "testing"

func TestFloatRoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 3.14159, 1e10, -1e-10, 123456.75} {
		got := DecodeFloat(EncodeFloat(f))
		if diff := float64(got) - float64(f); diff > 1e-3 || diff < -1e-3 {
			t.Errorf("EncodeFloat/DecodeFloat(%v) = %v, want ~%v", f, got, f)
		}
	}
}

func TestFloatZero(t *testing.T) {
	if got := EncodeFloat(0); got != 0 {
		t.Errorf("EncodeFloat(0) = %#x, want 0", got)
	}
	if got := DecodeFloat(0); got != 0 {
		t.Errorf("DecodeFloat(0) = %v, want 0", got)
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	for _, d := range []float64{0, 1, -1, 3.14159265358979, 1e30, -1e-30, 123456789.125} {
		got := DecodeDouble(EncodeDouble(d))
		tol := 1e-9 * d
		if tol < 0 {
			tol = -tol
		}
		if diff := got - d; diff > tol || diff < -tol {
			t.Errorf("EncodeDouble/DecodeDouble(%v) = %v, want ~%v", d, got, d)
		}
	}
}

func TestDoubleZero(t *testing.T) {
	if got := EncodeDouble(0); got != 0 {
		t.Errorf("EncodeDouble(0) = %#x, want 0", got)
	}
	if got := DecodeDouble(0); got != 0 {
		t.Errorf("DecodeDouble(0) = %v, want 0", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	s := NewMemStream()
	want := "hello, triumf"
	if err := WriteStr(s, want); err != nil {
		t.Fatal(err)
	}
	if err := Rewind(s); err != nil {
		t.Fatal(err)
	}
	got, err := ReadStr(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("ReadStr = %q, want %q", got, want)
	}
}

func TestEmptyString(t *testing.T) {
	s := NewMemStream()
	if err := WriteStr(s, ""); err != nil {
		t.Fatal(err)
	}
	if err := Rewind(s); err != nil {
		t.Fatal(err)
	}
	got, err := ReadStr(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("ReadStr = %q, want empty", got)
	}
	if SizeStr("") != 2 {
		t.Errorf("SizeStr(\"\") = %d, want 2", SizeStr(""))
	}
}

func TestU32RoundTrip(t *testing.T) {
	s := NewMemStream()
	if err := WriteU32(s, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	if err := Rewind(s); err != nil {
		t.Fatal(err)
	}
	got, err := ReadU32(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xdeadbeef {
		t.Errorf("ReadU32 = %#x, want 0xdeadbeef", got)
	}
}
