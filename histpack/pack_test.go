package histpack_test

import (
	"bytes"
	"testing"

	"github.com/dfujim/gomud/histpack"
)

func TestFixedRoundTrip(t *testing.T) {
	cases := map[int][]uint32{
		1: {0, 1, 100, 255},
		2: {0, 1, 255, 256, 65535},
		4: {0, 1, 65535, 70000, 4294967295},
	}
	for width, values := range cases {
		data, err := histpack.Pack(values, width)
		if err != nil {
			t.Fatalf("width %d: Pack: %v", width, err)
		}
		got, err := histpack.Unpack(data, width, len(values))
		if err != nil {
			t.Fatalf("width %d: Unpack: %v", width, err)
		}
		for i, v := range values {
			if got[i] != v {
				t.Errorf("width %d: bin %d = %d, want %d", width, i, got[i], v)
			}
		}
	}
}

func TestFixedOverflowIsRejected(t *testing.T) {
	_, err := histpack.Pack([]uint32{256}, 1)
	if err == nil {
		t.Fatal("Pack: expected an overflow error, got nil")
	}
}

func TestFixedCrossWidthConversion(t *testing.T) {
	// Decode at one width, re-encode at another, as happens when a
	// reader requests a different packing than the one stored on disk.
	values := []uint32{1, 2, 3, 4, 5}
	data4, err := histpack.Pack(values, 4)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	decoded, err := histpack.Unpack(data4, 4, len(values))
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	data1, err := histpack.Pack(decoded, 1)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	redecoded, err := histpack.Unpack(data1, 1, len(values))
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	for i, v := range values {
		if redecoded[i] != v {
			t.Errorf("bin %d = %d, want %d", i, redecoded[i], v)
		}
	}
}

func TestVariableRoundTripAllZero(t *testing.T) {
	values := make([]uint32, 50)
	data, err := histpack.Pack(values, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	got, err := histpack.Unpack(data, 0, len(values))
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	for i := range values {
		if got[i] != 0 {
			t.Errorf("bin %d = %d, want 0", i, got[i])
		}
	}
}

func TestVariableRoundTripMixedWidths(t *testing.T) {
	values := []uint32{0, 0, 0, 1, 2, 3, 300, 400, 500, 70000, 80000, 1, 2, 0, 0}
	data, err := histpack.Pack(values, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	got, err := histpack.Unpack(data, 0, len(values))
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(values))
	}
	for i, v := range values {
		if got[i] != v {
			t.Errorf("bin %d = %d, want %d", i, got[i], v)
		}
	}
}

func TestVariableEncodeExactBytes(t *testing.T) {
	// Three runs: two all-zero bins at width 0, then 255 at width 1,
	// then 65535 at width 2. Round-trip equality alone can't catch a
	// packer that cuts these runs differently but still decodes back
	// to the same values, so this asserts the literal wire bytes.
	values := []uint32{0, 0, 255, 65535}
	want := []byte{
		0x00, 0x02, 0x00, // run: num=2, width=0
		0x00, 0x01, 0x01, 0xFF, // run: num=1, width=1, [0xFF]
		0x00, 0x01, 0x02, 0xFF, 0xFF, // run: num=1, width=2, [0xFF, 0xFF]
	}
	got, err := histpack.Pack(values, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Pack(%v) = % x, want % x", values, got, want)
	}
}

func TestVariableEncodeDoesNotCutRunEarly(t *testing.T) {
	// Widths needed are 2, 1, 0, 1: the required width keeps changing
	// within the tail after the first bin, but cutting to a narrower
	// run never pays off its own header cost before the run ends, so
	// the whole slice must stay one run at the original width (2).
	// A packer that amortizes the tail's header cost as a single
	// charge instead of one per width change cuts here early, and
	// still round-trips correctly while producing the wrong bytes.
	values := []uint32{0x100, 1, 0, 1}
	want := []byte{
		0x00, 0x04, 0x02, // run: num=4, width=2
		0x01, 0x00, // 0x100
		0x00, 0x01, // 1
		0x00, 0x00, // 0
		0x00, 0x01, // 1
	}
	got, err := histpack.Pack(values, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Pack(%v) = % x, want % x", values, got, want)
	}
}

func TestVariableRoundTripLargeRun(t *testing.T) {
	values := make([]uint32, 200000)
	for i := range values {
		values[i] = uint32(i % 17)
	}
	data, err := histpack.Pack(values, 0)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	got, err := histpack.Unpack(data, 0, len(values))
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	for i, v := range values {
		if got[i] != v {
			t.Fatalf("bin %d = %d, want %d", i, got[i], v)
		}
	}
}
