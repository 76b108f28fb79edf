package mudfile_test

import (
	"testing"

	"github.com/dfujim/gomud/mudfile"
	"github.com/dfujim/gomud/mudio"
	"github.com/dfujim/gomud/mudsec"
	"github.com/dfujim/gomud/tree"
)

func buildFile(t *testing.T) *mudfile.File {
	t.Helper()
	gw := mudfile.StartGroup(mudsec.SecGrp, 1)
	if err := gw.WriteMember(&mudsec.GenHistHdr{
		CoreHeader: mudsec.CoreHeader{SecID: mudsec.SecGenHistHdr, InstanceID: 1},
		NBins:      10,
		Title:      "up",
	}); err != nil {
		t.Fatalf("WriteMember: %v", err)
	}
	if err := gw.WriteMember(&mudsec.GenHistDat{
		CoreHeader: mudsec.CoreHeader{SecID: mudsec.SecGenHistDat, InstanceID: 1},
		NBytes:     4,
		Data:       []byte{9, 9, 9, 9},
	}); err != nil {
		t.Fatalf("WriteMember: %v", err)
	}
	grp, err := gw.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}

	scaler := &mudsec.GenScaler{
		CoreHeader: mudsec.CoreHeader{SecID: mudsec.SecGenScaler, InstanceID: 1},
		Counts:     [2]uint32{1, 2},
		Label:      "beam",
	}

	return &mudfile.File{
		Fixed:    mudsec.Fixed{CoreHeader: mudsec.CoreHeader{SecID: mudsec.SecFixed}, FormatID: mudsec.FmtGEN},
		Sections: []mudsec.Section{grp, scaler},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	want := buildFile(t)
	s := mudio.NewMemStream()
	if err := mudfile.Write(s, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := mudio.Rewind(s); err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	got, err := mudfile.Read(s)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Sections) != 2 {
		t.Fatalf("len(Sections) = %d, want 2", len(got.Sections))
	}
	grp, ok := got.Sections[0].(*mudsec.Group)
	if !ok {
		t.Fatalf("Sections[0] = %T, want *mudsec.Group", got.Sections[0])
	}
	if len(grp.Members) != 2 {
		t.Fatalf("len(grp.Members) = %d, want 2", len(grp.Members))
	}
	hdr, ok := grp.Members[0].(*mudsec.GenHistHdr)
	if !ok {
		t.Fatalf("Members[0] = %T, want *mudsec.GenHistHdr", grp.Members[0])
	}
	if hdr.Title != "up" {
		t.Errorf("Title = %q, want %q", hdr.Title, "up")
	}
	scaler, ok := got.Sections[1].(*mudsec.GenScaler)
	if !ok {
		t.Fatalf("Sections[1] = %T, want *mudsec.GenScaler", got.Sections[1])
	}
	if scaler.Label != "beam" {
		t.Errorf("Label = %q, want %q", scaler.Label, "beam")
	}
}

func TestReadTruncatedReturnsPartialTree(t *testing.T) {
	want := buildFile(t)
	s := mudio.NewMemStream()
	if err := mudfile.Write(s, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	full := mudio.NewMemStream()
	if err := mudfile.Write(full, want); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Truncate by copying only part of the encoded bytes into a fresh
	// buffer: read everything back out, then re-write a short prefix.
	if err := mudio.Rewind(s); err != nil {
		t.Fatalf("Rewind: %v", err)
	}
	buf := make([]byte, 40)
	n, _ := s.Read(buf)
	short := mudio.NewMemStream()
	if _, err := short.Write(buf[:n]); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := mudio.Rewind(short); err != nil {
		t.Fatalf("Rewind: %v", err)
	}

	got, err := mudfile.Read(short)
	if err == nil {
		t.Fatal("Read: expected truncation error, got nil")
	}
	if got == nil {
		t.Fatal("Read: expected non-nil partial File even on error")
	}
}

func TestFseekNavigatesToGroupMember(t *testing.T) {
	want := buildFile(t)
	s := mudio.NewMemStream()
	if err := mudfile.Write(s, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := mudfile.FseekFirst(s); err != nil {
		t.Fatalf("FseekFirst: %v", err)
	}
	core, err := mudfile.Fseek(s, []tree.IndexKey{
		{SecID: mudsec.SecGrp, InstanceID: 1},
		{SecID: mudsec.SecGenHistDat, InstanceID: 1},
	})
	if err != nil {
		t.Fatalf("Fseek: %v", err)
	}
	if core.SecID != mudsec.SecGenHistDat {
		t.Errorf("SecID = %#x, want %#x", core.SecID, mudsec.SecGenHistDat)
	}
}

func TestFseekNextWalksSiblingChain(t *testing.T) {
	want := buildFile(t)
	s := mudio.NewMemStream()
	if err := mudfile.Write(s, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := mudfile.FseekFirst(s); err != nil {
		t.Fatalf("FseekFirst: %v", err)
	}
	first, err := mudfile.PeekCore(s)
	if err != nil {
		t.Fatalf("PeekCore: %v", err)
	}
	if first.SecID != mudsec.SecGrp {
		t.Fatalf("first SecID = %#x, want %#x", first.SecID, mudsec.SecGrp)
	}
	second, err := mudfile.FseekNext(s)
	if err != nil {
		t.Fatalf("FseekNext: %v", err)
	}
	if second.SecID != mudsec.SecGenScaler {
		t.Errorf("second SecID = %#x, want %#x", second.SecID, mudsec.SecGenScaler)
	}
}

func TestGroupWriterRejectsOutOfSequenceCalls(t *testing.T) {
	gw := mudfile.StartGroup(mudsec.SecGrp, 1)
	if _, err := gw.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if err := gw.WriteMember(&mudsec.GenScaler{}); err == nil {
		t.Fatal("WriteMember after End: expected error")
	}
	if _, err := gw.End(); err == nil {
		t.Fatal("End twice: expected error")
	}
}
