package mudsec

// Lab, format, and section identifiers, composed as 0xLLFFSSSS (lab,
// format, section), grounded on mud.h's MUD_LAB_*/MUD_FMT_*/MUD_SEC_*
// constant block.
const (
	LabALL uint32 = 0x01000000
	LabTRI uint32 = 0x02000000
	LabRAL uint32 = 0x03000000
	LabPSI uint32 = 0x04000000
)

const (
	FmtALL   uint32 = LabALL | 0x00010000
	FmtGEN   uint32 = LabALL | 0x00020000
	FmtTRITD uint32 = LabTRI | 0x00010000
	FmtTRITI uint32 = LabTRI | 0x00020000
	FmtRAL   uint32 = LabRAL | 0x00010000
)

// ALL-format section IDs.
const (
	SecBase  uint32 = FmtALL | 0x00000001 // MUD_SEC_ID: the empty base section
	SecFixed uint32 = FmtALL | 0x00000002
	SecGrp   uint32 = FmtALL | 0x00000003
	SecEOF   uint32 = FmtALL | 0x00000004
	SecCmt   uint32 = FmtALL | 0x00000005
)

// GEN-format section IDs.
const (
	SecGenRunDesc uint32 = FmtGEN | 0x00000001
	SecGenHistHdr uint32 = FmtGEN | 0x00000002
	SecGenHistDat uint32 = FmtGEN | 0x00000003
	SecGenScaler  uint32 = FmtGEN | 0x00000004
	SecGenIndVar  uint32 = FmtGEN | 0x00000005
	SecGenArray   uint32 = FmtGEN | 0x00000007
)

// TRI_TI-format section IDs.
const (
	SecTriTiRunDesc uint32 = FmtTRITI | 0x00000001
	SecTriTiHist    uint32 = FmtTRITI | 0x00000002
)

// TRI_TD-format section IDs.
const SecTriTdHist uint32 = FmtTRITD | 0x00000002

// RAL-format section IDs: named in mud.h but no struct layout survives in
// original_source/ (no mud_ral.c shipped); decode to Unknown. See
// SPEC_FULL.md's SUPPLEMENTED FEATURES §4.
const (
	SecRalRunDesc uint32 = FmtRAL | 0x00000001
	SecRalHist    uint32 = FmtRAL | 0x00000002
)
