package bindocsis

import (
	"bytes"
	"testing"
)

func testOpts() DecodeOptions {
	return DecodeOptions{Registry: DefaultRegistry(), Version: Version31, Dialect: DialectClassic}
}

func TestParseBinaryFrequencyScenario(t *testing.T) {
	data := []byte{0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0}
	tlvs, err := ParseBinary(data, testOpts())
	if err != nil {
		t.Fatalf("ParseBinary: %v", err)
	}
	if len(tlvs) != 1 {
		t.Fatalf("len(tlvs) = %d, want 1", len(tlvs))
	}
	top := tlvs[0]
	if top.Type != 1 || top.Length != 4 || top.ValueType.Tag != TagFrequency {
		t.Fatalf("tlvs[0] = %+v", top)
	}
	if top.FormattedValue != "591 MHz" {
		t.Fatalf("FormattedValue = %v, want 591 MHz", top.FormattedValue)
	}

	back, err := EmitBinary(tlvs, testOpts())
	if err != nil {
		t.Fatalf("EmitBinary: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Fatalf("round-trip = % X, want % X", back, data)
	}
}

func TestParseBinaryCompoundWithDependency(t *testing.T) {
	data := []byte{0x18, 0x06, 0x01, 0x01, 0x01, 0x02, 0x01, 0x02}
	tlvs, err := ParseBinary(data, testOpts())
	if err != nil {
		t.Fatalf("ParseBinary: %v", err)
	}
	if len(tlvs) != 1 || tlvs[0].Type != 24 || !tlvs[0].IsCompound() {
		t.Fatalf("tlvs = %+v", tlvs)
	}
	if len(tlvs[0].SubTLVs) != 2 {
		t.Fatalf("subtlvs = %+v", tlvs[0].SubTLVs)
	}
	if tlvs[0].SubTLVs[0].Type != 1 || tlvs[0].SubTLVs[1].Type != 2 {
		t.Fatalf("subtlv types = %d, %d", tlvs[0].SubTLVs[0].Type, tlvs[0].SubTLVs[1].Type)
	}

	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version31})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	found := false
	for _, e := range report.Errors {
		if e.Type == "missing_dependency" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing_dependency error, got %+v", report.Errors)
	}
}

func TestParseBinaryIPv4Scenario(t *testing.T) {
	data := []byte{0x15, 0x04, 0xC0, 0xA8, 0x01, 0x64}
	tlvs, err := ParseBinary(data, testOpts())
	if err != nil {
		t.Fatalf("ParseBinary: %v", err)
	}
	if tlvs[0].FormattedValue != "192.168.1.100" {
		t.Fatalf("FormattedValue = %v", tlvs[0].FormattedValue)
	}
}

func TestParseBinaryEndOfDataMarkerStopsDecoding(t *testing.T) {
	data := []byte{0x01, 0x01, 0x05, 0xFF, 0x01, 0x01, 0x07}
	tlvs, err := ParseBinary(data, testOpts())
	if err != nil {
		t.Fatalf("ParseBinary: %v", err)
	}
	if len(tlvs) != 2 {
		t.Fatalf("len(tlvs) = %d, want 2 (leaf + marker)", len(tlvs))
	}
	if tlvs[1].Type != 255 {
		t.Fatalf("tlvs[1].Type = %d, want 255", tlvs[1].Type)
	}
}

func TestParseBinaryTrailingPaddingSkipped(t *testing.T) {
	data := []byte{0x01, 0x01, 0x05, 0xFF, 0xFF, 0xFF}
	tlvs, err := ParseBinary(data, testOpts())
	if err != nil {
		t.Fatalf("ParseBinary: %v", err)
	}
	if len(tlvs) != 2 || tlvs[1].Type != 255 {
		t.Fatalf("tlvs = %+v", tlvs)
	}
}

func TestClassicLength255Boundary(t *testing.T) {
	value := make([]byte, 255)
	data := append([]byte{9, 255}, value...)
	tlvs, err := ParseBinary(data, testOpts())
	if err != nil {
		t.Fatalf("ParseBinary: %v", err)
	}
	if tlvs[0].Length != 255 {
		t.Fatalf("Length = %d, want 255", tlvs[0].Length)
	}
}

func TestClassicEncodeLength256Fails(t *testing.T) {
	value := make([]byte, 256)
	tlv := Leaf(9, VT(TagBinary), value)
	_, err := EmitBinary([]TLV{tlv}, testOpts())
	if err == nil {
		t.Fatalf("expected exceeds_max_length error")
	}
}

func TestExtendedLength256Encoding(t *testing.T) {
	opts := DecodeOptions{Registry: DefaultRegistry(), Version: Version31, Dialect: DialectExtended}
	value := make([]byte, 256)
	tlv := Leaf(9, VT(TagBinary), value)
	out, err := EmitBinary([]TLV{tlv}, opts)
	if err != nil {
		t.Fatalf("EmitBinary: %v", err)
	}
	// Minimal extended form for 256: high bit set, low 7 bits = 2
	// (two big-endian length bytes follow), then 0x01 0x00 = 256.
	want := append([]byte{9, 0x82, 0x01, 0x00}, value...)
	if !bytes.Equal(out, want) {
		t.Fatalf("out[:4] = % X, want % X", out[:4], want[:4])
	}

	decoded, err := ParseBinary(out, opts)
	if err != nil {
		t.Fatalf("ParseBinary: %v", err)
	}
	if decoded[0].Length != 256 {
		t.Fatalf("decoded length = %d, want 256", decoded[0].Length)
	}
}

func TestFiveLevelNestedCompound(t *testing.T) {
	reg := NewRegistry()
	reg.Add(200, RegistryEntry{Name: "L1", ValueType: VT(TagCompound), VersionIntroduced: Version10, MaxLength: Unlimited, SubtlvSchemaID: "l1"})
	reg.AddSubTLV(200, 1, RegistryEntry{Name: "L2", ValueType: VT(TagCompound), VersionIntroduced: Version10, MaxLength: Unlimited, SubtlvSchemaID: "l2"})
	reg.AddSubTLV(1, 1, RegistryEntry{Name: "L3", ValueType: VT(TagCompound), VersionIntroduced: Version10, MaxLength: Unlimited, SubtlvSchemaID: "l3"})
	reg.AddSubTLV(1, 2, RegistryEntry{Name: "L4", ValueType: VT(TagCompound), VersionIntroduced: Version10, MaxLength: Unlimited, SubtlvSchemaID: "l4"})
	reg.AddSubTLV(2, 1, RegistryEntry{Name: "L5", ValueType: VT(TagUint8), VersionIntroduced: Version10, MaxLength: 1})

	// 200 > 1 > 1 > 2 > 1 (uint8 leaf value 7), built bottom-up.
	level5 := []byte{1, 1, 7}
	level4 := append([]byte{2, byte(len(level5))}, level5...)
	level3 := append([]byte{1, byte(len(level4))}, level4...)
	level2 := append([]byte{1, byte(len(level3))}, level3...)
	data := append([]byte{200, byte(len(level2))}, level2...)
	opts := DecodeOptions{Registry: reg, Version: Version10, Dialect: DialectClassic}
	tlvs, err := ParseBinary(data, opts)
	if err != nil {
		t.Fatalf("ParseBinary: %v", err)
	}
	depth := 0
	node := tlvs[0]
	for node.IsCompound() {
		depth++
		if len(node.SubTLVs) == 0 {
			break
		}
		node = node.SubTLVs[0]
	}
	if depth != 4 {
		t.Fatalf("compound depth = %d, want 4 (5 levels total incl. leaf)", depth)
	}
}

func TestReservedZeroGating(t *testing.T) {
	data := []byte{0x00, 0x02, 0x01, 0x00}
	if _, err := ParseBinary(data, testOpts()); err == nil {
		t.Fatalf("expected format_error for TLV 0 without AllowReservedZero")
	}
	opts := testOpts()
	opts.AllowReservedZero = true
	tlvs, err := ParseBinary(data, opts)
	if err != nil {
		t.Fatalf("ParseBinary with AllowReservedZero: %v", err)
	}
	if len(tlvs) != 2 || tlvs[0].Type != 0 {
		t.Fatalf("tlvs = %+v", tlvs)
	}
}

func TestZeroLengthLeaf(t *testing.T) {
	data := []byte{18, 0}
	tlvs, err := ParseBinary(data, testOpts())
	if err != nil {
		t.Fatalf("ParseBinary: %v", err)
	}
	if tlvs[0].Length != 0 || len(tlvs[0].Value) != 0 {
		t.Fatalf("tlvs[0] = %+v", tlvs[0])
	}
}

func TestTruncatedValueFails(t *testing.T) {
	data := []byte{1, 4, 0x23, 0x39}
	if _, err := ParseBinary(data, testOpts()); err == nil {
		t.Fatalf("expected parse_error for truncated value")
	}
}
