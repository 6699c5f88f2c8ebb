package bindocsis

import "testing"

func TestEmitStructuredLeaf(t *testing.T) {
	tlv := Leaf(1, VT(TagFrequency), []byte{0x23, 0x39, 0xF1, 0xC0})
	out := EmitStructured([]TLV{tlv}, FormatOptions{})
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	rec := out[0]
	if rec.Type != 1 || rec.Length != 4 || rec.Value != "2339F1C0" {
		t.Fatalf("rec = %+v", rec)
	}
	if rec.FormattedValue != "591 MHz" {
		t.Fatalf("FormattedValue = %v", rec.FormattedValue)
	}
}

func TestEmitStructuredCompound(t *testing.T) {
	children := []TLV{
		Leaf(1, VT(TagServiceFlowRef), []byte{1}),
		Leaf(2, VT(TagUint8), []byte{2}),
	}
	parent := Compound(24, children)
	out := EmitStructured([]TLV{parent}, FormatOptions{})
	rec := out[0]
	if len(rec.SubTLVs) != 2 {
		t.Fatalf("SubTLVs = %+v", rec.SubTLVs)
	}
	if rec.FormattedValue != "<Compound TLV: 6 bytes>" {
		t.Fatalf("FormattedValue = %v", rec.FormattedValue)
	}
}

func TestParseStructuredRederivesLength(t *testing.T) {
	rec := StructuredTLV{Type: 1, Length: 999, Value: "2339F1C0"}
	opts := DecodeOptions{Registry: DefaultRegistry(), Version: Version31}
	tlvs, err := ParseStructured([]StructuredTLV{rec}, opts)
	if err != nil {
		t.Fatalf("ParseStructured: %v", err)
	}
	if tlvs[0].Length != 4 {
		t.Fatalf("Length = %d, want 4 (user-supplied length ignored)", tlvs[0].Length)
	}
}

func TestParseStructuredCompoundReconstructsFromChildren(t *testing.T) {
	rec := StructuredTLV{
		Type: 24,
		SubTLVs: []StructuredTLV{
			{Type: 1, Value: "01"},
			{Type: 2, Value: "02"},
		},
	}
	opts := DecodeOptions{Registry: DefaultRegistry(), Version: Version31}
	tlvs, err := ParseStructured([]StructuredTLV{rec}, opts)
	if err != nil {
		t.Fatalf("ParseStructured: %v", err)
	}
	if !tlvs[0].IsCompound() || tlvs[0].Length != 6 {
		t.Fatalf("tlvs[0] = %+v", tlvs[0])
	}
}

func TestParseStructuredBadHex(t *testing.T) {
	rec := StructuredTLV{Type: 1, Value: "ZZ"}
	opts := DecodeOptions{Registry: DefaultRegistry(), Version: Version31}
	if _, err := ParseStructured([]StructuredTLV{rec}, opts); err == nil {
		t.Fatalf("expected bad_hex_value error")
	}
}

func TestStructuredRoundTrip(t *testing.T) {
	original := []TLV{
		Leaf(1, VT(TagFrequency), []byte{0x23, 0x39, 0xF1, 0xC0}),
		Compound(24, []TLV{Leaf(1, VT(TagServiceFlowRef), []byte{1})}),
	}
	structured := EmitStructured(original, FormatOptions{})
	opts := DecodeOptions{Registry: DefaultRegistry(), Version: Version31}
	back, err := ParseStructured(structured, opts)
	if err != nil {
		t.Fatalf("ParseStructured: %v", err)
	}
	if len(back) != 2 || back[0].Type != 1 || back[1].Type != 24 {
		t.Fatalf("back = %+v", back)
	}
	if string(back[0].Value) != string(original[0].Value) {
		t.Fatalf("leaf value mismatch: %v vs %v", back[0].Value, original[0].Value)
	}
}
