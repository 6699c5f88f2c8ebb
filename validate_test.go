package bindocsis

import "testing"

func TestValidateCompleteConfig(t *testing.T) {
	tlvs := []TLV{
		Leaf(1, VT(TagFrequency), []byte{0x23, 0x39, 0xF1, 0xC0}),
		Leaf(2, VT(TagUint8), []byte{1}),
		Leaf(3, VT(TagBoolean), []byte{1}),
	}
	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version31})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if report.Status != StatusValid {
		t.Fatalf("Status = %v, want valid; errors=%+v warnings=%+v", report.Status, report.Errors, report.Warnings)
	}
	if report.Summary.ConfigCompleteness != 1.0 {
		t.Fatalf("ConfigCompleteness = %v, want 1.0", report.Summary.ConfigCompleteness)
	}
}

func TestValidateIncompleteConfig(t *testing.T) {
	tlvs := []TLV{Leaf(1, VT(TagFrequency), []byte{0x23, 0x39, 0xF1, 0xC0})}
	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version31})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if report.Status != StatusWarning {
		t.Fatalf("Status = %v, want warning", report.Status)
	}
	if report.Summary.ConfigCompleteness != 1.0/3.0 {
		t.Fatalf("ConfigCompleteness = %v, want 1/3", report.Summary.ConfigCompleteness)
	}
	found := false
	for _, w := range report.Warnings {
		if w.Type == "incomplete_config" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected incomplete_config warning, got %+v", report.Warnings)
	}
}

func TestValidateUnknownTLVType(t *testing.T) {
	tlvs := []TLV{Leaf(250, VT(TagUnknown), []byte{1, 2, 3})}
	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version31})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	found := false
	for _, w := range report.Warnings {
		if w.Type == "unknown_tlv_type" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unknown_tlv_type warning, got %+v", report.Warnings)
	}
}

func TestValidateExceedsMaxLength(t *testing.T) {
	tlvs := []TLV{Leaf(18, VT(TagUint8), []byte{1, 2, 3, 4})}
	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version31})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if report.Status != StatusInvalid {
		t.Fatalf("Status = %v, want invalid", report.Status)
	}
	found := false
	for _, e := range report.Errors {
		if e.Type == "exceeds_max_length" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected exceeds_max_length error, got %+v", report.Errors)
	}
}

func TestValidateVersionIncompatible(t *testing.T) {
	// TLV 85 (CM IPv6 Address) is introduced at 3.1; at 1.0 the top-level
	// admissible range is [1,30], so 85 is out of range.
	tlvs := []TLV{Leaf(85, VT(TagIPv6), make([]byte, 16))}
	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version10})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	found := false
	for _, e := range report.Errors {
		if e.Type == "version_incompatible" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected version_incompatible error, got %+v", report.Errors)
	}
}

func TestValidateMissingDependency(t *testing.T) {
	tlvs := []TLV{
		Compound(24, []TLV{
			Leaf(1, VT(TagServiceFlowRef), []byte{1}),
			Leaf(2, VT(TagUint8), []byte{1}),
		}),
	}
	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version31})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	errByDep := map[int]bool{}
	for _, e := range report.Errors {
		if e.Type == "missing_dependency" {
			errByDep[e.TLVType] = true
		}
	}
	if !errByDep[24] {
		t.Fatalf("expected missing_dependency for type 24, got %+v", report.Errors)
	}
}

func TestValidateInvalidValueFormat(t *testing.T) {
	// ipv4 requires exactly 4 bytes.
	tlvs := []TLV{Leaf(12, VT(TagIPv4), []byte{1, 2, 3})}
	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version31})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	found := false
	for _, e := range report.Errors {
		if e.Type == "invalid_value_format" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected invalid_value_format error, got %+v", report.Errors)
	}
}

func TestValidateLengthMismatchStrictIsError(t *testing.T) {
	tlvs := []TLV{{Type: 2, Length: 4, Value: []byte{1}}}
	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version31, Strict: true})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if report.Status != StatusInvalid {
		t.Fatalf("Status = %v, want invalid", report.Status)
	}
	found := false
	for _, e := range report.Errors {
		if e.Type == "invalid_structure" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected invalid_structure error in strict mode, got %+v", report.Errors)
	}
}

func TestValidateLengthMismatchNonStrictIsWarning(t *testing.T) {
	tlvs := []TLV{{Type: 2, Length: 4, Value: []byte{1}}}
	report, err := Validate(tlvs, ValidateOptions{Registry: DefaultRegistry(), Version: Version31, Strict: false})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, e := range report.Errors {
		if e.Type == "invalid_structure" {
			t.Fatalf("non-strict mode must not escalate a length mismatch to an error, got %+v", report.Errors)
		}
	}
	found := false
	for _, w := range report.Warnings {
		if w.Type == "invalid_structure" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected invalid_structure warning in non-strict mode, got %+v", report.Warnings)
	}
}

func TestValidateDeterminism(t *testing.T) {
	tlvs := []TLV{
		Leaf(1, VT(TagFrequency), []byte{0x23, 0x39, 0xF1, 0xC0}),
		Leaf(250, VT(TagUnknown), []byte{9}),
	}
	opts := ValidateOptions{Registry: DefaultRegistry(), Version: Version31}
	r1, _ := Validate(tlvs, opts)
	r2, _ := Validate(tlvs, opts)
	if r1.Status != r2.Status || len(r1.Warnings) != len(r2.Warnings) || len(r1.Errors) != len(r2.Errors) {
		t.Fatalf("Validate is not deterministic: %+v vs %+v", r1, r2)
	}
}
