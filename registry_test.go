package bindocsis

import "testing"

func TestVersionAllowedTypes(t *testing.T) {
	r := DefaultRegistry()
	cases := []struct {
		v          Version
		lo, hi     int
		wantFound  bool
	}{
		{Version10, 1, 30, true},
		{Version11, 1, 42, true},
		{Version20, 1, 50, true},
		{Version30, 1, 85, true},
		{Version31, 1, 130, true},
		{Version40, 1, 255, true},
		{"9.9", 0, 0, false},
	}
	for _, c := range cases {
		lo, hi, ok := r.VersionAllowedTypes(c.v)
		if ok != c.wantFound {
			t.Fatalf("VersionAllowedTypes(%s) ok=%v, want %v", c.v, ok, c.wantFound)
		}
		if ok && (lo != c.lo || hi != c.hi) {
			t.Fatalf("VersionAllowedTypes(%s) = (%d,%d), want (%d,%d)", c.v, lo, hi, c.lo, c.hi)
		}
	}
}

func TestRequiredAndDependencyTables(t *testing.T) {
	r := DefaultRegistry()
	req := r.RequiredTLVs()
	if len(req) != 3 {
		t.Fatalf("RequiredTLVs() = %v, want 3 entries", req)
	}
	deps, ok := r.Dependencies(24)
	if !ok || len(deps) != 2 || deps[0] != 1 || deps[1] != 2 {
		t.Fatalf("Dependencies(24) = %v, %v, want [1 2] true", deps, ok)
	}
	if _, ok := r.Dependencies(1); ok {
		t.Fatalf("Dependencies(1) should have no entry")
	}
}

func TestLookupTLVAndSubTLV(t *testing.T) {
	r := DefaultRegistry()
	entry, ok := r.LookupTLV(1, Version31)
	if !ok || entry.ValueType.Tag != TagFrequency {
		t.Fatalf("LookupTLV(1, 3.1) = %+v, %v", entry, ok)
	}
	if _, ok := r.LookupTLV(200, Version31); ok {
		t.Fatalf("LookupTLV(200, 3.1) unexpectedly found")
	}
	sub, ok := r.LookupSubTLV(24, 1)
	if !ok || sub.ValueType.Tag != TagServiceFlowRef {
		t.Fatalf("LookupSubTLV(24,1) = %+v, %v", sub, ok)
	}
}

func TestVersionIntroducedGating(t *testing.T) {
	r := DefaultRegistry()
	// TLV 24 is introduced at 1.1; must not resolve at 1.0.
	if _, ok := r.LookupTLV(24, Version10); ok {
		t.Fatalf("LookupTLV(24, 1.0) should miss: introduced at 1.1")
	}
	if _, ok := r.LookupTLV(24, Version11); !ok {
		t.Fatalf("LookupTLV(24, 1.1) should hit")
	}
}

func TestRegistryMonotonicity(t *testing.T) {
	r := DefaultRegistry()
	for typ := range r.byType {
		for v := range versionOrder {
			if !r.registryMonotone(typ, v) {
				t.Fatalf("type %d is not monotone from version %s", typ, v)
			}
		}
	}
}

func TestCompoundEntries(t *testing.T) {
	r := DefaultRegistry()
	for _, typ := range []int{4, 5, 17, 24, 25, 31, 40, 43, 67} {
		entry, ok := r.LookupTLV(typ, Version40)
		if !ok {
			t.Fatalf("type %d not found at 4.0", typ)
		}
		if !entry.Compound() {
			t.Fatalf("type %d expected compound", typ)
		}
	}
}

func TestRegistryCloneIsIndependent(t *testing.T) {
	base := DefaultRegistry()
	clone := base.Clone()
	clone.Add(250, RegistryEntry{Name: "Fixture Only", ValueType: VT(TagUint8), VersionIntroduced: Version10})

	if _, ok := base.LookupTLV(250, Version31); ok {
		t.Fatalf("mutating a clone must not affect the original registry")
	}
	if _, ok := clone.LookupTLV(250, Version31); !ok {
		t.Fatalf("clone should observe its own Add")
	}
}

func TestRegistryMergeOverridesOnConflict(t *testing.T) {
	base := DefaultRegistry()
	fixture := NewRegistry()
	fixture.Add(1, RegistryEntry{Name: "Overridden", ValueType: VT(TagBinary), VersionIntroduced: Version10})
	fixture.Add(251, RegistryEntry{Name: "New Type", ValueType: VT(TagUint8), VersionIntroduced: Version10})

	merged := base.Merge(fixture)

	entry, ok := merged.LookupTLV(1, Version31)
	if !ok || entry.ValueType.Tag != TagBinary {
		t.Fatalf("Merge should let fixture's entry for type 1 win, got %+v, %v", entry, ok)
	}
	if _, ok := merged.LookupTLV(251, Version31); !ok {
		t.Fatalf("Merge should add fixture-only type 251")
	}
	if _, ok := base.LookupTLV(251, Version31); ok {
		t.Fatalf("Merge must not mutate the receiver")
	}
}

func TestLookupOUIVendor(t *testing.T) {
	name, ok := lookupOUIVendor([3]byte{0x00, 0x10, 0x95})
	if !ok || name != "Broadcom Corporation" {
		t.Fatalf("lookupOUIVendor(00:10:95) = %q, %v", name, ok)
	}
	if _, ok := lookupOUIVendor([3]byte{0xFF, 0xFF, 0xFF}); ok {
		t.Fatalf("lookupOUIVendor(FF:FF:FF) unexpectedly found")
	}
}
