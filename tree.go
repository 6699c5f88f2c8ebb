package bindocsis

/*
tree.go implements the TLV tree model and its structured serializer
(spec §4.5, component C5): the in-memory TLV type shared by every
other component, plus the JSON/YAML-shaped StructuredTLV record and
the EmitStructured/ParseStructured pair that moves between them.

TLV trees are immutable by convention (spec §3 "Lifecycle"): nothing
in this package mutates a TLV after construction.
*/

/*
TLV is the central data type of this package (spec §3): a node is
either a leaf, carrying Value and a ValueType, or compound, carrying
an ordered SubTLVs slice -- never both. Ordering of SubTLVs is
significant and preserved on every round-trip (spec §3 invariant 5).
*/
type TLV struct {
	Type           int
	Length         int
	Value          []byte
	SubTLVs        []TLV
	ValueType      ValueType
	FormattedValue any
}

// IsCompound reports whether the receiver carries children instead of
// a leaf byte value.
func (t TLV) IsCompound() bool { return t.SubTLVs != nil }

/*
Leaf constructs a leaf TLV node. FormattedValue is left unset; callers
that need it should call FormatValue explicitly or go through
ParseBinary/ParseStructured, which populate it as part of decoding.
*/
func Leaf(typ int, vt ValueType, value []byte) TLV {
	return TLV{Type: typ, Length: len(value), Value: value, ValueType: vt}
}

// Compound constructs a compound TLV node from already-built children.
func Compound(typ int, children []TLV) TLV {
	t := TLV{Type: typ, SubTLVs: children, ValueType: VT(TagCompound)}
	encoded, err := encodeChildren(children)
	if err == nil {
		t.Length = len(encoded)
	}
	return t
}

func encodeChildren(children []TLV) ([]byte, error) {
	var out []byte
	for _, c := range children {
		enc, err := encodeTLVNode(c, DecodeOptions{}.normalized(), nil)
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	return out, nil
}

/*
StructuredTLV is the canonical structured form described by spec §4.5:
leaf Value is always uppercase hex, SubTLVs (when present) recurse,
and field keys are lower-case so JSON and YAML share one key set. The
struct tags are provided for the excluded JSON/YAML emission
collaborators; this package itself never imports encoding/json or a
YAML library (spec §1 places those out of scope).
*/
type StructuredTLV struct {
	Type           int             `json:"type" yaml:"type"`
	Length         int             `json:"length" yaml:"length"`
	Value          string          `json:"value,omitempty" yaml:"value,omitempty"`
	FormattedValue any             `json:"formatted_value,omitempty" yaml:"formatted_value,omitempty"`
	ValueType      string          `json:"value_type,omitempty" yaml:"value_type,omitempty"`
	SubTLVs        []StructuredTLV `json:"subtlvs,omitempty" yaml:"subtlvs,omitempty"`
}

/*
EmitStructured converts a decoded TLV tree into its structured form.
Leaf bytes are rendered as uppercase hex regardless of how they were
produced, per spec §4.5 ("so downstream text codecs never carry raw
bytes"). Compound nodes recurse; a compound node's own FormattedValue
is the teacher-style compact summary unless fmtOpts requests verbose,
in which case it is omitted in favor of the recursive SubTLVs list.
*/
func EmitStructured(tlvs []TLV, fmtOpts FormatOptions) []StructuredTLV {
	out := make([]StructuredTLV, 0, len(tlvs))
	for _, t := range tlvs {
		out = append(out, emitStructuredNode(t, fmtOpts))
	}
	return out
}

func emitStructuredNode(t TLV, fmtOpts FormatOptions) StructuredTLV {
	s := StructuredTLV{Type: t.Type, Length: t.Length, ValueType: t.ValueType.String()}

	if t.IsCompound() {
		s.SubTLVs = make([]StructuredTLV, 0, len(t.SubTLVs))
		for _, c := range t.SubTLVs {
			s.SubTLVs = append(s.SubTLVs, emitStructuredNode(c, fmtOpts))
		}
		if !fmtOpts.verbose() {
			// Compound nodes built programmatically (Compound()) never
			// populate Value; re-derive the encoded byte count from the
			// children instead of trusting a possibly-empty t.Value.
			encoded, err := encodeChildren(t.SubTLVs)
			if err != nil {
				encoded = t.Value
			}
			compact, _ := formatCompoundFn(t.ValueType, encoded, fmtOpts)
			s.FormattedValue = compact
		}
		return s
	}

	s.Value = hexUpper(t.Value)
	if t.FormattedValue != nil {
		s.FormattedValue = t.FormattedValue
	} else if fv, err := FormatValue(t.ValueType, t.Value, fmtOpts); err == nil {
		s.FormattedValue = fv
	}
	return s
}

/*
ParseStructured reconstructs a TLV tree from its structured form. Per
spec §4.5, bytes are rebuilt from the hex Value for leaves and from
children for compound nodes, the encoder is re-invoked, and both
Length and the bytes are re-derived from that reconstruction -- any
user-supplied Length is advisory and ignored.
*/
func ParseStructured(records []StructuredTLV, opts DecodeOptions) ([]TLV, error) {
	opts = opts.normalized()
	out := make([]TLV, 0, len(records))
	for _, rec := range records {
		t, err := parseStructuredNode(rec, opts, nil, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func parseStructuredNode(rec StructuredTLV, opts DecodeOptions, path []int, parentType int) (TLV, error) {
	var entry RegistryEntry
	var found bool
	if len(path) == 0 {
		entry, found = opts.Registry.LookupTLV(rec.Type, opts.Version)
	} else {
		entry, found = opts.Registry.LookupSubTLV(parentType, rec.Type)
	}

	if len(rec.SubTLVs) > 0 || (found && entry.Compound()) {
		children := make([]TLV, 0, len(rec.SubTLVs))
		childPath := append(append([]int(nil), path...), rec.Type)
		for _, childRec := range rec.SubTLVs {
			child, err := parseStructuredNode(childRec, opts, childPath, rec.Type)
			if err != nil {
				return TLV{}, err
			}
			children = append(children, child)
		}
		encoded, err := encodeChildren(children)
		if err != nil {
			return TLV{}, err
		}
		return TLV{Type: rec.Type, Length: len(encoded), SubTLVs: children, ValueType: VT(TagCompound)}, nil
	}

	value, err := hexDec(rec.Value)
	if err != nil {
		return TLV{}, newCodecErr(KindFormat, "bad_hex_value",
			"structured TLV value is not valid hex: "+rec.Value, -1, append(path, rec.Type))
	}

	vt := VT(TagUnknown)
	if found {
		vt = entry.ValueType
	}
	t := TLV{Type: rec.Type, Length: len(value), Value: value, ValueType: vt}
	if fv, err := FormatValue(vt, value, FormatOptions{}); err == nil {
		t.FormattedValue = fv
	}
	return t, nil
}
