package bindocsis

/*
value_enum.go implements boolean, compound, marker, and enum<M>/
enum<M,underlying> (spec §4.3).
*/

func formatBooleanFn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if len(b) == 1 {
		if b[0] == 1 {
			return "Enabled", nil
		}
		if b[0] == 0 {
			return "Disabled", nil
		}
	}
	// spec §4.3: other lengths (and, here, other single-byte values)
	// fall back to uppercase space-separated hex.
	return hexUpperSpaced(b), nil
}

func parseBooleanFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("boolean: expected string input")
	}
	switch s {
	case "Enabled":
		return []byte{1}, nil
	case "Disabled":
		return []byte{0}, nil
	default:
		return parseHexSpaced(s)
	}
}

func parseHexSpaced(s string) ([]byte, error) {
	parts := split(trimS(s), " ")
	out := make([]byte, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		b, err := hexDec(p)
		if err != nil || len(b) != 1 {
			return nil, mkerr("bad hex byte " + p)
		}
		out = append(out, b[0])
	}
	return out, nil
}

/*
formatCompoundFn renders only the compact form of a compound leaf
(spec §4.3), whatever the style. The recursive view of a compound node
needs its already-decoded children, which only the Tree Model (tree.go)
has: in verbose style EmitStructured leaves the compound node's
FormattedValue empty and carries the children in its SubTLVs list.
*/
func formatCompoundFn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	return "<Compound TLV: " + itoa(len(b)) + " bytes>", nil
}

func parseCompoundFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	return nil, mkerr("compound: value is reconstructed from subtlvs, not parsed from text")
}

func formatMarkerFn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if len(b) != 0 {
		return nil, mkerr("marker: expected 0 bytes")
	}
	return "<End-of-Data>", nil
}

func parseMarkerFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	if s, ok := text.(string); ok && s == "<End-of-Data>" {
		return []byte{}, nil
	}
	return nil, mkerr("marker: expected '<End-of-Data>'")
}

// --- enum<M> / enum<M,underlying> ---

func enumWidth(vt ValueType, b []byte) int {
	if vt.Width > 0 {
		return vt.Width
	}
	return len(b)
}

func formatEnumFn(vt ValueType, b []byte, opts FormatOptions) (any, error) {
	if vt.EnumMap == nil {
		return nil, mkerr("enum: nil EnumMap")
	}
	w := enumWidth(vt, b)
	if len(b) != w || (w != 1 && w != 2 && w != 4) {
		return nil, mkerr("enum: unsupported width")
	}
	n := int(beUint(b))
	name, ok := vt.EnumMap[n]
	if !ok {
		name = "unknown"
	}
	if opts.verbose() || !ok {
		return itoa(n) + " (" + name + ")", nil
	}
	return name, nil
}

func parseEnumFn(vt ValueType, text any, _ FormatOptions) ([]byte, error) {
	if vt.EnumMap == nil {
		return nil, mkerr("enum: nil EnumMap")
	}
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("enum: expected string input")
	}

	var n int
	var found bool
	if idx := indexByte(s, '('); idx >= 0 {
		// "N (name)" verbose/unknown form.
		numPart := trimS(s[:idx])
		if v, err := atoi(numPart); err == nil {
			n, found = v, true
		}
	}
	if !found {
		for k, name := range vt.EnumMap {
			if name == s {
				n, found = k, true
				break
			}
		}
	}
	if !found {
		return nil, mkerr("enum: unrecognized value " + s)
	}

	width := vt.Width
	if width == 0 {
		width = 1
		if n > 0xff {
			width = 2
		}
		if n > 0xffff {
			width = 4
		}
	}
	return putBEUint(uint64(n), width), nil
}
