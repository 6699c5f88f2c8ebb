package bindocsis

/*
tlv.go implements the Binary TLV Codec (spec §4.4, component C4): the
recursive, length-prefixed wire format, consulting the Spec Registry
(registry.go) to decide whether a TLV is compound (recurse) or leaf
(hand the value bytes to the Value Codec in value.go).

Grounded on the teacher's tlv.go (encodeTLV/getTLV and the length-
encoding helpers), adapted from ASN.1 identifier+length framing to
DOCSIS's single-byte type plus classic/extended length dialect.
*/

/*
ParseBinary decodes a sequence of top-level TLVs from data. TLV 255
is a zero-length End-of-Data marker that stops decoding at its
nesting level (spec §4.4); any bytes left unconsumed after it --
conventionally further 0xFF padding -- are simply not parsed, which
realizes the "trailing 0xFF padding is skipped" rule without a
separate padding scan.
*/
func ParseBinary(data []byte, opts DecodeOptions) ([]TLV, error) {
	opts = opts.normalized()
	if opts.Registry == nil {
		return nil, errorNilRegistry
	}
	tlvs, _, err := parseTLVSequence(data, 0, nil, opts, true)
	return tlvs, err
}

// parseTLVSequence reads TLVs from buf until exhausted or a TLV 255
// marker is reached. baseOffset is buf's offset within the original
// top-level input, for fault reporting. path is the ancestor TLV-type
// chain (outermost first); topLevel selects TLV-table vs sub-TLV-table
// lookups.
func parseTLVSequence(buf []byte, baseOffset int, path []int, opts DecodeOptions, topLevel bool) ([]TLV, int, error) {
	var out []TLV
	pos := 0

	for pos < len(buf) {
		typ := int(buf[pos])
		nodeOffset := baseOffset + pos

		if typ == 255 {
			out = append(out, TLV{Type: 255, Length: 0, Value: []byte{}, ValueType: VT(TagMarker), FormattedValue: "<End-of-Data>"})
			pos++
			return out, pos, nil
		}

		if typ == 0 {
			if !opts.AllowReservedZero {
				return nil, 0, newCodecErr(KindFormat, "reserved_tlv_zero",
					"TLV type 0 is reserved", nodeOffset, path)
			}
			out = append(out, TLV{Type: 0, Length: 0, Value: []byte{}, ValueType: VT(TagUnknown)})
			pos++
			continue
		}

		pos++
		if pos >= len(buf) {
			return nil, 0, newCodecErr(KindParse, "truncated_length",
				"truncated length field", nodeOffset, path)
		}

		length, lenBytes, err := readLength(buf[pos:], opts.Dialect)
		if err != nil {
			return nil, 0, newCodecErr(KindParse, "truncated_length", err.Error(), nodeOffset, path)
		}
		pos += lenBytes

		if pos+length > len(buf) {
			return nil, 0, newCodecErr(KindParse, "truncated_value",
				"declared length overruns buffer", nodeOffset, path)
		}
		valueBytes := buf[pos : pos+length]
		pos += length

		var entry RegistryEntry
		var found bool
		if topLevel {
			entry, found = opts.Registry.LookupTLV(typ, opts.Version)
		} else {
			parent := 0
			if len(path) > 0 {
				parent = path[len(path)-1]
			}
			entry, found = opts.Registry.LookupSubTLV(parent, typ)
		}

		node := TLV{Type: typ, Length: length}

		if found && entry.Compound() {
			childPath := append(append([]int(nil), path...), typ)
			children, _, err := parseTLVSequence(valueBytes, baseOffset+pos-length, childPath, opts, false)
			if err != nil {
				return nil, 0, err
			}
			node.SubTLVs = children
			node.ValueType = VT(TagCompound)
		} else {
			node.Value = append([]byte(nil), valueBytes...)
			if found {
				node.ValueType = entry.ValueType
			} else {
				node.ValueType = VT(TagUnknown)
			}
			if fv, err := FormatValue(node.ValueType, node.Value, FormatOptions{}); err == nil {
				node.FormattedValue = fv
			}
		}

		out = append(out, node)
	}

	return out, pos, nil
}

/*
readLength reads a TLV length field per the active dialect and returns
the decoded length and the number of bytes the field itself occupied.
*/
func readLength(buf []byte, dialect Dialect) (length, consumed int, err error) {
	if len(buf) == 0 {
		return 0, 0, errorTruncatedLength
	}

	if dialect == DialectClassic {
		return int(buf[0]), 1, nil
	}

	first := buf[0]
	if first&0x80 == 0 {
		return int(first), 1, nil
	}
	n := int(first & 0x7f)
	if n == 0 {
		return 0, 0, errorIndefiniteLength
	}
	if len(buf) < 1+n {
		return 0, 0, errorTruncatedLength
	}
	length = 0
	for i := 0; i < n; i++ {
		length = (length << 8) | int(buf[1+i])
	}
	return length, 1 + n, nil
}

/*
EmitBinary encodes a TLV tree into its canonical wire format, computing
lengths bottom-up. Fails with a generation_error{exceeds_max_length}
CodecError when a node's length cannot be represented by the active
dialect (spec §4.4).
*/
func EmitBinary(tlvs []TLV, opts DecodeOptions) ([]byte, error) {
	opts = opts.normalized()
	var out []byte
	for _, t := range tlvs {
		enc, err := encodeTLVNode(t, opts, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	return out, nil
}

func encodeTLVNode(t TLV, opts DecodeOptions, path []int) ([]byte, error) {
	if t.Type == 255 {
		return []byte{255}, nil
	}
	if t.Type == 0 {
		return []byte{0}, nil
	}

	var value []byte
	if t.IsCompound() {
		childPath := append(append([]int(nil), path...), t.Type)
		for _, c := range t.SubTLVs {
			enc, err := encodeTLVNode(c, opts, childPath)
			if err != nil {
				return nil, err
			}
			value = append(value, enc...)
		}
	} else {
		value = t.Value
	}

	lengthField, err := encodeLength(len(value), opts.Dialect)
	if err != nil {
		return nil, newCodecErr(KindGeneration, "exceeds_max_length", err.Error(), -1, append(path, t.Type))
	}

	out := make([]byte, 0, 1+len(lengthField)+len(value))
	out = append(out, byte(t.Type))
	out = append(out, lengthField...)
	out = append(out, value...)
	return out, nil
}

/*
encodeLength picks the minimal length-field encoding the dialect
permits, per spec §4.4.
*/
func encodeLength(n int, dialect Dialect) ([]byte, error) {
	if n < 0 {
		return nil, errorNegativeLength
	}

	if dialect == DialectClassic {
		if n > 255 {
			return nil, mkerr("length " + itoa(n) + " exceeds classic dialect's single-byte maximum (255)")
		}
		return []byte{byte(n)}, nil
	}

	if n < 0x80 {
		return []byte{byte(n)}, nil
	}
	var bs []byte
	v := n
	for v > 0 {
		bs = append([]byte{byte(v & 0xff)}, bs...)
		v >>= 8
	}
	return append([]byte{byte(0x80 | len(bs))}, bs...), nil
}
