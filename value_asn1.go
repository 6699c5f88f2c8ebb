package bindocsis

/*
value_asn1.go implements the ASN.1-backed members of the value_type
set (spec §4.3): oid/snmp_oid (dotted decimal via the C2 mini-parser),
and certificate/asn1_der (compact byte-count summary or, verbose,
a structured tree -- recognizing the SNMP-MIB {oid,type,value} shape
from asn1der.go). Falls back to hex when DER decoding fails, per the
fallback chain in spec §9.
*/

func formatOIDFn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	node := Asn1Node{Class: ClassUniversal, Tag: asn1TagOID, Payload: b, Length: len(b)}
	s, err := DecodeOID(node)
	if err != nil {
		return formatBinary(b, opts), nil
	}
	return s, nil
}

func parseOIDFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("oid: expected string input")
	}
	return encodeOIDString(s)
}

/*
encodeOIDString is the inverse of DecodeOID: a dotted-decimal string
to its DER OBJECT IDENTIFIER payload encoding.
*/
func encodeOIDString(s string) ([]byte, error) {
	parts := split(trimS(s), ".")
	if len(parts) < 2 {
		return nil, mkerr("oid: need at least two arcs")
	}
	first, err := atoi(parts[0])
	if err != nil {
		return nil, mkerr("oid: bad first arc")
	}
	second, err := atoi(parts[1])
	if err != nil {
		return nil, mkerr("oid: bad second arc")
	}
	out := []byte{byte(first*40 + second)}
	for _, p := range parts[2:] {
		n, err := atoi(p)
		if err != nil || n < 0 {
			return nil, mkerr("oid: bad arc " + p)
		}
		out = append(out, encodeBase128(n)...)
	}
	return out, nil
}

func encodeBase128(n int) []byte {
	if n == 0 {
		return []byte{0}
	}
	var out []byte
	for n > 0 {
		b := byte(n & 0x7f)
		n >>= 7
		if len(out) > 0 {
			b |= 0x80
		}
		out = append([]byte{b}, out...)
	}
	return out
}

/*
ASN1Summary is the verbose structured form of a certificate/asn1_der
leaf that is not recognized as an SNMP MIB object (spec §4.3).
*/
type ASN1Summary struct {
	Tag      string
	Class    string
	Length   int
	Children []ASN1Summary `json:"children,omitempty"`
}

func summarizeASN1(n Asn1Node) ASN1Summary {
	s := ASN1Summary{Tag: n.TagName(), Class: n.Class.String(), Length: n.Length}
	for _, c := range n.Children {
		s.Children = append(s.Children, summarizeASN1(c))
	}
	return s
}

func formatASN1Fn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	if !opts.verbose() {
		return "<" + itoa(len(b)) + " bytes>", nil
	}

	node, _, err := ParseDERObject(b)
	if err != nil {
		return formatBinary(b, opts), nil
	}
	if mib, ok := RecognizeSNMPMIB(node); ok {
		return mib, nil
	}
	return summarizeASN1(node), nil
}

func parseASN1Fn(_ ValueType, text any, opts FormatOptions) ([]byte, error) {
	switch v := text.(type) {
	case string:
		if hasPfx(v, "<") {
			return nil, mkerr("asn1_der: compact '<N bytes>' form is not re-parseable; supply hex")
		}
		return parseBinary(v, opts)
	case SNMPMIBObject:
		return encodeSNMPMIB(v)
	default:
		return nil, mkerr("asn1_der: unsupported textual form")
	}
}

// encodeSNMPMIB re-derives a DER SEQUENCE{OID, OCTET STRING} from a
// decoded SNMPMIBObject. Only the OCTET STRING value shape round-trips
// exactly; INTEGER-valued objects are re-encoded as their decimal
// string's UTF-8 bytes wrapped as OCTET STRING, since the textual form
// does not retain the original value's ASN.1 tag.
func encodeSNMPMIB(v SNMPMIBObject) ([]byte, error) {
	oidBytes, err := encodeOIDString(v.OID)
	if err != nil {
		return nil, err
	}
	oidTLV := encodeDERHeader(ClassUniversal, asn1TagOID, oidBytes)

	var valueBytes []byte
	switch val := v.Value.(type) {
	case string:
		if b, err := hexDec(val); err == nil {
			valueBytes = b
		} else {
			valueBytes = []byte(val)
		}
	default:
		valueBytes = []byte(itoaAny(val))
	}
	valTLV := encodeDERHeader(ClassUniversal, asn1TagOctetString, valueBytes)

	seqBody := append(append([]byte(nil), oidTLV...), valTLV...)
	return encodeDERHeaderConstructed(ClassUniversal, asn1TagSequence, seqBody), nil
}

func itoaAny(v any) string {
	switch t := v.(type) {
	case int64:
		return itoa(int(t))
	case int:
		return itoa(t)
	case string:
		return t
	default:
		return ""
	}
}

func encodeDERHeader(class Asn1Class, tag int, payload []byte) []byte {
	return encodeDERHeaderFlags(class, tag, false, payload)
}

func encodeDERHeaderConstructed(class Asn1Class, tag int, payload []byte) []byte {
	return encodeDERHeaderFlags(class, tag, true, payload)
}

func encodeDERHeaderFlags(class Asn1Class, tag int, constructed bool, payload []byte) []byte {
	var id byte = byte(class) << 6
	if constructed {
		id |= 0x20
	}
	var out []byte
	if tag < 0x1F {
		id |= byte(tag)
		out = append(out, id)
	} else {
		id |= 0x1F
		out = append(out, id)
		out = append(out, encodeBase128(tag)...)
	}
	out = append(out, encodeDERLength(len(payload))...)
	out = append(out, payload...)
	return out
}

func encodeDERLength(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var lenBytes []byte
	v := n
	for v > 0 {
		lenBytes = append([]byte{byte(v & 0xff)}, lenBytes...)
		v >>= 8
	}
	return append([]byte{byte(0x80 | len(lenBytes))}, lenBytes...)
}
