package bindocsis

/*
asn1der.go implements the ASN.1 DER mini-parser (spec §4.2, component
C2). It is deliberately standalone: it shares no state with the binary
TLV codec in tlv.go, and returns a recursive tagged tree rather than a
flat list so SNMP-MIB-object recognition (a SEQUENCE{OID, value} shape)
is a simple pattern match on the tree, per the design note in spec §9.

Grounded on the teacher's der.go/tlv.go length-parsing shape (short vs
long form, indefinite rejected) and on the base-128 sub-identifier loop
in other_examples' JesseCoretta-go-dirsyn asn1.go (same author's OID
decode idiom).
*/

import "math/big"

/*
Asn1Class is the ASN.1 tag class of a DER object.
*/
type Asn1Class int

const (
	ClassUniversal Asn1Class = iota
	ClassApplication
	ClassContext
	ClassPrivate
)

func (c Asn1Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContext:
		return "CONTEXT"
	case ClassPrivate:
		return "PRIVATE"
	}
	return "UNKNOWN"
}

// Universal tag numbers recognized by the mini-parser.
const (
	asn1TagBoolean         = 1
	asn1TagInteger         = 2
	asn1TagBitString       = 3
	asn1TagOctetString     = 4
	asn1TagNull            = 5
	asn1TagOID             = 6
	asn1TagEnum            = 10
	asn1TagUTF8String      = 12
	asn1TagSequence        = 16
	asn1TagSet             = 17
	asn1TagPrintableString = 19
	asn1TagIA5String       = 22
	asn1TagUTCTime         = 23
	asn1TagGeneralizedTime = 24
)

var asn1TagNames = map[int]string{
	asn1TagBoolean: "BOOLEAN", asn1TagInteger: "INTEGER", asn1TagBitString: "BIT STRING",
	asn1TagOctetString: "OCTET STRING", asn1TagNull: "NULL", asn1TagOID: "OBJECT IDENTIFIER",
	asn1TagEnum: "ENUMERATED", asn1TagUTF8String: "UTF8String", asn1TagSequence: "SEQUENCE",
	asn1TagSet: "SET", asn1TagPrintableString: "PrintableString", asn1TagIA5String: "IA5String",
	asn1TagUTCTime: "UTCTime", asn1TagGeneralizedTime: "GeneralizedTime",
}

/*
Asn1Node is one decoded DER object: its identifier (class, constructed
flag, tag number), its declared length, its raw payload, and -- for
constructed objects -- its recursively parsed children.
*/
type Asn1Node struct {
	Class       Asn1Class
	Constructed bool
	Tag         int
	Length      int
	Payload     []byte
	Children    []Asn1Node
}

// TagName returns the universal tag name for UNIVERSAL-class nodes, or
// a generic "[class N]" annotation otherwise.
func (n Asn1Node) TagName() string {
	if n.Class == ClassUniversal {
		if name, ok := asn1TagNames[n.Tag]; ok {
			return name
		}
	}
	return "[" + n.Class.String() + " " + itoa(n.Tag) + "]"
}

/*
ParseDERObject decodes a single DER object from the front of data and
returns it alongside the number of bytes consumed. Constructed objects
are parsed recursively.
*/
func ParseDERObject(data []byte) (Asn1Node, int, error) {
	return parseDERAt(data, 0)
}

/*
ParseDERAll iterates top-level DER objects in data until the input is
exhausted. A partial, undecodable tail is a parse_error; per spec §4.2
and §7, the caller may fall back to ParseDERObject for single-object
reading.
*/
func ParseDERAll(data []byte) ([]Asn1Node, error) {
	var out []Asn1Node
	off := 0
	for off < len(data) {
		node, n, err := parseDERAt(data, off)
		if err != nil {
			return nil, newCodecErr(KindParse, "der_multi_object", err.Error(), off, nil)
		}
		out = append(out, node)
		off += n
	}
	return out, nil
}

func parseDERAt(data []byte, offset int) (Asn1Node, int, error) {
	start := offset
	if offset >= len(data) {
		return Asn1Node{}, 0, mkerr("truncated DER object: no identifier octet")
	}

	first := data[offset]
	class := Asn1Class((first >> 6) & 0x03)
	constructed := first&0x20 != 0
	tagLow := int(first & 0x1F)
	offset++

	var tag int
	if tagLow < 0x1F {
		tag = tagLow
	} else {
		var err error
		tag, offset, err = readBase128Tag(data, offset)
		if err != nil {
			return Asn1Node{}, 0, err
		}
	}

	length, offset, err := parseDERLength(data, offset)
	if err != nil {
		return Asn1Node{}, 0, err
	}

	if offset+length > len(data) {
		return Asn1Node{}, 0, mkerr("truncated DER object: payload overruns buffer")
	}
	payload := data[offset : offset+length]

	node := Asn1Node{Class: class, Constructed: constructed, Tag: tag, Length: length, Payload: payload}

	if constructed {
		children, err := parseDERChildren(payload)
		if err != nil {
			return Asn1Node{}, 0, err
		}
		node.Children = children
	}

	consumed := (offset + length) - start
	return node, consumed, nil
}

func parseDERChildren(payload []byte) ([]Asn1Node, error) {
	var children []Asn1Node
	off := 0
	for off < len(payload) {
		child, n, err := parseDERAt(payload, off)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		off += n
	}
	return children, nil
}

/*
readBase128Tag decodes a high-tag-number form: base-128 big-endian,
continuation bit 0x80 set on all but the final byte.
*/
func readBase128Tag(data []byte, offset int) (int, int, error) {
	tag := 0
	for {
		if offset >= len(data) {
			return 0, 0, mkerr("truncated high-tag-number form")
		}
		b := data[offset]
		offset++
		tag = (tag << 7) | int(b&0x7f)
		if b&0x80 == 0 {
			break
		}
	}
	return tag, offset, nil
}

/*
parseDERLength decodes a DER length: short form (high bit clear, value
direct) or long form (high bit set, low 7 bits give the count of
following big-endian length octets). Indefinite length (0x80 alone) is
rejected, per spec §4.2.
*/
func parseDERLength(data []byte, offset int) (int, int, error) {
	if offset >= len(data) {
		return 0, 0, mkerr("truncated DER length")
	}
	first := data[offset]
	offset++

	if first&0x80 == 0 {
		return int(first), offset, nil
	}

	count := int(first & 0x7f)
	if count == 0 {
		return 0, 0, mkerr("indefinite length not supported by DER mini-parser")
	}
	if offset+count > len(data) {
		return 0, 0, mkerr("truncated long-form DER length")
	}
	length := 0
	for i := 0; i < count; i++ {
		length = (length << 8) | int(data[offset+i])
	}
	offset += count
	return length, offset, nil
}

/*
DecodeInteger interprets an INTEGER node's payload as an arbitrary-
precision two's-complement signed integer.
*/
func DecodeInteger(n Asn1Node) (*big.Int, error) {
	if n.Tag != asn1TagInteger || n.Class != ClassUniversal {
		return nil, mkerr("DecodeInteger: node is not a universal INTEGER")
	}
	if len(n.Payload) == 0 {
		return nil, mkerr("DecodeInteger: empty INTEGER payload")
	}
	v := new(big.Int).SetBytes(n.Payload)
	if n.Payload[0]&0x80 != 0 {
		// Two's-complement negative: subtract 2^(8*len).
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(8*len(n.Payload)))
		v.Sub(v, modulus)
	}
	return v, nil
}

/*
DecodeOID interprets an OBJECT IDENTIFIER node's payload as a
dotted-decimal string, per the (first,second)=(b/40,b%40) and
base-128 continuation rules of spec §4.2.
*/
func DecodeOID(n Asn1Node) (string, error) {
	if n.Tag != asn1TagOID || n.Class != ClassUniversal {
		return "", mkerr("DecodeOID: node is not a universal OBJECT IDENTIFIER")
	}
	p := n.Payload
	if len(p) == 0 {
		return "", mkerr("DecodeOID: empty OID payload")
	}

	first := int(p[0]) / 40
	second := int(p[0]) % 40
	arcs := []string{itoa(first), itoa(second)}

	i := 1
	for i < len(p) {
		val := 0
		for {
			if i >= len(p) {
				return "", mkerr("DecodeOID: truncated sub-identifier")
			}
			b := p[i]
			i++
			val = (val << 7) | int(b&0x7f)
			if b&0x80 == 0 {
				break
			}
		}
		arcs = append(arcs, itoa(val))
	}

	return join(arcs, "."), nil
}

/*
SNMPMIBObject is the {oid, type, value} shape spec §4.3 recognizes
within an asn1_der/certificate leaf whose DER payload is a
SEQUENCE{OID, value} pair.
*/
type SNMPMIBObject struct {
	OID   string
	Type  string
	Value any
}

/*
RecognizeSNMPMIB reports whether node matches the SNMP-MIB-object
pattern (a two-child SEQUENCE whose first child is an OID) and, if so,
decodes it.
*/
func RecognizeSNMPMIB(node Asn1Node) (SNMPMIBObject, bool) {
	if node.Class != ClassUniversal || node.Tag != asn1TagSequence || !node.Constructed {
		return SNMPMIBObject{}, false
	}
	if len(node.Children) != 2 {
		return SNMPMIBObject{}, false
	}
	oidNode := node.Children[0]
	if oidNode.Class != ClassUniversal || oidNode.Tag != asn1TagOID {
		return SNMPMIBObject{}, false
	}
	oid, err := DecodeOID(oidNode)
	if err != nil {
		return SNMPMIBObject{}, false
	}

	valNode := node.Children[1]
	var value any
	switch {
	case valNode.Class == ClassUniversal && valNode.Tag == asn1TagInteger:
		if bi, err := DecodeInteger(valNode); err == nil {
			if bi.IsInt64() {
				value = bi.Int64()
			} else {
				value = bi.String()
			}
		}
	case valNode.Class == ClassUniversal && valNode.Tag == asn1TagOctetString:
		value = hexUpper(valNode.Payload)
	case valNode.Class == ClassUniversal && valNode.Tag == asn1TagOID:
		if s, err := DecodeOID(valNode); err == nil {
			value = s
		}
	default:
		value = hexUpper(valNode.Payload)
	}

	return SNMPMIBObject{OID: oid, Type: valNode.TagName(), Value: value}, true
}
