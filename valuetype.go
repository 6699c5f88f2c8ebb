package bindocsis

/*
valuetype.go defines the closed set of value_type tags named in spec
§3, realized as a tagged sum (per the design note in spec §9): a small
string-based ValueTag plus a ValueType wrapper that carries the extra
parameters an enum variant needs. Dispatch on ValueType is realized as
a table lookup in value.go, never an open type switch.
*/

/*
ValueTag is one member of the closed set of typed-value dispatch tags
named in spec §3.
*/
type ValueTag string

const (
	TagUint8           ValueTag = "uint8"
	TagUint16          ValueTag = "uint16"
	TagUint32          ValueTag = "uint32"
	TagIPv4            ValueTag = "ipv4"
	TagIPv6            ValueTag = "ipv6"
	TagFrequency       ValueTag = "frequency"
	TagBandwidth       ValueTag = "bandwidth"
	TagBoolean         ValueTag = "boolean"
	TagMACAddress      ValueTag = "mac_address"
	TagDuration        ValueTag = "duration"
	TagPercentage      ValueTag = "percentage"
	TagPowerQuarterDB  ValueTag = "power_quarter_db"
	TagString          ValueTag = "string"
	TagBinary          ValueTag = "binary"
	TagServiceFlowRef  ValueTag = "service_flow_ref"
	TagVendorOUI       ValueTag = "vendor_oui"
	TagVendor          ValueTag = "vendor"
	TagCompound        ValueTag = "compound"
	TagMarker          ValueTag = "marker"
	TagOID             ValueTag = "oid"
	TagSNMPOID         ValueTag = "snmp_oid"
	TagCertificate     ValueTag = "certificate"
	TagASN1DER         ValueTag = "asn1_der"
	TagTimestamp       ValueTag = "timestamp"
	TagEnum            ValueTag = "enum"
	TagUnknown         ValueTag = "unknown"
)

/*
ValueType names a value's dispatch tag plus, for enum<M> / enum<M,u>,
the integer-to-name mapping and (when the variant declares it) the
underlying integer width in bytes. Width 0 means "derive from the
byte length being formatted", matching enum<M>'s behavior; a nonzero
Width matches enum<M,underlying>.
*/
type ValueType struct {
	Tag     ValueTag
	EnumMap map[int]string
	Width   int
}

/*
Enum returns a ValueType tagged TagEnum carrying m as its name table.
Width 0 derives the underlying integer width from the bytes supplied
to format/parse (enum<M>); a nonzero width pins it (enum<M,underlying>).
*/
func Enum(m map[int]string, width int) ValueType {
	return ValueType{Tag: TagEnum, EnumMap: m, Width: width}
}

/*
VT returns a plain, non-enum ValueType for tag t. It is a convenience
constructor; VT(TagIPv4) and ValueType{Tag: TagIPv4} are equivalent.
*/
func VT(t ValueTag) ValueType { return ValueType{Tag: t} }

func (v ValueType) String() string {
	if v.Tag == TagEnum {
		if v.Width > 0 {
			return "enum<M," + itoa(v.Width) + ">"
		}
		return "enum<M>"
	}
	return string(v.Tag)
}

var zeroValueType = ValueType{Tag: TagUnknown}
