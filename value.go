package bindocsis

/*
value.go implements the Value Codec dispatch (spec §4.3, component C3):
a pair of format/parse functions per value_type tag, realized as a
table-driven dispatch over the closed ValueTag set rather than an open
type switch (spec §9). The fallback chain is a sequence of explicit
attempts, never exception unwinding: string -> binary inside
formatStringFn, typed -> binary here in FormatValue. asn1_der and
certificate values are read as a single DER object (ParseDERObject)
and fall back to hex when that fails; multi-object reading
(ParseDERAll) is not attempted by the value codec.
*/

/*
FormatValue renders bytes as its typed textual (or structured) form,
dispatched on vt.Tag. The returned error is always nil: when the
typed formatter fails (a wrong-width payload, or a malformed vt such
as an enum ValueType with a nil EnumMap), or vt.Tag has no formatter,
the bytes are rendered in binary form instead.
*/
func FormatValue(vt ValueType, b []byte, opts FormatOptions) (any, error) {
	opts = opts.normalized()
	fn, ok := valueFormatters[vt.Tag]
	if !ok {
		return formatBinary(b, opts), nil
	}
	out, err := fn(vt, b, opts)
	if err != nil {
		// Per spec §7(i): unrecognized/malformed typed payloads fall
		// back to binary rather than surfacing the formatter's error.
		return formatBinary(b, opts), nil
	}
	return out, nil
}

/*
ParseValue is the inverse of FormatValue: given the value_type tag that
produced a textual/structured form (spec §4.3's round-trip contract
requires the tag be supplied, since string vs binary fallback forms
are otherwise ambiguous), it returns the bytes that form denotes.
Information the formatted form dropped is not recovered: frequency,
bandwidth and power_quarter_db text rounded to the formatting
precision parses to the rounded value, a string's stripped trailing
NUL bytes and the leading zero byte of a two-byte service_flow_ref
are not restored, TagString returns the text's own bytes even when
that text is the hex fallback of non-printable input, and an
SNMPMIBObject is re-encoded with its value as an OCTET STRING. The
compact "<N bytes>" asn1_der/certificate form and compound values are
rejected with an error.
*/
func ParseValue(vt ValueType, text any, opts FormatOptions) ([]byte, error) {
	opts = opts.normalized()
	fn, ok := valueParsers[vt.Tag]
	if !ok {
		return parseBinary(text, opts)
	}
	return fn(vt, text, opts)
}

/*
formatStrict invokes vt's raw formatter without FormatValue's automatic
binary fallback. FormatValue itself always recovers from a formatter
error (spec §7(i)); the Validator's value-format pass (spec §4.6 pass
4) needs to see the underlying failure instead, so it calls this
rather than FormatValue.
*/
func formatStrict(vt ValueType, b []byte) error {
	fn, ok := valueFormatters[vt.Tag]
	if !ok {
		return nil
	}
	_, err := fn(vt, b, FormatOptions{})
	return err
}

type formatFunc func(vt ValueType, b []byte, opts FormatOptions) (any, error)
type parseFunc func(vt ValueType, text any, opts FormatOptions) ([]byte, error)

var valueFormatters map[ValueTag]formatFunc
var valueParsers map[ValueTag]parseFunc

func init() {
	valueFormatters = map[ValueTag]formatFunc{
		TagUint8:          formatUint8Fn,
		TagUint16:         formatUint16Fn,
		TagUint32:         formatUint32Fn,
		TagIPv4:           formatIPv4Fn,
		TagIPv6:           formatIPv6Fn,
		TagFrequency:      formatFrequencyFn,
		TagBandwidth:      formatBandwidthFn,
		TagBoolean:        formatBooleanFn,
		TagMACAddress:     formatMACFn,
		TagDuration:       formatDurationFn,
		TagPercentage:     formatPercentageFn,
		TagPowerQuarterDB: formatPowerQuarterDBFn,
		TagString:         formatStringFn,
		TagBinary:         formatBinaryFn,
		TagServiceFlowRef: formatServiceFlowRefFn,
		TagVendorOUI:      formatVendorOUIFn,
		TagVendor:         formatVendorFn,
		TagCompound:       formatCompoundFn,
		TagMarker:         formatMarkerFn,
		TagOID:            formatOIDFn,
		TagSNMPOID:        formatOIDFn,
		TagCertificate:    formatASN1Fn,
		TagASN1DER:        formatASN1Fn,
		TagTimestamp:      formatTimestampFn,
		TagEnum:           formatEnumFn,
	}

	valueParsers = map[ValueTag]parseFunc{
		TagUint8:          parseUint8Fn,
		TagUint16:         parseUint16Fn,
		TagUint32:         parseUint32Fn,
		TagIPv4:           parseIPv4Fn,
		TagIPv6:           parseIPv6Fn,
		TagFrequency:      parseFrequencyFn,
		TagBandwidth:      parseBandwidthFn,
		TagBoolean:        parseBooleanFn,
		TagMACAddress:     parseMACFn,
		TagDuration:       parseDurationFn,
		TagPercentage:     parsePercentageFn,
		TagPowerQuarterDB: parsePowerQuarterDBFn,
		TagString:         parseStringFn,
		TagBinary:         parseBinaryFn,
		TagServiceFlowRef: parseServiceFlowRefFn,
		TagVendorOUI:      parseVendorOUIFn,
		TagVendor:         parseVendorFn,
		TagCompound:       parseCompoundFn,
		TagMarker:         parseMarkerFn,
		TagOID:            parseOIDFn,
		TagSNMPOID:        parseOIDFn,
		TagCertificate:    parseASN1Fn,
		TagASN1DER:        parseASN1Fn,
		TagTimestamp:      parseTimestampFn,
		TagEnum:           parseEnumFn,
	}
}
