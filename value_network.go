package bindocsis

/*
value_network.go implements the network-address and vendor members of
the value_type set (spec §4.3): ipv4, ipv6, mac_address, vendor_oui,
vendor, service_flow_ref.
*/

func formatIPv4Fn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if len(b) != 4 {
		return nil, mkerr("ipv4: expected 4 bytes")
	}
	parts := make([]string, 4)
	for i, c := range b {
		parts[i] = itoa(int(c))
	}
	return join(parts, "."), nil
}

func parseIPv4Fn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("ipv4: expected string input")
	}
	parts := split(s, ".")
	if len(parts) != 4 {
		return nil, mkerr("ipv4: expected 4 dotted octets")
	}
	out := make([]byte, 4)
	for i, p := range parts {
		n, err := atoi(p)
		if err != nil || n < 0 || n > 255 {
			return nil, mkerr("ipv4: bad octet " + p)
		}
		out[i] = byte(n)
	}
	return out, nil
}

func formatIPv6Fn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if len(b) != 16 {
		return nil, mkerr("ipv6: expected 16 bytes")
	}
	groups := make([]string, 8)
	for i := 0; i < 8; i++ {
		groups[i] = lc(hexEnc(b[i*2 : i*2+2]))
	}
	return join(groups, ":"), nil
}

func parseIPv6Fn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("ipv6: expected string input")
	}
	groups := split(s, ":")
	if len(groups) != 8 {
		return nil, mkerr("ipv6: expected 8 colon-separated groups")
	}
	out := make([]byte, 0, 16)
	for _, g := range groups {
		if len(g) != 4 {
			return nil, mkerr("ipv6: each group must be 4 hex digits")
		}
		b, err := hexDec(g)
		if err != nil {
			return nil, mkerr("ipv6: bad hex group " + g)
		}
		out = append(out, b...)
	}
	return out, nil
}

func formatMACFn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	if len(b) != 6 {
		// spec §4.3: "Other lengths fail" (unlike boolean/uint8, which
		// document an explicit hex fallback); FormatValue's own
		// fallback chain still renders this as binary, but the
		// Validator's strict check must see the failure.
		return nil, mkerr("mac_address: expected 6 bytes")
	}
	parts := make([]string, 6)
	for i, c := range b {
		parts[i] = uc(hexEnc([]byte{c}))
	}
	s := join(parts, ":")
	if opts.verbose() {
		var oui [3]byte
		copy(oui[:], b[:3])
		if name, ok := lookupOUIVendor(oui); ok {
			s += " (" + name + ")"
		}
	}
	return s, nil
}

func parseMACFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("mac_address: expected string input")
	}
	// Strip a trailing vendor annotation, if present, before parsing.
	if idx := indexByte(s, ' '); idx >= 0 {
		s = s[:idx]
	}
	parts := split(s, ":")
	if len(parts) != 6 {
		return nil, mkerr("mac_address: expected 6 colon-separated octets")
	}
	out := make([]byte, 6)
	for i, p := range parts {
		b, err := hexDec(p)
		if err != nil || len(b) != 1 {
			return nil, mkerr("mac_address: bad octet " + p)
		}
		out[i] = b[0]
	}
	return out, nil
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func hexUpperSpaced(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = uc(hexEnc([]byte{c}))
	}
	return join(parts, " ")
}

// --- service_flow_ref: 1 or 2 bytes, leading zero byte accepted ---

func formatServiceFlowRefFn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if len(b) != 1 && len(b) != 2 {
		return nil, mkerr("service_flow_ref: expected 1 or 2 bytes")
	}
	return "Service Flow #" + itoa(int(beUint(b))), nil
}

func parseServiceFlowRefFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("service_flow_ref: expected string input")
	}
	s = trimS(trimPfxServiceFlow(s))
	n, err := atoi(s)
	if err != nil || n < 0 || n > 0xffff {
		return nil, mkerr("service_flow_ref: bad reference " + s)
	}
	if n <= 0xff {
		return []byte{byte(n)}, nil
	}
	return putBEUint(uint64(n), 2), nil
}

func trimPfxServiceFlow(s string) string {
	const p = "Service Flow #"
	if hasPfx(s, p) {
		return s[len(p):]
	}
	return s
}

// --- vendor_oui: exactly 3 bytes, optional vendor-name prefix ---

func formatVendorOUIFn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	if len(b) != 3 {
		return nil, mkerr("vendor_oui: expected 3 bytes")
	}
	var oui [3]byte
	copy(oui[:], b)
	s := uc(hexEnc(b[0:1])) + ":" + uc(hexEnc(b[1:2])) + ":" + uc(hexEnc(b[2:3]))
	if name, ok := lookupOUIVendor(oui); ok {
		s = name + " (" + s + ")"
	}
	return s, nil
}

func parseVendorOUIFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("vendor_oui: expected string input")
	}
	if idx := indexByte(s, '('); idx >= 0 {
		s = trimS(s[idx+1:])
		s = trimSfx(s, ")")
	}
	parts := split(s, ":")
	if len(parts) != 3 {
		return nil, mkerr("vendor_oui: expected AA:BB:CC")
	}
	out := make([]byte, 3)
	for i, p := range parts {
		b, err := hexDec(p)
		if err != nil || len(b) != 1 {
			return nil, mkerr("vendor_oui: bad octet " + p)
		}
		out[i] = b[0]
	}
	return out, nil
}

// --- vendor: >= 3 bytes, leading 3 are OUI, structured form ---

/*
VendorValue is the structured textual form of a vendor-type leaf
(spec §4.3): the OUI, the remaining payload as hex, and -- when the
OUI is recognized -- its vendor name.
*/
type VendorValue struct {
	OUI        string `json:"oui"`
	Data       string `json:"data"`
	VendorName string `json:"vendor_name,omitempty"`
}

func formatVendorFn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if len(b) < 3 {
		return nil, mkerr("vendor: expected at least 3 bytes")
	}
	var oui [3]byte
	copy(oui[:], b[:3])
	ouiStr := uc(hexEnc(b[0:1])) + ":" + uc(hexEnc(b[1:2])) + ":" + uc(hexEnc(b[2:3]))
	v := VendorValue{OUI: ouiStr, Data: hexUpper(b[3:])}
	if name, ok := lookupOUIVendor(oui); ok {
		v.VendorName = name
	}
	return v, nil
}

func parseVendorFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	v, ok := text.(VendorValue)
	if !ok {
		if m, ok2 := text.(map[string]any); ok2 {
			v = VendorValue{}
			if s, ok3 := m["oui"].(string); ok3 {
				v.OUI = s
			}
			if s, ok3 := m["data"].(string); ok3 {
				v.Data = s
			}
		} else {
			return nil, mkerr("vendor: expected VendorValue or map input")
		}
	}
	ouiBytes, err := parseVendorOUIFn(ValueType{}, v.OUI, FormatOptions{})
	if err != nil {
		return nil, err
	}
	dataBytes, err := hexDec(v.Data)
	if err != nil {
		return nil, mkerr("vendor: bad hex data")
	}
	return append(ouiBytes, dataBytes...), nil
}
