package bindocsis

/*
value_time.go implements timestamp (spec §4.3): 4 big-endian bytes of
Unix-epoch seconds, zero meaning "Not Set".
*/

import "time"

func formatTimestampFn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if len(b) != 4 {
		return nil, mkerr("timestamp: expected 4 bytes")
	}
	raw := uint32(beUint(b))
	if raw == 0 {
		return "Not Set", nil
	}
	if raw == 0xffffffff {
		return "Invalid timestamp: " + itoa(int(raw)), nil
	}
	secs := int64(raw)
	t := time.Unix(secs, 0).UTC()
	return t.Format("2006-01-02T15:04:05Z"), nil
}

func parseTimestampFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("timestamp: expected string input")
	}
	if s == "Not Set" {
		return putBEUint(0, 4), nil
	}
	if hasPfx(s, "Invalid timestamp: ") {
		return putBEUint(0xffffffff, 4), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05Z", s)
	if err != nil {
		return nil, mkerr("timestamp: cannot parse " + s)
	}
	return putBEUint(uint64(t.Unix()), 4), nil
}
