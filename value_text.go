package bindocsis

/*
value_text.go implements string and binary (spec §4.3), including the
string -> binary fallback named in the design note of spec §9: a
string value_type whose bytes are not printable renders as binary
instead of producing garbled text.
*/

func formatStringFn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	trimmed := trimTrailingNUL(b)
	if !isPrintableASCII(trimmed) {
		return formatBinary(b, opts), nil
	}
	return string(trimmed), nil
}

func parseStringFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("string: expected string input")
	}
	return []byte(s), nil
}

func formatBinary(b []byte, opts FormatOptions) string {
	if opts.verbose() {
		return formatBinaryVerbose(b)
	}
	return hexUpper(b)
}

func formatBinaryFn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	return formatBinary(b, opts), nil
}

func parseBinary(text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("binary: expected string input")
	}
	// Verbose hex+ASCII dumps are a display-only form; only the
	// compact hex form is required to round-trip per spec §4.3.
	s = stripBinaryDumpAnnotations(s)
	return hexDec(s)
}

func parseBinaryFn(_ ValueType, text any, opts FormatOptions) ([]byte, error) {
	return parseBinary(text, opts)
}

// formatBinaryVerbose renders b as 16-byte hex+ASCII lines.
func formatBinaryVerbose(b []byte) string {
	const width = 16
	var lines []string
	for off := 0; off < len(b); off += width {
		end := minInt(off+width, len(b))
		chunk := b[off:end]
		hexParts := make([]string, len(chunk))
		ascii := make([]byte, len(chunk))
		for i, c := range chunk {
			hexParts[i] = uc(hexEnc([]byte{c}))
			if c >= 0x20 && c <= 0x7e {
				ascii[i] = c
			} else {
				ascii[i] = '.'
			}
		}
		line := join(hexParts, " ") + "  |" + string(ascii) + "|"
		lines = append(lines, line)
	}
	return join(lines, "\n")
}

// stripBinaryDumpAnnotations collapses a verbose hex+ASCII dump back
// to a bare hex string by discarding everything from the first "|"
// column onward, on each line.
func stripBinaryDumpAnnotations(s string) string {
	lines := split(s, "\n")
	var hexOnly []string
	for _, line := range lines {
		if idx := indexByte(line, '|'); idx >= 0 {
			line = line[:idx]
		}
		hexOnly = append(hexOnly, trimS(line))
	}
	joined := join(hexOnly, "")
	return join(split(joined, " "), "")
}
