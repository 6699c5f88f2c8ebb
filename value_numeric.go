package bindocsis

/*
value_numeric.go implements the fixed-width and scaled-numeric members
of the value_type set (spec §4.3): uint8/16/32, frequency, bandwidth,
duration, percentage, power_quarter_db. It leans on
golang.org/x/exp/constraints for one generic helper shared by the
scaled formatters, the same motivation the teacher pulls the package
in for (a Numerical-constrained generic over Enumeration in
constr_on.go).
*/

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// scalarNumber is the constraint used by roundTo, shared by every
// scaled-unit formatter below.
type scalarNumber interface {
	constraints.Integer | constraints.Float
}

// roundTo rounds v to precision fractional digits, generic over any
// integer or float input so frequency/bandwidth/power_quarter_db can
// share one rounding helper instead of three copies.
func roundTo[T scalarNumber](v T, precision int) float64 {
	f := float64(v)
	if precision <= 0 {
		return math.Round(f)
	}
	mult := math.Pow(10, float64(precision))
	return math.Round(f*mult) / mult
}

// trimFloat renders f with exactly precision fractional digits, or with
// no decimal point at all when the value is integral or precision is
// 0 -- spec §4.3: "integer values with zero fractional are rendered
// without a decimal point".
func trimFloat(f float64, precision int) string {
	if precision <= 0 || f == math.Trunc(f) {
		return itoa(int(f))
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func pfloatHelper(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// --- fixed-width unsigned integers ---

func formatFixedUint(b []byte, width int) (string, bool) {
	if len(b) != width {
		return "", false
	}
	return fmtUint(beUint(b), 10), true
}

func formatUint8Fn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	if s, ok := formatFixedUint(b, 1); ok {
		return s, nil
	}
	// spec §4.3: wrong width for uint8 falls back to uppercase hex.
	return hexUpper(b), nil
}

func parseUint8Fn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("uint8: expected string input")
	}
	// A one-byte value formats as at most 3 decimal digits; the hex
	// fallback form is never 1-3 characters long, so longer (or empty)
	// text is read as hex.
	if len(s) > 0 && len(s) <= 3 {
		if n, err := atoi(s); err == nil && n >= 0 && n <= 0xff {
			return []byte{byte(n)}, nil
		}
	}
	// Round-trips the hex fallback form.
	if b, err := hexDec(s); err == nil {
		return b, nil
	}
	return nil, mkerr("uint8: cannot parse " + s)
}

func formatUint16Fn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if s, ok := formatFixedUint(b, 2); ok {
		return s, nil
	}
	return nil, mkerr("uint16: wrong width")
}

func parseUint16Fn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("uint16: expected string input")
	}
	n, err := atoi(s)
	if err != nil || n < 0 || n > 0xffff {
		return nil, mkerr("uint16: cannot parse " + s)
	}
	return putBEUint(uint64(n), 2), nil
}

func formatUint32Fn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if s, ok := formatFixedUint(b, 4); ok {
		return s, nil
	}
	return nil, mkerr("uint32: wrong width")
}

func parseUint32Fn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("uint32: expected string input")
	}
	n, err := puint(s, 10, 64)
	if err != nil || n > 0xffffffff {
		return nil, mkerr("uint32: cannot parse " + s)
	}
	return putBEUint(n, 4), nil
}

// --- frequency / bandwidth: auto-scaled with exact powers of 1000 ---

type scaleUnit struct {
	name      string
	threshold float64
}

var freqUnits = []scaleUnit{{"GHz", 1e9}, {"MHz", 1e6}, {"KHz", 1e3}, {"Hz", 0}}
var bwUnits = []scaleUnit{{"Gbps", 1e9}, {"Mbps", 1e6}, {"Kbps", 1e3}, {"bps", 0}}

func scaleAndFormat(raw uint32, units []scaleUnit, pref UnitPreference, precision int, prefMap map[UnitPreference]string) (string, error) {
	v := float64(raw)

	if prefMap != nil {
		if name, ok := prefMap[pref]; ok && pref != UnitAuto {
			for _, u := range units {
				if u.name == name {
					return renderScaled(v, u, precision), nil
				}
			}
			return "", mkerr("unrecognized unit preference")
		}
	}

	for _, u := range units {
		if v >= u.threshold {
			return renderScaled(v, u, precision), nil
		}
	}
	last := units[len(units)-1]
	return renderScaled(v, last, precision), nil
}

func renderScaled(v float64, u scaleUnit, precision int) string {
	scaled := v
	if u.threshold > 0 {
		scaled = v / u.threshold
	}
	return trimFloat(roundTo(scaled, precision), precision) + " " + u.name
}

var freqPrefMap = map[UnitPreference]string{UnitHz: "Hz", UnitKHz: "KHz", UnitMHz: "MHz", UnitGHz: "GHz"}
var bwPrefMap = map[UnitPreference]string{UnitBps: "bps", UnitKbps: "Kbps", UnitMbps: "Mbps", UnitGbps: "Gbps"}

func formatFrequencyFn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	if len(b) != 4 {
		return nil, mkerr("frequency: expected 4 bytes")
	}
	raw := uint32(beUint(b))
	return scaleAndFormat(raw, freqUnits, opts.UnitPreference, opts.Precision, freqPrefMap)
}

func parseFrequencyFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("frequency: expected string input")
	}
	hz, err := parseScaledValue(s, freqPrefMap)
	if err != nil {
		return nil, err
	}
	return putBEUint(uint64(hz), 4), nil
}

func formatBandwidthFn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	if len(b) != 4 {
		return nil, mkerr("bandwidth: expected 4 bytes")
	}
	raw := uint32(beUint(b))
	return scaleAndFormat(raw, bwUnits, opts.UnitPreference, opts.Precision, bwPrefMap)
}

func parseBandwidthFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("bandwidth: expected string input")
	}
	bps, err := parseScaledValue(s, bwPrefMap)
	if err != nil {
		return nil, err
	}
	return putBEUint(uint64(bps), 4), nil
}

// parseScaledValue parses "591 MHz" / "10 Mbps" style text back to the
// base unit (Hz or bps), using prefMap's unit names to find the
// multiplier.
func parseScaledValue(s string, prefMap map[UnitPreference]string) (float64, error) {
	s = trimS(s)
	parts := split(s, " ")
	if len(parts) != 2 {
		return 0, mkerr("scaled value: expected '<number> <unit>'")
	}
	num, err := pfloatHelper(parts[0])
	if err != nil {
		return 0, mkerr("scaled value: bad number " + parts[0])
	}
	unit := parts[1]
	mult := 1.0
	switch lc(unit) {
	case "hz", "bps":
		mult = 1
	case "khz", "kbps":
		mult = 1e3
	case "mhz", "mbps":
		mult = 1e6
	case "ghz", "gbps":
		mult = 1e9
	default:
		return 0, mkerr("scaled value: unrecognized unit " + unit)
	}
	return num * mult, nil
}

// --- duration: largest unit that divides cleanly ---

func formatDurationFn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if len(b) != 4 {
		return nil, mkerr("duration: expected 4 bytes")
	}
	secs := int64(beUint(b))
	switch {
	case secs != 0 && secs%86400 == 0:
		return itoa(int(secs/86400)) + " day(s)", nil
	case secs != 0 && secs%3600 == 0:
		return itoa(int(secs/3600)) + " hour(s)", nil
	case secs != 0 && secs%60 == 0:
		return itoa(int(secs/60)) + " minute(s)", nil
	default:
		return itoa(int(secs)) + " second(s)", nil
	}
}

func parseDurationFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("duration: expected string input")
	}
	parts := split(trimS(s), " ")
	if len(parts) != 2 {
		return nil, mkerr("duration: expected '<n> <unit>(s)'")
	}
	n, err := atoi(parts[0])
	if err != nil {
		return nil, mkerr("duration: bad number " + parts[0])
	}
	unit := trimSfx(trimSfx(lc(parts[1]), "(s)"), "s")
	mult := 1
	switch unit {
	case "second":
		mult = 1
	case "minute":
		mult = 60
	case "hour":
		mult = 3600
	case "day":
		mult = 86400
	default:
		return nil, mkerr("duration: unrecognized unit " + parts[1])
	}
	return putBEUint(uint64(n*mult), 4), nil
}

// --- percentage ---

func formatPercentageFn(_ ValueType, b []byte, _ FormatOptions) (any, error) {
	if len(b) != 1 {
		return nil, mkerr("percentage: expected 1 byte")
	}
	return itoa(int(b[0])) + "%", nil
}

func parsePercentageFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("percentage: expected string input")
	}
	s = trimSfx(s, "%")
	n, err := atoi(s)
	if err != nil || n < 0 || n > 255 {
		return nil, mkerr("percentage: bad value " + s)
	}
	return []byte{byte(n)}, nil
}

// --- power_quarter_db: byte/4 dBmV, default precision 1 ---

func formatPowerQuarterDBFn(_ ValueType, b []byte, opts FormatOptions) (any, error) {
	if len(b) != 1 {
		return nil, mkerr("power_quarter_db: expected 1 byte")
	}
	precision := opts.Precision
	if precision == 2 {
		// spec §4.3: default precision for this type is 1, not the
		// package-wide default of 2. opts is already normalized here,
		// so a Precision of 2 is taken as the package default and
		// replaced by 1; an explicitly requested Precision of 2 is
		// rendered with 1 fractional digit as well.
		precision = 1
	}
	v := float64(b[0]) / 4.0
	return trimFloat(roundTo(v, precision), precision) + " dBmV", nil
}

func parsePowerQuarterDBFn(_ ValueType, text any, _ FormatOptions) ([]byte, error) {
	s, ok := text.(string)
	if !ok {
		return nil, mkerr("power_quarter_db: expected string input")
	}
	s = trimSfx(trimS(s), " dBmV")
	v, err := pfloatHelper(s)
	if err != nil {
		return nil, mkerr("power_quarter_db: bad value " + s)
	}
	q := int(math.Round(v * 4))
	if q < 0 || q > 255 {
		return nil, mkerr("power_quarter_db: out of range")
	}
	return []byte{byte(q)}, nil
}
