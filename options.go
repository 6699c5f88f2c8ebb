package bindocsis

/*
options.go collects the Options structs threaded explicitly through
every decode/encode/format/validate call (spec §9, "Registry injection
... pass it explicitly, not as a global singleton"), mirroring the
teacher's Options type in opts.go.
*/

/*
Dialect selects the TLV length-encoding scheme (spec §4.4).
*/
type Dialect int

const (
	// DialectClassic is the single-byte-length DOCSIS encoding.
	// Lengths over 255 cannot be expressed.
	DialectClassic Dialect = iota
	// DialectExtended is the PacketCable MTA / DOCSIS 3.1+ variable-
	// width length encoding.
	DialectExtended
)

/*
DecodeOptions configures ParseBinary/EmitBinary and, indirectly via its
embedded Version, the registry lookups and default format used when
rendering FormattedValue. The zero value decodes DOCSIS 3.1 (spec §6's
stated default version) under the classic single-byte-length dialect,
since DialectClassic is Dialect's zero value; callers targeting the
extended dialect must set it explicitly.
*/
type DecodeOptions struct {
	Registry *Registry
	Version  Version
	Dialect  Dialect

	// AllowReservedZero treats TLV type 0 as a 1-byte no-op instead of
	// rejecting it with a format_error (spec §4.4 edge case).
	AllowReservedZero bool
}

func (o DecodeOptions) normalized() DecodeOptions {
	if o.Registry == nil {
		o.Registry = defaultRegistrySingleton()
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	return o
}

/*
FormatStyle selects compact vs verbose rendering for value types whose
textual form has both (spec §4.3).
*/
type FormatStyle string

const (
	StyleCompact FormatStyle = "compact"
	StyleVerbose FormatStyle = "verbose"
)

/*
UnitPreference pins auto-scaled frequency/bandwidth rendering to a
specific unit instead of letting the formatter pick one.
*/
type UnitPreference string

const (
	UnitAuto UnitPreference = "auto"
	UnitHz   UnitPreference = "hz"
	UnitKHz  UnitPreference = "khz"
	UnitMHz  UnitPreference = "mhz"
	UnitGHz  UnitPreference = "ghz"
	UnitBps  UnitPreference = "bps"
	UnitKbps UnitPreference = "kbps"
	UnitMbps UnitPreference = "mbps"
	UnitGbps UnitPreference = "gbps"
)

// precisionUnset, the zero value, forces integer rendering per spec
// §4.3 ("0 forces integer print"). Use DefaultFormatOptions for the
// documented default of 2 fractional digits.
const precisionUnset = 0
const precisionDefault = -1

/*
FormatOptions configures FormatValue/ParseValue (spec §4.3). The zero
value has Precision 0, which per spec forces integer rendering;
DefaultFormatOptions returns the documented default (precision 2,
auto units, compact style).
*/
type FormatOptions struct {
	Precision      int
	UnitPreference UnitPreference
	Style          FormatStyle
}

// DefaultFormatOptions returns {precision: 2, unit: auto, style: compact}.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Precision: precisionDefault, UnitPreference: UnitAuto, Style: StyleCompact}
}

func (o FormatOptions) normalized() FormatOptions {
	if o.Precision == precisionDefault {
		o.Precision = 2
	}
	if o.Precision < 0 {
		o.Precision = 2
	}
	if o.UnitPreference == "" {
		o.UnitPreference = UnitAuto
	}
	if o.Style == "" {
		o.Style = StyleCompact
	}
	return o
}

func (o FormatOptions) verbose() bool { return o.normalized().Style == StyleVerbose }

/*
ValidateOptions configures Validate (spec §4.6).
*/
type ValidateOptions struct {
	Registry *Registry
	Version  Version
	Strict   bool
}

func (o ValidateOptions) normalized() ValidateOptions {
	if o.Registry == nil {
		o.Registry = defaultRegistrySingleton()
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	return o
}

var defaultRegistryOnce *Registry

func defaultRegistrySingleton() *Registry {
	if defaultRegistryOnce == nil {
		defaultRegistryOnce = DefaultRegistry()
	}
	return defaultRegistryOnce
}
