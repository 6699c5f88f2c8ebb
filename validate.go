package bindocsis

/*
validate.go implements the Validator (spec §4.6, component C6): an
8-pass pipeline over a decoded TLV tree that produces a typed Report.
Passes are plain functions appending to a shared accumulator rather
than an error-raising walk, matching the teacher's preference for
explicit result accumulation over exceptions (err.go, mkerrf).
*/

/*
Severity classifies a ReportIssue. Critical issues force status
invalid regardless of anything else; error issues force invalid;
warning issues force status warning unless an error/critical is also
present (spec §4.6 "status derivation").
*/
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
)

// ReportIssue is one finding from a validation pass (spec §4.6).
type ReportIssue struct {
	Type        string
	TLVType     int
	SubTLVType  *int
	Message     string
	Severity    Severity
}

// Status is the overall verdict of a Report.
type Status string

const (
	StatusValid   Status = "valid"
	StatusWarning Status = "warning"
	StatusInvalid Status = "invalid"
)

// Summary carries the config-completeness figure (spec §4.6).
type Summary struct {
	ConfigCompleteness float64
}

// Report is the result of Validate.
type Report struct {
	Status   Status
	Errors   []ReportIssue
	Warnings []ReportIssue
	Info     []ReportIssue
	Summary  Summary
}

type validationAccumulator struct {
	errors       []ReportIssue
	warnings     []ReportIssue
	info         []ReportIssue
	completeness float64
}

func (a *validationAccumulator) addCritical(typ string, tlvType int, sub *int, msg string) {
	a.errors = append(a.errors, ReportIssue{Type: typ, TLVType: tlvType, SubTLVType: sub, Message: msg, Severity: SeverityCritical})
}

func (a *validationAccumulator) addError(typ string, tlvType int, sub *int, msg string) {
	a.errors = append(a.errors, ReportIssue{Type: typ, TLVType: tlvType, SubTLVType: sub, Message: msg, Severity: SeverityError})
}

func (a *validationAccumulator) addWarning(typ string, tlvType int, sub *int, msg string) {
	a.warnings = append(a.warnings, ReportIssue{Type: typ, TLVType: tlvType, SubTLVType: sub, Message: msg, Severity: SeverityWarning})
}

func (a *validationAccumulator) addInfo(typ string, tlvType int, msg string) {
	a.info = append(a.info, ReportIssue{Type: typ, TLVType: tlvType, Message: msg})
}

/*
Validate runs the 8-pass pipeline over tlvs against opts.Version,
producing a Report. Validate is a pure function of its arguments: it
mutates nothing and holds no state across calls (spec §8 "Validator
determinism").
*/
func Validate(tlvs []TLV, opts ValidateOptions) (Report, error) {
	opts = opts.normalized()
	if opts.Registry == nil {
		return Report{}, errorNilRegistry
	}

	acc := &validationAccumulator{}

	lo, hi, ok := opts.Registry.VersionAllowedTypes(opts.Version)

	present := map[int]bool{}
	for _, t := range tlvs {
		present[t.Type] = true
		validateStructural(t, opts.Strict, acc)
		validateTopLevelNode(t, opts, acc, lo, hi, ok)
	}

	validateDependencies(present, opts.Registry, acc)
	validateCompleteness(present, opts.Registry, acc)

	return buildReport(acc), nil
}

// validateStructural is pass 1: every node must carry type/length/value
// consistently (spec §4.6 pass 1). A type out of range is always a
// critical fault; a declared-length/value-length mismatch is an error
// under strict mode and a warning otherwise (spec §4.6 pass 3, spec §7
// policy (iv)).
func validateStructural(t TLV, strict bool, acc *validationAccumulator) {
	if t.Type < 0 || t.Type > 255 {
		acc.addCritical("invalid_structure", t.Type, nil, "TLV type out of range [0,255]")
		return
	}
	if !t.IsCompound() && t.Length != len(t.Value) {
		const msg = "declared length does not match value byte count"
		if strict {
			acc.addError("invalid_structure", t.Type, nil, msg)
		} else {
			acc.addWarning("invalid_structure", t.Type, nil, msg)
		}
	}
	for _, c := range t.SubTLVs {
		validateStructural(c, strict, acc)
	}
}

// validateTopLevelNode runs passes 2-5 and 7 on a top-level node and
// recurses into sub-TLVs (pass 5), then checks pass 7 version
// admissibility for the top-level type only (sub-TLV admissibility is
// scoped by the parent, not the version range).
func validateTopLevelNode(t TLV, opts ValidateOptions, acc *validationAccumulator, lo, hi int, rangeOK bool) {
	entry, found := opts.Registry.LookupTLV(t.Type, opts.Version)
	validateTypeAndValue(t, entry, found, nil, acc)

	if rangeOK && (t.Type < lo || t.Type > hi) {
		acc.addError("version_incompatible", t.Type, nil,
			"TLV type "+itoa(t.Type)+" is not admissible at version "+string(opts.Version))
	}

	for i := range t.SubTLVs {
		validateSubTLV(t.Type, t.SubTLVs[i], opts, acc)
	}
}

func validateSubTLV(parentType int, t TLV, opts ValidateOptions, acc *validationAccumulator) {
	entry, found := opts.Registry.LookupSubTLV(parentType, t.Type)
	sub := t.Type
	validateTypeAndValue(t, entry, found, &sub, acc)
	for i := range t.SubTLVs {
		validateSubTLV(t.Type, t.SubTLVs[i], opts, acc)
	}
}

// validateTypeAndValue covers passes 2 (type recognition), 3 (length
// check), and 4 (value format) for a single node.
func validateTypeAndValue(t TLV, entry RegistryEntry, found bool, sub *int, acc *validationAccumulator) {
	tlvType := t.Type

	if !found {
		if sub != nil {
			acc.addWarning("unknown_subtlv_type", tlvType, sub, "sub-TLV type "+itoa(*sub)+" not present in registry")
		} else {
			acc.addWarning("unknown_tlv_type", tlvType, nil, "TLV type "+itoa(tlvType)+" not present in registry")
		}
	}

	if found && !t.IsCompound() {
		if entry.MaxLength != Unlimited && len(t.Value) > entry.MaxLength {
			acc.addError("exceeds_max_length", tlvType, sub,
				"value length "+itoa(len(t.Value))+" exceeds registry max "+itoa(entry.MaxLength))
		}
	}

	if !t.IsCompound() {
		vt := t.ValueType
		if found {
			vt = entry.ValueType
		}
		if err := formatStrict(vt, t.Value); err != nil {
			acc.addError("invalid_value_format", tlvType, sub, err.Error())
		}
	}
}

// validateDependencies is pass 6: per spec §4.1's dependency table,
// presence of X at the top level requires presence of all of Y.
func validateDependencies(present map[int]bool, reg *Registry, acc *validationAccumulator) {
	for typ := range present {
		deps, ok := reg.Dependencies(typ)
		if !ok {
			continue
		}
		for _, dep := range deps {
			if !present[dep] {
				acc.addError("missing_dependency", typ, nil,
					"TLV type "+itoa(typ)+" requires TLV type "+itoa(dep)+" at the top level")
			}
		}
	}
}

// validateCompleteness is pass 8: the required basic set {1,2,3}.
// config_completeness = |present ∩ required| / |required| (1.0 when
// the required set is empty, spec §4.6).
func validateCompleteness(present map[int]bool, reg *Registry, acc *validationAccumulator) {
	required := reg.RequiredTLVs()
	if len(required) == 0 {
		acc.completeness = 1.0
		return
	}
	matched := 0
	for _, r := range required {
		if present[r] {
			matched++
		} else {
			acc.addWarning("incomplete_config", r, nil,
				"required TLV type "+itoa(r)+" is absent; add it for a complete configuration")
		}
	}
	acc.completeness = float64(matched) / float64(len(required))
}

func buildReport(acc *validationAccumulator) Report {
	status := StatusValid
	if len(acc.errors) > 0 {
		status = StatusInvalid
	} else if len(acc.warnings) > 0 {
		status = StatusWarning
	}
	return Report{
		Status:   status,
		Errors:   acc.errors,
		Warnings: acc.warnings,
		Info:     acc.info,
		Summary:  Summary{ConfigCompleteness: acc.completeness},
	}
}
