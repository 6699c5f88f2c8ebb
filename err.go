package bindocsis

/*
err.go contains the error taxonomy and error constructors used
throughout this package. See spec §7 for the policy this implements:
every fault is a typed result, never an implicit recovery, and decoder
faults carry a byte offset plus the ancestor TLV-type chain leading to
the fault.
*/

import (
	"errors"
	"sync"
)

/*
ErrorKind enumerates the error taxonomy named in spec §7. file_error
and mic_error are declared here because the taxonomy names them, but
this package never constructs them itself -- they exist for the
excluded file I/O and MIC-generation collaborators.
*/
type ErrorKind string

const (
	KindParse      ErrorKind = "parse_error"
	KindValidation ErrorKind = "validation_error"
	KindGeneration ErrorKind = "generation_error"
	KindFile       ErrorKind = "file_error"
	KindMIC        ErrorKind = "mic_error"
	KindTLV        ErrorKind = "tlv_error"
	KindFormat     ErrorKind = "format_error"
)

/*
CodecError is the structured fault type raised by the binary and
structured codecs. Offset is relative to the original top-level input;
Path is the ancestor TLV-type chain (outermost first) leading to the
node at which the fault occurred. Reason, when set, names a stable
sub-classification (e.g. "exceeds_max_length") for programmatic
matching independent of Message's prose.
*/
type CodecError struct {
	Kind    ErrorKind
	Reason  string
	Message string
	Offset  int
	Path    []int
}

func (e *CodecError) Error() string {
	b := newStrBuilder()
	b.WriteString(string(e.Kind))
	if e.Reason != "" {
		b.WriteString(":")
		b.WriteString(e.Reason)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Path) > 0 {
		parts := make([]string, len(e.Path))
		for i, t := range e.Path {
			parts[i] = itoa(t)
		}
		b.WriteString(" (path: ")
		b.WriteString(join(parts, ">"))
		b.WriteString(")")
	}
	if e.Offset >= 0 {
		b.WriteString(" (offset: ")
		b.WriteString(itoa(e.Offset))
		b.WriteString(")")
	}
	return b.String()
}

func newCodecErr(kind ErrorKind, reason, message string, offset int, path []int) *CodecError {
	p := append([]int(nil), path...)
	return &CodecError{Kind: kind, Reason: reason, Message: message, Offset: offset, Path: p}
}

/*
mkerr returns a plain sentinel-style error, mirroring the teacher's
errors.New alias.
*/
var mkerr func(string) error = errors.New

var (
	errorNilRegistry       error = mkerr("nil Registry supplied to decode/encode/validate operation")
	errorEmptyInput        error = mkerr("empty input")
	errorTruncatedTLV      error = mkerr("truncated TLV: declared length overruns buffer")
	errorTruncatedLength   error = mkerr("truncated length field")
	errorIndefiniteLength  error = mkerr("indefinite length not permitted")
	errorReservedTLVZero   error = mkerr("TLV type 0 encountered without reserved-no-op dialect flag")
	errorUnsupportedDialect error = mkerr("unsupported length dialect")
	errorUnsupportedVersion error = mkerr("unrecognized DOCSIS version")
	errorNegativeLength    error = mkerr("negative length")
)

var errCache sync.Map

/*
mkerrf builds (and caches) a templated error from string/int parts,
mirroring the teacher's mkerrf in err.go.
*/
func mkerrf(parts ...any) error {
	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		default:
			b.WriteString("<unsupported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
