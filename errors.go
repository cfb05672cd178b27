package marc

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrKindMismatch      = errors.New("representation kind mismatch")
	ErrUnsupportedKind   = errors.New("unsupported representation, should be string or []byte")
	ErrBadIndicatorType  = errors.New("bad indicator type")
	ErrBadIndicatorCount = errors.New("bad indicators number")
	ErrOddSubfieldList   = errors.New("flat list of subfields should have even number of elements")
	ErrBadSubfieldList   = errors.New("bad subfield list")

	ErrNoSuchCode      = errors.New("no such subfield code")
	ErrMultipleMatches = errors.New("more than one subfield with code")

	ErrDecode          = errors.New("decode error")
	ErrEncode          = errors.New("encode error")
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// InputError reports a rejected argument. Field names the variant
// ("ControlField" or "DataField") the call was made on. Every InputError
// matches ErrInvalidInput under errors.Is.
type InputError struct {
	Field  string
	Err    error
	Detail string
}

func (ie *InputError) Error() string {
	if ie.Detail == "" {
		return fmt.Sprintf("%s: %v", ie.Field, ie.Err)
	}
	return fmt.Sprintf("%s: %v (%s)", ie.Field, ie.Err, ie.Detail)
}

func (ie *InputError) Unwrap() error { return ie.Err }

func (ie *InputError) Is(target error) bool { return target == ErrInvalidInput }

func inputError(field string, err error, format string, args ...any) error {
	return &InputError{Field: field, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// SubfieldError is returned by DataField.Set when the code does not match
// exactly one subfield.
type SubfieldError struct {
	Code  string
	Count int
	Err   error
}

func (se *SubfieldError) Error() string {
	return fmt.Sprintf("subfield %q: %v (%d matches)", se.Code, se.Err, se.Count)
}

func (se *SubfieldError) Unwrap() error { return se.Err }

// CodecError reports a byte or rune that the named encoding cannot
// represent. Offset is the byte offset in the input, or -1 when unknown.
type CodecError struct {
	Op       string // "decode" or "encode"
	Encoding string
	Offset   int
	Err      error
}

func (ce *CodecError) Error() string {
	if ce.Offset < 0 {
		return fmt.Sprintf("%s %s: %v", ce.Op, ce.Encoding, ce.Err)
	}
	return fmt.Sprintf("%s %s at offset %d: %v", ce.Op, ce.Encoding, ce.Offset, ce.Err)
}

func (ce *CodecError) Unwrap() error { return ce.Err }

// ValidationError is returned by Validate for a structurally unsound field.
type ValidationError struct {
	Tag     string
	Rule    string
	Message string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s (%s): %s", ve.Tag, ve.Rule, ve.Message)
}
