package marc

import "log/slog"

// Repr is the set of representations a field can be carried in: text
// (string) or raw bytes ([]byte). A field instance uses exactly one of them
// for its tag, data, indicators, subfield codes and values.
type Repr interface {
	string | []byte
}

// Kind names the representation of a field at runtime.
type Kind int

const (
	KindText Kind = iota
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// DecodePolicy controls what DecodeText does with bytes that are invalid in
// the requested encoding.
type DecodePolicy int

const (
	DecodeStrict  DecodePolicy = iota // fail with a *CodecError
	DecodeReplace                     // substitute U+FFFD
	DecodeIgnore                      // drop the offending bytes
)

// Subfield is a single code/value pair inside a DataField.
type Subfield[T Repr] struct {
	Code  T
	Value T
}

// Field is implemented by every instantiation of ControlField and DataField.
// It is what a record assembler holds when it does not care about the kind.
type Field interface {
	Kind() Kind
	IsControlField() bool
	// TagString returns the normalized tag, decoded for display when raw.
	TagString() string
	AsMARC() ([]byte, error)
	AppendMARC(dst []byte) ([]byte, error)
	Validate() error
	String() string
	slog.LogValuer
}

var (
	_ Field = (*ControlField[string])(nil)
	_ Field = (*ControlField[[]byte])(nil)
	_ Field = (*DataField[string])(nil)
	_ Field = (*DataField[[]byte])(nil)
)
