package marc

import "log/slog"

// ControlField is a tagged field carrying one opaque payload, such as 001
// (control number) or 008 (fixed-length data elements). It has no
// indicators and no subfields.
type ControlField[T Repr] struct {
	tag  T
	data T
}

// NewControlField creates a control field. The tag is normalized and raw
// inputs are copied.
//
//	f := marc.NewControlField("001", "fol05731351")
//	g := marc.NewControlField([]byte("001"), []byte("fol05731351"))
func NewControlField[T Repr](tag, data T) *ControlField[T] {
	return &ControlField[T]{
		tag:  normalizeTag(tag),
		data: clone(data),
	}
}

// Kind reports whether the field is carried as text or raw bytes.
func (f *ControlField[T]) Kind() Kind { return kindOf[T]() }

// IsControlField always returns true.
func (f *ControlField[T]) IsControlField() bool { return true }

// Tag returns the normalized tag.
func (f *ControlField[T]) Tag() T { return f.tag }

// TagString returns the tag as text.
func (f *ControlField[T]) TagString() string { return display(f.tag) }

// SetTag replaces the tag, normalizing it.
func (f *ControlField[T]) SetTag(tag T) { f.tag = normalizeTag(tag) }

// Data returns the payload.
func (f *ControlField[T]) Data() T { return f.data }

// Value is an alias for Data.
func (f *ControlField[T]) Value() T { return f.data }

// SetData replaces the payload.
func (f *ControlField[T]) SetData(data T) { f.data = clone(data) }

// DecodeText returns the payload as text. Raw payloads are decoded with the
// named encoding (for example "latin-1" or "utf-8") under the given policy;
// text payloads are returned unchanged. For windows-1252 the unassigned
// bytes 0x81, 0x8D, 0x8F, 0x90 and 0x9D are invalid.
func (f *ControlField[T]) DecodeText(encoding string, policy DecodePolicy) (string, error) {
	b, ok := any(f.data).([]byte)
	if !ok {
		return string(f.data), nil
	}
	return decodeBytes(b, encoding, policy)
}

// Clone creates a deep copy of the field.
func (f *ControlField[T]) Clone() *ControlField[T] {
	return &ControlField[T]{tag: clone(f.tag), data: clone(f.data)}
}

// LogValue implements the slog.LogValuer interface for structured logging.
func (f *ControlField[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tag", f.TagString()),
		slog.String("kind", f.Kind().String()),
		slog.String("data", display(f.data)),
	)
}
