package marc

import (
	"iter"
	"log/slog"
)

// DataField is a structured (variable data) field: a tag, two indicators
// and an ordered list of subfields. Subfield codes may repeat and their
// order is significant.
//
// A DataField is not safe for concurrent mutation, and its subfield list
// must not be modified while an iteration from All is in progress.
type DataField[T Repr] struct {
	tag       T
	ind1      T
	ind2      T
	subfields []Subfield[T]
}

// NewDataField creates a data field with blank indicators and no subfields,
// then applies the options in order.
//
//	f, err := marc.NewDataField("245",
//		marc.WithIndicators("01"),
//		marc.WithSubfields([]string{"a", "Huckleberry Finn: ", "b", "An American Odyssey"}),
//	)
func NewDataField[T Repr](tag T, opts ...Option) (*DataField[T], error) {
	f := &DataField[T]{
		tag:  normalizeTag(tag),
		ind1: blank[T](),
		ind2: blank[T](),
	}
	var o fieldOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := f.SetIndicators(o.indicators); err != nil {
		return nil, err
	}
	if err := f.SetSubfields(o.subfields); err != nil {
		return nil, err
	}
	return f, nil
}

// Kind reports whether the field is carried as text or raw bytes.
func (f *DataField[T]) Kind() Kind { return kindOf[T]() }

// IsControlField always returns false.
func (f *DataField[T]) IsControlField() bool { return false }

// Tag returns the normalized tag.
func (f *DataField[T]) Tag() T { return f.tag }

// TagString returns the tag as text.
func (f *DataField[T]) TagString() string { return display(f.tag) }

// SetTag replaces the tag, normalizing it.
func (f *DataField[T]) SetTag(tag T) { f.tag = normalizeTag(tag) }

// Indicator1 returns the first indicator.
func (f *DataField[T]) Indicator1() T { return f.ind1 }

// Indicator2 returns the second indicator.
func (f *DataField[T]) Indicator2() T { return f.ind2 }

// Indicators returns both indicators as one two-unit value.
func (f *DataField[T]) Indicators() T {
	return T(string(f.ind1) + string(f.ind2))
}

// IsSubjectField reports whether the tag starts with '6'.
func (f *DataField[T]) IsSubjectField() bool {
	return len(f.tag) > 0 && f.tag[0] == subjectTagPrefix
}

// Len returns the number of subfields.
func (f *DataField[T]) Len() int { return len(f.subfields) }

// Subfields returns a copy of the subfield list.
func (f *DataField[T]) Subfields() []Subfield[T] {
	out := make([]Subfield[T], len(f.subfields))
	copy(out, f.subfields)
	return out
}

// All iterates over code/value pairs in field order. Each call to the
// returned sequence starts from the first subfield.
func (f *DataField[T]) All() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for _, sf := range f.subfields {
			if !yield(sf.Code, sf.Value) {
				return
			}
		}
	}
}

// Clone creates a deep copy of the field.
func (f *DataField[T]) Clone() *DataField[T] {
	c := &DataField[T]{
		tag:  clone(f.tag),
		ind1: clone(f.ind1),
		ind2: clone(f.ind2),
	}
	if f.subfields != nil {
		c.subfields = make([]Subfield[T], len(f.subfields))
		for i, sf := range f.subfields {
			c.subfields[i] = Subfield[T]{Code: clone(sf.Code), Value: clone(sf.Value)}
		}
	}
	return c
}

// LogValue implements the slog.LogValuer interface for structured logging.
func (f *DataField[T]) LogValue() slog.Value {
	subfieldArgs := make([]any, 0, len(f.subfields))
	for _, sf := range f.subfields {
		subfieldArgs = append(subfieldArgs, slog.String(display(sf.Code), display(sf.Value)))
	}
	return slog.GroupValue(
		slog.String("tag", f.TagString()),
		slog.String("kind", f.Kind().String()),
		slog.String("indicators", display(f.Indicators())),
		slog.Group("subfields", subfieldArgs...),
	)
}
