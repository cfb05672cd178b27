package marc

// Builder assembles a DataField step by step. The first error encountered
// is kept and returned by Build.
type Builder[T Repr] struct {
	field  *DataField[T]
	errors []error
}

func NewBuilder[T Repr](tag T) *Builder[T] {
	return &Builder[T]{field: &DataField[T]{
		tag:  normalizeTag(tag),
		ind1: blank[T](),
		ind2: blank[T](),
	}}
}

func (b *Builder[T]) Indicators(ind1, ind2 T) *Builder[T] {
	if err := b.field.SetIndicators([2]T{ind1, ind2}); err != nil {
		b.errors = append(b.errors, err)
	}
	return b
}

func (b *Builder[T]) Subfield(code, value T) *Builder[T] {
	b.field.AddSubfield(code, value)
	return b
}

func (b *Builder[T]) Subfields(subfields any) *Builder[T] {
	list, err := parseSubfields[T](subfields)
	if err != nil {
		b.errors = append(b.errors, err)
		return b
	}
	b.field.subfields = append(b.field.subfields, list...)
	return b
}

func (b *Builder[T]) Build() (*DataField[T], error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	f := b.field
	b.field = f.Clone() // the builder stays usable without sharing state
	return f, nil
}

func (b *Builder[T]) MustBuild() *DataField[T] {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
