package marc

// NewControlFieldAny creates a control field from values whose kind is only
// known at runtime, for example after decoding an untyped document. Tag
// and data must both be string or both be []byte.
func NewControlFieldAny(tag, data any) (Field, error) {
	switch t := tag.(type) {
	case string:
		d, ok := data.(string)
		if !ok {
			return nil, controlKindError(tag, data)
		}
		return NewControlField(t, d), nil
	case []byte:
		d, ok := data.([]byte)
		if !ok {
			return nil, controlKindError(tag, data)
		}
		return NewControlField(t, d), nil
	default:
		return nil, controlKindError(tag, data)
	}
}

func controlKindError(tag, data any) error {
	switch data.(type) {
	case string, []byte:
		return inputError(variantName(true), ErrKindMismatch,
			"tag and data types should be the same, got %T and %T", tag, data)
	default:
		return inputError(variantName(true), ErrUnsupportedKind, "got %T", data)
	}
}

// NewDataFieldAny creates a data field whose kind is taken from the
// runtime type of tag. Indicators and subfields accept the same forms as
// SetIndicators and SetSubfields.
func NewDataFieldAny(tag, indicators, subfields any) (Field, error) {
	opts := []Option{WithIndicators(indicators), WithSubfields(subfields)}
	switch t := tag.(type) {
	case string:
		return asField[string](NewDataField(t, opts...))
	case []byte:
		return asField[[]byte](NewDataField(t, opts...))
	default:
		return nil, inputError(variantName(false), ErrUnsupportedKind, "got tag of type %T", tag)
	}
}

// asField keeps a failed construction from turning into a non-nil Field
// holding a nil pointer.
func asField[T Repr](f *DataField[T], err error) (Field, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}

// SetTagAny sets the tag from a value whose kind is only known at runtime.
func (f *ControlField[T]) SetTagAny(tag any) error {
	t, err := assertKind[T](true, "tag", tag)
	if err != nil {
		return err
	}
	f.SetTag(t)
	return nil
}

// SetDataAny sets the payload from a value whose kind is only known at
// runtime.
func (f *ControlField[T]) SetDataAny(data any) error {
	d, err := assertKind[T](true, "value", data)
	if err != nil {
		return err
	}
	f.SetData(d)
	return nil
}

// SetTagAny sets the tag from a value whose kind is only known at runtime.
func (f *DataField[T]) SetTagAny(tag any) error {
	t, err := assertKind[T](false, "tag", tag)
	if err != nil {
		return err
	}
	f.SetTag(t)
	return nil
}

func assertKind[T Repr](control bool, what string, v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		return t, inputError(variantName(control), ErrKindMismatch,
			"invalid %s type %T, expected %T", what, v, t)
	}
	return t, nil
}
