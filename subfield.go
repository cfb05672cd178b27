package marc

// SetSubfields replaces the whole subfield list. Accepted forms:
//
//   - nil or an empty slice: no subfields
//   - a flat []T or []any alternating code, value, code, value, ...
//   - pairs: []Subfield[T], [][2]T, [][]T (each of length 2) or []any of
//     such pairs
//
// Every pair is checked as AddSubfieldAny would check it. On error the
// previous list is kept.
func (f *DataField[T]) SetSubfields(subfields any) error {
	list, err := parseSubfields[T](subfields)
	if err != nil {
		return err
	}
	f.subfields = list
	return nil
}

// AddSubfield appends a code/value pair. Duplicate codes are accepted.
//
//	f.AddSubfield("u", "http://www.loc.gov")
func (f *DataField[T]) AddSubfield(code, value T) {
	f.subfields = append(f.subfields, Subfield[T]{Code: clone(code), Value: clone(value)})
}

// AddSubfieldAny appends a code/value pair whose kinds are only known at
// runtime. The value must be of the field's kind and the code of the
// value's kind.
func (f *DataField[T]) AddSubfieldAny(code, value any) error {
	sf, err := subfieldOf[T](code, value)
	if err != nil {
		return err
	}
	f.subfields = append(f.subfields, sf)
	return nil
}

// DeleteSubfield removes the first subfield with the given code and returns
// its value. ok is false when no subfield matched.
func (f *DataField[T]) DeleteSubfield(code T) (value T, ok bool) {
	idx := f.index(code)
	if idx < 0 {
		return value, false
	}
	value = f.subfields[idx].Value
	f.subfields = append(f.subfields[:idx], f.subfields[idx+1:]...)
	return value, true
}

// Get returns the value of the first subfield with the given code.
//
//	title, ok := f.Get("a")
func (f *DataField[T]) Get(code T) (T, bool) {
	if idx := f.index(code); idx >= 0 {
		return f.subfields[idx].Value, true
	}
	var zero T
	return zero, false
}

// Contains reports whether at least one subfield has the given code.
func (f *DataField[T]) Contains(code T) bool {
	return f.index(code) >= 0
}

// Set replaces the value of the only subfield with the given code. It fails
// with ErrNoSuchCode when no subfield has the code and with
// ErrMultipleMatches when more than one does.
func (f *DataField[T]) Set(code, value T) error {
	idx, count := -1, 0
	for i, sf := range f.subfields {
		if equal(sf.Code, code) {
			if idx < 0 {
				idx = i
			}
			count++
		}
	}
	switch {
	case count == 0:
		return &SubfieldError{Code: display(code), Err: ErrNoSuchCode}
	case count > 1:
		return &SubfieldError{Code: display(code), Count: count, Err: ErrMultipleMatches}
	}
	f.subfields[idx].Value = clone(value)
	return nil
}

// GetSubfields returns the values of all subfields whose code is one of
// codes, in field order.
//
//	f.GetSubfields("a", "b", "z")
func (f *DataField[T]) GetSubfields(codes ...T) []T {
	values := make([]T, 0)
	for _, sf := range f.subfields {
		for _, code := range codes {
			if equal(sf.Code, code) {
				values = append(values, sf.Value)
				break
			}
		}
	}
	return values
}

func (f *DataField[T]) index(code T) int {
	for i, sf := range f.subfields {
		if equal(sf.Code, code) {
			return i
		}
	}
	return -1
}

func subfieldOf[T Repr](code, value any) (Subfield[T], error) {
	var zero T
	v, ok := value.(T)
	if !ok {
		return Subfield[T]{}, inputError(variantName(false), ErrKindMismatch,
			"invalid value type %T, should be %T", value, zero)
	}
	c, ok := code.(T)
	if !ok {
		return Subfield[T]{}, inputError(variantName(false), ErrKindMismatch,
			"code and value types should be the same, got %T and %T", code, value)
	}
	return Subfield[T]{Code: clone(c), Value: clone(v)}, nil
}

func parseSubfields[T Repr](v any) ([]Subfield[T], error) {
	switch in := v.(type) {
	case nil:
		return nil, nil
	case []T:
		return flatSubfields[T](len(in), func(i int) any { return in[i] })
	case []Subfield[T]:
		return pairSubfields[T](len(in), func(i int) (any, any, bool) { return in[i].Code, in[i].Value, true })
	case [][2]T:
		return pairSubfields[T](len(in), func(i int) (any, any, bool) { return in[i][0], in[i][1], true })
	case [][]T:
		return pairSubfields[T](len(in), func(i int) (any, any, bool) {
			if len(in[i]) != 2 {
				return nil, nil, false
			}
			return in[i][0], in[i][1], true
		})
	case []any:
		if len(in) == 0 {
			return nil, nil
		}
		if _, ok := in[0].(T); ok {
			return flatSubfields[T](len(in), func(i int) any { return in[i] })
		}
		return pairSubfields[T](len(in), func(i int) (any, any, bool) { return anyPair[T](in[i]) })
	default:
		return nil, inputError(variantName(false), ErrBadSubfieldList, "unsupported subfield list type %T", v)
	}
}

func flatSubfields[T Repr](n int, at func(int) any) ([]Subfield[T], error) {
	if n == 0 {
		return nil, nil
	}
	if n%2 != 0 {
		return nil, inputError(variantName(false), ErrOddSubfieldList, "got %d elements", n)
	}
	list := make([]Subfield[T], 0, n/2)
	for i := 0; i < n; i += 2 {
		sf, err := subfieldOf[T](at(i), at(i+1))
		if err != nil {
			return nil, err
		}
		list = append(list, sf)
	}
	return list, nil
}

func pairSubfields[T Repr](n int, at func(int) (any, any, bool)) ([]Subfield[T], error) {
	if n == 0 {
		return nil, nil
	}
	list := make([]Subfield[T], 0, n)
	for i := 0; i < n; i++ {
		code, value, ok := at(i)
		if !ok {
			return nil, inputError(variantName(false), ErrBadSubfieldList, "element %d is not a code/value pair", i)
		}
		sf, err := subfieldOf[T](code, value)
		if err != nil {
			return nil, err
		}
		list = append(list, sf)
	}
	return list, nil
}

func anyPair[T Repr](v any) (any, any, bool) {
	switch p := v.(type) {
	case Subfield[T]:
		return p.Code, p.Value, true
	case [2]T:
		return p[0], p[1], true
	case [2]any:
		return p[0], p[1], true
	case []T:
		if len(p) == 2 {
			return p[0], p[1], true
		}
	case []any:
		if len(p) == 2 {
			return p[0], p[1], true
		}
	}
	return nil, nil, false
}
