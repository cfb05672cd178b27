package marc

import "strconv"

// SetIndicators assigns both indicators. Accepted forms:
//
//   - nil or an empty value: both indicators blank
//   - a two-unit T such as "01", used as-is
//   - a pair ([]T, [2]T, []any, [2]any or []int) whose elements are a
//     single unit of T, nil or empty (blank), or an int 0-9 (its digit)
//
// Anything else fails with an *InputError and leaves the indicators
// unchanged.
func (f *DataField[T]) SetIndicators(indicators any) error {
	ind1, ind2, err := parseIndicators[T](indicators)
	if err != nil {
		return err
	}
	f.ind1, f.ind2 = ind1, ind2
	return nil
}

func parseIndicators[T Repr](v any) (T, T, error) {
	switch in := v.(type) {
	case nil:
		return blank[T](), blank[T](), nil
	case T:
		switch n := unitLen(in); n {
		case 0:
			return blank[T](), blank[T](), nil
		case 2:
			ind1, ind2 := splitUnit(in)
			return ind1, ind2, nil
		default:
			return indicatorCountError[T](n)
		}
	case []T:
		return indicatorPair[T](len(in), func(i int) any { return in[i] })
	case [2]T:
		return indicatorPair[T](2, func(i int) any { return in[i] })
	case []any:
		return indicatorPair[T](len(in), func(i int) any { return in[i] })
	case [2]any:
		return indicatorPair[T](2, func(i int) any { return in[i] })
	case []int:
		return indicatorPair[T](len(in), func(i int) any { return in[i] })
	default:
		var zero T
		return zero, zero, inputError(variantName(false), ErrBadIndicatorType,
			"got %T, expected %T", v, zero)
	}
}

func indicatorPair[T Repr](n int, at func(int) any) (T, T, error) {
	if n == 0 {
		return blank[T](), blank[T](), nil
	}
	if n != 2 {
		return indicatorCountError[T](n)
	}
	var zero T
	ind1, err := resolveIndicator[T](at(0))
	if err != nil {
		return zero, zero, err
	}
	ind2, err := resolveIndicator[T](at(1))
	if err != nil {
		return zero, zero, err
	}
	return ind1, ind2, nil
}

func resolveIndicator[T Repr](v any) (T, error) {
	var zero T
	switch e := v.(type) {
	case nil:
		return blank[T](), nil
	case T:
		n := unitLen(e)
		switch n {
		case 0:
			return blank[T](), nil
		case 1:
			return clone(e), nil
		}
		return zero, inputError(variantName(false), ErrBadIndicatorCount,
			"indicator %q has %d units, expected 1", display(e), n)
	case int:
		if e < 0 || e > 9 {
			return zero, inputError(variantName(false), ErrBadIndicatorCount,
				"indicator %d is not a single digit", e)
		}
		return T(strconv.Itoa(e)), nil
	default:
		return zero, inputError(variantName(false), ErrBadIndicatorType,
			"got %T, expected %T", v, zero)
	}
}

func indicatorCountError[T Repr](n int) (T, T, error) {
	var zero T
	return zero, zero, inputError(variantName(false), ErrBadIndicatorCount,
		"got %d, expected 2", n)
}
