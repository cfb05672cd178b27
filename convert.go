package marc

import (
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// TextConverter maps the bytes of one payload or subfield value, for
// example MARC-8 escape sequences, to text. Conversion tables live outside
// this package.
type TextConverter func(raw []byte) (string, error)

// DecodingConverter returns a TextConverter that decodes with a named
// encoding, for sources that are plain single-byte or UTF-8 data.
func DecodingConverter(encoding string, policy DecodePolicy) TextConverter {
	return func(raw []byte) (string, error) {
		return decodeBytes(raw, encoding, policy)
	}
}

// Convert applies conv to a control field's data or to every subfield value
// of a data field and returns a new text field. Converted text is NFC
// normalized. The tag, indicators and subfield codes are carried over,
// raw ones decoded as ISO-8859-1. f is not modified.
func Convert(f Field, conv TextConverter) (Field, error) {
	switch v := f.(type) {
	case *ControlField[string]:
		return asControl(ConvertControlField(v, conv))
	case *ControlField[[]byte]:
		return asControl(ConvertControlField(v, conv))
	case *DataField[string]:
		return asField[string](ConvertDataField(v, conv))
	case *DataField[[]byte]:
		return asField[string](ConvertDataField(v, conv))
	default:
		return nil, errors.Wrapf(ErrUnsupportedKind, "convert %T", f)
	}
}

func asControl(f *ControlField[string], err error) (Field, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ConvertControlField is the typed form of Convert for control fields.
func ConvertControlField[T Repr](f *ControlField[T], conv TextConverter) (*ControlField[string], error) {
	data, err := convertValue(f.data, conv)
	if err != nil {
		return nil, errors.Wrapf(err, "convert field %s", f.TagString())
	}
	return NewControlField(display(f.tag), data), nil
}

// ConvertDataField is the typed form of Convert for data fields.
func ConvertDataField[T Repr](f *DataField[T], conv TextConverter) (*DataField[string], error) {
	out := &DataField[string]{
		tag:       display(f.tag),
		ind1:      display(f.ind1),
		ind2:      display(f.ind2),
		subfields: make([]Subfield[string], 0, len(f.subfields)),
	}
	for _, sf := range f.subfields {
		value, err := convertValue(sf.Value, conv)
		if err != nil {
			return nil, errors.Wrapf(err, "convert field %s subfield %s", f.TagString(), display(sf.Code))
		}
		out.subfields = append(out.subfields, Subfield[string]{Code: display(sf.Code), Value: value})
	}
	return out, nil
}

func convertValue[T Repr](v T, conv TextConverter) (string, error) {
	s, err := conv([]byte(string(v)))
	if err != nil {
		return "", err
	}
	return norm.NFC.String(s), nil
}
