package marc

import "golang.org/x/text/encoding/charmap"

// controlEncoding is the single-byte encoding text control data is written
// in. Raw data is written unchanged.
const controlEncoding = "ISO-8859-1"

// AsMARC returns the field's wire form: the payload followed by the field
// terminator. Text payloads are encoded as ISO-8859-1; a rune outside that
// range fails with a *CodecError wrapping ErrEncode.
func (f *ControlField[T]) AsMARC() ([]byte, error) {
	return f.AppendMARC(make([]byte, 0, len(f.data)+1))
}

// AppendMARC appends the field's wire form to dst.
func (f *ControlField[T]) AppendMARC(dst []byte) ([]byte, error) {
	if b, ok := any(f.data).([]byte); ok {
		dst = append(dst, b...)
		return append(dst, FieldTerminator), nil
	}
	s := string(f.data)
	for offset, r := range s {
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, &CodecError{Op: "encode", Encoding: controlEncoding, Offset: offset, Err: ErrEncode}
		}
		dst = append(dst, c)
	}
	return append(dst, FieldTerminator), nil
}

// AsMARC returns the field's wire form: both indicators, then for every
// subfield the delimiter, code and value, then the field terminator. Text
// components are written as UTF-8. The error is always nil; it is kept so
// both field variants satisfy Field.
func (f *DataField[T]) AsMARC() ([]byte, error) {
	size := 3
	for _, sf := range f.subfields {
		size += 1 + len(sf.Code) + len(sf.Value)
	}
	return f.AppendMARC(make([]byte, 0, size))
}

// AppendMARC appends the field's wire form to dst.
func (f *DataField[T]) AppendMARC(dst []byte) ([]byte, error) {
	dst = append(dst, string(f.ind1)...)
	dst = append(dst, string(f.ind2)...)
	for _, sf := range f.subfields {
		dst = append(dst, SubfieldDelimiter)
		dst = append(dst, string(sf.Code)...)
		dst = append(dst, string(sf.Value)...)
	}
	return append(dst, FieldTerminator), nil
}
