package marc

import (
	"fmt"
	"strings"
)

// Rule names reported in ValidationError.Rule.
const (
	RuleCodeLength   = "code_length"
	RuleReservedByte = "reserved_byte"
)

// reservedBytes may not appear inside any component of a field: they
// delimit subfields, fields and records on the wire.
var reservedBytes = string([]byte{SubfieldDelimiter, FieldTerminator, RecordTerminator})

// Validate checks that the field encodes unambiguously: no component holds
// a delimiter or terminator byte.
func (f *ControlField[T]) Validate() error {
	tag := f.TagString()
	if err := checkReserved(tag, "tag", f.tag); err != nil {
		return err
	}
	return checkReserved(tag, "data", f.data)
}

// Validate checks that the field encodes unambiguously: every subfield code
// is exactly one unit and no component holds a delimiter or terminator
// byte. A field that passes encodes with a single field terminator.
func (f *DataField[T]) Validate() error {
	tag := f.TagString()
	if err := checkReserved(tag, "tag", f.tag); err != nil {
		return err
	}
	if err := checkReserved(tag, "indicators", f.Indicators()); err != nil {
		return err
	}
	for i, sf := range f.subfields {
		if n := unitLen(sf.Code); n != 1 {
			return &ValidationError{
				Tag:     tag,
				Rule:    RuleCodeLength,
				Message: fmt.Sprintf("subfield %d code %q has %d units, expected 1", i, display(sf.Code), n),
			}
		}
		if err := checkReserved(tag, fmt.Sprintf("subfield %d code", i), sf.Code); err != nil {
			return err
		}
		if err := checkReserved(tag, fmt.Sprintf("subfield %d value", i), sf.Value); err != nil {
			return err
		}
	}
	return nil
}

func checkReserved[T Repr](tag, what string, v T) error {
	s := string(v)
	if i := strings.IndexAny(s, reservedBytes); i >= 0 {
		return &ValidationError{
			Tag:     tag,
			Rule:    RuleReservedByte,
			Message: fmt.Sprintf("%s contains byte 0x%02X at offset %d", what, s[i], i),
		}
	}
	return nil
}
