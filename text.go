package marc

import "strings"

// String returns the field in MARCMaker form, "=TAG  DATA", with every
// space in DATA shown as a backslash. Raw fields are decoded as ISO-8859-1.
func (f *ControlField[T]) String() string {
	return "=" + display(f.tag) + "  " + strings.ReplaceAll(display(f.data), blankUnit, displayBlank)
}

// String returns the field in MARCMaker form:
//
//	=245  10$aThe pragmatic programmer : $bfrom journeyman to master /
//
// Blank indicators are shown as backslashes. Subfields follow in order with
// no separator other than the leading '$'.
func (f *DataField[T]) String() string {
	var sb strings.Builder
	sb.WriteString("=")
	sb.WriteString(display(f.tag))
	sb.WriteString("  ")
	sb.WriteString(strings.ReplaceAll(display(f.Indicators()), blankUnit, displayBlank))
	for _, sf := range f.subfields {
		sb.WriteString("$")
		sb.WriteString(display(sf.Code))
		sb.WriteString(display(sf.Value))
	}
	return sb.String()
}

// Value returns the subfield values without tag, indicators or codes: each
// value right-trimmed of whitespace, joined by a single blank.
func (f *DataField[T]) Value() T {
	values := make([]T, len(f.subfields))
	for i, sf := range f.subfields {
		values[i] = trimRight(sf.Value)
	}
	return join(values, blankUnit)
}

// FormatField returns display text like Value, but skips linkage ($6)
// subfields and, in subject fields, introduces $v, $x, $y and $z
// subdivisions with " -- ".
func (f *DataField[T]) FormatField() string {
	subject := f.IsSubjectField()
	var sb strings.Builder
	for _, sf := range f.subfields {
		code := display(sf.Code)
		if code == linkageCode {
			continue
		}
		if subject && subjectSubdivisionCodes[code] {
			sb.WriteString(subjectSeparator)
		} else {
			sb.WriteString(blankUnit)
		}
		sb.WriteString(display(sf.Value))
	}
	return strings.TrimSpace(sb.String())
}
