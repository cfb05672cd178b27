// Package marc models a single field of a MARC 21 bibliographic record.
//
// A field is either a ControlField (tag plus one opaque payload, tags 001
// to 009) or a DataField (tag, two indicators and an ordered list of
// code/value subfields). Both are generic over their representation: text
// (string) or raw bytes ([]byte). A field holds exactly one representation
// for all of its parts.
//
//	f, err := marc.NewDataField("245",
//		marc.WithIndicators("10"),
//		marc.WithSubfields([]string{"a", "The pragmatic programmer : ", "b", "from journeyman to master /"}),
//	)
//
// AsMARC produces the ISO 2709 field body without the directory entry:
//
//	control: DATA 0x1E
//	data:    IND1 IND2 (0x1F CODE VALUE)* 0x1E
//
// String renders the MARCMaker line form (=245  10$a...), Value joins the
// subfield values, and FormatField produces display text with subject
// subdivisions separated by " -- ".
//
// Record assembly, MARC-8 tables and file I/O live outside this package.
// Convert accepts a TextConverter for legacy character sets, and
// Interchange exposes views for JSON style mappers.
package marc
