package marc

// ControlView is the interchange form of a control field handed to an
// object mapper such as a MARC-in-JSON writer.
type ControlView struct {
	Tag  string `json:"tag"`
	Data string `json:"data"`
}

// DataView is the interchange form of a data field. Each subfield is a
// single-entry map; order and repeated codes are preserved.
type DataView struct {
	Tag       string              `json:"tag"`
	Ind1      string              `json:"ind1"`
	Ind2      string              `json:"ind2"`
	Subfields []map[string]string `json:"subfields"`
}

// Interchange returns the interchange view of the field. Raw values are
// decoded as ISO-8859-1.
func (f *ControlField[T]) Interchange() ControlView {
	return ControlView{Tag: display(f.tag), Data: display(f.data)}
}

// Interchange returns the interchange view of the field. Raw values are
// decoded as ISO-8859-1.
func (f *DataField[T]) Interchange() DataView {
	view := DataView{
		Tag:       display(f.tag),
		Ind1:      display(f.ind1),
		Ind2:      display(f.ind2),
		Subfields: make([]map[string]string, len(f.subfields)),
	}
	for i, sf := range f.subfields {
		view.Subfields[i] = map[string]string{display(sf.Code): display(sf.Value)}
	}
	return view
}

// FromControlView builds a text control field from its interchange view.
func FromControlView(v ControlView) *ControlField[string] {
	return NewControlField(v.Tag, v.Data)
}

// FromDataView builds a text data field from its interchange view. Every
// subfield map must hold exactly one entry.
func FromDataView(v DataView) (*DataField[string], error) {
	pairs := make([]Subfield[string], 0, len(v.Subfields))
	for i, m := range v.Subfields {
		if len(m) != 1 {
			return nil, inputError(variantName(false), ErrBadSubfieldList,
				"subfield %d has %d entries, expected 1", i, len(m))
		}
		for code, value := range m {
			pairs = append(pairs, Subfield[string]{Code: code, Value: value})
		}
	}
	return NewDataField(v.Tag,
		WithIndicators([]string{v.Ind1, v.Ind2}),
		WithSubfields(pairs),
	)
}
