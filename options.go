package marc

// Option configures a DataField during NewDataField.
type Option func(*fieldOptions)

type fieldOptions struct {
	indicators any
	subfields  any
}

// WithIndicators sets the indicators. See DataField.SetIndicators for the
// accepted forms.
func WithIndicators(indicators any) Option {
	return func(o *fieldOptions) {
		o.indicators = indicators
	}
}

// WithSubfields sets the subfields, either as a flat code/value list or as
// pairs. See DataField.SetSubfields for the accepted forms.
func WithSubfields(subfields any) Option {
	return func(o *fieldOptions) {
		o.subfields = subfields
	}
}
