package marc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFieldInterchange(t *testing.T) {
	f, err := NewDataField("245",
		WithIndicators([]string{"1", "0"}),
		WithSubfields([]string{"a", "Python", "c", "Guido", "a", "again"}),
	)
	require.NoError(t, err)

	view := f.Interchange()
	assert.Equal(t, DataView{
		Tag:  "245",
		Ind1: "1",
		Ind2: "0",
		Subfields: []map[string]string{
			{"a": "Python"},
			{"c": "Guido"},
			{"a": "again"},
		},
	}, view)

	b, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"tag":"245","ind1":"1","ind2":"0","subfields":[{"a":"Python"},{"c":"Guido"},{"a":"again"}]}`,
		string(b))
}

func TestFromDataView(t *testing.T) {
	f := newTitleField(t)
	back, err := FromDataView(f.Interchange())
	require.NoError(t, err)
	assert.Equal(t, f.String(), back.String())

	_, err = FromDataView(DataView{
		Tag:       "245",
		Subfields: []map[string]string{{"a": "x", "b": "y"}},
	})
	assert.ErrorIs(t, err, ErrBadSubfieldList)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestControlFieldInterchange(t *testing.T) {
	raw := NewControlField([]byte("1"), []byte("fol05731351"))
	view := raw.Interchange()
	assert.Equal(t, ControlView{Tag: "001", Data: "fol05731351"}, view)

	b, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag":"001","data":"fol05731351"}`, string(b))

	back := FromControlView(view)
	assert.Equal(t, raw.String(), back.String())
}
