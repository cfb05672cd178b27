package marc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewControlFieldAny(t *testing.T) {
	f, err := NewControlFieldAny("1", "abc")
	require.NoError(t, err)
	assert.Equal(t, KindText, f.Kind())
	assert.Equal(t, "001", f.TagString())
	assert.True(t, f.IsControlField())

	f, err = NewControlFieldAny([]byte("1"), []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, KindRaw, f.Kind())
	cf, ok := f.(*ControlField[[]byte])
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), cf.Data())
}

func TestNewControlFieldAnyMismatch(t *testing.T) {
	cases := []struct {
		name      string
		tag, data any
		want      error
	}{
		{"text tag raw data", "001", []byte("x"), ErrKindMismatch},
		{"raw tag text data", []byte("001"), "x", ErrKindMismatch},
		{"int tag", 5, "x", ErrKindMismatch},
		{"int data", "001", 5, ErrUnsupportedKind},
		{"nil data", []byte("001"), nil, ErrUnsupportedKind},
		{"nil both", nil, nil, ErrUnsupportedKind},
		{"float tag raw data", 3.2, []byte("x"), ErrKindMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := NewControlFieldAny(tc.tag, tc.data)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorIs(t, err, tc.want)

			var ie *InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, "ControlField", ie.Field)
		})
	}
}

func TestNewDataFieldAny(t *testing.T) {
	f, err := NewDataFieldAny("245", []string{"1", "0"}, []string{"a", "Python"})
	require.NoError(t, err)
	assert.Equal(t, KindText, f.Kind())
	assert.Equal(t, "=245  10$aPython", f.String())

	f, err = NewDataFieldAny([]byte("245"), nil, [][]byte{[]byte("a"), []byte("Python")})
	require.NoError(t, err)
	assert.Equal(t, KindRaw, f.Kind())
	assert.False(t, f.IsControlField())
}

func TestNewDataFieldAnyErrors(t *testing.T) {
	f, err := NewDataFieldAny(42, nil, nil)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f, err = NewDataFieldAny([]byte("245"), nil, []string{"a", "b"})
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrBadSubfieldList)

	f, err = NewDataFieldAny("245", nil, []any{"a", []byte("b")})
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestControlFieldSetAny(t *testing.T) {
	f := NewControlField("001", "x")

	err := f.SetDataAny([]byte("y"))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.Equal(t, "x", f.Data())

	err = f.SetTagAny([]byte("5"))
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.Equal(t, "001", f.Tag())

	require.NoError(t, f.SetDataAny("y"))
	require.NoError(t, f.SetTagAny("5"))
	assert.Equal(t, "y", f.Data())
	assert.Equal(t, "005", f.Tag())
}

func TestDataFieldSetTagAny(t *testing.T) {
	f, err := NewDataField([]byte("245"))
	require.NoError(t, err)

	err = f.SetTagAny("650")
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.Equal(t, []byte("245"), f.Tag())

	require.NoError(t, f.SetTagAny([]byte("65")))
	assert.Equal(t, []byte("065"), f.Tag())
}
