package marc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	f, err := NewBuilder("245").
		Indicators("1", "0").
		Subfield("a", "Python").
		Subfield("c", "Guido").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "=245  10$aPython$cGuido", f.String())
}

func TestBuilderSubfields(t *testing.T) {
	f, err := NewBuilder([]byte("650")).
		Indicators(nil, []byte("0")).
		Subfields([][]byte{[]byte("a"), []byte("Python")}).
		Subfield([]byte("v"), []byte("Poetry.")).
		Build()
	require.NoError(t, err)
	assert.Equal(t, `=650  \0$aPython$vPoetry.`, f.String())
}

func TestBuilderErrors(t *testing.T) {
	b := NewBuilder("245").Indicators("12", "0").Subfield("a", "x")
	f, err := b.Build()
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrBadIndicatorCount)
	assert.Panics(t, func() { b.MustBuild() })

	_, err = NewBuilder("245").Subfields([]string{"a"}).Build()
	assert.ErrorIs(t, err, ErrOddSubfieldList)
}

func TestBuilderBuildIsIndependent(t *testing.T) {
	b := NewBuilder("500").Subfield("a", "one").Subfield("b", "two")
	first := b.MustBuild()

	second := b.Subfield("c", "three").MustBuild()
	assert.Equal(t, 2, first.Len())
	assert.Equal(t, 3, second.Len())

	first.AddSubfield("z", "only first")
	assert.False(t, second.Contains("z"))
}

func TestBuilderNormalizesTag(t *testing.T) {
	f := NewBuilder("42").MustBuild()
	assert.Equal(t, "042", f.Tag())
	assert.Equal(t, "  ", f.Indicators())
	assert.Equal(t, 0, f.Len())
}
