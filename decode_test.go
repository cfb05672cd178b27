package marc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"latin-1", "latin_1", "ISO-8859-1", "iso-8859-1", " Latin-1 "} {
		_, canonical, err := lookupEncoding(name)
		require.NoError(t, err, name)
		assert.Equal(t, "ISO-8859-1", canonical, name)
	}
	for _, name := range []string{"utf8", "utf_8", "UTF-8"} {
		_, canonical, err := lookupEncoding(name)
		require.NoError(t, err, name)
		assert.Equal(t, "UTF-8", canonical, name)
	}

	_, _, err := lookupEncoding("klingon")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestDecodeBytesWindows1252(t *testing.T) {
	got, err := decodeBytes([]byte{0x80, '5'}, "cp1252", DecodeStrict)
	require.NoError(t, err)
	assert.Equal(t, "€5", got)

	got, err = decodeBytes([]byte{0x80, '5'}, "latin-1", DecodeStrict)
	require.NoError(t, err)
	assert.Equal(t, "\u00805", got)
}

func TestDecodeUTF8Offsets(t *testing.T) {
	_, err := decodeBytes([]byte("ok\xc3"), "utf-8", DecodeStrict)
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Offset)
	assert.Equal(t, "UTF-8", ce.Encoding)
	assert.Contains(t, ce.Error(), "at offset 2")
}

func TestDecodeUTF8Valid(t *testing.T) {
	for _, policy := range []DecodePolicy{DecodeStrict, DecodeReplace, DecodeIgnore} {
		got, err := decodeBytes([]byte("Łódź"), "utf-8", policy)
		require.NoError(t, err)
		assert.Equal(t, "Łódź", got)
	}
}

func TestDecodeWindows1252Unassigned(t *testing.T) {
	for _, c := range []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D} {
		_, err := decodeBytes([]byte{'a', c}, "cp1252", DecodeStrict)
		var ce *CodecError
		require.ErrorAs(t, err, &ce, "byte 0x%02X", c)
		assert.Equal(t, 1, ce.Offset)
		assert.ErrorIs(t, err, ErrDecode)

		got, err := decodeBytes([]byte{'a', c}, "windows-1252", DecodeReplace)
		require.NoError(t, err)
		assert.Equal(t, "a\uFFFD", got)

		got, err = decodeBytes([]byte{'a', c}, "cp1252", DecodeIgnore)
		require.NoError(t, err)
		assert.Equal(t, "a", got)
	}

	got, err := decodeBytes([]byte{0x81}, "latin-1", DecodeStrict)
	require.NoError(t, err)
	assert.Equal(t, "\u0081", got)
}
