package marc

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// kindOf reports the representation kind of T.
func kindOf[T Repr]() Kind {
	var zero T
	if _, ok := any(zero).([]byte); ok {
		return KindRaw
	}
	return KindText
}

// normalizeTag left-pads tags shorter than TagLen with the zero unit.
// Tags of TagLen units or more are returned unchanged.
func normalizeTag[T Repr](tag T) T {
	n := unitLen(tag)
	if n >= TagLen {
		return clone(tag)
	}
	return T(strings.Repeat(zeroUnit, TagLen-n) + string(tag))
}

// unitLen counts bytes for raw values and runes for text values.
func unitLen[T Repr](v T) int {
	if kindOf[T]() == KindRaw {
		return len(v)
	}
	return utf8.RuneCountInString(string(v))
}

// splitUnit splits v after its first unit. v must not be empty.
func splitUnit[T Repr](v T) (T, T) {
	s := string(v)
	size := 1
	if kindOf[T]() == KindText {
		_, size = utf8.DecodeRuneInString(s)
	}
	return T(s[:size]), T(s[size:])
}

// clone returns a copy of v that shares no memory with the caller.
func clone[T Repr](v T) T {
	if b, ok := any(v).([]byte); ok {
		if b == nil {
			return v
		}
		return any(bytes.Clone(b)).(T)
	}
	return v
}

func blank[T Repr]() T { return T(blankUnit) }

func equal[T Repr](a, b T) bool { return string(a) == string(b) }

// display renders v as text. Raw values are decoded as ISO-8859-1, which
// maps every byte to a rune and therefore never fails.
func display[T Repr](v T) string {
	b, ok := any(v).([]byte)
	if !ok {
		return string(v)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(c))
	}
	return sb.String()
}

// trimRight strips trailing whitespace. Raw values only lose ASCII
// whitespace, text values lose any Unicode space.
func trimRight[T Repr](v T) T {
	if b, ok := any(v).([]byte); ok {
		return any(bytes.TrimRight(b, " \t\n\v\f\r")).(T)
	}
	return T(strings.TrimRightFunc(string(v), unicode.IsSpace))
}

func join[T Repr](parts []T, sep string) T {
	if kindOf[T]() == KindRaw {
		raw := make([][]byte, len(parts))
		for i, p := range parts {
			raw[i] = any(p).([]byte)
		}
		return any(bytes.Join(raw, []byte(sep))).(T)
	}
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = string(p)
	}
	return T(strings.Join(strs, sep))
}

func variantName(control bool) string {
	if control {
		return "ControlField"
	}
	return "DataField"
}
