package marc

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// encodingAliases maps common spellings that are not IANA aliases to an
// IANA name.
var encodingAliases = map[string]string{
	"latin-1": "ISO-8859-1",
	"latin_1": "ISO-8859-1",
	"utf8":    "UTF-8",
	"utf_8":   "UTF-8",
	"cp1252":  "windows-1252",
	"ascii":   "US-ASCII",
}

func lookupEncoding(name string) (encoding.Encoding, string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := encodingAliases[key]; ok {
		key = alias
	}
	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		return nil, "", errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}
	canonical, err := ianaindex.MIME.Name(enc)
	if err != nil {
		if canonical, err = ianaindex.IANA.Name(enc); err != nil {
			canonical = key
		}
	}
	return enc, canonical, nil
}

// decodeBytes decodes b with the named encoding. Single-byte charmaps and
// UTF-8 are decoded natively so strict errors carry the byte offset.
func decodeBytes(b []byte, name string, policy DecodePolicy) (string, error) {
	enc, canonical, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	if cm, ok := enc.(*charmap.Charmap); ok {
		return decodeCharmap(cm, canonical, b, policy)
	}
	if enc == unicode.UTF8 {
		return decodeUTF8(b, policy)
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", &CodecError{Op: "decode", Encoding: canonical, Offset: -1, Err: errors.Wrap(ErrDecode, err.Error())}
	}
	s := string(out)
	if !strings.ContainsRune(s, utf8.RuneError) {
		return s, nil
	}
	switch policy {
	case DecodeStrict:
		return "", &CodecError{Op: "decode", Encoding: canonical, Offset: -1, Err: ErrDecode}
	case DecodeIgnore:
		return strings.ReplaceAll(s, string(utf8.RuneError), ""), nil
	default:
		return s, nil
	}
}

// windows1252Unassigned are the bytes windows-1252 leaves unassigned.
// charmap.Windows1252 maps them to C1 controls; they are decoded as invalid.
var windows1252Unassigned = [256]bool{0x81: true, 0x8D: true, 0x8F: true, 0x90: true, 0x9D: true}

func decodeCharmap(cm *charmap.Charmap, name string, b []byte, policy DecodePolicy) (string, error) {
	var sb strings.Builder
	sb.Grow(len(b))
	for i, c := range b {
		r := cm.DecodeByte(c)
		if cm == charmap.Windows1252 && windows1252Unassigned[c] {
			r = utf8.RuneError
		}
		if r == utf8.RuneError {
			switch policy {
			case DecodeStrict:
				return "", &CodecError{Op: "decode", Encoding: name, Offset: i, Err: ErrDecode}
			case DecodeIgnore:
				continue
			}
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

func decodeUTF8(b []byte, policy DecodePolicy) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			switch policy {
			case DecodeStrict:
				return "", &CodecError{Op: "decode", Encoding: "UTF-8", Offset: i, Err: ErrDecode}
			case DecodeReplace:
				sb.WriteRune(utf8.RuneError)
			}
			i++
			continue
		}
		sb.WriteRune(r)
		i += size
	}
	return sb.String(), nil
}
