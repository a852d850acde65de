package filereader

import "bytes"
import "fmt"
import "strings"
import "unicode/utf8"
import "golang.org/x/text/encoding"
import "golang.org/x/text/encoding/charmap"
import "golang.org/x/text/encoding/unicode"

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// UnknownEncodingError is returned by NewDecoder for an encoding it does
// not support.
type UnknownEncodingError struct {
	Encoding string
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("unknown text encoding %q (known: %s)",
		e.Encoding, strings.Join(Encodings(), ", "))
}

var encodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"cp1252":       charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"utf8-replace": unicode.UTF8BOM,
}

// Encodings lists the names NewDecoder accepts.
func Encodings() []string {
	return []string{"utf8", "utf8-replace", "latin1", "iso-8859-1", "cp1252", "windows-1252"}
}

/*
A Decoder turns raw record bytes into text.

The default utf8 decoder is strict: a record with invalid UTF-8 is reported
as a *MalformedRecordError so the caller can skip it. utf8-replace swaps
invalid bytes for U+FFFD instead. The single byte encodings (latin1, cp1252)
decode every input. A leading UTF-8 byte order mark is always dropped.
*/
type Decoder struct {
	name string
	enc  encoding.Encoding
}

func NewDecoder(name string) (*Decoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf8", "utf-8":
		return &Decoder{name: "utf8"}, nil
	}

	enc, ok := encodings[name]
	if !ok {
		return nil, &UnknownEncodingError{Encoding: name}
	}
	return &Decoder{name: name, enc: enc}, nil
}

func (d *Decoder) Name() string {
	return d.name
}

func (d *Decoder) Decode(rec Record) (string, error) {
	if d.enc == nil {
		raw := bytes.TrimPrefix(rec.Raw, utf8BOM)
		if !utf8.Valid(raw) {
			return "", &MalformedRecordError{
				Id:     rec.Id,
				Source: rec.Source,
				Offset: invalidOffset(raw) + len(rec.Raw) - len(raw),
				Reason: "invalid UTF-8",
			}
		}
		return string(raw), nil
	}

	// encoding.Decoder carries state, so every call gets its own.
	text, err := d.enc.NewDecoder().Bytes(rec.Raw)
	if err != nil {
		return "", &MalformedRecordError{
			Id:     rec.Id,
			Source: rec.Source,
			Offset: -1,
			Reason: "cannot decode as " + d.name,
			Err:    err,
		}
	}
	return string(bytes.TrimPrefix(text, utf8BOM)), nil
}

func invalidOffset(raw []byte) int {
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
