// Package wire implements the binary protobuf encoding of the API messages
// on top of protowire. Messages are hand-encoded; there is no generated code.
package wire

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// ContentType is the media type of the binary encoding.
const ContentType = "application/x-protobuf"

var ErrMalformed = errors.New("malformed protobuf message")

// Marshaler is implemented by every message that can be written in binary form.
type Marshaler interface {
	MarshalProto() []byte
}

// Unmarshaler is implemented by every message accepted in binary form.
type Unmarshaler interface {
	UnmarshalProto(b []byte) error
}

// --- Encoding ---

// Proto3 semantics: zero values are not written.

func AppendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func AppendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// AppendTime writes t as an RFC 3339 UTC string.
func AppendTime(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	return AppendString(b, num, FormatTime(t))
}

// AppendMessage writes an embedded message, including an empty one.
func AppendMessage(b []byte, num protowire.Number, m Marshaler) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.MarshalProto())
}

// AppendPackedEnums writes a packed repeated enum field.
func AppendPackedEnums(b []byte, num protowire.Number, vs []uint64) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// --- Decoding ---

// Field is one decoded key/value pair. Varint fields carry Varint; length
// delimited fields carry Bytes. Fixed-width fields are skipped by Range.
type Field struct {
	Num    protowire.Number
	Type   protowire.Type
	Varint uint64
	Bytes  []byte
}

func (f Field) Int64() int64   { return int64(f.Varint) }
func (f Field) Bool() bool     { return protowire.DecodeBool(f.Varint) }
func (f Field) String() string { return string(f.Bytes) }

// Time parses an RFC 3339 string field.
func (f Field) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, string(f.Bytes))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: field %d: %v", ErrMalformed, f.Num, err)
	}
	return t.UTC(), nil
}

// Enums returns the values of a repeated enum field in either packed or
// unpacked form.
func (f Field) Enums() ([]uint64, error) {
	if f.Type == protowire.VarintType {
		return []uint64{f.Varint}, nil
	}
	var out []uint64
	b := f.Bytes
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: field %d: %v", ErrMalformed, f.Num, protowire.ParseError(n))
		}
		out = append(out, v)
		b = b[n:]
	}
	return out, nil
}

// Range calls fn for every field of b in wire order. Unknown fields are
// passed through so callers can ignore them.
func Range(b []byte, fn func(Field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		f := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			f.Varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.Bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n >= 0 {
				b = b[n:]
				continue
			}
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
