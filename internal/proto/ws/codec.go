// Package ws holds the typed WebSocket envelope exchanged with the LightSpeedDuel
// server and its protobuf wire encoding. Field numbers follow ws.proto.
package ws

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	// ErrEmptyEnvelope is returned by Marshal when the envelope has no payload set.
	ErrEmptyEnvelope = errors.New("ws: envelope has no payload")
	// ErrNilEnvelope is returned when a nil envelope is passed to Marshal or Unmarshal.
	ErrNilEnvelope = errors.New("ws: nil envelope")
)

// message is implemented by every wire type in this package.
type message interface {
	appendTo(b []byte) []byte
	unmarshal(b []byte) error
}

// Marshal encodes an envelope into a single binary frame.
func Marshal(env *WsEnvelope) ([]byte, error) {
	if env == nil {
		return nil, ErrNilEnvelope
	}
	if env.Payload == nil {
		return nil, ErrEmptyEnvelope
	}
	return env.appendTo(nil), nil
}

// Unmarshal decodes one binary frame into env. Unknown fields are skipped, so a
// frame carrying a payload this client does not know leaves env.Payload nil.
func Unmarshal(data []byte, env *WsEnvelope) error {
	if env == nil {
		return ErrNilEnvelope
	}
	env.Payload = nil
	return env.unmarshal(data)
}

// field is one decoded tag/value pair.
type field struct {
	typ protowire.Type
	u64 uint64
	raw []byte
}

func (f field) double() float64 {
	if f.typ != protowire.Fixed64Type {
		return 0
	}
	return math.Float64frombits(f.u64)
}

func (f field) doublePtr() *float64 {
	if f.typ != protowire.Fixed64Type {
		return nil
	}
	v := math.Float64frombits(f.u64)
	return &v
}

func (f field) str() string {
	if f.typ != protowire.BytesType {
		return ""
	}
	return string(f.raw)
}

func (f field) boolean() bool {
	return f.typ == protowire.VarintType && f.u64 != 0
}

func (f field) int32() int32 {
	if f.typ != protowire.VarintType {
		return 0
	}
	return int32(f.u64)
}

func (f field) bytes() []byte {
	if f.typ != protowire.BytesType {
		return nil
	}
	return f.raw
}

// decodeFields walks every field in b and hands it to fn. Groups and other
// types the schema never uses are consumed and skipped.
func decodeFields(b []byte, fn func(num protowire.Number, f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("ws: read tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		f := field{typ: typ}
		switch typ {
		case protowire.VarintType:
			f.u64, n = protowire.ConsumeVarint(b)
		case protowire.Fixed64Type:
			f.u64, n = protowire.ConsumeFixed64(b)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			f.u64 = uint64(v)
		case protowire.BytesType:
			f.raw, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("ws: field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(num, f); err != nil {
			return err
		}
	}
	return nil
}

// decodeMessage decodes a length-delimited submessage field into m.
func decodeMessage(num protowire.Number, f field, m message) error {
	if err := m.unmarshal(f.bytes()); err != nil {
		return fmt.Errorf("ws: field %d: %w", num, err)
	}
	return nil
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 && !math.Signbit(v) {
		return b
	}
	return appendDoubleAlways(b, num, v)
}

func appendDoubleAlways(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendOptionalDouble(b []byte, num protowire.Number, v *float64) []byte {
	if v == nil {
		return b
	}
	return appendDoubleAlways(b, num, *v)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	return appendStringAlways(b, num, s)
}

func appendStringAlways(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeBool(v))
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendMessage(b []byte, num protowire.Number, m message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendTo(nil))
}
