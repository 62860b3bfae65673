// Package wire encodes vectors in the protobuf wire format of
//
//	message Position { float x = 1; float y = 2; }
//	message Path     { repeated Position points = 1; }
//
// so positions can be exchanged with game protocols without generated code.
package wire

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"gamemath/internal/vector"
)

// ErrMalformed is returned for truncated or mistyped messages.
var ErrMalformed = errors.New("wire: malformed message")

const (
	fieldX      protowire.Number = 1
	fieldY      protowire.Number = 2
	fieldPoints protowire.Number = 1
)

// AppendPosition appends the Position encoding of v to b.
// As in proto3, a component whose bits are all zero is omitted; -0 and NaN are kept.
func AppendPosition(b []byte, v vector.Vector2f) []byte {
	b = appendFloat(b, fieldX, v.X)
	b = appendFloat(b, fieldY, v.Y)
	return b
}

// SizePosition returns the encoded size of v.
func SizePosition(v vector.Vector2f) int {
	return sizeFloat(fieldX, v.X) + sizeFloat(fieldY, v.Y)
}

// ConsumePosition decodes a complete Position message.
// Unknown fields are skipped and the last value of a repeated field wins.
func ConsumePosition(b []byte) (vector.Vector2f, error) {
	var v vector.Vector2f
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return vector.Vector2f{}, malformed("tag", protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case fieldX, fieldY:
			if typ != protowire.Fixed32Type {
				return vector.Vector2f{}, fmt.Errorf("%w: field %d has wire type %d", ErrMalformed, num, typ)
			}
			bits, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return vector.Vector2f{}, malformed("float", protowire.ParseError(n))
			}
			b = b[n:]
			if num == fieldX {
				v.X = math.Float32frombits(bits)
			} else {
				v.Y = math.Float32frombits(bits)
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return vector.Vector2f{}, malformed("unknown field", protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return v, nil
}

// AppendPath appends a Path message holding points to b.
func AppendPath(b []byte, points []vector.Vector2f) []byte {
	for _, p := range points {
		b = protowire.AppendTag(b, fieldPoints, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(SizePosition(p)))
		b = AppendPosition(b, p)
	}
	return b
}

// ConsumePath decodes a complete Path message.
func ConsumePath(b []byte) ([]vector.Vector2f, error) {
	var points []vector.Vector2f
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, malformed("tag", protowire.ParseError(n))
		}
		b = b[n:]

		if num != fieldPoints {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, malformed("unknown field", protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		if typ != protowire.BytesType {
			return nil, fmt.Errorf("%w: field %d has wire type %d", ErrMalformed, num, typ)
		}

		msg, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, malformed("point", protowire.ParseError(n))
		}
		b = b[n:]

		p, err := ConsumePosition(msg)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", len(points), err)
		}
		points = append(points, p)
	}
	return points, nil
}

func appendFloat(b []byte, num protowire.Number, f float32) []byte {
	bits := math.Float32bits(f)
	if bits == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, bits)
}

func sizeFloat(num protowire.Number, f float32) int {
	if math.Float32bits(f) == 0 {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeFixed32()
}

func malformed(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformed, what, err)
}
