// file: internal/fields/value.go
// version: 1.3.0
// guid: 7d1c9e4f-2b8a-4c3d-9e6f-1a4b8c2d5e7f

package fields

import "bytes"

// Kind discriminates the closed set of value variants a field can hold.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindText
	KindInt
	KindFloat
	KindBool
	KindBytes
	KindMap
)

// Value is one metadata field value. It is a closed variant over text,
// integer, float, boolean, raw bytes, and a nested string-keyed map.
// Values are never implicitly coerced between variants; accessors for the
// wrong variant report absent.
//
// The zero Value is invalid and is never stored.
type Value struct {
	kind  Kind
	text  string
	num   int64
	fl    float64
	flag  bool
	bytes []byte
	m     map[string]Value
}

// Text wraps a UTF-8 string value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int wraps an integer value.
func Int(i int64) Value { return Value{kind: KindInt, num: i} }

// Float wraps a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, fl: f} }

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Bytes wraps a raw byte buffer. The buffer is not copied.
func Bytes(p []byte) Value { return Value{kind: KindBytes, bytes: p} }

// Map wraps a nested string-keyed map of values. The map is not copied.
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value holds any variant at all.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsText returns the text variant, or ("", false) for any other variant.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// AsInt returns the integer variant, or (0, false) for any other variant.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// AsFloat returns the float variant, or (0, false) for any other variant.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.fl, true
}

// AsBool returns the boolean variant, or (false, false) for any other
// variant.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// AsBytes returns the byte-buffer variant, or (nil, false) for any other
// variant.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.bytes, true
}

// AsMap returns the nested-map variant, or (nil, false) for any other
// variant.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// Equal reports deep equality across variants. Values of different kinds
// are never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.fl == other.fl
	case KindBool:
		return v.flag == other.flag
	case KindBytes:
		return bytes.Equal(v.bytes, other.bytes)
	case KindMap:
		if len(v.m) != len(other.m) {
			return false
		}
		for k, val := range v.m {
			o, ok := other.m[k]
			if !ok || !val.Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of the value. Byte buffers and nested maps
// are copied recursively so the clone shares no mutable state with the
// original; scalar variants are returned as-is.
func (v Value) Clone() Value {
	switch v.kind {
	case KindBytes:
		return Bytes(bytes.Clone(v.bytes))
	case KindMap:
		m := make(map[string]Value, len(v.m))
		for k, val := range v.m {
			m[k] = val.Clone()
		}
		return Map(m)
	}
	return v
}

// Interface converts the value to a plain Go type suitable for generic
// encoders (plist, JSON). Maps convert recursively.
func (v Value) Interface() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return v.num
	case KindFloat:
		return v.fl
	case KindBool:
		return v.flag
	case KindBytes:
		return v.bytes
	case KindMap:
		out := make(map[string]any, len(v.m))
		for k, val := range v.m {
			out[k] = val.Interface()
		}
		return out
	}
	return nil
}

// FromInterface converts a plain decoded value back into a Value. It
// accepts the numeric widths generic decoders produce. Unconvertible
// input reports ok == false.
func FromInterface(in any) (Value, bool) {
	switch t := in.(type) {
	case string:
		return Text(t), true
	case bool:
		return Bool(t), true
	case int:
		return Int(int64(t)), true
	case int32:
		return Int(int64(t)), true
	case int64:
		return Int(t), true
	case uint64:
		return Int(int64(t)), true
	case float32:
		return Float(float64(t)), true
	case float64:
		return Float(t), true
	case []byte:
		return Bytes(t), true
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, raw := range t {
			v, ok := FromInterface(raw)
			if !ok {
				// Skip unconvertible entries rather than failing the
				// whole map.
				continue
			}
			m[k] = v
		}
		return Map(m), true
	}
	return Value{}, false
}
