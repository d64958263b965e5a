// Where: internal/value/value.go
// What: Tagged value variant for configuration data.
// Why: Replace ambient any-typing with an explicit, totally serializable shape.
package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the shape held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindList
	KindRecord
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	}
	return "unknown"
}

// Field is one entry of an ordered record.
type Field struct {
	Key   string
	Value Value
}

// Value is an immutable tagged variant: string, number, bool, ordered list,
// or ordered key/value record. The zero Value is the empty string.
type Value struct {
	kind    Kind
	str     string
	num     float64
	numText string
	boolean bool
	list    []Value
	record  []Field
}

// String constructs a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number constructs a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool constructs a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// List constructs an ordered list value.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Record constructs an ordered record value.
func Record(fields ...Field) Value {
	return Value{kind: KindRecord, record: fields}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// StringValue returns the underlying string when the value is a string.
func (v Value) StringValue() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// NumberValue returns the underlying number when the value is numeric.
func (v Value) NumberValue() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// BoolValue returns the underlying bool when the value is boolean.
func (v Value) BoolValue() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

// ListValue returns a copy of the list items when the value is a list.
func (v Value) ListValue() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	out := make([]Value, len(v.list))
	copy(out, v.list)
	return out, true
}

// RecordValue returns a copy of the record fields when the value is a record.
func (v Value) RecordValue() ([]Field, bool) {
	if v.kind != KindRecord {
		return nil, false
	}
	out := make([]Field, len(v.record))
	copy(out, v.record)
	return out, true
}

// FromAny converts a decoded JSON/YAML shape into a Value.
// Map keys are ordered lexically because Go maps carry no document order;
// use DecodeJSON when source order must be preserved.
func FromAny(raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return String(""), nil
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case int:
		return Number(float64(typed)), nil
	case int64:
		return Number(float64(typed)), nil
	case float64:
		return Number(typed), nil
	case []any:
		items := make([]Value, 0, len(typed))
		for _, item := range typed {
			converted, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, converted)
		}
		return List(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, key := range keys {
			converted, err := FromAny(typed[key])
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, Field{Key: key, Value: converted})
		}
		return Record(fields...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// CanonicalText serializes any value to its published text form.
// Strings pass through unchanged; scalars use their literal form; lists and
// records serialize to compact JSON preserving field order. The function is
// total: every constructible Value has a text form.
func (v Value) CanonicalText() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.numberText()
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindList, KindRecord:
		var b strings.Builder
		v.writeJSON(&b)
		return b.String()
	}
	return ""
}

func (v Value) numberText() string {
	if v.numText != "" {
		return v.numText
	}
	if v.num == math.Trunc(v.num) && math.Abs(v.num) < 1<<53 {
		return strconv.FormatInt(int64(v.num), 10)
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

func (v Value) writeJSON(b *strings.Builder) {
	switch v.kind {
	case KindString:
		b.WriteString(strconv.Quote(v.str))
	case KindNumber:
		b.WriteString(v.numberText())
	case KindBool:
		b.WriteString(strconv.FormatBool(v.boolean))
	case KindList:
		b.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				b.WriteByte(',')
			}
			item.writeJSON(b)
		}
		b.WriteByte(']')
	case KindRecord:
		b.WriteByte('{')
		for i, field := range v.record {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(field.Key))
			b.WriteByte(':')
			field.Value.writeJSON(b)
		}
		b.WriteByte('}')
	}
}
