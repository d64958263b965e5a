// Where: internal/value/decode.go
// What: Order-preserving JSON decoding into Values.
// Why: Published configuration keys must follow the source document order.
package value

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DecodeJSON reads one JSON document and converts it into a Value,
// keeping object keys in the order they appear in the document.
func DecodeJSON(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	out, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}

	// Anything after the first document is malformed input.
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("trailing data after JSON document")
	}
	return out, nil
}

// DecodeJSONString is DecodeJSON over an in-memory document.
func DecodeJSONString(doc string) (Value, error) {
	return DecodeJSON(strings.NewReader(doc))
}

func decodeValue(dec *json.Decoder) (Value, error) {
	token, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, token)
}

func decodeToken(dec *json.Decoder, token json.Token) (Value, error) {
	switch typed := token.(type) {
	case json.Delim:
		switch typed {
		case '{':
			return decodeRecord(dec)
		case '[':
			return decodeList(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", typed)
		}
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("parse number %q: %w", typed.String(), err)
		}
		return Value{kind: KindNumber, num: parsed, numText: typed.String()}, nil
	case nil:
		return String(""), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", token)
	}
}

func decodeRecord(dec *json.Decoder) (Value, error) {
	var fields []Field
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyToken)
		}
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		fields = append(fields, Field{Key: key, Value: item})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return Value{}, err
	}
	return Record(fields...), nil
}

func decodeList(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return Value{}, err
	}
	return List(items...), nil
}
