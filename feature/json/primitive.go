package json

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/buger/jsonparser"
	"github.com/pbanos/arbor/injection"
)

type primitiveCodec[T any] struct {
	name   string
	jsType jsonparser.ValueType
}

// Int returns a Codec of int values as JSON numbers.
func Int() Codec[int] {
	return &primitiveCodec[int]{"int", jsonparser.Number}
}

// Int64 returns a Codec of int64 values as JSON numbers.
func Int64() Codec[int64] {
	return &primitiveCodec[int64]{"int64", jsonparser.Number}
}

/*
Float64 returns a Codec of float64 values as JSON numbers. NaN and
infinite values cannot be encoded.
*/
func Float64() Codec[float64] {
	return &primitiveCodec[float64]{"float64", jsonparser.Number}
}

/*
String returns a Codec of strings as JSON strings. Strings that are not
valid UTF-8 cannot be encoded.
*/
func String() Codec[string] {
	return &primitiveCodec[string]{"string", jsonparser.String}
}

// Bool returns a Codec of booleans as JSON booleans.
func Bool() Codec[bool] {
	return &primitiveCodec[bool]{"bool", jsonparser.Boolean}
}

func (pc *primitiveCodec[T]) Encode(v T) (json.RawMessage, error) {
	if s, ok := any(v).(string); ok && !utf8.ValidString(s) {
		return nil, fmt.Errorf("%q is not valid UTF-8 and cannot be encoded as a JSON string", s)
	}
	return json.Marshal(v)
}

func (pc *primitiveCodec[T]) Decode(data json.RawMessage) (T, error) {
	var v T
	_, dt, _, err := jsonparser.Get(data)
	if err != nil || dt != pc.jsType {
		return v, injection.Malformed("expected %s but found %s", pc.name, data)
	}
	err = json.Unmarshal(data, &v)
	if err != nil {
		return v, injection.Malformed("decoding %s from %s: %v", pc.name, data, err)
	}
	return v, nil
}
