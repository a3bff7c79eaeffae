/*
Package json provides injections of feature values, predicates and their
containers into JSON documents.

Documents are handled as json.RawMessage values so codecs nest: the codec
of a container takes the codecs of its elements.
*/
package json

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/pbanos/arbor/injection"
)

/*
Codec is an interface for objects that encode values of type T into
JSON documents and decode them back.
*/
type Codec[T any] interface {
	injection.Injection[T, json.RawMessage]
}

/*
UnrecognizedNodeError is the error returned when a document does not
have the shape of any variant of the type being decoded.
*/
type UnrecognizedNodeError struct {
	Document string
}

func (e *UnrecognizedNodeError) Error() string {
	return fmt.Sprintf("unrecognized node: %s", e.Document)
}

// Is makes UnrecognizedNodeError match injection.ErrMalformed.
func (e *UnrecognizedNodeError) Is(target error) bool {
	return target == injection.ErrMalformed
}

/*
MissingFieldError is the error returned when a document lacks a field
required by the variant it was recognised as.
*/
type MissingFieldError struct {
	Field    string
	Document string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("requirement failed: %s != null in %s", e.Field, e.Document)
}

// Is makes MissingFieldError match injection.ErrMalformed.
func (e *MissingFieldError) Is(target error) bool {
	return target == injection.ErrMalformed
}

/*
Field is a field of a JSON object with its value as a
standalone document.
*/
type Field struct {
	Name  string
	Value json.RawMessage
}

/*
Fields takes a document and returns the fields of the object it holds in
document order, or an *UnrecognizedNodeError if it does not hold an object.
*/
func Fields(data json.RawMessage) ([]Field, error) {
	var fields []Field
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dt jsonparser.ValueType, _ int) error {
		fields = append(fields, Field{Name: string(key), Value: document(value, dt)})
		return nil
	})
	if err != nil {
		return nil, &UnrecognizedNodeError{Document: string(data)}
	}
	return fields, nil
}

/*
Tagged takes a tag and an encoded payload and returns an object with
the payload as the value of a single field named after the tag.
*/
func Tagged(tag string, payload json.RawMessage) (json.RawMessage, error) {
	return json.Marshal(map[string]json.RawMessage{tag: payload})
}

/*
Tag takes a document and returns the name and value of its only field.
Objects with no field or more than one, and anything that is not an
object, make it return an *UnrecognizedNodeError.
*/
func Tag(data json.RawMessage) (string, json.RawMessage, error) {
	fields, err := Fields(data)
	if err != nil {
		return "", nil, err
	}
	if len(fields) != 1 {
		return "", nil, &UnrecognizedNodeError{Document: string(data)}
	}
	return fields[0].Name, fields[0].Value, nil
}

/*
Elements takes a document and returns the elements of the array it
holds in order, or an error if it does not hold an array.
*/
func Elements(data json.RawMessage) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	var elemErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, err error) {
		if err != nil {
			if elemErr == nil {
				elemErr = err
			}
			return
		}
		elems = append(elems, document(value, dt))
	})
	if err != nil || elemErr != nil {
		return nil, injection.Malformed("expected array but found %s", data)
	}
	return elems, nil
}

// IsNull returns whether the document is the JSON null literal.
func IsNull(data json.RawMessage) bool {
	_, dt, _, err := jsonparser.Get(data)
	return err == nil && dt == jsonparser.Null
}

// jsonparser hands string values over without their quotes
func document(value []byte, dt jsonparser.ValueType) json.RawMessage {
	if dt != jsonparser.String {
		return json.RawMessage(value)
	}
	doc := make([]byte, 0, len(value)+2)
	doc = append(doc, '"')
	doc = append(doc, value...)
	return append(doc, '"')
}
