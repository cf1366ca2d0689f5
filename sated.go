package sated

import "encoding/json"

// Decoder turns a case's raw content into a typed value. For tagged cases
// the content is the raw JSON of the content field, or nil when the field is
// absent. For the fallback case it is the raw JSON of the entire input.
//
// Decoders are black boxes to the registry: any error they return is
// propagated verbatim inside a ContentError or FallbackError.
type Decoder interface {
	Decode(content json.RawMessage) (any, error)
}

// DecoderFunc is a function adapter for Decoder. Use for custom decoders
// that don't need a struct:
//
//	sated.AddFunc(b, "Timestamp", func(content json.RawMessage) (any, error) {
//	    return time.Parse(time.RFC3339, strings.Trim(string(content), `"`))
//	})
type DecoderFunc func(content json.RawMessage) (any, error)

// Decode implements the Decoder interface.
func (f DecoderFunc) Decode(content json.RawMessage) (any, error) {
	return f(content)
}

// Case pairs a tag string with the decoder for that tag's content.
type Case struct {
	Tag     string
	Decoder Decoder
}

// validatable is the interface for payload validation.
// Compatible with github.com/go-ozzo/ozzo-validation/v4.
type validatable interface {
	Validate() error
}

// decodeAs unmarshals content into T and validates the result if T (or *T)
// implements Validate() error. Absent content decodes as JSON null.
func decodeAs[T any](content json.RawMessage) (any, error) {
	if content == nil {
		content = json.RawMessage("null")
	}

	var data T
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	if v, ok := any(data).(validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	} else if v, ok := any(&data).(validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// Union is the result of a decode: either one matched tagged case or the
// fallback, never both.
type Union struct {
	// Index is the position of the matched case in registration order,
	// or -1 when the fallback was used.
	Index int

	// Tag is the tag string of the matched case, empty for the fallback.
	Tag string

	// Value is the decoded payload for a matched case, or the decoded
	// entire input for the fallback.
	Value any
}

// IsFallback reports whether the fallback case produced this value.
func (u Union) IsFallback() bool { return u.Index < 0 }
