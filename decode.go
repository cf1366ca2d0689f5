package sated

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Miss identifies why selector resolution failed. A Miss routes to the
// fallback when one is registered; otherwise it becomes the corresponding
// hard error. Content failures are not misses and never reach the fallback.
type Miss int

const (
	// MissNotAMapping: the input is not a JSON object.
	MissNotAMapping Miss = iota

	// MissNoTagField: the tag field is absent.
	MissNoTagField

	// MissTagNotString: the tag field holds a non-string value.
	MissTagNotString

	// MissUnknownTag: the tag names no registered case.
	MissUnknownTag
)

// String returns a short reason label, suitable for metric tags.
func (m Miss) String() string {
	switch m {
	case MissNotAMapping:
		return "not_a_mapping"
	case MissNoTagField:
		return "no_tag_field"
	case MissTagNotString:
		return "tag_not_string"
	case MissUnknownTag:
		return "unknown_tag"
	default:
		return "unknown"
	}
}

// Decode parses raw once into a generic tree and dispatches on the tag field.
//
// The decoding flow:
//  1. Validate and parse the input exactly once
//  2. Resolve the selector: object check, tag lookup, case lookup
//  3. On a selector miss, decode the entire input with the fallback
//  4. On a match, decode the content field with the matched case's decoder
//
// A matched case is authoritative: if its decoder fails, Decode returns a
// ContentError and never consults the fallback. An absent content field is
// passed to the decoder as JSON null.
//
// tagField and contentField are gjson paths, so a literal dot in a key must
// be escaped the way gjson expects.
func (r *Registry) Decode(raw []byte, tagField, contentField string) (Union, error) {
	if !gjson.ValidBytes(raw) {
		return Union{}, ErrInvalidJSON
	}
	return r.DecodeParsed(gjson.ParseBytes(raw), tagField, contentField)
}

// DecodeParsed dispatches on an already-parsed document. Use this when the
// surrounding framework has parsed the input itself; Decode and DecodeParsed
// are otherwise identical, and neither re-reads the original bytes.
func (r *Registry) DecodeParsed(doc gjson.Result, tagField, contentField string) (Union, error) {
	if !doc.IsObject() {
		return r.miss(doc, MissNotAMapping, tagField, "")
	}

	tag := doc.Get(tagField)
	if !tag.Exists() {
		return r.miss(doc, MissNoTagField, tagField, "")
	}
	if tag.Type != gjson.String {
		if r.strictTag {
			return Union{}, fmt.Errorf("%w: %q", ErrTagNotAString, tagField)
		}
		return r.miss(doc, MissTagNotString, tagField, "")
	}

	i, ok := r.index[tag.Str]
	if !ok {
		return r.miss(doc, MissUnknownTag, tagField, tag.Str)
	}
	c := r.cases[i]

	for _, fn := range r.hooks.onMatch {
		fn(c.Tag, i)
	}

	// Absent content decodes as null; the case decoder's own rules apply.
	var content json.RawMessage
	if res := doc.Get(contentField); res.Exists() {
		content = json.RawMessage(res.Raw)
	}

	value, err := c.Decoder.Decode(content)
	if err != nil {
		for _, fn := range r.hooks.onContentError {
			fn(c.Tag, i, err)
		}
		return Union{}, &ContentError{Index: i, Tag: c.Tag, Err: err}
	}

	return Union{Index: i, Tag: c.Tag, Value: value}, nil
}

// miss resolves a selector-resolution failure: fallback when registered,
// hard error otherwise. The fallback receives the entire input verbatim,
// tag and content fields included.
func (r *Registry) miss(doc gjson.Result, m Miss, tagField, tagValue string) (Union, error) {
	if r.fallback == nil {
		switch m {
		case MissNotAMapping:
			return Union{}, ErrNotAMapping
		case MissNoTagField:
			return Union{}, fmt.Errorf("%w: %q", ErrMissingTagField, tagField)
		case MissTagNotString:
			return Union{}, fmt.Errorf("%w: %q", ErrTagNotAString, tagField)
		default:
			return Union{}, &UnknownTagError{Value: tagValue, Known: r.Tags()}
		}
	}

	for _, fn := range r.hooks.onFallback {
		fn(m)
	}

	value, err := r.fallback.Decode(json.RawMessage(doc.Raw))
	if err != nil {
		return Union{}, &FallbackError{Err: err}
	}
	return Union{Index: -1, Value: value}, nil
}

// PeekTag reports the tag string of a document without building a registry
// or decoding any payload. It is a cheap probe for pre-dispatch checks; a
// missing field, a non-string tag, or invalid JSON all report false.
func PeekTag(raw []byte, tagField string) (string, bool) {
	res := gjson.GetBytes(raw, tagField)
	if res.Type != gjson.String {
		return "", false
	}
	return res.Str, true
}
