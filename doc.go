// Package sated decodes adjacently tagged unions from JSON without silently
// falling back on validation errors.
//
// An adjacently tagged union is a JSON object carrying a tag field that names
// the shape of the payload and a content field holding the payload itself:
//
//	{"resourceType": "Complex", "resource": {"a": 2000, "b": 5}}
//
// The usual way to decode such a document is to try each known shape in turn
// and fall back to a catch-all representation when none applies. That
// composition has a well-known failure mode: a document whose tag matches a
// known shape but whose content is invalid (say, a required field is missing)
// also fails every alternative, so it lands in the catch-all — and a genuine
// validation error disappears into a successful decode of the wrong variant.
//
// This package fixes that by resolving the selector first. The tag is
// inspected before any payload decoding happens, and the fallback is reached
// only when the selector itself cannot be resolved: the input is not an
// object, the tag field is absent, the tag is not a string, or the tag names
// no registered case. Once a tag has matched a case, that case's decoder is
// authoritative — a content error is reported as a content error, never
// reinterpreted as "no case matched."
//
// # Quick Start
//
// Build a registry of cases, then decode:
//
//	type Complex struct {
//	    A uint64 `json:"a"`
//	    B uint64 `json:"b"`
//	}
//
//	b := sated.NewBuilder()
//	sated.Add[uint64](b, "Number")
//	sated.Add[Complex](b, "Complex")
//	sated.Fallback[map[string]any](b)
//
//	reg, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	u, err := reg.Decode(raw, "resourceType", "resource")
//	if err != nil {
//	    // a ContentError here means the tag matched but the payload was bad
//	}
//	if u.IsFallback() {
//	    // no case matched; u.Value holds the entire input
//	} else {
//	    c := u.Value.(Complex)
//	}
//
// # Registry
//
// A Registry is built once and never mutated afterwards. Construction-time
// validation rejects duplicate tags and more than one fallback; decoding
// never re-checks these invariants. Because the Registry is immutable, any
// number of goroutines may share one instance without synchronization.
//
// Cases are registered with package-level generic functions rather than
// methods, since Go methods cannot carry independent type parameters:
//
//	sated.Add[Payload](b, "tag")                  // decode content into Payload
//	sated.AddFunc(b, "tag", customDecoder)        // custom content decoder
//	sated.Fallback[json.RawMessage](b)            // catch-all for the whole input
//	sated.FallbackFunc(b, customFallbackDecoder)
//
// A registry with zero cases, or with no fallback, is legal. Without a
// fallback every selector-resolution failure is a hard error instead.
//
// # Decoding
//
// Decode parses the input once into a generic tree and reuses that tree for
// tag lookup, content extraction, and — when needed — the fallback decode.
// The original bytes are never re-read. If the host framework has already
// parsed the document, DecodeParsed accepts the parsed gjson.Result directly.
//
// Field names are gjson paths, so a key containing a dot must be escaped the
// way gjson expects.
//
// The result is a Union: either a matched case (Index, Tag, and the decoded
// Value) or the fallback (IsFallback reports true and Value holds the decode
// of the entire input, tag and content fields included, verbatim).
//
// An absent content field is handed to the matched case's decoder as JSON
// null; the decoder's own rules for null then apply. Decoders registered via
// Add unmarshal null into the zero value of their type.
//
// # Errors
//
// All failures are returned, never panicked, and a failed decode returns no
// partial result. Selector-resolution failures surface only when no fallback
// exists:
//
//	ErrNotAMapping      input is not a JSON object
//	ErrMissingTagField  the tag field is absent
//	ErrTagNotAString    the tag field holds a non-string value
//	UnknownTagError     the tag names no registered case (lists known tags)
//
// Payload failures are always hard errors:
//
//	ContentError        the tag matched but the content decoder failed;
//	                    wraps the decoder's error verbatim
//	FallbackError       the fallback decoder itself failed
//
// Match with errors.Is against the exported sentinels (ErrUnknownTag,
// ErrDuplicateTag, ...) or errors.As against the structured types.
//
// # Tag Type Policy
//
// By default a tag field holding a non-string value (a number, an object) is
// treated like an unknown tag: the fallback applies if one is registered.
// WithStrictTagType makes it a hard ErrTagNotAString even when a fallback
// exists:
//
//	b := sated.NewBuilder(sated.WithStrictTagType())
//
// # Hooks
//
// Hooks observe decoding without being able to change its outcome. They are
// configured on the Builder with functional options and are most useful for
// counting fallback traffic — the thing naive tagged-union decoding makes
// invisible:
//
//	b := sated.NewBuilder(
//	    sated.WithOnFallback(func(m sated.Miss) {
//	        metrics.Incr("decode.fallback", "reason:"+m.String())
//	    }),
//	    sated.WithOnContentError(func(tag string, index int, err error) {
//	        logger.Warn("bad payload", "tag", tag, "error", err)
//	    }),
//	)
//
// Multiple hooks of the same kind run in registration order.
//
// # Validation
//
// Payloads decoded via Add or Fallback that implement Validate() error are
// validated after unmarshaling. A validation failure is a content failure:
// it produces a ContentError and is never routed to the fallback.
//
// # Thread Safety
//
// Builder is not safe for concurrent use. Registry is immutable and safe for
// arbitrary concurrent Decode calls. Do not touch a Builder after Build.
package sated
