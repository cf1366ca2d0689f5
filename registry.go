package sated

// Builder accumulates cases and options before Build validates them into an
// immutable Registry. Builder is a one-shot, single-goroutine value;
// separating it from Registry keeps construction and use distinct phases.
//
// Usage:
//  1. Create a builder with NewBuilder
//  2. Register cases with Add / AddFunc
//  3. Optionally register one fallback with Fallback / FallbackFunc
//  4. Call Build and share the Registry freely
type Builder struct {
	cases     []Case
	fallbacks []Decoder
	strictTag bool
	hooks     hooks
}

// Option configures a Builder.
type Option func(*Builder)

// WithStrictTagType makes a non-string tag field a hard ErrTagNotAString
// instead of a selector miss. Without it, a non-string tag is treated like
// an unknown tag and routes to the fallback when one is registered.
func WithStrictTagType() Option {
	return func(b *Builder) {
		b.strictTag = true
	}
}

// NewBuilder creates a Builder with the given options.
//
// Example:
//
//	b := sated.NewBuilder(
//	    sated.WithOnFallback(func(m sated.Miss) {
//	        log.Printf("fallback: %s", m)
//	    }),
//	)
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add registers a tagged case whose content is unmarshaled into T. If T (or
// *T) implements Validate() error, the decoded value is validated and a
// validation failure counts as a content failure.
//
// This is a package-level function (not a method) due to Go generics
// limitations: methods cannot have type parameters independent of the
// receiver.
//
// Example:
//
//	sated.Add[uint64](b, "Number")
//	sated.Add[Complex](b, "Complex")
func Add[T any](b *Builder, tag string) {
	AddFunc(b, tag, decodeAs[T])
}

// AddFunc registers a tagged case with a custom content decoder.
func AddFunc(b *Builder, tag string, fn DecoderFunc) {
	b.cases = append(b.cases, Case{Tag: tag, Decoder: fn})
}

// Fallback registers the catch-all case: when no tagged case matches, the
// entire input is unmarshaled into T. Choose a T that accepts any JSON value
// (map[string]any, json.RawMessage) to make fallback decoding infallible.
//
// Example:
//
//	sated.Fallback[json.RawMessage](b)
func Fallback[T any](b *Builder) {
	FallbackFunc(b, decodeAs[T])
}

// FallbackFunc registers the catch-all case with a custom decoder for the
// entire input.
func FallbackFunc(b *Builder, fn DecoderFunc) {
	b.fallbacks = append(b.fallbacks, fn)
}

// Build validates the accumulated cases and returns an immutable Registry.
//
// Build fails with a DuplicateTagError when two cases share a tag, and with
// ErrMultipleFallbacks when more than one fallback was registered. A registry
// with zero cases, or without a fallback, is legal; without a fallback every
// selector-resolution failure becomes a hard error.
func (b *Builder) Build() (*Registry, error) {
	if len(b.fallbacks) > 1 {
		return nil, ErrMultipleFallbacks
	}

	index := make(map[string]int, len(b.cases))
	for i, c := range b.cases {
		if _, dup := index[c.Tag]; dup {
			return nil, &DuplicateTagError{Tag: c.Tag}
		}
		index[c.Tag] = i
	}

	r := &Registry{
		cases:     append([]Case(nil), b.cases...),
		index:     index,
		strictTag: b.strictTag,
		hooks:     b.hooks,
	}
	if len(b.fallbacks) == 1 {
		r.fallback = b.fallbacks[0]
	}
	return r, nil
}

// Registry is the immutable description of a union: its tagged cases and at
// most one fallback. Build once, then share; a Registry is never mutated
// after construction, so concurrent Decode calls need no locking.
type Registry struct {
	cases     []Case
	index     map[string]int
	fallback  Decoder
	strictTag bool
	hooks     hooks
}

// Tags returns the registered tag strings in registration order.
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.cases))
	for i, c := range r.cases {
		tags[i] = c.Tag
	}
	return tags
}

// HasFallback reports whether a fallback case is registered.
func (r *Registry) HasFallback() bool { return r.fallback != nil }
