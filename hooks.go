package sated

// OnMatchFunc is called when a tag resolves to a registered case, before the
// case's content decoder runs.
type OnMatchFunc func(tag string, index int)

// OnFallbackFunc is called when a selector miss routes to the fallback
// decoder. The Miss says why resolution failed.
type OnFallbackFunc func(miss Miss)

// OnContentErrorFunc is called when a matched case's content decoder fails.
// The decode still returns a ContentError; hooks observe, they do not
// change the outcome.
type OnContentErrorFunc func(tag string, index int, err error)

// hooks holds all configured hook functions.
type hooks struct {
	onMatch        []OnMatchFunc
	onFallback     []OnFallbackFunc
	onContentError []OnContentErrorFunc
}

// WithOnMatch adds a hook called when a tag resolves to a registered case.
// Multiple hooks are called in order.
//
// Example:
//
//	sated.WithOnMatch(func(tag string, index int) {
//	    metrics.Incr("decode.match", "tag:"+tag)
//	})
func WithOnMatch(fn OnMatchFunc) Option {
	return func(b *Builder) {
		b.hooks.onMatch = append(b.hooks.onMatch, fn)
	}
}

// WithOnFallback adds a hook called when the fallback decoder is used.
// Multiple hooks are called in order.
//
// Fallback traffic is exactly what naive tagged-union decoding hides; this
// hook is the place to count it.
//
// Example:
//
//	sated.WithOnFallback(func(m sated.Miss) {
//	    metrics.Incr("decode.fallback", "reason:"+m.String())
//	})
func WithOnFallback(fn OnFallbackFunc) Option {
	return func(b *Builder) {
		b.hooks.onFallback = append(b.hooks.onFallback, fn)
	}
}

// WithOnContentError adds a hook called when a matched case's content
// decoder fails. Multiple hooks are called in order.
//
// Example:
//
//	sated.WithOnContentError(func(tag string, index int, err error) {
//	    logger.Warn("bad payload", "tag", tag, "error", err)
//	})
func WithOnContentError(fn OnContentErrorFunc) Option {
	return func(b *Builder) {
		b.hooks.onContentError = append(b.hooks.onContentError, fn)
	}
}
