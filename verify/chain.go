package verify

import (
	"fmt"
	"log/slog"
	"maps"
)

// Option configures a [Chain] when it's started.
type Option func(c *Chain)

// Because sets a custom explanation that is combined with the failure message according to the [BecauseMode].
func Because(text string) Option {
	return func(c *Chain) {
		c.deco.because = text
	}
}

// WithBecauseMode changes how the explanation from [Because] is applied. The default is [BecauseSuffix].
func WithBecauseMode(mode BecauseMode) Option {
	return func(c *Chain) {
		c.deco.becauseMode = mode
	}
}

// WithData attaches a key/value pair to failures from the chain.
// Data is appended to the message, returned by [Error.Data], and included in failure logs.
func WithData(key, value string) Option {
	return func(c *Chain) {
		if c.deco.data == nil {
			c.deco.data = map[string]string{}
		}
		c.deco.data[key] = value
	}
}

// WithLogger overrides the logger that failures are reported to.
// A nil logger disables failure logging for the chain.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		c.logger = logger
		c.loggerSet = true
	}
}

// Chain is the fluent state for one verification statement.
// A Chain is used for exactly one verification: start a new one per statement.
// It's not safe for concurrent use, and there's no reason to share one.
type Chain struct {
	registry  *Registry
	subject   Subject
	deco      decoration
	logger    *slog.Logger
	loggerSet bool

	// misuse is a sticky chain usage error reported by the next verification call.
	misuse   error
	consumed bool
}

// That starts a [Chain] for the subject using the [Default] registry.
func That(subject Subject, opts ...Option) *Chain {
	return Default().That(subject, opts...)
}

// That starts a [Chain] for the subject that resolves verifications from this registry.
func (r *Registry) That(subject Subject, opts ...Option) *Chain {
	c := &Chain{
		registry: r,
		subject:  subject,
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(subject.name) == 0 {
		c.misuse = fmt.Errorf("subject has no name, capture it with Named or Capture")
	}
	return c
}

// Each switches the chain to element mode, so the next verification applies to every element of the subject.
// The subject must be a slice, array, or iterator function shaped like [iter.Seq].
//
// Misuse, such as a non-sequence subject or calling Each twice, is reported as a [ProgrammerError] by the next verification call.
func (c *Chain) Each() *Chain {
	if c.misuse != nil {
		return c
	}
	if c.subject.sequence {
		c.misuse = fmt.Errorf("Each() was called more than once for subject '%s'", c.subject.name)
		return c
	}
	if c.subject.declared.isInterface() && c.subject.value == nil {
		// A nil container held in an interface has no element type, but it's still a null subject.
		c.subject.sequence = true
		return c
	}
	elem, ok := c.subject.declared.element()
	if !ok {
		c.misuse = fmt.Errorf("Each() requires a slice, array, or iterator, but subject '%s' is of type '%s'", c.subject.name, c.subject.declared)
		return c
	}
	c.subject.declared = elem
	c.subject.sequence = true
	return c
}

// Invoke runs the named verification with positional params, returning nil if it passes.
// Omitted trailing params are treated as absent.
//
// A failed verification returns an [*Error] whose message fully describes the violation.
func (c *Chain) Invoke(name string, params ...any) error {
	if c.consumed {
		return c.misused(name, fmt.Errorf("the chain for subject '%s' was already used for a verification", c.subject.name))
	}
	c.consumed = true
	if c.misuse != nil {
		return c.misused(name, c.misuse)
	}
	e, ok := c.registry.lookup(name)
	if !ok {
		return c.misused(name, fmt.Errorf("verification '%s' is not registered", name))
	}
	params, err := normalizeParams(e, params)
	if err != nil {
		return c.misused(name, err)
	}
	f := dispatch(c.subject, e, params)
	if f == nil {
		return nil
	}
	verr := &Error{
		kind:         classify(f),
		msg:          compose(f, c.deco),
		verification: name,
		subject:      c.subject.name,
		index:        f.index,
		hasIndex:     f.element,
		data:         maps.Clone(c.deco.data),
	}
	logFailure(c.log(), verr)
	return verr
}

func (c *Chain) misused(name string, cause error) error {
	f := &failure{subject: c.subject, reason: reasonMisuse}
	verr := &Error{
		kind:         classify(f),
		msg:          cause.Error(),
		verification: name,
		subject:      c.subject.name,
	}
	logFailure(c.log(), verr)
	return verr
}

func (c *Chain) log() *slog.Logger {
	if c.loggerSet {
		return c.logger
	}
	return defaultLogger()
}
