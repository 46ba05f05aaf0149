package caster

import "shapecast/diagnostic"

// Options carries the per-cast settings. The same options propagate
// unchanged into every nested cast.
type Options struct {
	// UseConstructor runs the target's InitDefaults constructor path after
	// allocation instead of starting from the zero value.
	UseConstructor bool
	// Policy decides the fate of source fields the target does not declare.
	Policy PolicyEnum
	// Sink receives degradation notices. Without one, notices go to the
	// process logger; they are never dropped either way.
	Sink *diagnostic.Diagnostics
}

// Option mutates Options before a cast.
type Option func(*Options)

// WithConstructor selects the constructor allocation path.
func WithConstructor() Option {
	return func(o *Options) { o.UseConstructor = true }
}

// WithPolicy selects the unmatched-field policy. The default is PolicyThrow.
func WithPolicy(p PolicyEnum) Option {
	return func(o *Options) { o.Policy = p }
}

// WithDiagnostics wires the sink that receives degradation notices.
func WithDiagnostics(d *diagnostic.Diagnostics) Option {
	return func(o *Options) { o.Sink = d }
}

// NewOptions applies opts over the defaults: zero-value allocation and
// PolicyThrow.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
