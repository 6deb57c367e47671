// Package paramspec turns validation contracts into API parameter
// declarations. A Resolver builds a schema from a contract and renders it
// with a named adapter: Grape-style params documentation or a Rails
// strong-parameters permit list.
//
//	r := paramspec.New(paramspec.WithDescriptions(src.Descriptions))
//	out, err := r.From(userContract, paramspec.WithAdapter(adapter.Rails))
package paramspec

import (
	"sync"

	"github.com/gaborage/paramspec/adapter"
	"github.com/gaborage/paramspec/annotation"
	"github.com/gaborage/paramspec/config"
	"github.com/gaborage/paramspec/contract"
	"github.com/gaborage/paramspec/logger"
	"github.com/gaborage/paramspec/schema"
)

// Resolver picks an adapter per call and renders contracts with it.
// It is safe for concurrent use.
type Resolver struct {
	mu               sync.RWMutex
	defaultAdapter   adapter.Name
	defaultParamType string

	descriptions schema.DescriptionSource
	log          logger.Logger
}

// ResolverOption configures a Resolver at construction.
type ResolverOption func(*Resolver)

// WithDefaultAdapter sets the adapter used when a call names none.
func WithDefaultAdapter(name adapter.Name) ResolverOption {
	return func(r *Resolver) { r.defaultAdapter = name }
}

// WithDefaultParamType sets the param_type used when a call names none.
func WithDefaultParamType(pt string) ResolverOption {
	return func(r *Resolver) { r.defaultParamType = pt }
}

// WithDescriptions sets the source of field descriptions.
func WithDescriptions(src schema.DescriptionSource) ResolverOption {
	return func(r *Resolver) { r.descriptions = src }
}

// WithLogger sets the resolver's logger.
func WithLogger(log logger.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a Resolver defaulting to the Grape adapter, the "body"
// param_type, no description source and a no-op logger.
func New(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		defaultAdapter:   adapter.Grape,
		defaultParamType: adapter.DefaultParamType,
		log:              logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig creates a Resolver from loaded configuration. Descriptions
// are read from annotated sources under cfg.Descriptions.Root.
func NewFromConfig(cfg *config.Config, log logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	src := annotation.NewFileSource(cfg.Descriptions.Root, cfg.Descriptions.Patterns, log)
	return New(
		WithDefaultAdapter(adapter.Name(cfg.Params.Adapter)),
		WithDefaultParamType(cfg.Params.ParamType),
		WithDescriptions(src.Descriptions),
		WithLogger(log),
	)
}

// Configure runs fn against r and returns r, for block-style setup.
func (r *Resolver) Configure(fn func(*Resolver)) *Resolver {
	fn(r)
	return r
}

// DefaultAdapter returns the adapter used when a call names none.
func (r *Resolver) DefaultAdapter() adapter.Name {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultAdapter
}

// SetDefaultAdapter replaces the default adapter. The name is not checked
// here; an unknown name fails on the next call that relies on it.
func (r *Resolver) SetDefaultAdapter(name adapter.Name) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultAdapter = name
}

// Option adjusts a single From or For call.
type Option func(*callOptions)

type callOptions struct {
	adapter   adapter.Name
	paramType string
}

// WithAdapter selects the adapter for one call without touching the default.
func WithAdapter(name adapter.Name) Option {
	return func(o *callOptions) { o.adapter = name }
}

// WithParamType sets the Grape documentation param_type for one call.
func WithParamType(pt string) Option {
	return func(o *callOptions) { o.paramType = pt }
}

// Schema builds the schema of c using the resolver's description source.
func (r *Resolver) Schema(c contract.Contract) *schema.Schema {
	return schema.NewBuilder(r.descriptions, r.log).Build(c)
}

// From renders c with the adapter named by WithAdapter, or the default.
// An unknown adapter yields an *adapter.UnsupportedAdapterError.
func (r *Resolver) From(c contract.Contract, opts ...Option) (adapter.Output, error) {
	r.mu.RLock()
	o := callOptions{adapter: r.defaultAdapter, paramType: r.defaultParamType}
	r.mu.RUnlock()

	for _, opt := range opts {
		opt(&o)
	}

	a, err := adapter.Lookup(o.adapter)
	if err != nil {
		r.log.Warn().Str("adapter", string(o.adapter)).Str("contract", c.Name()).Msg("Unsupported adapter requested")
		return nil, err
	}

	out := a.Render(r.Schema(c), adapter.Options{ParamType: o.paramType})
	r.log.Debug().
		Str("adapter", string(a.Name())).
		Str("contract", c.Name()).
		Msg("Params resolved")
	return out, nil
}

// For is From with the adapter given positionally. It takes precedence over
// any WithAdapter option.
func (r *Resolver) For(name adapter.Name, c contract.Contract, opts ...Option) (adapter.Output, error) {
	return r.From(c, append(opts[:len(opts):len(opts)], WithAdapter(name))...)
}
