// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envar

import "github.com/rs/zerolog"

// Resolver resolves variables against an [Environment].
// A Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	env Environment
	log zerolog.Logger
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithEnvironment sets the environment variables are read from.
// The default is the process environment.
func WithEnvironment(env Environment) Option {
	return func(r *Resolver) {
		if env != nil {
			r.env = env
		}
	}
}

// WithLogger sets the logger receiving debug entries about where each value
// came from. Values themselves are never logged. The default discards all
// output.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}

// NewResolver returns a Resolver configured by opts.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		env: OS(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default returns a Resolver reading the process environment.
func Default() *Resolver {
	return NewResolver()
}

// Lookup returns the raw value of name with no parsing, default, or
// required check.
func (r *Resolver) Lookup(name string) Optional[string] {
	raw, ok := r.env.Lookup(name)
	if !ok {
		return None[string]()
	}
	return Some(raw)
}

// Resolve resolves a single variable:
//  1. the raw value is read from the environment;
//  2. the parser, if any, is applied to it;
//  3. an absent parsed value is replaced by the default, if any;
//  4. a required variable that is still absent fails with
//     [*MissingVariableError].
//
// The result may be absent when the variable is optional and no default
// applies. Parser errors are returned unchanged so their message is the
// parser's own; the failing variable is logged at debug level.
func Resolve[T any](r *Resolver, v *Variable[T]) (Optional[T], error) {
	if v == nil {
		return None[T](), ErrNilVariable
	}
	if v.name == "" {
		return None[T](), ErrEmptyName
	}

	raw := r.Lookup(v.name)

	parsed, err := parse(v, raw)
	if err != nil {
		r.log.Debug().
			Str("variable", v.name).
			Err(err).
			Msg("error parsing environment variable")
		return None[T](), err
	}

	source := "env"
	if !raw.Present() {
		source = "parser"
	}

	if !parsed.Present() && v.spec.Default.Present() {
		parsed = v.spec.Default
		source = "default"
	}

	if !parsed.Present() {
		if v.spec.Required {
			return None[T](), &MissingVariableError{Name: v.name}
		}
		source = "unset"
	}

	r.log.Debug().
		Str("variable", v.name).
		Str("source", source).
		Bool("present", parsed.Present()).
		Msg("resolved environment variable")

	return parsed, nil
}

func parse[T any](v *Variable[T], raw Optional[string]) (Optional[T], error) {
	if v.spec.Parser != nil {
		return v.spec.Parser(raw)
	}

	s, present := raw.Get()
	t, ok := any(s).(T)
	if !ok {
		return None[T](), ErrNoParser
	}
	if !present {
		return None[T](), nil
	}
	return Some(t), nil
}

// Envar resolves vars in order and returns the resolved values keyed by
// name. Resolution stops at the first failing variable.
func (r *Resolver) Envar(vars ...Binding) (*Config, error) {
	cfg := newConfig(len(vars))

	for _, v := range vars {
		if v == nil {
			return nil, ErrNilVariable
		}
		val, err := v.resolveAny(r)
		if err != nil {
			return nil, err
		}
		cfg.set(v.Name(), val)
	}

	return cfg, nil
}

// Envar resolves vars against the process environment.
func Envar(vars ...Binding) (*Config, error) {
	return Default().Envar(vars...)
}
