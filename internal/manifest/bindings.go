// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"fmt"

	"github.com/MKhiriev/go-envar/envar"
)

// Bindings converts the manifest entries into envar bindings in manifest
// order.
func (m *Manifest) Bindings() ([]envar.Binding, error) {
	bindings := make([]envar.Binding, 0, len(m.Variables))

	for _, e := range m.Variables {
		b, err := e.Binding()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}

	return bindings, nil
}

// Resolve resolves every manifest variable with r.
func (m *Manifest) Resolve(r *envar.Resolver) (*envar.Config, error) {
	bindings, err := m.Bindings()
	if err != nil {
		return nil, err
	}
	return r.Envar(bindings...)
}

// Binding converts e into an envar binding using the parser of its type.
func (e Entry) Binding() (envar.Binding, error) {
	switch e.Type {
	case "", TypeRaw:
		return bindRaw(e)
	case TypeString:
		return bind(e, envar.ParseString)
	case TypeInt:
		return bind(e, envar.ParseInt)
	case TypeFloat:
		return bind(e, envar.ParseFloat)
	case TypeBool:
		return bind(e, envar.ParseBoolean)
	case TypeJSON:
		return bind(e, envar.ParseJSON)
	case TypeYAML:
		return bind(e, envar.ParseYAML)
	case TypeEnum:
		return bind(e, envar.ParseEnum(e.Allowed...))
	case TypeDuration:
		return bind(e, envar.ParseDuration)
	default:
		return nil, fmt.Errorf("%w: unknown type %q for %s", ErrInvalidManifest, e.Type, e.Name)
	}
}

func bindRaw(e Entry) (envar.Binding, error) {
	spec := envar.Spec[string]{Required: e.Required}

	text, ok, err := e.defaultText()
	if err != nil {
		return nil, err
	}
	if ok {
		spec.Default = envar.Some(text)
	}

	return envar.Var(e.Name, spec), nil
}

func bind[T any](e Entry, parser envar.Parser[T]) (envar.Binding, error) {
	spec := envar.Spec[T]{Parser: parser, Required: e.Required}

	text, ok, err := e.defaultText()
	if err != nil {
		return nil, err
	}
	if ok {
		def, err := parser(envar.Some(text))
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %w", ErrInvalidDefault, e.Name, err)
		}
		spec.Default = def
	}

	return envar.Var(e.Name, spec), nil
}
