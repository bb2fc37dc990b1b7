// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envar resolves typed configuration values from environment
// variables.
//
// A variable is declared with [Var] (or [String] for a plain string lookup)
// and an optional [Spec] carrying a [Parser], a default value, and a required
// flag. A [Resolver] reads raw values from an injected [Environment], applies
// the parser, substitutes the default when the parsed value is absent, and
// fails with a [*MissingVariableError] when a required variable is still
// absent.
//
// Resolution is one-shot and synchronous. Nothing is cached and the
// environment is never modified.
//
//	port := envar.Var("PORT", envar.Spec[float64]{Parser: envar.ParseInt, Default: envar.Some(8080.0)})
//	debug := envar.Var("DEBUG", envar.Spec[bool]{Parser: envar.ParseBoolean})
//
//	cfg, err := envar.Envar(port, debug)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(envar.Get(cfg, port).Value(), envar.Get(cfg, debug).Value())
//
// Numeric parsers never fail: unparseable input yields NaN, and NaN is a
// present value, so a configured default does not replace it.
package envar
