// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks the merged [StructuredConfig] against its `validate` tags
// and maps the first failing field to the sentinel error of its group.
func (cfg *StructuredConfig) validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("error validating configs: %w", err)
	}

	fe := validationErrs[0]
	switch fe.StructNamespace() {
	case "StructuredConfig.Manifest.Path":
		return fmt.Errorf("%w: manifest %q is not a file", ErrInvalidManifestConfigs, fe.Value())
	case "StructuredConfig.Log.Level":
		return fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, fe.Value())
	case "StructuredConfig.Output.Format":
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, fe.Value())
	default:
		return fmt.Errorf("error validating configs: %w", err)
	}
}
