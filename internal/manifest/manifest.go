// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Variable types understood by [Entry.Type].
const (
	TypeRaw      = "raw"
	TypeString   = "string"
	TypeInt      = "int"
	TypeFloat    = "float"
	TypeBool     = "bool"
	TypeJSON     = "json"
	TypeYAML     = "yaml"
	TypeEnum     = "enum"
	TypeDuration = "duration"
)

// Manifest is an ordered list of variable declarations.
type Manifest struct {
	Variables []Entry `json:"variables" yaml:"variables" validate:"unique=Name,dive"`
}

// Entry declares one variable.
type Entry struct {
	// Name is the environment variable name.
	Name string `json:"name" yaml:"name" validate:"required,envname"`
	// Type selects the parser; empty means raw (no parser).
	Type string `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=raw string int float bool json yaml enum duration"`
	// Default is parsed with the same parser as the variable. Non-string
	// scalars are used in their textual form and objects or lists as JSON.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`
	// Required fails resolution when the variable ends up without a value.
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`
	// Allowed lists the accepted values of an enum.
	Allowed []string `json:"allowed,omitempty" yaml:"allowed,omitempty" validate:"required_if=Type enum,dive,required"`
	// Description is informational only.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

var envNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("envname", validateEnvName); err != nil {
		panic(fmt.Errorf("register validator envname: %w", err))
	}
}

// validateEnvName implements the "envname" tag: a POSIX-style shell
// variable name.
func validateEnvName(fl validator.FieldLevel) bool {
	return envNameRe.MatchString(fl.Field().String())
}

// Load reads, decodes and validates the manifest at path. The format is
// chosen by extension: .json, or .yaml/.yml.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseJSON decodes and validates a JSON manifest. Unknown fields are
// rejected.
func ParseJSON(data []byte) (*Manifest, error) {
	var m Manifest

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	decoder.UseNumber()
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("error decoding json manifest: %w", err)
	}

	return &m, m.Validate()
}

// ParseYAML decodes and validates a YAML manifest. Unknown fields are
// rejected.
func ParseYAML(data []byte) (*Manifest, error) {
	var m Manifest

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding yaml manifest: %w", err)
	}

	return &m, m.Validate()
}

// Validate checks every entry. The error names the first offending field.
func (m *Manifest) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Errorf("%w: %s failed on %q", ErrInvalidManifest, fe.Namespace(), fe.Tag())
	}

	return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
}

// Names returns the declared variable names in manifest order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Variables))
	for i, e := range m.Variables {
		names[i] = e.Name
	}
	return names
}

// defaultText renders Default as the text a parser would receive.
func (e Entry) defaultText() (string, bool, error) {
	switch v := e.Default.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case json.Number:
		return v.String(), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case bool, int, int64, uint64:
		return fmt.Sprint(v), true, nil
	default:
		text, err := json.Marshal(v)
		if err != nil {
			return "", false, fmt.Errorf("%w for %s: %w", ErrInvalidDefault, e.Name, err)
		}
		return string(text), true, nil
	}
}
