package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidManifestConfigs indicates the manifest path does not name an
	// existing file.
	ErrInvalidManifestConfigs = errors.New("invalid manifest configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidOutputConfigs indicates an unknown output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
