package manifest

import "errors"

var (
	// ErrUnsupportedFormat indicates a manifest file extension other than
	// .json, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported manifest format")
	// ErrInvalidManifest indicates a manifest that fails validation.
	ErrInvalidManifest = errors.New("invalid manifest")
	// ErrInvalidDefault indicates a default value rejected by its parser.
	ErrInvalidDefault = errors.New("invalid default value")
)
