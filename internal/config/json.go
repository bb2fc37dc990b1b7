package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
type StructuredJSONConfig struct {
	Manifest struct {
		Path string `json:"path"`
	} `json:"manifest,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Output struct {
		Format string `json:"format"`
	} `json:"output,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Manifest: Manifest{
			Path: jsonCfg.Manifest.Path,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
