// Package output renders resolved configurations for the envar command.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-envar/envar"
)

// ErrUnknownFormat is returned by [Write] for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Write renders cfg to w in the given format:
//   - "json": an indented JSON object in declaration order;
//   - "dotenv": KEY=value lines, skipping variables without a value.
func Write(w io.Writer, cfg *envar.Config, format string) error {
	switch format {
	case "json":
		return writeJSON(w, cfg)
	case "dotenv":
		return writeDotenv(w, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, cfg *envar.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeDotenv(w io.Writer, cfg *envar.Config) error {
	for _, name := range cfg.Keys() {
		v, ok := cfg.Lookup(name)
		if !ok {
			continue
		}

		text, err := FormatValue(v)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}

		if _, err := fmt.Fprintf(w, "%s=%s\n", name, quote(text)); err != nil {
			return err
		}
	}
	return nil
}

// FormatValue renders a resolved value as text: strings as is, durations in
// Go syntax, NaN as "NaN", and structured values as compact JSON.
func FormatValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64:
		if math.IsNaN(t) {
			return "NaN", nil
		}
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case time.Duration:
		return t.String(), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'#$\\`=") {
		return strconv.Quote(s)
	}
	return s
}
