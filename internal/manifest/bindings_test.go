package manifest

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-envar/envar"
)

func resolver(vars map[string]string) *envar.Resolver {
	return envar.NewResolver(envar.WithEnvironment(envar.Map(vars)))
}

func TestResolve_YAMLManifest(t *testing.T) {
	// Arrange
	m, err := ParseYAML([]byte(yamlManifest))
	require.NoError(t, err)
	r := resolver(map[string]string{
		"PORT": "3000",
		"MODE": "production",
		"DSN":  "postgres://localhost/db",
	})

	// Act
	cfg, err := m.Resolve(r)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"PORT": 3000.0,
		"HOST": "127.0.0.1",
		"MODE": "production",
		"DSN":  "postgres://localhost/db",
	}, cfg.Map())
	assert.Equal(t, []string{"PORT", "HOST", "MODE", "DSN"}, cfg.Keys())
}

func TestResolve_RequiredMissing(t *testing.T) {
	m, err := ParseYAML([]byte(yamlManifest))
	require.NoError(t, err)

	_, err = m.Resolve(resolver(nil))

	assert.EqualError(t, err, "Missing required environment variable: DSN")
}

func TestResolve_InvalidEnum(t *testing.T) {
	m, err := ParseYAML([]byte(yamlManifest))
	require.NoError(t, err)

	_, err = m.Resolve(resolver(map[string]string{"MODE": "staging", "DSN": "x"}))

	assert.ErrorContains(t, err, "Expected one of: development, production")
}

func TestBinding_LargeNumericDefaultKeepsDigits(t *testing.T) {
	tests := []struct {
		name string
		data string
		want any
	}{
		{
			name: "json raw",
			data: `{"variables":[{"name":"LIMIT","type":"raw","default":1000000}]}`,
			want: "1000000",
		},
		{
			name: "json string",
			data: `{"variables":[{"name":"LIMIT","type":"string","default":1000000}]}`,
			want: "1000000",
		},
		{
			name: "json int",
			data: `{"variables":[{"name":"LIMIT","type":"int","default":12345678901}]}`,
			want: 12345678901.0,
		},
		{
			name: "json fraction",
			data: `{"variables":[{"name":"LIMIT","type":"string","default":2500000.5}]}`,
			want: "2500000.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseJSON([]byte(tt.data))
			require.NoError(t, err)

			cfg, err := m.Resolve(resolver(nil))

			require.NoError(t, err)
			assert.Equal(t, map[string]any{"LIMIT": tt.want}, cfg.Map())
		})
	}
}

func TestBinding_LargeYAMLFloatDefaultKeepsDigits(t *testing.T) {
	m, err := ParseYAML([]byte("variables:\n  - name: LIMIT\n    type: string\n    default: 1500000.0\n"))
	require.NoError(t, err)

	cfg, err := m.Resolve(resolver(nil))

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"LIMIT": "1500000"}, cfg.Map())
}

func TestBinding_AllTypes(t *testing.T) {
	entries := []Entry{
		{Name: "RAW"},
		{Name: "STR", Type: TypeString},
		{Name: "INT", Type: TypeInt},
		{Name: "FLOAT", Type: TypeFloat},
		{Name: "BOOL", Type: TypeBool},
		{Name: "JSON", Type: TypeJSON},
		{Name: "YAML", Type: TypeYAML},
		{Name: "ENUM", Type: TypeEnum, Allowed: []string{"a", "b"}},
		{Name: "DUR", Type: TypeDuration},
	}
	m := &Manifest{Variables: entries}
	require.NoError(t, m.Validate())

	cfg, err := m.Resolve(resolver(map[string]string{
		"RAW":   "  raw  ",
		"STR":   "  str  ",
		"INT":   "42",
		"FLOAT": "1.5",
		"BOOL":  "true",
		"JSON":  `{"a":[1]}`,
		"YAML":  "a: b",
		"ENUM":  "b",
		"DUR":   "2s",
	}))

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"RAW":   "  raw  ",
		"STR":   "str",
		"INT":   42.0,
		"FLOAT": 1.5,
		"BOOL":  true,
		"JSON":  map[string]any{"a": []any{float64(1)}},
		"YAML":  map[string]any{"a": "b"},
		"ENUM":  "b",
		"DUR":   2 * time.Second,
	}, cfg.Map())
}

func TestBinding_DefaultsAreParsed(t *testing.T) {
	m := &Manifest{Variables: []Entry{
		{Name: "TIMEOUT", Type: TypeDuration, Default: "1m"},
		{Name: "SETTINGS", Type: TypeJSON, Default: map[string]any{"retries": 1}},
		{Name: "NAME", Type: TypeString, Default: "  svc  "},
	}}

	cfg, err := m.Resolve(resolver(nil))

	require.NoError(t, err)
	v, _ := cfg.Lookup("TIMEOUT")
	assert.Equal(t, time.Minute, v)
	v, _ = cfg.Lookup("SETTINGS")
	assert.Equal(t, map[string]any{"retries": float64(1)}, v)
	v, _ = cfg.Lookup("NAME")
	assert.Equal(t, "svc", v)
}

// TestBinding_IntDefaultDoesNotReplaceNaN verifies the numeric behaviour
// carries through manifests: an unparseable value stays NaN.
func TestBinding_IntDefaultDoesNotReplaceNaN(t *testing.T) {
	m := &Manifest{Variables: []Entry{{Name: "PORT", Type: TypeInt, Default: 8080}}}

	cfg, err := m.Resolve(resolver(map[string]string{"PORT": "eighty"}))

	require.NoError(t, err)
	v, ok := cfg.Lookup("PORT")
	require.True(t, ok)
	assert.True(t, math.IsNaN(v.(float64)))
}

func TestBinding_InvalidDefault(t *testing.T) {
	tests := []Entry{
		{Name: "D", Type: TypeDuration, Default: "soon"},
		{Name: "E", Type: TypeEnum, Allowed: []string{"a"}, Default: "z"},
		{Name: "J", Type: TypeJSON, Default: "{bad"},
	}

	for _, e := range tests {
		_, err := e.Binding()
		assert.ErrorIs(t, err, ErrInvalidDefault, e.Name)
	}
}

func TestBinding_UnknownType(t *testing.T) {
	_, err := Entry{Name: "A", Type: "uuid"}.Binding()
	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestBinding_BoolDefaultRendersAsText(t *testing.T) {
	m := &Manifest{Variables: []Entry{{Name: "FLAG", Default: true}}}

	cfg, err := m.Resolve(resolver(nil))

	require.NoError(t, err)
	v, _ := cfg.Lookup("FLAG")
	assert.Equal(t, "true", v)
}
