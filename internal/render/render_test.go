package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type row struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Day  string `json:"day" yaml:"day" toml:"day"`
}

type doc struct {
	Year  int   `json:"year" yaml:"year" toml:"year"`
	Terms []row `json:"terms" yaml:"terms" toml:"terms"`
}

func (d doc) Text() string {
	return "year " + string(rune('0'+d.Year%10)) + "\n"
}

var sample = doc{Year: 2024, Terms: []row{{"立春", "2024-02-04"}, {"雨水", "2024-02-19"}}}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "yaml", "toml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestWrite_RoundTrips(t *testing.T) {
	tests := []struct {
		format Format
		decode func([]byte, any) error
	}{
		{JSON, json.Unmarshal},
		{YAML, yaml.Unmarshal},
		{TOML, toml.Unmarshal},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tt.format, sample))

			var got doc
			require.NoError(t, tt.decode(buf.Bytes(), &got))
			if diff := cmp.Diff(sample, got); diff != "" {
				t.Errorf("decoded document mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, sample))
	assert.Equal(t, "year 4\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, Text, 42))
	assert.Equal(t, "42\n", buf.String())
}

func TestWrite_JSONKeepsHan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, sample))
	assert.Contains(t, buf.String(), "立春")
}
