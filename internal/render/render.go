// Package render writes command results as text, JSON, YAML or TOML.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Texter is implemented by results with a human-readable rendering.
type Texter interface {
	Text() string
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Text, JSON, YAML, TOML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q", name)
}

// Write encodes v to w. TOML documents must be tables, so v should be a
// struct or map for that format.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case Text:
		switch t := v.(type) {
		case Texter:
			_, err := io.WriteString(w, t.Text())
			return err
		case fmt.Stringer:
			_, err := fmt.Fprintln(w, t.String())
			return err
		}
		_, err := fmt.Fprintf(w, "%+v\n", v)
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", f)
}
