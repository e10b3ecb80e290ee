// Package render writes charts, blueprints and reference tables as JSON,
// YAML, TOML or styled terminal text.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/papapumpkin/bodygraph/internal/blueprint"
	"github.com/papapumpkin/bodygraph/internal/bodygraph"
)

// Output formats.
const (
	JSON = "json"
	YAML = "yaml"
	TOML = "toml"
	Text = "text"
)

// ErrUnknownFormat is returned for a format name outside JSON, YAML, TOML
// and Text.
var ErrUnknownFormat = errors.New("unknown output format")

// ErrNoTextView is returned when Text is requested for a value that has no
// terminal view.
var ErrNoTextView = errors.New("no text view for value")

// Write encodes v to w in format.
func Write(w io.Writer, format string, v any) error {
	switch format {
	case JSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	case Text:
		s, err := textOf(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func textOf(v any) (string, error) {
	switch x := v.(type) {
	case bodygraph.Bodygraph:
		return Bodygraph(x), nil
	case *bodygraph.Bodygraph:
		return Bodygraph(*x), nil
	case blueprint.Blueprint:
		return Blueprint(x), nil
	case *blueprint.Blueprint:
		return Blueprint(*x), nil
	case Tables:
		return TablesText(x), nil
	case *Tables:
		return TablesText(*x), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrNoTextView, v)
	}
}
