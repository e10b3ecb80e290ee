package batch

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/papapumpkin/bodygraph/internal/birth"
)

// Input formats.
const (
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// ErrUnknownInput is returned for an input format other than JSONL or YAML.
var ErrUnknownInput = errors.New("unknown batch input format")

// FormatFor picks the input format from a file extension. Anything that is
// not .yaml or .yml is read as JSONL.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSONL
	}
}

// ReadRequests decodes birth requests from r. JSONL holds one request
// object per line; blank lines and lines starting with # are skipped. YAML
// holds either a sequence of requests or a stream of request documents.
func ReadRequests(r io.Reader, format string) ([]birth.Request, error) {
	switch format {
	case FormatJSONL:
		return readJSONL(r)
	case FormatYAML:
		return readYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInput, format)
	}
}

func readJSONL(r io.Reader) ([]birth.Request, error) {
	var reqs []birth.Request
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}
		var req birth.Request
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		reqs = append(reqs, req)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading requests: %w", err)
	}
	return reqs, nil
}

func readYAML(r io.Reader) ([]birth.Request, error) {
	var reqs []birth.Request
	dec := yaml.NewDecoder(r)
	for doc := 1; ; doc++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return reqs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		if len(node.Content) == 0 {
			continue
		}
		root := node.Content[0]
		if root.Kind == yaml.SequenceNode {
			var list []birth.Request
			if err := root.Decode(&list); err != nil {
				return nil, fmt.Errorf("document %d: %w", doc, err)
			}
			reqs = append(reqs, list...)
			continue
		}
		var req birth.Request
		if err := root.Decode(&req); err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		reqs = append(reqs, req)
	}
}
