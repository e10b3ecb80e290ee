package bodygraph

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/bodygraph/internal/fault"
)

//go:embed catalog.toml
var catalogTOML []byte

type typeText struct {
	Strategy string `toml:"strategy"`
	NotSelf  string `toml:"not_self"`
	Purpose  string `toml:"purpose"`
}

type authorityText struct {
	Guidance string `toml:"guidance"`
}

// catalog is the presentational text table. It never influences
// classification.
type catalog struct {
	Lines       []string                 `toml:"lines"`
	Types       map[string]typeText      `toml:"types"`
	Authorities map[string]authorityText `toml:"authorities"`
}

func parseCatalog(data []byte) (catalog, error) {
	var c catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.check(); err != nil {
		return catalog{}, err
	}
	return c, nil
}

// check verifies that every type, authority, and profile line has text.
func (c catalog) check() error {
	if len(c.Lines) != 6 {
		return gap(fmt.Sprintf("%d line labels, want 6", len(c.Lines)))
	}
	for i, l := range c.Lines {
		if l == "" {
			return gap(fmt.Sprintf("line %d has no label", i+1))
		}
	}
	for _, t := range Types {
		e, ok := c.Types[string(t)]
		if !ok || e.Strategy == "" || e.NotSelf == "" || e.Purpose == "" {
			return gap(fmt.Sprintf("type %q is incomplete", t))
		}
	}
	for _, a := range Authorities {
		if e, ok := c.Authorities[string(a)]; !ok || e.Guidance == "" {
			return gap(fmt.Sprintf("authority %q has no guidance", a))
		}
	}
	return nil
}

func (c catalog) lineLabel(line int) (string, error) {
	if line < 1 || line > len(c.Lines) {
		return "", gap(fmt.Sprintf("line %d has no label", line))
	}
	return c.Lines[line-1], nil
}

func gap(detail string) error {
	return &fault.ConsistencyError{Table: "catalog", Detail: detail, Err: fault.ErrTableGap}
}

// CheckCatalog parses the embedded catalog and reports any gap.
func CheckCatalog() error {
	_, err := parseCatalog(catalogTOML)
	return err
}
