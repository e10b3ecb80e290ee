package arch_test

import "testing"

// layers places each internal package in the import order of the chart
// pipeline. A package may import only from its own layer or below.
var layers = map[string]int{
	"fault":     0,
	"graph":     0,
	"telemetry": 0,

	"birth":   1,
	"metrics": 1,

	"config":    2,
	"ephemeris": 2,

	"logging": 3,
	"gates":   3,

	"centers": 4,

	"bodygraph": 5,

	"blueprint": 6,

	"engine": 7,

	"render": 8,
	"ui":     8,

	"batch":  9,
	"inbox":  9,
	"server": 9,
}

func TestImportsFollowLayers(t *testing.T) {
	t.Parallel()

	for _, p := range loadInternal(t) {
		from, ok := layers[p.name]
		if !ok {
			t.Errorf("package %s has no layer", p.name)
			continue
		}
		for _, imp := range p.imports {
			to, ok := layers[imp]
			if !ok {
				t.Errorf("%s imports %s, which has no layer", p.name, imp)
				continue
			}
			if to > from {
				t.Errorf("%s (layer %d) imports %s (layer %d)", p.name, from, imp, to)
			}
		}
	}
}

func TestLayersNameRealPackages(t *testing.T) {
	t.Parallel()

	found := make(map[string]bool)
	for _, p := range loadInternal(t) {
		found[p.name] = true
	}
	for name := range layers {
		if !found[name] {
			t.Errorf("layers lists %s, which is not a package under internal/", name)
		}
	}
}

// The pipeline stages must stay in order regardless of how the map is
// edited.
func TestPipelineOrder(t *testing.T) {
	t.Parallel()

	stages := []string{"birth", "ephemeris", "gates", "centers", "bodygraph", "blueprint", "engine"}
	for i := 1; i < len(stages); i++ {
		if layers[stages[i-1]] >= layers[stages[i]] {
			t.Errorf("%s (layer %d) must sit below %s (layer %d)",
				stages[i-1], layers[stages[i-1]], stages[i], layers[stages[i]])
		}
	}
}
