package domain

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed regulations.yaml
var regulationsYAML []byte

var (
	regulationsOnce sync.Once
	regulationSets  map[string][]string
	regulationsErr  error
)

func loadRegulationSets() {
	regulationsOnce.Do(func() {
		sets := make(map[string][]string)
		if err := yaml.Unmarshal(regulationsYAML, &sets); err != nil {
			regulationsErr = fmt.Errorf("parse embedded regulation sets: %w", err)
			return
		}
		if _, ok := sets["default"]; !ok {
			regulationsErr = fmt.Errorf("embedded regulation sets missing default entry")
			return
		}
		regulationSets = sets
	})
}

// DefaultRegulations returns the default applicable-regulation set for an
// organization type. Unknown types receive the default set.
func DefaultRegulations(orgType OrgType) []string {
	loadRegulationSets()
	if regulationsErr != nil {
		// Embedded data is validated by tests; a parse failure here means a
		// corrupted build, so fail loudly.
		panic(regulationsErr)
	}
	set, ok := regulationSets[string(orgType)]
	if !ok {
		set = regulationSets["default"]
	}
	out := make([]string, len(set))
	copy(out, set)
	return out
}
