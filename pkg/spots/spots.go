// Package spots loads the static surf spot mapping: the list of Surfline
// spot IDs the pipeline refreshes, with the display name, region, and
// subregion attached to each loaded row. The mapping lives in a YAML file so
// adding a spot does not require a rebuild.
package spots

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spot is one entry of the mapping. ID is Surfline's opaque alphanumeric
// spot token; the rest is display metadata.
type Spot struct {
	ID        string `yaml:"spot_id"`
	Name      string `yaml:"spot_name"`
	Region    string `yaml:"region"`
	Subregion string `yaml:"subregion"`
}

// Load reads the spot mapping from a YAML file. Every entry must carry an
// id and a name; an empty mapping is an error, since a run over zero spots
// would silently truncate the destination table and load nothing.
func Load(path string) ([]Spot, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spot mapping: %w", err)
	}
	return parse(buf)
}

func parse(buf []byte) ([]Spot, error) {
	var list []Spot
	if err := yaml.Unmarshal(buf, &list); err != nil {
		return nil, fmt.Errorf("parsing spot mapping: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("spot mapping is empty")
	}
	for i, s := range list {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("spot mapping entry %d missing spot_id or spot_name", i)
		}
	}
	return list, nil
}
