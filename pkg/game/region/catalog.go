package region

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the six regions of the island, in hit-test priority order.
func Default() []Region {
	return []Region{
		{Name: "hardwareZone", Label: "Hardware Zone", ActivityID: "hardwarePuzzle", FX: 0.20, FY: 0.15},
		{Name: "softwareValley", Label: "Software Valley", ActivityID: "softwareQuiz", FX: 0.80, FY: 0.15},
		{Name: "arcadeCove", Label: "Arcade Cove", ActivityID: "rhythmGame", FX: 0.20, FY: 0.70},
		{Name: "consoleIsland", Label: "Console Island", ActivityID: "consoleGuess", FX: 0.80, FY: 0.70},
		{Name: "mobileBay", Label: "Mobile Bay", ActivityID: "phoneWeight", FX: 0.20, FY: 0.40},
		{Name: "internetPoint", Label: "Internet Point", ActivityID: "networkQuiz", FX: 0.80, FY: 0.40},
	}
}

// Load reads a YAML region catalog: a list of regions in priority order.
func Load(path string) ([]Region, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read region catalog: %w", err)
	}
	var regions []Region
	if err := yaml.Unmarshal(raw, &regions); err != nil {
		return nil, fmt.Errorf("parse region catalog: %w", err)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: catalog %s is empty", ErrInvalidRegion, path)
	}
	if err := Validate(regions); err != nil {
		return nil, fmt.Errorf("region catalog %s: %w", path, err)
	}
	return regions, nil
}
