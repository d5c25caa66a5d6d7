package treefill

import (
	"fmt"

	"github.com/collidersim/treefill/pkg/treefill/config"
)

// BranchesFromConfig reads branch specs from a configuration list.
//
// Two list forms are accepted under key:
//
//   - a flat repeated triple list, matching the legacy parameter format:
//
//     branches:
//     - "tracker/tracks"
//     - "Track"
//     - "Track"
//     - "calorimeter/towers"
//     - "Tower"
//     - "Tower"
//
//   - a structured list of {input, name, class} entries:
//
//     branches:
//     - input: tracker/tracks
//       name: Track
//       class: Track
//
// Class names are not validated here: the writer diagnoses and drops
// unknown classes so that one bad triple does not reject the whole
// configuration.
func BranchesFromConfig(cfg config.Config, key string) ([]BranchSpec, error) {
	raw := cfg.Slice(key)
	if raw == nil {
		return nil, fmt.Errorf("%w: key %q missing or not a list", ErrBadBranchList, key)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	switch raw[0].(type) {
	case string:
		return branchesFromTriples(raw)
	case map[string]any:
		return branchesFromEntries(raw)
	default:
		return nil, fmt.Errorf("%w: element 0 is %T", ErrBadBranchList, raw[0])
	}
}

// branchesFromTriples parses the flat (input, name, class) repeated list.
func branchesFromTriples(raw []any) ([]BranchSpec, error) {
	if len(raw)%3 != 0 {
		return nil, fmt.Errorf("%w: flat list length %d is not a multiple of 3", ErrBadBranchList, len(raw))
	}

	specs := make([]BranchSpec, 0, len(raw)/3)
	for i := 0; i < len(raw); i += 3 {
		input, ok1 := raw[i].(string)
		name, ok2 := raw[i+1].(string)
		class, ok3 := raw[i+2].(string)
		if !ok1 || !ok2 || !ok3 {
			return nil, fmt.Errorf("%w: triple at %d has non-string element", ErrBadBranchList, i)
		}
		specs = append(specs, BranchSpec{Input: input, Name: name, Class: class})
	}
	return specs, nil
}

// branchesFromEntries parses the structured {input, name, class} list.
func branchesFromEntries(raw []any) ([]BranchSpec, error) {
	specs := make([]BranchSpec, 0, len(raw))
	for i, el := range raw {
		m, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", ErrBadBranchList, i, el)
		}
		entry := config.New(m)
		spec := BranchSpec{
			Input: entry.String("input", ""),
			Name:  entry.String("name", ""),
			Class: entry.String("class", ""),
		}
		if spec.Input == "" || spec.Name == "" || spec.Class == "" {
			return nil, fmt.Errorf("%w: element %d missing input, name, or class", ErrBadBranchList, i)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
