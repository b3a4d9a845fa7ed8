package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/CuteBeaeast/treeomics/src/cellcolor"
)

// ErrUnsupportedPhylogeny marks a phylogeny result category no table can be
// built from; callers log it and skip the plot rather than failing
var ErrUnsupportedPhylogeny = errors.New("unsupported phylogeny result: no mutation table can be built")

// PhylogenyKind enumerates the supported categories of phylogeny results
type PhylogenyKind int

const (
	// PhylogenyUnknown is an unrecognised result category
	PhylogenyUnknown PhylogenyKind = iota
	// PhylogenyCompatible carries the mutations conflicting with a perfect phylogeny
	PhylogenyCompatible
	// PhylogenyResolved carries the per-mutation sample positions found incompatible
	PhylogenyResolved
	// PhylogenyMaxLH carries the putative false positives and false negatives of a max likelihood phylogeny
	PhylogenyMaxLH
	// PhylogenySubclonal is recognised but not yet supported for table plots
	PhylogenySubclonal
)

// phylogenyKinds maps the serialised kind tags
var phylogenyKinds = map[string]PhylogenyKind{
	"compatible": PhylogenyCompatible,
	"resolved":   PhylogenyResolved,
	"maxlh":      PhylogenyMaxLH,
	"subclonal":  PhylogenySubclonal,
}

// PhylogenyResult is the externally computed phylogeny annotation consumed by
// the incompat subcommand: a closed tagged variant with the payload of each
// result category
type PhylogenyResult struct {
	Kind                  PhylogenyKind
	ConflictingMutations  []int
	IncompatiblePositions map[int][]int
	FalsePositives        map[int][]int
	FalseNegatives        map[int][]int
}

// phylogenyResultJSON is the serialised form of a phylogeny result
type phylogenyResultJSON struct {
	Kind                  string           `json:"kind"`
	ConflictingMutations  []int            `json:"conflicting_mutations"`
	IncompatiblePositions map[string][]int `json:"incompatible_positions"`
	FalsePositives        map[string][]int `json:"false_positives"`
	FalseNegatives        map[string][]int `json:"false_negatives"`
}

// LoadPhylogenyResult reads a phylogeny result from a JSON file
func LoadPhylogenyResult(path string) (*PhylogenyResult, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := &phylogenyResultJSON{}
	if err := json.Unmarshal(b, raw); err != nil {
		return nil, err
	}
	result := &PhylogenyResult{
		Kind:                 phylogenyKinds[raw.Kind],
		ConflictingMutations: raw.ConflictingMutations,
	}
	if result.IncompatiblePositions, err = intKeyed(raw.IncompatiblePositions); err != nil {
		return nil, err
	}
	if result.FalsePositives, err = intKeyed(raw.FalsePositives); err != nil {
		return nil, err
	}
	if result.FalseNegatives, err = intKeyed(raw.FalseNegatives); err != nil {
		return nil, err
	}
	return result, nil
}

// intKeyed converts the JSON string keyed maps back to mutation index keys
func intKeyed(m map[string][]int) (map[int][]int, error) {
	if m == nil {
		return nil, nil
	}
	converted := make(map[int][]int, len(m))
	for k, v := range m {
		var mutIdx int
		if _, err := fmt.Sscanf(k, "%d", &mutIdx); err != nil {
			return nil, fmt.Errorf("phylogeny result has a non-integer mutation key: %v", k)
		}
		converted[mutIdx] = v
	}
	return converted, nil
}

// DisplayedMutations selects the mutation subset a result category asks to
// show. The switch is exhaustive over the known kinds: subclonal results are
// recognised but unsupported, anything else is unknown, and both are reported
// through ErrUnsupportedPhylogeny so the caller can skip the plot gracefully.
func (PhylogenyResult *PhylogenyResult) DisplayedMutations(data [][]float64) ([]int, error) {
	switch PhylogenyResult.Kind {
	case PhylogenyCompatible:
		displayed := make([]int, len(PhylogenyResult.ConflictingMutations))
		copy(displayed, PhylogenyResult.ConflictingMutations)
		return displayed, nil

	case PhylogenyResolved:
		// only mutations with evaluable data at a flagged sample position are shown
		displayed := []int{}
		for mutIdx := 0; mutIdx < len(data); mutIdx++ {
			samples, ok := PhylogenyResult.IncompatiblePositions[mutIdx]
			if !ok {
				continue
			}
			for _, saIdx := range samples {
				if data[mutIdx][saIdx] >= 0 {
					displayed = append(displayed, mutIdx)
					break
				}
			}
		}
		return displayed, nil

	case PhylogenyMaxLH:
		seen := make(map[int]struct{})
		displayed := []int{}
		for mutIdx := 0; mutIdx < len(data); mutIdx++ {
			_, fp := PhylogenyResult.FalsePositives[mutIdx]
			_, fn := PhylogenyResult.FalseNegatives[mutIdx]
			if !fp && !fn {
				continue
			}
			if _, ok := seen[mutIdx]; !ok {
				seen[mutIdx] = struct{}{}
				displayed = append(displayed, mutIdx)
			}
		}
		return displayed, nil

	case PhylogenySubclonal:
		return nil, fmt.Errorf("mutation tables for subclonal detections are not yet implemented: %w", ErrUnsupportedPhylogeny)

	default:
		return nil, fmt.Errorf("phylogeny result is of unrecognised kind: %w", ErrUnsupportedPhylogeny)
	}
}

// Annotation reports whether a cell was flagged as a likely classification
// error by a max likelihood phylogeny
func (PhylogenyResult *PhylogenyResult) Annotation(mutIdx, saIdx int) cellcolor.Annotation {
	if PhylogenyResult.Kind != PhylogenyMaxLH {
		return cellcolor.AnnotationNone
	}
	for _, sa := range PhylogenyResult.FalsePositives[mutIdx] {
		if sa == saIdx {
			return cellcolor.AnnotationFalsePositive
		}
	}
	for _, sa := range PhylogenyResult.FalseNegatives[mutIdx] {
		if sa == saIdx {
			return cellcolor.AnnotationFalseNegative
		}
	}
	return cellcolor.AnnotationNone
}
