/*
	the mutdata package holds the per-patient mutation data consumed by the table plotting commands
*/
package mutdata

import (
	"fmt"
)

// sentinel values used in the state matrix for the two ambiguous classification outcomes
const (
	// PosUnknown marks a variant with some support but not enough evidence to call it present
	PosUnknown = -1.0
	// NegUnknown marks a variant with insufficient evidence to call it absent
	NegUnknown = -2.0
)

// State is the display-level classification of one (mutation, sample) cell
type State int

// the four classification states; the two ambiguous states stay distinct in the
// data but are merged to a single colour when a table is drawn
const (
	Absent State = iota
	Present
	AmbiguousPos
	AmbiguousNeg
)

// Classify converts a raw state matrix value to its classification state
func Classify(val float64) State {
	if val > 0 {
		return Present
	}
	if val == PosUnknown {
		return AmbiguousPos
	}
	if val == NegUnknown {
		return AmbiguousNeg
	}
	return Absent
}

// Patient holds the mutation data of a single patient: the classified state
// matrix plus the raw read counts it was derived from
type Patient struct {
	Name        string      `json:"name" msgpack:"name"`
	SampleNames []string    `json:"sample_names" msgpack:"sampleNames"`
	GeneNames   []string    `json:"gene_names" msgpack:"geneNames"`
	MutKeys     []string    `json:"mut_keys" msgpack:"mutKeys"`
	Data        [][]float64 `json:"data" msgpack:"data"`
	MutReads    [][]int     `json:"mut_reads" msgpack:"mutReads"`
	Coverage    [][]int     `json:"coverage" msgpack:"coverage"`
}

// NumMutations returns the number of mutations held by the patient
func (Patient *Patient) NumMutations() int {
	return len(Patient.Data)
}

// NumSamples returns the number of sequenced samples held by the patient
func (Patient *Patient) NumSamples() int {
	if len(Patient.SampleNames) != 0 {
		return len(Patient.SampleNames)
	}
	if len(Patient.Data) != 0 {
		return len(Patient.Data[0])
	}
	return 0
}

// Validate checks the shapes of the patient matrices; a failure here is an
// unrecoverable configuration error
func (Patient *Patient) Validate() error {
	numSamples := Patient.NumSamples()
	for mutIdx, row := range Patient.Data {
		if len(row) != numSamples {
			return fmt.Errorf("state matrix row %d has %d samples, expected %d", mutIdx, len(row), numSamples)
		}
	}
	if len(Patient.GeneNames) != 0 && len(Patient.GeneNames) != len(Patient.Data) {
		return fmt.Errorf("have %d gene names for %d mutations", len(Patient.GeneNames), len(Patient.Data))
	}
	if len(Patient.MutKeys) != 0 && len(Patient.MutKeys) != len(Patient.Data) {
		return fmt.Errorf("have %d mutation keys for %d mutations", len(Patient.MutKeys), len(Patient.Data))
	}
	if len(Patient.MutReads) != 0 {
		if len(Patient.MutReads) != len(Patient.Data) || len(Patient.Coverage) != len(Patient.Data) {
			return fmt.Errorf("read count matrices do not match the state matrix (%d mutations)", len(Patient.Data))
		}
		for mutIdx := range Patient.MutReads {
			if len(Patient.MutReads[mutIdx]) != numSamples || len(Patient.Coverage[mutIdx]) != numSamples {
				return fmt.Errorf("read count matrices row %d does not have %d samples", mutIdx, numSamples)
			}
			for saIdx := range Patient.MutReads[mutIdx] {
				cov := Patient.Coverage[mutIdx][saIdx]
				reads := Patient.MutReads[mutIdx][saIdx]
				if cov < 0 {
					return fmt.Errorf("negative coverage for mutation %d in sample %d", mutIdx, saIdx)
				}
				if reads < 0 {
					return fmt.Errorf("negative variant read count for mutation %d in sample %d", mutIdx, saIdx)
				}
				if cov > 0 && reads > cov {
					return fmt.Errorf("variant read count exceeds coverage for mutation %d in sample %d (%d > %d)", mutIdx, saIdx, reads, cov)
				}
			}
		}
	}
	return nil
}

// State returns the classification state of one cell
func (Patient *Patient) State(mutIdx, saIdx int) State {
	return Classify(Patient.Data[mutIdx][saIdx])
}

// RawVAF returns the raw variant allele frequency of one cell, defined as 0.0
// when the locus has no coverage
func (Patient *Patient) RawVAF(mutIdx, saIdx int) float64 {
	if len(Patient.Coverage) == 0 {
		return 0.0
	}
	cov := Patient.Coverage[mutIdx][saIdx]
	if cov <= 0 {
		return 0.0
	}
	return float64(Patient.MutReads[mutIdx][saIdx]) / float64(cov)
}

// SampleVAFs collects the raw VAFs of all variants with read support in one sample
func (Patient *Patient) SampleVAFs(saIdx int) []float64 {
	vafs := []float64{}
	for mutIdx := range Patient.MutReads {
		if Patient.MutReads[mutIdx][saIdx] > 0 {
			vafs = append(vafs, Patient.RawVAF(mutIdx, saIdx))
		}
	}
	return vafs
}

// SampleCoverages collects the coverage values of one sample across all mutations
func (Patient *Patient) SampleCoverages(saIdx int) []int {
	covs := []int{}
	for mutIdx := range Patient.Coverage {
		covs = append(covs, Patient.Coverage[mutIdx][saIdx])
	}
	return covs
}

// AllMutations returns the default displayed subset: every mutation index
func (Patient *Patient) AllMutations() []int {
	displayed := make([]int, Patient.NumMutations())
	for i := range displayed {
		displayed[i] = i
	}
	return displayed
}
