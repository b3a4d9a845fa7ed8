package mutdata

import "fmt"

// SampleOrder is a permutation of sample indices; position i in the order is
// drawn as row i of the table. The identity order stands in when no
// clustering result is supplied, so downstream code never needs a special
// case for "no clustering"
type SampleOrder []int

// IdentityOrder returns the declared sample order
func IdentityOrder(numSamples int) SampleOrder {
	order := make(SampleOrder, numSamples)
	for i := range order {
		order[i] = i
	}
	return order
}

// Validate checks that the order is a permutation of all sample indices
func (SampleOrder SampleOrder) Validate(numSamples int) error {
	if len(SampleOrder) != numSamples {
		return fmt.Errorf("sample order has %d entries for %d samples", len(SampleOrder), numSamples)
	}
	seen := make([]bool, numSamples)
	for _, saIdx := range SampleOrder {
		if saIdx < 0 || saIdx >= numSamples {
			return fmt.Errorf("sample order entry out of range: %d", saIdx)
		}
		if seen[saIdx] {
			return fmt.Errorf("sample order is not a permutation: index %d appears twice", saIdx)
		}
		seen[saIdx] = true
	}
	return nil
}
