/*
	the dendro package consumes a precomputed hierarchical clustering linkage and
	derives the sample leaf order and the bracket geometry needed to draw the
	dendrogram next to a clustered mutation table

	the clustering itself is external: the input is a scipy style linkage
	matrix with n-1 rows of (left, right, distance, size), where ids below n
	are sample leaves and id n+i refers to the cluster formed by row i
*/
package dendro

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/CuteBeaeast/treeomics/src/mutdata"
)

// Linkage is the precomputed agglomerative clustering of the samples
type Linkage [][4]float64

// LoadLinkage reads a linkage matrix from a JSON file
func LoadLinkage(path string) (Linkage, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	linkage := Linkage{}
	if err := json.Unmarshal(b, &linkage); err != nil {
		return nil, err
	}
	return linkage, nil
}

// Validate checks the linkage against the number of samples it is meant to cluster
func (Linkage Linkage) Validate(numSamples int) error {
	if len(Linkage) != numSamples-1 {
		return fmt.Errorf("linkage has %d merges for %d samples, expected %d", len(Linkage), numSamples, numSamples-1)
	}
	for i, row := range Linkage {
		for _, child := range []float64{row[0], row[1]} {
			id := int(child)
			if id < 0 || id >= numSamples+i {
				return fmt.Errorf("linkage row %d references unmerged cluster %d", i, id)
			}
		}
		if row[2] < 0 {
			return fmt.Errorf("linkage row %d has a negative merge distance", i)
		}
	}
	return nil
}

// height returns the merge distance of a cluster id (0 for sample leaves)
func (Linkage Linkage) height(id, numSamples int) float64 {
	if id < numSamples {
		return 0.0
	}
	return Linkage[id-numSamples][2]
}

// collectLeaves walks a cluster depth first, visiting the child with the
// larger merge distance first
func (Linkage Linkage) collectLeaves(id, numSamples int, leaves *[]int) {
	if id < numSamples {
		*leaves = append(*leaves, id)
		return
	}
	row := Linkage[id-numSamples]
	left, right := int(row[0]), int(row[1])
	if Linkage.height(left, numSamples) < Linkage.height(right, numSamples) {
		left, right = right, left
	}
	Linkage.collectLeaves(left, numSamples, leaves)
	Linkage.collectLeaves(right, numSamples, leaves)
}

// LeafOrder derives the top-to-bottom sample order implied by the clustering.
// The dendrogram leaf sequence is reversed so that its first leaf ends up in
// the top table row.
func (Linkage Linkage) LeafOrder(numSamples int) (mutdata.SampleOrder, error) {
	if err := Linkage.Validate(numSamples); err != nil {
		return nil, err
	}
	if numSamples == 0 {
		return mutdata.SampleOrder{}, nil
	}
	leaves := make([]int, 0, numSamples)
	root := numSamples + len(Linkage) - 1
	Linkage.collectLeaves(root, numSamples, &leaves)
	order := make(mutdata.SampleOrder, len(leaves))
	for i, leaf := range leaves {
		order[len(leaves)-i-1] = leaf
	}
	if err := order.Validate(numSamples); err != nil {
		return nil, err
	}
	return order, nil
}
