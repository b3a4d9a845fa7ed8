/*
	the priority package computes the deterministic mutation ordering used by the table commands

	each mutation gets a base 4 positional value over its per-sample states so
	that mutations present in the earliest (top) samples sort first; base 4
	keeps the present/ambiguous/absent weight classes from colliding across
	sample positions
*/
package priority

import (
	"math/big"
	"sort"

	"github.com/CuteBeaeast/treeomics/src/mutdata"
)

// state weights for the positional value
const (
	presentWeight   = 3
	ambiguousWeight = 1
	absentWeight    = 0
)

// the base of the positional number system (one more than the largest weight)
var base = big.NewInt(4)

// weight maps a raw state value to its sorting weight; the two ambiguous
// categories share a weight, matching their merged display colour
func weight(val float64) int64 {
	switch mutdata.Classify(val) {
	case mutdata.Present:
		return presentWeight
	case mutdata.AmbiguousPos, mutdata.AmbiguousNeg:
		return ambiguousWeight
	default:
		return absentWeight
	}
}

// Compute returns the sort priority for each displayed mutation. Priorities
// are accumulated over the effective sample order, so a dendrogram-derived
// order reshuffles which samples are most significant. The computation is
// per-mutation: excluded mutations never influence an included one.
func Compute(data [][]float64, displayed []int, order mutdata.SampleOrder) map[int]*big.Int {
	priorities := make(map[int]*big.Int, len(displayed))
	for _, mutIdx := range displayed {
		p := big.NewInt(0)
		for i := range order {
			// p = p*4 + weight  ==  sum over i of weight * 4^(S-i-1)
			p.Mul(p, base)
			p.Add(p, big.NewInt(weight(data[mutIdx][order[i]])))
		}
		priorities[mutIdx] = p
	}
	return priorities
}

// Rank returns the displayed mutations in display order: descending priority,
// ties broken by gene name (case sensitive, ascending) or by the original
// mutation index when no names are available. The caller must reuse the
// returned slice for both cell geometry and column labels so the two can
// never drift apart.
func Rank(displayed []int, priorities map[int]*big.Int, geneNames []string) []int {
	ranked := make([]int, len(displayed))
	copy(ranked, displayed)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if cmp := priorities[a].Cmp(priorities[b]); cmp != 0 {
			return cmp > 0
		}
		if len(geneNames) != 0 {
			if geneNames[a] != geneNames[b] {
				return geneNames[a] < geneNames[b]
			}
		}
		return a < b
	})
	return ranked
}
