package dendro

import (
	"testing"
)

// setup variables
var (
	// 3 samples: samples 0 and 2 merge first (cluster 3), sample 1 joins last
	testLinkage = Linkage{
		{0, 2, 0.3, 2},
		{1, 3, 0.8, 3},
	}
)

// begin the tests
func TestValidate(t *testing.T) {
	if err := testLinkage.Validate(3); err != nil {
		t.Fatalf("valid linkage failed validation: %v", err)
	}
	if err := testLinkage.Validate(4); err == nil {
		t.Errorf("linkage with too few merges should fail validation")
	}
	broken := Linkage{{0, 5, 0.3, 2}, {1, 3, 0.8, 3}}
	if err := broken.Validate(3); err == nil {
		t.Errorf("linkage referencing an unmerged cluster should fail validation")
	}
	negative := Linkage{{0, 2, -0.3, 2}, {1, 3, 0.8, 3}}
	if err := negative.Validate(3); err == nil {
		t.Errorf("negative merge distances should fail validation")
	}
}

func TestLeafOrder(t *testing.T) {
	order, err := testLinkage.LeafOrder(3)
	if err != nil {
		t.Fatalf("could not derive the leaf order: %v", err)
	}
	// root children sorted by descending height: cluster 3 (0.3) after leaf 1 (0);
	// depth first leaves are [0 2 1], reversed to [1 2 0] for the table rows
	expected := []int{1, 2, 0}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("expected leaf order %v, got %v", expected, order)
		}
	}
}

func TestLeafOrderIsPermutation(t *testing.T) {
	order, err := testLinkage.LeafOrder(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := order.Validate(3); err != nil {
		t.Errorf("leaf order is not a permutation: %v", err)
	}
}

func TestBrackets(t *testing.T) {
	order, err := testLinkage.LeafOrder(3)
	if err != nil {
		t.Fatal(err)
	}
	rowY := func(pos int) float64 {
		return float64(3-pos-1) * 5.0
	}
	segments, err := testLinkage.Brackets(order, rowY, 10.0)
	if err != nil {
		t.Fatalf("could not build the dendrogram brackets: %v", err)
	}
	// three segments per merge
	if len(segments) != 6 {
		t.Fatalf("expected 6 segments, got %d", len(segments))
	}
	// the root merge reaches the full dendrogram width
	maxX := 0.0
	for _, seg := range segments {
		if seg.X1 > maxX {
			maxX = seg.X1
		}
	}
	if maxX != 10.0 {
		t.Errorf("expected the root bracket at x=10, got %v", maxX)
	}
}

func TestBracketsRejectBadOrder(t *testing.T) {
	rowY := func(pos int) float64 { return float64(pos) }
	if _, err := testLinkage.Brackets([]int{0, 1}, rowY, 10.0); err == nil {
		t.Errorf("brackets should reject an order that does not cover all samples")
	}
}
