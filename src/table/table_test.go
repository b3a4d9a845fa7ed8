package table

import (
	"errors"
	"testing"

	"github.com/CuteBeaeast/treeomics/src/cellcolor"
	"github.com/CuteBeaeast/treeomics/src/mutdata"
)

// setup variables
var (
	testPatient = &mutdata.Patient{
		Name:        "Pat1",
		SampleNames: []string{"A", "B", "C"},
		GeneNames:   []string{"TP53", "KRAS", "BRCA1"},
		Data: [][]float64{
			{0.4, 0.0, 0.0},
			{0.0, 0.2, 0.1},
			{mutdata.PosUnknown, 0.0, 0.0},
		},
		MutReads: [][]int{
			{40, 0, 0},
			{0, 10, 5},
			{2, 0, 0},
		},
		Coverage: [][]int{
			{100, 80, 70},
			{90, 50, 60},
			{60, 0, 40},
		},
	}
)

// begin the tests
func TestComposeOrdering(t *testing.T) {
	tab, err := Compose(testPatient, nil, nil, DefaultGeometry(), nil)
	if err != nil {
		t.Fatalf("could not compose the table: %v", err)
	}
	// priorities: mutation 0 = 3*16 = 48, mutation 1 = 3*4+3 = 15, mutation 2 = 1*16 = 16
	expected := []int{0, 2, 1}
	for i, col := range tab.Columns {
		if col.MutIdx != expected[i] {
			t.Fatalf("expected column order %v, got column %d at position %d", expected, col.MutIdx, i)
		}
	}
	// the labels sit on the sorted columns
	if tab.Columns[0].Label != "TP53" || tab.Columns[1].Label != "BRCA1" || tab.Columns[2].Label != "KRAS" {
		t.Errorf("column labels do not follow the sorted columns: %v %v %v",
			tab.Columns[0].Label, tab.Columns[1].Label, tab.Columns[2].Label)
	}
}

func TestComposeRowInversion(t *testing.T) {
	tab, err := Compose(testPatient, nil, nil, DefaultGeometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	// order position 0 gets the top row: y = (4+1) * (3-0-1) = 10
	if tab.Rows[0].Y != 10 || tab.Rows[1].Y != 5 || tab.Rows[2].Y != 0 {
		t.Errorf("row placement is not inverted: %v %v %v", tab.Rows[0].Y, tab.Rows[1].Y, tab.Rows[2].Y)
	}
}

func TestComposeLeafOrder(t *testing.T) {
	// leaf order [C A B]: C sits in the top row but keeps its own label
	tab, err := Compose(testPatient, nil, mutdata.SampleOrder{2, 0, 1}, DefaultGeometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Rows[0].SampleIdx != 2 || tab.Rows[0].Y != 10 || tab.Rows[0].Label != "C" {
		t.Errorf("expected sample C in the top row, got sample %d (%v) at y=%v",
			tab.Rows[0].SampleIdx, tab.Rows[0].Label, tab.Rows[0].Y)
	}
	if tab.Rows[1].Label != "A" || tab.Rows[2].Label != "B" {
		t.Errorf("row labels should read the original sample names, got %v %v",
			tab.Rows[1].Label, tab.Rows[2].Label)
	}
	// the cells of each column follow the same order
	if tab.Cells[0].SampleIdx != 2 || tab.Cells[0].Y != 10 {
		t.Errorf("first cell should belong to sample C in the top row")
	}
}

func TestComposeUnderscoreLabels(t *testing.T) {
	patient := &mutdata.Patient{
		SampleNames: []string{"Pat1_liver"},
		Data:        [][]float64{{0.4}},
	}
	tab, err := Compose(patient, nil, nil, DefaultGeometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Rows[0].Label != "Pat1 liver" {
		t.Errorf("sample labels should replace underscores with spaces, got %v", tab.Rows[0].Label)
	}
}

func TestComposeConfigurationErrors(t *testing.T) {
	// a non-permutation leaf order is fatal
	if _, err := Compose(testPatient, nil, mutdata.SampleOrder{0, 0, 1}, DefaultGeometry(), nil); err == nil {
		t.Errorf("a non-permutation order should fail")
	}
	// a ragged state matrix is fatal
	ragged := &mutdata.Patient{
		SampleNames: []string{"A", "B"},
		Data:        [][]float64{{0.4, 0.0}, {0.1}},
	}
	if _, err := Compose(ragged, nil, nil, DefaultGeometry(), nil); err == nil {
		t.Errorf("a ragged state matrix should fail")
	}
}

func TestComposeDegenerate(t *testing.T) {
	// zero displayed mutations still produce a valid (empty) table
	tab, err := Compose(testPatient, []int{}, nil, DefaultGeometry(), nil)
	if err != nil {
		t.Fatalf("an empty subset should compose: %v", err)
	}
	if len(tab.Columns) != 0 || len(tab.Cells) != 0 {
		t.Errorf("expected an empty table")
	}
	if len(tab.Rows) != 3 {
		t.Errorf("the sample rows remain, got %d", len(tab.Rows))
	}
	// a patient with no mutations at all
	empty := &mutdata.Patient{}
	if _, err := Compose(empty, nil, nil, DefaultGeometry(), nil); err != nil {
		t.Errorf("an empty patient should compose: %v", err)
	}
}

func TestComposeAnnotations(t *testing.T) {
	annotate := func(mutIdx, saIdx int) cellcolor.Annotation {
		if mutIdx == 0 && saIdx == 1 {
			return cellcolor.AnnotationFalseNegative
		}
		return cellcolor.AnnotationNone
	}
	tab, err := Compose(testPatient, nil, nil, DefaultGeometry(), annotate)
	if err != nil {
		t.Fatal(err)
	}
	flagged := 0
	for _, cell := range tab.Cells {
		if cell.Encoding.HasOverlay {
			flagged++
			if cell.MutIdx != 0 || cell.SampleIdx != 1 {
				t.Errorf("overlay on the wrong cell: mutation %d sample %d", cell.MutIdx, cell.SampleIdx)
			}
			if cell.Encoding.Overlay != cellcolor.PresentColor {
				t.Errorf("false negatives should overlay the present hue")
			}
		}
	}
	if flagged != 1 {
		t.Errorf("expected exactly one flagged cell, got %d", flagged)
	}
}

func TestPhylogenyCompatible(t *testing.T) {
	result := &PhylogenyResult{
		Kind:                 PhylogenyCompatible,
		ConflictingMutations: []int{1, 2},
	}
	displayed, err := result.DisplayedMutations(testPatient.Data)
	if err != nil {
		t.Fatal(err)
	}
	if len(displayed) != 2 || displayed[0] != 1 || displayed[1] != 2 {
		t.Errorf("expected the conflicting mutations, got %v", displayed)
	}
}

func TestPhylogenyResolved(t *testing.T) {
	result := &PhylogenyResult{
		Kind: PhylogenyResolved,
		IncompatiblePositions: map[int][]int{
			0: {1},
			2: {1},
		},
	}
	// mutation 0 has data >= 0 at sample 1, mutation 2 has 0.0 there too
	displayed, err := result.DisplayedMutations(testPatient.Data)
	if err != nil {
		t.Fatal(err)
	}
	if len(displayed) != 2 {
		t.Fatalf("expected 2 displayed mutations, got %v", displayed)
	}
	// a mutation whose flagged positions all hold sentinel values is dropped
	result.IncompatiblePositions = map[int][]int{2: {0}}
	displayed, err = result.DisplayedMutations(testPatient.Data)
	if err != nil {
		t.Fatal(err)
	}
	if len(displayed) != 0 {
		t.Errorf("expected no displayed mutations, got %v", displayed)
	}
}

func TestPhylogenyMaxLH(t *testing.T) {
	result := &PhylogenyResult{
		Kind:           PhylogenyMaxLH,
		FalsePositives: map[int][]int{0: {0}},
		FalseNegatives: map[int][]int{0: {2}, 1: {1}},
	}
	displayed, err := result.DisplayedMutations(testPatient.Data)
	if err != nil {
		t.Fatal(err)
	}
	// the union of both maps, without duplicates
	if len(displayed) != 2 || displayed[0] != 0 || displayed[1] != 1 {
		t.Errorf("expected mutations [0 1], got %v", displayed)
	}
	if result.Annotation(0, 0) != cellcolor.AnnotationFalsePositive {
		t.Errorf("expected a false positive annotation")
	}
	if result.Annotation(0, 2) != cellcolor.AnnotationFalseNegative {
		t.Errorf("expected a false negative annotation")
	}
	if result.Annotation(2, 0) != cellcolor.AnnotationNone {
		t.Errorf("expected no annotation")
	}
}

func TestPhylogenyUnsupported(t *testing.T) {
	for _, kind := range []PhylogenyKind{PhylogenySubclonal, PhylogenyUnknown} {
		result := &PhylogenyResult{Kind: kind}
		if _, err := result.DisplayedMutations(testPatient.Data); !errors.Is(err, ErrUnsupportedPhylogeny) {
			t.Errorf("kind %d should report ErrUnsupportedPhylogeny, got %v", kind, err)
		}
	}
}
