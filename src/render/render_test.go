package render

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/CuteBeaeast/treeomics/src/dendro"
	"github.com/CuteBeaeast/treeomics/src/mutdata"
	"github.com/CuteBeaeast/treeomics/src/table"
)

// setup variables
var (
	testPatient = &mutdata.Patient{
		Name:        "Pat1",
		SampleNames: []string{"Pat1_liver", "Pat1_lung", "Pat1_met"},
		GeneNames:   []string{"TP53", "KRAS"},
		Data: [][]float64{
			{0.4, 0.0, mutdata.PosUnknown},
			{0.0, 0.2, 0.1},
		},
		MutReads: [][]int{
			{40, 0, 2},
			{0, 10, 5},
		},
		Coverage: [][]int{
			{100, 80, 60},
			{90, 50, 0},
		},
	}

	testLinkage = dendro.Linkage{
		{0, 2, 0.3, 2},
		{1, 3, 0.8, 3},
	}
)

// checkOutputs fails the test if a render did not produce both file formats
func checkOutputs(t *testing.T, basename string) {
	for _, ext := range []string{".png", ".pdf"} {
		info, err := os.Stat(basename + ext)
		if err != nil {
			t.Fatalf("missing output file %v: %v", basename+ext, err)
		}
		if info.Size() == 0 {
			t.Fatalf("output file %v is empty", basename+ext)
		}
	}
}

// begin the tests
func TestStyle(t *testing.T) {
	style := DefaultStyle()
	if style.CellWidth != 2 || style.CellHeight != 4 || style.YSpacing != 1 {
		t.Errorf("unexpected default geometry: %+v", style)
	}
	tmpDir, err := ioutil.TempDir("", "render-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)
	styleFile := filepath.Join(tmpDir, "style.yaml")
	if err := ioutil.WriteFile(styleFile, []byte("cell_height: 6\n"), 0644); err != nil {
		t.Fatal(err)
	}
	style, err = LoadStyle(styleFile)
	if err != nil {
		t.Fatalf("could not load the style overrides: %v", err)
	}
	// overrides apply on top of the defaults
	if style.CellHeight != 6 {
		t.Errorf("expected the cell height override, got %v", style.CellHeight)
	}
	if style.CellWidth != 2 {
		t.Errorf("expected the default cell width, got %v", style.CellWidth)
	}
}

func TestPlain(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "render-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)
	style := DefaultStyle()
	tab, err := table.Compose(testPatient, nil, nil, style.Geometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	basename := filepath.Join(tmpDir, "mutation-table")
	if err := Plain(tab, style, basename); err != nil {
		t.Fatalf("could not render the plain table: %v", err)
	}
	checkOutputs(t, basename)
}

func TestDual(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "render-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)
	style := DefaultStyle()
	tab, err := table.Compose(testPatient, nil, nil, style.DualGeometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	basename := filepath.Join(tmpDir, "incompatible-table")
	if err := Dual(tab, style, basename); err != nil {
		t.Fatalf("could not render the dual table: %v", err)
	}
	checkOutputs(t, basename)
}

func TestClustered(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "render-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)
	style := DefaultStyle()
	order, err := testLinkage.LeafOrder(testPatient.NumSamples())
	if err != nil {
		t.Fatal(err)
	}
	tab, err := table.Compose(testPatient, nil, order, style.Geometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	basename := filepath.Join(tmpDir, "clustered-table")
	if err := Clustered(tab, testLinkage, style, basename); err != nil {
		t.Fatalf("could not render the clustered table: %v", err)
	}
	checkOutputs(t, basename)
}

func TestDegenerate(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "render-test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)
	style := DefaultStyle()
	// an empty displayed subset still renders a minimal valid figure
	tab, err := table.Compose(testPatient, []int{}, nil, style.Geometry(), nil)
	if err != nil {
		t.Fatal(err)
	}
	basename := filepath.Join(tmpDir, "empty-table")
	if err := Plain(tab, style, basename); err != nil {
		t.Fatalf("could not render an empty table: %v", err)
	}
	checkOutputs(t, basename)
}
