/*
	the table package lays out a mutation table: it orders the mutation columns
	with the priority engine, places the sample rows top to bottom and attaches
	the cell encodings, leaving the actual drawing to the render package
*/
package table

import (
	"strings"

	"github.com/CuteBeaeast/treeomics/src/cellcolor"
	"github.com/CuteBeaeast/treeomics/src/labels"
	"github.com/CuteBeaeast/treeomics/src/mutdata"
	"github.com/CuteBeaeast/treeomics/src/priority"
)

// Geometry holds the cell level layout constants (in table units)
type Geometry struct {
	CellWidth   float64
	CellHeight  float64
	YSpacing    float64
	MaxLabelLen int
}

// DefaultGeometry returns the standard mutation table geometry
func DefaultGeometry() Geometry {
	return Geometry{
		CellWidth:   2,
		CellHeight:  4,
		YSpacing:    1,
		MaxLabelLen: 12,
	}
}

// Cell is one placed (mutation, sample) rectangle
type Cell struct {
	MutIdx    int
	SampleIdx int
	X, Y      float64
	Encoding  cellcolor.Encoding
}

// Column is one placed mutation column with its formatted label
type Column struct {
	MutIdx int
	X      float64
	Label  string
}

// Row is one placed sample row; Label reads the sample's original name even
// when a leaf order moved the row
type Row struct {
	SampleIdx int
	Y         float64
	Label     string
}

// Table is the fully placed mutation table handed to the render package
type Table struct {
	Cells    []Cell
	Columns  []Column
	Rows     []Row
	Order    mutdata.SampleOrder
	Geometry Geometry
	Width    float64
	Height   float64
}

// Annotator resolves the external classification error flag of a cell
type Annotator func(mutIdx, saIdx int) cellcolor.Annotation

// Compose places a mutation table. Displayed mutations are sorted once, by
// priority under the effective sample order, and that single ordering drives
// both the cell geometry and the column labels so the two can never drift.
// Rows are placed bottom to top: order position 0 gets the top row.
func Compose(patient *mutdata.Patient, displayed []int, order mutdata.SampleOrder, geo Geometry, annotate Annotator) (*Table, error) {
	if err := patient.Validate(); err != nil {
		return nil, err
	}
	numSamples := patient.NumSamples()
	if order == nil {
		order = mutdata.IdentityOrder(numSamples)
	}
	if err := order.Validate(numSamples); err != nil {
		return nil, err
	}
	if displayed == nil {
		displayed = patient.AllMutations()
	}

	priorities := priority.Compute(patient.Data, displayed, order)
	ranked := priority.Rank(displayed, priorities, patient.GeneNames)

	rowStep := geo.CellHeight + geo.YSpacing
	rowY := func(pos int) float64 {
		return rowStep * float64(numSamples-pos-1)
	}

	tab := &Table{
		Order:    order,
		Geometry: geo,
		Width:    float64(len(ranked)) * geo.CellWidth,
	}
	if numSamples > 0 {
		tab.Height = rowStep*float64(numSamples) - geo.YSpacing
	}

	for xPos, mutIdx := range ranked {
		col := Column{
			MutIdx: mutIdx,
			X:      float64(xPos) * geo.CellWidth,
		}
		if len(patient.GeneNames) != 0 {
			col.Label = labels.Format(patient.GeneNames[mutIdx], geo.MaxLabelLen)
		}
		tab.Columns = append(tab.Columns, col)

		for pos, saIdx := range order {
			note := cellcolor.AnnotationNone
			if annotate != nil {
				note = annotate(mutIdx, saIdx)
			}
			mutReads, coverage := 0, 0
			if len(patient.MutReads) != 0 {
				mutReads = patient.MutReads[mutIdx][saIdx]
				coverage = patient.Coverage[mutIdx][saIdx]
			}
			tab.Cells = append(tab.Cells, Cell{
				MutIdx:    mutIdx,
				SampleIdx: saIdx,
				X:         col.X,
				Y:         rowY(pos),
				Encoding:  cellcolor.Encode(patient.Data[mutIdx][saIdx], mutReads, coverage, note),
			})
		}
	}

	// row labels read the original sample identity, not the permuted position
	for pos, saIdx := range order {
		row := Row{
			SampleIdx: saIdx,
			Y:         rowY(pos),
		}
		if len(patient.SampleNames) != 0 {
			row.Label = strings.Replace(patient.SampleNames[saIdx], "_", " ", -1)
		}
		tab.Rows = append(tab.Rows, row)
	}

	return tab, nil
}

// RowY exposes the row placement so the dendrogram can align its leaves with
// the table rows
func (Table *Table) RowY(pos int) float64 {
	rowStep := Table.Geometry.CellHeight + Table.Geometry.YSpacing
	return rowStep * float64(len(Table.Order)-pos-1)
}
