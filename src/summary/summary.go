/*
	the summary package draws the per-sample summary figures: the VAF
	distribution boxplot and the coverage vs. variant reads scatter plot
*/
package summary

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/CuteBeaeast/treeomics/src/mutdata"
)

// VAFBoxplot draws one box per sample over the raw VAFs of its supported
// variants, annotated with the variant count and the median coverage
func VAFBoxplot(patient *mutdata.Patient, fileName string) error {
	if len(patient.MutReads) == 0 {
		return fmt.Errorf("patient dataset carries no read counts, can't summarise VAFs")
	}
	boxPlot, err := plot.New()
	if err != nil {
		return err
	}
	boxPlot.Title.Text = patient.Name
	boxPlot.X.Label.Text = "Samples"
	boxPlot.Y.Label.Text = "Variant allele frequency"
	boxPlot.Y.Min = 0.0
	boxPlot.Y.Max = 1.0

	annotations := plotter.XYLabels{}
	for saIdx := range patient.SampleNames {
		vafs := patient.SampleVAFs(saIdx)
		box, err := plotter.NewBoxPlot(vg.Points(14), float64(saIdx), plotter.Values(vafs))
		if err != nil {
			return err
		}
		boxPlot.Add(box)
		// annotate with the number of supported variants and the median coverage
		annotations.XYs = append(annotations.XYs, plotter.XY{X: float64(saIdx), Y: 0.93})
		annotations.Labels = append(annotations.Labels, fmt.Sprintf("%d", len(vafs)))
		annotations.XYs = append(annotations.XYs, plotter.XY{X: float64(saIdx), Y: 0.88})
		annotations.Labels = append(annotations.Labels, fmt.Sprintf("%dx", median(patient.SampleCoverages(saIdx))))
	}
	labels, err := plotter.NewLabels(annotations)
	if err != nil {
		return err
	}
	boxPlot.Add(labels)
	boxPlot.NominalX(patient.SampleNames...)

	return boxPlot.Save(vg.Points(float64(len(patient.SampleNames))*40), 4*vg.Inch, fileName)
}

// ReadsScatter draws variant read counts over coverage on a log-log scale,
// one colour per sample
func ReadsScatter(patient *mutdata.Patient, fileName string) error {
	if len(patient.MutReads) == 0 {
		return fmt.Errorf("patient dataset carries no read counts, can't plot them")
	}
	readsPlot, err := plot.New()
	if err != nil {
		return err
	}
	readsPlot.X.Label.Text = "Coverage"
	readsPlot.Y.Label.Text = "Variant reads"
	readsPlot.X.Scale = plot.LogScale{}
	readsPlot.Y.Scale = plot.LogScale{}
	readsPlot.X.Tick.Marker = plot.LogTicks{}
	readsPlot.Y.Tick.Marker = plot.LogTicks{}
	readsPlot.X.Min, readsPlot.X.Max = 1, 10000
	readsPlot.Y.Min, readsPlot.Y.Max = 1, 10000

	for saIdx, sampleName := range patient.SampleNames {
		points := plotter.XYs{}
		for mutIdx := range patient.MutReads {
			// clamp zeros so they stay on the log axes
			cov := patient.Coverage[mutIdx][saIdx]
			if cov <= 0 {
				cov = 1
			}
			reads := patient.MutReads[mutIdx][saIdx]
			if reads <= 0 {
				reads = 1
			}
			points = append(points, plotter.XY{X: float64(cov), Y: float64(reads)})
		}
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Shape = draw.CrossGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Color = plotutil.Color(saIdx)
		readsPlot.Add(scatter)
		readsPlot.Legend.Add(sampleName, scatter)
	}
	readsPlot.Legend.Top = true
	readsPlot.Legend.Left = true

	return readsPlot.Save(6*vg.Inch, 6*vg.Inch, fileName)
}

// median returns the middle coverage value (0 for an empty slice)
func median(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}
