/*
	the cellcolor package encodes one (mutation, sample) cell as the colours and
	overlay flag needed to draw it
*/
package cellcolor

import (
	"image/color"
	"math"

	"github.com/CuteBeaeast/treeomics/src/mutdata"
)

// the fixed classification hues; both ambiguous states share UnknownColor
var (
	PresentColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}     // blue
	AbsentColor  = color.RGBA{R: 255, G: 76, B: 76, A: 255}   // (1.0, 0.3, 0.3)
	UnknownColor = color.RGBA{R: 229, G: 191, B: 191, A: 255} // (0.9, 0.75, 0.75)
)

// Annotation marks a cell that an external phylogeny flagged as a likely
// classification error; the encoder only draws the flag it is handed
type Annotation int

const (
	// AnnotationNone leaves the cell without an overlay
	AnnotationNone Annotation = iota
	// AnnotationFalsePositive flags a present call believed to be wrong
	AnnotationFalsePositive
	// AnnotationFalseNegative flags an absent call believed to be wrong
	AnnotationFalseNegative
)

// Encoding describes how to draw one cell: a classification hue, the two
// continuous intensity colours used by the dual table variant and an optional
// overlay colour. It is derived per rendering pass and never mutated.
type Encoding struct {
	Class      color.Color
	VAF        color.Color
	Coverage   color.Color
	Overlay    color.Color
	HasOverlay bool
}

// ClassColor maps a classification state to its fixed hue
func ClassColor(state mutdata.State) color.Color {
	switch state {
	case mutdata.Present:
		return PresentColor
	case mutdata.AmbiguousPos, mutdata.AmbiguousNeg:
		// the two unknown categories are merged when variants are displayed
		return UnknownColor
	default:
		return AbsentColor
	}
}

// VAFIntensity maps raw read counts to the [0,1] variant allele frequency
// intensity. The scale saturates at a VAF of 0.5 (heterozygous calls rarely
// exceed it), and a cell without coverage has an intensity of 0.0.
func VAFIntensity(mutReads, coverage int) float64 {
	if coverage <= 0 {
		return 0.0
	}
	intensity := 2.0 * float64(mutReads) / float64(coverage)
	if intensity > 1.0 {
		return 1.0
	}
	return intensity
}

// CoverageIntensity maps coverage to a log10 intensity: 1 maps to 0.0 and
// anything at or above 1000 maps to 1.0
func CoverageIntensity(coverage int) float64 {
	if coverage <= 0 {
		return 0.0
	}
	if coverage >= 1000 {
		return 1.0
	}
	return math.Log10(float64(coverage)) / 3.0
}

// Encode converts one cell to its drawing encoding
func Encode(stateVal float64, mutReads, coverage int, note Annotation) Encoding {
	enc := Encoding{
		Class:    ClassColor(mutdata.Classify(stateVal)),
		VAF:      VAFRamp.At(VAFIntensity(mutReads, coverage)),
		Coverage: CoverageRamp.At(CoverageIntensity(coverage)),
	}
	switch note {
	case AnnotationFalsePositive:
		enc.Overlay = AbsentColor
		enc.HasOverlay = true
	case AnnotationFalseNegative:
		enc.Overlay = PresentColor
		enc.HasOverlay = true
	}
	return enc
}
