package cellcolor

import (
	"testing"

	"github.com/CuteBeaeast/treeomics/src/mutdata"
)

// begin the tests
func TestClassColors(t *testing.T) {
	if ClassColor(mutdata.Present) != PresentColor {
		t.Errorf("present cells should use the present hue")
	}
	if ClassColor(mutdata.Absent) != AbsentColor {
		t.Errorf("absent cells should use the absent hue")
	}
	// the two ambiguous states are merged to a single hue
	if ClassColor(mutdata.AmbiguousPos) != UnknownColor || ClassColor(mutdata.AmbiguousNeg) != UnknownColor {
		t.Errorf("both ambiguous states should use the unknown hue")
	}
}

func TestVAFIntensity(t *testing.T) {
	checks := []struct {
		mutReads, coverage int
		expected           float64
	}{
		{0, 100, 0.0},   // fraction 0
		{50, 100, 1.0},  // fraction 0.5 saturates the scale
		{90, 100, 1.0},  // fraction 0.9 stays saturated
		{25, 100, 0.5},  // fraction 0.25
		{10, 0, 0.0},    // no coverage, no division
		{0, 0, 0.0},
	}
	for _, check := range checks {
		if got := VAFIntensity(check.mutReads, check.coverage); got != check.expected {
			t.Errorf("VAFIntensity(%d, %d) = %v, expected %v", check.mutReads, check.coverage, got, check.expected)
		}
	}
}

func TestCoverageIntensity(t *testing.T) {
	checks := []struct {
		coverage int
		expected float64
	}{
		{0, 0.0},
		{1, 0.0},
		{1000, 1.0},
		{10000, 1.0}, // clamped
	}
	for _, check := range checks {
		if got := CoverageIntensity(check.coverage); got != check.expected {
			t.Errorf("CoverageIntensity(%d) = %v, expected %v", check.coverage, got, check.expected)
		}
	}
	// log10(10)/3 and log10(100)/3
	if got := CoverageIntensity(10); got < 0.333 || got > 0.334 {
		t.Errorf("CoverageIntensity(10) = %v, expected 1/3", got)
	}
	if got := CoverageIntensity(100); got < 0.666 || got > 0.667 {
		t.Errorf("CoverageIntensity(100) = %v, expected 2/3", got)
	}
}

func TestCoverageIntensityMonotone(t *testing.T) {
	last := -1.0
	for _, coverage := range []int{0, 1, 2, 5, 10, 50, 100, 500, 999, 1000, 2000, 10000} {
		intensity := CoverageIntensity(coverage)
		if intensity < last {
			t.Fatalf("coverage intensity decreased at %d: %v < %v", coverage, intensity, last)
		}
		last = intensity
	}
}

func TestEncodeOverlay(t *testing.T) {
	enc := Encode(0.4, 10, 100, AnnotationNone)
	if enc.HasOverlay {
		t.Errorf("unannotated cells should have no overlay")
	}
	enc = Encode(0.4, 10, 100, AnnotationFalsePositive)
	if !enc.HasOverlay || enc.Overlay != AbsentColor {
		t.Errorf("false positives should overlay the absent hue")
	}
	enc = Encode(0.0, 0, 100, AnnotationFalseNegative)
	if !enc.HasOverlay || enc.Overlay != PresentColor {
		t.Errorf("false negatives should overlay the present hue")
	}
}

func TestRampBounds(t *testing.T) {
	ramp, err := NewRamp("Blues")
	if err != nil {
		t.Fatalf("could not build the Blues ramp: %v", err)
	}
	if ramp.At(0.0) != ramp.stops[0] {
		t.Errorf("intensity 0 should return the first stop")
	}
	if ramp.At(1.0) != ramp.stops[len(ramp.stops)-1] {
		t.Errorf("intensity 1 should return the last stop")
	}
	// out of range intensities are clamped
	if ramp.At(-0.5) != ramp.stops[0] || ramp.At(1.5) != ramp.stops[len(ramp.stops)-1] {
		t.Errorf("out of range intensities should clamp to the ramp ends")
	}
}
