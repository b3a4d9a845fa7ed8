package dendro

import "fmt"

// Segment is one line of the drawn dendrogram, in table coordinates
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Brackets converts the linkage to the line segments of a left-facing
// dendrogram. rowY maps a position in the leaf order to the vertical centre
// of its table row; x runs from 0 (the table edge) to width (the root merge).
func (Linkage Linkage) Brackets(order []int, rowY func(pos int) float64, width float64) ([]Segment, error) {
	numSamples := len(order)
	if err := Linkage.Validate(numSamples); err != nil {
		return nil, err
	}
	position := make(map[int]int, numSamples)
	for pos, saIdx := range order {
		position[saIdx] = pos
	}

	maxDist := 0.0
	for _, row := range Linkage {
		if row[2] > maxDist {
			maxDist = row[2]
		}
	}
	if maxDist == 0 {
		maxDist = 1.0
	}
	scaleX := func(dist float64) float64 {
		return width * dist / maxDist
	}

	// centreY resolves the vertical centre of a cluster id
	var centreY func(id int) (float64, error)
	centres := make(map[int]float64)
	centreY = func(id int) (float64, error) {
		if id < numSamples {
			pos, ok := position[id]
			if !ok {
				return 0, fmt.Errorf("leaf %d is missing from the leaf order", id)
			}
			return rowY(pos), nil
		}
		if y, ok := centres[id]; ok {
			return y, nil
		}
		row := Linkage[id-numSamples]
		leftY, err := centreY(int(row[0]))
		if err != nil {
			return 0, err
		}
		rightY, err := centreY(int(row[1]))
		if err != nil {
			return 0, err
		}
		y := (leftY + rightY) / 2.0
		centres[id] = y
		return y, nil
	}

	segments := make([]Segment, 0, 3*len(Linkage))
	for i, row := range Linkage {
		leftY, err := centreY(int(row[0]))
		if err != nil {
			return nil, err
		}
		rightY, err := centreY(int(row[1]))
		if err != nil {
			return nil, err
		}
		mergeX := scaleX(row[2])
		leftX := scaleX(Linkage.height(int(row[0]), numSamples))
		rightX := scaleX(Linkage.height(int(row[1]), numSamples))
		// two horizontal arms joined by a vertical bar at the merge distance
		segments = append(segments,
			Segment{X0: leftX, Y0: leftY, X1: mergeX, Y1: leftY},
			Segment{X0: rightX, Y0: rightY, X1: mergeX, Y1: rightY},
			Segment{X0: mergeX, Y0: leftY, X1: mergeX, Y1: rightY},
		)
		// cache the merged cluster centre for the rows above
		if _, err := centreY(numSamples + i); err != nil {
			return nil, err
		}
	}
	return segments, nil
}
