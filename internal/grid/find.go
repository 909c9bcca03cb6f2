package grid

// Find returns the first width×height region inside bound that overlaps none
// of occupied. Candidates are scanned row-major from bound's origin with the
// column advancing fastest, so (bound, size, occupied) always maps to the same
// answer regardless of the order of occupied.
//
// Non-positive sizes and degenerate bounds never fit.
func Find(bound Region, width, height int, occupied []Region) (Region, bool) {
	if width <= 0 || height <= 0 || bound.Empty() {
		return Region{}, false
	}
	lastRow := bound.Row + bound.Height - height
	lastCol := bound.Col + bound.Width - width
	for row := bound.Row; row <= lastRow; row++ {
		for col := bound.Col; col <= lastCol; col++ {
			candidate := Region{Row: row, Col: col, Width: width, Height: height}
			if !overlapsAny(candidate, occupied) {
				return candidate, true
			}
		}
	}
	return Region{}, false
}

// FindFootprint is Find taking the item size as a Footprint.
func FindFootprint(bound Region, fp Footprint, occupied []Region) (Region, bool) {
	return Find(bound, fp.Width, fp.Height, occupied)
}

func overlapsAny(r Region, occupied []Region) bool {
	for _, o := range occupied {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
