package game

// Point addresses a grid cell.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether (r, c) lies on a rows x cols grid.
func InBounds(r, c, rows, cols int) bool {
	return r >= 0 && r < rows && c >= 0 && c < cols
}

// Neighbors8 returns the in-bounds 8-neighbourhood of (r, c) in row-major order.
func Neighbors8(r, c, rows, cols int) []Point {
	out := make([]Point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if InBounds(r+dr, c+dc, rows, cols) {
				out = append(out, Point{Row: r + dr, Col: c + dc})
			}
		}
	}
	return out
}
