// pkg/geom/hex.go
package geom

import "math"

// HexVertices returns the six corners of a hexagon centred on c. Vertex i sits
// at angle i·60° from the positive x axis, so vertex 0 points right and the
// top and bottom edges are flat.
func HexVertices(c Point, size float64) [6]Point {
	var vs [6]Point
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3 * float64(i)
		vs[i] = Point{
			X: c.X + size*math.Cos(angle),
			Y: c.Y + size*math.Sin(angle),
		}
	}
	return vs
}

// HexStrides returns the horizontal and vertical centre spacing of a
// column-offset hex grid with the given cell radius.
func HexStrides(size float64) (dx, dy float64) {
	return size * 1.5, size * Sqrt3
}

// HexCenter returns the centre of the cell at (col, row). Odd columns are
// shifted down by half a vertical stride; negative columns keep the same
// parity rule.
func HexCenter(col, row int, size float64) Point {
	dx, dy := HexStrides(size)
	y := float64(row) * dy
	if col&1 == 1 {
		y += dy / 2
	}
	return Point{X: float64(col) * dx, Y: y}
}
