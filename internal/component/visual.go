// internal/component/visual.go
package component

import "image/color"

// HexCell одна ячейка фоновой сетки; после создания меняется только Phase.
type HexCell struct {
	X, Y  float64
	Size  float64
	Phase float64
	Speed float64
}

// Particle is a wandering point of the background field.
// Life is set to 1 at creation and is not decayed.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.RGBA
	Life   float64
}

// CircuitNode is a bouncing vertex of the circuit graph. Connections holds
// the indices of the nodes that were in range when the graph was built.
type CircuitNode struct {
	X, Y        float64
	VX, VY      float64
	Radius      float64
	Color       color.RGBA
	Connections []int
}
