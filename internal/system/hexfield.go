// internal/system/hexfield.go
package system

import (
	"math"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/utils"
	"go-decryptviz/pkg/geom"
	"go-decryptviz/pkg/render"
)

const twoPi = 2 * math.Pi

// HexField is the pulsing background tessellation.
type HexField struct {
	cfg   *config.Config
	rng   *utils.PRNGService
	mode  component.Mode
	cells []component.HexCell
	verts []geom.Point
}

func NewHexField(cfg *config.Config, rng *utils.PRNGService) *HexField {
	return &HexField{cfg: cfg, rng: rng, verts: make([]geom.Point, 6)}
}

// Cells exposes the current grid.
func (f *HexField) Cells() []component.HexCell {
	return f.cells
}

// Reset regenerates the grid so that it reaches at least one full cell past
// every edge of the viewport: columns and rows start at -1 and run until the
// centres pass the far edge by one stride.
func (f *HexField) Reset(width, height float64, mode component.Mode) {
	f.mode = mode
	size := f.cfg.Hex.Size
	dx, dy := geom.HexStrides(size)
	cols := int(math.Ceil(width/dx)) + 2
	rows := int(math.Ceil(height/dy)) + 2

	f.cells = f.cells[:0]
	for row := -1; row < rows; row++ {
		for col := -1; col < cols; col++ {
			c := geom.HexCenter(col, row, size)
			f.cells = append(f.cells, component.HexCell{
				X:     c.X,
				Y:     c.Y,
				Size:  size,
				Phase: f.rng.Float64() * twoPi,
				Speed: f.rng.Range(f.cfg.Hex.SpeedMin, f.cfg.Hex.SpeedJitter),
			})
		}
	}
}

// Step advances every cell's phase, wrapped into [0, 2π).
func (f *HexField) Step() {
	for i := range f.cells {
		cell := &f.cells[i]
		cell.Phase = math.Mod(cell.Phase+cell.Speed, twoPi)
	}
}

// Opacity returns the displayed opacity of a cell in the current mode.
func (f *HexField) Opacity(cell component.HexCell) float64 {
	pulse := 0.5 + 0.5*math.Sin(cell.Phase)
	return pulse * f.cfg.For(f.mode).HexOpacity
}

func (f *HexField) Frame(c render.Canvas, _ time.Time, _ component.Inputs) {
	f.Step()

	params := f.cfg.For(f.mode)
	hue := config.Violet
	if f.mode == component.Active {
		hue = config.Cyan
	}
	for _, cell := range f.cells {
		vs := geom.HexVertices(geom.Pt(cell.X, cell.Y), cell.Size)
		copy(f.verts, vs[:])
		c.StrokePolygon(f.verts, params.HexLineWidth, render.WithAlpha(hue, f.Opacity(cell)))
	}
}
