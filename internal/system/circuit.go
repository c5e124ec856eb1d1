// internal/system/circuit.go
package system

import (
	"image/color"
	"math"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/utils"
	"go-decryptviz/pkg/geom"
	"go-decryptviz/pkg/render"
)

// CircuitGraph is the set of bouncing nodes joined by proximity edges.
//
// Edges are decided once, when the graph is built. Nodes then drift freely:
// an edge whose ends have moved out of range is skipped while drawing, and
// nodes that drift into range are never joined.
type CircuitGraph struct {
	cfg           *config.Config
	rng           *utils.PRNGService
	mode          component.Mode
	width, height float64
	nodes         []component.CircuitNode
}

func NewCircuitGraph(cfg *config.Config, rng *utils.PRNGService) *CircuitGraph {
	return &CircuitGraph{cfg: cfg, rng: rng}
}

// Nodes exposes the live nodes.
func (g *CircuitGraph) Nodes() []component.CircuitNode {
	return g.nodes
}

// nodeColor picks the colour of node i from its index.
func nodeColor(i int) color.RGBA {
	switch {
	case i%4 == 0:
		return config.Magenta
	case i%3 == 0:
		return config.Violet
	case i%2 == 0:
		return config.Blue
	default:
		return config.Cyan
	}
}

func (g *CircuitGraph) Reset(width, height float64, mode component.Mode) {
	g.mode = mode
	g.width, g.height = width, height
	params := g.cfg.For(mode)

	g.nodes = make([]component.CircuitNode, 0, params.Nodes)
	for i := 0; i < params.Nodes; i++ {
		g.nodes = append(g.nodes, component.CircuitNode{
			X:      g.rng.Float64() * width,
			Y:      g.rng.Float64() * height,
			VX:     g.rng.Centered(params.NodeSpeed),
			VY:     g.rng.Centered(params.NodeSpeed),
			Radius: g.rng.Range(2, 4),
			Color:  nodeColor(i),
		})
	}
	g.connect()
}

// connect связывает все пары узлов ближе радиуса соединения. Ребро
// записывается на обоих концах, индексы идут по возрастанию.
func (g *CircuitGraph) connect() {
	radius := g.cfg.ConnectionRadius
	for i := range g.nodes {
		g.nodes[i].Connections = nil
	}
	for i := range g.nodes {
		a := &g.nodes[i]
		for j := i + 1; j < len(g.nodes); j++ {
			b := &g.nodes[j]
			if geom.Distance(geom.Pt(a.X, a.Y), geom.Pt(b.X, b.Y)) < radius {
				a.Connections = append(a.Connections, j)
				b.Connections = append(b.Connections, i)
			}
		}
	}
}

// Step moves every node and bounces it off the viewport walls.
func (g *CircuitGraph) Step() {
	for i := range g.nodes {
		n := &g.nodes[i]
		var flip bool
		if n.X, flip = geom.Reflect(n.X+n.VX, g.width); flip {
			n.VX = -n.VX
		}
		if n.Y, flip = geom.Reflect(n.Y+n.VY, g.height); flip {
			n.VY = -n.VY
		}
	}
}

// EdgeOpacity returns the line opacity of an edge of length dist, or false if
// the edge is out of range and must not be drawn.
func (g *CircuitGraph) EdgeOpacity(dist float64) (float64, bool) {
	radius := g.cfg.ConnectionRadius
	if dist >= radius {
		return 0, false
	}
	o := config.EdgeBaseOpacity * (1 - dist/radius) * g.cfg.For(g.mode).EdgeOpacity
	return math.Min(o, 1), true
}

// PulsePhase is the fraction along an edge where a data pulse sits at now.
func PulsePhase(now time.Time) float64 {
	return float64(now.UnixNano()%int64(config.PulsePeriod)) / float64(config.PulsePeriod)
}

// NodePulse is the breathing factor applied to node i at now.
func NodePulse(now time.Time, i int) float64 {
	return math.Sin(millis(now)/config.NodePulsePeriodMs+float64(i))*0.5 + 1
}

func (g *CircuitGraph) Frame(c render.Canvas, now time.Time, _ component.Inputs) {
	g.drawEdges(c, now)
	g.Step()
	g.drawNodes(c, now)
}

func (g *CircuitGraph) drawEdges(c render.Canvas, now time.Time) {
	params := g.cfg.For(g.mode)
	active := g.mode == component.Active
	edgeColor := config.Violet
	if active {
		edgeColor = config.Cyan
	}
	phase := PulsePhase(now)

	for i := range g.nodes {
		a := geom.Pt(g.nodes[i].X, g.nodes[i].Y)
		for _, j := range g.nodes[i].Connections {
			if j <= i {
				continue
			}
			b := geom.Pt(g.nodes[j].X, g.nodes[j].Y)
			opacity, ok := g.EdgeOpacity(geom.Distance(a, b))
			if !ok {
				continue
			}
			c.StrokeLine(a, b, params.EdgeWidth, render.WithAlpha(edgeColor, opacity))

			if active && g.rng.Chance(params.PulseChance) {
				c.FillCircle(geom.Lerp(a, b, phase), config.PulseRadius, config.White, config.PulseGlow)
			}
		}
	}
}

func (g *CircuitGraph) drawNodes(c render.Canvas, now time.Time) {
	params := g.cfg.For(g.mode)
	active := g.mode == component.Active

	for i, n := range g.nodes {
		p := geom.Pt(n.X, n.Y)
		pulse := NodePulse(now, i)
		if !active {
			c.FillCircle(p, n.Radius*pulse, config.Violet, params.NodeGlow)
			continue
		}
		c.FillCircle(p, n.Radius*pulse, n.Color, params.NodeGlow)
		c.FillCircle(p, n.Radius*config.NodeInnerScale, config.White, 0)
		ring := n.Color
		ring.A = config.NodeRingAlpha
		c.StrokeCircle(p, n.Radius*pulse*config.NodeRingScale, config.NodeRingWidth, ring)
	}
}
