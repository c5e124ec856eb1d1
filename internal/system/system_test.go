package system

import (
	"image/color"
	"math"
	"testing"
	"time"

	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/utils"
	"go-decryptviz/pkg/geom"
	"go-decryptviz/pkg/render"
)

var epoch = time.Unix(1700000000, 0)

func newTestDeps() (*config.Config, *utils.PRNGService) {
	return config.DefaultConfig(), utils.NewPRNGService(42)
}

// insideFlatHex reports whether p lies in the flat-top hexagon of
// circumradius size centred on c.
func insideFlatHex(p, c geom.Point, size float64) bool {
	dx := math.Abs(p.X - c.X)
	dy := math.Abs(p.Y - c.Y)
	const eps = 1e-9
	if dy > geom.Sqrt3/2*size+eps {
		return false
	}
	return geom.Sqrt3*dx+dy <= geom.Sqrt3*size+eps
}

func TestHexFieldCoversViewport(t *testing.T) {
	cfg, rng := newTestDeps()
	for _, size := range [][2]float64{{1200, 800}, {317, 211}, {45, 1000}} {
		w, h := size[0], size[1]
		f := NewHexField(cfg, rng)
		f.Reset(w, h, component.Idle)

		cells := f.Cells()
		if len(cells) == 0 {
			t.Fatalf("%vx%v: expected cells", w, h)
		}
		dx, dy := geom.HexStrides(cfg.Hex.Size)
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, c := range cells {
			minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
			minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
		}
		if minX > -dx+1e-9 || minY > -dy+1e-9 {
			t.Errorf("%vx%v: grid starts at (%v,%v), want a full cell before the origin", w, h, minX, minY)
		}
		if maxX < w+dx-1e-9 || maxY < h+dy-1e-9 {
			t.Errorf("%vx%v: grid ends at (%v,%v), want a full cell past the far edge", w, h, maxX, maxY)
		}

		for y := 0.0; y <= h; y += 7 {
			for x := 0.0; x <= w; x += 7 {
				p := geom.Pt(x, y)
				covered := false
				for _, c := range cells {
					if insideFlatHex(p, geom.Pt(c.X, c.Y), c.Size) {
						covered = true
						break
					}
				}
				if !covered {
					t.Fatalf("%vx%v: point %v not covered by any cell", w, h, p)
				}
			}
		}
	}
}

func TestHexFieldPhaseAndOpacity(t *testing.T) {
	cfg, rng := newTestDeps()
	tests := []struct {
		mode    component.Mode
		ceiling float64
	}{
		{component.Idle, 0.08},
		{component.Active, 0.2},
	}
	for _, tt := range tests {
		f := NewHexField(cfg, rng)
		f.Reset(300, 200, tt.mode)
		for i := 0; i < 5000; i++ {
			f.Step()
		}
		for _, c := range f.Cells() {
			if c.Phase < 0 || c.Phase >= 2*math.Pi {
				t.Fatalf("%v: phase %v outside [0, 2π)", tt.mode, c.Phase)
			}
			if o := f.Opacity(c); o < 0 || o > tt.ceiling+1e-12 {
				t.Fatalf("%v: opacity %v outside [0, %v]", tt.mode, o, tt.ceiling)
			}
		}
	}
}

func TestHexFieldFrameStyle(t *testing.T) {
	cfg, rng := newTestDeps()
	f := NewHexField(cfg, rng)
	f.Reset(200, 100, component.Active)
	rec := render.NewRecorder(200, 100)
	f.Frame(rec, epoch, component.Inputs{Mode: component.Active})

	if got, want := rec.Count(render.OpStrokePolygon), len(f.Cells()); got != want {
		t.Fatalf("Expected %d hexagons, got %d", want, got)
	}
	for _, op := range rec.Ops {
		if op.Width != 1.5 || len(op.Points) != 6 {
			t.Fatalf("unexpected hexagon op %+v", op)
		}
		if op.Color.R != config.Cyan.R || op.Color.G != config.Cyan.G {
			t.Fatalf("Expected cyan hexagons in active mode, got %v", op.Color)
		}
	}
}

func TestParticleFieldCountsPerMode(t *testing.T) {
	cfg, rng := newTestDeps()
	f := NewParticleField(cfg, rng)
	f.Reset(400, 300, component.Idle)
	if n := len(f.Particles()); n != 25 {
		t.Errorf("Expected 25 idle particles, got %d", n)
	}
	f.Reset(400, 300, component.Active)
	if n := len(f.Particles()); n != 50 {
		t.Errorf("Expected 50 active particles, got %d", n)
	}
	for _, p := range f.Particles() {
		if p.Radius < 1 || p.Radius >= 3 {
			t.Errorf("radius %v outside [1,3)", p.Radius)
		}
		if math.Abs(p.VX) > 0.75 || math.Abs(p.VY) > 0.75 {
			t.Errorf("velocity (%v,%v) exceeds active bound", p.VX, p.VY)
		}
		if p.Life != 1 {
			t.Errorf("Expected life 1, got %v", p.Life)
		}
	}
}

func TestParticleFieldStaysInViewport(t *testing.T) {
	cfg, rng := newTestDeps()
	const w, h = 320, 240
	f := NewParticleField(cfg, rng)
	f.Reset(w, h, component.Active)

	// частицы ровно на границах
	f.particles = append(f.particles,
		component.Particle{X: 0, Y: 0, VX: -0.7, VY: -0.7},
		component.Particle{X: w - 1e-12, Y: h - 1e-12, VX: 0.7, VY: 0.7},
		component.Particle{X: 0, Y: h / 2, VX: 0, VY: 0},
	)
	for i := 0; i < 10000; i++ {
		f.Step()
		for _, p := range f.particles {
			if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
				t.Fatalf("step %d: particle at (%v,%v) escaped %dx%d", i, p.X, p.Y, w, h)
			}
		}
	}
}

func TestParticleFieldScanBand(t *testing.T) {
	cfg, rng := newTestDeps()
	f := NewParticleField(cfg, rng)
	f.Reset(400, 300, component.Active)

	if y := f.ScanY(time.Unix(0, 0)); y != 0 {
		t.Errorf("Expected band at 0 at t=0, got %v", y)
	}
	if y := f.ScanY(time.Unix(1, 0)); math.Abs(y-100) > 1e-9 {
		t.Errorf("Expected band at 100 after 1s, got %v", y)
	}
	if y := f.ScanY(time.Unix(4, 0)); math.Abs(y-100) > 1e-9 {
		t.Errorf("Expected band to wrap to 100 after 4s, got %v", y)
	}

	rec := render.NewRecorder(400, 300)
	f.Frame(rec, epoch, component.Inputs{Mode: component.Active})
	bands := rec.Filter(func(op render.Op) bool { return op.Kind == render.OpFillBand })
	if len(bands) != 1 || bands[0].Radius != 50 {
		t.Fatalf("Expected one ±50 scan band, got %+v", bands)
	}
	// диск и след на каждую частицу
	if got := rec.Count(render.OpFillCircle); got != 100 {
		t.Errorf("Expected 100 circles, got %d", got)
	}

	f.Reset(400, 300, component.Idle)
	rec.Reset()
	f.Frame(rec, epoch, component.Inputs{})
	if rec.Count(render.OpFillBand) != 0 {
		t.Error("Expected no scan band in idle mode")
	}
	if got := rec.Count(render.OpFillCircle); got != 25 {
		t.Errorf("Expected 25 circles in idle mode, got %d", got)
	}
}

func TestCircuitGraphConnections(t *testing.T) {
	cfg, rng := newTestDeps()
	g := NewCircuitGraph(cfg, rng)
	g.Reset(600, 400, component.Active)

	nodes := g.Nodes()
	if len(nodes) != 45 {
		t.Fatalf("Expected 45 active nodes, got %d", len(nodes))
	}
	for i, n := range nodes {
		if n.Color != nodeColor(i) {
			t.Errorf("node %d: unexpected colour %v", i, n.Color)
		}
		for _, j := range n.Connections {
			if j == i {
				t.Errorf("node %d connected to itself", i)
			}
			d := geom.Distance(geom.Pt(n.X, n.Y), geom.Pt(nodes[j].X, nodes[j].Y))
			if d >= cfg.ConnectionRadius {
				t.Errorf("edge %d-%d has length %v", i, j, d)
			}
			found := false
			for _, k := range nodes[j].Connections {
				if k == i {
					found = true
				}
			}
			if !found {
				t.Errorf("edge %d-%d is not symmetric", i, j)
			}
		}
		for j := range nodes {
			if j == i {
				continue
			}
			d := geom.Distance(geom.Pt(n.X, n.Y), geom.Pt(nodes[j].X, nodes[j].Y))
			if d < cfg.ConnectionRadius && !contains(n.Connections, j) {
				t.Errorf("nodes %d and %d are %v apart but not connected", i, j, d)
			}
		}
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func TestNodeColorByIndex(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "magenta"}, {1, "cyan"}, {2, "blue"}, {3, "violet"},
		{4, "magenta"}, {6, "violet"}, {9, "violet"}, {10, "blue"}, {12, "magenta"},
	}
	names := map[string]color.RGBA{
		"magenta": config.Magenta, "cyan": config.Cyan, "blue": config.Blue, "violet": config.Violet,
	}
	for _, tt := range tests {
		if got := nodeColor(tt.i); got != names[tt.want] {
			t.Errorf("nodeColor(%d) = %v, want %s", tt.i, got, tt.want)
		}
	}
}

func TestCircuitGraphNodesStayInViewport(t *testing.T) {
	cfg, rng := newTestDeps()
	const w, h = 200, 150
	g := NewCircuitGraph(cfg, rng)
	g.Reset(w, h, component.Active)
	g.nodes = append(g.nodes, component.CircuitNode{X: 0, Y: h - 1e-9, VX: -1.4, VY: 1.4})

	for i := 0; i < 10000; i++ {
		g.Step()
		for _, n := range g.nodes {
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
				t.Fatalf("step %d: node at (%v,%v) escaped", i, n.X, n.Y)
			}
		}
	}
}

func TestCircuitGraphConnectionsNeverRecomputed(t *testing.T) {
	cfg, rng := newTestDeps()
	g := NewCircuitGraph(cfg, rng)
	g.Reset(600, 400, component.Idle)

	before := make([][]int, len(g.Nodes()))
	for i, n := range g.Nodes() {
		before[i] = append([]int(nil), n.Connections...)
	}
	rec := render.NewRecorder(600, 400)
	for i := 0; i < 500; i++ {
		g.Frame(rec, epoch.Add(time.Duration(i)*16*time.Millisecond), component.Inputs{})
	}
	for i, n := range g.Nodes() {
		if len(n.Connections) != len(before[i]) {
			t.Fatalf("node %d: connections changed from %v to %v", i, before[i], n.Connections)
		}
	}
}

func TestCircuitEdgeOpacity(t *testing.T) {
	cfg, rng := newTestDeps()
	g := NewCircuitGraph(cfg, rng)

	tests := []struct {
		mode component.Mode
		dist float64
		want float64
		ok   bool
	}{
		{component.Idle, 0, 0.2, true},
		{component.Idle, 75, 0.1, true},
		{component.Idle, 150, 0, false},
		{component.Idle, 200, 0, false},
		{component.Active, 0, 0.6, true},
		{component.Active, 75, 0.3, true},
	}
	for _, tt := range tests {
		g.Reset(10, 10, tt.mode)
		got, ok := g.EdgeOpacity(tt.dist)
		if ok != tt.ok || math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v d=%v: got (%v,%v), want (%v,%v)", tt.mode, tt.dist, got, ok, tt.want, tt.ok)
		}
	}

	cfg.Active.EdgeOpacity = 10
	g.Reset(10, 10, component.Active)
	if got, _ := g.EdgeOpacity(0); got != 1 {
		t.Errorf("Expected opacity capped at 1, got %v", got)
	}
}

func TestCircuitGraphIdleNoPulses(t *testing.T) {
	cfg, rng := newTestDeps()
	g := NewCircuitGraph(cfg, rng)
	g.Reset(600, 400, component.Idle)
	rec := render.NewRecorder(600, 400)
	g.Frame(rec, epoch, component.Inputs{})

	// в простое рисуются только узлы, без импульсов и колец
	if got := rec.Count(render.OpFillCircle); got != len(g.Nodes()) {
		t.Errorf("Expected %d node disks, got %d", len(g.Nodes()), got)
	}
	if rec.Count(render.OpStrokeCircle) != 0 {
		t.Error("Expected no rings in idle mode")
	}
}

func TestPulseHelpers(t *testing.T) {
	if got := PulsePhase(time.Unix(3, int64(250*time.Millisecond))); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("PulsePhase = %v, want 0.25", got)
	}
	for i := 0; i < 10; i++ {
		p := NodePulse(epoch.Add(time.Duration(i)*37*time.Millisecond), i)
		if p < 0.5 || p > 1.5 {
			t.Errorf("NodePulse = %v outside [0.5,1.5]", p)
		}
	}
}

func TestTracerScenarios(t *testing.T) {
	tr := NewProgressTracer()
	tr.Reset(100, 100, component.Active)

	t.Run("progress 0", func(t *testing.T) {
		rec := render.NewRecorder(100, 100)
		tr.Frame(rec, epoch, component.Inputs{Mode: component.Active, Progress: 0})
		if rec.Count(render.OpFillCircle) != 0 || rec.Count(render.OpStrokeCircle) != 0 {
			t.Errorf("Expected no markers, got %v", rec.Ops)
		}
		if rec.Count(render.OpStrokePolyline) != 1 {
			t.Errorf("Expected only the guide outline, got %d polylines", rec.Count(render.OpStrokePolyline))
		}
		if pts := tr.Path().Prefix(0); len(pts) != 0 {
			t.Errorf("Expected empty prefix, got %v", pts)
		}
	})

	t.Run("progress 50", func(t *testing.T) {
		rec := render.NewRecorder(100, 100)
		tr.Frame(rec, epoch, component.Inputs{Mode: component.Active, Progress: 50})

		want := geom.Pt(10, 70)
		if got := tr.Marker(0.5); geom.Distance(got, want) > 1e-9 {
			t.Errorf("Marker(0.5) = %v, want %v", got, want)
		}
		lines := rec.Filter(func(op render.Op) bool { return op.Kind == render.OpStrokePolyline })
		if len(lines) != 2 {
			t.Fatalf("Expected guide and prefix, got %d polylines", len(lines))
		}
		prefix := lines[1]
		if prefix.Width != 3 || prefix.Glow != 25 || prefix.Color != config.Cyan {
			t.Errorf("unexpected prefix style %+v", prefix)
		}
		if last := prefix.Points[len(prefix.Points)-1]; geom.Distance(last, want) > 1e-9 {
			t.Errorf("prefix ends at %v, want %v", last, want)
		}
		markers := rec.Filter(func(op render.Op) bool { return op.Kind == render.OpFillCircle && op.Radius == 8 })
		if len(markers) != 1 || geom.Distance(markers[0].Points[0], want) > 1e-9 {
			t.Errorf("Expected one primary marker at %v, got %+v", want, markers)
		}
		if rec.Count(render.OpStrokeCircle) != 0 {
			t.Error("Expected no success ring below 100")
		}
	})

	t.Run("progress 100", func(t *testing.T) {
		rec := render.NewRecorder(100, 100)
		tr.Frame(rec, epoch, component.Inputs{Mode: component.Active, Progress: 100})

		end := geom.Pt(90, 70)
		circles := rec.Filter(func(op render.Op) bool { return op.Kind == render.OpFillCircle })
		if len(circles) != 1 {
			t.Fatalf("Expected only the success marker, got %+v", circles)
		}
		if circles[0].Color != config.Success || circles[0].Radius != 10 || geom.Distance(circles[0].Points[0], end) > 1e-9 {
			t.Errorf("unexpected success marker %+v", circles[0])
		}
		rings := rec.Filter(func(op render.Op) bool { return op.Kind == render.OpStrokeCircle })
		if len(rings) != 1 || geom.Distance(rings[0].Points[0], end) > 1e-9 {
			t.Errorf("Expected one ring at %v, got %+v", end, rings)
		}
	})
}

func TestTracerEchoes(t *testing.T) {
	tr := NewProgressTracer()
	tr.Reset(100, 100, component.Active)

	echoes := tr.Echoes(0.5)
	if len(echoes) != 3 {
		t.Fatalf("Expected 3 echoes, got %d", len(echoes))
	}
	for k, e := range echoes {
		step := float64(k + 1)
		if e.Radius != 4-step {
			t.Errorf("echo %d: radius %v", k+1, e.Radius)
		}
		if math.Abs(e.Alpha-(0.6-0.2*step)) > 1e-9 {
			t.Errorf("echo %d: alpha %v", k+1, e.Alpha)
		}
		want := tr.Marker(0.5 - 0.02*step)
		if geom.Distance(e.At, want) > 1e-9 {
			t.Errorf("echo %d at %v, want %v", k+1, e.At, want)
		}
	}

	// у самого старта эхо прижимаются к началу пути
	for k, e := range tr.Echoes(0.01) {
		if e.At != tr.Path().Start {
			t.Errorf("echo %d: expected clamp to start, got %v", k+1, e.At)
		}
	}
}

func TestSuccessRingBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		r := SuccessRing(epoch.Add(time.Duration(i) * 23 * time.Millisecond))
		if r < 6-1e-9 || r > 15+1e-9 {
			t.Errorf("ring radius %v outside [6,15]", r)
		}
	}
}

func TestFlashEffect(t *testing.T) {
	f := NewFlashEffect(2 * time.Second)
	if f.Active() {
		t.Fatal("Expected a new flash to be inactive")
	}
	f.Trigger()
	if !f.Active() || f.Intensity() != 1 {
		t.Fatalf("Expected full intensity after Trigger, got %v", f.Intensity())
	}
	f.Update(0.5)
	if math.Abs(f.Intensity()-0.75) > 1e-9 {
		t.Errorf("Expected 0.75 after 0.5s, got %v", f.Intensity())
	}
	f.Update(10)
	if f.Active() || f.Intensity() != 0 {
		t.Errorf("Expected the flash to be out, got %v", f.Intensity())
	}
	if (&FlashEffect{}).Intensity() != 0 {
		t.Error("Expected zero-duration flash to have no intensity")
	}
}
