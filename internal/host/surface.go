// internal/host/surface.go
package host

import (
	"sort"

	"go-decryptviz/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// offscreen поверхность на отдельном ebiten.Image, которую Game сводит на
// экран в Draw.
type offscreen struct {
	name      string
	res       *render.Resources
	img       *ebiten.Image
	canvas    *render.EbitenCanvas
	w, h      int
	nextID    int
	listeners map[int]func(int, int)
}

func newOffscreen(name string, res *render.Resources) *offscreen {
	return &offscreen{name: name, res: res, listeners: make(map[int]func(int, int))}
}

// Canvas возвращает nil, пока изображение не создано.
func (s *offscreen) Canvas() render.Canvas {
	if s.canvas == nil {
		return nil
	}
	return s.canvas
}

func (s *offscreen) Size() (int, int) { return s.w, s.h }

func (s *offscreen) OnResize(fn func(int, int)) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// resize пересоздаёт изображение и оповещает подписчиков.
func (s *offscreen) resize(w, h int) {
	if w == s.w && h == s.h && s.img != nil {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img, s.canvas = nil, nil
	}
	s.w, s.h = w, h
	if w > 0 && h > 0 {
		s.img = ebiten.NewImage(w, h)
		s.canvas = render.NewEbitenCanvas(s.img, s.res)
	}

	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := s.listeners[id]; ok {
			fn(w, h)
		}
	}
}

// drawTo рисует поверхность поверх dst.
func (s *offscreen) drawTo(dst *ebiten.Image) {
	if s.img == nil {
		return
	}
	dst.DrawImage(s.img, nil)
}
