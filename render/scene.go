package render

import (
	"errors"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/vmath"
)

// ErrNotInScene is returned when removing an object the scene does not hold
var ErrNotInScene = errors.New("object not in scene")

// SceneGraph accepts renderables
type SceneGraph interface {
	Add(obj Renderable)
	Remove(obj Renderable) error
}

// Ground is the infinite-looking floor drawn behind all meshes
type Ground struct {
	Y         float64
	HalfWidth float64
	HalfDepth float64
	Color     RGB
}

// Scene draws meshes through a camera onto a tcell screen
type Scene struct {
	screen  tcell.Screen
	camera  *Camera
	objects []Renderable

	Sky    RGB
	Ground *Ground // nil draws sky only
	HUD    func() string

	frames uint64
}

// NewScene creates an empty scene on screen viewed through camera
func NewScene(screen tcell.Screen, camera *Camera) *Scene {
	return &Scene{
		screen:  screen,
		camera:  camera,
		objects: make([]Renderable, 0, 64),
		Sky:     Hex(parameter.ColorSky),
	}
}

// Camera returns the scene camera
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Add inserts obj, no-op if already present
func (s *Scene) Add(obj Renderable) {
	if s.index(obj) >= 0 {
		return
	}
	s.objects = append(s.objects, obj)
}

// Remove takes obj out of the scene
func (s *Scene) Remove(obj Renderable) error {
	i := s.index(obj)
	if i < 0 {
		return ErrNotInScene
	}
	s.objects = append(s.objects[:i], s.objects[i+1:]...)
	return nil
}

// Len returns the number of objects in the scene
func (s *Scene) Len() int {
	return len(s.objects)
}

// Frames returns how many frames Render has submitted
func (s *Scene) Frames() uint64 {
	return s.frames
}

func (s *Scene) index(obj Renderable) int {
	for i, o := range s.objects {
		if o == obj {
			return i
		}
	}
	return -1
}

type drawItem struct {
	mesh  *Mesh
	depth float64
}

// Sync forces a full redraw on the next Show, after a resize
func (s *Scene) Sync() {
	s.screen.Sync()
}

// Render draws one frame and shows it
func (s *Scene) Render() {
	w, h := s.screen.Size()
	s.frames++
	if w <= 0 || h <= 0 {
		return
	}
	s.camera.SetAspect(float64(w) / (float64(h) * parameter.CellAspect))

	s.drawBackground(w, h)

	items := make([]drawItem, 0, len(s.objects))
	for _, obj := range s.objects {
		m, ok := obj.(*Mesh)
		if !ok || m.Disposed() {
			continue
		}
		if _, depth, ok := s.camera.Project(m.position); ok {
			items = append(items, drawItem{mesh: m, depth: depth})
		}
	}
	// Painter's order, farthest first
	sort.SliceStable(items, func(i, j int) bool { return items[i].depth > items[j].depth })

	for _, it := range items {
		switch it.mesh.geometry.Kind {
		case GeometryBox:
			s.drawBox(it.mesh, w, h)
		case GeometrySphere:
			s.drawSphere(it.mesh, it.depth, w, h)
		}
	}

	if s.HUD != nil {
		s.drawText(0, 0, s.HUD(), tcell.StyleDefault.
			Foreground(Hex(parameter.ColorHUD).Tcell()).
			Background(tcell.ColorBlack))
	}
	s.screen.Show()
}

// toCell maps NDC to fractional cell coordinates
func toCell(ndc vmath.Vec3, w, h int) point {
	return point{
		x: (ndc.X() + 1) / 2 * float64(w),
		y: (1 - ndc.Y()) / 2 * float64(h),
	}
}

func (s *Scene) drawBackground(w, h int) {
	sky := tcell.StyleDefault.Background(s.Sky.Tcell())
	for y := 0; y < h; y++ {
		ny := 1 - 2*(float64(y)+0.5)/float64(h)
		for x := 0; x < w; x++ {
			style := sky
			if s.Ground != nil {
				nx := 2*(float64(x)+0.5)/float64(w) - 1
				if c, ok := s.groundColor(nx, ny); ok {
					style = tcell.StyleDefault.Background(c.Tcell())
				}
			}
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// groundColor casts a ray through ndc and shades the floor hit, checkered per meter
func (s *Scene) groundColor(nx, ny float64) (RGB, bool) {
	origin, dir := s.camera.Ray(nx, ny)
	if dir.Y() >= -vmath.Epsilon {
		return RGB{}, false
	}
	t := (s.Ground.Y - origin.Y()) / dir.Y()
	if t <= 0 {
		return RGB{}, false
	}
	hit := origin.Add(dir.Mul(t))
	if math.Abs(hit.X()) > s.Ground.HalfWidth || math.Abs(hit.Z()) > s.Ground.HalfDepth {
		return RGB{}, false
	}
	shade := 1.0
	if (int(math.Floor(hit.X()))+int(math.Floor(hit.Z())))&1 == 1 {
		shade = 0.85
	}
	return s.Ground.Color.Scale(shade), true
}

func (s *Scene) drawBox(m *Mesh, w, h int) {
	corners := m.corners()
	pts := make([]point, 0, len(corners))
	for _, c := range corners {
		ndc, _, ok := s.camera.Project(c)
		if !ok {
			return
		}
		pts = append(pts, toCell(ndc, w, h))
	}
	hull := convexHull(pts)
	x0, y0, x1, y1 := hullBounds(hull, w, h)

	fill := tcell.StyleDefault.Background(m.material.Color.Tcell())
	edge := tcell.StyleDefault.Background(m.material.Color.Scale(0.6).Tcell())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !insideHull(hull, point{float64(x) + 0.5, float64(y) + 0.5}) {
				continue
			}
			style := fill
			if !insideHull(hull, point{float64(x) + 1.5, float64(y) + 0.5}) ||
				!insideHull(hull, point{float64(x) - 0.5, float64(y) + 0.5}) ||
				!insideHull(hull, point{float64(x) + 0.5, float64(y) + 1.5}) ||
				!insideHull(hull, point{float64(x) + 0.5, float64(y) - 0.5}) {
				style = edge
			}
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Scene) drawSphere(m *Mesh, depth float64, w, h int) {
	ndc, _, ok := s.camera.Project(m.position)
	if !ok {
		return
	}
	c := toCell(ndc, w, h)
	rows := m.geometry.Radius * s.camera.FocalY() / depth * float64(h) / 2
	cols := rows * parameter.CellAspect
	if rows < 0.5 {
		rows, cols = 0.5, 0.5*parameter.CellAspect
	}

	x0, x1 := max(int(math.Floor(c.x-cols)), 0), min(int(math.Ceil(c.x+cols)), w-1)
	y0, y1 := max(int(math.Floor(c.y-rows)), 0), min(int(math.Ceil(c.y+rows)), h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - c.x) / cols
			dy := (float64(y) + 0.5 - c.y) / rows
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			style := tcell.StyleDefault.Background(m.material.Color.Scale(1 - 0.4*d2).Tcell())
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Scene) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
