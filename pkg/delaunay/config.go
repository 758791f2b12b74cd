package delaunay

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
)

var (
	ErrDegenerateBounding  = errors.New("bounding triangle is degenerate")
	ErrViewportNotEnclosed = errors.New("viewport is not enclosed by bounding triangle")
	ErrViewportTooSmall    = errors.New("viewport is smaller than one pixel")
)

// DefaultBounding накрывает окно 720x720 с большим запасом
var DefaultBounding = geom.Triangle{
	P1: geom.Point{X: -1000, Y: -1000},
	P2: geom.Point{X: 500, Y: 3000},
	P3: geom.Point{X: 1500, Y: -1000},
}

type Config struct {
	// Bounding - синтетический треугольник, с которого начинается каждая перестройка
	Bounding geom.Triangle
	// Order - порядок вершин в ячейках BuildDiagram
	Order voronoi.VertexOrder
}

func DefaultConfig() Config {
	return Config{
		Bounding: DefaultBounding,
		Order:    voronoi.AsFound,
	}
}

// Validate проверяет, что треугольник не вырожден, а окно не пустое
// и строго внутри треугольника
func (c Config) Validate(viewport r2.Rect) error {
	if size := viewport.Size(); viewport.IsEmpty() || size.X < 1 || size.Y < 1 {
		return errors.Wrapf(ErrViewportTooSmall, "%v", viewport)
	}

	if _, ok := c.Bounding.Circumcircle(); !ok || c.Bounding.Area2() == 0 {
		return errors.Wrapf(ErrDegenerateBounding, "%v", c.Bounding)
	}

	for _, v := range viewport.Vertices() {
		corner := geom.Point(v)
		if !c.Bounding.Contains(corner) {
			return errors.Wrapf(ErrViewportNotEnclosed, "corner %v", corner)
		}
	}
	return nil
}
