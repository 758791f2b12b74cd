package voronoi

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// VertexOrder - порядок вершин ячейки
type VertexOrder int

const (
	// AsFound - в порядке обхода смежных треугольников, без сортировки.
	// Многоугольник может оказаться самопересекающимся.
	AsFound VertexOrder = iota
	// ByAngle - против часовой стрелки вокруг сайта
	ByAngle
)

var ErrUnknownOrder = errors.New("unknown vertex order")

func (o VertexOrder) String() string {
	switch o {
	case AsFound:
		return "found"
	case ByAngle:
		return "angle"
	}
	return "unknown"
}

func ParseVertexOrder(s string) (VertexOrder, error) {
	switch s {
	case "found", "":
		return AsFound, nil
	case "angle":
		return ByAngle, nil
	}
	return AsFound, errors.Wrapf(ErrUnknownOrder, "%q", s)
}

// Cell - ячейка Вороного: сайт и центры описанных окружностей смежных треугольников
type Cell struct {
	Center   geom.Point
	Vertices []geom.Point
	// Sentinel - внешняя ячейка из углов ограничивающего треугольника
	Sentinel bool
}

// Degenerate - меньше трех вершин, рисовать нечего
func (c Cell) Degenerate() bool {
	return len(c.Vertices) < 3
}

// prepare упорядочивает вершины
func (c Cell) prepare(order VertexOrder) int {
	if order == ByAngle && !c.Sentinel {
		sort.Stable(geom.NewByAngle(c.Center, c.Vertices))
	}
	return len(c.Vertices)
}
