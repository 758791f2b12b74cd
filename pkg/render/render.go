// Package render рисует сайты, триангуляцию и ячейки. Ядро его не вызывает.
package render

import (
	"github.com/golang/geo/r2"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
)

// Цвета слоев: сайты, треугольники, ячейки
var (
	SiteColor     = [3]int{240, 240, 23}
	TriangleColor = [3]int{0, 240, 160}
	CellColor     = [3]int{40, 30, 200}
)

// Snapshot - все, что нужно нарисовать, снятое с триангулятора за один раз
type Snapshot struct {
	Sites     []geom.Point
	Triangles []geom.Triangle
	Cells     []voronoi.Cell
	Viewport  r2.Rect
}

// Take снимает состояние. Треугольники на углах ограничивающего не рисуются.
func Take(tr *delaunay.Triangulator, viewport r2.Rect) Snapshot {
	return Snapshot{
		Sites:     tr.Sites(),
		Triangles: tr.InteriorTriangles(),
		Cells:     tr.BuildDiagram(),
		Viewport:  viewport,
	}
}

// drawableCells - ячейки без внешней и без вырожденных
func (s Snapshot) drawableCells() []voronoi.Cell {
	out := make([]voronoi.Cell, 0, len(s.Cells))
	for _, c := range s.Cells {
		if c.Sentinel || c.Degenerate() {
			continue
		}
		out = append(out, c)
	}
	return out
}
