package voronoi

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
)

// BuildDiagram строит двойственную к триангуляции диаграмму Вороного.
// Первая ячейка - внешняя (углы ограничивающего треугольника),
// дальше по одной ячейке на сайт в порядке sites.
// Результат не ссылается на память sites и triangles.
func BuildDiagram(bounding geom.Triangle, sites []geom.Point, triangles []geom.Triangle, order VertexOrder, log *logger.ZapLogger) []Cell {
	log.Debug("[v] Построение диаграммы", zap.Int("sites", len(sites)), zap.Int("triangles", len(triangles)), zap.Stringer("order", order))

	cells := make([]Cell, 0, len(sites)+1)
	cells = append(cells, Cell{
		Vertices: []geom.Point{bounding.P1, bounding.P2, bounding.P3},
		Sentinel: true,
	})

	for _, site := range sites {
		// смежные треугольники
		adjacent := lo.Filter(triangles, func(t geom.Triangle, _ int) bool {
			return t.HasVertex(site)
		})

		// центры описанных окружностей, вырожденные пропускаем
		centers := lo.FilterMap(adjacent, func(t geom.Triangle, _ int) (geom.Point, bool) {
			circle, ok := t.Circumcircle()
			return circle.Center, ok
		})

		cell := Cell{Center: site, Vertices: centers}
		if cell.prepare(order) == 0 {
			log.Warn("[v] Пустая ячейка", zap.Stringer("site", site))
		}
		cells = append(cells, cell)
	}

	log.Debug("[v] Диаграмма готова", zap.Int("cells", len(cells)))
	return cells
}
