package delaunay

import (
	"sort"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
)

// Triangulator хранит сайты и текущую триангуляцию Делоне.
// Каждая вставка полностью перестраивает триангуляцию (Бойер-Ватсон).
// Не потокобезопасен: вызывающий сам сериализует доступ.
type Triangulator struct {
	cfg Config

	// сайты, отсортированы по Y, затем по X
	sites     []geom.Point
	triangles []geom.Triangle

	// аномалии последней перестройки
	anomalies error

	Logger *logger.ZapLogger
}

func New(cfg Config, logger *logger.ZapLogger) *Triangulator {
	t := &Triangulator{
		cfg:    cfg,
		Logger: logger,
	}
	t.reset()
	return t
}

// reset оставляет только ограничивающий треугольник
func (t *Triangulator) reset() {
	t.triangles = []geom.Triangle{t.cfg.Bounding}
	t.anomalies = nil
}

// Insert добавляет сайт и перестраивает триангуляцию
func (t *Triangulator) Insert(site geom.Point) {
	t.Logger.Info("[d] Новый сайт", zap.Stringer("site", site))
	t.sites = append(t.sites, site)
	t.rebuild()
}

// Clear удаляет все сайты
func (t *Triangulator) Clear() {
	t.Logger.Info("[d] Очистка", zap.Int("sites", len(t.sites)))
	t.sites = nil
	t.reset()
}

func (t *Triangulator) rebuild() {
	// порядок обработки фиксирован, иначе при совпадающих точках результат зависит от порядка вставки
	sort.Sort(geom.ByY(t.sites))
	t.reset()

	for _, site := range t.sites {
		t.addSite(site)
	}

	if t.anomalies != nil {
		t.Logger.Error("[d] Перестройка с аномалиями", zap.Error(t.anomalies))
	}
	t.Logger.Info("[d] Триангуляция перестроена", zap.Int("sites", len(t.sites)), zap.Int("triangles", len(t.triangles)))
}

func (t *Triangulator) addSite(site geom.Point) {
	// полость: треугольники, в чью окружность попал сайт, уходят, их ребра собираем
	var cavity []geom.Segment
	kept := make([]geom.Triangle, 0, len(t.triangles)+2)
	for _, tri := range t.triangles {
		if tri.CircumcircleContains(site) {
			edges := tri.Edges()
			cavity = append(cavity, edges[:]...)
			continue
		}
		kept = append(kept, tri)
	}

	boundary, err := cancelEdges(cavity)
	if err != nil {
		t.anomalies = multierr.Append(t.anomalies, wrapSite(err, site))
	}

	// каждое граничное ребро + сайт = новый треугольник
	for _, e := range boundary {
		kept = append(kept, geom.Triangle{P1: e.P1, P2: e.P2, P3: site})
	}

	t.Logger.Debug("[d-site] Сайт обработан",
		zap.Stringer("site", site),
		zap.Int("removed", len(cavity)/3),
		zap.Int("boundary", len(boundary)),
		zap.Int("triangles", len(kept)),
	)
	t.triangles = kept
}

// Triangles - копия текущей триангуляции, вместе с треугольниками на углах ограничивающего
func (t *Triangulator) Triangles() []geom.Triangle {
	return append([]geom.Triangle(nil), t.triangles...)
}

// InteriorTriangles - только треугольники без углов ограничивающего треугольника
func (t *Triangulator) InteriorTriangles() []geom.Triangle {
	return lo.Reject(t.triangles, func(tri geom.Triangle, _ int) bool {
		return tri.SharesVertex(t.cfg.Bounding)
	})
}

// Sites - копия сайтов в порядке обработки
func (t *Triangulator) Sites() []geom.Point {
	return append([]geom.Point(nil), t.sites...)
}

func (t *Triangulator) Len() int {
	return len(t.sites)
}

func (t *Triangulator) Bounding() geom.Triangle {
	return t.cfg.Bounding
}

// Anomalies - ошибки последней перестройки (ErrTripleSharedEdge), nil если все чисто.
// Отдельные ошибки достаются через multierr.Errors.
func (t *Triangulator) Anomalies() error {
	return t.anomalies
}

// BuildDiagram строит ячейки Вороного по текущим сайтам и треугольникам
func (t *Triangulator) BuildDiagram() []voronoi.Cell {
	return voronoi.BuildDiagram(t.cfg.Bounding, t.sites, t.triangles, t.cfg.Order, t.Logger)
}
