package delaunay

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
)

func randomSites(seed int64, n int) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	sites := make([]geom.Point, n)
	for i := range sites {
		sites[i] = geom.Point{X: r.Float64() * 720, Y: r.Float64() * 720}
	}
	return sites
}

func newTestTriangulator() *Triangulator {
	return New(DefaultConfig(), logger.NewNop())
}

func TestEmpty(t *testing.T) {
	tr := newTestTriangulator()
	assert.Equal(t, []geom.Triangle{DefaultBounding}, tr.Triangles())
	assert.Empty(t, tr.Sites())
	assert.Empty(t, tr.InteriorTriangles())
	assert.NoError(t, tr.Anomalies())

	cells := tr.BuildDiagram()
	require.Len(t, cells, 1)
	assert.True(t, cells[0].Sentinel)
}

func TestSingleSite(t *testing.T) {
	tr := newTestTriangulator()
	site := geom.Point{X: 300, Y: 300}
	tr.Insert(site)

	b := DefaultBounding
	expected := []geom.Triangle{
		{P1: b.P1, P2: b.P2, P3: site},
		{P1: b.P2, P2: b.P3, P3: site},
		{P1: b.P3, P2: b.P1, P3: site},
	}
	assert.Equal(t, expected, tr.Triangles())
	assert.Empty(t, tr.InteriorTriangles())
}

func TestAcuteTriangle(t *testing.T) {
	tr := newTestTriangulator()
	sites := []geom.Point{{X: 200, Y: 200}, {X: 400, Y: 220}, {X: 300, Y: 380}}
	for _, s := range sites {
		tr.Insert(s)
	}

	interior := tr.InteriorTriangles()
	require.Len(t, interior, 1)
	for _, s := range sites {
		assert.True(t, interior[0].HasVertex(s))
	}
	assert.False(t, interior[0].CircumcircleContains(geom.Point{X: 600, Y: 600}))
	assert.Len(t, tr.Triangles(), 7)
}

func TestDelaunayProperty(t *testing.T) {
	tr := newTestTriangulator()
	sites := randomSites(42, 80)
	for _, s := range sites {
		tr.Insert(s)
	}
	require.NoError(t, tr.Anomalies())

	for _, tri := range tr.Triangles() {
		for _, s := range tr.Sites() {
			if tri.HasVertex(s) {
				continue
			}
			assert.False(t, tri.CircumcircleContains(s), "site %v inside circumcircle of %v", s, tri)
		}
	}
}

func TestTriangleCountGrowth(t *testing.T) {
	tr := newTestTriangulator()
	prev := len(tr.Triangles())
	for i, s := range randomSites(7, 50) {
		tr.Insert(s)
		n := len(tr.Triangles())
		assert.Greater(t, n, prev)
		// n+3 вершин, 3 на выпуклой оболочке
		assert.Equal(t, 2*(i+1)+1, n)
		prev = n
	}
}

func TestDeterminism(t *testing.T) {
	sites := randomSites(99, 40)

	a := newTestTriangulator()
	b := newTestTriangulator()
	c := newTestTriangulator()
	for _, s := range sites {
		a.Insert(s)
		b.Insert(s)
	}
	for i := len(sites) - 1; i >= 0; i-- {
		c.Insert(sites[i])
	}

	assert.Equal(t, a.Triangles(), b.Triangles())
	assert.Equal(t, a.Triangles(), c.Triangles())
	assert.Equal(t, a.Sites(), c.Sites())
	assert.Equal(t, a.BuildDiagram(), c.BuildDiagram())
}

func TestDuplicateSites(t *testing.T) {
	tr := newTestTriangulator()
	site := geom.Point{X: 100, Y: 100}

	require.NotPanics(t, func() {
		tr.Insert(site)
		tr.Insert(site)
	})
	assert.Equal(t, 2, tr.Len())
	assert.Len(t, tr.Triangles(), 3)

	first := tr.BuildDiagram()
	second := tr.BuildDiagram()
	assert.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Len(t, tr.Triangles(), 3)
}

func TestDuplicateAmongOthers(t *testing.T) {
	tr := newTestTriangulator()
	for _, s := range randomSites(3, 10) {
		tr.Insert(s)
	}
	dup := tr.Sites()[4]

	require.NotPanics(t, func() { tr.Insert(dup) })
	cells := tr.BuildDiagram()
	assert.Len(t, cells, tr.Len()+1)
}

func TestSortedSites(t *testing.T) {
	tr := newTestTriangulator()
	tr.Insert(geom.Point{X: 5, Y: 9})
	tr.Insert(geom.Point{X: 7, Y: 1})
	tr.Insert(geom.Point{X: 2, Y: 9})

	assert.Equal(t, []geom.Point{{X: 7, Y: 1}, {X: 2, Y: 9}, {X: 5, Y: 9}}, tr.Sites())
}

func TestSnapshotsAreCopies(t *testing.T) {
	tr := newTestTriangulator()
	tr.Insert(geom.Point{X: 300, Y: 300})

	tris := tr.Triangles()
	tris[0] = geom.Triangle{}
	sites := tr.Sites()
	sites[0] = geom.Point{}

	assert.NotEqual(t, geom.Triangle{}, tr.Triangles()[0])
	assert.Equal(t, geom.Point{X: 300, Y: 300}, tr.Sites()[0])
}

func TestClear(t *testing.T) {
	tr := newTestTriangulator()
	for _, s := range randomSites(1, 5) {
		tr.Insert(s)
	}
	tr.Clear()

	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, []geom.Triangle{DefaultBounding}, tr.Triangles())
	assert.Len(t, tr.BuildDiagram(), 1)

	tr.Insert(geom.Point{X: 300, Y: 300})
	assert.Len(t, tr.Triangles(), 3)
}

func TestDiagram(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Order = voronoi.ByAngle
	tr := New(cfg, logger.NewNop())
	for _, s := range randomSites(5, 20) {
		tr.Insert(s)
	}

	cells := tr.BuildDiagram()
	require.Len(t, cells, 21)
	assert.True(t, cells[0].Sentinel)
	assert.Equal(t, []geom.Point{DefaultBounding.P1, DefaultBounding.P2, DefaultBounding.P3}, cells[0].Vertices)

	for i, s := range tr.Sites() {
		cell := cells[i+1]
		assert.Equal(t, s, cell.Center)
		assert.False(t, cell.Degenerate())

		// ни один сайт не ближе к вершине ячейки, чем сам центр
		for _, v := range cell.Vertices {
			d := v.DistanceSq(s)
			for _, other := range tr.Sites() {
				assert.GreaterOrEqual(t, v.DistanceSq(other), d*(1-1e-9)-geom.Epsilon)
			}
		}

		for j := 1; j < len(cell.Vertices); j++ {
			assert.LessOrEqual(t, s.Angle(cell.Vertices[j-1]), s.Angle(cell.Vertices[j]))
		}
	}
}

func TestLogging(t *testing.T) {
	log := logger.New(zapcore.DebugLevel)
	tr := New(DefaultConfig(), log)
	tr.Insert(geom.Point{X: 300, Y: 300})

	lines := log.Lines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "[d] Триангуляция перестроена")

	assert.Contains(t, strings.Join(lines, "\n"), "[d-site] Сайт обработан")
}

func TestCancelEdges(t *testing.T) {
	a, b, c, d := geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 4}, geom.Point{X: 4, Y: 0}, geom.Point{X: 4, Y: 4}
	t1 := geom.Triangle{P1: a, P2: b, P3: c}
	t2 := geom.Triangle{P1: b, P2: d, P3: c}

	e1, e2 := t1.Edges(), t2.Edges()
	edges := append(e1[:], e2[:]...)

	boundary, err := cancelEdges(edges)
	require.NoError(t, err)
	assert.Equal(t, []geom.Segment{{P1: a, P2: b}, {P1: c, P2: a}, {P1: b, P2: d}, {P1: d, P2: c}}, boundary)

	shared := geom.Segment{P1: b, P2: c}
	for _, e := range boundary {
		assert.False(t, e.SameEdge(shared))
	}
}

func TestCancelEdgesSameDirection(t *testing.T) {
	a, b := geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}
	edges := []geom.Segment{{P1: a, P2: b}, {P1: a, P2: b}}

	boundary, err := cancelEdges(edges)
	require.NoError(t, err)
	assert.Len(t, boundary, 2)
}

func TestTripleSharedEdge(t *testing.T) {
	a, b, c := geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}, geom.Point{X: 2, Y: 0}
	edges := []geom.Segment{{P1: a, P2: b}, {P1: b, P2: a}, {P1: a, P2: b}, {P1: b, P2: c}}

	boundary, err := cancelEdges(edges)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTripleSharedEdge)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Equal(t, []geom.Segment{{P1: a, P2: b}, {P1: b, P2: c}}, boundary)

	wrapped := wrapSite(err, geom.Point{X: 9, Y: 9})
	assert.ErrorIs(t, wrapped, ErrTripleSharedEdge)
	assert.Contains(t, wrapped.Error(), "site")
}

func TestConfigValidate(t *testing.T) {
	viewport := r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 720, Y: 720})
	assert.NoError(t, DefaultConfig().Validate(viewport))

	huge := r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 5000, Y: 5000})
	assert.ErrorIs(t, DefaultConfig().Validate(huge), ErrViewportNotEnclosed)

	// окно не обязано начинаться в нуле
	shifted := r2.RectFromPoints(r2.Point{X: -100, Y: -50}, r2.Point{X: 300, Y: 400})
	assert.NoError(t, DefaultConfig().Validate(shifted))

	for name, rect := range map[string]r2.Rect{
		"zero width":  r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 0, Y: 720}),
		"zero height": r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 720, Y: 0}),
		"sub pixel":   r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 0.5, Y: 720}),
		"empty":       r2.EmptyRect(),
	} {
		assert.ErrorIs(t, DefaultConfig().Validate(rect), ErrViewportTooSmall, name)
	}

	cfg := DefaultConfig()
	cfg.Bounding = geom.Triangle{P1: geom.Point{X: 0, Y: 0}, P2: geom.Point{X: 1, Y: 1}, P3: geom.Point{X: 2, Y: 2}}
	assert.ErrorIs(t, cfg.Validate(viewport), ErrDegenerateBounding)
}
