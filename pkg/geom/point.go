package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point - точка на плоскости (сайт или вершина треугольника).
// Сравнение строгое, по компонентам.
type Point r2.Point

func (p Point) vec() r2.Point { return r2.Point(p) }

// DistanceSq - квадрат расстояния между точками
func (p Point) DistanceSq(q Point) float64 {
	d := p.vec().Sub(q.vec())
	return d.Dot(d)
}

// Less задает порядок сайтов: сначала по Y, при равенстве по X
func (p Point) Less(q Point) bool {
	if p.Y == q.Y {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Angle - угол направления из p в q
func (p Point) Angle(q Point) float64 {
	d := q.vec().Sub(p.vec())
	return math.Atan2(d.Y, d.X)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return p.vec().String()
}

type points []Point

func (s points) Len() int      { return len(s) }
func (s points) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// ByY сортирует сайты сверху вниз (по Y), при равенстве слева направо
type ByY []Point

func (s ByY) Len() int           { return len(s) }
func (s ByY) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s ByY) Less(i, j int) bool { return s[i].Less(s[j]) }

// ByAngle сортирует точки против часовой стрелки вокруг центра
type ByAngle struct {
	points
	Center Point
}

func NewByAngle(center Point, ps []Point) ByAngle {
	return ByAngle{points: ps, Center: center}
}

func (s ByAngle) Less(i, j int) bool {
	return s.Center.Angle(s.points[i]) < s.Center.Angle(s.points[j])
}
