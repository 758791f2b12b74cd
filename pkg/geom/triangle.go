package geom

// Segment - ребро треугольника при построении полости.
// Направление важно только для отношения Reversed.
type Segment struct {
	P1 Point
	P2 Point
}

// Reversed - то же ребро, пройденное в обратную сторону
func (s Segment) Reversed(o Segment) bool {
	return s.P1 == o.P2 && s.P2 == o.P1
}

// SameEdge - совпадение без учета направления
func (s Segment) SameEdge(o Segment) bool {
	return (s.P1 == o.P1 && s.P2 == o.P2) || s.Reversed(o)
}

type Triangle struct {
	P1 Point
	P2 Point
	P3 Point
}

// Edges возвращает ребра в порядке (p1,p2), (p2,p3), (p3,p1).
// Соседние треугольники с одинаковой ориентацией проходят общее ребро навстречу друг другу.
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{
		{t.P1, t.P2},
		{t.P2, t.P3},
		{t.P3, t.P1},
	}
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.P1, t.P2, t.P3}
}

// HasVertex - является ли точка одной из вершин треугольника
func (t Triangle) HasVertex(p Point) bool {
	return p == t.P1 || p == t.P2 || p == t.P3
}

// SharesVertex - есть ли у треугольников общая вершина
func (t Triangle) SharesVertex(o Triangle) bool {
	return t.HasVertex(o.P1) || t.HasVertex(o.P2) || t.HasVertex(o.P3)
}

func (t Triangle) Circumcircle() (Circle, bool) {
	return Circumcircle(t.P1, t.P2, t.P3)
}

// CircumcircleContains - попадает ли точка в описанную окружность (включительно).
// Для вырожденного треугольника всегда false.
func (t Triangle) CircumcircleContains(q Point) bool {
	ok, _ := CircumcircleContains(q, t.P1, t.P2, t.P3)
	return ok
}

// Area2 - удвоенная ориентированная площадь
func (t Triangle) Area2() float64 {
	a := t.P2.vec().Sub(t.P1.vec())
	b := t.P3.vec().Sub(t.P1.vec())
	return a.Cross(b)
}

// Contains - лежит ли точка строго внутри треугольника
func (t Triangle) Contains(p Point) bool {
	d1 := Triangle{t.P1, t.P2, p}.Area2()
	d2 := Triangle{t.P2, t.P3, p}.Area2()
	d3 := Triangle{t.P3, t.P1, p}.Area2()
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}
