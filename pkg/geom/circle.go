package geom

import "math"

// Epsilon - абсолютный допуск предикатов, подобран под пиксельные координаты.
// При масштабировании координат корректность не гарантируется.
const Epsilon = 1e-4

// Circle - описанная окружность: центр и квадрат радиуса
type Circle struct {
	Center   Point
	RadiusSq float64
}

// Contains - точка внутри или на окружности (в пределах Epsilon)
func (c Circle) Contains(q Point) bool {
	return q.DistanceSq(c.Center)-c.RadiusSq <= Epsilon
}

// Circumcircle считает центр и квадрат радиуса окружности через a, b, c
// по серединным перпендикулярам ребер (a,b) и (b,c).
// Если оба ребра горизонтальны (в пределах Epsilon) или центр не конечен,
// возвращает false: такой треугольник ничего не захватывает.
func Circumcircle(a, b, c Point) (Circle, bool) {
	var xc, yc float64

	absAB := math.Abs(a.Y - b.Y)
	absBC := math.Abs(b.Y - c.Y)

	// совпадающие или горизонтальные точки
	if absAB < Epsilon && absBC < Epsilon {
		return Circle{}, false
	}

	switch {
	case absAB < Epsilon:
		// (a,b) горизонтально - центр над серединой (a,b)
		m2 := -(c.X - b.X) / (c.Y - b.Y)
		mx2 := (b.X + c.X) / 2
		my2 := (b.Y + c.Y) / 2
		xc = (a.X + b.X) / 2
		yc = m2*(xc-mx2) + my2
	case absBC < Epsilon:
		m1 := -(b.X - a.X) / (b.Y - a.Y)
		mx1 := (a.X + b.X) / 2
		my1 := (a.Y + b.Y) / 2
		xc = (b.X + c.X) / 2
		yc = m1*(xc-mx1) + my1
	default:
		m1 := -(b.X - a.X) / (b.Y - a.Y)
		m2 := -(c.X - b.X) / (c.Y - b.Y)
		mx1 := (a.X + b.X) / 2
		mx2 := (b.X + c.X) / 2
		my1 := (a.Y + b.Y) / 2
		my2 := (b.Y + c.Y) / 2
		xc = (m1*mx1 - m2*mx2 + my2 - my1) / (m1 - m2)
		// берем прямую с меньшим наклоном, так точнее
		if absAB > absBC {
			yc = m1*(xc-mx1) + my1
		} else {
			yc = m2*(xc-mx2) + my2
		}
	}

	center := Point{X: xc, Y: yc}
	if !center.IsFinite() {
		return Circle{}, false
	}

	return Circle{Center: center, RadiusSq: b.DistanceSq(center)}, true
}

// CircumcircleContains - лежит ли q внутри или на окружности через a, b, c.
// Для вырожденной тройки возвращает false и пустую окружность.
func CircumcircleContains(q, a, b, c Point) (bool, Circle) {
	circle, ok := Circumcircle(a, b, c)
	if !ok {
		return false, Circle{}
	}
	return circle.Contains(q), circle
}
