package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

const siteRadius = 3

// координаты обрезаются до целых пикселей
func px(p geom.Point) (float64, float64) {
	return math.Trunc(p.X), math.Trunc(p.Y)
}

// PNG рисует снимок в порядке: сайты, треугольники, ячейки
func PNG(w io.Writer, s Snapshot) error {
	size := s.Viewport.Size()
	if size.X <= 0 || size.Y <= 0 {
		return errors.Errorf("empty viewport %v", s.Viewport)
	}

	dc := gg.NewContext(int(size.X), int(size.Y))
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.Translate(-s.Viewport.X.Lo, -s.Viewport.Y.Lo)

	dc.SetRGB255(SiteColor[0], SiteColor[1], SiteColor[2])
	for _, site := range s.Sites {
		x, y := px(site)
		dc.DrawCircle(x, y, siteRadius)
		dc.Fill()
	}

	dc.SetLineWidth(1)
	dc.SetRGB255(TriangleColor[0], TriangleColor[1], TriangleColor[2])
	for _, t := range s.Triangles {
		polygon(dc, t.P1, t.P2, t.P3)
	}

	dc.SetRGB255(CellColor[0], CellColor[1], CellColor[2])
	for _, c := range s.drawableCells() {
		polygon(dc, c.Vertices...)
	}

	return errors.Wrap(dc.EncodePNG(w), "encode png")
}

func polygon(dc *gg.Context, points ...geom.Point) {
	for i, p := range points {
		x, y := px(p)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.ClosePath()
	dc.Stroke()
}
