package render

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

const (
	seriesSites     = "Сайты"
	seriesTriangles = "Треугольники"
	seriesCells     = "Ячейки"
)

func rgb(c [3]int) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
}

func prepareScatter(scatter *charts.Scatter, s Snapshot) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "720px",
			Width:  "720px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Триангуляция Делоне и диаграмма Вороного",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		// оси по окну, иначе центры далеких окружностей растягивают график
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			Min:  s.Viewport.X.Lo,
			Max:  s.Viewport.X.Hi,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			Min:  s.Viewport.Y.Lo,
			Max:  s.Viewport.Y.Hi,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// closedLine - замкнутая ломаная для наложения на scatter
func closedLine(name, color string, points []geom.Point) *charts.Line {
	closed := append(append([]geom.Point(nil), points...), points[0])
	data := lo.Map(closed, func(p geom.Point, _ int) opts.LineData {
		return opts.LineData{Value: []float64{p.X, p.Y}}
	})

	line := charts.NewLine()
	line.AddSeries(name, data).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 1,
			Color: color,
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: color,
		}),
	)
	return line
}

// Chart переводит снимок в echarts: сайты, треугольники и ячейки поверх
func Chart(s Snapshot) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, s)

	points := lo.Map(s.Sites, func(p geom.Point, _ int) opts.ScatterData {
		return opts.ScatterData{Value: []float64{p.X, p.Y}}
	})
	scatter.AddSeries(seriesSites, points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: rgb(SiteColor),
			}),
		)

	for _, t := range s.Triangles {
		v := t.Vertices()
		scatter.Overlap(closedLine(seriesTriangles, rgb(TriangleColor), v[:]))
	}

	for _, c := range s.drawableCells() {
		scatter.Overlap(closedLine(seriesCells, rgb(CellColor), c.Vertices))
	}

	return scatter
}
