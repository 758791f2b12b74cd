package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-delaunay/pkg/delaunay"
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/0x0FACED/go-delaunay/static"
)

const (
	flagAddr   = "addr"
	flagWidth  = "width"
	flagHeight = "height"
	flagOrder  = "order"
	flagDebug  = "debug"

	maxRandom = 200
)

// server держит один триангулятор; все запросы к нему идут под мьютексом
type server struct {
	mu       sync.Mutex
	tr       *delaunay.Triangulator
	viewport r2.Rect
	logger   *logger.ZapLogger
	rnd      *rand.Rand
}

func newServer(cfg delaunay.Config, viewport r2.Rect, logger *logger.ZapLogger) *server {
	return &server{
		tr:       delaunay.New(cfg, logger),
		viewport: viewport,
		logger:   logger,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.diagramHandler)
	mux.HandleFunc("/insert", s.insertHandler)
	mux.HandleFunc("/random", s.randomHandler)
	mux.HandleFunc("/clear", s.clearHandler)
	mux.HandleFunc("/diagram.png", s.pngHandler)
	return mux
}

func parsePoint(r *http.Request) (geom.Point, error) {
	x, err := strconv.ParseFloat(r.FormValue("x"), 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "bad x")
	}
	y, err := strconv.ParseFloat(r.FormValue("y"), 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "bad y")
	}
	return geom.Point{X: x, Y: y}, nil
}

// http обработчик страницы с диаграммой, формами и логами
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	snap := render.Take(s.tr, s.viewport)
	triangles := len(s.tr.Triangles())
	s.mu.Unlock()

	size := s.viewport.Size()
	fmt.Fprintln(w, static.Head(int(size.X), int(size.Y), len(snap.Sites), triangles))

	if err := render.Chart(snap).Render(w); err != nil {
		s.logger.Error("[app] Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Middle)
	fmt.Fprintln(w, s.logger.HTML())
	fmt.Fprintln(w, static.Tail)
}

func (s *server) insertHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	p, err := parsePoint(r)
	if err == nil {
		err = s.insert(p)
	}
	if err != nil {
		s.logger.Warn("[app] Точка отклонена", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) insert(p geom.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tr.Bounding().Contains(p) {
		return errors.Errorf("point %v is outside bounding triangle", p)
	}
	s.tr.Insert(p)
	return nil
}

// Случайные точки внутри окна
func (s *server) randomHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n, err := strconv.Atoi(r.FormValue("n"))
	if err != nil || n < 1 || n > maxRandom {
		http.Error(w, fmt.Sprintf("n must be in [1, %d]", maxRandom), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	for i := 0; i < n; i++ {
		s.tr.Insert(geom.Point{
			X: float64(int(s.viewport.X.Lo) + s.rnd.Intn(int(s.viewport.X.Length()))),
			Y: float64(int(s.viewport.Y.Lo) + s.rnd.Intn(int(s.viewport.Y.Length()))),
		})
	}
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) clearHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	s.tr.Clear()
	s.mu.Unlock()
	s.logger.ClearLogs()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) pngHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := render.Take(s.tr, s.viewport)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, snap); err != nil {
		s.logger.Error("[app] Ошибка PNG", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func run(c *cli.Context) error {
	level := zapcore.InfoLevel
	if c.Bool(flagDebug) {
		level = zapcore.DebugLevel
	}
	log := logger.New(level)

	order, err := voronoi.ParseVertexOrder(c.String(flagOrder))
	if err != nil {
		return err
	}

	cfg := delaunay.DefaultConfig()
	cfg.Order = order

	viewport := r2.RectFromPoints(r2.Point{}, r2.Point{X: float64(c.Int(flagWidth)), Y: float64(c.Int(flagHeight))})
	if err := cfg.Validate(viewport); err != nil {
		return errors.Wrap(err, "config")
	}

	s := newServer(cfg, viewport, log)

	addr := c.String(flagAddr)
	log.Info("[app] Сервер запущен", zap.String("addr", addr), zap.Stringer("order", order))
	fmt.Printf("Сервер запущен на http://localhost%s\n", addr)

	return http.ListenAndServe(addr, s.routes())
}

func main() {
	app := &cli.App{
		Name:  "delaunay",
		Usage: "incremental Delaunay triangulation and Voronoi diagram demo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagAddr,
				Value: ":8080",
				Usage: "listen address",
			},
			&cli.IntFlag{
				Name:  flagWidth,
				Value: 720,
				Usage: "viewport width in pixels",
			},
			&cli.IntFlag{
				Name:  flagHeight,
				Value: 720,
				Usage: "viewport height in pixels",
			},
			&cli.StringFlag{
				Name:  flagOrder,
				Value: voronoi.AsFound.String(),
				Usage: "cell vertex order: found or angle",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Err:", err)
		os.Exit(1)
	}
}
