package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gotrip/api-coordinator/internal/cache"
	"gotrip/api-coordinator/internal/health"
	"gotrip/api-coordinator/internal/middleware"
	"gotrip/api-coordinator/internal/monitoring"
	"gotrip/api-coordinator/internal/recommend"
	"gotrip/pkg/recommender"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// Deps son las piezas ya construidas que el router necesita.
type Deps struct {
	Engine  *recommender.Recommender
	Logger  zerolog.Logger
	Checks  map[string]health.Pinger
	Limiter *cache.RateLimiter // nil = sin límite
}

// NewRouter arma el engine de gin. Cada grupo de rutas se registra bajo
// /api y también en la raíz.
func NewRouter(deps Deps) (*gin.Engine, error) {
	if deps.Engine == nil {
		return nil, errors.New("httpserver: nil recommender")
	}
	if err := recommend.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(deps.Logger))

	recSvc := recommend.NewService(deps.Engine)
	recHandler := recommend.NewHandler(recSvc)

	healthSvc := health.NewService(func() int { return recSvc.Catalog().Len() }, deps.Checks)
	healthHandler := health.NewHandler(healthSvc)

	monSvc := monitoring.NewService(recSvc, healthSvc, deps.Engine.TopK())
	monHandler := monitoring.NewHandler(monSvc)

	for _, g := range []*gin.RouterGroup{r.Group("/api"), r.Group("/")} {
		healthHandler.RegisterRoutes(g)
		monHandler.RegisterRoutes(g)

		limited := g
		if deps.Limiter != nil {
			limited = g.Group("", deps.Limiter.Middleware())
		}
		recHandler.RegisterRoutes(limited)
	}

	return r, nil
}

// Server envuelve el http.Server para poder apagarlo con el contexto.
type Server struct {
	srv *http.Server
	log zerolog.Logger
}

func New(addr string, handler http.Handler, log zerolog.Logger) *Server {
	if addr == "" {
		addr = ":8080"
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log.With().Str("component", "http").Logger(),
	}
}

func (s *Server) Addr() string { return s.srv.Addr }

// Run escucha hasta que ctx se cancela y luego apaga el servidor esperando
// a las peticiones en curso.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.srv.Addr).Msg("listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("httpserver: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver: shutdown: %w", err)
	}
	return nil
}
