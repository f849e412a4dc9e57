package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	StatusOK       = "ok"
	StatusDown     = "down"
	StatusDegraded = "degraded"

	defaultTimeout = 2 * time.Second
)

// Pinger es cualquier dependencia que sabe responder a un ping.
type Pinger interface {
	Ping(ctx context.Context) error
}

type ServiceStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Status struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Catalog   int                      `json:"catalog_size"`
	Services  map[string]ServiceStatus `json:"services"`
}

type Service interface {
	Check(ctx context.Context) Status
}

type healthService struct {
	checks      map[string]Pinger
	catalogSize func() int
	timeout     time.Duration
}

// NewService recibe solo las dependencias configuradas; una dependencia
// ausente no cuenta como caída.
func NewService(catalogSize func() int, checks map[string]Pinger) Service {
	return &healthService{
		checks:      checks,
		catalogSize: catalogSize,
		timeout:     defaultTimeout,
	}
}

func (s *healthService) Check(ctx context.Context) Status {
	services := make(map[string]ServiceStatus, len(s.checks)+1)
	overall := StatusOK

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := s.checks[name].Ping(pctx)
		cancel()
		if err != nil {
			services[name] = ServiceStatus{Status: StatusDown, Error: err.Error()}
			overall = StatusDegraded
			continue
		}
		services[name] = ServiceStatus{Status: StatusOK}
	}

	size := 0
	if s.catalogSize != nil {
		size = s.catalogSize()
	}
	if size == 0 {
		services["catalog"] = ServiceStatus{Status: StatusDown, Error: "catalog is empty"}
		overall = StatusDegraded
	} else {
		services["catalog"] = ServiceStatus{Status: StatusOK}
	}

	return Status{
		Status:    overall,
		Timestamp: time.Now(),
		Catalog:   size,
		Services:  services,
	}
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/health", h.HealthCheck)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	status := h.svc.Check(c.Request.Context())
	httpStatus := http.StatusOK
	if status.Status != StatusOK {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, status)
}
