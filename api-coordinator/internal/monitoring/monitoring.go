package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"gotrip/api-coordinator/internal/health"
	"gotrip/api-coordinator/internal/recommend"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type SystemStats struct {
	// Proceso
	NumGoroutine int    `json:"num_goroutine"`
	Alloc        uint64 `json:"alloc_bytes"`
	Sys          uint64 `json:"sys_bytes"`
	NumGC        uint32 `json:"num_gc"`

	// Host
	TotalRAM        uint64                 `json:"total_ram"`
	AvailableRAM    uint64                 `json:"available_ram"`
	UsedRAMPercent  float64                `json:"used_ram_percent"`
	TotalCPUCores   int                    `json:"total_cpu_cores"`
	CPUUsagePercent []float64              `json:"cpu_usage_percent"`
	CPUTemperatures []host.TemperatureStat `json:"cpu_temperatures"`
	Uptime          uint64                 `json:"host_uptime_seconds"`
}

type EngineStats struct {
	Policy      string          `json:"policy"`
	TopK        int             `json:"top_k"`
	CatalogSize int             `json:"catalog_size"`
	Counters    recommend.Stats `json:"counters"`
}

type MonitoringStatus struct {
	Timestamp    time.Time                       `json:"timestamp"`
	StartedAt    time.Time                       `json:"started_at"`
	Dependencies map[string]health.ServiceStatus `json:"dependencies"`
	Engine       EngineStats                     `json:"engine"`
	System       SystemStats                     `json:"system"`
}

type Service interface {
	GetStatus(ctx context.Context) MonitoringStatus
}

type monitoringService struct {
	recommend recommend.Service
	health    health.Service
	topK      int
	startedAt time.Time
}

func NewService(rec recommend.Service, hs health.Service, topK int) Service {
	return &monitoringService{
		recommend: rec,
		health:    hs,
		topK:      topK,
		startedAt: time.Now(),
	}
}

func (s *monitoringService) GetStatus(ctx context.Context) MonitoringStatus {
	var deps map[string]health.ServiceStatus
	if s.health != nil {
		deps = s.health.Check(ctx).Services
	}

	return MonitoringStatus{
		Timestamp:    time.Now(),
		StartedAt:    s.startedAt,
		Dependencies: deps,
		Engine: EngineStats{
			Policy:      s.recommend.Policy().String(),
			TopK:        s.topK,
			CatalogSize: s.recommend.Catalog().Len(),
			Counters:    s.recommend.Stats(),
		},
		System: systemStats(ctx),
	}
}

// systemStats ignora los errores de gopsutil: en contenedores sin sensores
// los campos quedan en cero.
func systemStats(ctx context.Context) SystemStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	st := SystemStats{
		NumGoroutine:  runtime.NumGoroutine(),
		Alloc:         memStats.Alloc,
		Sys:           memStats.Sys,
		NumGC:         memStats.NumGC,
		TotalCPUCores: runtime.NumCPU(),
	}

	if vMem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vMem != nil {
		st.TotalRAM = vMem.Total
		st.AvailableRAM = vMem.Available
		st.UsedRAMPercent = vMem.UsedPercent
	}
	st.CPUUsagePercent, _ = cpu.PercentWithContext(ctx, 0, true)
	st.CPUTemperatures, _ = host.SensorsTemperaturesWithContext(ctx)
	st.Uptime, _ = host.UptimeWithContext(ctx)
	return st
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/monitoring", h.GetMonitoringStatus)
}

func (h *Handler) GetMonitoringStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetStatus(c.Request.Context()))
}
