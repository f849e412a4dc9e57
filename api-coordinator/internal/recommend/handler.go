package recommend

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"gotrip/pkg/recommender"
	"gotrip/pkg/types"

	"github.com/gin-gonic/gin"
)

const maxRankingLimit = 100

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes monta POST /recommend, POST /recommend/ranking,
// GET /catalog y GET /schema sobre el grupo recibido.
func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/recommend", h.Recommend)
	g.POST("/recommend/ranking", h.Ranking)
	g.GET("/catalog", h.Catalog)
	g.GET("/schema", h.Schema)
}

func (h *Handler) Recommend(c *gin.Context) {
	var req types.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	rec, err := h.svc.Recommend(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, types.RecommendResponse{Name: rec.Name, Score: rec.Score})
}

func (h *Handler) Ranking(c *gin.Context) {
	var req types.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxRankingLimit {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "limit inválido",
				Reason:  "limit debe estar entre 0 y " + strconv.Itoa(maxRankingLimit),
				Request: c.GetString("request_id"),
			})
			return
		}
		limit = n
	}

	ranked, err := h.svc.Ranking(c.Request.Context(), req, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]types.RecommendResponse, len(ranked))
	for i, r := range ranked {
		out[i] = types.RecommendResponse{Name: r.Name, Score: r.Score}
	}
	c.JSON(http.StatusOK, types.RankingResponse{Policy: h.svc.Policy().String(), Candidates: out})
}

func (h *Handler) Catalog(c *gin.Context) {
	dests := h.svc.Catalog().Destinations()
	views := make([]types.DestinationView, len(dests))
	for i, d := range dests {
		tags := make([]string, len(d.Tags))
		for j, t := range d.Tags {
			tags[j] = t.String()
		}
		views[i] = types.DestinationView{
			Name:      d.Name,
			Tags:      tags,
			DailyCost: d.DailyCost,
			Budget:    d.Bucket().Label(),
			IdealFor:  d.IdealFor.Label(),
		}
	}
	c.JSON(http.StatusOK, types.CatalogResponse{Count: len(views), Destinations: views})
}

func (h *Handler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, BuildSchema())
}

// BuildSchema describe los conjuntos cerrados para que el formulario arme sus opciones.
func BuildSchema() types.SchemaResponse {
	resp := types.SchemaResponse{ReferenceDays: recommender.ReferenceDays}
	for _, t := range recommender.TripTypeTags() {
		resp.TripTypes = append(resp.TripTypes, types.Option{ID: t.String(), Label: t.Label()})
	}
	for _, b := range recommender.BudgetBuckets() {
		opt := types.BudgetOption{Option: types.Option{ID: b.ID(), Label: b.Label()}}
		if ub := b.UpperBound(); !math.IsInf(ub, 1) {
			opt.UpperBound = &ub
		}
		resp.Budgets = append(resp.Budgets, opt)
	}
	for _, ct := range recommender.CompanionTypes() {
		resp.Companions = append(resp.Companions, types.Option{ID: ct.ID(), Label: ct.Label()})
	}
	return resp
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, types.ErrorResponse{
		Error:   "payload inválido",
		Reason:  err.Error(),
		Request: c.GetString("request_id"),
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	resp := types.ErrorResponse{Reason: err.Error(), Request: c.GetString("request_id")}
	switch {
	case errors.Is(err, recommender.ErrInvalidProfile):
		resp.Error = "no recommendation"
		c.JSON(http.StatusUnprocessableEntity, resp)
	case errors.Is(err, recommender.ErrUnknownTag),
		errors.Is(err, recommender.ErrUnknownBudget),
		errors.Is(err, recommender.ErrUnknownCompanion):
		resp.Error = "payload inválido"
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, recommender.ErrEmptyCatalog):
		resp.Error = "catálogo no disponible"
		c.JSON(http.StatusServiceUnavailable, resp)
	default:
		_ = c.Error(err)
		resp.Error = "error al calcular la recomendación"
		resp.Reason = ""
		c.JSON(http.StatusInternalServerError, resp)
	}
}
