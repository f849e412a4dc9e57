package types

// ---- HTTP ----

// ProfileRequest es el cuerpo que arma el formulario de itinerario.
// Los valores se validan contra los conjuntos cerrados al hacer el bind.
type ProfileRequest struct {
	Preferences []string `json:"preferences" binding:"omitempty,dive,triptag"`
	Budget      string   `json:"budget" binding:"required,budget"`
	Companion   string   `json:"companion" binding:"required,companion"`
}

// RecommendResponse es el destino elegido; Name va al campo "destino" del formulario.
type RecommendResponse struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type RankingResponse struct {
	Policy     string              `json:"policy"`
	Candidates []RecommendResponse `json:"candidates"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
	Request string `json:"request_id,omitempty"`
}

// ---- Catálogo y esquema ----

type DestinationView struct {
	Name      string   `json:"name"`
	Tags      []string `json:"tags"`
	DailyCost float64  `json:"daily_cost"`
	Budget    string   `json:"budget"`
	IdealFor  string   `json:"ideal_for"`
}

type CatalogResponse struct {
	Count        int               `json:"count"`
	Destinations []DestinationView `json:"destinations"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type BudgetOption struct {
	Option
	UpperBound *float64 `json:"upper_bound,omitempty"` // nil para el tramo abierto
}

type SchemaResponse struct {
	TripTypes     []Option       `json:"trip_types"`
	Budgets       []BudgetOption `json:"budgets"`
	Companions    []Option       `json:"companions"`
	ReferenceDays int            `json:"reference_days"`
}
