// Package recommender rankea un catálogo de destinos contra el perfil de un
// viajero usando similitud coseno sobre vectores de características fijos.
//
// El flujo es Encoder -> Similarity -> Selector. No hay I/O ni estado mutable
// compartido salvo la fuente de aleatoriedad, que está protegida por un mutex.
package recommender

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrInvalidProfile indica que el perfil no trae preferencias: no hay señal
// con la que recomendar. El llamador debe mostrar "sin recomendación".
var ErrInvalidProfile = errors.New("recommender: profile has no preference tags")

var ErrEmptyCatalog = errors.New("recommender: catalog is empty")

// Recommendation es la salida de Recommend.
type Recommendation struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type Recommender struct {
	catalog  *Catalog
	selector *Selector
	logger   zerolog.Logger
}

type options struct {
	policy Policy
	topK   int
	rng    RandSource
	logger zerolog.Logger
}

type Option func(*options)

func WithPolicy(p Policy) Option { return func(o *options) { o.policy = p } }

func WithTopK(k int) Option { return func(o *options) { o.topK = k } }

// WithRand inyecta la fuente de aleatoriedad usada por PolicySampledTopK.
func WithRand(r RandSource) Option { return func(o *options) { o.rng = r } }

// WithSeed es un atajo para WithRand(NewSeededRand(seed)).
func WithSeed(seed int64) Option { return func(o *options) { o.rng = NewSeededRand(seed) } }

func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// New construye un Recommender dueño del catálogo recibido. Sin opciones usa
// PolicyDeterministic.
func New(catalog *Catalog, opts ...Option) *Recommender {
	o := options{
		policy: PolicyDeterministic,
		topK:   DefaultTopK,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if catalog == nil {
		catalog = &Catalog{byName: map[string]int{}}
	}
	return &Recommender{
		catalog:  catalog,
		selector: NewSelector(o.policy, o.topK, o.rng),
		logger:   o.logger.With().Str("component", "recommender").Logger(),
	}
}

func (r *Recommender) Catalog() *Catalog { return r.catalog }

func (r *Recommender) Policy() Policy { return r.selector.Policy() }

func (r *Recommender) TopK() int { return r.selector.TopK() }

// Rank devuelve los candidatos ordenados por score; limit <= 0 devuelve todos.
// Un perfil con valores fuera del esquema se rechaza con ErrUnknown*.
func (r *Recommender) Rank(p UserProfile, limit int) ([]ScoredCandidate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(p.Tags) == 0 {
		return nil, ErrInvalidProfile
	}
	cands := ScoreCatalog(p, r.catalog)
	SortCandidates(cands)
	if limit > 0 && len(cands) > limit {
		cands = cands[:limit]
	}
	return cands, nil
}

// Recommend elige un destino del catálogo para el perfil.
func (r *Recommender) Recommend(p UserProfile) (Recommendation, error) {
	ranked, err := r.Rank(p, 0)
	if err != nil {
		return Recommendation{}, err
	}

	best, ok := r.selector.Pick(ranked)
	if !ok {
		return Recommendation{}, ErrEmptyCatalog
	}

	r.logger.Debug().
		Str("policy", r.selector.Policy().String()).
		Int("candidates", len(ranked)).
		Str("destination", best.Name).
		Float64("score", best.Score).
		Msg("recommendation selected")

	return Recommendation{Name: best.Name, Score: best.Score}, nil
}
