package recommender

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand devuelve siempre el mismo índice (acotado) y recuerda el n pedido.
type fixedRand struct {
	idx   int
	lastN int
}

func (f *fixedRand) Intn(n int) int {
	f.lastN = n
	if f.idx >= n {
		return n - 1
	}
	return f.idx
}

// rankedCatalog tiene 8 destinos con scores estrictamente decrecientes para
// rankedProfile, salvo los dos últimos que puntúan 0.
func rankedCatalog(t *testing.T) *Catalog {
	t.Helper()
	four := []TripTypeTag{TagCultural, TagNature, TagFestivals, TagBeaches}
	c, err := NewCatalog([]Destination{
		{Name: "G", Tags: []TripTypeTag{TagShopping}, DailyCost: 100, IdealFor: Solo},
		{Name: "E", Tags: four[:2], DailyCost: 100, IdealFor: Solo},
		{Name: "A", Tags: four, DailyCost: 150, IdealFor: Couple},
		{Name: "C", Tags: four, DailyCost: 100, IdealFor: Solo},
		{Name: "H", Tags: []TripTypeTag{TagSpa}, DailyCost: 250, IdealFor: Friends},
		{Name: "B", Tags: four, DailyCost: 150, IdealFor: Solo},
		{Name: "F", Tags: four[:1], DailyCost: 100, IdealFor: Solo},
		{Name: "D", Tags: four[:3], DailyCost: 100, IdealFor: Solo},
	})
	require.NoError(t, err)
	return c
}

var rankedProfile = UserProfile{
	Tags:      []TripTypeTag{TagCultural, TagNature, TagFestivals, TagBeaches},
	Budget:    BudgetMedium,
	Companion: Couple,
}

func TestRankOrdersByScore(t *testing.T) {
	r := New(rankedCatalog(t))

	ranked, err := r.Rank(rankedProfile, 0)
	require.NoError(t, err)
	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Name
	}
	// G y H empatan en 0 y conservan el orden del catálogo
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"}, names)
	assert.Equal(t, 1.0, ranked[0].Score)
	assert.Equal(t, 0.8333, ranked[1].Score)

	top3, err := r.Rank(rankedProfile, 3)
	require.NoError(t, err)
	assert.Len(t, top3, 3)
}

func TestRecommendDeterministic(t *testing.T) {
	r := New(rankedCatalog(t), WithPolicy(PolicyDeterministic))

	first, err := r.Recommend(rankedProfile)
	require.NoError(t, err)
	assert.Equal(t, Recommendation{Name: "A", Score: 1.0}, first)

	second, err := r.Recommend(rankedProfile)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecommendEmptyTagsIsInvalidProfile(t *testing.T) {
	for _, policy := range []Policy{PolicyDeterministic, PolicySampledTopK} {
		r := New(DefaultCatalog(), WithPolicy(policy), WithSeed(1))
		for _, b := range BudgetBuckets() {
			for _, c := range CompanionTypes() {
				_, err := r.Recommend(UserProfile{Budget: b, Companion: c})
				assert.ErrorIs(t, err, ErrInvalidProfile)
			}
		}
	}
}

func TestRecommendRejectsOutOfSchemaProfiles(t *testing.T) {
	r := New(DefaultCatalog(), WithPolicy(PolicySampledTopK), WithSeed(1))

	cases := map[string]struct {
		p    UserProfile
		want error
	}{
		"all unknown": {UserProfile{Tags: []TripTypeTag{"esqui"}, Budget: BudgetBucket(42), Companion: CompanionType(-3)}, ErrUnknownTag},
		"unknown tag": {UserProfile{Tags: []TripTypeTag{"esqui"}, Budget: BudgetMedium, Companion: Couple}, ErrUnknownTag},
		"mixed tags":  {UserProfile{Tags: []TripTypeTag{TagSpa, "esqui"}, Budget: BudgetMedium, Companion: Couple}, ErrUnknownTag},
		"budget":      {UserProfile{Tags: []TripTypeTag{TagSpa}, Budget: BudgetBucket(42), Companion: Couple}, ErrUnknownBudget},
		"companion":   {UserProfile{Tags: []TripTypeTag{TagSpa}, Budget: BudgetMedium, Companion: CompanionType(-3)}, ErrUnknownCompanion},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec, err := r.Recommend(tc.p)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, rec.Name)

			_, err = r.Rank(tc.p, 0)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	c, err := NewCatalog(nil)
	require.NoError(t, err)
	_, err = New(c).Recommend(rankedProfile)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestRecommendReturnsCatalogNames(t *testing.T) {
	c := DefaultCatalog()
	r := New(c, WithPolicy(PolicySampledTopK), WithSeed(99))
	for _, tag := range TripTypeTags() {
		for _, b := range BudgetBuckets() {
			for _, comp := range CompanionTypes() {
				rec, err := r.Recommend(UserProfile{Tags: []TripTypeTag{tag}, Budget: b, Companion: comp})
				require.NoError(t, err)
				_, ok := c.Lookup(rec.Name)
				assert.True(t, ok, "unknown destination %q", rec.Name)
			}
		}
	}
}

func TestRecommendIsIndependentOfCatalogOrder(t *testing.T) {
	base := rankedCatalog(t)
	want, err := New(base).Recommend(rankedProfile)
	require.NoError(t, err)

	for seed := int64(1); seed <= 10; seed++ {
		got, err := New(base.Shuffled(NewSeededRand(seed))).Recommend(rankedProfile)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// con el catálogo real solo el score ganador es invariante (puede haber empates)
	p, err := NewUserProfile([]string{"culturales", "gastronomia"}, "Bajo", "Solo")
	require.NoError(t, err)
	def := DefaultCatalog()
	top, err := New(def).Recommend(p)
	require.NoError(t, err)
	for seed := int64(1); seed <= 10; seed++ {
		got, err := New(def.Shuffled(NewSeededRand(seed))).Recommend(p)
		require.NoError(t, err)
		assert.Equal(t, top.Score, got.Score)
	}
}

func TestSampledTopKNeverLeavesTopFive(t *testing.T) {
	r := New(rankedCatalog(t), WithPolicy(PolicySampledTopK), WithTopK(5), WithSeed(2024))
	allowed := map[string]bool{"A": true, "B": true, "C": true, "D": true, "E": true}

	seen := map[string]int{}
	for i := 0; i < 500; i++ {
		rec, err := r.Recommend(rankedProfile)
		require.NoError(t, err)
		require.True(t, allowed[rec.Name], "picked %q outside top 5", rec.Name)
		seen[rec.Name]++
	}
	// con 500 sorteos uniformes sobre 5 nombres aparecen todos
	assert.Len(t, seen, 5)
}

func TestSampledTopKWithInjectedRand(t *testing.T) {
	rng := &fixedRand{idx: 3}
	r := New(rankedCatalog(t), WithPolicy(PolicySampledTopK), WithRand(rng))

	rec, err := r.Recommend(rankedProfile)
	require.NoError(t, err)
	assert.Equal(t, "D", rec.Name)
	assert.Equal(t, 5, rng.lastN)
}

func TestSampledTopKSmallCatalog(t *testing.T) {
	c, err := NewCatalog([]Destination{
		{Name: "uno", Tags: []TripTypeTag{TagSpa}, DailyCost: 10, IdealFor: Solo},
		{Name: "dos", Tags: []TripTypeTag{TagBeaches}, DailyCost: 10, IdealFor: Solo},
	})
	require.NoError(t, err)

	rng := &fixedRand{idx: 4}
	r := New(c, WithPolicy(PolicySampledTopK), WithRand(rng))
	_, err = r.Recommend(UserProfile{Tags: []TripTypeTag{TagSpa}, Budget: BudgetVeryLow, Companion: Solo})
	require.NoError(t, err)
	assert.Equal(t, 2, rng.lastN)
}

func TestRecommendConcurrentCallers(t *testing.T) {
	r := New(DefaultCatalog(), WithPolicy(PolicySampledTopK), WithSeed(5))
	p, err := NewUserProfile([]string{"playas", "spa"}, "Medio", "En Pareja")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := r.Recommend(p); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("Sampled")
	require.NoError(t, err)
	assert.Equal(t, PolicySampledTopK, p)

	p, err = ParsePolicy("deterministic")
	require.NoError(t, err)
	assert.Equal(t, PolicyDeterministic, p)

	_, err = ParsePolicy("greedy")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}
