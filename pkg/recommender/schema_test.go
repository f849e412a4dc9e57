package recommender

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketForTotalBoundaries(t *testing.T) {
	cases := []struct {
		total float64
		want  BudgetBucket
	}{
		{0, BudgetVeryLow},
		{399.99, BudgetVeryLow},
		{400, BudgetVeryLow},
		{400.01, BudgetLow},
		{700, BudgetLow},
		{1000, BudgetMedium},
		{1000.5, BudgetHigh},
		{1500, BudgetHigh},
		{1501, BudgetVeryHigh},
		{math.MaxFloat64, BudgetVeryHigh},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BucketForTotal(tc.total), "total=%v", tc.total)
	}
}

func TestBucketForDailyCostUsesFiveDayWindow(t *testing.T) {
	// 140 * 5 = 700: justo en el límite de Bajo
	assert.Equal(t, BudgetLow, BucketForDailyCost(140))
	assert.Equal(t, BudgetMedium, BucketForDailyCost(141))
	assert.Equal(t, BudgetMedium, BucketForDailyCost(200))
	assert.Equal(t, BudgetHigh, BucketForDailyCost(300))
	assert.Equal(t, BudgetVeryHigh, BucketForDailyCost(301))
}

func TestParseBudgetBucketAcceptsEveryLabelVariant(t *testing.T) {
	for _, in := range []string{"Medio", "Medio (>700-1000 USD)", "Medio (700-1000 USD)", "medio", "  MEDIO "} {
		b, err := ParseBudgetBucket(in)
		require.NoError(t, err, in)
		assert.Equal(t, BudgetMedium, b)
	}

	b, err := ParseBudgetBucket("Muy alto (>1500 USD)")
	require.NoError(t, err)
	assert.Equal(t, BudgetVeryHigh, b)

	_, err = ParseBudgetBucket("Carísimo")
	assert.ErrorIs(t, err, ErrUnknownBudget)
}

// las etiquetas publicadas deben describir los límites inclusivos de la tabla
func TestBudgetLabelsMatchBounds(t *testing.T) {
	assert.Equal(t, BudgetVeryLow, BucketForTotal(400))
	assert.Equal(t, "Muy bajo (≤400 USD)", BudgetVeryLow.Label())
	assert.Equal(t, BudgetLow, BucketForTotal(400.01))
	assert.Equal(t, "Bajo (>400-700 USD)", BudgetLow.Label())
	assert.Equal(t, "Medio (>700-1000 USD)", BudgetMedium.Label())
	assert.Equal(t, "Alto (>1000-1500 USD)", BudgetHigh.Label())
	assert.Equal(t, "Muy alto (>1500 USD)", BudgetVeryHigh.Label())

	for _, b := range BudgetBuckets() {
		got, err := ParseBudgetBucket(b.Label())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	b, err := ParseBudgetBucket("Muy bajo (<400 USD)")
	require.NoError(t, err)
	assert.Equal(t, BudgetVeryLow, b)
}

func TestUserProfileValidate(t *testing.T) {
	ok := UserProfile{Tags: []TripTypeTag{TagSpa}, Budget: BudgetMedium, Companion: Couple}
	require.NoError(t, ok.Validate())

	cases := map[string]struct {
		p    UserProfile
		want error
	}{
		"unknown tag":       {UserProfile{Tags: []TripTypeTag{"esqui"}, Budget: BudgetMedium, Companion: Couple}, ErrUnknownTag},
		"unknown budget":    {UserProfile{Tags: []TripTypeTag{TagSpa}, Budget: BudgetBucket(42), Companion: Couple}, ErrUnknownBudget},
		"negative budget":   {UserProfile{Tags: []TripTypeTag{TagSpa}, Budget: BudgetBucket(-1), Companion: Solo}, ErrUnknownBudget},
		"unknown companion": {UserProfile{Tags: []TripTypeTag{TagSpa}, Budget: BudgetLow, Companion: CompanionType(-3)}, ErrUnknownCompanion},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, tc.p.Validate(), tc.want)
		})
	}
}

func TestParseTripTypeTag(t *testing.T) {
	tag, err := ParseTripTypeTag("vidaNocturna")
	require.NoError(t, err)
	assert.Equal(t, TagNightlife, tag)

	tag, err = ParseTripTypeTag("Spa y relajación")
	require.NoError(t, err)
	assert.Equal(t, TagSpa, tag)

	_, err = ParseTripTypeTag("esquí")
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestParseCompanionType(t *testing.T) {
	c, err := ParseCompanionType("En Pareja")
	require.NoError(t, err)
	assert.Equal(t, Couple, c)

	c, err = ParseCompanionType("amigos")
	require.NoError(t, err)
	assert.Equal(t, Friends, c)

	_, err = ParseCompanionType("Con mi perro")
	assert.ErrorIs(t, err, ErrUnknownCompanion)
}

func TestSchemaOrderIsStable(t *testing.T) {
	tags := TripTypeTags()
	require.Len(t, tags, 8)
	for i, tag := range tags {
		assert.Equal(t, i, tag.Index())
	}
	// modificar la copia no toca el orden canónico
	tags[0] = TagShopping
	assert.Equal(t, TagCultural, TripTypeTags()[0])

	assert.Len(t, BudgetBuckets(), 5)
	assert.Len(t, CompanionTypes(), 4)
	assert.Equal(t, 17, Dimension)
}

func TestNewUserProfile(t *testing.T) {
	p, err := NewUserProfile([]string{"playas", "naturaleza", "playas"}, "Medio", "En Pareja")
	require.NoError(t, err)
	assert.Equal(t, []TripTypeTag{TagBeaches, TagNature}, p.Tags)
	assert.Equal(t, BudgetMedium, p.Budget)
	assert.Equal(t, Couple, p.Companion)

	p, err = NewUserProfile(nil, "Bajo", "Solo")
	require.NoError(t, err)
	assert.Empty(t, p.Tags)

	_, err = NewUserProfile([]string{"playas", "montaña"}, "Medio", "Solo")
	assert.ErrorIs(t, err, ErrUnknownTag)
	_, err = NewUserProfile([]string{"playas"}, "", "Solo")
	assert.ErrorIs(t, err, ErrUnknownBudget)
	_, err = NewUserProfile([]string{"playas"}, "Medio", "")
	assert.ErrorIs(t, err, ErrUnknownCompanion)
}
