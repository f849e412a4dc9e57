package recommender

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Errores de validación del esquema cerrado.
var (
	ErrUnknownTag       = errors.New("recommender: unknown trip type tag")
	ErrUnknownBudget    = errors.New("recommender: unknown budget bucket")
	ErrUnknownCompanion = errors.New("recommender: unknown companion type")
)

// ReferenceDays es la ventana de referencia para estimar el costo total de un viaje.
const ReferenceDays = 5

// ---- TripTypeTag ----

// TripTypeTag es una etiqueta del vocabulario cerrado de estilos de viaje.
type TripTypeTag string

const (
	TagCultural   TripTypeTag = "culturales"
	TagNature     TripTypeTag = "naturaleza"
	TagFestivals  TripTypeTag = "festivales"
	TagBeaches    TripTypeTag = "playas"
	TagGastronomy TripTypeTag = "gastronomia"
	TagSpa        TripTypeTag = "spa"
	TagNightlife  TripTypeTag = "vidaNocturna"
	TagShopping   TripTypeTag = "compras"
)

// tripTypeTags fija la posición de cada etiqueta dentro del vector.
var tripTypeTags = [...]TripTypeTag{
	TagCultural,
	TagNature,
	TagFestivals,
	TagBeaches,
	TagGastronomy,
	TagSpa,
	TagNightlife,
	TagShopping,
}

var tagLabels = map[TripTypeTag]string{
	TagCultural:   "Culturales",
	TagNature:     "Naturaleza",
	TagFestivals:  "Festivales y eventos",
	TagBeaches:    "Playas",
	TagGastronomy: "Gastronomía",
	TagSpa:        "Spa y relajación",
	TagNightlife:  "Vida nocturna",
	TagShopping:   "Compras",
}

// TripTypeTags devuelve las etiquetas en el orden canónico del vector.
func TripTypeTags() []TripTypeTag {
	out := make([]TripTypeTag, len(tripTypeTags))
	copy(out, tripTypeTags[:])
	return out
}

// Label devuelve el texto que muestra la UI.
func (t TripTypeTag) Label() string { return tagLabels[t] }

// Index devuelve la posición de la etiqueta en el vector, o -1 si no pertenece al esquema.
func (t TripTypeTag) Index() int {
	for i, tag := range tripTypeTags {
		if tag == t {
			return i
		}
	}
	return -1
}

func (t TripTypeTag) Valid() bool { return t.Index() >= 0 }

func (t TripTypeTag) String() string { return string(t) }

// ParseTripTypeTag acepta el id ("vidaNocturna") o la etiqueta ("Vida nocturna").
func ParseTripTypeTag(s string) (TripTypeTag, error) {
	key := normalize(s)
	for _, tag := range tripTypeTags {
		if normalize(string(tag)) == key || normalize(tag.Label()) == key {
			return tag, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

// ---- BudgetBucket ----

// BudgetBucket es un tramo de la escala ordenada de costo estimado del viaje.
type BudgetBucket int

const (
	BudgetVeryLow BudgetBucket = iota
	BudgetLow
	BudgetMedium
	BudgetHigh
	BudgetVeryHigh
)

type bucketDef struct {
	id    string
	short string
	label string
	upper float64 // inclusivo

	legacy []string // etiquetas viejas del formulario, solo para parsear
}

// budgetTable es la única tabla de límites; se aplica igual a destinos y usuarios.
var budgetTable = [...]bucketDef{
	BudgetVeryLow: {id: "muy-bajo", short: "Muy bajo", label: "Muy bajo (≤400 USD)", upper: 400,
		legacy: []string{"Muy bajo (<400 USD)"}},
	BudgetLow: {id: "bajo", short: "Bajo", label: "Bajo (>400-700 USD)", upper: 700,
		legacy: []string{"Bajo (400-700 USD)"}},
	BudgetMedium: {id: "medio", short: "Medio", label: "Medio (>700-1000 USD)", upper: 1000,
		legacy: []string{"Medio (700-1000 USD)"}},
	BudgetHigh: {id: "alto", short: "Alto", label: "Alto (>1000-1500 USD)", upper: 1500,
		legacy: []string{"Alto (1000-1500 USD)"}},
	BudgetVeryHigh: {id: "muy-alto", short: "Muy alto", label: "Muy alto (>1500 USD)", upper: math.Inf(1)},
}

// BudgetBuckets devuelve los tramos en orden ascendente.
func BudgetBuckets() []BudgetBucket {
	out := make([]BudgetBucket, len(budgetTable))
	for i := range budgetTable {
		out[i] = BudgetBucket(i)
	}
	return out
}

func (b BudgetBucket) Valid() bool { return b >= 0 && int(b) < len(budgetTable) }

func (b BudgetBucket) ID() string {
	if !b.Valid() {
		return ""
	}
	return budgetTable[b].id
}

func (b BudgetBucket) Label() string {
	if !b.Valid() {
		return ""
	}
	return budgetTable[b].label
}

// UpperBound es el límite superior inclusivo del tramo (+Inf para el último).
func (b BudgetBucket) UpperBound() float64 {
	if !b.Valid() {
		return math.NaN()
	}
	return budgetTable[b].upper
}

func (b BudgetBucket) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BudgetBucket(%d)", int(b))
	}
	return budgetTable[b].short
}

// BucketForTotal aplica la función escalón: primer tramo cuyo límite superior
// sea >= total; si lo supera todo, el tramo más alto.
func BucketForTotal(total float64) BudgetBucket {
	for i, def := range budgetTable {
		if total <= def.upper {
			return BudgetBucket(i)
		}
	}
	return BudgetVeryHigh
}

// BucketForDailyCost estima el total sobre ReferenceDays días y lo clasifica.
func BucketForDailyCost(daily float64) BudgetBucket {
	return BucketForTotal(daily * ReferenceDays)
}

// ParseBudgetBucket acepta el nombre corto ("Medio"), la etiqueta larga
// ("Medio (>700-1000 USD)", también la vieja sin ">") o el id ("medio"). Todas las variantes caen
// sobre la misma tabla de límites.
func ParseBudgetBucket(s string) (BudgetBucket, error) {
	key := normalize(s)
	for i, def := range budgetTable {
		if key == normalize(def.id) || key == normalize(def.short) || key == normalize(def.label) {
			return BudgetBucket(i), nil
		}
		for _, l := range def.legacy {
			if key == normalize(l) {
				return BudgetBucket(i), nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownBudget, s)
}

// ---- CompanionType ----

// CompanionType describe con quién viaja la persona.
type CompanionType int

const (
	Solo CompanionType = iota
	Couple
	Family
	Friends
)

var companionTable = [...]struct {
	id    string
	label string
}{
	Solo:    {id: "solo", label: "Solo"},
	Couple:  {id: "pareja", label: "En Pareja"},
	Family:  {id: "familia", label: "En Familia"},
	Friends: {id: "amigos", label: "Con Amigos"},
}

// CompanionTypes devuelve los tipos en el orden canónico del vector.
func CompanionTypes() []CompanionType {
	out := make([]CompanionType, len(companionTable))
	for i := range companionTable {
		out[i] = CompanionType(i)
	}
	return out
}

func (c CompanionType) Valid() bool { return c >= 0 && int(c) < len(companionTable) }

func (c CompanionType) ID() string {
	if !c.Valid() {
		return ""
	}
	return companionTable[c].id
}

func (c CompanionType) Label() string {
	if !c.Valid() {
		return ""
	}
	return companionTable[c].label
}

func (c CompanionType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CompanionType(%d)", int(c))
	}
	return companionTable[c].label
}

// ParseCompanionType acepta la etiqueta ("En Pareja") o el id ("pareja").
func ParseCompanionType(s string) (CompanionType, error) {
	key := normalize(s)
	for i, def := range companionTable {
		if key == normalize(def.id) || key == normalize(def.label) {
			return CompanionType(i), nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownCompanion, s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
