package recommender

import "math"

// ScoreDecimals es la precisión a la que se redondean los scores antes de ordenar.
const ScoreDecimals = 4

var scoreScale = math.Pow10(ScoreDecimals)

// ScoredCandidate empareja un destino con su similitud al perfil.
type ScoredCandidate struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// CosineSimilarity = dot(a,b) / (|a|*|b|). Si alguna norma es cero devuelve 0:
// un vector nulo no tiene dirección y se trata como "sin alineación". Vectores
// de distinta longitud no son comparables y también devuelven 0.
func CosineSimilarity(a, b FeatureVector) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// RoundScore normaliza NaN a 0 y redondea a ScoreDecimals decimales.
func RoundScore(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Round(x*scoreScale) / scoreScale
}

// ScoreCatalog puntúa cada destino contra el perfil, en el orden del catálogo.
// Los vectores se recalculan en cada llamada.
func ScoreCatalog(p UserProfile, c *Catalog) []ScoredCandidate {
	u := EncodeProfile(p)

	var sum float64
	for _, x := range u {
		sum += x * x
	}
	out := make([]ScoredCandidate, len(c.items))
	if sum == 0 {
		for i, d := range c.items {
			out[i] = ScoredCandidate{Name: d.Name}
		}
		return out
	}

	for i, d := range c.items {
		out[i] = ScoredCandidate{
			Name:  d.Name,
			Score: RoundScore(CosineSimilarity(u, EncodeDestination(d))),
		}
	}
	return out
}
