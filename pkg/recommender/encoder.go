package recommender

// Tamaños de cada bloque del vector: etiquetas, presupuesto, acompañante.
const (
	tagBlock       = len(tripTypeTags)
	budgetBlock    = len(budgetTable)
	companionBlock = len(companionTable)

	// Dimension es la longitud fija de todo FeatureVector.
	Dimension = tagBlock + budgetBlock + companionBlock
)

// FeatureVector concatena [etiquetas multi-hot | presupuesto one-hot | acompañante one-hot].
type FeatureVector []float64

// EncodeDestination deriva el tramo de presupuesto del costo diario y codifica.
func EncodeDestination(d Destination) FeatureVector {
	return encode(d.Tags, d.Bucket(), d.IdealFor)
}

// EncodeProfile codifica un perfil; el tramo ya viene dado.
func EncodeProfile(p UserProfile) FeatureVector {
	return encode(p.Tags, p.Budget, p.Companion)
}

func encode(tags []TripTypeTag, budget BudgetBucket, companion CompanionType) FeatureVector {
	v := make(FeatureVector, Dimension)

	// la posición la da tripTypeTags, nunca el orden de entrada
	for _, t := range tags {
		if i := t.Index(); i >= 0 {
			v[i] = 1
		}
	}
	if budget.Valid() {
		v[tagBlock+int(budget)] = 1
	}
	if companion.Valid() {
		v[tagBlock+budgetBlock+int(companion)] = 1
	}
	return v
}
