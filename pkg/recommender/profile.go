package recommender

import "fmt"

// UserProfile es lo que arma el formulario: preferencias, un tramo de
// presupuesto ya clasificado y un tipo de acompañante.
type UserProfile struct {
	Tags      []TripTypeTag
	Budget    BudgetBucket
	Companion CompanionType
}

// NewUserProfile convierte las cadenas del formulario en valores del esquema.
// Cualquier valor fuera de los conjuntos cerrados es un error; una lista de
// preferencias vacía es válida aquí y la rechaza Recommend.
func NewUserProfile(tags []string, budget, companion string) (UserProfile, error) {
	parsed := make([]TripTypeTag, 0, len(tags))
	seen := make(map[TripTypeTag]bool, len(tags))
	for _, raw := range tags {
		t, err := ParseTripTypeTag(raw)
		if err != nil {
			return UserProfile{}, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		parsed = append(parsed, t)
	}

	b, err := ParseBudgetBucket(budget)
	if err != nil {
		return UserProfile{}, err
	}
	c, err := ParseCompanionType(companion)
	if err != nil {
		return UserProfile{}, err
	}

	return UserProfile{Tags: parsed, Budget: b, Companion: c}, nil
}

// Validate comprueba que cada valor del perfil pertenezca al esquema. Los
// perfiles armados a mano (sin NewUserProfile) pasan por acá antes de puntuar.
func (p UserProfile) Validate() error {
	for _, t := range p.Tags {
		if !t.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownTag, string(t))
		}
	}
	if !p.Budget.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownBudget, int(p.Budget))
	}
	if !p.Companion.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCompanion, int(p.Companion))
	}
	return nil
}
