package catalogstore

import (
	"fmt"

	"gotrip/pkg/recommender"
)

// DestinationDocument es la forma persistida de un destino. Etiquetas y
// acompañante se guardan por id para no depender de las etiquetas de la UI.
type DestinationDocument struct {
	Name      string   `bson:"name" json:"name"`
	Tags      []string `bson:"tags" json:"tags"`
	DailyCost float64  `bson:"daily_cost" json:"daily_cost"`
	IdealFor  string   `bson:"ideal_for" json:"ideal_for"`
	Position  int      `bson:"position" json:"position"`
}

func toDocument(d recommender.Destination, position int) DestinationDocument {
	tags := make([]string, len(d.Tags))
	for i, t := range d.Tags {
		tags[i] = t.String()
	}
	return DestinationDocument{
		Name:      d.Name,
		Tags:      tags,
		DailyCost: d.DailyCost,
		IdealFor:  d.IdealFor.ID(),
		Position:  position,
	}
}

func fromDocument(doc DestinationDocument) (recommender.Destination, error) {
	tags := make([]recommender.TripTypeTag, 0, len(doc.Tags))
	for _, raw := range doc.Tags {
		t, err := recommender.ParseTripTypeTag(raw)
		if err != nil {
			return recommender.Destination{}, fmt.Errorf("catalogstore: %s: %w", doc.Name, err)
		}
		tags = append(tags, t)
	}
	c, err := recommender.ParseCompanionType(doc.IdealFor)
	if err != nil {
		return recommender.Destination{}, fmt.Errorf("catalogstore: %s: %w", doc.Name, err)
	}
	return recommender.Destination{
		Name:      doc.Name,
		Tags:      tags,
		DailyCost: doc.DailyCost,
		IdealFor:  c,
	}, nil
}

// ToDocuments convierte el catálogo respetando su orden.
func ToDocuments(c *recommender.Catalog) []DestinationDocument {
	dests := c.Destinations()
	out := make([]DestinationDocument, len(dests))
	for i, d := range dests {
		out[i] = toDocument(d, i)
	}
	return out
}

// FromDocuments reconstruye y valida un catálogo; los documentos deben venir
// ordenados por Position.
func FromDocuments(docs []DestinationDocument) (*recommender.Catalog, error) {
	dests := make([]recommender.Destination, 0, len(docs))
	for _, doc := range docs {
		d, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}
	return recommender.NewCatalog(dests)
}
