package recommender

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidDestination = errors.New("recommender: invalid destination")

// Destination es un registro inmutable del catálogo.
type Destination struct {
	Name      string        `json:"name"`
	Tags      []TripTypeTag `json:"tags"`
	DailyCost float64       `json:"daily_cost"`
	IdealFor  CompanionType `json:"ideal_for"`
}

// Bucket deriva el tramo de presupuesto a partir del costo diario.
func (d Destination) Bucket() BudgetBucket {
	return BucketForDailyCost(d.DailyCost)
}

func (d Destination) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDestination)
	}
	if math.IsNaN(d.DailyCost) || d.DailyCost < 0 {
		return fmt.Errorf("%w: %s: daily cost %v", ErrInvalidDestination, d.Name, d.DailyCost)
	}
	for _, t := range d.Tags {
		if !t.Valid() {
			return fmt.Errorf("%w: %s: %w", ErrInvalidDestination, d.Name, fmt.Errorf("%w: %q", ErrUnknownTag, string(t)))
		}
	}
	if !d.IdealFor.Valid() {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDestination, d.Name, ErrUnknownCompanion)
	}
	return nil
}

func (d Destination) clone() Destination {
	tags := make([]TripTypeTag, len(d.Tags))
	copy(tags, d.Tags)
	d.Tags = tags
	return d
}

// Catalog es la tabla de destinos. Se construye una vez y nunca se modifica,
// así que puede compartirse entre goroutines sin locks.
type Catalog struct {
	items  []Destination
	byName map[string]int
}

// NewCatalog valida y copia los destinos recibidos.
func NewCatalog(destinations []Destination) (*Catalog, error) {
	c := &Catalog{
		items:  make([]Destination, 0, len(destinations)),
		byName: make(map[string]int, len(destinations)),
	}
	for _, d := range destinations {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidDestination, d.Name)
		}
		c.byName[d.Name] = len(c.items)
		c.items = append(c.items, d.clone())
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.items) }

// Destinations devuelve una copia en el orden del catálogo.
func (c *Catalog) Destinations() []Destination {
	out := make([]Destination, len(c.items))
	for i, d := range c.items {
		out[i] = d.clone()
	}
	return out
}

func (c *Catalog) Names() []string {
	out := make([]string, len(c.items))
	for i, d := range c.items {
		out[i] = d.Name
	}
	return out
}

func (c *Catalog) Lookup(name string) (Destination, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Destination{}, false
	}
	return c.items[i].clone(), true
}

// Shuffled devuelve un catálogo nuevo con los mismos destinos reordenados.
func (c *Catalog) Shuffled(rng RandSource) *Catalog {
	items := c.Destinations()
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	out, _ := NewCatalog(items)
	return out
}
