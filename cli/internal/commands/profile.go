package commands

import (
	"errors"
	"flag"
	"strings"

	"gotrip/pkg/recommender"
)

// profileFlags son los flags compartidos por recommend y distribution.
type profileFlags struct {
	tags      string
	budget    string
	companion string
	seed      int64
}

func (p *profileFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.tags, "tags", "", "tipos de viaje separados por coma (ej. playas,spa)")
	fs.StringVar(&p.budget, "budget", "", "presupuesto: Muy Bajo, Bajo, Medio, Alto, Muy Alto")
	fs.StringVar(&p.companion, "companion", "", "acompañantes: Solo, En Pareja, En Familia, Con Amigos")
	fs.Int64Var(&p.seed, "seed", 0, "semilla para la política sampled (0 = reloj)")
}

func (p *profileFlags) profile() (recommender.UserProfile, error) {
	if p.budget == "" || p.companion == "" {
		return recommender.UserProfile{}, errors.New("-budget y -companion son obligatorios")
	}
	return recommender.NewUserProfile(splitTags(p.tags), p.budget, p.companion)
}

func splitTags(raw string) []string {
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}
