package recommend

import (
	"fmt"

	"gotrip/pkg/recommender"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators agrega al motor de gin las etiquetas triptag, budget y
// companion, de modo que los valores fuera del esquema fallen en el bind.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("recommend: unexpected validator engine %T", binding.Validator.Engine())
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	rules := map[string]func(string) error{
		"triptag": func(s string) error { _, err := recommender.ParseTripTypeTag(s); return err },
		"budget":  func(s string) error { _, err := recommender.ParseBudgetBucket(s); return err },
		"companion": func(s string) error {
			_, err := recommender.ParseCompanionType(s)
			return err
		},
	}
	for tag, parse := range rules {
		parse := parse
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return parse(fl.Field().String()) == nil
		})
		if err != nil {
			return fmt.Errorf("recommend: registering %s: %w", tag, err)
		}
	}
	return nil
}
