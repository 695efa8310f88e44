package middleware

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// enumValue lo implementan los tipos enumerados de models
type enumValue interface {
	Valid() bool
}

// RegisterValidations agrega al validador de gin la regla "enum", que acepta
// solo los valores definidos del tipo del campo
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("el validador de gin no es go-playground/validator")
	}
	return v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumValue)
		return ok && e.Valid()
	})
}
