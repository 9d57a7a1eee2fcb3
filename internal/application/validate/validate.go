package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jquiroga/tienda-api/internal/domain"
)

// Validator corre las validaciones de esquema de cada entidad antes de
// persistir y traduce cada violación a un mapa campo -> mensaje. Los nombres
// de campo reportados son los del JSON, no los del struct Go.
type Validator struct {
	v *validator.Validate
}

// New construye el validador compartido.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida el DTO y devuelve *domain.ValidationError con todas las
// violaciones, o nil si pasa.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

// message traduce una violación a su mensaje en castellano.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo requerido"
	case "email":
		return "email inválido"
	case "datetime":
		return "fecha inválida, formato esperado YYYY-MM-DD"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		case reflect.Slice:
			return "debe tener al menos un elemento"
		default:
			return fmt.Sprintf("debe ser como mínimo %s", fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("no puede exceder los %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor a %s", fe.Param())
	default:
		return "valor inválido"
	}
}
