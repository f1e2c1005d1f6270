package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/panel-minorista/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct aplica los tags `validate` y traduce el resultado a un error de dominio.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewError(domain.KindValidation, err.Error(), domain.ErrInvalidInput)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return domain.NewError(domain.KindValidation,
		"datos inválidos: "+strings.Join(fields, ", "), domain.ErrInvalidInput)
}

func invalid(msg string, cause error) error {
	return domain.NewError(domain.KindValidation, msg, cause)
}
