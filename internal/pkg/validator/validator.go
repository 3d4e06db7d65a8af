package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/forest-management-gis/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// В деталях ошибок отдаём имена полей как в JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate - валидация структуры. Ошибки валидации приводятся к ErrValidation
// с деталями вида {"species": "required"}.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	details := make(map[string]interface{}, len(validationErrs))
	for _, fe := range validationErrs {
		tag := fe.Tag()
		if fe.Param() != "" {
			tag += "=" + fe.Param()
		}
		details[fieldPath(fe)] = tag
	}

	return apperrors.ErrValidation.WithDetails(details)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// fieldPath - путь поля без имени корневой структуры: "points[0].lat"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
