package http

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/radicados-api/internal/application/dto"
	"github.com/jhoicas/radicados-api/internal/domain/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los mensajes usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("canal", func(fl validator.FieldLevel) bool {
		return slices.Contains(entity.Canales, fl.Field().String())
	})
	return v
}

// validationError responde 400 con la lista de campos inválidos.
func validationError(c *fiber.Ctx, err error) error {
	msg := err.Error()
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fieldMessage(fe))
		}
		msg = strings.Join(fields, "; ")
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es requerido"
	case "datetime":
		return fe.Field() + " debe tener formato YYYY-MM-DD"
	case "canal":
		return fe.Field() + " debe ser uno de: " + strings.Join(entity.Canales, ", ")
	case "oneof":
		return fe.Field() + " debe ser uno de: " + fe.Param()
	case "email":
		return fe.Field() + " no es un email válido"
	case "min", "max":
		return fe.Field() + " fuera de rango (" + fe.Tag() + "=" + fe.Param() + ")"
	default:
		return fe.Field() + " inválido"
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
