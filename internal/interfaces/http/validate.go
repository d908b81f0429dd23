package http

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-api/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores nombran el campo como aparece en el JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// parseBody decodifica y valida el body. Si falla ya escribió la respuesta 400 y
// devuelve ok=false; el handler debe retornar el error que acompaña (nil o de escritura).
func parseBody(c *fiber.Ctx, dest any) (bool, error) {
	if err := c.BodyParser(dest); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "invalid request body",
			Details: []string{err.Error()},
		})
	}
	if err := validate.Struct(dest); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "validation failed",
			Details: validationDetails(err),
		})
	}
	return true, nil
}

func validationDetails(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		out = append(out, fe.Field()+" "+validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	}
	return "is invalid"
}

// intParam lee un parámetro de ruta numérico. Si no es un entero escribe 400 y ok=false.
func intParam(c *fiber.Ctx, name string) (int, bool, error) {
	raw := strings.TrimSpace(c.Params(name))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_ID",
			Message: fmt.Sprintf("%s must be an integer", name),
		})
	}
	return n, true, nil
}

// queryInt lee un parámetro de query entero; ausente = def.
func queryInt(c *fiber.Ctx, name string, def int) (int, bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, true, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fmt.Sprintf("%s must be an integer", name),
		})
	}
	return n, true, nil
}
