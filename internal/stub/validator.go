package stub

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator lets handlers call c.Validate(req). Failures surface as 422,
// the status FastAPI uses for schema violations.
type echoValidator struct {
	v *validator.Validate
}

func newValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return echo.NewHTTPError(http.StatusUnprocessableEntity, strings.Join(msgs, "; "))
}

// fieldError phrases a failure the way FastAPI would, keyed by the
// snake_case field name.
func fieldError(fe validator.FieldError) string {
	field := toSnake(fe.StructField())
	switch fe.Tag() {
	case "required":
		return field + ": field required"
	case "email":
		return field + ": value is not a valid email address"
	case "gt", "min":
		op := map[string]string{"gt": "greater than", "min": "at least"}[fe.Tag()]
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s: ensure this value has %s %s characters", field, op, fe.Param())
		}
		return fmt.Sprintf("%s: ensure this value is %s %s", field, op, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: value is not one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}

// toSnake turns a Go field name such as WarehouseID into warehouse_id.
func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := unicode.IsUpper(r)
		if upper && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
