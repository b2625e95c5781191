package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

var validate = newValidator()

// newValidator builds the struct validator used for request bodies. Field
// names in messages are the JSON names, and decimals compare as numbers.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("clock", validateClock)
	_ = v.RegisterValidation("priority", validatePriority)
	return v
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

func validatePriority(fl validator.FieldLevel) bool {
	return domain.Priority(fl.Field().String()).Valid()
}

// validationMessage turns the first validator failure into a field message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must not be negative"
	case "gt":
		return field + " must be greater than zero"
	case "clock":
		return field + " must use HH:mm"
	case "priority":
		return field + " must be one of Alta, Média, Baixa"
	case "oneof":
		return field + " must be one of " + fe.Param()
	default:
		return field + " is invalid"
	}
}

// decodeBody reads a JSON body into dst and validates it. It writes the
// error response itself and returns false when the request is rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
		return false
	case errors.Is(err, io.EOF):
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body is required"))
		return false
	case err != nil:
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body is not valid JSON"))
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(validationMessage(err)))
		return false
	}
	return true
}

// pathParam binds a required path segment the way generated chi servers do.
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil || strings.TrimSpace(value) == "" {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid path parameter "+name))
		return "", false
	}
	return value, true
}

// queryParam binds an optional query parameter into dst.
func queryParam(w http.ResponseWriter, r *http.Request, name string, dst any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dst); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid query parameter "+name))
		return false
	}
	return true
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
