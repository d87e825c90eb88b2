package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"userdir/internal/http/responses"
)

var validate = func() *validator.Validate {
	v := validator.New()
	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 16

// BindAndValidate reads JSON body into dst and runs validation with tags `validate:"..."`.
// On failure it writes a 400 and returns false.
func BindAndValidate[T any](w http.ResponseWriter, r *http.Request, dst *T) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		responses.WriteBadRequest(w, "Invalid JSON payload.")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		responses.WriteBadRequest(w, describe(err))
		return false
	}

	return true
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid JSON payload."
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return "Invalid field(s): " + strings.Join(parts, ", ")
}
