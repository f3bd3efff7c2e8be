// Package validation checks request payloads before they reach the
// service layer and reports failures as a field → message map.
//
// Field names in the map are the json tag names ("email", not "Email")
// and messages are the go-playground English translations, e.g.
// "email must be a valid email address".
package validation

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Errors maps a json field name to a human-readable message.
// It implements error so callers can pass it around like any other failure.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, e[field])
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// validate and trans are built once; *validator.Validate caches struct
// metadata and is safe for concurrent use.
var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag name for field names in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic("validation: register translations: " + err.Error())
	}
}

// Struct checks every validate:"..." tag on v.
// It returns nil when v is valid, otherwise a non-empty Errors.
func Struct(v any) Errors {
	return translate(validate.Struct(v))
}

// Var checks a single value against tag and reports failures under field,
// e.g. Var("newEmail", email, "required,email").
func Var(field string, value any, tag string) Errors {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return Errors{field: err.Error()}
	}

	// Var has no struct field to name, so the translation comes back as
	// " must be a valid email address"; prefix the caller's name.
	return Errors{field: field + ve[0].Translate(trans)}
}

func translate(err error) Errors {
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: v was not a struct. A programming error,
		// but still reported in the same shape.
		return Errors{"detail": err.Error()}
	}

	fields := make(Errors, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Translate(trans)
	}
	return fields
}
