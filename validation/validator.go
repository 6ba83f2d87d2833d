// validator.go - Validator setup, custom tags and field messages

// Package validation turns decoded request bodies into normalized records or
// field level errors, never both.
package validation

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"go-shop-backend/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	adminPhonePattern = regexp.MustCompile(`^\+998\d{9}$`)
	digitsPattern     = regexp.MustCompile(`^\d+$`)
)

// Validator wraps a configured go-playground validator. It is safe for
// concurrent use once constructed.
type Validator struct {
	validate *validator.Validate
}

// New registers the custom tags used by the input types:
//
//	admin_phone     +998 followed by exactly nine digits
//	digits          one or more ASCII digits
//	nonneg_decimal  a number >= 0
//	nonneg_integer  an integer >= 0
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "admin_phone", func(fl validator.FieldLevel) bool {
		return adminPhonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	// bcrypt only hashes the first 72 bytes and rejects longer input
	mustRegister(v, "bcrypt_len", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= 72
	})
	mustRegister(v, "nonneg_decimal", func(fl validator.FieldLevel) bool {
		_, ok := parseDecimal(fl.Field().String())
		return ok
	})
	mustRegister(v, "nonneg_integer", func(fl validator.FieldLevel) bool {
		_, ok := parseInteger(fl.Field().String())
		return ok
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// check validates in and converts failures into an apperr.ValidationError
// using messages keyed "<jsonField>.<tag>", then "<jsonField>".
func (v *Validator) check(in any, messages map[string]string) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = messageFor(fe, messages)
	}
	return &apperr.ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError, messages map[string]string) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email address"
	case "url":
		return fe.Field() + " must be a valid URL"
	default:
		return fe.Field() + " is invalid"
	}
}

// Number accepts a JSON number or a JSON string and keeps the raw text so
// malformed values reach validation instead of failing the whole decode.
// null and "" both mean the field was not supplied.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*n = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(strings.TrimSpace(s))
	default:
		*n = Number(raw)
	}
	return nil
}

func parseDecimal(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

func parseInteger(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(i), i >= 0
	}
	// JSON encoders may write whole numbers as 3.0 or 3e0
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func present(s *string) bool {
	return s != nil && *s != ""
}
