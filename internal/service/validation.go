package service

import (
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"marketplace-integrations/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate = newValidator()

	bicRe  = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	ibanRe = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(rv reflect.Value) interface{} {
		if d, ok := rv.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("abs_url", validateAbsURL)
	_ = v.RegisterValidation("iban", validateIBAN)
	_ = v.RegisterValidation("bic", validateBIC)
	return v
}

// validateAbsURL accepts absolute http and https URLs with a host.
func validateAbsURL(fl validator.FieldLevel) bool {
	return isAbsHTTPURL(fl.Field().String())
}

func isAbsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateIBAN(fl validator.FieldLevel) bool {
	return isValidIBAN(fl.Field().String())
}

func validateBIC(fl validator.FieldLevel) bool {
	return bicRe.MatchString(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}

// isValidIBAN checks shape and the ISO 13616 mod-97 checksum.
func isValidIBAN(raw string) bool {
	iban := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
	if !ibanRe.MatchString(iban) {
		return false
	}

	rearranged := iban[4:] + iban[:4]
	var digits strings.Builder
	for _, r := range rearranged {
		if r >= 'A' && r <= 'Z' {
			fmt.Fprintf(&digits, "%d", r-'A'+10)
			continue
		}
		digits.WriteRune(r)
	}

	n, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return false
	}
	return new(big.Int).Mod(n, big.NewInt(97)).Int64() == 1
}

// validateStruct runs tag validation and converts failures into a
// ValidationError keyed by JSON field path.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation(err.Error())
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe.Namespace())] = fieldMessage(fe)
	}
	return apperror.ValidationFields(fields)
}

// fieldPath drops the top-level type name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "alpha":
		return "must contain only letters"
	case "numeric":
		return "must contain only digits"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "abs_url":
		return "must be an absolute http(s) URL"
	case "iban":
		return "must be a valid IBAN"
	case "bic":
		return "must be a valid BIC"
	}
	return "is invalid"
}

// mergeFields folds extra field errors into err, which may be nil.
func mergeFields(err error, extra map[string]string) error {
	if len(extra) == 0 {
		return err
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Fields != nil {
		for k, v := range extra {
			if _, exists := appErr.Fields[k]; !exists {
				appErr.Fields[k] = v
			}
		}
		return appErr
	}
	return apperror.ValidationFields(extra)
}

// checkMinorUnits rejects amounts with more than two decimal places.
func checkMinorUnits(field string, amount decimal.Decimal, extra map[string]string) {
	if !amount.Equal(amount.Round(2)) {
		extra[field] = "must have at most 2 decimal places"
	}
}

// normalizeCurrency upper-cases code and defaults it to EUR.
func normalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return defaultCurrency
	}
	return code
}

// clampLimit applies a default to non-positive limits and caps the rest.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
