package dto

import (
	"strconv"

	"marketplace-integrations/pkg/apperror"
)

// ParseLimit reads an optional positive integer limit. Zero means unset.
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.ValidationFields(map[string]string{"limit": "must be a positive integer"})
	}
	return n, nil
}

// ParseOptionalBool reads an optional boolean query parameter.
func ParseOptionalBool(name, raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperror.ValidationFields(map[string]string{name: "must be true or false"})
	}
	return &v, nil
}
