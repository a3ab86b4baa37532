// Package patch filters partial-update payloads down to a whitelist of
// columns and coerces JSON values to the column's shape.
package patch

import (
	"encoding/json"
	"math"
	"strconv"

	"garments-api/internal/domain/apperr"
	"garments-api/pkg/money"
)

type Kind int

const (
	String Kind = iota
	NullableString
	NullableInt
	Number
	// Money is a Number rounded to cents.
	Money
)

type Field struct {
	Key  string
	Kind Kind
}

// Set maps column names to values ready to be written.
type Set map[string]any

func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Apply keeps only whitelisted keys of input. Unknown keys are ignored. An
// empty result is a validation error.
func Apply(input map[string]any, whitelist []Field) (Set, error) {
	set := make(Set, len(whitelist))
	for _, field := range whitelist {
		raw, ok := input[field.Key]
		if !ok {
			continue
		}
		value, err := coerce(field, raw)
		if err != nil {
			return nil, err
		}
		set[field.Key] = value
	}
	if len(set) == 0 {
		return nil, apperr.Validation("no valid fields to update")
	}
	return set, nil
}

func coerce(field Field, raw any) (any, error) {
	if raw == nil {
		switch field.Kind {
		case NullableString, NullableInt:
			return nil, nil
		default:
			return nil, apperr.Validation("%s cannot be null", field.Key)
		}
	}

	switch field.Kind {
	case String, NullableString:
		value, ok := raw.(string)
		if !ok {
			return nil, apperr.Validation("%s must be a string", field.Key)
		}
		return value, nil
	case NullableInt:
		number, ok := toFloat(raw)
		if !ok || number != math.Trunc(number) {
			return nil, apperr.Validation("%s must be an integer", field.Key)
		}
		return int(number), nil
	case Number:
		number, ok := toFloat(raw)
		if !ok {
			return nil, apperr.Validation("%s must be a number", field.Key)
		}
		return number, nil
	case Money:
		number, ok := toFloat(raw)
		if !ok {
			return nil, apperr.Validation("%s must be a number", field.Key)
		}
		return money.Round(number), nil
	}
	return nil, apperr.Validation("%s has an unsupported type", field.Key)
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
