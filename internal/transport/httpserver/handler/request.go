package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"garments-api/internal/domain/apperr"
	measurementdomain "garments-api/internal/domain/measurement"
)

const maxBodyBytes = 1 << 20

var (
	errNotObject   = apperr.Validation("request body must be a JSON object")
	errInvalidBody = apperr.Validation("invalid request body")
	errNoData      = apperr.Validation("no data provided")
)

// decodeRequest checks that every required key is present in the JSON
// object body, then decodes it into dst. Numbers that land in interface
// values are kept as json.Number.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}, required ...string) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return errInvalidBody
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil || keys == nil {
		return errNotObject
	}
	present := func(key string) bool {
		_, ok := keys[key]
		return ok
	}
	if err := apperr.MissingFields(present, required...); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// decodeChanges reads a partial update body.
func decodeChanges(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	var changes map[string]any
	if err := decodeRequest(w, r, &changes); err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, errNoData
	}
	return changes, nil
}

// valueInputs converts the values array of a measurement payload. An entry
// that is not an object is kept as an empty input so the caller still sees
// the entry count.
func valueInputs(raw interface{}) ([]measurementdomain.ValueInput, bool) {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil, false
	}

	inputs := make([]measurementdomain.ValueInput, 0, len(entries))
	for _, entry := range entries {
		object, ok := entry.(map[string]interface{})
		if !ok {
			inputs = append(inputs, measurementdomain.ValueInput{})
			continue
		}
		input := measurementdomain.ValueInput{
			ID:      stringValue(object["id"]),
			FieldID: stringValue(object["field_id"]),
		}
		if text, ok := valueText(object["value"]); ok {
			input.Value = &text
		}
		inputs = append(inputs, input)
	}
	return inputs, true
}

func stringValue(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	}
	return ""
}

// valueText renders a scalar as stored text. null, objects and arrays count
// as absent.
func valueText(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}
