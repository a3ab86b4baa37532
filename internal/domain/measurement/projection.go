package measurement

// GroupBySection nests rows under their section in order of first
// appearance. Rows keep their relative order within a section.
func GroupBySection(rows []ValueRow) []DetailSection {
	sections := make([]DetailSection, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.SectionID]
		if !ok {
			i = len(sections)
			index[row.SectionID] = i
			sections = append(sections, DetailSection{
				ID:     row.SectionID,
				Title:  row.SectionTitle,
				Values: make([]DetailValue, 0),
			})
		}
		sections[i].Values = append(sections[i].Values, DetailValue{
			ID:        row.ID,
			FieldID:   row.FieldID,
			FieldName: row.FieldName,
			Unit:      row.Unit,
			Value:     row.Value,
		})
	}
	return sections
}

// collapseValues keeps entries carrying both field_id and value. A repeated
// field_id keeps its first position and its last value.
func collapseValues(measurementID string, inputs []ValueInput, newID func() string) []Value {
	values := make([]Value, 0, len(inputs))
	index := make(map[string]int)
	for _, input := range inputs {
		if input.FieldID == "" || input.Value == nil {
			continue
		}
		if i, ok := index[input.FieldID]; ok {
			values[i].Value = *input.Value
			continue
		}
		index[input.FieldID] = len(values)
		values = append(values, Value{
			ID:            newID(),
			MeasurementID: measurementID,
			FieldID:       input.FieldID,
			Value:         *input.Value,
		})
	}
	return values
}
