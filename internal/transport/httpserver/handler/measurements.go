package handler

import (
	"net/http"
	"time"

	"garments-api/internal/domain/apperr"
	measurementdomain "garments-api/internal/domain/measurement"
	"github.com/go-chi/chi/v5"
)

var errValuesNotList = apperr.Validation("values must be a list")

type createTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type createSectionRequest struct {
	Title        string `json:"title"`
	DisplayOrder int    `json:"display_order"`
}

type createFieldRequest struct {
	Name         string  `json:"name"`
	Unit         *string `json:"unit"`
	DisplayOrder int     `json:"display_order"`
}

type createMeasurementRequest struct {
	UserID            string      `json:"user_id"`
	UserType          string      `json:"user_type"`
	MeasurementTypeID string      `json:"measurement_type_id"`
	Values            interface{} `json:"values"`
}

type updateMeasurementRequest struct {
	Values interface{} `json:"values"`
}

type typeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type fieldResponse struct {
	ID           string  `json:"id"`
	SectionID    string  `json:"section_id"`
	Name         string  `json:"name"`
	Unit         *string `json:"unit"`
	DisplayOrder int     `json:"display_order"`
}

type sectionResponse struct {
	ID                string          `json:"id"`
	MeasurementTypeID string          `json:"measurement_type_id"`
	Title             string          `json:"title"`
	DisplayOrder      int             `json:"display_order"`
	Fields            []fieldResponse `json:"fields"`
}

type detailValueResponse struct {
	ID        string  `json:"id"`
	FieldID   string  `json:"field_id"`
	FieldName string  `json:"field_name"`
	Unit      *string `json:"unit"`
	Value     string  `json:"value"`
}

type detailSectionResponse struct {
	ID     string                `json:"id"`
	Title  string                `json:"title"`
	Values []detailValueResponse `json:"values"`
}

type measurementDetailResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	UserType  string                  `json:"user_type"`
	TypeID    string                  `json:"type_id"`
	TypeName  string                  `json:"type_name"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
	Sections  []detailSectionResponse `json:"sections"`
}

type flatValueResponse struct {
	ID           string  `json:"id"`
	FieldID      string  `json:"field_id"`
	FieldName    string  `json:"field_name"`
	Unit         *string `json:"unit"`
	SectionTitle string  `json:"section_title"`
	Value        string  `json:"value"`
}

type userMeasurementResponse struct {
	ID        string              `json:"id"`
	TypeID    string              `json:"type_id"`
	TypeName  string              `json:"type_name"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Values    []flatValueResponse `json:"values"`
}

type orgMeasurementResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	UserType        string    `json:"user_type"`
	UserName        *string   `json:"user_name"`
	MeasurementType string    `json:"measurement_type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type listedMeasurementResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	UserType            string    `json:"user_type"`
	UserName            *string   `json:"user_name"`
	MeasurementTypeID   string    `json:"measurement_type_id"`
	MeasurementTypeName string    `json:"measurement_type_name"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type typesResponse struct {
	envelope
	Types []typeResponse `json:"types"`
}

type typeDetailResponse struct {
	envelope
	Type typeResponse `json:"type"`
}

type sectionsResponse struct {
	envelope
	Sections []sectionResponse `json:"sections"`
}

type measurementResponse struct {
	envelope
	Measurement measurementDetailResponse `json:"measurement"`
}

type measurementsResponse[T any] struct {
	envelope
	Measurements []T `json:"measurements"`
}

func (h *Handlers) ListMeasurementTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Measurements.ListTypes(r.Context())
	if err != nil {
		h.fail(w, "measurements.list_types", err, "Failed to fetch measurement types")
		return
	}
	items := make([]typeResponse, 0, len(types))
	for _, item := range types {
		items = append(items, mapType(item))
	}
	writeJSON(w, http.StatusOK, typesResponse{envelope: ok(""), Types: items})
}

func (h *Handlers) CreateMeasurementType(w http.ResponseWriter, r *http.Request) {
	var req createTypeRequest
	if err := decodeRequest(w, r, &req, "name"); err != nil {
		h.fail(w, "measurements.create_type", err, "Failed to create measurement type")
		return
	}

	created, err := h.Measurements.CreateType(r.Context(), measurementdomain.CreateTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.fail(w, "measurements.create_type", err, "Failed to create measurement type", "name", req.Name)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Measurement type created successfully"), ID: created.ID})
}

func (h *Handlers) GetMeasurementType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.Measurements.GetType(r.Context(), id)
	if err != nil {
		h.fail(w, "measurements.get_type", err, "Failed to fetch measurement type", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, typeDetailResponse{envelope: ok(""), Type: mapType(*item)})
}

func (h *Handlers) ListTypeSections(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sections, err := h.Measurements.TypeSections(r.Context(), id)
	if err != nil {
		h.fail(w, "measurements.type_sections", err, "Failed to fetch sections", "type_id", id)
		return
	}

	items := make([]sectionResponse, 0, len(sections))
	for _, section := range sections {
		fields := make([]fieldResponse, 0, len(section.Fields))
		for _, field := range section.Fields {
			fields = append(fields, fieldResponse{
				ID:           field.ID,
				SectionID:    field.SectionID,
				Name:         field.Name,
				Unit:         field.Unit,
				DisplayOrder: field.DisplayOrder,
			})
		}
		items = append(items, sectionResponse{
			ID:                section.ID,
			MeasurementTypeID: section.MeasurementTypeID,
			Title:             section.Title,
			DisplayOrder:      section.DisplayOrder,
			Fields:            fields,
		})
	}
	writeJSON(w, http.StatusOK, sectionsResponse{envelope: ok(""), Sections: items})
}

func (h *Handlers) CreateSection(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "id")
	var req createSectionRequest
	if err := decodeRequest(w, r, &req, "title"); err != nil {
		h.fail(w, "measurements.create_section", err, "Failed to create section", "type_id", typeID)
		return
	}

	section, err := h.Measurements.CreateSection(r.Context(), measurementdomain.CreateSectionInput{
		TypeID:       typeID,
		Title:        req.Title,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.fail(w, "measurements.create_section", err, "Failed to create section", "type_id", typeID)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Section created successfully"), ID: section.ID})
}

func (h *Handlers) CreateField(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "id")
	var req createFieldRequest
	if err := decodeRequest(w, r, &req, "name"); err != nil {
		h.fail(w, "measurements.create_field", err, "Failed to create field", "section_id", sectionID)
		return
	}

	field, err := h.Measurements.CreateField(r.Context(), measurementdomain.CreateFieldInput{
		SectionID:    sectionID,
		Name:         req.Name,
		Unit:         req.Unit,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.fail(w, "measurements.create_field", err, "Failed to create field", "section_id", sectionID)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Field created successfully"), ID: field.ID})
}

func (h *Handlers) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	var req createMeasurementRequest
	if err := decodeRequest(w, r, &req, "user_id", "user_type", "measurement_type_id", "values"); err != nil {
		h.fail(w, "measurements.create", err, "Failed to create measurement")
		return
	}
	values, isList := valueInputs(req.Values)
	if !isList {
		h.fail(w, "measurements.create", measurementdomain.ErrValuesRequired, "Failed to create measurement")
		return
	}

	measurement, err := h.Measurements.CreateMeasurement(r.Context(), measurementdomain.CreateMeasurementInput{
		UserID:            req.UserID,
		UserType:          req.UserType,
		MeasurementTypeID: req.MeasurementTypeID,
		Values:            values,
	})
	if err != nil {
		h.fail(w, "measurements.create", err, "Failed to create measurement", "user_id", req.UserID, "user_type", req.UserType)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Measurement created successfully"), ID: measurement.ID})
}

func (h *Handlers) GetMeasurement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	detail, err := h.Measurements.GetDetail(r.Context(), id)
	if err != nil {
		h.fail(w, "measurements.get", err, "Failed to fetch measurement", "id", id)
		return
	}

	sections := make([]detailSectionResponse, 0, len(detail.Sections))
	for _, section := range detail.Sections {
		values := make([]detailValueResponse, 0, len(section.Values))
		for _, value := range section.Values {
			values = append(values, detailValueResponse{
				ID:        value.ID,
				FieldID:   value.FieldID,
				FieldName: value.FieldName,
				Unit:      value.Unit,
				Value:     value.Value,
			})
		}
		sections = append(sections, detailSectionResponse{ID: section.ID, Title: section.Title, Values: values})
	}

	writeJSON(w, http.StatusOK, measurementResponse{
		envelope: ok(""),
		Measurement: measurementDetailResponse{
			ID:        detail.ID,
			UserID:    detail.UserID,
			UserType:  detail.UserType,
			TypeID:    detail.MeasurementTypeID,
			TypeName:  detail.TypeName,
			CreatedAt: detail.CreatedAt,
			UpdatedAt: detail.UpdatedAt,
			Sections:  sections,
		},
	})
}

func (h *Handlers) UpdateMeasurement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req updateMeasurementRequest
	if err := decodeRequest(w, r, &req, "values"); err != nil {
		h.fail(w, "measurements.update", err, "Failed to update measurement", "id", id)
		return
	}
	values, isList := valueInputs(req.Values)
	if !isList {
		h.fail(w, "measurements.update", errValuesNotList, "Failed to update measurement", "id", id)
		return
	}

	if err := h.Measurements.UpdateMeasurement(r.Context(), id, values); err != nil {
		h.fail(w, "measurements.update", err, "Failed to update measurement", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Measurement updated successfully"))
}

func (h *Handlers) DeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Measurements.DeleteMeasurement(r.Context(), id); err != nil {
		h.fail(w, "measurements.delete", err, "Failed to delete measurement", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Measurement deleted successfully"))
}

func (h *Handlers) ListUserMeasurements(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	userType := chi.URLParam(r, "user_type")
	measurements, err := h.Measurements.ListUserMeasurements(r.Context(), userID, userType)
	if err != nil {
		h.fail(w, "measurements.list_by_user", err, "Failed to fetch measurements", "user_id", userID, "user_type", userType)
		return
	}

	items := make([]userMeasurementResponse, 0, len(measurements))
	for _, measurement := range measurements {
		values := make([]flatValueResponse, 0, len(measurement.Values))
		for _, row := range measurement.Values {
			values = append(values, flatValueResponse{
				ID:           row.ID,
				FieldID:      row.FieldID,
				FieldName:    row.FieldName,
				Unit:         row.Unit,
				SectionTitle: row.SectionTitle,
				Value:        row.Value,
			})
		}
		items = append(items, userMeasurementResponse{
			ID:        measurement.ID,
			TypeID:    measurement.MeasurementTypeID,
			TypeName:  measurement.TypeName,
			CreatedAt: measurement.CreatedAt,
			UpdatedAt: measurement.UpdatedAt,
			Values:    values,
		})
	}
	writeJSON(w, http.StatusOK, measurementsResponse[userMeasurementResponse]{envelope: ok(""), Measurements: items})
}

func (h *Handlers) ListOrgMeasurements(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "id")
	headers, err := h.Measurements.ListOrgMeasurements(r.Context(), orgID)
	if err != nil {
		h.fail(w, "measurements.list_by_org", err, "Failed to fetch measurements", "org_id", orgID)
		return
	}

	items := make([]orgMeasurementResponse, 0, len(headers))
	for _, header := range headers {
		items = append(items, orgMeasurementResponse{
			ID:              header.ID,
			UserID:          header.UserID,
			UserType:        header.UserType,
			UserName:        header.UserName,
			MeasurementType: header.TypeName,
			CreatedAt:       header.CreatedAt,
			UpdatedAt:       header.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, measurementsResponse[orgMeasurementResponse]{envelope: ok(""), Measurements: items})
}

func (h *Handlers) ListAllMeasurements(w http.ResponseWriter, r *http.Request) {
	headers, err := h.Measurements.ListAllMeasurements(r.Context())
	if err != nil {
		h.fail(w, "measurements.list_all", err, "Failed to fetch measurements")
		return
	}

	items := make([]listedMeasurementResponse, 0, len(headers))
	for _, header := range headers {
		items = append(items, listedMeasurementResponse{
			ID:                  header.ID,
			UserID:              header.UserID,
			UserType:            header.UserType,
			UserName:            header.UserName,
			MeasurementTypeID:   header.MeasurementTypeID,
			MeasurementTypeName: header.TypeName,
			CreatedAt:           header.CreatedAt,
			UpdatedAt:           header.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, measurementsResponse[listedMeasurementResponse]{envelope: ok(""), Measurements: items})
}

func mapType(item measurementdomain.Type) typeResponse {
	return typeResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
