package measurement

import (
	"context"
	"errors"
	"time"

	"garments-api/internal/db"
	measurementdomain "garments-api/internal/domain/measurement"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	headerSelect = "measurements.*, measurement_types.name AS type_name"
	headerJoin   = "JOIN measurement_types ON measurement_types.id = measurements.measurement_type_id"

	allUserName = `CASE
		WHEN measurements.user_type = 'org_user' THEN org_users.name
		WHEN measurements.user_type = 'individual' THEN individuals.name
	END AS user_name`

	valueRowSelect = "measurement_values.id, measurement_values.measurement_id, measurement_values.field_id, measurement_values.value, " +
		"measurement_fields.name AS field_name, measurement_fields.unit, " +
		"measurement_sections.id AS section_id, measurement_sections.title AS section_title"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(measurementdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateType(ctx context.Context, measurementType *measurementdomain.Type) error {
	return db.TranslateError("measurement_types.create", r.db.WithContext(ctx).Create(measurementType).Error)
}

func (r *PostgresRepository) GetType(ctx context.Context, id string) (*measurementdomain.Type, error) {
	var measurementType measurementdomain.Type
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&measurementType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, measurementdomain.ErrTypeNotFound
		}
		return nil, db.TranslateError("measurement_types.get", err)
	}
	return &measurementType, nil
}

func (r *PostgresRepository) ListTypes(ctx context.Context) ([]measurementdomain.Type, error) {
	var types []measurementdomain.Type
	if err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error; err != nil {
		return nil, db.TranslateError("measurement_types.list", err)
	}
	return types, nil
}

func (r *PostgresRepository) CreateSection(ctx context.Context, section *measurementdomain.Section) error {
	return db.TranslateError("measurement_sections.create", r.db.WithContext(ctx).Create(section).Error)
}

func (r *PostgresRepository) CreateField(ctx context.Context, field *measurementdomain.Field) error {
	return db.TranslateError("measurement_fields.create", r.db.WithContext(ctx).Create(field).Error)
}

func (r *PostgresRepository) ListSections(ctx context.Context, typeID string) ([]measurementdomain.Section, error) {
	var sections []measurementdomain.Section
	err := r.db.WithContext(ctx).
		Where("measurement_type_id = ?", typeID).
		Order("display_order asc, id asc").
		Find(&sections).Error
	if err != nil {
		return nil, db.TranslateError("measurement_sections.list", err)
	}
	return sections, nil
}

func (r *PostgresRepository) ListFields(ctx context.Context, sectionIDs []string) ([]measurementdomain.Field, error) {
	var fields []measurementdomain.Field
	if len(sectionIDs) == 0 {
		return fields, nil
	}
	err := r.db.WithContext(ctx).
		Where("section_id IN ?", sectionIDs).
		Order("display_order asc, id asc").
		Find(&fields).Error
	if err != nil {
		return nil, db.TranslateError("measurement_fields.list", err)
	}
	return fields, nil
}

func (r *PostgresRepository) CreateMeasurement(ctx context.Context, measurement *measurementdomain.Measurement) error {
	return db.TranslateError("measurements.create", r.db.WithContext(ctx).Create(measurement).Error)
}

func (r *PostgresRepository) headers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("measurements").
		Select(headerSelect).
		Joins(headerJoin)
}

func (r *PostgresRepository) GetMeasurement(ctx context.Context, id string) (*measurementdomain.Header, error) {
	var header measurementdomain.Header
	if err := r.headers(ctx).Where("measurements.id = ?", id).Take(&header).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, measurementdomain.ErrMeasurementNotFound
		}
		return nil, db.TranslateError("measurements.get", err)
	}
	return &header, nil
}

func (r *PostgresRepository) ListUserMeasurements(ctx context.Context, userID, userType string) ([]measurementdomain.Header, error) {
	var headers []measurementdomain.Header
	err := r.headers(ctx).
		Where("measurements.user_id = ? AND measurements.user_type = ?", userID, userType).
		Order("measurements.created_at desc, measurements.id asc").
		Find(&headers).Error
	if err != nil {
		return nil, db.TranslateError("measurements.list_by_user", err)
	}
	return headers, nil
}

func (r *PostgresRepository) ListOrgMeasurements(ctx context.Context, orgID string) ([]measurementdomain.Header, error) {
	var headers []measurementdomain.Header
	err := r.db.WithContext(ctx).
		Table("measurements").
		Select(headerSelect+", org_users.name AS user_name").
		Joins(headerJoin).
		Joins("JOIN org_users ON org_users.id = measurements.user_id").
		Where("measurements.user_type = ? AND org_users.org_id = ?", "org_user", orgID).
		Order("measurements.created_at desc, measurements.id asc").
		Find(&headers).Error
	if err != nil {
		return nil, db.TranslateError("measurements.list_by_org", err)
	}
	return headers, nil
}

func (r *PostgresRepository) ListAllMeasurements(ctx context.Context) ([]measurementdomain.Header, error) {
	var headers []measurementdomain.Header
	err := r.db.WithContext(ctx).
		Table("measurements").
		Select(headerSelect + ", " + allUserName).
		Joins(headerJoin).
		Joins("LEFT JOIN org_users ON org_users.id = measurements.user_id AND measurements.user_type = 'org_user'").
		Joins("LEFT JOIN individuals ON individuals.id = measurements.user_id AND measurements.user_type = 'individual'").
		Order("measurements.created_at desc, measurements.id asc").
		Find(&headers).Error
	if err != nil {
		return nil, db.TranslateError("measurements.list", err)
	}
	return headers, nil
}

func (r *PostgresRepository) TouchMeasurement(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Model(&measurementdomain.Measurement{}).
		Where("id = ?", id).
		Update("updated_at", time.Now().UTC()).Error
	return db.TranslateError("measurements.touch", err)
}

func (r *PostgresRepository) DeleteMeasurement(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&measurementdomain.Measurement{}).Error
	return db.TranslateError("measurements.delete", err)
}

func (r *PostgresRepository) CreateValues(ctx context.Context, values []measurementdomain.Value) error {
	if len(values) == 0 {
		return nil
	}
	return db.TranslateError("measurement_values.create", r.db.WithContext(ctx).Create(&values).Error)
}

func (r *PostgresRepository) ListValues(ctx context.Context, measurementIDs []string) ([]measurementdomain.ValueRow, error) {
	var rows []measurementdomain.ValueRow
	if len(measurementIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Table("measurement_values").
		Select(valueRowSelect).
		Joins("JOIN measurement_fields ON measurement_fields.id = measurement_values.field_id").
		Joins("JOIN measurement_sections ON measurement_sections.id = measurement_fields.section_id").
		Where("measurement_values.measurement_id IN ?", measurementIDs).
		Order("measurement_sections.display_order asc, measurement_fields.display_order asc, measurement_values.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, db.TranslateError("measurement_values.list", err)
	}
	return rows, nil
}

func (r *PostgresRepository) UpdateValue(ctx context.Context, measurementID, valueID, value string) error {
	err := r.db.WithContext(ctx).
		Model(&measurementdomain.Value{}).
		Where("id = ? AND measurement_id = ?", valueID, measurementID).
		Updates(map[string]any{"value": value, "updated_at": time.Now().UTC()}).Error
	return db.TranslateError("measurement_values.update", err)
}

func (r *PostgresRepository) UpsertValue(ctx context.Context, value *measurementdomain.Value) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "measurement_id"}, {Name: "field_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      value.Value,
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(value).Error
	return db.TranslateError("measurement_values.upsert", err)
}

func (r *PostgresRepository) DeleteValues(ctx context.Context, measurementID string) error {
	err := r.db.WithContext(ctx).Where("measurement_id = ?", measurementID).Delete(&measurementdomain.Value{}).Error
	return db.TranslateError("measurement_values.delete", err)
}
