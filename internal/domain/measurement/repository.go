package measurement

import (
	"context"

	"garments-api/internal/domain/identity"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	CreateType(ctx context.Context, measurementType *Type) error
	GetType(ctx context.Context, id string) (*Type, error)
	ListTypes(ctx context.Context) ([]Type, error)
	CreateSection(ctx context.Context, section *Section) error
	CreateField(ctx context.Context, field *Field) error
	ListSections(ctx context.Context, typeID string) ([]Section, error)
	// ListFields returns the fields of all sectionIDs ordered by display_order.
	ListFields(ctx context.Context, sectionIDs []string) ([]Field, error)

	CreateMeasurement(ctx context.Context, measurement *Measurement) error
	GetMeasurement(ctx context.Context, id string) (*Header, error)
	ListUserMeasurements(ctx context.Context, userID, userType string) ([]Header, error)
	ListOrgMeasurements(ctx context.Context, orgID string) ([]Header, error)
	ListAllMeasurements(ctx context.Context) ([]Header, error)
	TouchMeasurement(ctx context.Context, id string) error
	DeleteMeasurement(ctx context.Context, id string) error

	CreateValues(ctx context.Context, values []Value) error
	// ListValues returns the values of measurementIDs ordered by section
	// display_order, field display_order, then value id.
	ListValues(ctx context.Context, measurementIDs []string) ([]ValueRow, error)
	// UpdateValue changes the value with valueID when it belongs to
	// measurementID. A mismatch is not an error.
	UpdateValue(ctx context.Context, measurementID, valueID, value string) error
	// UpsertValue inserts value or, when its (measurement_id, field_id)
	// already exists, replaces the stored text.
	UpsertValue(ctx context.Context, value *Value) error
	DeleteValues(ctx context.Context, measurementID string) error
}

// UserResolver looks up the user a measurement refers to.
type UserResolver interface {
	ResolveUser(ctx context.Context, userType identity.UserType, userID string) (*identity.UserRecord, error)
}
