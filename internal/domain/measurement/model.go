package measurement

import "time"

type Type struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Type) TableName() string { return "measurement_types" }

type Section struct {
	ID                string    `gorm:"column:id;primaryKey"`
	MeasurementTypeID string    `gorm:"column:measurement_type_id"`
	Title             string    `gorm:"column:title"`
	DisplayOrder      int       `gorm:"column:display_order"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (Section) TableName() string { return "measurement_sections" }

type Field struct {
	ID           string    `gorm:"column:id;primaryKey"`
	SectionID    string    `gorm:"column:section_id"`
	Name         string    `gorm:"column:name"`
	Unit         *string   `gorm:"column:unit"`
	DisplayOrder int       `gorm:"column:display_order"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Field) TableName() string { return "measurement_fields" }

// SectionWithFields is a section of a type together with its ordered fields.
type SectionWithFields struct {
	Section
	Fields []Field
}

type Measurement struct {
	ID                string    `gorm:"column:id;primaryKey"`
	UserID            string    `gorm:"column:user_id"`
	UserType          string    `gorm:"column:user_type"`
	MeasurementTypeID string    `gorm:"column:measurement_type_id"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (Measurement) TableName() string { return "measurements" }

type Value struct {
	ID            string    `gorm:"column:id;primaryKey"`
	MeasurementID string    `gorm:"column:measurement_id"`
	FieldID       string    `gorm:"column:field_id"`
	Value         string    `gorm:"column:value"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Value) TableName() string { return "measurement_values" }

// Header is a Measurement joined with its type name and, for list reads,
// the name of the user it belongs to.
type Header struct {
	Measurement `gorm:"embedded"`
	TypeName    string  `gorm:"column:type_name"`
	UserName    *string `gorm:"column:user_name"`
}

// ValueRow is a stored value joined with its field and section.
type ValueRow struct {
	ID            string  `gorm:"column:id"`
	MeasurementID string  `gorm:"column:measurement_id"`
	FieldID       string  `gorm:"column:field_id"`
	FieldName     string  `gorm:"column:field_name"`
	Unit          *string `gorm:"column:unit"`
	SectionID     string  `gorm:"column:section_id"`
	SectionTitle  string  `gorm:"column:section_title"`
	Value         string  `gorm:"column:value"`
}

type Detail struct {
	Header
	Sections []DetailSection
}

type DetailSection struct {
	ID     string
	Title  string
	Values []DetailValue
}

type DetailValue struct {
	ID        string
	FieldID   string
	FieldName string
	Unit      *string
	Value     string
}

// UserMeasurement is one measurement of a user with its flat values.
type UserMeasurement struct {
	Header
	Values []ValueRow
}

// ValueInput is one entry of a create or update payload. Empty ID or
// FieldID and a nil Value mean the key was absent.
type ValueInput struct {
	ID      string
	FieldID string
	Value   *string
}

type CreateTypeInput struct {
	Name        string
	Description *string
}

type CreateSectionInput struct {
	TypeID       string
	Title        string
	DisplayOrder int
}

type CreateFieldInput struct {
	SectionID    string
	Name         string
	Unit         *string
	DisplayOrder int
}

type CreateMeasurementInput struct {
	UserID            string
	UserType          string
	MeasurementTypeID string
	Values            []ValueInput
}
