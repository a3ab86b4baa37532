package identity

import "time"

type SuperAdmin struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	Password     string    `gorm:"column:password"`
	IsFirstLogin bool      `gorm:"column:is_first_login"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (SuperAdmin) TableName() string { return "super_admins" }

type Organization struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	PAN       string    `gorm:"column:pan"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	Address   string    `gorm:"column:address"`
	GSTIN     string    `gorm:"column:gstin"`
	Logo      *string   `gorm:"column:logo"`
	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Organization) TableName() string { return "organizations" }

type OrgAdmin struct {
	ID           string    `gorm:"column:id;primaryKey"`
	OrgID        string    `gorm:"column:org_id"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	Password     string    `gorm:"column:password"`
	IsFirstLogin bool      `gorm:"column:is_first_login"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (OrgAdmin) TableName() string { return "org_admins" }

// OrgAdminView is an OrgAdmin joined with its organization's name.
type OrgAdminView struct {
	OrgAdmin `gorm:"embedded"`
	OrgName  string `gorm:"column:org_name"`
}

type OrgUser struct {
	ID         string    `gorm:"column:id;primaryKey"`
	OrgID      string    `gorm:"column:org_id"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email"`
	Phone      string    `gorm:"column:phone"`
	Address    string    `gorm:"column:address"`
	Age        *int      `gorm:"column:age"`
	Department *string   `gorm:"column:department"`
	CreatedBy  string    `gorm:"column:created_by"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (OrgUser) TableName() string { return "org_users" }

type OrgUserView struct {
	OrgUser `gorm:"embedded"`
	OrgName string `gorm:"column:org_name"`
}

type Individual struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Password  string    `gorm:"column:password"`
	Phone     string    `gorm:"column:phone"`
	Address   string    `gorm:"column:address"`
	Age       *int      `gorm:"column:age"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Individual) TableName() string { return "individuals" }

type CreateSuperAdminInput struct {
	Name     string
	Email    string
	Password string
}

type CreateOrganizationInput struct {
	Name      string
	PAN       string
	Email     string
	Phone     string
	Address   string
	GSTIN     string
	Logo      *string
	CreatedBy string
}

type CreateOrgAdminInput struct {
	OrgID    string
	Name     string
	Email    string
	Password string
}

type CreateOrgUserInput struct {
	OrgID      string
	Name       string
	Email      string
	Phone      string
	Address    string
	Age        *int
	Department *string
	CreatedBy  string
}

type CreateIndividualInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	Age      *int
}
