package identity

import (
	"context"
	"errors"
	"strings"
)

// AccountType names the account tables that carry a password.
type AccountType string

const (
	AccountSuperAdmin AccountType = "super_admin"
	AccountOrgAdmin   AccountType = "org_admin"
	AccountIndividual AccountType = "individual"
)

func ParseAccountType(value string) (AccountType, error) {
	switch AccountType(strings.TrimSpace(value)) {
	case AccountSuperAdmin:
		return AccountSuperAdmin, nil
	case AccountOrgAdmin:
		return AccountOrgAdmin, nil
	case AccountIndividual:
		return AccountIndividual, nil
	}
	return "", ErrInvalidUserType
}

// Profile is what a successful login returns. No token is issued.
type Profile struct {
	ID           string
	Name         string
	Email        string
	Role         AccountType
	IsFirstLogin *bool
	OrgID        *string
	OrgName      *string
	Phone        *string
}

func (s *Service) LoginSuperAdmin(ctx context.Context, email, password string) (*Profile, error) {
	admin, err := s.repo.GetSuperAdminByEmail(ctx, email)
	if err != nil {
		return nil, loginErr(err, ErrSuperAdminNotFound)
	}
	if err := s.hasher.Compare(admin.Password, password); err != nil {
		return nil, err
	}

	firstLogin := admin.IsFirstLogin
	return &Profile{
		ID:           admin.ID,
		Name:         admin.Name,
		Email:        admin.Email,
		Role:         AccountSuperAdmin,
		IsFirstLogin: &firstLogin,
	}, nil
}

func (s *Service) LoginOrgAdmin(ctx context.Context, email, password string) (*Profile, error) {
	admin, err := s.repo.GetOrgAdminByEmail(ctx, email)
	if err != nil {
		return nil, loginErr(err, ErrOrgAdminNotFound)
	}
	if err := s.hasher.Compare(admin.Password, password); err != nil {
		return nil, err
	}

	firstLogin := admin.IsFirstLogin
	orgID := admin.OrgID
	orgName := admin.OrgName
	return &Profile{
		ID:           admin.ID,
		Name:         admin.Name,
		Email:        admin.Email,
		Role:         AccountOrgAdmin,
		IsFirstLogin: &firstLogin,
		OrgID:        &orgID,
		OrgName:      &orgName,
	}, nil
}

func (s *Service) LoginIndividual(ctx context.Context, email, password string) (*Profile, error) {
	user, err := s.repo.GetIndividualByEmail(ctx, email)
	if err != nil {
		return nil, loginErr(err, ErrIndividualNotFound)
	}
	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, err
	}

	phone := user.Phone
	return &Profile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  AccountIndividual,
		Phone: &phone,
	}, nil
}

// ResetPassword replaces the password of the account with email. An unknown
// email is not an error.
func (s *Service) ResetPassword(ctx context.Context, account AccountType, email, newPassword string) error {
	if _, err := ParseAccountType(string(account)); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	clearFirstLogin := account == AccountSuperAdmin || account == AccountOrgAdmin
	return s.repo.ResetPassword(ctx, account, email, hash, clearFirstLogin)
}

func loginErr(err, notFound error) error {
	if errors.Is(err, notFound) {
		return ErrInvalidCredentials
	}
	return err
}
