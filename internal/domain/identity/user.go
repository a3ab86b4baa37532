package identity

import (
	"context"
	"errors"
	"strings"
)

// UserType selects which of the two user tables a user_id refers to.
type UserType string

const (
	UserTypeOrgUser    UserType = "org_user"
	UserTypeIndividual UserType = "individual"
)

func ParseUserType(value string) (UserType, error) {
	switch UserType(strings.TrimSpace(value)) {
	case UserTypeOrgUser:
		return UserTypeOrgUser, nil
	case UserTypeIndividual:
		return UserTypeIndividual, nil
	}
	return "", ErrInvalidUserType
}

// UserRecord is the common projection of an OrgUser or an Individual.
type UserRecord struct {
	ID    string
	Type  UserType
	Name  string
	Email string
	Phone string
	OrgID *string
}

// ResolveUser follows a polymorphic (user_type, user_id) reference.
func (s *Service) ResolveUser(ctx context.Context, userType UserType, userID string) (*UserRecord, error) {
	switch userType {
	case UserTypeOrgUser:
		user, err := s.repo.GetOrgUser(ctx, userID)
		if err != nil {
			return nil, resolveErr(err, ErrOrgUserNotFound)
		}
		orgID := user.OrgID
		return &UserRecord{
			ID:    user.ID,
			Type:  UserTypeOrgUser,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
			OrgID: &orgID,
		}, nil
	case UserTypeIndividual:
		user, err := s.repo.GetIndividual(ctx, userID)
		if err != nil {
			return nil, resolveErr(err, ErrIndividualNotFound)
		}
		return &UserRecord{
			ID:    user.ID,
			Type:  UserTypeIndividual,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		}, nil
	}
	return nil, ErrInvalidUserType
}

func resolveErr(err, notFound error) error {
	if errors.Is(err, notFound) {
		return ErrUserNotFound
	}
	return err
}
