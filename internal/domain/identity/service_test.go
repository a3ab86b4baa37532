package identity

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"garments-api/internal/domain/apperr"
	"garments-api/internal/domain/patch"
)

type fakeIdentityRepo struct {
	superAdmins map[string]*SuperAdmin
	orgs        map[string]*Organization
	orgAdmins   map[string]*OrgAdmin
	orgUsers    map[string]*OrgUser
	individuals map[string]*Individual
	updates     int
}

func newFakeIdentityRepo() *fakeIdentityRepo {
	return &fakeIdentityRepo{
		superAdmins: make(map[string]*SuperAdmin),
		orgs:        make(map[string]*Organization),
		orgAdmins:   make(map[string]*OrgAdmin),
		orgUsers:    make(map[string]*OrgUser),
		individuals: make(map[string]*Individual),
	}
}

func (r *fakeIdentityRepo) CreateSuperAdmin(ctx context.Context, admin *SuperAdmin) error {
	for _, existing := range r.superAdmins {
		if existing.Email == admin.Email {
			return apperr.Duplicate("record already exists")
		}
	}
	r.superAdmins[admin.ID] = admin
	return nil
}

func (r *fakeIdentityRepo) GetSuperAdmin(ctx context.Context, id string) (*SuperAdmin, error) {
	admin, ok := r.superAdmins[id]
	if !ok {
		return nil, ErrSuperAdminNotFound
	}
	return admin, nil
}

func (r *fakeIdentityRepo) GetSuperAdminByEmail(ctx context.Context, email string) (*SuperAdmin, error) {
	for _, admin := range r.superAdmins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, ErrSuperAdminNotFound
}

func (r *fakeIdentityRepo) ListSuperAdmins(ctx context.Context) ([]SuperAdmin, error) {
	result := make([]SuperAdmin, 0, len(r.superAdmins))
	for _, admin := range r.superAdmins {
		result = append(result, *admin)
	}
	return result, nil
}

func (r *fakeIdentityRepo) UpdateSuperAdmin(ctx context.Context, id string, set patch.Set) error {
	r.updates++
	admin, ok := r.superAdmins[id]
	if !ok {
		return nil
	}
	if v, ok := set["name"]; ok {
		admin.Name = v.(string)
	}
	if v, ok := set["email"]; ok {
		admin.Email = v.(string)
	}
	if v, ok := set["password"]; ok {
		admin.Password = v.(string)
	}
	return nil
}

func (r *fakeIdentityRepo) DeleteSuperAdmin(ctx context.Context, id string) error {
	delete(r.superAdmins, id)
	return nil
}

func (r *fakeIdentityRepo) CreateOrganization(ctx context.Context, org *Organization) error {
	r.orgs[org.ID] = org
	return nil
}

func (r *fakeIdentityRepo) GetOrganization(ctx context.Context, id string) (*Organization, error) {
	org, ok := r.orgs[id]
	if !ok {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

func (r *fakeIdentityRepo) ListOrganizations(ctx context.Context) ([]Organization, error) {
	result := make([]Organization, 0, len(r.orgs))
	for _, org := range r.orgs {
		result = append(result, *org)
	}
	return result, nil
}

func (r *fakeIdentityRepo) UpdateOrganization(ctx context.Context, id string, set patch.Set) error {
	r.updates++
	org, ok := r.orgs[id]
	if !ok {
		return nil
	}
	if v, ok := set["name"]; ok {
		org.Name = v.(string)
	}
	if v, ok := set["logo"]; ok {
		if v == nil {
			org.Logo = nil
		} else {
			logo := v.(string)
			org.Logo = &logo
		}
	}
	return nil
}

func (r *fakeIdentityRepo) DeleteOrganization(ctx context.Context, id string) error {
	delete(r.orgs, id)
	for adminID, admin := range r.orgAdmins {
		if admin.OrgID == id {
			delete(r.orgAdmins, adminID)
		}
	}
	for userID, user := range r.orgUsers {
		if user.OrgID == id {
			delete(r.orgUsers, userID)
		}
	}
	return nil
}

func (r *fakeIdentityRepo) CreateOrgAdmin(ctx context.Context, admin *OrgAdmin) error {
	if _, ok := r.orgs[admin.OrgID]; !ok {
		return apperr.NotFound("referenced record does not exist")
	}
	r.orgAdmins[admin.ID] = admin
	return nil
}

func (r *fakeIdentityRepo) orgAdminView(admin *OrgAdmin) *OrgAdminView {
	view := &OrgAdminView{OrgAdmin: *admin}
	if org, ok := r.orgs[admin.OrgID]; ok {
		view.OrgName = org.Name
	}
	return view
}

func (r *fakeIdentityRepo) GetOrgAdmin(ctx context.Context, id string) (*OrgAdminView, error) {
	admin, ok := r.orgAdmins[id]
	if !ok {
		return nil, ErrOrgAdminNotFound
	}
	return r.orgAdminView(admin), nil
}

func (r *fakeIdentityRepo) GetOrgAdminByEmail(ctx context.Context, email string) (*OrgAdminView, error) {
	for _, admin := range r.orgAdmins {
		if admin.Email == email {
			return r.orgAdminView(admin), nil
		}
	}
	return nil, ErrOrgAdminNotFound
}

func (r *fakeIdentityRepo) ListOrgAdmins(ctx context.Context) ([]OrgAdminView, error) {
	result := make([]OrgAdminView, 0, len(r.orgAdmins))
	for _, admin := range r.orgAdmins {
		result = append(result, *r.orgAdminView(admin))
	}
	return result, nil
}

func (r *fakeIdentityRepo) ListOrgAdminsByOrg(ctx context.Context, orgID string) ([]OrgAdmin, error) {
	result := make([]OrgAdmin, 0)
	for _, admin := range r.orgAdmins {
		if admin.OrgID == orgID {
			result = append(result, *admin)
		}
	}
	return result, nil
}

func (r *fakeIdentityRepo) UpdateOrgAdmin(ctx context.Context, id string, set patch.Set) error {
	r.updates++
	return nil
}

func (r *fakeIdentityRepo) DeleteOrgAdmin(ctx context.Context, id string) error {
	delete(r.orgAdmins, id)
	return nil
}

func (r *fakeIdentityRepo) CreateOrgUser(ctx context.Context, user *OrgUser) error {
	r.orgUsers[user.ID] = user
	return nil
}

func (r *fakeIdentityRepo) GetOrgUser(ctx context.Context, id string) (*OrgUserView, error) {
	user, ok := r.orgUsers[id]
	if !ok {
		return nil, ErrOrgUserNotFound
	}
	view := &OrgUserView{OrgUser: *user}
	if org, ok := r.orgs[user.OrgID]; ok {
		view.OrgName = org.Name
	}
	return view, nil
}

func (r *fakeIdentityRepo) ListOrgUsers(ctx context.Context) ([]OrgUserView, error) {
	result := make([]OrgUserView, 0, len(r.orgUsers))
	for id := range r.orgUsers {
		view, _ := r.GetOrgUser(ctx, id)
		result = append(result, *view)
	}
	return result, nil
}

func (r *fakeIdentityRepo) ListOrgUsersByOrg(ctx context.Context, orgID string) ([]OrgUser, error) {
	result := make([]OrgUser, 0)
	for _, user := range r.orgUsers {
		if user.OrgID == orgID {
			result = append(result, *user)
		}
	}
	return result, nil
}

func (r *fakeIdentityRepo) UpdateOrgUser(ctx context.Context, id string, set patch.Set) error {
	r.updates++
	user, ok := r.orgUsers[id]
	if !ok {
		return nil
	}
	if v, ok := set["age"]; ok {
		if v == nil {
			user.Age = nil
		} else {
			age := v.(int)
			user.Age = &age
		}
	}
	return nil
}

func (r *fakeIdentityRepo) DeleteOrgUser(ctx context.Context, id string) error {
	delete(r.orgUsers, id)
	return nil
}

func (r *fakeIdentityRepo) CreateIndividual(ctx context.Context, user *Individual) error {
	r.individuals[user.ID] = user
	return nil
}

func (r *fakeIdentityRepo) GetIndividual(ctx context.Context, id string) (*Individual, error) {
	user, ok := r.individuals[id]
	if !ok {
		return nil, ErrIndividualNotFound
	}
	return user, nil
}

func (r *fakeIdentityRepo) GetIndividualByEmail(ctx context.Context, email string) (*Individual, error) {
	for _, user := range r.individuals {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, ErrIndividualNotFound
}

func (r *fakeIdentityRepo) ListIndividuals(ctx context.Context) ([]Individual, error) {
	result := make([]Individual, 0, len(r.individuals))
	for _, user := range r.individuals {
		result = append(result, *user)
	}
	return result, nil
}

func (r *fakeIdentityRepo) UpdateIndividual(ctx context.Context, id string, set patch.Set) error {
	r.updates++
	user, ok := r.individuals[id]
	if !ok {
		return nil
	}
	if v, ok := set["password"]; ok {
		user.Password = v.(string)
	}
	return nil
}

func (r *fakeIdentityRepo) DeleteIndividual(ctx context.Context, id string) error {
	delete(r.individuals, id)
	return nil
}

func (r *fakeIdentityRepo) ResetPassword(ctx context.Context, account AccountType, email, passwordHash string, clearFirstLogin bool) error {
	switch account {
	case AccountSuperAdmin:
		for _, admin := range r.superAdmins {
			if admin.Email == email {
				admin.Password = passwordHash
				if clearFirstLogin {
					admin.IsFirstLogin = false
				}
			}
		}
	case AccountOrgAdmin:
		for _, admin := range r.orgAdmins {
			if admin.Email == email {
				admin.Password = passwordHash
				if clearFirstLogin {
					admin.IsFirstLogin = false
				}
			}
		}
	case AccountIndividual:
		for _, user := range r.individuals {
			if user.Email == email {
				user.Password = passwordHash
			}
		}
	}
	return nil
}

// plainHasher keeps tests fast; bcrypt is covered separately.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return ErrInvalidCredentials
	}
	return nil
}

func newTestService() (*Service, *fakeIdentityRepo) {
	repo := newFakeIdentityRepo()
	return NewService(repo, plainHasher{}), repo
}

func TestCreateOrganizationAssignsPrefixedID(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	org, err := service.CreateOrganization(ctx, CreateOrganizationInput{
		Name:      "Acme",
		PAN:       "P1",
		Email:     "a@x.com",
		Phone:     "1",
		Address:   "addr",
		GSTIN:     "G1",
		CreatedBy: "sa-00000001",
	})
	if err != nil {
		t.Fatalf("create organization: %v", err)
	}
	if !regexp.MustCompile(`^org-[0-9a-f]{8}$`).MatchString(org.ID) {
		t.Fatalf("unexpected id %q", org.ID)
	}

	got, err := service.GetOrganization(ctx, org.ID)
	if err != nil {
		t.Fatalf("get organization: %v", err)
	}
	if got.Name != "Acme" || got.GSTIN != "G1" || got.Logo != nil {
		t.Fatalf("unexpected organization %+v", got)
	}
}

func TestCreateSuperAdminHashesPassword(t *testing.T) {
	service, repo := newTestService()

	admin, err := service.CreateSuperAdmin(context.Background(), CreateSuperAdminInput{
		Name:     "Root",
		Email:    "root@x.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("create super admin: %v", err)
	}
	if !admin.IsFirstLogin {
		t.Fatalf("expected first login flag to be set")
	}
	if stored := repo.superAdmins[admin.ID].Password; stored != "hashed:secret" {
		t.Fatalf("expected hashed password, got %q", stored)
	}
}

func TestCreateSuperAdminDuplicateEmail(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()
	input := CreateSuperAdminInput{Name: "Root", Email: "root@x.com", Password: "secret"}

	if _, err := service.CreateSuperAdmin(ctx, input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := service.CreateSuperAdmin(ctx, input)
	if !errors.Is(err, apperr.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestUpdateRejectsEmptyWhitelist(t *testing.T) {
	service, repo := newTestService()

	err := service.UpdateOrganization(context.Background(), "org-00000001", map[string]any{"unknown": "x"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("expected storage to be untouched")
	}
}

func TestUpdateIgnoresUnknownKeys(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	org, err := service.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("create organization: %v", err)
	}
	if err := service.UpdateOrganization(ctx, org.ID, map[string]any{"name": "Acme 2", "created_by": "x", "logo": nil}); err != nil {
		t.Fatalf("update organization: %v", err)
	}
	got := repo.orgs[org.ID]
	if got.Name != "Acme 2" || got.CreatedBy != "" || got.Logo != nil {
		t.Fatalf("unexpected organization %+v", got)
	}
}

func TestUpdateOrgUserAgeShape(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	user, err := service.CreateOrgUser(ctx, CreateOrgUserInput{OrgID: "org-00000001", Name: "U"})
	if err != nil {
		t.Fatalf("create org user: %v", err)
	}
	if err := service.UpdateOrgUser(ctx, user.ID, map[string]any{"age": "abc"}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := service.UpdateOrgUser(ctx, user.ID, map[string]any{"age": float64(31)}); err != nil {
		t.Fatalf("update org user: %v", err)
	}
	if age := repo.orgUsers[user.ID].Age; age == nil || *age != 31 {
		t.Fatalf("unexpected age %v", age)
	}
}

func TestUpdatePasswordIsHashed(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	user, err := service.CreateIndividual(ctx, CreateIndividualInput{Name: "I", Email: "i@x.com", Password: "old"})
	if err != nil {
		t.Fatalf("create individual: %v", err)
	}
	if err := service.UpdateIndividual(ctx, user.ID, map[string]any{"password": "new"}); err != nil {
		t.Fatalf("update individual: %v", err)
	}
	if stored := repo.individuals[user.ID].Password; stored != "hashed:new" {
		t.Fatalf("expected hashed password, got %q", stored)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	user, err := service.CreateIndividual(ctx, CreateIndividualInput{Name: "I", Email: "i@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("create individual: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := service.DeleteIndividual(ctx, user.ID); err != nil {
			t.Fatalf("delete %d: %v", i, err)
		}
	}
	if _, err := service.GetIndividual(ctx, user.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteOrganizationCascades(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	org, _ := service.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme"})
	if _, err := service.CreateOrgAdmin(ctx, CreateOrgAdminInput{OrgID: org.ID, Name: "A", Email: "a@x.com", Password: "pw"}); err != nil {
		t.Fatalf("create org admin: %v", err)
	}
	if _, err := service.CreateOrgUser(ctx, CreateOrgUserInput{OrgID: org.ID, Name: "U", Email: "u@x.com"}); err != nil {
		t.Fatalf("create org user: %v", err)
	}
	if err := service.DeleteOrganization(ctx, org.ID); err != nil {
		t.Fatalf("delete organization: %v", err)
	}
	if len(repo.orgAdmins) != 0 || len(repo.orgUsers) != 0 {
		t.Fatalf("expected admins and users removed, got %d admins %d users", len(repo.orgAdmins), len(repo.orgUsers))
	}
}

func TestLoginIndividualUnknownEmail(t *testing.T) {
	service, _ := newTestService()

	_, err := service.LoginIndividual(context.Background(), "missing@x.com", "x")
	if !errors.Is(err, ErrInvalidCredentials) || !errors.Is(err, apperr.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestLoginOrgAdminProfile(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	org, _ := service.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme"})
	admin, err := service.CreateOrgAdmin(ctx, CreateOrgAdminInput{OrgID: org.ID, Name: "A", Email: "a@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("create org admin: %v", err)
	}

	if _, err := service.LoginOrgAdmin(ctx, "a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	profile, err := service.LoginOrgAdmin(ctx, "a@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if profile.ID != admin.ID || profile.Role != AccountOrgAdmin {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if profile.OrgName == nil || *profile.OrgName != "Acme" {
		t.Fatalf("expected org name in profile")
	}
	if profile.IsFirstLogin == nil || !*profile.IsFirstLogin {
		t.Fatalf("expected first login flag")
	}
}

func TestResetPasswordClearsFirstLogin(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	admin, _ := service.CreateSuperAdmin(ctx, CreateSuperAdminInput{Name: "Root", Email: "root@x.com", Password: "old"})
	if err := service.ResetPassword(ctx, AccountSuperAdmin, "root@x.com", "new"); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	stored := repo.superAdmins[admin.ID]
	if stored.IsFirstLogin || stored.Password != "hashed:new" {
		t.Fatalf("unexpected admin after reset %+v", stored)
	}
	if _, err := service.LoginSuperAdmin(ctx, "root@x.com", "new"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestResetPasswordUnknownEmailSucceeds(t *testing.T) {
	service, _ := newTestService()

	if err := service.ResetPassword(context.Background(), AccountIndividual, "nobody@x.com", "pw"); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
}

func TestResetPasswordInvalidAccountType(t *testing.T) {
	service, _ := newTestService()

	err := service.ResetPassword(context.Background(), AccountType("org_user"), "u@x.com", "pw")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveUser(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	org, _ := service.CreateOrganization(ctx, CreateOrganizationInput{Name: "Acme"})
	user, _ := service.CreateOrgUser(ctx, CreateOrgUserInput{OrgID: org.ID, Name: "U", Email: "u@x.com"})

	record, err := service.ResolveUser(ctx, UserTypeOrgUser, user.ID)
	if err != nil {
		t.Fatalf("resolve org user: %v", err)
	}
	if record.OrgID == nil || *record.OrgID != org.ID || record.Type != UserTypeOrgUser {
		t.Fatalf("unexpected record %+v", record)
	}

	if _, err := service.ResolveUser(ctx, UserTypeIndividual, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
	if _, err := service.ResolveUser(ctx, UserType("admin"), user.ID); !errors.Is(err, ErrInvalidUserType) {
		t.Fatalf("expected invalid user type, got %v", err)
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if strings.Contains(hash, "secret") {
		t.Fatalf("hash leaks the password")
	}
	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := hasher.Compare(hash, "other"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if err := hasher.Compare("plaintext", "plaintext"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for non-bcrypt value, got %v", err)
	}
}

func TestBcryptHasherRejectsLongPassword(t *testing.T) {
	service := NewService(newFakeIdentityRepo(), NewBcryptHasher(4))

	_, err := service.CreateIndividual(context.Background(), CreateIndividualInput{
		Name:     "Meena",
		Email:    "meena@x.com",
		Password: strings.Repeat("p", 80),
		Phone:    "1",
		Address:  "addr",
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := apperr.PublicMessage(err, ""); got != "password must be at most 72 bytes" {
		t.Fatalf("unexpected message %q", got)
	}

	if _, err := NewBcryptHasher(4).Hash(strings.Repeat("p", 72)); err != nil {
		t.Fatalf("72 byte password: %v", err)
	}
}
