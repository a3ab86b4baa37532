package handler

import (
	"errors"
	"net/http"
	"time"

	"garments-api/internal/domain/apperr"
	identitydomain "garments-api/internal/domain/identity"
	"github.com/go-chi/chi/v5"
)

type createSuperAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createOrganizationRequest struct {
	Name      string  `json:"name"`
	PAN       string  `json:"pan"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	GSTIN     string  `json:"gstin"`
	Logo      *string `json:"logo"`
	CreatedBy string  `json:"created_by"`
}

type createOrgAdminRequest struct {
	OrgID    string `json:"org_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createOrgUserRequest struct {
	OrgID      string  `json:"org_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	Age        *int    `json:"age"`
	Department *string `json:"department"`
	CreatedBy  string  `json:"created_by"`
}

type createIndividualRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Age      *int   `json:"age"`
}

type superAdminResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	IsFirstLogin bool      `json:"is_first_login"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type organizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PAN       string    `json:"pan"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	GSTIN     string    `json:"gstin"`
	Logo      *string   `json:"logo"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type orgAdminResponse struct {
	ID           string    `json:"id"`
	OrgID        string    `json:"org_id"`
	OrgName      string    `json:"org_name,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	IsFirstLogin bool      `json:"is_first_login"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type orgUserResponse struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"org_id"`
	OrgName    string    `json:"org_name,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Age        *int      `json:"age"`
	Department *string   `json:"department"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type individualResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Age       *int      `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type userRecordResponse struct {
	ID       string  `json:"id"`
	UserType string  `json:"user_type"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	OrgID    *string `json:"org_id"`
}

type adminsResponse[T any] struct {
	envelope
	Admins []T `json:"admins"`
}

type usersResponse[T any] struct {
	envelope
	Users []T `json:"users"`
}

type adminResponse[T any] struct {
	envelope
	Admin T `json:"admin"`
}

type userResponse[T any] struct {
	envelope
	User T `json:"user"`
}

type organizationsResponse struct {
	envelope
	Organizations []organizationResponse `json:"organizations"`
}

type organizationDetailResponse struct {
	envelope
	Organization organizationResponse `json:"organization"`
}

// failUser reports a unique email collision the way clients expect it.
func (h *Handlers) failUser(w http.ResponseWriter, op string, err error, fallback string, args ...any) {
	if errors.Is(err, apperr.ErrDuplicate) {
		h.log.BusinessError(op+": email exists", err, args...)
		writeError(w, http.StatusBadRequest, "Email already exists")
		return
	}
	h.fail(w, op, err, fallback, args...)
}

func (h *Handlers) CreateSuperAdmin(w http.ResponseWriter, r *http.Request) {
	var req createSuperAdminRequest
	if err := decodeRequest(w, r, &req, "name", "email", "password"); err != nil {
		h.fail(w, "users.create_super_admin", err, "Failed to create super admin")
		return
	}

	admin, err := h.Identity.CreateSuperAdmin(r.Context(), identitydomain.CreateSuperAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.failUser(w, "users.create_super_admin", err, "Failed to create super admin", "email", req.Email)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Super admin created successfully"), ID: admin.ID})
}

func (h *Handlers) ListSuperAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.Identity.ListSuperAdmins(r.Context())
	if err != nil {
		h.fail(w, "users.list_super_admins", err, "Failed to fetch super admins")
		return
	}
	items := make([]superAdminResponse, 0, len(admins))
	for _, admin := range admins {
		items = append(items, mapSuperAdmin(admin))
	}
	writeJSON(w, http.StatusOK, adminsResponse[superAdminResponse]{envelope: ok(""), Admins: items})
}

func (h *Handlers) GetSuperAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	admin, err := h.Identity.GetSuperAdmin(r.Context(), id)
	if err != nil {
		h.fail(w, "users.get_super_admin", err, "Failed to fetch super admin", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, adminResponse[superAdminResponse]{envelope: ok(""), Admin: mapSuperAdmin(*admin)})
}

func (h *Handlers) UpdateSuperAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	changes, err := decodeChanges(w, r)
	if err == nil {
		err = h.Identity.UpdateSuperAdmin(r.Context(), id, changes)
	}
	if err != nil {
		h.failUser(w, "users.update_super_admin", err, "Failed to update super admin", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Super admin updated successfully"))
}

func (h *Handlers) DeleteSuperAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Identity.DeleteSuperAdmin(r.Context(), id); err != nil {
		h.fail(w, "users.delete_super_admin", err, "Failed to delete super admin", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Super admin deleted successfully"))
}

func (h *Handlers) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req createOrganizationRequest
	if err := decodeRequest(w, r, &req, "name", "pan", "email", "phone", "address", "gstin", "created_by"); err != nil {
		h.fail(w, "users.create_organization", err, "Failed to create organization")
		return
	}

	org, err := h.Identity.CreateOrganization(r.Context(), identitydomain.CreateOrganizationInput{
		Name:      req.Name,
		PAN:       req.PAN,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		GSTIN:     req.GSTIN,
		Logo:      req.Logo,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		h.fail(w, "users.create_organization", err, "Failed to create organization", "name", req.Name)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Organization created successfully"), ID: org.ID})
}

func (h *Handlers) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.Identity.ListOrganizations(r.Context())
	if err != nil {
		h.fail(w, "users.list_organizations", err, "Failed to fetch organizations")
		return
	}
	items := make([]organizationResponse, 0, len(orgs))
	for _, org := range orgs {
		items = append(items, mapOrganization(org))
	}
	writeJSON(w, http.StatusOK, organizationsResponse{envelope: ok(""), Organizations: items})
}

func (h *Handlers) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	org, err := h.Identity.GetOrganization(r.Context(), id)
	if err != nil {
		h.fail(w, "users.get_organization", err, "Failed to fetch organization", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, organizationDetailResponse{envelope: ok(""), Organization: mapOrganization(*org)})
}

func (h *Handlers) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	changes, err := decodeChanges(w, r)
	if err == nil {
		err = h.Identity.UpdateOrganization(r.Context(), id, changes)
	}
	if err != nil {
		h.fail(w, "users.update_organization", err, "Failed to update organization", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Organization updated successfully"))
}

func (h *Handlers) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Identity.DeleteOrganization(r.Context(), id); err != nil {
		h.fail(w, "users.delete_organization", err, "Failed to delete organization", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Organization deleted successfully"))
}

func (h *Handlers) CreateOrgAdmin(w http.ResponseWriter, r *http.Request) {
	var req createOrgAdminRequest
	if err := decodeRequest(w, r, &req, "org_id", "name", "email", "password"); err != nil {
		h.fail(w, "users.create_org_admin", err, "Failed to create organization admin")
		return
	}

	admin, err := h.Identity.CreateOrgAdmin(r.Context(), identitydomain.CreateOrgAdminInput{
		OrgID:    req.OrgID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.failUser(w, "users.create_org_admin", err, "Failed to create organization admin", "org_id", req.OrgID, "email", req.Email)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Organization admin created successfully"), ID: admin.ID})
}

func (h *Handlers) ListOrgAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.Identity.ListOrgAdmins(r.Context())
	if err != nil {
		h.fail(w, "users.list_org_admins", err, "Failed to fetch organization admins")
		return
	}
	items := make([]orgAdminResponse, 0, len(admins))
	for _, admin := range admins {
		item := mapOrgAdmin(admin.OrgAdmin)
		item.OrgName = admin.OrgName
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, adminsResponse[orgAdminResponse]{envelope: ok(""), Admins: items})
}

func (h *Handlers) ListOrgAdminsByOrg(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "org_id")
	admins, err := h.Identity.ListOrgAdminsByOrg(r.Context(), orgID)
	if err != nil {
		h.fail(w, "users.list_org_admins_by_org", err, "Failed to fetch organization admins", "org_id", orgID)
		return
	}
	items := make([]orgAdminResponse, 0, len(admins))
	for _, admin := range admins {
		items = append(items, mapOrgAdmin(admin))
	}
	writeJSON(w, http.StatusOK, adminsResponse[orgAdminResponse]{envelope: ok(""), Admins: items})
}

func (h *Handlers) GetOrgAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	admin, err := h.Identity.GetOrgAdmin(r.Context(), id)
	if err != nil {
		h.fail(w, "users.get_org_admin", err, "Failed to fetch organization admin", "id", id)
		return
	}
	item := mapOrgAdmin(admin.OrgAdmin)
	item.OrgName = admin.OrgName
	writeJSON(w, http.StatusOK, adminResponse[orgAdminResponse]{envelope: ok(""), Admin: item})
}

func (h *Handlers) UpdateOrgAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	changes, err := decodeChanges(w, r)
	if err == nil {
		err = h.Identity.UpdateOrgAdmin(r.Context(), id, changes)
	}
	if err != nil {
		h.failUser(w, "users.update_org_admin", err, "Failed to update organization admin", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Organization admin updated successfully"))
}

func (h *Handlers) DeleteOrgAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Identity.DeleteOrgAdmin(r.Context(), id); err != nil {
		h.fail(w, "users.delete_org_admin", err, "Failed to delete organization admin", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Organization admin deleted successfully"))
}

func (h *Handlers) CreateOrgUser(w http.ResponseWriter, r *http.Request) {
	var req createOrgUserRequest
	if err := decodeRequest(w, r, &req, "org_id", "name", "email", "phone", "address", "created_by"); err != nil {
		h.fail(w, "users.create_org_user", err, "Failed to create organization user")
		return
	}

	user, err := h.Identity.CreateOrgUser(r.Context(), identitydomain.CreateOrgUserInput{
		OrgID:      req.OrgID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Age:        req.Age,
		Department: req.Department,
		CreatedBy:  req.CreatedBy,
	})
	if err != nil {
		h.failUser(w, "users.create_org_user", err, "Failed to create organization user", "org_id", req.OrgID, "email", req.Email)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Organization user created successfully"), ID: user.ID})
}

func (h *Handlers) ListOrgUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Identity.ListOrgUsers(r.Context())
	if err != nil {
		h.fail(w, "users.list_org_users", err, "Failed to fetch organization users")
		return
	}
	items := make([]orgUserResponse, 0, len(users))
	for _, user := range users {
		item := mapOrgUser(user.OrgUser)
		item.OrgName = user.OrgName
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, usersResponse[orgUserResponse]{envelope: ok(""), Users: items})
}

func (h *Handlers) ListOrgUsersByOrg(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "org_id")
	users, err := h.Identity.ListOrgUsersByOrg(r.Context(), orgID)
	if err != nil {
		h.fail(w, "users.list_org_users_by_org", err, "Failed to fetch organization users", "org_id", orgID)
		return
	}
	items := make([]orgUserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, mapOrgUser(user))
	}
	writeJSON(w, http.StatusOK, usersResponse[orgUserResponse]{envelope: ok(""), Users: items})
}

func (h *Handlers) GetOrgUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.Identity.GetOrgUser(r.Context(), id)
	if err != nil {
		h.fail(w, "users.get_org_user", err, "Failed to fetch organization user", "id", id)
		return
	}
	item := mapOrgUser(user.OrgUser)
	item.OrgName = user.OrgName
	writeJSON(w, http.StatusOK, userResponse[orgUserResponse]{envelope: ok(""), User: item})
}

func (h *Handlers) UpdateOrgUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	changes, err := decodeChanges(w, r)
	if err == nil {
		err = h.Identity.UpdateOrgUser(r.Context(), id, changes)
	}
	if err != nil {
		h.failUser(w, "users.update_org_user", err, "Failed to update organization user", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Organization user updated successfully"))
}

func (h *Handlers) DeleteOrgUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Identity.DeleteOrgUser(r.Context(), id); err != nil {
		h.fail(w, "users.delete_org_user", err, "Failed to delete organization user", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Organization user deleted successfully"))
}

func (h *Handlers) CreateIndividual(w http.ResponseWriter, r *http.Request) {
	var req createIndividualRequest
	if err := decodeRequest(w, r, &req, "name", "email", "password", "phone", "address"); err != nil {
		h.fail(w, "users.create_individual", err, "Failed to create individual user")
		return
	}

	user, err := h.Identity.CreateIndividual(r.Context(), identitydomain.CreateIndividualInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		Age:      req.Age,
	})
	if err != nil {
		h.failUser(w, "users.create_individual", err, "Failed to create individual user", "email", req.Email)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{envelope: ok("Individual user created successfully"), ID: user.ID})
}

func (h *Handlers) ListIndividuals(w http.ResponseWriter, r *http.Request) {
	users, err := h.Identity.ListIndividuals(r.Context())
	if err != nil {
		h.fail(w, "users.list_individuals", err, "Failed to fetch individual users")
		return
	}
	items := make([]individualResponse, 0, len(users))
	for _, user := range users {
		items = append(items, mapIndividual(user))
	}
	writeJSON(w, http.StatusOK, usersResponse[individualResponse]{envelope: ok(""), Users: items})
}

func (h *Handlers) GetIndividual(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.Identity.GetIndividual(r.Context(), id)
	if err != nil {
		h.fail(w, "users.get_individual", err, "Failed to fetch individual user", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, userResponse[individualResponse]{envelope: ok(""), User: mapIndividual(*user)})
}

func (h *Handlers) UpdateIndividual(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	changes, err := decodeChanges(w, r)
	if err == nil {
		err = h.Identity.UpdateIndividual(r.Context(), id, changes)
	}
	if err != nil {
		h.failUser(w, "users.update_individual", err, "Failed to update individual user", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Individual user updated successfully"))
}

func (h *Handlers) DeleteIndividual(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Identity.DeleteIndividual(r.Context(), id); err != nil {
		h.fail(w, "users.delete_individual", err, "Failed to delete individual user", "id", id)
		return
	}
	writeJSON(w, http.StatusOK, ok("Individual user deleted successfully"))
}

func (h *Handlers) ResolveUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userType, err := identitydomain.ParseUserType(chi.URLParam(r, "user_type"))
	if err != nil {
		h.fail(w, "users.resolve", err, "Failed to resolve user", "id", id)
		return
	}

	record, err := h.Identity.ResolveUser(r.Context(), userType, id)
	if err != nil {
		h.fail(w, "users.resolve", err, "Failed to resolve user", "id", id, "user_type", userType)
		return
	}
	writeJSON(w, http.StatusOK, userResponse[userRecordResponse]{
		envelope: ok(""),
		User: userRecordResponse{
			ID:       record.ID,
			UserType: string(record.Type),
			Name:     record.Name,
			Email:    record.Email,
			Phone:    record.Phone,
			OrgID:    record.OrgID,
		},
	})
}

func mapSuperAdmin(admin identitydomain.SuperAdmin) superAdminResponse {
	return superAdminResponse{
		ID:           admin.ID,
		Name:         admin.Name,
		Email:        admin.Email,
		IsFirstLogin: admin.IsFirstLogin,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
}

func mapOrganization(org identitydomain.Organization) organizationResponse {
	return organizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		PAN:       org.PAN,
		Email:     org.Email,
		Phone:     org.Phone,
		Address:   org.Address,
		GSTIN:     org.GSTIN,
		Logo:      org.Logo,
		CreatedBy: org.CreatedBy,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}

func mapOrgAdmin(admin identitydomain.OrgAdmin) orgAdminResponse {
	return orgAdminResponse{
		ID:           admin.ID,
		OrgID:        admin.OrgID,
		Name:         admin.Name,
		Email:        admin.Email,
		IsFirstLogin: admin.IsFirstLogin,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
}

func mapOrgUser(user identitydomain.OrgUser) orgUserResponse {
	return orgUserResponse{
		ID:         user.ID,
		OrgID:      user.OrgID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Address:    user.Address,
		Age:        user.Age,
		Department: user.Department,
		CreatedBy:  user.CreatedBy,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func mapIndividual(user identitydomain.Individual) individualResponse {
	return individualResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Address:   user.Address,
		Age:       user.Age,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
