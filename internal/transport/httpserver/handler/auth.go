package handler

import (
	"net/http"

	identitydomain "garments-api/internal/domain/identity"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	UserType    string `json:"user_type"`
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

type profileResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	IsFirstLogin *bool   `json:"isFirstLogin,omitempty"`
	OrgID        *string `json:"org_id,omitempty"`
	OrgName      *string `json:"org_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

type loginResponse struct {
	envelope
	User profileResponse `json:"user"`
}

type loginFunc func(r *http.Request, email, password string) (*identitydomain.Profile, error)

func (h *Handlers) LoginSuperAdmin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, "auth.login_super_admin", func(r *http.Request, email, password string) (*identitydomain.Profile, error) {
		return h.Identity.LoginSuperAdmin(r.Context(), email, password)
	})
}

func (h *Handlers) LoginOrgAdmin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, "auth.login_org_admin", func(r *http.Request, email, password string) (*identitydomain.Profile, error) {
		return h.Identity.LoginOrgAdmin(r.Context(), email, password)
	})
}

func (h *Handlers) LoginIndividual(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, "auth.login_individual", func(r *http.Request, email, password string) (*identitydomain.Profile, error) {
		return h.Identity.LoginIndividual(r.Context(), email, password)
	})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request, op string, fn loginFunc) {
	var req loginRequest
	if err := decodeRequest(w, r, &req, "email", "password"); err != nil {
		h.fail(w, op, err, "Login failed")
		return
	}

	profile, err := fn(r, req.Email, req.Password)
	if err != nil {
		h.fail(w, op, err, "Login failed", "email", req.Email)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		envelope: ok(""),
		User: profileResponse{
			ID:           profile.ID,
			Name:         profile.Name,
			Email:        profile.Email,
			Role:         string(profile.Role),
			IsFirstLogin: profile.IsFirstLogin,
			OrgID:        profile.OrgID,
			OrgName:      profile.OrgName,
			Phone:        profile.Phone,
		},
	})
}

func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeRequest(w, r, &req, "user_type", "email", "new_password"); err != nil {
		h.fail(w, "auth.reset_password", err, "Password reset failed")
		return
	}

	account, err := identitydomain.ParseAccountType(req.UserType)
	if err != nil {
		h.fail(w, "auth.reset_password", err, "Password reset failed", "user_type", req.UserType)
		return
	}
	if err := h.Identity.ResetPassword(r.Context(), account, req.Email, req.NewPassword); err != nil {
		h.fail(w, "auth.reset_password", err, "Password reset failed", "user_type", req.UserType)
		return
	}

	writeJSON(w, http.StatusOK, ok("Password reset successfully"))
}
