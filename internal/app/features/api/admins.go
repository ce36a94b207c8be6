// internal/app/features/api/admins.go
package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/app/store/storeutil"
	"github.com/lexsite/lexsite/internal/app/system/authutil"
	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// Admin accounts are list/create only over the API. Disabling or removing
// an account is an operator action done directly against the database, so
// a compromised session cannot lock every admin out.

type adminInput struct {
	Name     string `json:"name" validate:"required,max=200" label:"Name"`
	Email    string `json:"email" validate:"required,max=254" label:"Email"`
	Password string `json:"password" validate:"required" label:"Password"`
}

func (h *Handler) listAdmins(w http.ResponseWriter, r *http.Request) {
	items, err := h.admins.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list admins", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) createAdmin(w http.ResponseWriter, r *http.Request) {
	var in adminInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	fields := fieldErrors(inputval.Validate(in))
	if in.Email != "" && !inputval.IsValidEmail(in.Email) {
		fields["email"] = "Email must be a valid email address."
	}
	if in.Password != "" {
		if err := authutil.ValidatePassword(in.Password); err != nil {
			fields["password"] = err.Error()
		}
	}
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		h.logger.Error("failed to hash admin password", zap.Error(err))
		jsonutil.InternalError(w, "something went wrong")
		return
	}

	a := models.Admin{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := h.admins.Create(r.Context(), &a); err != nil {
		if storeutil.IsDuplicateKey(err) {
			jsonutil.ValidationError(w, map[string]string{
				"email": "An admin with this email already exists.",
			})
			return
		}
		h.storeError(w, r, "failed to create admin", err)
		return
	}
	jsonutil.Created(w, a)
}
