// internal/app/features/api/clients.go
package api

import (
	"net/http"
	"strings"

	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

type clientInput struct {
	Name     string `json:"name" validate:"required,max=200" label:"Name"`
	LogoPath string `json:"logo_path"`
	Website  string `json:"website"`
	IsActive bool   `json:"is_active"`
	Order    int    `json:"order"`
}

func (in *clientInput) toModel() (models.Client, map[string]string) {
	fields := fieldErrors(inputval.Validate(*in))
	if in.Website != "" && !inputval.IsValidHTTPURL(in.Website) {
		fields["website"] = "Website must be a valid URL starting with http:// or https://."
	}

	return models.Client{
		Name:     strings.TrimSpace(in.Name),
		LogoPath: in.LogoPath,
		Website:  in.Website,
		IsActive: in.IsActive,
		Order:    in.Order,
	}, fields
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	items, err := h.clients.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list clients", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := h.clients.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get client", err)
		return
	}
	jsonutil.OK(w, item)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var in clientInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	c, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.clients.Create(r.Context(), &c); err != nil {
		h.storeError(w, r, "failed to create client", err)
		return
	}
	jsonutil.Created(w, c)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in clientInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	c, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.clients.Update(r.Context(), id, c); err != nil {
		h.storeError(w, r, "failed to update client", err)
		return
	}

	updated, err := h.clients.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload client", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.clients.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete client", err)
		return
	}
	jsonutil.NoContent(w)
}
