// internal/app/features/api/config.go
package api

import (
	"net/http"

	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// getConfig returns the site configuration singleton. A fresh install
// returns the defaults, never a 404.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.config.Get(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to load site config", err)
		return
	}
	jsonutil.OK(w, cfg)
}

type configInput struct {
	SiteName string `json:"site_name" validate:"required" label:"Site name"`
	Tagline  string `json:"tagline"`

	LogoPath string `json:"logo_path"`
	LogoName string `json:"logo_name"`

	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	MapsEmbed string `json:"maps_embed"`

	Social models.SocialLinks `json:"social"`

	DisclaimerEnabled bool   `json:"disclaimer_enabled"`
	DisclaimerText    string `json:"disclaimer_text"`

	Theme models.Theme `json:"theme"`

	ShowHeaderPhone    bool `json:"show_header_phone"`
	ShowFooterNewsfeed bool `json:"show_footer_newsfeed"`

	Menu []models.MenuItem `json:"menu"`

	ClientsTitle    string `json:"clients_title"`
	ClientsSubtitle string `json:"clients_subtitle"`
}

// putConfig replaces the site configuration. The whole document is
// validated before anything is written, so a failed request leaves the
// stored config untouched.
func (h *Handler) putConfig(w http.ResponseWriter, r *http.Request) {
	var in configInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	res := inputval.Validate(in)
	fields := fieldErrors(res)
	if in.Email != "" && !inputval.IsValidEmail(in.Email) {
		fields["email"] = "A valid email address is required."
	}
	if in.Phone != "" && !inputval.IsValidPhone(in.Phone) {
		fields["phone"] = "Phone must contain at least 10 digits."
	}
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	cfg := models.SiteConfig{
		SiteName:           in.SiteName,
		Tagline:            in.Tagline,
		LogoPath:           in.LogoPath,
		LogoName:           in.LogoName,
		Email:              in.Email,
		Phone:              in.Phone,
		Address:            in.Address,
		MapsEmbed:          in.MapsEmbed,
		Social:             in.Social,
		DisclaimerEnabled:  in.DisclaimerEnabled,
		DisclaimerText:     in.DisclaimerText,
		Theme:              in.Theme,
		ShowHeaderPhone:    in.ShowHeaderPhone,
		ShowFooterNewsfeed: in.ShowFooterNewsfeed,
		Menu:               in.Menu,
		ClientsTitle:       in.ClientsTitle,
		ClientsSubtitle:    in.ClientsSubtitle,
	}

	if err := h.config.Save(r.Context(), cfg); err != nil {
		h.storeError(w, r, "failed to save site config", err)
		return
	}

	saved, err := h.config.Get(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to reload site config", err)
		return
	}
	jsonutil.OK(w, saved)
}
