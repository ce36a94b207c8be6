// internal/domain/models/siteconfig.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteConfig holds the single site-wide configuration document edited by admins.
// Exactly one document exists per deployment (singleton flag + unique index).
type SiteConfig struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// Identity
	SiteName string `bson:"site_name" json:"site_name"` // Firm name shown in header and titles
	Tagline  string `bson:"tagline,omitempty" json:"tagline,omitempty"`

	// Logo (file upload)
	LogoPath string `bson:"logo_path,omitempty" json:"logo_path,omitempty"` // Storage path for uploaded logo
	LogoName string `bson:"logo_name,omitempty" json:"logo_name,omitempty"` // Original filename

	// Contact information shown on the contact page and in the footer
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string `bson:"address,omitempty" json:"address,omitempty"`
	MapsEmbed string `bson:"maps_embed,omitempty" json:"maps_embed,omitempty"` // Embed URL for the map iframe

	// Social links
	Social SocialLinks `bson:"social,omitempty" json:"social"`

	// Legal disclaimer shown as an entry gate on first visit
	DisclaimerEnabled bool   `bson:"disclaimer_enabled" json:"disclaimer_enabled"`
	DisclaimerText    string `bson:"disclaimer_text,omitempty" json:"disclaimer_text,omitempty"`

	// Theme
	Theme Theme `bson:"theme,omitempty" json:"theme"`

	// Header / footer toggles
	ShowHeaderPhone   bool `bson:"show_header_phone" json:"show_header_phone"`
	ShowFooterNewsfeed bool `bson:"show_footer_newsfeed" json:"show_footer_newsfeed"`

	// Navigation menu, rendered in array order
	Menu []MenuItem `bson:"menu,omitempty" json:"menu"`

	// Copy for the clients strip on the home page
	ClientsTitle    string `bson:"clients_title,omitempty" json:"clients_title,omitempty"`
	ClientsSubtitle string `bson:"clients_subtitle,omitempty" json:"clients_subtitle,omitempty"`

	// Audit fields
	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"updated_by_id,omitempty"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"updated_by_name,omitempty"`
}

// SocialLinks holds the firm's social profile URLs. Empty links are not rendered.
type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
}

// Theme holds presentation settings applied to every public page.
type Theme struct {
	Mode         string `bson:"mode,omitempty" json:"mode,omitempty"`     // light, dark
	Preset       string `bson:"preset,omitempty" json:"preset,omitempty"` // named preset, overrides individual colors when set
	PrimaryColor string `bson:"primary_color,omitempty" json:"primary_color,omitempty"`
	AccentColor  string `bson:"accent_color,omitempty" json:"accent_color,omitempty"`
	HeadingFont  string `bson:"heading_font,omitempty" json:"heading_font,omitempty"`
	BodyFont     string `bson:"body_font,omitempty" json:"body_font,omitempty"`
	CornerRadius string `bson:"corner_radius,omitempty" json:"corner_radius,omitempty"`
}

// MenuItem is one entry in the site navigation.
type MenuItem struct {
	Label    string `bson:"label" json:"label"`
	URL      string `bson:"url" json:"url"`
	External bool   `bson:"external,omitempty" json:"external,omitempty"`
}

// HasLogo returns true if a logo has been uploaded.
func (c *SiteConfig) HasLogo() bool {
	return c.LogoPath != ""
}

// Theme modes
const (
	ThemeModeLight = "light"
	ThemeModeDark  = "dark"
)

// DefaultSiteName is used when no config document exists yet.
const DefaultSiteName = "Lexsite"

// DefaultMenu returns the navigation seeded for a fresh site.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Label: "Home", URL: "/"},
		{Label: "Practice Areas", URL: "/practice-areas"},
		{Label: "Our Team", URL: "/team"},
		{Label: "Blog", URL: "/blog"},
		{Label: "Careers", URL: "/careers"},
		{Label: "Contact", URL: "/contact"},
	}
}
