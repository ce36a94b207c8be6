// internal/domain/models/page.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page is a composed content page. Its body is an ordered list of sections;
// each section carries a type tag and a free-form content document whose
// shape depends on the tag. The home page is the page with slug "home".
type Page struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug string             `bson:"slug" json:"slug"`

	Title string `bson:"title" json:"title"`

	Sections []Section `bson:"sections" json:"sections"`

	// Content is legacy free-form HTML kept for pages created before the
	// section model; rendered after the sections when non-empty.
	Content string `bson:"content,omitempty" json:"content,omitempty"`

	MetaTitle       string `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription string `bson:"meta_description,omitempty" json:"meta_description,omitempty"`

	IsPublished bool `bson:"is_published" json:"is_published"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Section is one block of a page. Content is schemaless on purpose: renderers
// read the fields they know through defaulting accessors, so a section with
// Content == nil or {} still renders (to its empty state). Array position in
// Page.Sections is the render order; Order is rewritten to match on every
// save and exists only so exported documents read naturally.
type Section struct {
	Type    string `bson:"type" json:"type"`
	Order   int    `bson:"order" json:"order"`
	Content bson.M `bson:"content" json:"content"`
}

// Section type tags
const (
	SectionHeroSlider   = "HERO_SLIDER"
	SectionHero         = "HERO" // legacy single-image hero
	SectionAbout        = "ABOUT"
	SectionServicesGrid = "SERVICES_GRID"
	SectionStats        = "STATS"
	SectionTestimonials = "TESTIMONIALS"
	SectionBlog         = "BLOG"
	SectionClientLogos  = "CLIENT_LOGOS"
	SectionMap          = "MAP"
	SectionTextBlock    = "TEXT_BLOCK"
)

// AllSectionTypes returns every known section type tag.
func AllSectionTypes() []string {
	return []string{
		SectionHeroSlider,
		SectionHero,
		SectionAbout,
		SectionServicesGrid,
		SectionStats,
		SectionTestimonials,
		SectionBlog,
		SectionClientLogos,
		SectionMap,
		SectionTextBlock,
	}
}

// IsKnownSectionType checks if a tag has a registered meaning. Unknown tags
// are preserved, skipped by the public renderer, and edited as raw JSON.
func IsKnownSectionType(t string) bool {
	for _, v := range AllSectionTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// PageSlugHome is the slug of the page served at "/".
const PageSlugHome = "home"
