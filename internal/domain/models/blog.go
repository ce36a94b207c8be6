// internal/domain/models/blog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is an article on the firm's blog. Slug is unique and derived from
// the title when not supplied. Category is free text; BlogCategory documents
// exist for admin bookkeeping but the link is not enforced.
type BlogPost struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug string             `bson:"slug" json:"slug"`

	Title   string `bson:"title" json:"title"`
	Excerpt string `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Body    string `bson:"body,omitempty" json:"body,omitempty"` // markdown

	CoverPath string   `bson:"cover_path,omitempty" json:"cover_path,omitempty"`
	Category  string   `bson:"category,omitempty" json:"category,omitempty"`
	Tags      []string `bson:"tags,omitempty" json:"tags,omitempty"`
	Author    string   `bson:"author,omitempty" json:"author,omitempty"`

	Status      string     `bson:"status" json:"status"` // draft, published
	PublishedAt *time.Time `bson:"published_at,omitempty" json:"published_at,omitempty"`

	// Views counts detail page fetches, not unique visitors.
	Views    int64 `bson:"views" json:"views"`
	ReadTime int   `bson:"read_time,omitempty" json:"read_time,omitempty"` // minutes

	SEO BlogSEO `bson:"seo,omitempty" json:"seo"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BlogSEO holds per-post overrides for meta tags.
type BlogSEO struct {
	MetaTitle       string `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription string `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	FocusKeyword    string `bson:"focus_keyword,omitempty" json:"focus_keyword,omitempty"`
	OGImagePath     string `bson:"og_image_path,omitempty" json:"og_image_path,omitempty"`
}

// IsPublished reports whether the post appears on the public blog.
func (p *BlogPost) IsPublished() bool {
	return p.Status == BlogStatusPublished
}

// Blog post statuses
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// AllBlogStatuses returns all valid blog post statuses.
func AllBlogStatuses() []string {
	return []string{
		BlogStatusDraft,
		BlogStatusPublished,
	}
}

// IsValidBlogStatus checks if a status is valid.
func IsValidBlogStatus(s string) bool {
	for _, v := range AllBlogStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

// BlogCategory is an admin-managed taxonomy entry. Posts store the category
// name as free text, so removing a category never breaks posts.
type BlogCategory struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug string             `bson:"slug" json:"slug"`

	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
