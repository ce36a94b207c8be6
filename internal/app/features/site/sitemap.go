// internal/app/features/site/sitemap.go
package site

import (
	"encoding/xml"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// urlSet is the sitemap protocol document.
type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SetBaseURL sets the absolute URL prefix for sitemap entries.
func (h *Handler) SetBaseURL(base string) {
	h.baseURL = base
}

// sitemap lists the static routes plus every published page, practice
// area, visible job, and published post.
func (h *Handler) sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	base := h.baseURL
	if base == "" {
		scheme := "https"
		if r.TLS == nil {
			scheme = "http"
		}
		base = scheme + "://" + r.Host
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	add := func(path string, mod time.Time) {
		entry := urlEntry{Loc: base + path}
		if !mod.IsZero() {
			entry.LastMod = mod.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, entry)
	}

	add("/", time.Time{})
	add("/practice-areas", time.Time{})
	add("/team", time.Time{})
	add("/careers", time.Time{})
	add("/blog", time.Time{})
	add("/contact", time.Time{})
	add("/gallery", time.Time{})

	if areas, err := h.practiceAreas.GetAll(ctx); err == nil {
		for _, a := range areas {
			add("/practice-areas/"+a.Slug, a.UpdatedAt)
		}
	} else {
		h.logger.Warn("sitemap: failed to load practice areas", zap.Error(err))
	}

	if jobs, err := h.jobs.GetVisible(ctx); err == nil {
		for _, j := range jobs {
			add("/careers/"+j.ID.Hex(), j.UpdatedAt)
		}
	} else {
		h.logger.Warn("sitemap: failed to load jobs", zap.Error(err))
	}

	if posts, err := h.blogPosts.GetPublished(ctx, "", 0); err == nil {
		for _, p := range posts {
			add("/blog/"+p.Slug, p.UpdatedAt)
		}
	} else {
		h.logger.Warn("sitemap: failed to load blog posts", zap.Error(err))
	}

	if pages, err := h.pages.GetPublished(ctx); err == nil {
		for _, p := range pages {
			if p.Slug == models.PageSlugHome {
				continue
			}
			add("/p/"+p.Slug, p.UpdatedAt)
		}
	} else {
		h.logger.Warn("sitemap: failed to load pages", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		h.logger.Warn("sitemap: encode failed", zap.Error(err))
	}
}
