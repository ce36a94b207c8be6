// internal/app/features/api/blog.go
package api

import (
	"net/http"
	"strings"

	"github.com/lexsite/lexsite/internal/app/store/storeutil"
	"github.com/lexsite/lexsite/internal/app/system/inputval"
	"github.com/lexsite/lexsite/internal/app/system/jsonutil"
	"github.com/lexsite/lexsite/internal/domain/models"
)

type blogPostInput struct {
	Title     string         `json:"title" validate:"required,max=200" label:"Title"`
	Slug      string         `json:"slug"`
	Excerpt   string         `json:"excerpt"`
	Body      string         `json:"body"`
	CoverPath string         `json:"cover_path"`
	Category  string         `json:"category"`
	Tags      []string       `json:"tags"`
	Author    string         `json:"author"`
	Status    string         `json:"status"`
	ReadTime  int            `json:"read_time"`
	SEO       models.BlogSEO `json:"seo"`
}

// readTime estimates minutes to read from the body word count. 200 words
// a minute, never below one minute for a non-empty body.
func readTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func (in *blogPostInput) toModel() (models.BlogPost, map[string]string) {
	fields := fieldErrors(inputval.Validate(*in))

	sl, ok := resolveSlug(in.Slug, in.Title)
	if !ok {
		fields["slug"] = "Slug must be lowercase letters, numbers and hyphens."
	}

	status := in.Status
	if status == "" {
		status = models.BlogStatusDraft
	}
	if !models.IsValidBlogStatus(status) {
		fields["status"] = "Status must be one of: " + strings.Join(models.AllBlogStatuses(), ", ") + "."
	}

	rt := in.ReadTime
	if rt == 0 {
		rt = readTime(in.Body)
	}

	return models.BlogPost{
		Slug:      sl,
		Title:     strings.TrimSpace(in.Title),
		Excerpt:   in.Excerpt,
		Body:      in.Body,
		CoverPath: in.CoverPath,
		Category:  in.Category,
		Tags:      in.Tags,
		Author:    in.Author,
		Status:    status,
		ReadTime:  rt,
		SEO:       in.SEO,
	}, fields
}

func (h *Handler) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	items, err := h.blogPosts.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list blog posts", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) getBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := h.blogPosts.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to get blog post", err)
		return
	}
	jsonutil.OK(w, item)
}

func (h *Handler) createBlogPost(w http.ResponseWriter, r *http.Request) {
	var in blogPostInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	p, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.blogPosts.Create(r.Context(), &p); err != nil {
		if storeutil.IsDuplicateKey(err) {
			jsonutil.ValidationError(w, map[string]string{"slug": "A post with this slug already exists."})
			return
		}
		h.storeError(w, r, "failed to create blog post", err)
		return
	}
	jsonutil.Created(w, p)
}

func (h *Handler) updateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in blogPostInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	p, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	// Preserve the original publish timestamp across edits.
	if existing, err := h.blogPosts.GetByID(r.Context(), id); err == nil {
		p.PublishedAt = existing.PublishedAt
	}

	if err := h.blogPosts.Update(r.Context(), id, p); err != nil {
		if storeutil.IsDuplicateKey(err) {
			jsonutil.ValidationError(w, map[string]string{"slug": "A post with this slug already exists."})
			return
		}
		h.storeError(w, r, "failed to update blog post", err)
		return
	}

	updated, err := h.blogPosts.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload blog post", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.blogPosts.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete blog post", err)
		return
	}
	jsonutil.NoContent(w)
}

type blogCategoryInput struct {
	Name        string `json:"name" validate:"required,max=200" label:"Name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (in *blogCategoryInput) toModel() (models.BlogCategory, map[string]string) {
	fields := fieldErrors(inputval.Validate(*in))

	sl, ok := resolveSlug(in.Slug, in.Name)
	if !ok {
		fields["slug"] = "Slug must be lowercase letters, numbers and hyphens."
	}

	return models.BlogCategory{
		Slug:        sl,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	}, fields
}

func (h *Handler) listBlogCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.blogCats.GetAll(r.Context())
	if err != nil {
		h.storeError(w, r, "failed to list blog categories", err)
		return
	}
	jsonutil.OK(w, items)
}

func (h *Handler) createBlogCategory(w http.ResponseWriter, r *http.Request) {
	var in blogCategoryInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	cat, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.blogCats.Create(r.Context(), &cat); err != nil {
		if storeutil.IsDuplicateKey(err) {
			jsonutil.ValidationError(w, map[string]string{"slug": "A category with this slug already exists."})
			return
		}
		h.storeError(w, r, "failed to create blog category", err)
		return
	}
	jsonutil.Created(w, cat)
}

func (h *Handler) updateBlogCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var in blogCategoryInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	cat, fields := in.toModel()
	if len(fields) > 0 {
		jsonutil.ValidationError(w, fields)
		return
	}

	if err := h.blogCats.Update(r.Context(), id, cat); err != nil {
		if storeutil.IsDuplicateKey(err) {
			jsonutil.ValidationError(w, map[string]string{"slug": "A category with this slug already exists."})
			return
		}
		h.storeError(w, r, "failed to update blog category", err)
		return
	}

	updated, err := h.blogCats.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, r, "failed to reload blog category", err)
		return
	}
	jsonutil.OK(w, updated)
}

func (h *Handler) deleteBlogCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.blogCats.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete blog category", err)
		return
	}
	jsonutil.NoContent(w)
}
