// internal/app/system/sections/render.go
package sections

import (
	"bytes"
	"html/template"

	"github.com/lexsite/lexsite/internal/app/system/htmlsanitize"
	"github.com/lexsite/lexsite/internal/domain/models"
)

// Data carries the supporting entities section renderers may draw on. The
// caller loads only what the page's sections need; a nil or empty field
// renders that section's empty state.
type Data struct {
	Config        *models.SiteConfig
	Sliders       []models.Slider       // active, in order
	PracticeAreas []models.PracticeArea // home-flagged, in order
	Posts         []models.BlogPost     // published, newest first
	Clients       []models.Client       // active, in order
	FileURL       func(path string) string
}

// url resolves a storage path through the loader, tolerating a nil resolver.
func (d *Data) url(path string) string {
	if path == "" || d == nil || d.FileURL == nil {
		return path
	}
	return d.FileURL(path)
}

// renderer produces the HTML for one section. Renderers must not assume
// anything about Content shape.
type renderer func(sec models.Section, data *Data) template.HTML

var renderers = map[string]renderer{
	models.SectionHeroSlider:   renderHeroSlider,
	models.SectionHero:         renderHero,
	models.SectionAbout:        renderAbout,
	models.SectionServicesGrid: renderServicesGrid,
	models.SectionStats:        renderStats,
	models.SectionTestimonials: renderTestimonials,
	models.SectionBlog:         renderBlog,
	models.SectionClientLogos:  renderClientLogos,
	models.SectionMap:          renderMap,
	models.SectionTextBlock:    renderTextBlock,
}

// Render produces the HTML for a single section. Unknown tags render to
// nothing so documents written by newer versions degrade silently.
func Render(sec models.Section, data *Data) template.HTML {
	fn, ok := renderers[sec.Type]
	if !ok {
		return ""
	}
	return fn(sec, data)
}

// RenderAll renders sections in array order. Array position is the only
// ordering authority; the stored order fields are ignored here.
func RenderAll(secs []models.Section, data *Data) template.HTML {
	var buf bytes.Buffer
	for _, sec := range secs {
		buf.WriteString(string(Render(sec, data)))
	}
	return template.HTML(buf.String())
}

// exec runs a named template from the section template set, returning empty
// HTML on failure rather than surfacing a broken page.
func exec(name string, vm any) template.HTML {
	var buf bytes.Buffer
	if err := sectionTmpl.ExecuteTemplate(&buf, name, vm); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

func renderHeroSlider(sec models.Section, data *Data) template.HTML {
	type slideVM struct {
		Title, Subtitle, ImageURL, ButtonText, ButtonURL string
		TitleFontSize, SubtitleFontSize                  string
	}
	var vm struct {
		Interval int
		Slides   []slideVM
	}
	vm.Interval = num(sec.Content, "interval_ms", 6000)
	if data != nil {
		for _, s := range data.Sliders {
			vm.Slides = append(vm.Slides, slideVM{
				Title:            s.Title,
				Subtitle:         s.Subtitle,
				ImageURL:         data.url(s.ImagePath),
				ButtonText:       s.ButtonText,
				ButtonURL:        s.ButtonURL,
				TitleFontSize:    s.TitleFontSize,
				SubtitleFontSize: s.SubtitleFontSize,
			})
		}
	}
	if len(vm.Slides) == 0 {
		return ""
	}
	return exec("hero_slider", vm)
}

func renderHero(sec models.Section, data *Data) template.HTML {
	var vm struct {
		Heading, Subheading, ImageURL, ButtonText, ButtonURL string
	}
	vm.Heading = str(sec.Content, "heading", "")
	vm.Subheading = str(sec.Content, "subheading", "")
	vm.ImageURL = str(sec.Content, "image", "")
	vm.ButtonText = str(sec.Content, "button_text", "")
	vm.ButtonURL = str(sec.Content, "button_url", "")
	return exec("hero", vm)
}

func renderAbout(sec models.Section, data *Data) template.HTML {
	var vm struct {
		Heading, ImageURL string
		Body              template.HTML
	}
	vm.Heading = str(sec.Content, "heading", "About Us")
	vm.ImageURL = str(sec.Content, "image", "")
	vm.Body = htmlsanitize.SanitizeToHTML(str(sec.Content, "body", ""))
	return exec("about", vm)
}

func renderServicesGrid(sec models.Section, data *Data) template.HTML {
	type cardVM struct {
		Title, Teaser, Icon, URL string
	}
	var vm struct {
		Heading, Subheading string
		Cards               []cardVM
	}
	vm.Heading = str(sec.Content, "heading", "Practice Areas")
	vm.Subheading = str(sec.Content, "subheading", "")
	limit := num(sec.Content, "limit", 6)
	if data != nil {
		for _, pa := range data.PracticeAreas {
			if limit > 0 && len(vm.Cards) >= limit {
				break
			}
			vm.Cards = append(vm.Cards, cardVM{
				Title:  pa.Title,
				Teaser: pa.ShortDescription,
				Icon:   pa.Icon,
				URL:    "/practice-areas/" + pa.Slug,
			})
		}
	}
	return exec("services_grid", vm)
}

func renderStats(sec models.Section, data *Data) template.HTML {
	type statVM struct {
		Value, Suffix, Label string
	}
	var vm struct {
		Heading string
		Stats   []statVM
	}
	vm.Heading = str(sec.Content, "heading", "")
	for _, item := range list(sec.Content, "items") {
		vm.Stats = append(vm.Stats, statVM{
			Value:  str(item, "value", "0"),
			Suffix: str(item, "suffix", ""),
			Label:  str(item, "label", ""),
		})
	}
	if len(vm.Stats) == 0 {
		return ""
	}
	return exec("stats", vm)
}

func renderTestimonials(sec models.Section, data *Data) template.HTML {
	type quoteVM struct {
		Quote, Author, Role string
	}
	var vm struct {
		Heading string
		Quotes  []quoteVM
	}
	vm.Heading = str(sec.Content, "heading", "What Our Clients Say")
	for _, item := range list(sec.Content, "items") {
		vm.Quotes = append(vm.Quotes, quoteVM{
			Quote:  str(item, "quote", ""),
			Author: str(item, "author", ""),
			Role:   str(item, "role", ""),
		})
	}
	if len(vm.Quotes) == 0 {
		return ""
	}
	return exec("testimonials", vm)
}

func renderBlog(sec models.Section, data *Data) template.HTML {
	type postVM struct {
		Title, Excerpt, URL, CoverURL, Category string
	}
	var vm struct {
		Heading string
		Posts   []postVM
	}
	vm.Heading = str(sec.Content, "heading", "Latest Insights")
	limit := num(sec.Content, "limit", 3)
	if data != nil {
		for _, p := range data.Posts {
			if limit > 0 && len(vm.Posts) >= limit {
				break
			}
			vm.Posts = append(vm.Posts, postVM{
				Title:    p.Title,
				Excerpt:  p.Excerpt,
				URL:      "/blog/" + p.Slug,
				CoverURL: data.url(p.CoverPath),
				Category: p.Category,
			})
		}
	}
	if len(vm.Posts) == 0 {
		return ""
	}
	return exec("blog", vm)
}

func renderClientLogos(sec models.Section, data *Data) template.HTML {
	type logoVM struct {
		Name, LogoURL, Website string
	}
	var vm struct {
		Heading, Subheading string
		Logos               []logoVM
	}
	vm.Heading = str(sec.Content, "heading", "")
	vm.Subheading = str(sec.Content, "subheading", "")
	if data != nil && data.Config != nil {
		if vm.Heading == "" {
			vm.Heading = data.Config.ClientsTitle
		}
		if vm.Subheading == "" {
			vm.Subheading = data.Config.ClientsSubtitle
		}
	}
	if vm.Heading == "" {
		vm.Heading = "Our Clients"
	}
	if data != nil {
		for _, c := range data.Clients {
			vm.Logos = append(vm.Logos, logoVM{
				Name:    c.Name,
				LogoURL: data.url(c.LogoPath),
				Website: c.Website,
			})
		}
	}
	if len(vm.Logos) == 0 {
		return ""
	}
	return exec("client_logos", vm)
}

func renderMap(sec models.Section, data *Data) template.HTML {
	var vm struct {
		EmbedURL, Height string
	}
	vm.EmbedURL = str(sec.Content, "embed_url", "")
	if vm.EmbedURL == "" && data != nil && data.Config != nil {
		vm.EmbedURL = data.Config.MapsEmbed
	}
	vm.Height = str(sec.Content, "height", "400px")
	if vm.EmbedURL == "" {
		return ""
	}
	return exec("map", vm)
}

func renderTextBlock(sec models.Section, data *Data) template.HTML {
	var vm struct {
		Heading string
		Body    template.HTML
	}
	vm.Heading = str(sec.Content, "heading", "")
	vm.Body = htmlsanitize.SanitizeToHTML(str(sec.Content, "body", ""))
	return exec("text_block", vm)
}
