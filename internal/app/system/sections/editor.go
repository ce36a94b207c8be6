// internal/app/system/sections/editor.go
package sections

import "github.com/lexsite/lexsite/internal/domain/models"

// Field describes one admin editor input for a section type.
type Field struct {
	Name        string // content key
	Label       string
	Kind        string // text, textarea, richtext, image, number, items
	Placeholder string
	Help        string
	// ItemFields describes the columns of an "items" field.
	ItemFields []Field
}

// Field kinds
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldRichText = "richtext"
	FieldImage    = "image"
	FieldNumber   = "number"
	FieldItems    = "items"
)

var editorFields = map[string][]Field{
	models.SectionHeroSlider: {
		{Name: "interval_ms", Label: "Slide interval (ms)", Kind: FieldNumber, Placeholder: "6000",
			Help: "Slides themselves are managed under Sliders."},
	},
	models.SectionHero: {
		{Name: "heading", Label: "Heading", Kind: FieldText},
		{Name: "subheading", Label: "Subheading", Kind: FieldText},
		{Name: "image", Label: "Background image", Kind: FieldImage},
		{Name: "button_text", Label: "Button text", Kind: FieldText},
		{Name: "button_url", Label: "Button URL", Kind: FieldText, Placeholder: "/contact"},
	},
	models.SectionAbout: {
		{Name: "heading", Label: "Heading", Kind: FieldText, Placeholder: "About Us"},
		{Name: "body", Label: "Body", Kind: FieldRichText},
		{Name: "image", Label: "Image", Kind: FieldImage},
	},
	models.SectionServicesGrid: {
		{Name: "heading", Label: "Heading", Kind: FieldText, Placeholder: "Practice Areas"},
		{Name: "subheading", Label: "Subheading", Kind: FieldText},
		{Name: "limit", Label: "Max cards", Kind: FieldNumber, Placeholder: "6",
			Help: "Cards come from practice areas marked Show on home."},
	},
	models.SectionStats: {
		{Name: "heading", Label: "Heading", Kind: FieldText},
		{Name: "items", Label: "Stats", Kind: FieldItems, ItemFields: []Field{
			{Name: "value", Label: "Value", Kind: FieldText, Placeholder: "250"},
			{Name: "suffix", Label: "Suffix", Kind: FieldText, Placeholder: "+"},
			{Name: "label", Label: "Label", Kind: FieldText, Placeholder: "Cases Won"},
		}},
	},
	models.SectionTestimonials: {
		{Name: "heading", Label: "Heading", Kind: FieldText, Placeholder: "What Our Clients Say"},
		{Name: "items", Label: "Testimonials", Kind: FieldItems, ItemFields: []Field{
			{Name: "quote", Label: "Quote", Kind: FieldTextarea},
			{Name: "author", Label: "Author", Kind: FieldText},
			{Name: "role", Label: "Role", Kind: FieldText},
		}},
	},
	models.SectionBlog: {
		{Name: "heading", Label: "Heading", Kind: FieldText, Placeholder: "Latest Insights"},
		{Name: "limit", Label: "Max posts", Kind: FieldNumber, Placeholder: "3"},
	},
	models.SectionClientLogos: {
		{Name: "heading", Label: "Heading", Kind: FieldText,
			Help: "Falls back to the site config clients title."},
		{Name: "subheading", Label: "Subheading", Kind: FieldText},
	},
	models.SectionMap: {
		{Name: "embed_url", Label: "Embed URL", Kind: FieldText,
			Help: "Falls back to the site config map embed."},
		{Name: "height", Label: "Height", Kind: FieldText, Placeholder: "400px"},
	},
	models.SectionTextBlock: {
		{Name: "heading", Label: "Heading", Kind: FieldText},
		{Name: "body", Label: "Body", Kind: FieldRichText},
	},
}

// FieldsFor returns the editor fields for a section type. ok is false for
// unknown tags; the admin editor then falls back to a raw JSON textarea so
// no document becomes uneditable.
func FieldsFor(sectionType string) (fields []Field, ok bool) {
	fields, ok = editorFields[sectionType]
	return fields, ok
}
