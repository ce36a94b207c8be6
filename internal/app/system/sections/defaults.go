// internal/app/system/sections/defaults.go
package sections

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// DefaultHome returns the sections seeded onto the home page of a fresh site.
func DefaultHome() []models.Section {
	return Renumber([]models.Section{
		{Type: models.SectionHeroSlider, Content: bson.M{}},
		{Type: models.SectionAbout, Content: bson.M{
			"heading": "About the Firm",
			"body":    "<p>We are a full-service law firm advising businesses and individuals across corporate, commercial and dispute resolution practice.</p>",
		}},
		{Type: models.SectionServicesGrid, Content: bson.M{}},
		{Type: models.SectionStats, Content: bson.M{
			"items": bson.A{
				bson.M{"value": "25", "suffix": "+", "label": "Years of Practice"},
				bson.M{"value": "500", "suffix": "+", "label": "Matters Handled"},
				bson.M{"value": "40", "suffix": "+", "label": "Corporate Clients"},
			},
		}},
		{Type: models.SectionBlog, Content: bson.M{}},
		{Type: models.SectionClientLogos, Content: bson.M{}},
		{Type: models.SectionMap, Content: bson.M{}},
	})
}
