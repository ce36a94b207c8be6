// internal/app/system/sections/mutate.go
package sections

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/lexsite/lexsite/internal/domain/models"
)

// Append adds a new section of the given type at the end with empty content.
// The section is valid immediately: every renderer handles empty content.
func Append(secs []models.Section, sectionType string) []models.Section {
	out := append(secs, models.Section{
		Type:    sectionType,
		Content: bson.M{},
	})
	return Renumber(out)
}

// Remove deletes the section at index i in place. Out-of-range indexes are
// ignored.
func Remove(secs []models.Section, i int) []models.Section {
	if i < 0 || i >= len(secs) {
		return secs
	}
	out := append(secs[:i], secs[i+1:]...)
	return Renumber(out)
}

// Move swaps the sections at i and j. The admin UI only ever swaps adjacent
// entries (move up / move down) but any pair is accepted. Out-of-range
// indexes are ignored.
func Move(secs []models.Section, i, j int) []models.Section {
	if i < 0 || i >= len(secs) || j < 0 || j >= len(secs) || i == j {
		return secs
	}
	secs[i], secs[j] = secs[j], secs[i]
	return Renumber(secs)
}

// Renumber rewrites every Order field to its array index. Array position is
// authoritative everywhere; the stored numbers just keep exported documents
// readable.
func Renumber(secs []models.Section) []models.Section {
	for i := range secs {
		secs[i].Order = i
	}
	return secs
}
