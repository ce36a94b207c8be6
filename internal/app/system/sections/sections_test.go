// internal/app/system/sections/sections_test.go
package sections

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lexsite/lexsite/internal/domain/models"
)

func TestRenderEmptyContentNeverPanics(t *testing.T) {
	// Every known tag must render something (possibly nothing) for a section
	// whose content is nil or {}, without panicking.
	for _, tag := range models.AllSectionTypes() {
		for _, content := range []bson.M{nil, {}} {
			sec := models.Section{Type: tag, Content: content}
			_ = Render(sec, nil)
			_ = Render(sec, &Data{})
		}
	}
}

func TestRenderEmptyContentFallbacks(t *testing.T) {
	// Tags whose renderers fall back to default copy or wrapper markup must
	// still produce output for an empty content map. The data-backed tags
	// (slider, stats, logos) legitimately collapse to nothing instead.
	cases := []struct {
		tag  string
		want string
	}{
		{models.SectionHero, "section-hero"},
		{models.SectionAbout, "About Us"},
		{models.SectionServicesGrid, "Practice Areas"},
		{models.SectionTextBlock, "section-text"},
	}
	for _, tc := range cases {
		sec := models.Section{Type: tc.tag, Content: bson.M{}}
		out := string(Render(sec, &Data{}))
		if out == "" {
			t.Errorf("%s rendered nothing for empty content", tc.tag)
			continue
		}
		if !strings.Contains(out, tc.want) {
			t.Errorf("%s output missing %q: %s", tc.tag, tc.want, out)
		}
	}
}

func TestRenderUnknownTagIsEmpty(t *testing.T) {
	sec := models.Section{Type: "VIDEO_WALL", Content: bson.M{"url": "x"}}
	if got := Render(sec, &Data{}); got != "" {
		t.Errorf("unknown tag rendered %q, want empty", got)
	}
}

func TestRenderToleratesWrongFieldTypes(t *testing.T) {
	sec := models.Section{Type: models.SectionTextBlock, Content: bson.M{
		"heading": 42,              // not a string
		"body":    []string{"nope"}, // not a string
	}}
	_ = Render(sec, &Data{}) // must not panic

	sec = models.Section{Type: models.SectionStats, Content: bson.M{
		"items": "not-a-list",
	}}
	if got := Render(sec, &Data{}); got != "" {
		t.Errorf("stats with bad items rendered %q, want empty", got)
	}
}

func TestRenderTextBlock(t *testing.T) {
	sec := models.Section{Type: models.SectionTextBlock, Content: bson.M{
		"heading": "Disclaimer",
		"body":    "<p>Hello</p><script>alert(1)</script>",
	}}
	out := string(Render(sec, &Data{}))
	if !strings.Contains(out, "Disclaimer") {
		t.Errorf("heading missing from output: %s", out)
	}
	if !strings.Contains(out, "<p>Hello</p>") {
		t.Errorf("body missing from output: %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag survived sanitization: %s", out)
	}
}

func TestRenderServicesGridUsesLimit(t *testing.T) {
	data := &Data{
		PracticeAreas: []models.PracticeArea{
			{Title: "Corporate", Slug: "corporate"},
			{Title: "Tax", Slug: "tax"},
			{Title: "Litigation", Slug: "litigation"},
		},
	}
	sec := models.Section{Type: models.SectionServicesGrid, Content: bson.M{"limit": 2}}
	out := string(Render(sec, data))
	if !strings.Contains(out, "Corporate") || !strings.Contains(out, "Tax") {
		t.Errorf("expected first two areas in output: %s", out)
	}
	if strings.Contains(out, "Litigation") {
		t.Errorf("limit 2 should drop the third area: %s", out)
	}
}

func TestRenderAllPreservesArrayOrder(t *testing.T) {
	secs := []models.Section{
		// Order fields deliberately contradict array positions; array wins.
		{Type: models.SectionTextBlock, Order: 9, Content: bson.M{"heading": "First"}},
		{Type: models.SectionTextBlock, Order: 0, Content: bson.M{"heading": "Second"}},
	}
	out := string(RenderAll(secs, &Data{}))
	if strings.Index(out, "First") > strings.Index(out, "Second") {
		t.Errorf("sections rendered out of array order: %s", out)
	}
}

func TestAppend(t *testing.T) {
	secs := Append(nil, models.SectionAbout)
	if len(secs) != 1 {
		t.Fatalf("len = %d, want 1", len(secs))
	}
	if secs[0].Type != models.SectionAbout {
		t.Errorf("type = %q", secs[0].Type)
	}
	if secs[0].Content == nil || len(secs[0].Content) != 0 {
		t.Errorf("new section content = %v, want empty map", secs[0].Content)
	}
	if secs[0].Order != 0 {
		t.Errorf("order = %d, want 0", secs[0].Order)
	}

	secs = Append(secs, models.SectionMap)
	if secs[1].Order != 1 {
		t.Errorf("second order = %d, want 1", secs[1].Order)
	}
}

func TestRemove(t *testing.T) {
	secs := Append(Append(Append(nil, "A"), "B"), "C")
	secs = Remove(secs, 1)
	if len(secs) != 2 || secs[0].Type != "A" || secs[1].Type != "C" {
		t.Fatalf("after remove: %+v", secs)
	}
	if secs[1].Order != 1 {
		t.Errorf("orders not renumbered: %+v", secs)
	}

	// Out of range is a no-op.
	if got := Remove(secs, 5); len(got) != 2 {
		t.Errorf("out-of-range remove changed slice: %+v", got)
	}
	if got := Remove(secs, -1); len(got) != 2 {
		t.Errorf("negative remove changed slice: %+v", got)
	}
}

func TestMove(t *testing.T) {
	secs := Append(Append(Append(nil, "A"), "B"), "C")
	secs = Move(secs, 0, 1)
	if secs[0].Type != "B" || secs[1].Type != "A" {
		t.Fatalf("after move: %+v", secs)
	}
	for i, s := range secs {
		if s.Order != i {
			t.Errorf("section %d has order %d", i, s.Order)
		}
	}

	// Out of range is a no-op.
	before := []models.Section{{Type: "A"}, {Type: "B"}}
	after := Move(before, 0, 5)
	if after[0].Type != "A" {
		t.Errorf("out-of-range move changed slice: %+v", after)
	}
}

func TestFieldsFor(t *testing.T) {
	for _, tag := range models.AllSectionTypes() {
		if _, ok := FieldsFor(tag); !ok {
			t.Errorf("no editor fields registered for %q", tag)
		}
	}
	if _, ok := FieldsFor("VIDEO_WALL"); ok {
		t.Error("unknown tag should not have editor fields")
	}
}

func TestDefaultHomeRenders(t *testing.T) {
	secs := DefaultHome()
	for i, s := range secs {
		if s.Order != i {
			t.Errorf("section %d has order %d", i, s.Order)
		}
		if !models.IsKnownSectionType(s.Type) {
			t.Errorf("section %d has unknown type %q", i, s.Type)
		}
	}
	_ = RenderAll(secs, &Data{})
}
