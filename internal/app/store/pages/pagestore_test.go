package pagestore

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lexsite/lexsite/internal/app/store/storeutil"
	"github.com/lexsite/lexsite/internal/domain/models"
	"github.com/lexsite/lexsite/internal/testutil"
)

func TestStore_Create_And_GetBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:  "about-the-firm",
		Title: "About the Firm",
		Sections: []models.Section{
			{Type: models.SectionTextBlock, Content: bson.M{"body": "<p>Hello</p>"}},
			{Type: models.SectionStats, Content: bson.M{}},
		},
		IsPublished: true,
	}
	if err := store.Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if page.ID.IsZero() {
		t.Error("Create() should assign an id")
	}

	got, err := store.GetBySlug(ctx, "about-the-firm")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Title != "About the Firm" {
		t.Errorf("Title = %q, want %q", got.Title, "About the Firm")
	}
	if len(got.Sections) != 2 {
		t.Fatalf("Sections count = %d, want 2", len(got.Sections))
	}
	// Stored order fields follow array positions.
	for i, sec := range got.Sections {
		if sec.Order != i {
			t.Errorf("Sections[%d].Order = %d, want %d", i, sec.Order, i)
		}
	}
}

func TestStore_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.Page{Slug: "disclaimer", Title: "Disclaimer"}
	if err := store.Create(ctx, &first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := models.Page{Slug: "disclaimer", Title: "Another Disclaimer"}
	err := store.Create(ctx, &second)
	if err == nil {
		t.Fatal("Create() with duplicate slug should fail")
	}
	if !storeutil.IsDuplicateKey(err) {
		t.Errorf("Create() duplicate slug error = %v, want duplicate key", err)
	}
}

func TestStore_GetPublishedBySlug_HidesDrafts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	draft := models.Page{Slug: "upcoming-seminar", Title: "Upcoming Seminar", IsPublished: false}
	if err := store.Create(ctx, &draft); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := store.GetPublishedBySlug(ctx, "upcoming-seminar"); err != mongo.ErrNoDocuments {
		t.Errorf("GetPublishedBySlug() for draft error = %v, want %v", err, mongo.ErrNoDocuments)
	}

	// The admin lookup still finds it.
	if _, err := store.GetBySlug(ctx, "upcoming-seminar"); err != nil {
		t.Errorf("GetBySlug() for draft error = %v", err)
	}
}

func TestStore_SetSections_Renumbers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{Slug: models.PageSlugHome, Title: "Home", IsPublished: true}
	if err := store.Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Order fields deliberately disagree with array positions; the array wins.
	secs := []models.Section{
		{Type: models.SectionAbout, Order: 7, Content: bson.M{"title": "About"}},
		{Type: models.SectionMap, Order: 2, Content: bson.M{}},
		{Type: models.SectionBlog, Order: 0, Content: bson.M{"limit": 3}},
	}
	if err := store.SetSections(ctx, page.ID, secs); err != nil {
		t.Fatalf("SetSections() error = %v", err)
	}

	got, err := store.GetByID(ctx, page.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	wantTypes := []string{models.SectionAbout, models.SectionMap, models.SectionBlog}
	if len(got.Sections) != len(wantTypes) {
		t.Fatalf("Sections count = %d, want %d", len(got.Sections), len(wantTypes))
	}
	for i, sec := range got.Sections {
		if sec.Type != wantTypes[i] {
			t.Errorf("Sections[%d].Type = %q, want %q", i, sec.Type, wantTypes[i])
		}
		if sec.Order != i {
			t.Errorf("Sections[%d].Order = %d, want %d", i, sec.Order, i)
		}
	}
}

func TestStore_SetSections_MissingPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.SetSections(ctx, primitive.NewObjectID(), nil)
	if err != mongo.ErrNoDocuments {
		t.Errorf("SetSections() for missing page error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{Slug: "privacy-policy", Title: "Privacy Policy"}
	if err := store.Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	page.Title = "Privacy Policy (2026)"
	page.IsPublished = true
	page.MetaDescription = "How we handle client data."
	if err := store.Update(ctx, page.ID, page); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, page.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "Privacy Policy (2026)" {
		t.Errorf("Title = %q, want updated title", got.Title)
	}
	if !got.IsPublished {
		t.Error("IsPublished should be true after update")
	}
	if got.MetaDescription != "How we handle client data." {
		t.Errorf("MetaDescription = %q", got.MetaDescription)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{Slug: "old-page", Title: "Old Page"}
	if err := store.Create(ctx, &page); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, page.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetByID(ctx, page.ID); err != mongo.ErrNoDocuments {
		t.Errorf("GetByID() after delete error = %v, want %v", err, mongo.ErrNoDocuments)
	}

	if err := store.Delete(ctx, page.ID); err != mongo.ErrNoDocuments {
		t.Errorf("Delete() of missing page error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_Upsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Seeding path: first call inserts, second updates in place.
	if err := store.Upsert(ctx, models.Page{Slug: models.PageSlugHome, Title: "Home", IsPublished: true}); err != nil {
		t.Fatalf("Upsert() insert error = %v", err)
	}
	if err := store.Upsert(ctx, models.Page{Slug: models.PageSlugHome, Title: "Welcome", IsPublished: true}); err != nil {
		t.Fatalf("Upsert() update error = %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}

	got, err := store.GetBySlug(ctx, models.PageSlugHome)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Title != "Welcome" {
		t.Errorf("Title = %q, want %q", got.Title, "Welcome")
	}
}
