package gallerystore

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lexsite/lexsite/internal/domain/models"
	"github.com/lexsite/lexsite/internal/testutil"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	item := models.GalleryItem{
		Title:     "Chambers Inauguration",
		Caption:   "Opening of the new Delhi office",
		ImagePath: "gallery/inauguration.jpg",
		ImageName: "inauguration.jpg",
	}
	if err := store.Create(ctx, &item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if item.ID.IsZero() {
		t.Error("Create() should assign an id")
	}

	got, err := store.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ImagePath != "gallery/inauguration.jpg" {
		t.Errorf("ImagePath = %q", got.ImagePath)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	item := models.GalleryItem{ImagePath: "gallery/one.jpg"}
	if err := store.Create(ctx, &item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, item.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetByID(ctx, item.ID); err != mongo.ErrNoDocuments {
		t.Errorf("GetByID() after delete error = %v, want %v", err, mongo.ErrNoDocuments)
	}
	if err := store.Delete(ctx, item.ID); err != mongo.ErrNoDocuments {
		t.Errorf("Delete() of missing item error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_GetAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, path := range []string{"gallery/a.jpg", "gallery/b.jpg", "gallery/c.jpg"} {
		item := models.GalleryItem{ImagePath: path}
		if err := store.Create(ctx, &item); err != nil {
			t.Fatalf("Create(%s) error = %v", path, err)
		}
	}

	items, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(items) != 3 {
		t.Errorf("GetAll() count = %d, want 3", len(items))
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestStore_GetVisible(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, item := range []models.GalleryItem{
		{ImagePath: "gallery/public.jpg", ShowInGallery: true},
		{ImagePath: "gallery/hidden.jpg", ShowInGallery: false},
	} {
		item := item
		if err := store.Create(ctx, &item); err != nil {
			t.Fatalf("Create(%s) error = %v", item.ImagePath, err)
		}
	}

	items, err := store.GetVisible(ctx)
	if err != nil {
		t.Fatalf("GetVisible() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("GetVisible() count = %d, want 1", len(items))
	}
	if items[0].ImagePath != "gallery/public.jpg" {
		t.Errorf("ImagePath = %q", items[0].ImagePath)
	}
}

func TestStore_UpdatePersistsVisibilityAndCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	item := models.GalleryItem{ImagePath: "gallery/one.jpg", ShowInGallery: true}
	if err := store.Create(ctx, &item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	item.Category = "events"
	item.ShowInGallery = false
	if err := store.Update(ctx, item.ID, item); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Category != "events" {
		t.Errorf("Category = %q, want %q", got.Category, "events")
	}
	if got.ShowInGallery {
		t.Error("ShowInGallery should persist as false")
	}
}
