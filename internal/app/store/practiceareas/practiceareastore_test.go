package practiceareastore

import (
	"testing"

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

	pa := models.PracticeArea{
		Slug:             "company-law-nclt-nclat",
		Title:            "Company Law (NCLT / NCLAT)",
		ShortDescription: "Corporate disputes and tribunal practice.",
		ShowOnHome:       true,
	}
	if err := store.Create(ctx, &pa); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if pa.ID.IsZero() {
		t.Error("Create() should assign an id")
	}

	got, err := store.GetBySlug(ctx, "company-law-nclt-nclat")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Title != pa.Title {
		t.Errorf("Title = %q, want %q", got.Title, pa.Title)
	}
}

func TestStore_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.PracticeArea{Slug: "arbitration", Title: "Arbitration"}
	if err := store.Create(ctx, &first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := models.PracticeArea{Slug: "arbitration", Title: "Arbitration and Mediation"}
	err := store.Create(ctx, &second)
	if err == nil {
		t.Fatal("Create() with duplicate slug should fail")
	}
	if !storeutil.IsDuplicateKey(err) {
		t.Errorf("Create() duplicate slug error = %v, want duplicate key", err)
	}
}

func TestStore_GetHome_FiltersAndOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	areas := []models.PracticeArea{
		{Slug: "litigation", Title: "Litigation", ShowOnHome: true, Order: 2},
		{Slug: "tax", Title: "Tax", ShowOnHome: false, Order: 0},
		{Slug: "real-estate", Title: "Real Estate", ShowOnHome: true, Order: 1},
	}
	for i := range areas {
		if err := store.Create(ctx, &areas[i]); err != nil {
			t.Fatalf("Create(%s) error = %v", areas[i].Slug, err)
		}
	}

	home, err := store.GetHome(ctx)
	if err != nil {
		t.Fatalf("GetHome() error = %v", err)
	}
	if len(home) != 2 {
		t.Fatalf("GetHome() count = %d, want 2", len(home))
	}
	if home[0].Slug != "real-estate" || home[1].Slug != "litigation" {
		t.Errorf("GetHome() order = [%s, %s], want [real-estate, litigation]", home[0].Slug, home[1].Slug)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pa := models.PracticeArea{Slug: "banking", Title: "Banking"}
	if err := store.Create(ctx, &pa); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	pa.Title = "Banking and Finance"
	pa.ShortDescription = "Lending, recovery and regulatory work."
	if err := store.Update(ctx, pa.ID, pa); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.GetByID(ctx, pa.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "Banking and Finance" {
		t.Errorf("Title = %q, want updated title", got.Title)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pa := models.PracticeArea{Slug: "ipr", Title: "Intellectual Property"}
	if err := store.Create(ctx, &pa); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, pa.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetByID(ctx, pa.ID); err != mongo.ErrNoDocuments {
		t.Errorf("GetByID() after delete error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}
