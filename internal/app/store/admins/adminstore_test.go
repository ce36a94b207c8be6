package adminstore

import (
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lexsite/lexsite/internal/app/store/storeutil"
	"github.com/lexsite/lexsite/internal/domain/models"
	"github.com/lexsite/lexsite/internal/testutil"
)

func TestStore_Create_NormalizesEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := models.Admin{
		Name:         "Priya Nair",
		Email:        "  Priya@Example.COM ",
		PasswordHash: "$2a$10$fakehashforstoretestonly",
	}
	if err := store.Create(ctx, &admin); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if admin.Email != "priya@example.com" {
		t.Errorf("Email = %q, want lowercased trimmed", admin.Email)
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("Role = %q, want %q", admin.Role, models.RoleAdmin)
	}
	if admin.Status != models.StatusActive {
		t.Errorf("Status = %q, want %q", admin.Status, models.StatusActive)
	}

	// Lookup matches regardless of case.
	got, err := store.GetByEmail(ctx, "PRIYA@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != admin.ID {
		t.Error("GetByEmail() returned a different admin")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.Admin{Name: "A", Email: "shared@example.com", PasswordHash: "x"}
	if err := store.Create(ctx, &first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := models.Admin{Name: "B", Email: "Shared@Example.com", PasswordHash: "y"}
	err := store.Create(ctx, &second)
	if err == nil {
		t.Fatal("Create() with duplicate email should fail")
	}
	if !storeutil.IsDuplicateKey(err) {
		t.Errorf("Create() duplicate email error = %v, want duplicate key", err)
	}
}

func TestStore_GetByEmail_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByEmail(ctx, "nobody@example.com"); err != mongo.ErrNoDocuments {
		t.Errorf("GetByEmail() error = %v, want %v", err, mongo.ErrNoDocuments)
	}
}

func TestStore_TouchLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := models.Admin{Name: "C", Email: "c@example.com", PasswordHash: "x"}
	if err := store.Create(ctx, &admin); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.TouchLogin(ctx, admin.ID); err != nil {
		t.Fatalf("TouchLogin() error = %v", err)
	}

	got, err := store.GetByID(ctx, admin.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.LastLoginAt == nil {
		t.Error("LastLoginAt should be set after TouchLogin")
	}
}
