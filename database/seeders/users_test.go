package seeders_test

import (
	"testing"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/database/seeders"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
)

func TestSeedUsersProvisionsAdminAndDemo(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := seeders.SeedUsers(st); err != nil {
		t.Fatalf("seed: %v", err)
	}

	users := repositories.NewUserRepository(st)
	admin, found, err := users.FindByEmail(config.AdminEmail())
	if err != nil || !found {
		t.Fatalf("admin missing after seed: found=%v err=%v", found, err)
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("admin role = %q", admin.Role)
	}
	if admin.Password == "" || admin.Password == config.AdminPassword() {
		t.Error("admin password must be stored hashed")
	}

	all, err := users.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected admin + demo user, got %d records", len(all))
	}
}

func TestSeedUsersIsIdempotent(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := seeders.SeedUsers(st); err != nil {
		t.Fatal(err)
	}
	if err := seeders.SeedUsers(st); err != nil {
		t.Fatal(err)
	}

	users := repositories.NewUserRepository(st)
	all, err := users.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("second seed duplicated records: %d users", len(all))
	}
}
