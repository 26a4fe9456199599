package sqldb_test

import (
	"context"
	"path/filepath"
	"testing"

	"herd-analytics/internal/adapters/storage/sqldb"
	"herd-analytics/internal/adapters/storage/sqlite"
)

func TestHerdRepo_SQLite(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "herd.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	seed := []string{
		`INSERT INTO stables (id, name, "limit") VALUES (1, 'Norte', 30), (2, 'Sur', 10)`,
		`INSERT INTO bovines (id, name, breed, gender, birth_date, weight, stable_id) VALUES
			(2, 'Toro', 'Angus', 'Male', '2019-05-01', 700.5, 1),
			(1, 'Aurora', 'Holstein', 'Female', '2020-01-01', NULL, 2),
			(3, NULL, NULL, NULL, NULL, NULL, NULL)`,
		`INSERT INTO vaccines (id, name, vaccine_type, vaccine_date, bovine_id) VALUES
			(1, 'Aftosa', 'Aftosa', '2024-01-01', 1),
			(2, 'Rabia', NULL, NULL, NULL)`,
	}
	for _, q := range seed {
		if _, err := db.ExecContext(ctx, q); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	repo := sqldb.NewHerdRepo(db)

	animals, err := repo.ListAnimals(ctx)
	if err != nil {
		t.Fatalf("ListAnimals error: %v", err)
	}
	if len(animals) != 3 {
		t.Fatalf("expected 3 animals, got %d", len(animals))
	}
	if animals[0].ID != 1 || animals[0].Weight != nil || animals[0].StableID != 2 {
		t.Fatalf("expected ordering by id and NULL weight, got %#v", animals[0])
	}
	if animals[1].Weight == nil || *animals[1].Weight != 700.5 {
		t.Fatalf("expected weight 700.5, got %#v", animals[1].Weight)
	}
	if animals[2].Breed != "" || animals[2].Gender != "" || animals[2].StableID != 0 {
		t.Fatalf("expected NULL columns as zero values, got %#v", animals[2])
	}

	vaccines, err := repo.ListVaccines(ctx)
	if err != nil {
		t.Fatalf("ListVaccines error: %v", err)
	}
	if len(vaccines) != 2 || vaccines[0].Type != "Aftosa" || vaccines[1].Type != "" {
		t.Fatalf("unexpected vaccines: %#v", vaccines)
	}

	stables, err := repo.ListStables(ctx)
	if err != nil {
		t.Fatalf("ListStables error: %v", err)
	}
	if len(stables) != 2 || stables[0].Name != "Norte" || stables[0].Limit != 30 {
		t.Fatalf("unexpected stables: %#v", stables)
	}
}
