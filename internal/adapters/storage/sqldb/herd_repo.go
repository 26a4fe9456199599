package sqldb

import (
	"context"
	"database/sql"

	"herd-analytics/internal/domain/herd"
)

// HerdRepo lee el hato con SQL portable (sirve igual sobre pgx y sqlite).
// Tablas: bovines, vaccines, stables. Columnas nulas => valores vacíos.
type HerdRepo struct {
	db *sql.DB
}

func NewHerdRepo(db *sql.DB) *HerdRepo {
	return &HerdRepo{db: db}
}

func (r *HerdRepo) ListAnimals(ctx context.Context) ([]herd.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, breed, gender, birth_date, weight, stable_id
		FROM bovines
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]herd.Animal, 0)
	for rows.Next() {
		var (
			a                         herd.Animal
			name, breed, gender, bday sql.NullString
			weight                    sql.NullFloat64
			stableID                  sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &name, &breed, &gender, &bday, &weight, &stableID); err != nil {
			return nil, err
		}

		a.Name = name.String
		a.Breed = breed.String
		a.Gender = gender.String
		a.BirthDate = bday.String
		a.StableID = int(stableID.Int64)
		if weight.Valid {
			w := weight.Float64
			a.Weight = &w
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *HerdRepo) ListVaccines(ctx context.Context) ([]herd.Vaccine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, vaccine_type, vaccine_date, bovine_id
		FROM vaccines
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]herd.Vaccine, 0)
	for rows.Next() {
		var (
			v                 herd.Vaccine
			name, vtype, date sql.NullString
			bovineID          sql.NullInt64
		)
		if err := rows.Scan(&v.ID, &name, &vtype, &date, &bovineID); err != nil {
			return nil, err
		}

		v.Name = name.String
		v.Type = vtype.String
		v.Date = date.String
		v.AnimalID = int(bovineID.Int64)

		out = append(out, v)
	}

	return out, rows.Err()
}

func (r *HerdRepo) ListStables(ctx context.Context) ([]herd.Stable, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, "limit"
		FROM stables
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]herd.Stable, 0)
	for rows.Next() {
		var (
			s     herd.Stable
			name  sql.NullString
			limit sql.NullInt64
		)
		if err := rows.Scan(&s.ID, &name, &limit); err != nil {
			return nil, err
		}
		s.Name = name.String
		s.Limit = int(limit.Int64)

		out = append(out, s)
	}

	return out, rows.Err()
}
