package herd

import "context"

// Repository es la fuente de datos del hato (API remota, DB o memoria).
// Es de solo lectura: analytics nunca crea ni modifica registros.
type Repository interface {
	ListAnimals(ctx context.Context) ([]Animal, error)
	ListVaccines(ctx context.Context) ([]Vaccine, error)
	ListStables(ctx context.Context) ([]Stable, error)
}
