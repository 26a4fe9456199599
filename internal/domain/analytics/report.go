package analytics

import (
	"time"

	"herd-analytics/internal/domain/herd"
)

// Report es todo lo que consume la vista de analytics en una pasada.
type Report struct {
	SnapshotID    string
	GeneratedAt   time.Time
	DataAvailable bool

	Mode       Mode
	Production Production

	Breeds   []BreedStat
	Genders  []GenderStat
	Ages     []AgeBucketStat
	Stables  []StableStat
	Vaccines []VaccineStat

	TopHeaviest []Assessment
}

// Build es la pasada completa y pura sobre un snapshot: estima pesos,
// agrega KPIs y arma los datasets. No toca el snapshot.
func Build(s herd.Snapshot, mode Mode, cfg Config, now time.Time) Report {
	// Sin animales no hay hato: todo vacío, también vacunas.
	if len(s.Animals) == 0 {
		r := EmptyReport(mode)
		r.DataAvailable = true
		return r
	}

	items := NewEstimator(cfg).AssessAll(s.Animals, now)

	return Report{
		DataAvailable: true,
		Mode:          mode,
		Production:    Aggregate(items, mode, cfg),
		Breeds:        BreedDistribution(items),
		Genders:       GenderDistribution(items),
		Ages:          AgeDistribution(items),
		Stables:       StableDistribution(items, s.Stables, cfg.TopStables),
		Vaccines:      VaccineDistribution(s.Vaccines, cfg.TopVaccines),
		TopHeaviest:   TopHeaviest(items, cfg.TopHeaviest),
	}
}

// EmptyReport es el resultado bien definido cuando no hay datos del hato:
// KPIs en cero y datasets vacíos.
func EmptyReport(mode Mode) Report {
	return Report{
		DataAvailable: false,
		Mode:          mode,
		Breeds:        []BreedStat{},
		Genders:       []GenderStat{},
		Ages:          []AgeBucketStat{},
		Stables:       []StableStat{},
		Vaccines:      []VaccineStat{},
		TopHeaviest:   []Assessment{},
	}
}
