package analytics

import (
	"fmt"
	"math"
	"sort"

	"herd-analytics/internal/domain/herd"
)

type BreedStat struct {
	Breed         string
	AverageWeight int64
	Count         int
	Share         float64 // Count / tamaño del hato
}

type GenderStat struct {
	Gender string
	Count  int
}

type AgeBucketStat struct {
	AgeGroup string
	Count    int
}

type StableStat struct {
	StableID int
	Stable   string
	Count    int
}

type VaccineStat struct {
	Type  string
	Count int
}

// Buckets fijos de edad (años).
const (
	AgeGroupCalf     = "0–1"
	AgeGroupYearling = "1–2"
	AgeGroupAdult    = "2–5"
	AgeGroupSenior   = "5+"
)

// BreedDistribution agrupa por raza (texto crudo) con peso promedio redondeado.
// El orden de salida es el de primera aparición.
func BreedDistribution(items []Assessment) []BreedStat {
	order, groups := groupBy(items, func(a Assessment) string { return a.Animal.BreedLabel() })

	out := make([]BreedStat, 0, len(order))
	for _, breed := range order {
		g := groups[breed]
		var total float64
		for _, a := range g {
			total += a.Weight
		}
		out = append(out, BreedStat{
			Breed:         breed,
			AverageWeight: int64(math.Round(total / float64(len(g)))),
			Count:         len(g),
			Share:         float64(len(g)) / float64(len(items)),
		})
	}
	return out
}

// GenderDistribution cuenta por etiqueta de género sin normalizar; vacío => "Unknown".
func GenderDistribution(items []Assessment) []GenderStat {
	order, groups := groupBy(items, func(a Assessment) string { return a.Animal.GenderLabel() })

	out := make([]GenderStat, 0, len(order))
	for _, g := range order {
		out = append(out, GenderStat{Gender: g, Count: len(groups[g])})
	}
	return out
}

// AgeDistribution devuelve siempre los cuatro buckets en orden (hato vacío => nada).
func AgeDistribution(items []Assessment) []AgeBucketStat {
	if len(items) == 0 {
		return []AgeBucketStat{}
	}

	out := []AgeBucketStat{
		{AgeGroup: AgeGroupCalf},
		{AgeGroup: AgeGroupYearling},
		{AgeGroup: AgeGroupAdult},
		{AgeGroup: AgeGroupSenior},
	}
	for _, a := range items {
		out[ageBucket(a.AgeYears)].Count++
	}
	return out
}

func ageBucket(age float64) int {
	switch {
	case age < 1:
		return 0
	case age < 2:
		return 1
	case age < 5:
		return 2
	default:
		return 3
	}
}

// StableDistribution cuenta animales por establo, resuelve el nombre y devuelve el top n.
func StableDistribution(items []Assessment, stables []herd.Stable, n int) []StableStat {
	names := make(map[int]string, len(stables))
	for _, s := range stables {
		if _, ok := names[s.ID]; !ok && s.Name != "" {
			names[s.ID] = s.Name
		}
	}

	order, groups := groupBy(items, func(a Assessment) string { return fmt.Sprint(a.Animal.StableID) })

	out := make([]StableStat, 0, len(order))
	for _, key := range order {
		g := groups[key]
		id := g[0].Animal.StableID
		label, ok := names[id]
		if !ok {
			label = fmt.Sprintf("Stable %d", id)
		}
		out = append(out, StableStat{StableID: id, Stable: label, Count: len(g)})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return truncate(out, n)
}

// VaccineDistribution cuenta vacunas por tipo y devuelve el top n.
func VaccineDistribution(vaccines []herd.Vaccine, n int) []VaccineStat {
	order, groups := groupBy(vaccines, func(v herd.Vaccine) string { return v.TypeLabel() })

	out := make([]VaccineStat, 0, len(order))
	for _, t := range order {
		out = append(out, VaccineStat{Type: t, Count: len(groups[t])})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return truncate(out, n)
}

// groupBy agrupa preservando el orden de primera aparición de cada clave.
func groupBy[T any](items []T, key func(T) string) ([]string, map[string][]T) {
	order := make([]string, 0)
	groups := make(map[string][]T)
	for _, it := range items {
		k := key(it)
		if _, exists := groups[k]; !exists {
			order = append(order, k)
		}
		groups[k] = append(groups[k], it)
	}
	return order, groups
}

func truncate[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
