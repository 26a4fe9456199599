package analytics

import "time"

// ReportResponse es el JSON que consume la capa de presentación (charts/tablas).
type ReportResponse struct {
	SnapshotID    string    `json:"snapshot_id,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
	DataAvailable bool      `json:"data_available"`
	Mode          Mode      `json:"mode"`

	MeatTotal      float64 `json:"meat_total"`
	MilkProduction int64   `json:"milk_production"`
	AverageWeight  int64   `json:"average_weight"`
	EstimatedValue int64   `json:"estimated_value"`
	HerdSize       int     `json:"herd_size"`

	BreedDistribution   []breedResponse   `json:"breed_distribution"`
	GenderDistribution  []genderResponse  `json:"gender_distribution"`
	AgeDistribution     []ageResponse     `json:"age_distribution"`
	StableDistribution  []stableResponse  `json:"stable_distribution"`
	VaccineDistribution []vaccineResponse `json:"vaccine_distribution"`
	TopHeaviest         []AnimalResponse  `json:"top_heaviest"`
}

type breedResponse struct {
	Breed         string  `json:"breed"`
	AverageWeight int64   `json:"average_weight"`
	Count         int     `json:"count"`
	Share         float64 `json:"share"`
}

type genderResponse struct {
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

type ageResponse struct {
	AgeGroup string `json:"age_group"`
	Count    int    `json:"count"`
}

type stableResponse struct {
	StableID int    `json:"stable_id"`
	Stable   string `json:"stable"`
	Count    int    `json:"count"`
}

type vaccineResponse struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// AnimalResponse es un animal con su peso efectivo.
type AnimalResponse struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Breed           string   `json:"breed"`
	Gender          string   `json:"gender"`
	BirthDate       string   `json:"birth_date,omitempty"`
	RecordedWeight  *float64 `json:"recorded_weight,omitempty"`
	StableID        int      `json:"stable_id"`
	AgeYears        float64  `json:"age_years"`
	EffectiveWeight float64  `json:"effective_weight"`
	Estimated       bool     `json:"estimated"`
	MilkPerDay      float64  `json:"milk_per_day"`
}

func ToReportResponse(r Report) ReportResponse {
	out := ReportResponse{
		SnapshotID:    r.SnapshotID,
		GeneratedAt:   r.GeneratedAt,
		DataAvailable: r.DataAvailable,
		Mode:          r.Mode,

		MeatTotal:      r.Production.MeatTotal,
		MilkProduction: r.Production.MilkProduction,
		AverageWeight:  r.Production.AverageWeight,
		EstimatedValue: r.Production.EstimatedValue,
		HerdSize:       r.Production.Count,

		// Slices no-nil: la UI espera [] y no null.
		BreedDistribution:   make([]breedResponse, 0, len(r.Breeds)),
		GenderDistribution:  make([]genderResponse, 0, len(r.Genders)),
		AgeDistribution:     make([]ageResponse, 0, len(r.Ages)),
		StableDistribution:  make([]stableResponse, 0, len(r.Stables)),
		VaccineDistribution: make([]vaccineResponse, 0, len(r.Vaccines)),
		TopHeaviest:         ToAnimalResponses(r.TopHeaviest),
	}

	for _, b := range r.Breeds {
		out.BreedDistribution = append(out.BreedDistribution, breedResponse(b))
	}
	for _, g := range r.Genders {
		out.GenderDistribution = append(out.GenderDistribution, genderResponse(g))
	}
	for _, a := range r.Ages {
		out.AgeDistribution = append(out.AgeDistribution, ageResponse(a))
	}
	for _, s := range r.Stables {
		out.StableDistribution = append(out.StableDistribution, stableResponse(s))
	}
	for _, v := range r.Vaccines {
		out.VaccineDistribution = append(out.VaccineDistribution, vaccineResponse(v))
	}
	return out
}

func ToAnimalResponses(items []Assessment) []AnimalResponse {
	out := make([]AnimalResponse, 0, len(items))
	for _, a := range items {
		var recorded *float64
		if w, ok := a.Animal.RecordedWeight(); ok {
			recorded = &w
		}
		out = append(out, AnimalResponse{
			ID:              a.Animal.ID,
			Name:            a.Animal.Name,
			Breed:           a.Animal.Breed,
			Gender:          a.Animal.Gender,
			BirthDate:       a.Animal.BirthDate,
			RecordedWeight:  recorded,
			StableID:        a.Animal.StableID,
			AgeYears:        a.AgeYears,
			EffectiveWeight: a.Weight,
			Estimated:       a.Estimated,
			MilkPerDay:      a.MilkPerDay,
		})
	}
	return out
}
