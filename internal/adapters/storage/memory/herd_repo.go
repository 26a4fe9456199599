package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"herd-analytics/internal/domain/herd"
)

// HerdRepo es un herd.Repository en memoria (dev, tests, snapshots en archivo).
// Devuelve copias: quien lee no puede modificar el estado interno.
type HerdRepo struct {
	mu   sync.RWMutex
	snap herd.Snapshot
}

func NewHerdRepo() *HerdRepo {
	return &HerdRepo{}
}

// NewHerdRepoFrom arranca con un snapshot ya armado.
func NewHerdRepoFrom(s herd.Snapshot) *HerdRepo {
	r := NewHerdRepo()
	r.Replace(s)
	return r
}

// Replace reemplaza el snapshot completo de forma atómica.
func (r *HerdRepo) Replace(s herd.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snap = herd.Snapshot{
		Animals:  cloneAnimals(s.Animals),
		Vaccines: append([]herd.Vaccine(nil), s.Vaccines...),
		Stables:  append([]herd.Stable(nil), s.Stables...),
	}
}

func (r *HerdRepo) ListAnimals(ctx context.Context) ([]herd.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAnimals(r.snap.Animals), nil
}

func (r *HerdRepo) ListVaccines(ctx context.Context) ([]herd.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]herd.Vaccine, 0, len(r.snap.Vaccines)), r.snap.Vaccines...), nil
}

func (r *HerdRepo) ListStables(ctx context.Context) ([]herd.Stable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]herd.Stable, 0, len(r.snap.Stables)), r.snap.Stables...), nil
}

// cloneAnimals copia también el puntero de peso.
func cloneAnimals(in []herd.Animal) []herd.Animal {
	out := make([]herd.Animal, 0, len(in))
	for _, a := range in {
		if a.Weight != nil {
			w := *a.Weight
			a.Weight = &w
		}
		out = append(out, a)
	}
	return out
}

// Formato del archivo de snapshot: mismo shape que devuelve la API (camelCase).
type snapshotFile struct {
	Animals []struct {
		ID        int      `json:"id"`
		Name      string   `json:"name"`
		Breed     string   `json:"breed"`
		Gender    string   `json:"gender"`
		BirthDate string   `json:"birthDate"`
		Weight    *float64 `json:"weight"`
		StableID  int      `json:"stableId"`
	} `json:"animals"`
	Vaccines []struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		VaccineType string `json:"vaccineType"`
		VaccineDate string `json:"vaccineDate"`
		BovineID    int    `json:"bovineId"`
	} `json:"vaccines"`
	Stables []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Limit int    `json:"limit"`
	} `json:"stables"`
}

// ParseSnapshot decodifica un snapshot JSON {animals, vaccines, stables}.
func ParseSnapshot(data []byte) (herd.Snapshot, error) {
	var f snapshotFile
	if err := json.Unmarshal(data, &f); err != nil {
		return herd.Snapshot{}, fmt.Errorf("invalid snapshot json: %w", err)
	}

	s := herd.Snapshot{
		Animals:  make([]herd.Animal, 0, len(f.Animals)),
		Vaccines: make([]herd.Vaccine, 0, len(f.Vaccines)),
		Stables:  make([]herd.Stable, 0, len(f.Stables)),
	}
	for _, a := range f.Animals {
		s.Animals = append(s.Animals, herd.Animal{
			ID:        a.ID,
			Name:      a.Name,
			Breed:     a.Breed,
			Gender:    a.Gender,
			BirthDate: a.BirthDate,
			Weight:    a.Weight,
			StableID:  a.StableID,
		})
	}
	for _, v := range f.Vaccines {
		s.Vaccines = append(s.Vaccines, herd.Vaccine{
			ID:       v.ID,
			Name:     v.Name,
			Type:     v.VaccineType,
			Date:     v.VaccineDate,
			AnimalID: v.BovineID,
		})
	}
	for _, st := range f.Stables {
		s.Stables = append(s.Stables, herd.Stable{ID: st.ID, Name: st.Name, Limit: st.Limit})
	}
	return s, nil
}

// LoadSnapshotFile arma un HerdRepo desde un archivo JSON.
func LoadSnapshotFile(path string) (*HerdRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	s, err := ParseSnapshot(data)
	if err != nil {
		return nil, err
	}
	return NewHerdRepoFrom(s), nil
}
