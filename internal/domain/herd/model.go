package herd

import (
	"math"
	"strings"
)

// Gender normalizado. Unknown solo se usa para agrupar en pantalla;
// para buscar perfiles de peso todo lo que no es Female cuenta como Male.
type Gender string

const (
	GenderFemale  Gender = "female"
	GenderMale    Gender = "male"
	GenderUnknown Gender = "unknown"
)

// UnknownLabel es la etiqueta de grupo para género/raza/tipo vacíos.
const UnknownLabel = "Unknown"

// Animal es un bovino tal como llega del backend (snapshot de solo lectura).
type Animal struct {
	ID     int
	Name   string
	Breed  string // texto libre, p.ej. "Holstein Friesian"
	Gender string // texto libre: "Female", "Hembra", "male"...

	BirthDate string   // YYYY-MM-DD u otro layout; puede venir vacío o mal formado
	Weight    *float64 // kg; nil o <= 0 significa "desconocido"

	StableID int
}

// Vaccine es un registro de vacunación. Para analytics solo importa Type.
type Vaccine struct {
	ID       int
	Name     string
	Type     string
	Date     string
	AnimalID int
}

// Stable es un establo; solo se usa para etiquetar conteos por establo.
type Stable struct {
	ID    int
	Name  string
	Limit int
}

// Snapshot agrupa las tres colecciones leídas en una misma pasada.
type Snapshot struct {
	Animals  []Animal
	Vaccines []Vaccine
	Stables  []Stable
}

// NormalizeGender mapea el texto libre a Female/Male/Unknown (case-insensitive).
func NormalizeGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "female", "hembra", "f", "h":
		return GenderFemale
	case "male", "macho", "m":
		return GenderMale
	default:
		return GenderUnknown
	}
}

// IsFemale indica si el animal cuenta como hembra.
func (a Animal) IsFemale() bool {
	return NormalizeGender(a.Gender) == GenderFemale
}

// RecordedWeight devuelve el peso registrado si es válido: finito y > 0.
// Postgres admite 'NaN' e 'Infinity' en double precision; esos valores se estiman.
func (a Animal) RecordedWeight() (float64, bool) {
	if a.Weight == nil {
		return 0, false
	}
	w := *a.Weight
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return 0, false
	}
	return w, true
}

// GenderLabel devuelve el género tal cual (sin normalizar) o "Unknown" si viene vacío.
func (a Animal) GenderLabel() string {
	return labelOrUnknown(a.Gender)
}

// BreedLabel devuelve la raza tal cual o "Unknown" si viene vacía.
func (a Animal) BreedLabel() string {
	return labelOrUnknown(a.Breed)
}

// TypeLabel devuelve el tipo de vacuna o "Unknown".
func (v Vaccine) TypeLabel() string {
	return labelOrUnknown(v.Type)
}

func labelOrUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownLabel
	}
	return s
}
