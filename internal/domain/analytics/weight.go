package analytics

import (
	"math"
	"time"

	"herd-analytics/internal/domain/herd"

	"github.com/shopspring/decimal"
)

// Assessment es la vista derivada de un animal para una pasada de cálculo.
type Assessment struct {
	Animal    herd.Animal
	AgeYears  float64
	Weight    float64 // peso efectivo (kg), siempre > 0
	Estimated bool    // true si Weight sale de la heurística

	MilkPerDay float64 // L/día; 0 salvo hembras en edad de lactancia
}

// Estimator calcula pesos efectivos a partir de las tablas de Config.
// No guarda estado: dos llamadas con el mismo input devuelven lo mismo.
type Estimator struct {
	cfg Config
}

func NewEstimator(cfg Config) Estimator {
	return Estimator{cfg: cfg}
}

// Assess calcula edad y peso efectivo de un animal respecto de now.
func (e Estimator) Assess(a herd.Animal, now time.Time) Assessment {
	age := AgeInYears(a.BirthDate, now)
	out := Assessment{
		Animal:     a,
		AgeYears:   age,
		MilkPerDay: DailyMilk(a, age, e.cfg),
	}
	if w, ok := a.RecordedWeight(); ok {
		out.Weight = w
		return out
	}
	out.Weight = e.estimate(a, age)
	out.Estimated = true
	return out
}

// AssessAll aplica Assess a todo el hato, respetando el orden de entrada.
func (e Estimator) AssessAll(animals []herd.Animal, now time.Time) []Assessment {
	out := make([]Assessment, 0, len(animals))
	for _, a := range animals {
		out = append(out, e.Assess(a, now))
	}
	return out
}

// EffectiveWeight: peso real si existe y es > 0, si no la estimación.
func (e Estimator) EffectiveWeight(a herd.Animal, now time.Time) float64 {
	return e.Assess(a, now).Weight
}

// estimate = round(base × factorEdad × variación).
// Se opera en decimal: el factor de la curva puede venir del YAML con cualquier
// cantidad de decimales y el resultado no depende del redondeo binario.
func (e Estimator) estimate(a herd.Animal, age float64) float64 {
	profile := e.cfg.BreedProfileFor(a.Breed)
	base := profile.MaleKg
	if a.IsFemale() {
		base = profile.FemaleKg
	}

	factor := e.cfg.AgeCurve.FactorFor(age)
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		factor = 0
	}

	w := decimal.NewFromInt(int64(base)).
		Mul(decimal.NewFromFloat(factor)).
		Mul(decimal.NewFromInt(VariationPercent(a.ID))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
	if w < 1 {
		w = 1
	}
	return float64(w)
}

// VariationPercent es la variación determinística por id, en [90, 110).
// 90 + (id mod 20); ids negativos usan el módulo positivo.
func VariationPercent(id int) int64 {
	m := id % 20
	if m < 0 {
		m += 20
	}
	return int64(90 + m)
}

// VariationFactor es VariationPercent expresado como factor (0.90..1.09).
func VariationFactor(id int) float64 {
	return float64(VariationPercent(id)) / 100
}
