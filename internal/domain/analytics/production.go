package analytics

import (
	"errors"
	"math"
	"strings"

	"herd-analytics/internal/domain/herd"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMode = errors.New("invalid production mode")
)

// Mode es la escala temporal aplicada a métricas de flujo (leche).
type Mode string

const (
	ModeDaily   Mode = "daily"
	ModeMonthly Mode = "monthly"
	ModeYearly  Mode = "yearly"
)

// Modes lista los modos válidos en orden de presentación.
var Modes = []Mode{ModeDaily, ModeMonthly, ModeYearly}

// ParseMode: vacío => daily; cualquier otro valor desconocido => ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeDaily:
		return ModeDaily, nil
	case ModeMonthly:
		return ModeMonthly, nil
	case ModeYearly:
		return ModeYearly, nil
	default:
		return "", ErrInvalidMode
	}
}

// Multiplier: daily=1, monthly=30, yearly=365. Un modo inválido cuenta como daily.
func (m Mode) Multiplier() int {
	switch m {
	case ModeMonthly:
		return 30
	case ModeYearly:
		return 365
	default:
		return 1
	}
}

// Production son los KPIs escalares del hato.
type Production struct {
	MeatTotal      float64 // kg, suma de pesos efectivos
	MilkDaily      float64 // L/día antes de escalar
	MilkProduction int64   // L, escalado por modo
	AverageWeight  int64   // kg
	EstimatedValue int64   // moneda
	Count          int
}

// Aggregate recalcula todos los KPIs desde cero; no guarda nada entre llamadas.
func Aggregate(items []Assessment, mode Mode, cfg Config) Production {
	var p Production
	p.Count = len(items)

	for _, a := range items {
		p.MeatTotal += a.Weight
		p.MilkDaily += DailyMilk(a.Animal, a.AgeYears, cfg)
	}

	p.MilkProduction = int64(math.Round(p.MilkDaily * float64(mode.Multiplier())))
	if p.Count > 0 {
		p.AverageWeight = int64(math.Round(p.MeatTotal / float64(p.Count)))
	}
	p.EstimatedValue = EstimatedValue(p.MeatTotal, p.MilkProduction, cfg.Prices)
	return p
}

// DailyMilk son los L/día de una hembra con edad de lactancia; 0 en cualquier otro caso.
func DailyMilk(a herd.Animal, age float64, cfg Config) float64 {
	if !a.IsFemale() || age < cfg.LactationMinAge {
		return 0
	}
	return cfg.MilkPerDayFor(a.Breed)
}

// EstimatedValue = round(carne × precio/kg + leche × precio/L).
// Un total de carne no finito cuenta como 0.
func EstimatedValue(meatKg float64, milkLiters int64, prices Prices) int64 {
	if math.IsNaN(meatKg) || math.IsInf(meatKg, 0) {
		meatKg = 0
	}
	meat := decimal.NewFromFloat(meatKg).Mul(prices.MeatPerKg)
	milk := decimal.NewFromInt(milkLiters).Mul(prices.MilkPerLiter)
	return meat.Add(milk).Round(0).IntPart()
}
