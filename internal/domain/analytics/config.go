package analytics

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("invalid analytics config")
)

// BreedProfile: peso adulto base (kg) por género para una palabra clave de raza.
type BreedProfile struct {
	Keyword  string
	FemaleKg int
	MaleKg   int
}

// MilkProfile: litros diarios de una hembra en lactancia para una palabra clave de raza.
type MilkProfile struct {
	Keyword      string
	LitersPerDay float64
}

// AgeStep aplica Factor cuando la edad es < BelowYears.
type AgeStep struct {
	BelowYears float64
	Factor     float64
}

// AgeCurve es la curva de crecimiento: los steps se recorren en orden y gana
// el primero cuyo límite supera la edad; si ninguno aplica se usa Otherwise.
type AgeCurve struct {
	Steps     []AgeStep
	Otherwise float64
}

// Prices son parámetros de negocio (moneda por kg de carne / litro de leche).
type Prices struct {
	MeatPerKg    decimal.Decimal
	MilkPerLiter decimal.Decimal
}

// Config agrupa las tablas heurísticas del motor de producción.
// Se pasa por valor a Build/Estimator; nada de esto es estado global.
type Config struct {
	Breeds       []BreedProfile // orden = precedencia (gana el primer match)
	DefaultBreed BreedProfile

	Milk             []MilkProfile
	DefaultMilkLiter float64
	LactationMinAge  float64 // años

	AgeCurve AgeCurve
	Prices   Prices

	TopStables  int
	TopVaccines int
	TopHeaviest int
}

// DefaultConfig devuelve las tablas por defecto (copias nuevas en cada llamada).
func DefaultConfig() Config {
	return Config{
		Breeds: []BreedProfile{
			{Keyword: "holstein", FemaleKg: 650, MaleKg: 900},
			{Keyword: "angus", FemaleKg: 550, MaleKg: 850},
			{Keyword: "hereford", FemaleKg: 550, MaleKg: 800},
			{Keyword: "charolais", FemaleKg: 700, MaleKg: 1000},
			{Keyword: "simmental", FemaleKg: 650, MaleKg: 950},
			{Keyword: "limousin", FemaleKg: 600, MaleKg: 900},
			{Keyword: "brahman", FemaleKg: 500, MaleKg: 800},
			{Keyword: "nelore", FemaleKg: 450, MaleKg: 750},
			{Keyword: "brown swiss", FemaleKg: 600, MaleKg: 900},
			{Keyword: "pardo suizo", FemaleKg: 600, MaleKg: 900},
			{Keyword: "jersey", FemaleKg: 400, MaleKg: 600},
			{Keyword: "gyr", FemaleKg: 400, MaleKg: 650},
		},
		DefaultBreed: BreedProfile{Keyword: "default", FemaleKg: 450, MaleKg: 700},

		Milk: []MilkProfile{
			{Keyword: "holstein", LitersPerDay: 25},
			{Keyword: "brown swiss", LitersPerDay: 20},
			{Keyword: "pardo suizo", LitersPerDay: 20},
			{Keyword: "jersey", LitersPerDay: 18},
			{Keyword: "simmental", LitersPerDay: 15},
			{Keyword: "gyr", LitersPerDay: 12},
		},
		DefaultMilkLiter: 10,
		LactationMinAge:  2,

		AgeCurve: AgeCurve{
			Steps: []AgeStep{
				{BelowYears: 0.5, Factor: 0.15},
				{BelowYears: 1, Factor: 0.35},
				{BelowYears: 1.5, Factor: 0.55},
				{BelowYears: 2, Factor: 0.70},
				{BelowYears: 3, Factor: 0.85},
				{BelowYears: 5, Factor: 1.00},
				{BelowYears: 8, Factor: 1.05},
			},
			Otherwise: 0.95,
		},

		Prices: Prices{
			MeatPerKg:    decimal.RequireFromString("4.5"),
			MilkPerLiter: decimal.RequireFromString("0.35"),
		},

		TopStables:  5,
		TopVaccines: 5,
		TopHeaviest: 5,
	}
}

// BreedProfileFor busca el perfil por substring case-insensitive; gana el primer keyword que matchea.
func (c Config) BreedProfileFor(breed string) BreedProfile {
	b := strings.ToLower(breed)
	for _, p := range c.Breeds {
		if p.Keyword != "" && strings.Contains(b, strings.ToLower(p.Keyword)) {
			return p
		}
	}
	return c.DefaultBreed
}

// MilkPerDayFor usa la misma semántica de match que BreedProfileFor.
func (c Config) MilkPerDayFor(breed string) float64 {
	b := strings.ToLower(breed)
	for _, p := range c.Milk {
		if p.Keyword != "" && strings.Contains(b, strings.ToLower(p.Keyword)) {
			return p.LitersPerDay
		}
	}
	return c.DefaultMilkLiter
}

// FactorFor devuelve el factor de la curva para una edad en años.
func (c AgeCurve) FactorFor(age float64) float64 {
	for _, s := range c.Steps {
		if age < s.BelowYears {
			return s.Factor
		}
	}
	return c.Otherwise
}

// Validate revisa que las tablas sean utilizables (pesos > 0, curva creciente, etc).
func (c Config) Validate() error {
	if c.DefaultBreed.FemaleKg <= 0 || c.DefaultBreed.MaleKg <= 0 {
		return fmt.Errorf("%w: default breed weights must be > 0", ErrInvalidConfig)
	}
	for _, p := range c.Breeds {
		if strings.TrimSpace(p.Keyword) == "" {
			return fmt.Errorf("%w: breed keyword required", ErrInvalidConfig)
		}
		if p.FemaleKg <= 0 || p.MaleKg <= 0 {
			return fmt.Errorf("%w: breed %q weights must be > 0", ErrInvalidConfig, p.Keyword)
		}
	}
	for _, p := range c.Milk {
		if strings.TrimSpace(p.Keyword) == "" || !finite(p.LitersPerDay) || p.LitersPerDay < 0 {
			return fmt.Errorf("%w: milk profile %q", ErrInvalidConfig, p.Keyword)
		}
	}
	if !finite(c.DefaultMilkLiter) || !finite(c.LactationMinAge) || c.DefaultMilkLiter < 0 || c.LactationMinAge < 0 {
		return fmt.Errorf("%w: milk defaults must be >= 0", ErrInvalidConfig)
	}

	prev := math.Inf(-1)
	for _, s := range c.AgeCurve.Steps {
		if !finite(s.BelowYears) || s.BelowYears <= prev {
			return fmt.Errorf("%w: age curve breakpoints must increase", ErrInvalidConfig)
		}
		if !finite(s.Factor) || s.Factor <= 0 {
			return fmt.Errorf("%w: age factor must be > 0", ErrInvalidConfig)
		}
		prev = s.BelowYears
	}
	if !finite(c.AgeCurve.Otherwise) || c.AgeCurve.Otherwise <= 0 {
		return fmt.Errorf("%w: age factor must be > 0", ErrInvalidConfig)
	}

	if c.Prices.MeatPerKg.IsNegative() || c.Prices.MilkPerLiter.IsNegative() {
		return fmt.Errorf("%w: prices must be >= 0", ErrInvalidConfig)
	}
	if c.TopStables <= 0 || c.TopVaccines <= 0 || c.TopHeaviest <= 0 {
		return fmt.Errorf("%w: top sizes must be > 0", ErrInvalidConfig)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// fileConfig es el formato YAML de overrides. Secciones ausentes => defaults.
type fileConfig struct {
	Breeds []struct {
		Keyword  string `yaml:"keyword"`
		FemaleKg int    `yaml:"female_kg"`
		MaleKg   int    `yaml:"male_kg"`
	} `yaml:"breeds"`
	DefaultBreed *struct {
		FemaleKg int `yaml:"female_kg"`
		MaleKg   int `yaml:"male_kg"`
	} `yaml:"default_breed"`

	Milk []struct {
		Keyword      string  `yaml:"keyword"`
		LitersPerDay float64 `yaml:"liters_per_day"`
	} `yaml:"milk"`
	DefaultMilkLiters *float64 `yaml:"default_milk_liters"`
	LactationMinAge   *float64 `yaml:"lactation_min_age_years"`

	AgeCurve *struct {
		Steps []struct {
			BelowYears float64 `yaml:"below_years"`
			Factor     float64 `yaml:"factor"`
		} `yaml:"steps"`
		Otherwise float64 `yaml:"otherwise"`
	} `yaml:"age_curve"`

	Prices *struct {
		MeatPerKg    *float64 `yaml:"meat_per_kg"`
		MilkPerLiter *float64 `yaml:"milk_per_liter"`
	} `yaml:"prices"`

	Top *struct {
		Stables  int `yaml:"stables"`
		Vaccines int `yaml:"vaccines"`
		Heaviest int `yaml:"heaviest"`
	} `yaml:"top"`
}

// ParseConfig aplica un YAML de overrides sobre DefaultConfig.
// Una lista presente reemplaza la lista completa (no se mezclan keywords).
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if len(fc.Breeds) > 0 {
		cfg.Breeds = make([]BreedProfile, 0, len(fc.Breeds))
		for _, b := range fc.Breeds {
			cfg.Breeds = append(cfg.Breeds, BreedProfile{
				Keyword:  strings.TrimSpace(b.Keyword),
				FemaleKg: b.FemaleKg,
				MaleKg:   b.MaleKg,
			})
		}
	}
	if fc.DefaultBreed != nil {
		cfg.DefaultBreed.FemaleKg = fc.DefaultBreed.FemaleKg
		cfg.DefaultBreed.MaleKg = fc.DefaultBreed.MaleKg
	}

	if len(fc.Milk) > 0 {
		cfg.Milk = make([]MilkProfile, 0, len(fc.Milk))
		for _, m := range fc.Milk {
			cfg.Milk = append(cfg.Milk, MilkProfile{
				Keyword:      strings.TrimSpace(m.Keyword),
				LitersPerDay: m.LitersPerDay,
			})
		}
	}
	if fc.DefaultMilkLiters != nil {
		cfg.DefaultMilkLiter = *fc.DefaultMilkLiters
	}
	if fc.LactationMinAge != nil {
		cfg.LactationMinAge = *fc.LactationMinAge
	}

	if fc.AgeCurve != nil {
		steps := make([]AgeStep, 0, len(fc.AgeCurve.Steps))
		for _, s := range fc.AgeCurve.Steps {
			steps = append(steps, AgeStep{BelowYears: s.BelowYears, Factor: s.Factor})
		}
		cfg.AgeCurve = AgeCurve{Steps: steps, Otherwise: fc.AgeCurve.Otherwise}
	}

	if fc.Prices != nil {
		for _, p := range []*float64{fc.Prices.MeatPerKg, fc.Prices.MilkPerLiter} {
			if p != nil && !finite(*p) {
				return Config{}, fmt.Errorf("%w: prices must be finite", ErrInvalidConfig)
			}
		}
		if fc.Prices.MeatPerKg != nil {
			cfg.Prices.MeatPerKg = decimal.NewFromFloat(*fc.Prices.MeatPerKg)
		}
		if fc.Prices.MilkPerLiter != nil {
			cfg.Prices.MilkPerLiter = decimal.NewFromFloat(*fc.Prices.MilkPerLiter)
		}
	}

	if fc.Top != nil {
		if fc.Top.Stables != 0 {
			cfg.TopStables = fc.Top.Stables
		}
		if fc.Top.Vaccines != 0 {
			cfg.TopVaccines = fc.Top.Vaccines
		}
		if fc.Top.Heaviest != 0 {
			cfg.TopHeaviest = fc.Top.Heaviest
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig lee el YAML de overrides. path vacío => DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read heuristics file: %w", err)
	}
	return ParseConfig(data)
}
