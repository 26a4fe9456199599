package analytics

import (
	"strings"
	"time"
)

const daysPerYear = 365.25

// Layouts aceptados para birthDate. El backend a veces devuelve timestamps sin zona.
var birthDateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseBirthDate intenta los layouts conocidos; ok=false si viene vacío o mal formado.
func ParseBirthDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AgeInYears = (now - birthDate) / 365.25 días.
// Fecha vacía, inválida o futura => 0 (no es error).
func AgeInYears(birthDate string, now time.Time) float64 {
	bd, ok := ParseBirthDate(birthDate)
	if !ok {
		return 0
	}
	d := now.Sub(bd)
	if d <= 0 {
		return 0
	}
	return d.Hours() / 24 / daysPerYear
}
