package analytics

import (
	"time"

	"herd-analytics/internal/domain/herd"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// bornAgo devuelve una fecha de nacimiento RFC3339 con la edad pedida respecto de testNow.
func bornAgo(years float64) string {
	d := time.Duration(years * daysPerYear * 24 * float64(time.Hour))
	return testNow.Add(-d).Format(time.RFC3339Nano)
}

func kg(v float64) *float64 { return &v }

func assessed(a herd.Animal) Assessment {
	return NewEstimator(DefaultConfig()).Assess(a, testNow)
}
