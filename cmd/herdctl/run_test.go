package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSnapshot = `{
  "animals": [
    {"id": 1, "name": "Lola", "breed": "Holstein", "gender": "Hembra", "birthDate": "2019-03-01", "weight": 400, "stableId": 1},
    {"id": 2, "name": "Toro", "breed": "Angus", "gender": "Macho", "birthDate": "2020-05-10", "weight": 350, "stableId": 1},
    {"id": 3, "name": "Negra", "breed": "Brahman", "gender": "Macho", "birthDate": "2018-01-20", "weight": 450, "stableId": 2}
  ],
  "vaccines": [{"id": 1, "name": "Aftosa A", "vaccineType": "Aftosa", "vaccineDate": "2024-01-01", "bovineId": 1}],
  "stables": [{"id": 1, "name": "Norte", "limit": 10}]
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "herd.json")
	if err := os.WriteFile(path, []byte(sampleSnapshot), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunReport_JSON(t *testing.T) {
	flags := &rootFlags{snapshot: writeSnapshot(t)}

	var out bytes.Buffer
	if err := runReport(context.Background(), &out, flags, "monthly", "json"); err != nil {
		t.Fatalf("runReport: %v", err)
	}

	var body struct {
		DataAvailable  bool    `json:"data_available"`
		Mode           string  `json:"mode"`
		MeatTotal      float64 `json:"meat_total"`
		MilkProduction int64   `json:"milk_production"`
		AverageWeight  int64   `json:"average_weight"`
		HerdSize       int     `json:"herd_size"`
	}
	if err := json.Unmarshal(out.Bytes(), &body); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out.String())
	}
	if !body.DataAvailable || body.Mode != "monthly" || body.HerdSize != 3 {
		t.Fatalf("unexpected header: %+v", body)
	}
	// una sola hembra holstein adulta: 25 L/día × 30
	if body.MeatTotal != 1200 || body.AverageWeight != 400 || body.MilkProduction != 750 {
		t.Fatalf("unexpected kpis: %+v", body)
	}
}

func TestRunReport_Text(t *testing.T) {
	flags := &rootFlags{snapshot: writeSnapshot(t)}

	var out bytes.Buffer
	if err := runReport(context.Background(), &out, flags, "", "text"); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	for _, want := range []string{"Mode", "daily", "Norte", "Stable 2", "Aftosa", "Negra"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRunReport_InvalidInput(t *testing.T) {
	flags := &rootFlags{snapshot: writeSnapshot(t)}

	if err := runReport(context.Background(), &bytes.Buffer{}, flags, "weekly", "json"); err == nil {
		t.Fatalf("expected invalid mode error")
	}
	if err := runReport(context.Background(), &bytes.Buffer{}, flags, "daily", "xml"); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestRunEstimate(t *testing.T) {
	flags := &rootFlags{snapshot: writeSnapshot(t)}

	var out bytes.Buffer
	if err := runEstimate(context.Background(), &out, flags); err != nil {
		t.Fatalf("runEstimate: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[1], "Lola") || !strings.Contains(lines[1], "recorded") || !strings.Contains(lines[1], "25 L") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if !strings.Contains(lines[0], "MILK/DAY") || !strings.Contains(lines[2], "0 L") {
		t.Fatalf("expected milk column:\n%s", out.String())
	}
}

func TestReportCmd_ModeHelpListsModes(t *testing.T) {
	f := reportCmd(&rootFlags{}).Flags().Lookup("mode")
	if f == nil {
		t.Fatalf("missing --mode flag")
	}
	if f.DefValue != "daily" || f.Usage != "production mode: daily | monthly | yearly" {
		t.Fatalf("unexpected flag: default=%q usage=%q", f.DefValue, f.Usage)
	}
}
