package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"herd-analytics/internal/domain/herd"
)

type fakeRepo struct {
	snap       herd.Snapshot
	animalsErr error
	vaccineErr error
}

func (f *fakeRepo) ListAnimals(ctx context.Context) ([]herd.Animal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.snap.Animals, f.animalsErr
}

func (f *fakeRepo) ListVaccines(ctx context.Context) ([]herd.Vaccine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.snap.Vaccines, f.vaccineErr
}

func (f *fakeRepo) ListStables(ctx context.Context) ([]herd.Stable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.snap.Stables, nil
}

func newTestService(repo herd.Repository) *Service {
	svc := NewService(repo, DefaultConfig(), nil)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestService_Report(t *testing.T) {
	repo := &fakeRepo{snap: herd.Snapshot{
		Animals: []herd.Animal{
			{ID: 1, Breed: "Holstein", Gender: "female", BirthDate: bornAgo(3), Weight: kg(400), StableID: 1},
			{ID: 2, Breed: "Holstein", Gender: "female", BirthDate: bornAgo(4), Weight: kg(350), StableID: 1},
			{ID: 3, Breed: "Angus", Gender: "male", BirthDate: bornAgo(2), Weight: kg(450), StableID: 2},
		},
		Vaccines: []herd.Vaccine{{ID: 1, Type: "Aftosa", AnimalID: 1}},
		Stables:  []herd.Stable{{ID: 1, Name: "Norte"}, {ID: 2, Name: "Sur"}},
	}}

	rep, err := newTestService(repo).Report(context.Background(), ModeMonthly)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !rep.DataAvailable || rep.SnapshotID == "" || !rep.GeneratedAt.Equal(testNow) {
		t.Fatalf("unexpected report header: %+v", rep)
	}
	if rep.Production.MeatTotal != 1200 || rep.Production.MilkProduction != 1500 {
		t.Fatalf("unexpected production: %+v", rep.Production)
	}
	if len(rep.Stables) != 2 || rep.Stables[0].Stable != "Norte" {
		t.Fatalf("unexpected stables: %+v", rep.Stables)
	}
	if len(rep.Vaccines) != 1 || len(rep.TopHeaviest) != 3 || rep.TopHeaviest[0].Animal.ID != 3 {
		t.Fatalf("unexpected datasets: %+v / %+v", rep.Vaccines, rep.TopHeaviest)
	}
}

func TestService_Report_EmptyHerdIgnoresVaccines(t *testing.T) {
	repo := &fakeRepo{snap: herd.Snapshot{
		Vaccines: []herd.Vaccine{{ID: 1, Type: "Aftosa"}},
	}}

	rep, err := newTestService(repo).Report(context.Background(), ModeDaily)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !rep.DataAvailable {
		t.Fatalf("an empty herd is still available data")
	}
	if rep.Production != (Production{}) || len(rep.Vaccines) != 0 || len(rep.Ages) != 0 {
		t.Fatalf("expected empty report, got %+v", rep)
	}
}

func TestService_Report_UpstreamFailureReturnsEmptyReport(t *testing.T) {
	repo := &fakeRepo{
		snap:       herd.Snapshot{Animals: []herd.Animal{{ID: 1, Weight: kg(100)}}},
		vaccineErr: errors.New("boom"),
	}

	rep, err := newTestService(repo).Report(context.Background(), ModeYearly)
	if err != nil {
		t.Fatalf("failure should degrade to empty report, got %v", err)
	}
	if rep.DataAvailable || rep.Mode != ModeYearly || rep.SnapshotID == "" {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Production.Count != 0 || rep.Breeds == nil || len(rep.Breeds) != 0 {
		t.Fatalf("expected empty non-nil datasets, got %+v", rep)
	}
}

func TestService_Report_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(&fakeRepo{}).Report(ctx, ModeDaily)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestService_Assessments(t *testing.T) {
	repo := &fakeRepo{snap: herd.Snapshot{Animals: []herd.Animal{
		{ID: 7, Breed: "Angus", Gender: "female", BirthDate: bornAgo(3.2)},
	}}}

	items, err := newTestService(repo).Assessments(context.Background())
	if err != nil {
		t.Fatalf("Assessments: %v", err)
	}
	if len(items) != 1 || items[0].Weight != 534 || !items[0].Estimated {
		t.Fatalf("unexpected assessments: %+v", items)
	}

	repo.animalsErr = errors.New("down")
	if _, err := newTestService(repo).Assessments(context.Background()); err == nil {
		t.Fatalf("expected source error to propagate")
	}
}

func TestService_DefaultMode(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	if svc.DefaultMode() != ModeDaily {
		t.Fatalf("expected daily by default")
	}
	svc.SetDefaultMode(ModeYearly)
	if svc.DefaultMode() != ModeYearly {
		t.Fatalf("SetDefaultMode not applied")
	}
}
