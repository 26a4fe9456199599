package analytics

import (
	"context"
	"time"

	"herd-analytics/internal/domain/herd"
	"herd-analytics/internal/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	repo herd.Repository
	cfg  Config
	log  logger.Logger
	now  func() time.Time

	defaultMode Mode
}

func NewService(repo herd.Repository, cfg Config, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		cfg:  cfg,
		log:  log,
		now:  time.Now,

		defaultMode: ModeDaily,
	}
}

// SetDefaultMode fija el modo usado cuando el request no trae uno.
func (s *Service) SetDefaultMode(m Mode) {
	s.defaultMode = m
}

func (s *Service) DefaultMode() Mode {
	return s.defaultMode
}

// Snapshot trae animales, vacunas y establos en paralelo y espera a los tres.
// Si cualquiera falla no hay snapshot parcial: se devuelve el error.
func (s *Service) Snapshot(ctx context.Context) (herd.Snapshot, error) {
	var snap herd.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.repo.ListAnimals(gctx)
		snap.Animals = items
		return err
	})
	g.Go(func() error {
		items, err := s.repo.ListVaccines(gctx)
		snap.Vaccines = items
		return err
	})
	g.Go(func() error {
		items, err := s.repo.ListStables(gctx)
		snap.Stables = items
		return err
	})

	if err := g.Wait(); err != nil {
		return herd.Snapshot{}, err
	}
	return snap, nil
}

// Report arma el reporte para un modo. Si el hato no está disponible
// devuelve EmptyReport (DataAvailable=false); solo falla si ctx se canceló.
func (s *Service) Report(ctx context.Context, mode Mode) (Report, error) {
	id := uuid.NewString()
	log := s.log.With(map[string]any{"snapshot_id": id, "mode": string(mode)})

	snap, err := s.Snapshot(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return Report{}, ctx.Err()
		}
		log.Warn("herd data unavailable", map[string]any{"error": err.Error()})
		r := EmptyReport(mode)
		r.SnapshotID = id
		r.GeneratedAt = s.now()
		return r, nil
	}

	now := s.now()
	r := Build(snap, mode, s.cfg, now)
	r.SnapshotID = id
	r.GeneratedAt = now

	log.Debug("report built", map[string]any{
		"animals":  len(snap.Animals),
		"vaccines": len(snap.Vaccines),
		"stables":  len(snap.Stables),
	})
	return r, nil
}

// Assessments devuelve edad y peso efectivo por animal (listado de estimaciones).
// Aquí sí se propaga el error de la fuente.
func (s *Service) Assessments(ctx context.Context) ([]Assessment, error) {
	animals, err := s.repo.ListAnimals(ctx)
	if err != nil {
		return nil, err
	}
	return NewEstimator(s.cfg).AssessAll(animals, s.now()), nil
}
