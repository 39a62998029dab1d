package menu

import (
	"context"
	"fmt"
	"time"

	"comanda-system/internal/common/logger"
	"comanda-system/internal/domain"
)

// Publisher pushes store-change events to subscribed views.
type Publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

type ServiceInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	SeedIfEmpty(ctx context.Context) error
	Reseed(ctx context.Context) error
}

type Service struct {
	repo RepositoryInterface
	pub  Publisher
	lg   *logger.Logger
}

func NewService(repo RepositoryInterface, pub Publisher, lg *logger.Logger) ServiceInterface {
	return &Service{repo: repo, pub: pub, lg: lg}
}

func (s *Service) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.List(ctx)
}

// SeedIfEmpty inserts the canonical catalog only when no item exists yet.
// Safe to call on every boot.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := s.repo.InsertAll(ctx, Catalog()); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	s.lg.Info("menu_seeded", map[string]any{"items": len(Catalog())})
	return nil
}

// Reseed discards the current catalog, customizations included, and
// restores the canonical one.
func (s *Service) Reseed(ctx context.Context) error {
	if err := s.repo.ReplaceAll(ctx, Catalog()); err != nil {
		return fmt.Errorf("reseed catalog: %w", err)
	}
	s.lg.Info("menu_reseeded", map[string]any{"items": len(Catalog())})
	s.publish(ctx, domain.Event{Type: domain.EventMenuReseeded, OccurredAt: time.Now().UTC()})
	return nil
}

// Notification failures never fail the mutation; the store already
// committed and views will catch up on their next fetch.
func (s *Service) publish(ctx context.Context, ev domain.Event) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.lg.Error("event_publish_failed", err, map[string]any{"type": ev.Type})
	}
}
