package menu

import (
	"context"
	"sync"
	"testing"

	"comanda-system/internal/common/logger"
	"comanda-system/internal/domain"
)

type memMenuRepo struct {
	mu    sync.Mutex
	items []domain.MenuItem
}

func (m *memMenuRepo) List(context.Context) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.MenuItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memMenuRepo) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items), nil
}

func (m *memMenuRepo) InsertAll(_ context.Context, items []domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, items...)
	return nil
}

func (m *memMenuRepo) ReplaceAll(_ context.Context, items []domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]domain.MenuItem(nil), items...)
	return nil
}

type recordingPublisher struct {
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev domain.Event) error {
	p.events = append(p.events, ev)
	return nil
}

func TestSeedIfEmpty_PopulatesOnce(t *testing.T) {
	repo := &memMenuRepo{}
	svc := NewService(repo, &recordingPublisher{}, logger.New("test"))
	ctx := context.Background()

	if err := svc.SeedIfEmpty(ctx); err != nil {
		t.Fatalf("SeedIfEmpty returned error: %v", err)
	}
	items, _ := svc.List(ctx)
	if len(items) != len(Catalog()) {
		t.Fatalf("seeded %d items, want %d", len(items), len(Catalog()))
	}

	// Repeated calls are no-ops.
	if err := svc.SeedIfEmpty(ctx); err != nil {
		t.Fatalf("second SeedIfEmpty returned error: %v", err)
	}
	items, _ = svc.List(ctx)
	if len(items) != len(Catalog()) {
		t.Fatalf("second seed grew catalog to %d items", len(items))
	}
}

func TestSeedIfEmpty_SkipsNonEmptyCatalog(t *testing.T) {
	repo := &memMenuRepo{items: []domain.MenuItem{{ID: "custom", Name: "Prato do Dia", Price: 19.90, Category: "Especiais"}}}
	svc := NewService(repo, &recordingPublisher{}, logger.New("test"))

	if err := svc.SeedIfEmpty(context.Background()); err != nil {
		t.Fatalf("SeedIfEmpty returned error: %v", err)
	}
	items, _ := svc.List(context.Background())
	if len(items) != 1 || items[0].Name != "Prato do Dia" {
		t.Fatalf("seed overwrote a non-empty catalog: %d items", len(items))
	}
}

func TestReseed_RestoresCanonicalCatalog(t *testing.T) {
	repo := &memMenuRepo{items: []domain.MenuItem{{ID: "custom", Name: "Prato do Dia", Price: 19.90, Category: "Especiais"}}}
	pub := &recordingPublisher{}
	svc := NewService(repo, pub, logger.New("test"))
	ctx := context.Background()

	if err := svc.Reseed(ctx); err != nil {
		t.Fatalf("Reseed returned error: %v", err)
	}

	items, _ := svc.List(ctx)
	if len(items) != len(Catalog()) {
		t.Fatalf("reseeded catalog has %d items, want %d", len(items), len(Catalog()))
	}
	for _, item := range items {
		if item.Name == "Prato do Dia" {
			t.Fatalf("customization survived reseed")
		}
	}

	if len(pub.events) != 1 || pub.events[0].Type != domain.EventMenuReseeded {
		t.Fatalf("reseed events = %+v, want one menu.reseeded", pub.events)
	}
}
