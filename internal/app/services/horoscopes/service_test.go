package horoscopes

import (
	"context"
	"strings"
	"testing"
	"time"

	domain "github.com/pabakn/Astro-Destiny/internal/app/domain/horoscope"
	"github.com/pabakn/Astro-Destiny/internal/app/storage/memory"
)

func TestSeedDefaults(t *testing.T) {
	svc := New(memory.New(), nil)
	ctx := context.Background()

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	horoscopes, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(horoscopes) != len(domain.Signs) {
		t.Fatalf("expected %d horoscopes, got %d", len(domain.Signs), len(horoscopes))
	}
	for i, h := range horoscopes {
		if h.Sign != domain.Signs[i] {
			t.Fatalf("expected %s at position %d, got %s", domain.Signs[i], i, h.Sign)
		}
		if !strings.Contains(h.Prediction, h.Sign) {
			t.Fatalf("default prediction should mention the sign: %q", h.Prediction)
		}
	}

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	horoscopes, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("list after reseed: %v", err)
	}
	if len(horoscopes) != len(domain.Signs) {
		t.Fatalf("reseed must not duplicate, got %d", len(horoscopes))
	}
}

func TestCreateValidatesSignLength(t *testing.T) {
	svc := New(memory.New(), nil)

	in := domain.Insert{Sign: strings.Repeat("x", domain.MaxSignLength+1), Prediction: "p"}
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected error for oversized sign")
	}
}

func TestRefresherTick(t *testing.T) {
	store := memory.New()
	svc := New(store, nil)
	ctx := context.Background()
	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	gen := GeneratorFunc(func(_ context.Context, sign string) (string, error) {
		return "fresh for " + sign, nil
	})
	r := NewRefresher(svc, gen, time.Hour, nil)
	r.tick(ctx)

	horoscopes, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, h := range horoscopes {
		if h.Prediction != "fresh for "+h.Sign {
			t.Fatalf("expected refreshed prediction for %s, got %q", h.Sign, h.Prediction)
		}
	}
}

func TestRefresherLifecycle(t *testing.T) {
	store := memory.New()
	svc := New(store, nil)

	r := NewRefresher(svc, TemplateGenerator(), time.Hour, nil)
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	// Second start is a no-op while running.
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	// Stop after stop is a no-op.
	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestRefresherDisabledWithoutInterval(t *testing.T) {
	r := NewRefresher(New(memory.New(), nil), nil, 0, nil)
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
