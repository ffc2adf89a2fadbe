package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/ports"
)

func recomputeFixture() (*stubFreezerRepo, *stubProductRepo) {
	freezers := newStubFreezerRepo(
		&domain.Freezer{Name: "atlant", Products: map[string]int64{"ice": 1, "dumplings": 99}},
		&domain.Freezer{Name: "horizont", Products: map[string]int64{"dumplings": 0}},
		&domain.Freezer{Name: "samsung", Products: map[string]int64{"icecream": 3, "mystery": 7}},
	)
	products := newStubProductRepo(
		&domain.Product{Name: "ice", Default: 20},
		&domain.Product{Name: "dumplings", Default: 25},
		&domain.Product{Name: "icecream", Default: 1},
	)
	return freezers, products
}

func snapshot(t *testing.T, repo *stubFreezerRepo) map[string]map[string]int64 {
	t.Helper()
	state := map[string]map[string]int64{}
	freezers, err := repo.List(context.Background(), ports.Page{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, f := range freezers {
		state[f.Name] = f.Products
	}
	return state
}

func TestRecompute_ResetsToDefaults(t *testing.T) {
	freezers, products := recomputeFixture()
	svc := NewRecomputeService(freezers, products, zerolog.Nop())

	summary, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := map[string]map[string]int64{
		"atlant":   {"ice": 20, "dumplings": 25},
		"horizont": {"dumplings": 25},
		"samsung":  {"icecream": 1, "mystery": 7}, // no default for "mystery": untouched
	}
	if got := snapshot(t, freezers); !reflect.DeepEqual(got, want) {
		t.Fatalf("state after recompute:\n got %v\nwant %v", got, want)
	}

	if summary.RunID == "" {
		t.Fatalf("summary must carry a run id")
	}
	if summary.FreezersUpdated != 3 || summary.ProductsReset != 4 || summary.ProductsSkipped != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

// Running the procedure twice yields the same final state as running it once.
func TestRecompute_Idempotent(t *testing.T) {
	freezers, products := recomputeFixture()
	svc := NewRecomputeService(freezers, products, zerolog.Nop())

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	after1 := snapshot(t, freezers)

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	after2 := snapshot(t, freezers)

	if !reflect.DeepEqual(after1, after2) {
		t.Fatalf("recompute not idempotent:\n first %v\nsecond %v", after1, after2)
	}
}

// A pass that fails partway leaves a consistent-per-freezer midpoint and a
// simple re-run converges to the full result.
func TestRecompute_ResumableAfterPartialFailure(t *testing.T) {
	freezers, products := recomputeFixture()
	svc := NewRecomputeService(freezers, products, zerolog.Nop())

	boom := errors.New("write failed")
	freezers.setErr = boom

	if _, err := svc.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected the write error to surface, got %v", err)
	}

	freezers.setErr = nil
	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("re-run: %v", err)
	}

	want := map[string]map[string]int64{
		"atlant":   {"ice": 20, "dumplings": 25},
		"horizont": {"dumplings": 25},
		"samsung":  {"icecream": 1, "mystery": 7},
	}
	if got := snapshot(t, freezers); !reflect.DeepEqual(got, want) {
		t.Fatalf("re-run did not converge:\n got %v\nwant %v", got, want)
	}
}
