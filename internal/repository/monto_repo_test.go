package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bvqadmin/montos-api/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

// --- query builder ---

func TestBuildListPredicatesNoFilters(t *testing.T) {
	where, args := buildListPredicates(models.ListFilter{})
	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildListPredicatesIssuerSubstring(t *testing.T) {
	where, args := buildListPredicates(models.ListFilter{EmiNombre: "acme"})
	if where != ` WHERE "emi_nombre" ILIKE $1` {
		t.Errorf("unexpected where clause: %q", where)
	}
	if len(args) != 1 || args[0] != "%acme%" {
		t.Errorf("expected single wrapped pattern arg, got %v", args)
	}
}

func TestBuildListPredicatesAllFilters(t *testing.T) {
	desde := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	where, args := buildListPredicates(models.ListFilter{
		EmiNombre:  "acme",
		RMV:        "R-001",
		Emision:    "OBL001",
		FechaDesde: &desde,
		FechaHasta: &hasta,
	})

	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d: %v", len(args), args)
	}
	if strings.Count(where, " AND ") != 4 {
		t.Errorf("expected 4 AND separators, got %q", where)
	}
	for _, fragment := range []string{
		`"emi_nombre" ILIKE $1`,
		`"RMV" = $2`,
		`"Emisión" = $3`,
		`"Fecha de Emision OP" >= $4`,
		`"Fecha de Emision OP" <= $5`,
	} {
		if !strings.Contains(where, fragment) {
			t.Errorf("missing predicate %q in %q", fragment, where)
		}
	}
	if args[1] != "R-001" || args[3] != desde || args[4] != hasta {
		t.Errorf("args out of order: %v", args)
	}
}

// --- guards that never reach the pool ---

func TestCreateMissingRMV(t *testing.T) {
	repo := NewMontoRepository(nil)
	_, err := repo.Create(context.Background(), &models.MontoInput{EmiNombre: strPtr("Acme")})
	if !errors.Is(err, ErrMissingRMV) {
		t.Errorf("expected ErrMissingRMV, got %v", err)
	}
}

func TestUpdateNoFields(t *testing.T) {
	repo := NewMontoRepository(nil)
	_, err := repo.Update(context.Background(), "R-001", &models.MontoInput{RMV: strPtr("R-002")})
	if !errors.Is(err, ErrNoUpdatableFields) {
		t.Errorf("expected ErrNoUpdatableFields for RMV-only payload, got %v", err)
	}
}

// --- integration (requires PG_URL and schema.sql applied) ---

func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		t.Skip("PG_URL not set, skipping integration test")
	}
	pool, err := pgxpool.New(context.Background(), pgURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func cleanupRecord(pool *pgxpool.Pool, rmv string) {
	pool.Exec(context.Background(), `DELETE FROM `+montoTable+` WHERE "RMV" = $1`, rmv)
}

func TestRepositoryCRUDRoundTrip(t *testing.T) {
	pool := getTestPool(t)
	repo := NewMontoRepository(pool)
	ctx := context.Background()

	const rmv = "R-TEST-CRUD"
	cleanupRecord(pool, rmv)
	defer cleanupRecord(pool, rmv)

	emision := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &models.MontoInput{
		RMV:            strPtr(rmv),
		EmiNombre:      strPtr("Acme Corp"),
		MontoEmitido:   f64Ptr(150000),
		FechaEmisionOP: &models.FlexibleDate{Time: emision},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.RMV != rmv {
		t.Errorf("expected RMV %q, got %q", rmv, created.RMV)
	}
	if created.EmiNombre == nil || *created.EmiNombre != "Acme Corp" {
		t.Errorf("issuer name not stored: %v", created.EmiNombre)
	}
	if created.MontoEmitido == nil || *created.MontoEmitido != 150000 {
		t.Errorf("amount not stored: %v", created.MontoEmitido)
	}
	if created.Calificacion != nil {
		t.Errorf("omitted field should be unset, got %v", *created.Calificacion)
	}

	// Case-insensitive substring filter includes the record.
	records, pagination, err := repo.List(ctx, models.ListFilter{EmiNombre: "acme"}, 1, 50)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	found := false
	for _, r := range records {
		if r.RMV == rmv {
			found = true
		}
	}
	if !found {
		t.Error("created record not found by case-insensitive issuer filter")
	}
	if pagination.Total < 1 {
		t.Errorf("expected total >= 1, got %d", pagination.Total)
	}

	// Partial update leaves omitted fields unchanged.
	updated, err := repo.Update(ctx, rmv, &models.MontoInput{Calificacion: strPtr("AAA")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Calificacion == nil || *updated.Calificacion != "AAA" {
		t.Errorf("rating not updated: %v", updated.Calificacion)
	}
	if updated.EmiNombre == nil || *updated.EmiNombre != "Acme Corp" {
		t.Errorf("omitted field changed by partial update: %v", updated.EmiNombre)
	}

	deleted, err := repo.Delete(ctx, rmv)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.RMV != rmv {
		t.Errorf("delete returned wrong record: %q", deleted.RMV)
	}
	if _, err := repo.GetByRMV(ctx, rmv); !errors.Is(err, ErrMontoNotFound) {
		t.Errorf("expected ErrMontoNotFound after delete, got %v", err)
	}
}

func TestRepositoryNotFound(t *testing.T) {
	pool := getTestPool(t)
	repo := NewMontoRepository(pool)
	ctx := context.Background()

	if _, err := repo.GetByRMV(ctx, "R-DOES-NOT-EXIST"); !errors.Is(err, ErrMontoNotFound) {
		t.Errorf("get: expected ErrMontoNotFound, got %v", err)
	}
	if _, err := repo.Update(ctx, "R-DOES-NOT-EXIST", &models.MontoInput{Calificacion: strPtr("AA")}); !errors.Is(err, ErrMontoNotFound) {
		t.Errorf("update: expected ErrMontoNotFound, got %v", err)
	}
	if _, err := repo.Delete(ctx, "R-DOES-NOT-EXIST"); !errors.Is(err, ErrMontoNotFound) {
		t.Errorf("delete: expected ErrMontoNotFound, got %v", err)
	}
}

func TestRepositoryListNoMatches(t *testing.T) {
	pool := getTestPool(t)
	repo := NewMontoRepository(pool)

	records, pagination, err := repo.List(context.Background(), models.ListFilter{RMV: "R-NO-SUCH-KEY"}, 1, 50)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty page, got %d records", len(records))
	}
	if pagination.Total != 0 || pagination.Pages != 0 {
		t.Errorf("expected total=0 pages=0, got total=%d pages=%d", pagination.Total, pagination.Pages)
	}
}

func TestRepositoryStats(t *testing.T) {
	pool := getTestPool(t)
	repo := NewMontoRepository(pool)

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	// Aggregates over an empty qualifying set come back as zero count and
	// null sum/avg/min/max, never an error.
	if stats.TotalRegistros == 0 {
		if stats.MontoTotalEmitido != nil || stats.MontoPromedio != nil {
			t.Errorf("expected null aggregates for empty set, got %+v", stats)
		}
	}
}
