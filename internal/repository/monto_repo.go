package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bvqadmin/montos-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMontoNotFound      = errors.New("monto colocado record not found")
	ErrMissingRMV         = errors.New("RMV is required to create a record")
	ErrNoInsertableFields = errors.New("no insertable fields in payload")
	ErrNoUpdatableFields  = errors.New("no updatable fields in payload")
)

// montoTable is the issuance registry table. The column identifiers keep
// their original names (spaces and accents included), so every reference is
// quoted.
const montoTable = `bvq_administracion."MontoColoCadoPC"`

const montoColumns = `"RMV", "emi_nombre", "Emisión", "Vencimiento oferta pública", ` +
	`"Monto emitido", "Casa Estructuradora", "Casa Colocadora", "Registro de Inscripcion", ` +
	`"Fecha de Emision OP", "Fecha de Vencimiento OP", "Calificación", "Fecha calificación", "Calificadora"`

// MontoRepository handles database operations for MontoColoCadoPC records
type MontoRepository struct {
	pool *pgxpool.Pool
}

// NewMontoRepository creates a new MontoRepository
func NewMontoRepository(pool *pgxpool.Pool) *MontoRepository {
	return &MontoRepository{pool: pool}
}

// buildListPredicates translates the supplied filters into an AND-combined
// WHERE clause with numbered placeholders. Absent filters contribute nothing;
// they are never turned into match-anything or match-null predicates.
func buildListPredicates(f models.ListFilter) (string, []any) {
	var where []string
	var args []any

	if f.EmiNombre != "" {
		args = append(args, "%"+f.EmiNombre+"%")
		where = append(where, fmt.Sprintf(`"emi_nombre" ILIKE $%d`, len(args)))
	}
	if f.RMV != "" {
		args = append(args, f.RMV)
		where = append(where, fmt.Sprintf(`"RMV" = $%d`, len(args)))
	}
	if f.Emision != "" {
		args = append(args, f.Emision)
		where = append(where, fmt.Sprintf(`"Emisión" = $%d`, len(args)))
	}
	if f.FechaDesde != nil {
		args = append(args, *f.FechaDesde)
		where = append(where, fmt.Sprintf(`"Fecha de Emision OP" >= $%d`, len(args)))
	}
	if f.FechaHasta != nil {
		args = append(args, *f.FechaHasta)
		where = append(where, fmt.Sprintf(`"Fecha de Emision OP" <= $%d`, len(args)))
	}

	if len(where) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// List returns one page of records matching the filters plus the page
// metadata. The count and the page query share the same predicate set and run
// concurrently. Ordering is by official issuance date, newest first.
func (r *MontoRepository) List(ctx context.Context, f models.ListFilter, page, limit int) ([]models.MontoColocado, models.Pagination, error) {
	where, args := buildListPredicates(f)

	countQuery := `SELECT COUNT(*) FROM ` + montoTable + where
	dataQuery := fmt.Sprintf(
		`SELECT %s FROM %s%s ORDER BY "Fecha de Emision OP" DESC OFFSET $%d LIMIT $%d`,
		montoColumns, montoTable, where, len(args)+1, len(args)+2,
	)
	// Full-slice expression so the concurrent append cannot share backing storage.
	dataArgs := append(args[:len(args):len(args)], (page-1)*limit, limit)

	var total int64
	var records []models.MontoColocado

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.pool.QueryRow(gctx, countQuery, args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		rows, err := r.pool.Query(gctx, dataQuery, dataArgs...)
		if err != nil {
			return fmt.Errorf("failed to query records: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			m, err := scanMonto(rows)
			if err != nil {
				return fmt.Errorf("failed to scan record: %w", err)
			}
			records = append(records, *m)
		}
		return rows.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, models.Pagination{}, err
	}

	if records == nil {
		records = []models.MontoColocado{}
	}
	return records, models.NewPagination(page, limit, total), nil
}

// GetByRMV retrieves a record by its registry identifier.
func (r *MontoRepository) GetByRMV(ctx context.Context, rmv string) (*models.MontoColocado, error) {
	query := `SELECT ` + montoColumns + ` FROM ` + montoTable + ` WHERE "RMV" = $1`
	m, err := scanMonto(r.pool.QueryRow(ctx, query, rmv))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMontoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", rmv, err)
	}
	return m, nil
}

// Create inserts a new record from the insertable subset of the payload and
// returns the row as stored. RMV must be present: it is the business key the
// post-insert read resolves by.
func (r *MontoRepository) Create(ctx context.Context, in *models.MontoInput) (*models.MontoColocado, error) {
	if in.RMV == nil || *in.RMV == "" {
		return nil, ErrMissingRMV
	}

	columns, values := in.InsertAssignments()
	if len(columns) == 0 {
		return nil, ErrNoInsertableFields
	}

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = `"` + col + `"`
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s)`,
		montoTable, strings.Join(quoted, ", "), strings.Join(placeholders, ", "),
	)
	if _, err := r.pool.Exec(ctx, query, values...); err != nil {
		return nil, fmt.Errorf("failed to insert record: %w", err)
	}

	return r.GetByRMV(ctx, *in.RMV)
}

// Update applies the updatable subset of the payload to an existing record
// and returns the row as stored. Not-found is derived from the affected-row
// count of the UPDATE itself, so there is no read-then-write race.
func (r *MontoRepository) Update(ctx context.Context, rmv string, in *models.MontoInput) (*models.MontoColocado, error) {
	columns, values := in.UpdateAssignments()
	if len(columns) == 0 {
		return nil, ErrNoUpdatableFields
	}

	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = fmt.Sprintf(`"%s" = $%d`, col, i+1)
	}
	values = append(values, rmv)

	query := fmt.Sprintf(
		`UPDATE %s SET %s WHERE "RMV" = $%d`,
		montoTable, strings.Join(assignments, ", "), len(values),
	)
	ct, err := r.pool.Exec(ctx, query, values...)
	if err != nil {
		return nil, fmt.Errorf("failed to update record %s: %w", rmv, err)
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrMontoNotFound
	}

	return r.GetByRMV(ctx, rmv)
}

// Delete removes a record by RMV and returns the deleted row. The RETURNING
// clause doubles as the existence check, so a concurrent delete simply maps
// to not-found.
func (r *MontoRepository) Delete(ctx context.Context, rmv string) (*models.MontoColocado, error) {
	query := `DELETE FROM ` + montoTable + ` WHERE "RMV" = $1 RETURNING ` + montoColumns
	m, err := scanMonto(r.pool.QueryRow(ctx, query, rmv))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMontoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete record %s: %w", rmv, err)
	}
	return m, nil
}

// Stats aggregates over rows with a non-null issued amount. SQL aggregates
// over an empty set yield NULLs, which surface as null JSON fields rather
// than an error.
func (r *MontoRepository) Stats(ctx context.Context) (*models.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total_registros,
			SUM("Monto emitido") AS monto_total_emitido,
			AVG("Monto emitido") AS monto_promedio,
			MIN("Fecha de Emision OP") AS fecha_mas_antigua,
			MAX("Fecha de Emision OP") AS fecha_mas_reciente
		FROM ` + montoTable + `
		WHERE "Monto emitido" IS NOT NULL
	`
	var s models.Stats
	var antigua, reciente *time.Time
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalRegistros, &s.MontoTotalEmitido, &s.MontoPromedio, &antigua, &reciente,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	s.FechaMasAntigua = models.NewFlexibleDate(antigua)
	s.FechaMasReciente = models.NewFlexibleDate(reciente)
	return &s, nil
}

// scanMonto reads one record row in montoColumns order. Nullable timestamps
// are scanned through *time.Time and wrapped for JSON output.
func scanMonto(row pgx.Row) (*models.MontoColocado, error) {
	m := &models.MontoColocado{}
	var venc, fEmi, fVen, fCal *time.Time
	err := row.Scan(
		&m.RMV, &m.EmiNombre, &m.Emision, &venc, &m.MontoEmitido,
		&m.CasaEstructuradora, &m.CasaColocadora, &m.RegistroInscripcion,
		&fEmi, &fVen, &m.Calificacion, &fCal, &m.Calificadora,
	)
	if err != nil {
		return nil, err
	}
	m.VencimientoOfertaPublica = models.NewFlexibleDate(venc)
	m.FechaEmisionOP = models.NewFlexibleDate(fEmi)
	m.FechaVencimientoOP = models.NewFlexibleDate(fVen)
	m.FechaCalificacion = models.NewFlexibleDate(fCal)
	return m, nil
}
