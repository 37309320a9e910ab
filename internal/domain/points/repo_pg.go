package points

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stridecare/recovery/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type ledgerRepoPG struct{ pool *pgxpool.Pool }

func NewLedgerRepoPG(pool *pgxpool.Pool) LedgerRepository {
	return &ledgerRepoPG{pool: pool}
}

func (r *ledgerRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const completionCols = `id, patient_id, insight_id, points_awarded, completed_at`

// CreateCompletion inserts one completion row. The unique index on
// (patient_id, insight_id) surfaces concurrent duplicates as a 23505 error,
// which the service layer resolves by re-reading the winner.
func (r *ledgerRepoPG) CreateCompletion(ctx context.Context, c *InsightCompletion) error {
	c.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO insight_completion (id, patient_id, insight_id, points_awarded, completed_at)
		VALUES ($1,$2,$3,$4,$5)`,
		c.ID, c.PatientID, c.InsightID, c.PointsAwarded, c.CompletedAt)
	return err
}

func (r *ledgerRepoPG) GetCompletion(ctx context.Context, patientID uuid.UUID, insightID string) (*InsightCompletion, error) {
	var c InsightCompletion
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+completionCols+` FROM insight_completion WHERE patient_id = $1 AND insight_id = $2`,
		patientID, insightID).
		Scan(&c.ID, &c.PatientID, &c.InsightID, &c.PointsAwarded, &c.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ledgerRepoPG) CompletedInsightIDs(ctx context.Context, patientID uuid.UUID) (map[string]bool, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT insight_id FROM insight_completion WHERE patient_id = $1`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func (r *ledgerRepoPG) CreatePointEntry(ctx context.Context, e *RecoveryPointEntry) error {
	e.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO recovery_point (id, patient_id, amount, source_type, source_id, mood, earned_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		e.ID, e.PatientID, e.Amount, e.SourceType, e.SourceID, e.Mood, e.EarnedAt)
	return err
}

func (r *ledgerRepoPG) ListPointEntries(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*RecoveryPointEntry, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM recovery_point WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, patient_id, amount, source_type, source_id, mood, earned_at
		FROM recovery_point WHERE patient_id = $1
		ORDER BY earned_at DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*RecoveryPointEntry
	for rows.Next() {
		var e RecoveryPointEntry
		if err := rows.Scan(&e.ID, &e.PatientID, &e.Amount, &e.SourceType, &e.SourceID, &e.Mood, &e.EarnedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &e)
	}
	return items, total, nil
}

// SumInWindow totals amounts earned in [from, to). COALESCE keeps an empty
// window at zero instead of NULL.
func (r *ledgerRepoPG) SumInWindow(ctx context.Context, patientID uuid.UUID, from, to time.Time) (int, error) {
	var total int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM recovery_point
		WHERE patient_id = $1 AND earned_at >= $2 AND earned_at < $3`,
		patientID, from, to).Scan(&total)
	return total, err
}
