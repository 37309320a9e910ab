package assessment

import (
	"context"

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

// -- Assessments --

type assessmentRepoPG struct{ pool *pgxpool.Pool }

func NewAssessmentRepoPG(pool *pgxpool.Pool) AssessmentRepository {
	return &assessmentRepoPG{pool: pool}
}

func (r *assessmentRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const assessmentCols = `id, patient_id, form_type, pain, stress, mood, vas, groc,
	confidence, pcs4, fear_avoidance, milestone_achieved, clinician_verified,
	tier, submitted_at, created_at`

func (r *assessmentRepoPG) scanAssessment(row pgx.Row) (*Assessment, error) {
	var a Assessment
	err := row.Scan(&a.ID, &a.PatientID, &a.FormType, &a.Pain, &a.Stress, &a.Mood, &a.VAS, &a.GROC,
		&a.Confidence, &a.PCS4, &a.FearAvoidance, &a.MilestoneAchieved, &a.ClinicianVerified,
		&a.Tier, &a.SubmittedAt, &a.CreatedAt)
	return &a, err
}

func (r *assessmentRepoPG) Create(ctx context.Context, a *Assessment) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO assessment (id, patient_id, form_type, pain, stress, mood, vas, groc,
			confidence, pcs4, fear_avoidance, milestone_achieved, clinician_verified,
			tier, submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		a.ID, a.PatientID, a.FormType, a.Pain, a.Stress, a.Mood, a.VAS, a.GROC,
		a.Confidence, a.PCS4, a.FearAvoidance, a.MilestoneAchieved, a.ClinicianVerified,
		a.Tier, a.SubmittedAt)
	return err
}

func (r *assessmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return r.scanAssessment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM assessment WHERE id = $1`, id))
}

func (r *assessmentRepoPG) Latest(ctx context.Context, patientID uuid.UUID) (*Assessment, error) {
	return r.scanAssessment(r.conn(ctx).QueryRow(ctx,
		`SELECT `+assessmentCols+` FROM assessment WHERE patient_id = $1 ORDER BY submitted_at DESC, created_at DESC LIMIT 1`,
		patientID))
}

func (r *assessmentRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM assessment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+assessmentCols+` FROM assessment WHERE patient_id = $1 ORDER BY submitted_at DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Assessment
	for rows.Next() {
		a, err := r.scanAssessment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, nil
}

// -- SRS scores --

type scoreRepoPG struct{ pool *pgxpool.Pool }

func NewScoreRepoPG(pool *pgxpool.Pool) ScoreRepository {
	return &scoreRepoPG{pool: pool}
}

func (r *scoreRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const scoreCols = `id, patient_id, score, source_assessment_id, computed_at`

func (r *scoreRepoPG) Create(ctx context.Context, s *SRSScoreRecord) error {
	s.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO srs_score (id, patient_id, score, source_assessment_id, computed_at)
		VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.PatientID, s.Score, s.SourceAssessmentID, s.ComputedAt)
	return err
}

func (r *scoreRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*SRSScoreRecord, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM srs_score WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+scoreCols+` FROM srs_score WHERE patient_id = $1 ORDER BY computed_at DESC LIMIT $2 OFFSET $3`,
		patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*SRSScoreRecord
	for rows.Next() {
		var s SRSScoreRecord
		if err := rows.Scan(&s.ID, &s.PatientID, &s.Score, &s.SourceAssessmentID, &s.ComputedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &s)
	}
	return items, total, nil
}
