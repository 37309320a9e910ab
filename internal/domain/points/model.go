package points

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceInsightCompletion = "insight-completion"
	SourceMoodLog           = "mood-log"
)

// InsightCompletion maps to the insight_completion table. At most one row
// exists per (patient, insight); the pair is a unique index, which is what
// makes completion idempotent under concurrency.
type InsightCompletion struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	InsightID     string    `db:"insight_id" json:"insight_id"`
	PointsAwarded int       `db:"points_awarded" json:"points_awarded"`
	CompletedAt   time.Time `db:"completed_at" json:"completed_at"`
}

// RecoveryPointEntry maps to the recovery_point table: one append-only row
// per points-earning event.
type RecoveryPointEntry struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	Amount     int       `db:"amount" json:"amount"`
	SourceType string    `db:"source_type" json:"source_type"`
	SourceID   *string   `db:"source_id" json:"source_id,omitempty"`
	Mood       *string   `db:"mood" json:"mood,omitempty"`
	EarnedAt   time.Time `db:"earned_at" json:"earned_at"`
}

// WeeklyAggregate is the computed points total for one ISO week. It is
// derived on read and never stored.
type WeeklyAggregate struct {
	PatientID uuid.UUID `json:"patient_id"`
	WeekStart time.Time `json:"week_start"`
	Total     int       `json:"total"`
}

// WeekStartOf normalizes an arbitrary timestamp to its ISO week's Monday at
// 00:00 UTC.
func WeekStartOf(t time.Time) time.Time {
	t = t.UTC()
	daysBack := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -daysBack)
}
