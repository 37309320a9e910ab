package points

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type LedgerRepository interface {
	CreateCompletion(ctx context.Context, c *InsightCompletion) error
	GetCompletion(ctx context.Context, patientID uuid.UUID, insightID string) (*InsightCompletion, error)
	CompletedInsightIDs(ctx context.Context, patientID uuid.UUID) (map[string]bool, error)
	CreatePointEntry(ctx context.Context, e *RecoveryPointEntry) error
	ListPointEntries(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*RecoveryPointEntry, int, error)
	SumInWindow(ctx context.Context, patientID uuid.UUID, from, to time.Time) (int, error)
}
