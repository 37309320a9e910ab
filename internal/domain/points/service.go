package points

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stridecare/recovery/internal/domain/insight"
	"github.com/stridecare/recovery/internal/platform/apperr"
	"github.com/stridecare/recovery/internal/platform/db"
)

// CatalogLookup resolves insight ids to catalog entries; satisfied by
// *insight.Catalog.
type CatalogLookup interface {
	Get(id string) *insight.RecoveryInsight
}

type Service struct {
	ledger  LedgerRepository
	catalog CatalogLookup
	tx      db.TxRunner
}

func NewService(ledger LedgerRepository, catalog CatalogLookup, tx db.TxRunner) *Service {
	return &Service{ledger: ledger, catalog: catalog, tx: tx}
}

var validMoods = map[string]bool{
	"positive":   true,
	"neutral":    true,
	"negative":   true,
	"distressed": true,
}

// CompleteInsight marks a catalog entry done and credits its points.
// Completing the same insight again is a no-op that returns the original
// record: no second ledger entry, no extra points. Two concurrent first
// completions race on the unique index; the loser's transaction rolls back
// and it re-reads the winner's row, so callers always get the same answer.
func (s *Service) CompleteInsight(ctx context.Context, patientID uuid.UUID, insightID string) (*InsightCompletion, error) {
	entry := s.catalog.Get(insightID)
	if entry == nil {
		return nil, apperr.NotFound("unknown insight: " + insightID)
	}

	existing, err := s.ledger.GetCompletion(ctx, patientID, insightID)
	if err == nil {
		return existing, nil
	}
	if !db.IsNoRows(err) {
		return nil, apperr.Upstream("read completion", err)
	}

	now := time.Now().UTC()
	completion := &InsightCompletion{
		PatientID:     patientID,
		InsightID:     insightID,
		PointsAwarded: entry.Points,
		CompletedAt:   now,
	}
	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.ledger.CreateCompletion(ctx, completion); err != nil {
			return err
		}
		sourceID := completion.ID.String()
		return s.ledger.CreatePointEntry(ctx, &RecoveryPointEntry{
			PatientID:  patientID,
			Amount:     entry.Points,
			SourceType: SourceInsightCompletion,
			SourceID:   &sourceID,
			EarnedAt:   now,
		})
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return s.ledger.GetCompletion(ctx, patientID, insightID)
		}
		return nil, apperr.Upstream("record completion", err)
	}
	return completion, nil
}

// LogMood appends a mood-log point entry awarding the given amount. Mood
// logging never touches completions and is not deduplicated; every log earns
// its points.
func (s *Service) LogMood(ctx context.Context, patientID uuid.UUID, mood string, amount int) (*RecoveryPointEntry, error) {
	if !validMoods[mood] {
		return nil, apperr.Validation("mood", "mood must be positive, neutral, negative, or distressed")
	}
	if amount <= 0 {
		return nil, apperr.Validation("amount", "amount must be positive")
	}
	entry := &RecoveryPointEntry{
		PatientID:  patientID,
		Amount:     amount,
		SourceType: SourceMoodLog,
		Mood:       &mood,
		EarnedAt:   time.Now().UTC(),
	}
	if err := s.ledger.CreatePointEntry(ctx, entry); err != nil {
		return nil, apperr.Upstream("append mood entry", err)
	}
	return entry, nil
}

// WeeklyAggregate sums the points earned in the week containing ref,
// normalized to [Monday 00:00 UTC, +7d). An empty week yields a zero total,
// never an error.
func (s *Service) WeeklyAggregate(ctx context.Context, patientID uuid.UUID, ref time.Time) (*WeeklyAggregate, error) {
	weekStart := WeekStartOf(ref)
	total, err := s.ledger.SumInWindow(ctx, patientID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, apperr.Upstream("sum weekly points", err)
	}
	return &WeeklyAggregate{PatientID: patientID, WeekStart: weekStart, Total: total}, nil
}

func (s *Service) ListPointEntries(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*RecoveryPointEntry, int, error) {
	return s.ledger.ListPointEntries(ctx, patientID, limit, offset)
}

// CompletedInsightIDs exposes the ledger's completion set for the insight
// matcher.
func (s *Service) CompletedInsightIDs(ctx context.Context, patientID uuid.UUID) (map[string]bool, error) {
	return s.ledger.CompletedInsightIDs(ctx, patientID)
}
