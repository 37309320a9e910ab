package insight

import (
	"context"

	"github.com/google/uuid"

	"github.com/stridecare/recovery/internal/domain/assessment"
	"github.com/stridecare/recovery/internal/platform/apperr"
	"github.com/stridecare/recovery/internal/platform/db"
)

// LatestAssessmentProvider is the slice of the assessment repository the
// matcher needs; satisfied by assessment.AssessmentRepository.
type LatestAssessmentProvider interface {
	Latest(ctx context.Context, patientID uuid.UUID) (*assessment.Assessment, error)
}

// CompletionLister reports which catalog ids a patient has already
// completed; satisfied by the points ledger repository.
type CompletionLister interface {
	CompletedInsightIDs(ctx context.Context, patientID uuid.UUID) (map[string]bool, error)
}

type Service struct {
	catalog     *Catalog
	assessments LatestAssessmentProvider
	completions CompletionLister
}

func NewService(catalog *Catalog, assessments LatestAssessmentProvider, completions CompletionLister) *Service {
	return &Service{catalog: catalog, assessments: assessments, completions: completions}
}

// InsightsForPatient matches the catalog against the patient's latest
// assessment. A patient who has never submitted gets an empty list, not an
// error; the portal shows recommendations only once there is data. Store
// failures propagate so the portal retries instead of showing nothing.
func (s *Service) InsightsForPatient(ctx context.Context, patientID uuid.UUID) ([]*RecoveryInsight, error) {
	latest, err := s.assessments.Latest(ctx, patientID)
	if err != nil {
		if db.IsNoRows(err) {
			return []*RecoveryInsight{}, nil
		}
		return nil, apperr.Upstream("load latest assessment", err)
	}

	completed, err := s.completions.CompletedInsightIDs(ctx, patientID)
	if err != nil {
		return nil, apperr.Upstream("load completed insights", err)
	}
	return Match(s.catalog, latest, completed), nil
}

// Catalog exposes the loaded catalog for the ledger's lookup path.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}
